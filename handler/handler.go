package handler

// Handler is a sink for fully rendered log output. A single handler
// instance may be shared by multiple loggers; the library takes no
// locks, so serializing concurrent writes is the responsibility of the
// handler or its destination.
type Handler interface {
	// Write delivers one rendered message to the destination
	Write(text string) error

	// Close releases any resources owned by the handler
	Close() error
}
