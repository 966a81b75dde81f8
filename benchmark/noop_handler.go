package benchmark

import "github.com/philipp01105/tlog/handler"

type noopHandler struct{}

func newNoopHandler() handler.Handler {
	return &noopHandler{}
}

func (h *noopHandler) Write(text string) error {
	_ = len(text)
	return nil
}

func (h *noopHandler) Close() error {
	return nil
}
