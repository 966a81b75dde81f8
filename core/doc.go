// Package core defines the shared types used across the tlog library.
//
// It provides the Level type for severity filtering and the Field type
// that carries template values. A Field pairs a key with either a
// literal value or a Producer, a zero-argument function resolved at
// render time. Producers let expensive values (request IDs, snapshots
// of mutable state) be computed only for messages that actually pass
// the logger's level gate, and they run exactly once per log call.
//
// Field encodes common literal types into fixed-size numeric slots
// (Int64, Float64) so that ints, bools, times, and durations carry no
// extra allocation. The Any slot holds producers and arbitrary values.
package core
