package core

import (
	"fmt"
	"strconv"
	"time"
)

// FieldType represents the type of a field value
type FieldType uint8

const (
	StringType FieldType = iota
	IntType
	Int64Type
	Float64Type
	BoolType
	TimeType
	DurationType
	ErrorType
	LazyType
	AnyType
)

// Producer is a zero-argument value producer. Producers are resolved at
// render time, exactly once per log call, and never run when the call
// is filtered out by the level gate.
type Producer func() interface{}

// Field is one template value: a key plus either a literal or a
// producer. Fields form the open-ended defaults and per-call overrides
// surface of the Logger; when the same key appears more than once, the
// later field wins.
type Field struct {
	Key     string
	Type    FieldType
	Int64   int64
	Float64 float64
	Str     string
	Any     interface{}
}

// Resolve returns the string form of the field's value. A lazy field's
// producer is invoked here.
func (f Field) Resolve() string {
	switch f.Type {
	case StringType:
		return f.Str
	case IntType, Int64Type:
		return strconv.FormatInt(f.Int64, 10)
	case Float64Type:
		return strconv.FormatFloat(f.Float64, 'f', -1, 64)
	case BoolType:
		return strconv.FormatBool(f.Int64 == 1)
	case TimeType:
		return time.Unix(0, f.Int64).Format(time.RFC3339)
	case DurationType:
		return time.Duration(f.Int64).String()
	case ErrorType:
		return f.Str
	case LazyType:
		switch fn := f.Any.(type) {
		case Producer:
			return stringify(fn())
		case func() interface{}:
			return stringify(fn())
		}
		return ""
	case AnyType:
		return stringify(f.Any)
	default:
		return ""
	}
}

// stringify converts a produced or arbitrary value to its rendered form
func stringify(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case error:
		return val.Error()
	case fmt.Stringer:
		return val.String()
	default:
		return fmt.Sprintf("%v", val)
	}
}
