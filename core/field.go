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
	AnyType
)

// Field represents a key-value pair for structured logging
type Field struct {
	Key     string
	Type    FieldType
	Int64   int64
	Float64 float64
	Str     string
	Any     interface{}
}

// StringValue returns the string representation of a field's value
func (f Field) StringValue() string {
	switch f.Type {
	case StringType, ErrorType:
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
	case AnyType:
		return fmt.Sprintf("%v", f.Any)
	default:
		return ""
	}
}

// String renders the field as key=value, the form used in message segments.
func (f Field) String() string {
	return f.Key + "=" + f.StringValue()
}

// AnyField converts an arbitrary value to the narrowest Field type.
// Bridges from other logging frameworks use it for their untyped values.
func AnyField(key string, v interface{}) Field {
	switch val := v.(type) {
	case string:
		return Field{Key: key, Type: StringType, Str: val}
	case int:
		return Field{Key: key, Type: IntType, Int64: int64(val)}
	case int64:
		return Field{Key: key, Type: Int64Type, Int64: val}
	case float64:
		return Field{Key: key, Type: Float64Type, Float64: val}
	case bool:
		var b int64
		if val {
			b = 1
		}
		return Field{Key: key, Type: BoolType, Int64: b}
	case time.Time:
		return Field{Key: key, Type: TimeType, Int64: val.UnixNano()}
	case time.Duration:
		return Field{Key: key, Type: DurationType, Int64: int64(val)}
	case error:
		return Field{Key: key, Type: ErrorType, Str: val.Error()}
	default:
		return Field{Key: key, Type: AnyType, Any: v}
	}
}
