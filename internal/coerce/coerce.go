package coerce

import (
	"encoding/binary"
	"errors"
	"fmt"
	"time"
)

// ErrUnsupportedType is returned when a value has no wire representation.
var ErrUnsupportedType = errors.New("unsupported type")

// Bytes converts text or raw bytes into the byte form the wire protocol expects.
func Bytes(v any) ([]byte, error) {
	switch val := v.(type) {
	case []byte:
		return val, nil
	case string:
		return []byte(val), nil
	default:
		return nil, fmt.Errorf("%w: %T cannot be converted to bytes", ErrUnsupportedType, v)
	}
}

// Value converts a cell value into bytes. Signed integers are widened to
// int64 and stored as 8-byte big-endian two's complement so the server can
// increment them.
func Value(v any) ([]byte, error) {
	switch val := v.(type) {
	case int64:
		return Int64(val), nil
	case int:
		return Int64(int64(val)), nil
	case int32:
		return Int64(int64(val)), nil
	case int16:
		return Int64(int64(val)), nil
	case int8:
		return Int64(int64(val)), nil
	default:
		return Bytes(v)
	}
}

// Int64 encodes n as 8 big-endian bytes.
func Int64(n int64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, uint64(n))
	return b
}

// Micros returns microseconds since the Unix epoch truncated to millisecond
// granularity, which is the finest resolution the service stores.
func Micros(t time.Time) int64 {
	return t.UnixMilli() * 1000
}
