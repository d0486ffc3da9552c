package sql

import (
	"encoding/binary"
	"fmt"
	"math"
)

const (
	// Values are encoded as a tag followed by a binary representation of the value. Numbers
	// share one scale: an Int64Value which is exactly a float64 is encoded as that
	// Float64Value. Keys compare with bytes.Compare in the same order as Compare, except
	// for integers beyond 2^53 which have no exact float64.
	NullKeyTag        = 128
	BoolKeyTag        = 129
	Int64NegKeyTag    = 130
	Int64NotNegKeyTag = 131
	Float64NaNKeyTag  = 140
	Float64NegKeyTag  = 141
	Float64ZeroKeyTag = 142
	Float64PosKeyTag  = 143
	StringKeyTag      = 150
)

func encodeKeyBytes(buf []byte, bytes []byte) []byte {
	for _, b := range bytes {
		if b == 0 || b == 1 {
			buf = append(buf, 1)
		}
		buf = append(buf, b)
	}
	return append(buf, 0)
}

func exactFloat(i Int64Value) (Float64Value, bool) {
	f := float64(i)
	if f >= math.MaxInt64 || int64(f) != int64(i) {
		return 0, false
	}
	return Float64Value(f), true
}

// AppendKey appends the key encoding of val to buf.
func AppendKey(buf []byte, val Value) []byte {
	switch val := val.(type) {
	case BoolValue:
		buf = append(buf, BoolKeyTag)
		if val {
			buf = append(buf, 1)
		} else {
			buf = append(buf, 0)
		}
	case StringValue:
		buf = append(buf, StringKeyTag)
		buf = encodeKeyBytes(buf, []byte(val))
	case Float64Value:
		if math.IsNaN(float64(val)) {
			buf = append(buf, Float64NaNKeyTag)
		} else if val == 0 {
			buf = append(buf, Float64ZeroKeyTag)
		} else {
			u := math.Float64bits(float64(val))
			if u&(1<<63) != 0 {
				u = ^u
				buf = append(buf, Float64NegKeyTag)
			} else {
				buf = append(buf, Float64PosKeyTag)
			}
			buf = binary.BigEndian.AppendUint64(buf, u)
		}
	case Int64Value:
		if f, ok := exactFloat(val); ok {
			return AppendKey(buf, f)
		}
		if val < 0 {
			buf = append(buf, Int64NegKeyTag)
		} else {
			buf = append(buf, Int64NotNegKeyTag)
		}
		buf = binary.BigEndian.AppendUint64(buf, uint64(val))
	default:
		if val != nil {
			panic(fmt.Sprintf("unexpected type for sql.Value: %T: %v", val, val))
		}
		buf = append(buf, NullKeyTag)
	}
	return buf
}

// MakeKey encodes a row of values; two rows are structurally equal exactly when their keys
// are equal.
func MakeKey(row []Value) []byte {
	var buf []byte
	for _, val := range row {
		buf = AppendKey(buf, val)
	}
	return buf
}
