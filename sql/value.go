package sql

import (
	"fmt"
	"strings"
)

const (
	NullString  = "NULL"
	TrueString  = "true"
	FalseString = "false"
)

// Value is a single column value of a row. A nil Value is NULL.
type Value interface {
	fmt.Stringer

	// return -1 if v1 < v2
	// return 0 if v1 == v2
	// return 1 if v1 > v2
	Compare(v2 Value) (int, error)
}

type BoolValue bool

func (b BoolValue) String() string {
	if b {
		return TrueString
	}
	return FalseString
}

func (b1 BoolValue) Compare(v2 Value) (int, error) {
	if b2, ok := v2.(BoolValue); ok {
		if b1 == b2 {
			return 0, nil
		} else if b2 {
			return -1, nil
		}
		return 1, nil
	}
	return 0, fmt.Errorf("sql: want boolean got %v", v2)
}

type Int64Value int64

func (i Int64Value) String() string {
	return fmt.Sprintf("%v", int64(i))
}

func (i1 Int64Value) Compare(v2 Value) (int, error) {
	switch v2 := v2.(type) {
	case Int64Value:
		if i1 < v2 {
			return -1, nil
		} else if i1 > v2 {
			return 1, nil
		}
		return 0, nil
	case Float64Value:
		return Float64Value(i1).Compare(v2)
	}
	return 0, fmt.Errorf("sql: want number got %v", v2)
}

type Float64Value float64

func (d Float64Value) String() string {
	return fmt.Sprintf("%v", float64(d))
}

func (d1 Float64Value) Compare(v2 Value) (int, error) {
	var d2 Float64Value
	switch v2 := v2.(type) {
	case Int64Value:
		d2 = Float64Value(v2)
	case Float64Value:
		d2 = v2
	default:
		return 0, fmt.Errorf("sql: want number got %v", v2)
	}

	if d1 < d2 {
		return -1, nil
	} else if d1 > d2 {
		return 1, nil
	}
	return 0, nil
}

type StringValue string

func (s StringValue) String() string {
	return fmt.Sprintf("'%s'", string(s))
}

func (s1 StringValue) Compare(v2 Value) (int, error) {
	if s2, ok := v2.(StringValue); ok {
		return strings.Compare(string(s1), string(s2)), nil
	}
	return 0, fmt.Errorf("sql: want string got %v", v2)
}

// Compare orders any two values: NULL sorts first, then booleans, numbers, and strings.
func Compare(v1, v2 Value) int {
	if v1 == nil {
		if v2 == nil {
			return 0
		}
		return -1
	}
	if v2 == nil {
		return 1
	}

	r1, r2 := rank(v1), rank(v2)
	if r1 < r2 {
		return -1
	} else if r1 > r2 {
		return 1
	}
	cmp, _ := v1.Compare(v2)
	return cmp
}

func rank(v Value) int {
	switch v.(type) {
	case BoolValue:
		return 1
	case Float64Value, Int64Value:
		return 2
	case StringValue:
		return 3
	default:
		panic(fmt.Sprintf("unexpected type for sql.Value: %T: %v", v, v))
	}
}

// Format returns v as it appears in query output; strings keep their quotes.
func Format(v Value) string {
	if v == nil {
		return NullString
	}
	return v.String()
}

// Display is Format without the quotes around strings.
func Display(v Value) string {
	if s, ok := v.(StringValue); ok {
		return string(s)
	}
	return Format(v)
}

// Values converts Go values into sql values: bool, the integer types, float32 and float64,
// string, and nil are accepted.
func Values(vals ...interface{}) []Value {
	ret := make([]Value, len(vals))
	for vdx, v := range vals {
		switch v := v.(type) {
		case nil:
			ret[vdx] = nil
		case Value:
			ret[vdx] = v
		case bool:
			ret[vdx] = BoolValue(v)
		case int:
			ret[vdx] = Int64Value(v)
		case int32:
			ret[vdx] = Int64Value(v)
		case int64:
			ret[vdx] = Int64Value(v)
		case uint32:
			ret[vdx] = Int64Value(v)
		case float32:
			ret[vdx] = Float64Value(v)
		case float64:
			ret[vdx] = Float64Value(v)
		case string:
			ret[vdx] = StringValue(v)
		default:
			panic(fmt.Sprintf("sql: unexpected type for value: %T: %v", v, v))
		}
	}
	return ret
}
