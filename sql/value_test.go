package sql_test

import (
	"testing"

	"github.com/terror/rsql/sql"
)

func TestCompare(t *testing.T) {
	cases := []struct {
		v1, v2 sql.Value
		cmp    int
	}{
		{nil, sql.BoolValue(true), -1},
		{nil, nil, 0},

		{sql.BoolValue(false), nil, 1},
		{sql.BoolValue(true), sql.BoolValue(true), 0},
		{sql.BoolValue(false), sql.BoolValue(false), 0},
		{sql.BoolValue(false), sql.BoolValue(true), -1},
		{sql.BoolValue(true), sql.BoolValue(false), 1},
		{sql.BoolValue(false), sql.Float64Value(1.23), -1},

		{sql.Float64Value(1.23), sql.BoolValue(false), 1},
		{sql.Float64Value(1.23), sql.Int64Value(123), -1},
		{sql.Float64Value(1.23), sql.StringValue("abc"), -1},
		{sql.Float64Value(1.23), sql.Float64Value(2.34), -1},
		{sql.Float64Value(1.23), sql.Float64Value(1.23), 0},
		{sql.Float64Value(1.23), sql.Float64Value(0.12), 1},

		{sql.Int64Value(123), sql.BoolValue(false), 1},
		{sql.Int64Value(123), sql.Float64Value(1.23), 1},
		{sql.Int64Value(123), sql.StringValue("abc"), -1},
		{sql.Int64Value(123), sql.Int64Value(234), -1},
		{sql.Int64Value(123), sql.Int64Value(123), 0},
		{sql.Int64Value(123), sql.Int64Value(12), 1},

		{sql.StringValue("abc"), sql.BoolValue(false), 1},
		{sql.StringValue("abc"), sql.Float64Value(1.23), 1},
		{sql.StringValue("abc"), sql.Int64Value(123), 1},
		{sql.StringValue("def"), sql.StringValue("ghi"), -1},
		{sql.StringValue("def"), sql.StringValue("def"), 0},
		{sql.StringValue("def"), sql.StringValue("abc"), 1},
	}

	for _, c := range cases {
		cmp := sql.Compare(c.v1, c.v2)
		if cmp != c.cmp {
			t.Errorf("Compare(%v, %v) got %d want %d", c.v1, c.v2, cmp, c.cmp)
		}
	}
}

func TestFormat(t *testing.T) {
	cases := []struct {
		v       sql.Value
		format  string
		display string
	}{
		{nil, "NULL", "NULL"},
		{sql.BoolValue(true), "true", "true"},
		{sql.Int64Value(-12), "-12", "-12"},
		{sql.Float64Value(1.25), "1.25", "1.25"},
		{sql.StringValue("Orwell"), "'Orwell'", "Orwell"},
	}

	for _, c := range cases {
		if s := sql.Format(c.v); s != c.format {
			t.Errorf("Format(%v) got %q want %q", c.v, s, c.format)
		}
		if s := sql.Display(c.v); s != c.display {
			t.Errorf("Display(%v) got %q want %q", c.v, s, c.display)
		}
	}
}

func TestValues(t *testing.T) {
	vals := sql.Values(1, int64(2), uint32(3), 1.5, "abc", true, nil, sql.StringValue("def"))
	want := []sql.Value{sql.Int64Value(1), sql.Int64Value(2), sql.Int64Value(3),
		sql.Float64Value(1.5), sql.StringValue("abc"), sql.BoolValue(true), nil,
		sql.StringValue("def")}
	if len(vals) != len(want) {
		t.Fatalf("Values() got %d values want %d", len(vals), len(want))
	}
	for vdx := range want {
		if vals[vdx] != want[vdx] {
			t.Errorf("Values()[%d] got %v want %v", vdx, vals[vdx], want[vdx])
		}
	}
}
