package db

import (
	"github.com/terror/rsql/sql"
)

// Row is implemented by every record type stored in a Table. Columns returns the header and
// Values returns the display values in the same order; a nil value is NULL. For static row
// types, Columns must not depend on the contents of the receiver: the header of a table is
// taken from the zero value of its row type.
type Row interface {
	Columns() []string
	Values() []sql.Value
}

// Nullable is a row which may be absent, as one side of an outer join is when it has no
// match. An absent row contributes a NULL for each of its columns.
type Nullable[T Row] struct {
	Row   T
	Valid bool

	columns []string
}

// Some returns a present Nullable.
func Some[T Row](row T) Nullable[T] {
	return Nullable[T]{Row: row, Valid: true}
}

// Null returns an absent row with the given header.
func Null[T Row](columns []string) Nullable[T] {
	return Nullable[T]{columns: columns}
}

func (n Nullable[T]) Columns() []string {
	if n.Valid {
		return n.Row.Columns()
	} else if n.columns != nil {
		return n.columns
	}
	var zero T
	return zero.Columns()
}

func (n Nullable[T]) Values() []sql.Value {
	if n.Valid {
		return n.Row.Values()
	}
	return make([]sql.Value, len(n.Columns()))
}

// JoinedRow is the row produced by the join operators: the columns of the left row followed
// by the columns of the right row.
type JoinedRow[L, R Row] struct {
	Left  Nullable[L]
	Right Nullable[R]
}

func (jr JoinedRow[L, R]) Columns() []string {
	return concatColumns(jr.Left.Columns(), jr.Right.Columns())
}

func (jr JoinedRow[L, R]) Values() []sql.Value {
	lv := jr.Left.Values()
	rv := jr.Right.Values()
	vals := make([]sql.Value, 0, len(lv)+len(rv))
	vals = append(vals, lv...)
	return append(vals, rv...)
}

type valueRow struct {
	columns []string
	values  []sql.Value
}

func (vr valueRow) Columns() []string {
	return vr.columns
}

func (vr valueRow) Values() []sql.Value {
	return vr.values
}

// Get returns the value of the named column.
func (vr valueRow) Get(col string) (sql.Value, bool) {
	for cdx, c := range vr.columns {
		if c == col {
			return vr.values[cdx], true
		}
	}
	return nil, false
}

// ProjectedRow is a row narrowed to a list of columns by ProjectColumns.
type ProjectedRow struct {
	valueRow
}

// AggregatedRow is one group of GroupBy: the key columns followed by one column per
// aggregate.
type AggregatedRow struct {
	valueRow
	keys int
}

// Key returns the values of the grouping key.
func (ar AggregatedRow) Key() []sql.Value {
	return ar.values[:ar.keys]
}

// Aggregates returns the aggregate values, in the order the aggregates were given.
func (ar AggregatedRow) Aggregates() []sql.Value {
	return ar.values[ar.keys:]
}

func concatColumns(left, right []string) []string {
	cols := make([]string, 0, len(left)+len(right))
	cols = append(cols, left...)
	return append(cols, right...)
}
