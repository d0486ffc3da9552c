package db

import (
	"fmt"

	"github.com/terror/rsql/sql"
)

// Select returns the rows of t for which pred returns true.
func Select[T Row](t *Table[T], pred func(T) bool) *Table[T] {
	out := derive(t.Name()+"_select", t)
	for _, row := range t.Rows() {
		if pred(row) {
			out.rows = append(out.rows, row)
		}
	}

	logOp("select", out)
	return out
}

// Project maps every row of t onto the row type P, which declares the projected columns.
func Project[T, P Row](t *Table[T], fn func(T) P) *Table[P] {
	out := NewTable[P](t.Name() + "_project")
	for _, row := range t.Rows() {
		out.rows = append(out.rows, fn(row))
	}

	logOp("project", out)
	return out
}

// ProjectColumns narrows every row of t to the named columns, in the order given. A column
// may be named more than once. A name such as authors.name picks the column of that table,
// which reaches the right side of a join whose sides share column names.
func ProjectColumns[T Row](t *Table[T], cols ...string) (*Table[ProjectedRow], error) {
	src := make([]int, len(cols))
	for cdx, col := range cols {
		idx := t.columnIndex(col)
		if idx < 0 {
			return nil, fmt.Errorf("%w: %s: %s", ErrUnknownColumn, t.Name(), col)
		}
		src[cdx] = idx
	}

	out := newTable[ProjectedRow](t.Name()+"_project", cols)
	for _, row := range t.Rows() {
		vals := row.Values()
		pvals := make([]sql.Value, len(src))
		for cdx, idx := range src {
			pvals[cdx] = vals[idx]
		}
		out.rows = append(out.rows, ProjectedRow{valueRow{columns: cols, values: pvals}})
	}

	logOp("project", out)
	return out, nil
}
