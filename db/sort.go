package db

import (
	"github.com/google/btree"

	"github.com/terror/rsql/sql"
)

// SortKey extracts one value to sort by; Reverse sorts it in descending order.
type SortKey[T Row] struct {
	Value   func(T) sql.Value
	Reverse bool
}

func Asc[T Row](val func(T) sql.Value) SortKey[T] {
	return SortKey[T]{Value: val}
}

func Desc[T Row](val func(T) sql.Value) SortKey[T] {
	return SortKey[T]{Value: val, Reverse: true}
}

type sortItem[T Row] struct {
	keys []SortKey[T]
	vals []sql.Value
	rdx  int
	row  T
}

func (si sortItem[T]) Less(item btree.Item) bool {
	si2 := item.(sortItem[T])
	for kdx, sk := range si.keys {
		cmp := sql.Compare(si.vals[kdx], si2.vals[kdx])
		if cmp == 0 {
			continue
		}
		if sk.Reverse {
			return cmp > 0
		}
		return cmp < 0
	}
	// The row number makes every item unique and the sort stable.
	return si.rdx < si2.rdx
}

// Sort returns the rows of t ordered by keys, comparing values with sql.Compare; rows with
// equal keys keep their order. NULL sorts first in ascending order and last in descending
// order.
func Sort[T Row](t *Table[T], keys ...SortKey[T]) *Table[T] {
	tree := btree.New(16)
	for rdx, row := range t.Rows() {
		vals := make([]sql.Value, len(keys))
		for kdx, sk := range keys {
			vals[kdx] = sk.Value(row)
		}
		tree.ReplaceOrInsert(sortItem[T]{keys: keys, vals: vals, rdx: rdx, row: row})
	}

	out := derive(t.Name()+"_sorted", t)
	tree.Ascend(
		func(item btree.Item) bool {
			out.rows = append(out.rows, item.(sortItem[T]).row)
			return true
		})

	logOp("sort", out)
	return out
}
