package db

import (
	"github.com/google/btree"

	"github.com/terror/rsql/sql"
)

type keyItem string

func (ki keyItem) Less(item btree.Item) bool {
	return ki < item.(keyItem)
}

// keySet holds the keys of rows seen so far.
type keySet struct {
	tree *btree.BTree
}

func newKeySet() keySet {
	return keySet{tree: btree.New(16)}
}

// add returns false if the key was already in the set.
func (ks keySet) add(key keyItem) bool {
	return ks.tree.ReplaceOrInsert(key) == nil
}

func (ks keySet) has(key keyItem) bool {
	return ks.tree.Has(key)
}

func rowKey(row Row) keyItem {
	return keyItem(sql.MakeKey(row.Values()))
}

func rowKeys[T Row](rows []T) keySet {
	ks := newKeySet()
	for _, row := range rows {
		ks.add(rowKey(row))
	}
	return ks
}

// Union returns the rows of left followed by the rows of right, without duplicates.
func Union[T Row](left, right *Table[T]) *Table[T] {
	out := derive(left.Name()+"_union_"+right.Name(), left)
	seen := newKeySet()
	for _, rows := range [][]T{left.Rows(), right.Rows()} {
		for _, row := range rows {
			if seen.add(rowKey(row)) {
				out.rows = append(out.rows, row)
			}
		}
	}

	logOp("union", out)
	return out
}

// Intersect returns the rows of left which are equal to a row of right, without duplicates.
func Intersect[T Row](left, right *Table[T]) *Table[T] {
	out := derive(left.Name()+"_intersect_"+right.Name(), left)
	inRight := rowKeys(right.Rows())
	seen := newKeySet()
	for _, row := range left.Rows() {
		key := rowKey(row)
		if inRight.has(key) && seen.add(key) {
			out.rows = append(out.rows, row)
		}
	}

	logOp("intersect", out)
	return out
}

// Except returns the rows of left which are not equal to any row of right, without
// duplicates.
func Except[T Row](left, right *Table[T]) *Table[T] {
	out := derive(left.Name()+"_except_"+right.Name(), left)
	inRight := rowKeys(right.Rows())
	seen := newKeySet()
	for _, row := range left.Rows() {
		key := rowKey(row)
		if !inRight.has(key) && seen.add(key) {
			out.rows = append(out.rows, row)
		}
	}

	logOp("except", out)
	return out
}

// Distinct returns the rows of t without duplicates, keeping the first of each.
func Distinct[T Row](t *Table[T]) *Table[T] {
	out := derive(t.Name()+"_distinct", t)
	seen := newKeySet()
	for _, row := range t.Rows() {
		if seen.add(rowKey(row)) {
			out.rows = append(out.rows, row)
		}
	}

	logOp("distinct", out)
	return out
}
