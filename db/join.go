package db

import (
	"fmt"
)

type joinType int

const (
	crossJoin joinType = iota
	innerJoin
	leftJoin
	rightJoin
	fullJoin
)

var joinTypes = map[joinType]string{
	crossJoin: "cross",
	innerJoin: "join",
	leftJoin:  "left_join",
	rightJoin: "right_join",
	fullJoin:  "full_join",
}

func (jt joinType) String() string {
	return joinTypes[jt]
}

// CrossJoin pairs every row of left with every row of right; the right row varies fastest.
func CrossJoin[L, R Row](left *Table[L], right *Table[R]) *Table[JoinedRow[L, R]] {
	return join(crossJoin, left, right, nil)
}

// InnerJoin is CrossJoin keeping only the pairs for which on returns true.
func InnerJoin[L, R Row](left *Table[L], right *Table[R],
	on func(L, R) bool) *Table[JoinedRow[L, R]] {

	return join(innerJoin, left, right, on)
}

// LeftOuterJoin is InnerJoin plus, in place, each left row which matched no right row
// combined with a NULL right row.
func LeftOuterJoin[L, R Row](left *Table[L], right *Table[R],
	on func(L, R) bool) *Table[JoinedRow[L, R]] {

	return join(leftJoin, left, right, on)
}

// RightOuterJoin is the mirror image of LeftOuterJoin: rows are produced in right row order,
// and each right row which matched no left row is combined with a NULL left row.
func RightOuterJoin[L, R Row](left *Table[L], right *Table[R],
	on func(L, R) bool) *Table[JoinedRow[L, R]] {

	return join(rightJoin, left, right, on)
}

// FullOuterJoin is LeftOuterJoin followed by the right rows which matched no left row, in
// right row order, each combined with a NULL left row.
func FullOuterJoin[L, R Row](left *Table[L], right *Table[R],
	on func(L, R) bool) *Table[JoinedRow[L, R]] {

	return join(fullJoin, left, right, on)
}

func join[L, R Row](jt joinType, left *Table[L], right *Table[R],
	on func(L, R) bool) *Table[JoinedRow[L, R]] {

	lrows := left.Rows()
	rrows := right.Rows()
	lcols := left.Columns()
	rcols := right.Columns()

	out := newTable[JoinedRow[L, R]](fmt.Sprintf("%s_%s_%s", left.Name(), jt, right.Name()),
		concatColumns(lcols, rcols))
	out.sources = concatColumns(left.qualifiers(), right.qualifiers())

	match := func(l L, r R) bool {
		return on == nil || on(l, r)
	}

	if jt == rightJoin {
		for _, r := range rrows {
			rightUsed := false
			for _, l := range lrows {
				if match(l, r) {
					rightUsed = true
					out.rows = append(out.rows, JoinedRow[L, R]{Left: Some(l), Right: Some(r)})
				}
			}
			if !rightUsed {
				out.rows = append(out.rows, JoinedRow[L, R]{Left: Null[L](lcols), Right: Some(r)})
			}
		}

		logOp(jt.String(), out)
		return out
	}

	var rightUsed []bool
	if jt == fullJoin {
		rightUsed = make([]bool, len(rrows))
	}
	needLeft := jt == leftJoin || jt == fullJoin

	for _, l := range lrows {
		leftUsed := false
		for rdx, r := range rrows {
			if match(l, r) {
				leftUsed = true
				if rightUsed != nil {
					rightUsed[rdx] = true
				}
				out.rows = append(out.rows, JoinedRow[L, R]{Left: Some(l), Right: Some(r)})
			}
		}

		// Return the unused left row combined with a NULL right row.
		if !leftUsed && needLeft {
			out.rows = append(out.rows, JoinedRow[L, R]{Left: Some(l), Right: Null[R](rcols)})
		}
	}

	for rdx, used := range rightUsed {
		if !used {
			out.rows = append(out.rows,
				JoinedRow[L, R]{Left: Null[L](lcols), Right: Some(rrows[rdx])})
		}
	}

	logOp(jt.String(), out)
	return out
}
