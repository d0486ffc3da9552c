package db

import (
	"strings"
	"sync"

	log "github.com/sirupsen/logrus"

	"github.com/terror/rsql/sql"
)

// Relation is the row-type independent view of a table.
type Relation interface {
	Name() string
	Columns() []string
	Len() int
	Values() [][]sql.Value
}

// Table is a named, ordered collection of rows of type T. Rows are only ever appended; a
// table may be read by many goroutines while at most one of them inserts.
type Table[T Row] struct {
	mutex   sync.RWMutex
	name    string
	columns []string
	sources []string
	rows    []T
}

// NewTable returns an empty table; its header is the header of T.
func NewTable[T Row](name string) *Table[T] {
	var zero T
	return newTable[T](name, zero.Columns())
}

func newTable[T Row](name string, columns []string) *Table[T] {
	return &Table[T]{
		name:    name,
		columns: columns,
	}
}

// derive returns an empty table with the header of t; its columns keep the tables they
// came from.
func derive[T Row](name string, t *Table[T]) *Table[T] {
	out := newTable[T](name, t.columns)
	out.sources = t.qualifiers()
	return out
}

// qualifiers returns the name of the table each column came from; nil sources means every
// column came from t.
func (t *Table[T]) qualifiers() []string {
	if t.sources != nil {
		return t.sources
	}
	q := make([]string, len(t.columns))
	for cdx := range q {
		q[cdx] = t.name
	}
	return q
}

// columnIndex finds col by name or as table.column; the first match wins.
func (t *Table[T]) columnIndex(col string) int {
	for cdx, c := range t.columns {
		if c == col {
			return cdx
		}
	}

	dot := strings.LastIndexByte(col, '.')
	if dot < 0 {
		return -1
	}
	src, name := col[:dot], col[dot+1:]
	for cdx, q := range t.qualifiers() {
		if q == src && t.columns[cdx] == name {
			return cdx
		}
	}
	return -1
}

func (t *Table[T]) Name() string {
	return t.name
}

func (t *Table[T]) Columns() []string {
	return t.columns
}

func (t *Table[T]) Insert(row T) {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	t.rows = append(t.rows, row)
}

func (t *Table[T]) InsertMany(rows ...T) {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	t.rows = append(t.rows, rows...)
}

// Rows returns the rows in insertion order. The returned slice is a snapshot: rows inserted
// afterwards do not appear in it. It must not be modified.
func (t *Table[T]) Rows() []T {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	n := len(t.rows)
	return t.rows[:n:n]
}

func (t *Table[T]) Len() int {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	return len(t.rows)
}

// Values returns the display values of every row.
func (t *Table[T]) Values() [][]sql.Value {
	rows := t.Rows()
	vals := make([][]sql.Value, 0, len(rows))
	for _, row := range rows {
		vals = append(vals, row.Values())
	}
	return vals
}

func logOp(op string, rel Relation) {
	log.WithFields(log.Fields{
		"op":    op,
		"table": rel.Name(),
		"rows":  rel.Len(),
	}).Debug("operator done")
}
