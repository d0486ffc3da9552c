package db

import (
	"fmt"
	"sync"

	log "github.com/sirupsen/logrus"
	sorted "github.com/tobshub/go-sortedmap"
)

type tableEntry struct {
	name  string
	table Relation
}

func tableEntryLess(a, b tableEntry) bool {
	return a.name < b.name
}

// Database is a registry of tables by name. It does not look at the rows of its tables. The
// zero value is an empty database.
type Database struct {
	mutex  sync.Mutex
	tables *sorted.SortedMap[string, tableEntry]
}

func NewDatabase() *Database {
	return &Database{
		tables: sorted.New[string, tableEntry](0, tableEntryLess),
	}
}

func (d *Database) registry() *sorted.SortedMap[string, tableEntry] {
	if d.tables == nil {
		d.tables = sorted.New[string, tableEntry](0, tableEntryLess)
	}
	return d.tables
}

// CreateTable creates, registers, and returns an empty table. The table is shared between
// the database and the caller. It fails with ErrNameConflict if the name is already in use.
func CreateTable[T Row](d *Database, name string) (*Table[T], error) {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	tables := d.registry()
	if _, ok := tables.Get(name); ok {
		return nil, fmt.Errorf("%w: %s", ErrNameConflict, name)
	}

	tbl := NewTable[T](name)
	tables.Insert(name, tableEntry{name: name, table: tbl})

	log.WithFields(log.Fields{
		"table":   name,
		"columns": len(tbl.Columns()),
	}).Info("table created")
	return tbl, nil
}

// GetTable returns the named table if it exists and holds rows of type T.
func GetTable[T Row](d *Database, name string) (*Table[T], bool) {
	tbl, err := From[T](d, name)
	if err != nil {
		return nil, false
	}
	return tbl, true
}

// From is GetTable with the reason for a failed lookup: ErrTableNotFound or
// ErrInvalidRowType.
func From[T Row](d *Database, name string) (*Table[T], error) {
	rel, ok := d.Table(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrTableNotFound, name)
	}
	tbl, ok := rel.(*Table[T])
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrInvalidRowType, name)
	}
	return tbl, nil
}

// Table returns the named table without regard to its row type.
func (d *Database) Table(name string) (Relation, bool) {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	te, ok := d.registry().Get(name)
	if !ok {
		return nil, false
	}
	return te.table, true
}

// TableNames returns the names of the registered tables in ascending order.
func (d *Database) TableNames() []string {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	names := []string{}
	iterCh, err := d.registry().IterCh()
	if err != nil {
		// An empty map has nothing to iterate over.
		return names
	}
	for rec := range iterCh.Records() {
		names = append(names, rec.Val.name)
	}
	return names
}

func (d *Database) Len() int {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	return d.registry().Len()
}
