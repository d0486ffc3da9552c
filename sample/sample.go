// Package sample provides the books and authors tables used by the rsql program and tests.
package sample

import (
	"github.com/terror/rsql/db"
	"github.com/terror/rsql/sql"
)

type Book struct {
	ID       int64
	Name     string
	AuthorID int64
}

func (_ Book) Columns() []string {
	return []string{"id", "name", "author_id"}
}

func (b Book) Values() []sql.Value {
	return []sql.Value{sql.Int64Value(b.ID), sql.StringValue(b.Name), sql.Int64Value(b.AuthorID)}
}

type Author struct {
	ID   int64
	Name string
}

func (_ Author) Columns() []string {
	return []string{"id", "name"}
}

func (a Author) Values() []sql.Value {
	return []sql.Value{sql.Int64Value(a.ID), sql.StringValue(a.Name)}
}

// Written joins a book to its author.
func Written(b Book, a Author) bool {
	return b.AuthorID == a.ID
}

var (
	Books = []Book{
		{ID: 1, Name: "1984", AuthorID: 1},
		{ID: 2, Name: "Animal Farm", AuthorID: 1},
		{ID: 3, Name: "Mockingbird", AuthorID: 2},
		{ID: 4, Name: "Dune", AuthorID: 4},
	}

	Authors = []Author{
		{ID: 1, Name: "Orwell"},
		{ID: 2, Name: "Lee"},
		{ID: 3, Name: "Huxley"},
	}

	// Classics shares two books with Books.
	Classics = []Book{
		{ID: 1, Name: "1984", AuthorID: 1},
		{ID: 5, Name: "Brave New World", AuthorID: 3},
		{ID: 4, Name: "Dune", AuthorID: 4},
	}
)

// Load creates the books, authors, and classics tables in d and fills them.
func Load(d *db.Database) (*db.Table[Book], *db.Table[Author], error) {
	books, err := db.CreateTable[Book](d, "books")
	if err != nil {
		return nil, nil, err
	}
	books.InsertMany(Books...)

	authors, err := db.CreateTable[Author](d, "authors")
	if err != nil {
		return nil, nil, err
	}
	authors.InsertMany(Authors...)

	classics, err := db.CreateTable[Book](d, "classics")
	if err != nil {
		return nil, nil, err
	}
	classics.InsertMany(Classics...)

	return books, authors, nil
}
