package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/terror/rsql/db"
	"github.com/terror/rsql/render"
	"github.com/terror/rsql/sample"
	"github.com/terror/rsql/sql"
)

type operator struct {
	name  string
	short string
	run   func(d *db.Database) (db.Relation, error)
}

var (
	demoCmd = &cobra.Command{
		Use:   "demo [operator...]",
		Short: "Run operators against the sample books and authors",
		Long: "Demo loads the sample books, authors, and classics tables and prints the " +
			"result of each operator; with no arguments, every operator is run.",
		RunE: demoRun,
	}

	operators = []operator{
		{"cross", "every book paired with every author", crossDemo},
		{"join", "books paired with their authors", joinDemo},
		{"left", "every book, with its author or NULL", leftDemo},
		{"right", "every author, with their books or NULL", rightDemo},
		{"full", "every book and every author", fullDemo},
		{"select", "books by Orwell", selectDemo},
		{"project", "the name and author_id of each book", projectDemo},
		{"union", "books and classics", unionDemo},
		{"intersect", "books which are classics", intersectDemo},
		{"except", "books which are not classics", exceptDemo},
		{"distinct", "the author_id of each book, once", distinctDemo},
		{"group", "the number of books by each author", groupDemo},
		{"aggregate", "totals over all books", aggregateDemo},
		{"sort", "books by name", sortDemo},
	}
)

func init() {
	for _, op := range operators {
		demoCmd.ValidArgs = append(demoCmd.ValidArgs, op.name)
	}
	rsqlCmd.AddCommand(demoCmd)
}

func lookupOperator(name string) (operator, bool) {
	for _, op := range operators {
		if op.name == name {
			return op, true
		}
	}
	return operator{}, false
}

func demoRun(cmd *cobra.Command, args []string) error {
	ops := operators
	if len(args) > 0 {
		ops = nil
		for _, arg := range args {
			op, ok := lookupOperator(arg)
			if !ok {
				return fmt.Errorf("rsql: unknown operator: %s", arg)
			}
			ops = append(ops, op)
		}
	}

	d := db.NewDatabase()
	_, _, err := sample.Load(d)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	for _, op := range ops {
		err := runOperator(w, d, op)
		if err != nil {
			return err
		}
	}
	return nil
}

func runOperator(w io.Writer, d *db.Database, op operator) error {
	rel, err := op.run(d)
	if err != nil {
		return fmt.Errorf("rsql: %s: %s", op.name, err)
	}

	fmt.Fprintf(w, "%s: %s\n", op.name, rel.Name())
	err = render.Write(w, rel, renderOpts)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w)
	return err
}

func sampleTables(d *db.Database) (*db.Table[sample.Book], *db.Table[sample.Author], error) {
	books, err := db.From[sample.Book](d, "books")
	if err != nil {
		return nil, nil, err
	}
	authors, err := db.From[sample.Author](d, "authors")
	if err != nil {
		return nil, nil, err
	}
	return books, authors, nil
}

func booksAndClassics(d *db.Database) (*db.Table[sample.Book], *db.Table[sample.Book], error) {
	books, err := db.From[sample.Book](d, "books")
	if err != nil {
		return nil, nil, err
	}
	classics, err := db.From[sample.Book](d, "classics")
	if err != nil {
		return nil, nil, err
	}
	return books, classics, nil
}

func crossDemo(d *db.Database) (db.Relation, error) {
	books, authors, err := sampleTables(d)
	if err != nil {
		return nil, err
	}
	return db.CrossJoin(books, authors), nil
}

func joinDemo(d *db.Database) (db.Relation, error) {
	books, authors, err := sampleTables(d)
	if err != nil {
		return nil, err
	}
	return db.InnerJoin(books, authors, sample.Written), nil
}

func leftDemo(d *db.Database) (db.Relation, error) {
	books, authors, err := sampleTables(d)
	if err != nil {
		return nil, err
	}
	return db.LeftOuterJoin(books, authors, sample.Written), nil
}

func rightDemo(d *db.Database) (db.Relation, error) {
	books, authors, err := sampleTables(d)
	if err != nil {
		return nil, err
	}
	return db.RightOuterJoin(books, authors, sample.Written), nil
}

func fullDemo(d *db.Database) (db.Relation, error) {
	books, authors, err := sampleTables(d)
	if err != nil {
		return nil, err
	}
	return db.FullOuterJoin(books, authors, sample.Written), nil
}

func selectDemo(d *db.Database) (db.Relation, error) {
	books, _, err := sampleTables(d)
	if err != nil {
		return nil, err
	}
	return db.Select(books, func(b sample.Book) bool { return b.AuthorID == 1 }), nil
}

func projectDemo(d *db.Database) (db.Relation, error) {
	books, _, err := sampleTables(d)
	if err != nil {
		return nil, err
	}
	return db.ProjectColumns(books, "name", "author_id")
}

func unionDemo(d *db.Database) (db.Relation, error) {
	books, classics, err := booksAndClassics(d)
	if err != nil {
		return nil, err
	}
	return db.Union(books, classics), nil
}

func intersectDemo(d *db.Database) (db.Relation, error) {
	books, classics, err := booksAndClassics(d)
	if err != nil {
		return nil, err
	}
	return db.Intersect(books, classics), nil
}

func exceptDemo(d *db.Database) (db.Relation, error) {
	books, classics, err := booksAndClassics(d)
	if err != nil {
		return nil, err
	}
	return db.Except(books, classics), nil
}

func distinctDemo(d *db.Database) (db.Relation, error) {
	books, _, err := sampleTables(d)
	if err != nil {
		return nil, err
	}
	authorIDs, err := db.ProjectColumns(books, "author_id")
	if err != nil {
		return nil, err
	}
	return db.Distinct(authorIDs), nil
}

func groupDemo(d *db.Database) (db.Relation, error) {
	books, authors, err := sampleTables(d)
	if err != nil {
		return nil, err
	}

	type row = db.JoinedRow[sample.Author, sample.Book]
	joined := db.LeftOuterJoin(authors, books,
		func(a sample.Author, b sample.Book) bool {
			return sample.Written(b, a)
		})
	return db.GroupBy(joined,
		db.By("author", func(r row) sql.Value { return sql.StringValue(r.Left.Row.Name) }),
		db.Count("books",
			func(r row) sql.Value {
				if !r.Right.Valid {
					return nil
				}
				return sql.Int64Value(r.Right.Row.ID)
			}))
}

func aggregateDemo(d *db.Database) (db.Relation, error) {
	books, _, err := sampleTables(d)
	if err != nil {
		return nil, err
	}

	name := func(b sample.Book) sql.Value { return sql.StringValue(b.Name) }
	return db.AggregateAll(books,
		db.CountAll[sample.Book]("count"),
		db.Min("first", name),
		db.Max("last", name),
		db.Avg("avg_id", func(b sample.Book) sql.Value { return sql.Int64Value(b.ID) }))
}

func sortDemo(d *db.Database) (db.Relation, error) {
	books, _, err := sampleTables(d)
	if err != nil {
		return nil, err
	}
	return db.Sort(books,
		db.Asc(func(b sample.Book) sql.Value { return sql.StringValue(b.Name) })), nil
}
