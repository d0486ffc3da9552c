package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/terror/rsql/db"
	"github.com/terror/rsql/render"
	"github.com/terror/rsql/sample"
	"github.com/terror/rsql/sql"
)

type tableInfo struct {
	Name   string
	Header []string
	Rows   int
}

func (_ tableInfo) Columns() []string {
	return []string{"table", "columns", "rows"}
}

func (ti tableInfo) Values() []sql.Value {
	return []sql.Value{
		sql.StringValue(ti.Name),
		sql.StringValue(strings.Join(ti.Header, ", ")),
		sql.Int64Value(ti.Rows),
	}
}

func init() {
	rsqlCmd.AddCommand(
		&cobra.Command{
			Use:   "tables",
			Short: "List the sample tables",
			Args:  cobra.NoArgs,
			RunE:  tablesRun,
		})
}

func listTables(d *db.Database) *db.Table[tableInfo] {
	tables := db.NewTable[tableInfo]("tables")
	for _, name := range d.TableNames() {
		rel, ok := d.Table(name)
		if !ok {
			continue
		}
		tables.Insert(tableInfo{Name: name, Header: rel.Columns(), Rows: rel.Len()})
	}
	return tables
}

func tablesRun(cmd *cobra.Command, args []string) error {
	d := db.NewDatabase()
	_, _, err := sample.Load(d)
	if err != nil {
		return err
	}

	return render.Write(cmd.OutOrStdout(), listTables(d), renderOpts)
}
