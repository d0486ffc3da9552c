// Package render draws tables as text grids.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/terror/rsql/sql"
)

// Source is anything with a header and rows of values; every db table is a Source.
type Source interface {
	Columns() []string
	Values() [][]sql.Value
}

type Options struct {
	Border  bool
	RowLine bool
	Count   bool
}

var DefaultOptions = Options{Border: true, Count: true}

// Write draws src to w. NULL is shown as NULL and strings are shown without quotes.
func Write(w io.Writer, src Source, opts Options) error {
	tw := tablewriter.NewWriter(w)
	tw.SetAutoFormatHeaders(false)
	tw.SetAutoWrapText(false)
	tw.SetBorder(opts.Border)
	tw.SetRowLine(opts.RowLine)
	tw.SetHeader(src.Columns())

	for _, vals := range src.Values() {
		row := make([]string, len(vals))
		for vdx, v := range vals {
			row[vdx] = sql.Display(v)
		}
		tw.Append(row)
	}
	tw.Render()

	if opts.Count {
		_, err := fmt.Fprintf(w, "(%d rows)\n", tw.NumLines())
		return err
	}
	return nil
}

// String is Write to a string.
func String(src Source, opts Options) (string, error) {
	var sb strings.Builder
	err := Write(&sb, src, opts)
	if err != nil {
		return "", err
	}
	return sb.String(), nil
}
