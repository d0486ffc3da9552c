package db

import (
	"github.com/terror/rsql/sql"
)

// GroupKey computes the grouping key of a row; Columns names the key values.
type GroupKey[T Row] struct {
	Columns []string
	Key     func(T) []sql.Value
}

// By is a GroupKey of a single value.
func By[T Row](col string, key func(T) sql.Value) GroupKey[T] {
	return GroupKey[T]{
		Columns: []string{col},
		Key: func(row T) []sql.Value {
			return []sql.Value{key(row)}
		},
	}
}

type group struct {
	key         []sql.Value
	aggregators []Aggregator
}

// GroupBy partitions the rows of t by key and returns one row per distinct key, in the order
// in which the keys first appear: the key values followed by the total of each aggregate.
func GroupBy[T Row](t *Table[T], key GroupKey[T], aggs ...Aggregate[T]) (*Table[AggregatedRow],
	error) {

	out, err := groupRows(t.Name()+"_group", t.Rows(), key, aggs)
	if err != nil {
		return nil, err
	}

	logOp("group", out)
	return out, nil
}

// AggregateAll computes aggs over all of the rows of t as a single group. The result always
// has exactly one row, even when t is empty.
func AggregateAll[T Row](t *Table[T], aggs ...Aggregate[T]) (*Table[AggregatedRow], error) {
	rows := t.Rows()
	key := GroupKey[T]{
		Key: func(row T) []sql.Value {
			return nil
		},
	}

	out, err := groupRows(t.Name()+"_aggregate", rows, key, aggs)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		row, err := totals(&group{aggregators: makeAggregators(aggs)}, out.columns)
		if err != nil {
			return nil, err
		}
		out.rows = append(out.rows, row)
	}

	logOp("aggregate", out)
	return out, nil
}

func makeAggregators[T Row](aggs []Aggregate[T]) []Aggregator {
	aggregators := make([]Aggregator, len(aggs))
	for adx, agg := range aggs {
		aggregators[adx] = agg.Make()
	}
	return aggregators
}

func groupRows[T Row](name string, rows []T, key GroupKey[T],
	aggs []Aggregate[T]) (*Table[AggregatedRow], error) {

	cols := make([]string, 0, len(key.Columns)+len(aggs))
	cols = append(cols, key.Columns...)
	for _, agg := range aggs {
		cols = append(cols, agg.Name)
	}

	var groups []*group
	index := map[string]*group{}
	for _, row := range rows {
		kv := key.Key(row)
		k := string(sql.MakeKey(kv))
		g, ok := index[k]
		if !ok {
			g = &group{key: kv, aggregators: makeAggregators(aggs)}
			index[k] = g
			groups = append(groups, g)
		}

		for adx, agg := range aggs {
			err := g.aggregators[adx].Accumulate(agg.arg(row))
			if err != nil {
				return nil, err
			}
		}
	}

	out := newTable[AggregatedRow](name, cols)
	for _, g := range groups {
		row, err := totals(g, cols)
		if err != nil {
			return nil, err
		}
		out.rows = append(out.rows, row)
	}
	return out, nil
}

func totals(g *group, cols []string) (AggregatedRow, error) {
	vals := make([]sql.Value, 0, len(cols))
	vals = append(vals, g.key...)
	for _, a := range g.aggregators {
		val, err := a.Total()
		if err != nil {
			return AggregatedRow{}, err
		}
		vals = append(vals, val)
	}
	return AggregatedRow{valueRow: valueRow{columns: cols, values: vals}, keys: len(g.key)},
		nil
}
