package db

import (
	"fmt"

	"github.com/terror/rsql/sql"
)

// Aggregator accumulates the values of one group and produces their total.
type Aggregator interface {
	Accumulate(val sql.Value) error
	Total() (sql.Value, error)
}

type MakeAggregator func() Aggregator

// Aggregate describes one aggregate column of GroupBy: Arg extracts the value to aggregate
// from each row and Make returns a new Aggregator for each group.
type Aggregate[T Row] struct {
	Name string
	Arg  func(T) sql.Value
	Make MakeAggregator
}

// Count counts the rows for which arg is not NULL.
func Count[T Row](name string, arg func(T) sql.Value) Aggregate[T] {
	return Aggregate[T]{Name: name, Arg: arg, Make: makeCountAggregator}
}

// CountAll counts the rows.
func CountAll[T Row](name string) Aggregate[T] {
	return Aggregate[T]{Name: name, Make: makeCountAllAggregator}
}

func Sum[T Row](name string, arg func(T) sql.Value) Aggregate[T] {
	return Aggregate[T]{Name: name, Arg: arg, Make: makeSumAggregator}
}

func Avg[T Row](name string, arg func(T) sql.Value) Aggregate[T] {
	return Aggregate[T]{Name: name, Arg: arg, Make: makeAvgAggregator}
}

func Min[T Row](name string, arg func(T) sql.Value) Aggregate[T] {
	return Aggregate[T]{Name: name, Arg: arg, Make: makeMinAggregator}
}

func Max[T Row](name string, arg func(T) sql.Value) Aggregate[T] {
	return Aggregate[T]{Name: name, Arg: arg, Make: makeMaxAggregator}
}

// Custom is an aggregate computed by a caller supplied Aggregator.
func Custom[T Row](name string, arg func(T) sql.Value, maker MakeAggregator) Aggregate[T] {
	return Aggregate[T]{Name: name, Arg: arg, Make: maker}
}

func (agg Aggregate[T]) arg(row T) sql.Value {
	if agg.Arg == nil {
		return nil
	}
	return agg.Arg(row)
}

type avgAggregator struct {
	sumAggregator
	count sql.Int64Value
}

func (aa *avgAggregator) Accumulate(val sql.Value) error {
	err := aa.sumAggregator.Accumulate(val)
	if err != nil {
		return err
	}
	if val != nil {
		aa.count += 1
	}
	return nil
}

func (aa *avgAggregator) Total() (sql.Value, error) {
	if aa.nonNull {
		switch s := aa.sum.(type) {
		case sql.Float64Value:
			return s / sql.Float64Value(aa.count), nil
		case sql.Int64Value:
			return sql.Float64Value(s) / sql.Float64Value(aa.count), nil
		}
	}
	return nil, nil
}

func makeAvgAggregator() Aggregator {
	return &avgAggregator{}
}

type countAggregator struct {
	count int64
}

func (ca *countAggregator) Accumulate(val sql.Value) error {
	if val != nil {
		ca.count += 1
	}
	return nil
}

func (ca *countAggregator) Total() (sql.Value, error) {
	return sql.Int64Value(ca.count), nil
}

func makeCountAggregator() Aggregator {
	return &countAggregator{}
}

type countAllAggregator struct {
	count int64
}

func (caa *countAllAggregator) Accumulate(val sql.Value) error {
	caa.count += 1
	return nil
}

func (caa *countAllAggregator) Total() (sql.Value, error) {
	return sql.Int64Value(caa.count), nil
}

func makeCountAllAggregator() Aggregator {
	return &countAllAggregator{}
}

// extremeAggregator keeps the greatest value when max is set and the least otherwise.
type extremeAggregator struct {
	value sql.Value
	max   bool
}

func (ea *extremeAggregator) Accumulate(val sql.Value) error {
	if val == nil {
		return nil
	}
	if ea.value == nil {
		ea.value = val
		return nil
	}

	cmp, err := ea.value.Compare(val)
	if err != nil {
		return fmt.Errorf("db: min/max aggregator: %s", err)
	}
	if (ea.max && cmp < 0) || (!ea.max && cmp > 0) {
		ea.value = val
	}
	return nil
}

func (ea *extremeAggregator) Total() (sql.Value, error) {
	return ea.value, nil
}

func makeMaxAggregator() Aggregator {
	return &extremeAggregator{max: true}
}

func makeMinAggregator() Aggregator {
	return &extremeAggregator{}
}

type sumAggregator struct {
	sum     sql.Value
	nonNull bool
}

func (sa *sumAggregator) add(v2 sql.Value) error {
	switch v1 := sa.sum.(type) {
	case sql.Int64Value:
		switch v2 := v2.(type) {
		case sql.Int64Value:
			s := v1 + v2
			if (s > v1) != (v2 > 0) {
				return fmt.Errorf("db: sum aggregator integer overflow: %d %d", v1, v2)
			}
			sa.sum = s
			return nil
		case sql.Float64Value:
			sa.sum = sql.Float64Value(v1) + v2
			return nil
		}
	case sql.Float64Value:
		switch v2 := v2.(type) {
		case sql.Int64Value:
			sa.sum = v1 + sql.Float64Value(v2)
			return nil
		case sql.Float64Value:
			sa.sum = v1 + v2
			return nil
		}
	}
	return fmt.Errorf("db: sum aggregator: want number got %v", v2)
}

func (sa *sumAggregator) Accumulate(val sql.Value) error {
	if val == nil {
		return nil
	}
	if sa.nonNull {
		return sa.add(val)
	}

	switch val.(type) {
	case sql.Float64Value, sql.Int64Value:
		sa.sum = val
		sa.nonNull = true
		return nil
	}
	return fmt.Errorf("db: sum aggregator: want number got %v", val)
}

func (sa *sumAggregator) Total() (sql.Value, error) {
	if sa.nonNull {
		return sa.sum, nil
	}
	return nil, nil
}

func makeSumAggregator() Aggregator {
	return &sumAggregator{}
}
