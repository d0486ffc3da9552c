package db

import (
	"math"
	"testing"

	"github.com/terror/rsql/sql"
)

func TestAggregators(t *testing.T) {
	cases := []struct {
		maker  MakeAggregator
		vals   []sql.Value
		result sql.Value
		fail   bool
	}{
		{
			maker:  makeAvgAggregator,
			vals:   sql.Values(1, 1, nil, 1, 1),
			result: sql.Float64Value(1),
		},
		{
			maker:  makeAvgAggregator,
			vals:   sql.Values(1, 1, 1, 2),
			result: sql.Float64Value(1.25),
		},
		{
			maker:  makeAvgAggregator,
			vals:   sql.Values(1.5, 2, nil),
			result: sql.Float64Value(1.75),
		},
		{
			maker:  makeAvgAggregator,
			vals:   sql.Values(nil, nil),
			result: nil,
		},
		{
			maker: makeAvgAggregator,
			vals:  sql.Values(1, "Orwell"),
			fail:  true,
		},
		{
			maker:  makeCountAggregator,
			vals:   sql.Values(1, 1, 1, 1),
			result: sql.Int64Value(4),
		},
		{
			maker:  makeCountAggregator,
			vals:   sql.Values(1, 1, nil, nil, "Lee", true),
			result: sql.Int64Value(4),
		},
		{
			maker:  makeCountAggregator,
			vals:   sql.Values(nil, nil),
			result: sql.Int64Value(0),
		},
		{
			maker:  makeCountAllAggregator,
			vals:   sql.Values(1, 1, nil, nil, 1, 1),
			result: sql.Int64Value(6),
		},
		{
			maker:  makeMaxAggregator,
			vals:   sql.Values(100.1, -1, 200, nil, 3, -400),
			result: sql.Int64Value(200),
		},
		{
			maker:  makeMaxAggregator,
			vals:   sql.Values("Lee", "Orwell", nil, "Huxley"),
			result: sql.StringValue("Orwell"),
		},
		{
			maker:  makeMaxAggregator,
			vals:   sql.Values(nil, nil),
			result: nil,
		},
		{
			maker: makeMaxAggregator,
			vals:  sql.Values(1, "Orwell"),
			fail:  true,
		},
		{
			maker:  makeMinAggregator,
			vals:   sql.Values(100, -1.1, 200, nil, 3, -400),
			result: sql.Int64Value(-400),
		},
		{
			maker:  makeMinAggregator,
			vals:   sql.Values(nil, nil),
			result: nil,
		},
		{
			maker: makeSumAggregator,
			vals:  sql.Values(int64(math.MaxInt64-5), 6),
			fail:  true,
		},
		{
			maker: makeSumAggregator,
			vals:  sql.Values(int64(math.MinInt64+5), -6),
			fail:  true,
		},
		{
			maker: makeSumAggregator,
			vals:  sql.Values(int64(math.MaxInt64), int64(math.MaxInt64)),
			fail:  true,
		},
		{
			maker:  makeSumAggregator,
			vals:   sql.Values(0, 1, 2, 3, 4, 5, 6, nil, 7, 8, 9),
			result: sql.Int64Value(45),
		},
		{
			maker:  makeSumAggregator,
			vals:   sql.Values(1.234, 10),
			result: sql.Float64Value(11.234),
		},
		{
			maker:  makeSumAggregator,
			vals:   sql.Values(10, 1.234),
			result: sql.Float64Value(11.234),
		},
		{
			maker:  makeSumAggregator,
			vals:   sql.Values(nil, nil),
			result: nil,
		},
		{
			maker: makeSumAggregator,
			vals:  sql.Values("Dune"),
			fail:  true,
		},
		{
			maker: makeSumAggregator,
			vals:  sql.Values(1, true),
			fail:  true,
		},
	}

	for i, c := range cases {
		var failed bool
		a := c.maker()
		for j, v := range c.vals {
			err := a.Accumulate(v)
			if err != nil {
				if !c.fail {
					t.Errorf("cases[%d].Accumulate(vals[%d]) failed with %s", i, j, err)
				}
				failed = true
				break
			}
		}
		if !failed {
			tot, err := a.Total()
			if err != nil {
				if !c.fail {
					t.Errorf("cases[%d].Total() failed with %s", i, err)
				}
				failed = true
			} else if !c.fail && sql.Compare(tot, c.result) != 0 {
				t.Errorf("cases[%d].Total(): got %s want %s", i, sql.Format(tot),
					sql.Format(c.result))
			}
		}
		if c.fail && !failed {
			t.Errorf("cases[%d] did not fail", i)
		}
	}
}

func TestAvgType(t *testing.T) {
	for _, vals := range [][]sql.Value{
		sql.Values(4),
		sql.Values(1, 2, 3),
		sql.Values(1, 2),
		sql.Values(1.5, 2.5),
		sql.Values(2, 1.0),
	} {
		a := makeAvgAggregator()
		for _, v := range vals {
			err := a.Accumulate(v)
			if err != nil {
				t.Fatalf("Accumulate(%s) failed with %s", sql.Format(v), err)
			}
		}
		tot, err := a.Total()
		if err != nil {
			t.Fatalf("Total() failed with %s", err)
		}
		if _, ok := tot.(sql.Float64Value); !ok {
			t.Errorf("avg(%v) got %T want sql.Float64Value", vals, tot)
		}
	}
}
