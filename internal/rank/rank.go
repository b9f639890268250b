// Package rank orders fetched pools by their served per-window statistics.
package rank

import (
	"fmt"
	"sort"
	"strconv"

	"whirlscope/internal/model"
)

// Metric selects which statistic a ranking is ordered by.
type Metric string

const (
	ByVolume Metric = "volume"
	ByFees   Metric = "fees"
	ByYield  Metric = "yield"
	ByTvl    Metric = "tvl"
)

// ParseMetric converts a CLI string into a Metric.
func ParseMetric(s string) (Metric, error) {
	switch Metric(s) {
	case ByVolume, ByFees, ByYield, ByTvl:
		return Metric(s), nil
	default:
		return "", fmt.Errorf("unknown metric %q", s)
	}
}

// Entry is one ranked pool.
type Entry struct {
	Address string
	SymbolA string
	SymbolB string
	TvlUsdc float64
	Value   float64
}

// TopPools returns the n highest pools by the chosen metric over the given
// window. Pools whose stats lack the window, or whose served numbers do not
// parse as decimals, are skipped. Ties break by address so the order is
// deterministic.
func TopPools(pools []model.Whirlpool, period model.TimePeriod, metric Metric, n int) []Entry {
	entries := make([]Entry, 0, len(pools))
	for _, pool := range pools {
		tvl, err := strconv.ParseFloat(pool.TvlUsdc, 64)
		if err != nil {
			continue
		}

		var value float64
		if metric == ByTvl {
			value = tvl
		} else {
			stats, ok := pool.Stats[period]
			if !ok {
				continue
			}
			raw := ""
			switch metric {
			case ByVolume:
				raw = stats.Volume
			case ByFees:
				raw = stats.Fees
			case ByYield:
				raw = stats.YieldOverTvl
			}
			value, err = strconv.ParseFloat(raw, 64)
			if err != nil {
				continue
			}
		}

		entries = append(entries, Entry{
			Address: pool.Address,
			SymbolA: pool.TokenA.Symbol,
			SymbolB: pool.TokenB.Symbol,
			TvlUsdc: tvl,
			Value:   value,
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Value != entries[j].Value {
			return entries[i].Value > entries[j].Value
		}
		return entries[i].Address < entries[j].Address
	})

	if n > 0 && len(entries) > n {
		entries = entries[:n]
	}
	return entries
}
