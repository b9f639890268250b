package rank

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"whirlscope/internal/model"
)

func testPool(address, tvl, volume, fees, yield string) model.Whirlpool {
	return model.Whirlpool{
		Address: address,
		TvlUsdc: tvl,
		TokenA:  model.SimpleTokenInfo{Symbol: "SOL"},
		TokenB:  model.SimpleTokenInfo{Symbol: "USDC"},
		Stats: map[model.TimePeriod]model.PoolStats{
			model.Period24h: {
				Volume:       volume,
				Fees:         fees,
				YieldOverTvl: yield,
			},
		},
	}
}

func TestParseMetric(t *testing.T) {
	for _, name := range []string{"volume", "fees", "yield", "tvl"} {
		metric, err := ParseMetric(name)
		require.NoError(t, err)
		assert.Equal(t, Metric(name), metric)
	}

	_, err := ParseMetric("apr")
	require.Error(t, err)
}

func TestTopPoolsByVolume(t *testing.T) {
	pools := []model.Whirlpool{
		testPool("low", "100", "10", "1", "0.01"),
		testPool("high", "200", "1000", "5", "0.02"),
		testPool("mid", "300", "500", "2", "0.03"),
	}

	entries := TopPools(pools, model.Period24h, ByVolume, 2)
	require.Len(t, entries, 2)
	assert.Equal(t, "high", entries[0].Address)
	assert.Equal(t, float64(1000), entries[0].Value)
	assert.Equal(t, "mid", entries[1].Address)
}

func TestTopPoolsByTvlIgnoresStatsWindow(t *testing.T) {
	noStats := model.Whirlpool{
		Address: "bare",
		TvlUsdc: "5000",
		TokenA:  model.SimpleTokenInfo{Symbol: "A"},
		TokenB:  model.SimpleTokenInfo{Symbol: "B"},
	}
	pools := []model.Whirlpool{
		testPool("small", "100", "10", "1", "0.01"),
		noStats,
	}

	entries := TopPools(pools, model.Period24h, ByTvl, 0)
	require.Len(t, entries, 2)
	assert.Equal(t, "bare", entries[0].Address)
	assert.Equal(t, float64(5000), entries[0].Value)
}

func TestTopPoolsSkipsMissingWindow(t *testing.T) {
	missing := testPool("missing", "100", "10", "1", "0.01")
	missing.Stats = map[model.TimePeriod]model.PoolStats{
		model.Period1h: {Volume: "99", Fees: "9", YieldOverTvl: "0.9"},
	}
	pools := []model.Whirlpool{
		missing,
		testPool("present", "100", "10", "1", "0.01"),
	}

	entries := TopPools(pools, model.Period24h, ByVolume, 0)
	require.Len(t, entries, 1)
	assert.Equal(t, "present", entries[0].Address)
}

func TestTopPoolsSkipsUnparseableNumbers(t *testing.T) {
	bad := testPool("bad", "100", "not-a-number", "1", "0.01")
	pools := []model.Whirlpool{
		bad,
		testPool("good", "100", "10", "1", "0.01"),
	}

	entries := TopPools(pools, model.Period24h, ByVolume, 0)
	require.Len(t, entries, 1)
	assert.Equal(t, "good", entries[0].Address)
}

func TestTopPoolsTieBreaksByAddress(t *testing.T) {
	pools := []model.Whirlpool{
		testPool("zeta", "100", "50", "1", "0.01"),
		testPool("alpha", "100", "50", "1", "0.01"),
	}

	entries := TopPools(pools, model.Period24h, ByVolume, 0)
	require.Len(t, entries, 2)
	assert.Equal(t, "alpha", entries[0].Address)
	assert.Equal(t, "zeta", entries[1].Address)
}

func TestTopPoolsZeroLimitReturnsAll(t *testing.T) {
	pools := []model.Whirlpool{
		testPool("a", "1", "1", "1", "1"),
		testPool("b", "2", "2", "2", "2"),
	}

	entries := TopPools(pools, model.Period24h, ByFees, 0)
	assert.Len(t, entries, 2)
}
