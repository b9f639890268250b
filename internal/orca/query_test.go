package orca

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"whirlscope/internal/model"
)

func TestQueryBuilderOrderAndRepeats(t *testing.T) {
	var q queryBuilder
	q.add("b", "2")
	q.add("a", "1")
	q.addStringSlice("list", []string{"x", "y", "z"})

	// Insertion order is preserved; keys are never sorted.
	assert.Equal(t, "b=2&a=1&list=x&list=y&list=z", q.encode())
}

func TestQueryBuilderEscaping(t *testing.T) {
	var q queryBuilder
	q.add("q", "sol usdc")
	q.add("next", "a/b+c")

	assert.Equal(t, "q=sol+usdc&next=a%2Fb%2Bc", q.encode())
}

func TestTokensParamsEmpty(t *testing.T) {
	assert.Equal(t, "", TokensParams{}.encode())
}

func TestTokensParamsFull(t *testing.T) {
	params := TokensParams{
		Next:          String("n1"),
		Previous:      String("p1"),
		Size:          Uint32(25),
		SortBy:        String("volume"),
		SortDirection: String("desc"),
		Tokens:        String("orca"),
	}

	assert.Equal(t,
		"next=n1&previous=p1&size=25&sort_by=volume&sort_direction=desc&tokens=orca",
		params.encode())
}

func TestPoolsParamsEmpty(t *testing.T) {
	assert.Equal(t, "", PoolsParams{}.encode())
}

func TestPoolsParamsFull(t *testing.T) {
	params := PoolsParams{
		SortBy:                    String("tvl"),
		SortDirection:             String("desc"),
		Next:                      String("n1"),
		Previous:                  String("p1"),
		HasRewards:                Bool(true),
		HasWarning:                Bool(false),
		HasAdaptiveFee:            Bool(true),
		IsWavebreak:               Bool(false),
		MinTvl:                    Float64(1000),
		MinVolume:                 Float64(2500.5),
		MinLockedLiquidityPercent: Float64(0.5),
		Size:                      Uint32(50),
		Token:                     []uint64{1, 2},
		TokensBothOf:              []string{"mintA", "mintB"},
		Addresses:                 []string{"x", "y", "z"},
		Stats:                     []model.TimePeriod{model.Period5m, model.Period24h},
		IncludeBlocked:            Bool(true),
	}

	assert.Equal(t,
		"sortBy=tvl&sortDirection=desc&next=n1&previous=p1"+
			"&hasRewards=true&hasWarning=false&hasAdaptiveFee=true&isWavebreak=false"+
			"&minTvl=1000&minVolume=2500.5&minLockedLiquidityPercent=0.5&size=50"+
			"&token=1&token=2&tokensBothOf=mintA&tokensBothOf=mintB"+
			"&addresses=x&addresses=y&addresses=z&stats=5m&stats=24h&includeBlocked=true",
		params.encode())
}

func TestSearchPoolsParamsAlwaysEmitsQ(t *testing.T) {
	assert.Equal(t, "q=", SearchPoolsParams{}.encode())
	assert.Equal(t, "q=sol", SearchPoolsParams{Q: "sol"}.encode())
}

func TestSearchPoolsParamsFull(t *testing.T) {
	params := SearchPoolsParams{
		Q:                  "sol",
		Next:               String("n1"),
		Size:               Uint32(10),
		SortBy:             String("volume"),
		SortDirection:      String("asc"),
		MinTvl:             Float64(100),
		MinVolume:          Float64(200),
		Stats:              []model.TimePeriod{model.Period1h},
		UserTokens:         []string{"u1", "u2"},
		HasRewards:         Bool(true),
		VerifiedOnly:       Bool(true),
		HasLockedLiquidity: Bool(false),
	}

	assert.Equal(t,
		"q=sol&next=n1&size=10&sortBy=volume&sortDirection=asc"+
			"&minTvl=100&minVolume=200&stats=1h&userTokens=u1&userTokens=u2"+
			"&hasRewards=true&verifiedOnly=true&hasLockedLiquidity=false",
		params.encode())
}

func TestFloatEncodingIsPlainDecimal(t *testing.T) {
	var q queryBuilder
	q.addFloat64("minTvl", Float64(1234567.25))
	q.addFloat64("minVolume", Float64(0.000001))

	assert.Equal(t, "minTvl=1234567.25&minVolume=0.000001", q.encode())
}
