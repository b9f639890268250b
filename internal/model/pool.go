package model

import "encoding/json"

// Whirlpool is a liquidity pool record, the largest payload the API serves.
// adaptiveFee is present only when the pool runs an adaptive fee tier, and
// lockedLiquidityPercent only when lock records exist.
type Whirlpool struct {
	Address                    string                   `json:"address"`
	FeeGrowthGlobalA           string                   `json:"feeGrowthGlobalA"`
	FeeGrowthGlobalB           string                   `json:"feeGrowthGlobalB"`
	FeeRate                    uint32                   `json:"feeRate"`
	Liquidity                  string                   `json:"liquidity"`
	ProtocolFeeOwedA           string                   `json:"protocolFeeOwedA"`
	ProtocolFeeOwedB           string                   `json:"protocolFeeOwedB"`
	ProtocolFeeRate            uint32                   `json:"protocolFeeRate"`
	RewardLastUpdatedTimestamp string                   `json:"rewardLastUpdatedTimestamp"`
	SqrtPrice                  string                   `json:"sqrtPrice"`
	TickCurrentIndex           int32                    `json:"tickCurrentIndex"`
	TickSpacing                uint16                   `json:"tickSpacing"`
	TickSpacingSeed            string                   `json:"tickSpacingSeed"`
	TokenMintA                 string                   `json:"tokenMintA"`
	TokenMintB                 string                   `json:"tokenMintB"`
	TokenVaultA                []uint64                 `json:"tokenVaultA"`
	TokenVaultB                string                   `json:"tokenVaultB"`
	UpdatedAt                  string                   `json:"updatedAt"`
	UpdatedSlot                uint64                   `json:"updatedSlot"`
	WhirlpoolBump              string                   `json:"whirlpoolBump"`
	WhirlpoolsConfig           string                   `json:"whirlpoolsConfig"`
	WriteVersion               string                   `json:"writeVersion"`
	AdaptiveFee                *AdaptiveFee             `json:"adaptiveFee"`
	AdaptiveFeeEnabled         bool                     `json:"adaptiveFeeEnabled"`
	AddressLookupTable         []uint64                 `json:"addressLookupTable"`
	FeeTierIndex               uint32                   `json:"feeTierIndex"`
	HasWarning                 bool                     `json:"hasWarning"`
	LockedLiquidityPercent     []LockInfo               `json:"lockedLiquidityPercent"`
	PoolType                   string                   `json:"poolType"`
	Price                      string                   `json:"price"`
	Rewards                    []Reward                 `json:"rewards"`
	Stats                      map[TimePeriod]PoolStats `json:"stats"`
	TokenA                     SimpleTokenInfo          `json:"tokenA"`
	TokenB                     SimpleTokenInfo          `json:"tokenB"`
	TokenBalanceA              string                   `json:"tokenBalanceA"`
	TokenBalanceB              string                   `json:"tokenBalanceB"`
	TradeEnableTimestamp       string                   `json:"tradeEnableTimestamp"`
	TvlUsdc                    string                   `json:"tvlUsdc"`
	YieldOverTvl               string                   `json:"yieldOverTvl"`
}

// adaptiveFee and lockedLiquidityPercent are nullable.
var whirlpoolRequired = []string{
	"address", "feeGrowthGlobalA", "feeGrowthGlobalB", "feeRate", "liquidity",
	"protocolFeeOwedA", "protocolFeeOwedB", "protocolFeeRate",
	"rewardLastUpdatedTimestamp", "sqrtPrice", "tickCurrentIndex",
	"tickSpacing", "tickSpacingSeed", "tokenMintA", "tokenMintB",
	"tokenVaultA", "tokenVaultB", "updatedAt", "updatedSlot",
	"whirlpoolBump", "whirlpoolsConfig", "writeVersion",
	"adaptiveFeeEnabled", "addressLookupTable", "feeTierIndex", "hasWarning",
	"poolType", "price", "rewards", "stats", "tokenA", "tokenB",
	"tokenBalanceA", "tokenBalanceB", "tradeEnableTimestamp",
	"tvlUsdc", "yieldOverTvl",
}

func (w *Whirlpool) UnmarshalJSON(data []byte) error {
	if err := requireKeys(data, whirlpoolRequired); err != nil {
		return err
	}
	type alias Whirlpool
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	*w = Whirlpool(a)
	return nil
}

// AdaptiveFee holds the adaptive-fee-curve configuration and live state.
type AdaptiveFee struct {
	Constants   AdaptiveFeeConstants `json:"constants"`
	CurrentRate uint32               `json:"currentRate"`
	MaxRate     uint32               `json:"maxRate"`
	Variables   AdaptiveFeeVariables `json:"variables"`
}

var adaptiveFeeRequired = []string{"constants", "currentRate", "maxRate", "variables"}

func (f *AdaptiveFee) UnmarshalJSON(data []byte) error {
	if err := requireKeys(data, adaptiveFeeRequired); err != nil {
		return err
	}
	type alias AdaptiveFee
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	*f = AdaptiveFee(a)
	return nil
}

// AdaptiveFeeConstants are the static parameters of the fee curve.
type AdaptiveFeeConstants struct {
	AdaptiveFeeControlFactor uint32 `json:"adaptiveFeeControlFactor"`
	DecayPeriod              uint32 `json:"decayPeriod"`
	FilterPeriod             uint32 `json:"filterPeriod"`
	MajorSwapThresholdTicks  uint32 `json:"majorSwapThresholdTicks"`
	MaxVolatilityAccumulator uint32 `json:"maxVolatilityAccumulator"`
	ReductionFactor          uint32 `json:"reductionFactor"`
	TickGroupSize            uint32 `json:"tickGroupSize"`
}

var adaptiveFeeConstantsRequired = []string{
	"adaptiveFeeControlFactor", "decayPeriod", "filterPeriod",
	"majorSwapThresholdTicks", "maxVolatilityAccumulator",
	"reductionFactor", "tickGroupSize",
}

func (c *AdaptiveFeeConstants) UnmarshalJSON(data []byte) error {
	if err := requireKeys(data, adaptiveFeeConstantsRequired); err != nil {
		return err
	}
	type alias AdaptiveFeeConstants
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	*c = AdaptiveFeeConstants(a)
	return nil
}

// AdaptiveFeeVariables are the live accumulator and reference fields.
type AdaptiveFeeVariables struct {
	LastMajorSwapTimestamp       string `json:"lastMajorSwapTimestamp"`
	LastReferenceUpdateTimestamp string `json:"lastReferenceUpdateTimestamp"`
	TickGroupIndexReference      int32  `json:"tickGroupIndexReference"`
	VolatilityAccumulator        uint32 `json:"volatilityAccumulator"`
	VolatilityReference          uint32 `json:"volatilityReference"`
}

var adaptiveFeeVariablesRequired = []string{
	"lastMajorSwapTimestamp", "lastReferenceUpdateTimestamp",
	"tickGroupIndexReference", "volatilityAccumulator", "volatilityReference",
}

func (v *AdaptiveFeeVariables) UnmarshalJSON(data []byte) error {
	if err := requireKeys(data, adaptiveFeeVariablesRequired); err != nil {
		return err
	}
	type alias AdaptiveFeeVariables
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	*v = AdaptiveFeeVariables(a)
	return nil
}

// Reward is one reward-emission stream on a pool.
type Reward struct {
	Authority             string `json:"authority"`
	EmissionsPerSecondX64 string `json:"emissions_per_second_x64"`
	GrowthGlobalX64       string `json:"growth_global_x64"`
	Mint                  string `json:"mint"`
	Vault                 string `json:"vault"`
	Active                bool   `json:"active"`
	EmissionsPerSecond    string `json:"emissionsPerSecond"`
}

var rewardRequired = []string{
	"authority", "emissions_per_second_x64", "growth_global_x64",
	"mint", "vault", "active", "emissionsPerSecond",
}

func (r *Reward) UnmarshalJSON(data []byte) error {
	if err := requireKeys(data, rewardRequired); err != nil {
		return err
	}
	type alias Reward
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	*r = Reward(a)
	return nil
}

// PoolStats holds per-window pool statistics as decimal strings.
type PoolStats struct {
	Fees         string `json:"fees"`
	Rewards      string `json:"rewards"`
	Volume       string `json:"volume"`
	YieldOverTvl string `json:"yieldOverTvl"`
}

var poolStatsRequired = []string{"fees", "rewards", "volume", "yieldOverTvl"}

func (s *PoolStats) UnmarshalJSON(data []byte) error {
	if err := requireKeys(data, poolStatsRequired); err != nil {
		return err
	}
	type alias PoolStats
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	*s = PoolStats(a)
	return nil
}

// SimpleTokenInfo is the compact token descriptor embedded in a pool. tags
// stays raw text, same as on Token.
type SimpleTokenInfo struct {
	Address   string `json:"address"`
	Decimals  uint8  `json:"decimals"`
	ImageURL  string `json:"imageUrl"`
	Name      string `json:"name"`
	ProgramID string `json:"programId"`
	Symbol    string `json:"symbol"`
	Tags      string `json:"tags"`
}

var simpleTokenInfoRequired = []string{
	"address", "decimals", "imageUrl", "name", "programId", "symbol", "tags",
}

func (s *SimpleTokenInfo) UnmarshalJSON(data []byte) error {
	if err := requireKeys(data, simpleTokenInfoRequired); err != nil {
		return err
	}
	type alias SimpleTokenInfo
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	*s = SimpleTokenInfo(a)
	return nil
}
