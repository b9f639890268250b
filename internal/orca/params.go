package orca

import "whirlscope/internal/model"

// String returns a pointer to v, for optional filter fields.
func String(v string) *string { return &v }

// Bool returns a pointer to v, for optional filter fields.
func Bool(v bool) *bool { return &v }

// Uint32 returns a pointer to v, for optional filter fields.
func Uint32(v uint32) *uint32 { return &v }

// Float64 returns a pointer to v, for optional filter fields.
func Float64(v float64) *float64 { return &v }

// TokensParams filters the token listing. Nil fields are omitted from the
// query string. This endpoint uses snake_case parameter names, unlike the
// pool endpoints.
type TokensParams struct {
	Next          *string
	Previous      *string
	Size          *uint32
	SortBy        *string
	SortDirection *string
	Tokens        *string
}

func (p TokensParams) encode() string {
	var q queryBuilder
	q.addString("next", p.Next)
	q.addString("previous", p.Previous)
	q.addUint32("size", p.Size)
	q.addString("sort_by", p.SortBy)
	q.addString("sort_direction", p.SortDirection)
	q.addString("tokens", p.Tokens)
	return q.encode()
}

// PoolsParams filters the pool listing. Nil fields and nil slices are
// omitted; slices are emitted as repeated keys in input order.
type PoolsParams struct {
	SortBy                    *string
	SortDirection             *string
	Next                      *string
	Previous                  *string
	HasRewards                *bool
	HasWarning                *bool
	HasAdaptiveFee            *bool
	IsWavebreak               *bool
	MinTvl                    *float64
	MinVolume                 *float64
	MinLockedLiquidityPercent *float64
	Size                      *uint32
	Token                     []uint64
	TokensBothOf              []string
	Addresses                 []string
	Stats                     []model.TimePeriod
	IncludeBlocked            *bool
}

func (p PoolsParams) encode() string {
	var q queryBuilder
	q.addString("sortBy", p.SortBy)
	q.addString("sortDirection", p.SortDirection)
	q.addString("next", p.Next)
	q.addString("previous", p.Previous)
	q.addBool("hasRewards", p.HasRewards)
	q.addBool("hasWarning", p.HasWarning)
	q.addBool("hasAdaptiveFee", p.HasAdaptiveFee)
	q.addBool("isWavebreak", p.IsWavebreak)
	q.addFloat64("minTvl", p.MinTvl)
	q.addFloat64("minVolume", p.MinVolume)
	q.addFloat64("minLockedLiquidityPercent", p.MinLockedLiquidityPercent)
	q.addUint32("size", p.Size)
	q.addUint64Slice("token", p.Token)
	q.addStringSlice("tokensBothOf", p.TokensBothOf)
	q.addStringSlice("addresses", p.Addresses)
	q.addPeriods("stats", p.Stats)
	q.addBool("includeBlocked", p.IncludeBlocked)
	return q.encode()
}

// SearchPoolsParams filters the pool search. Q is mandatory and always
// emitted, even when empty.
type SearchPoolsParams struct {
	Q                  string
	Next               *string
	Size               *uint32
	SortBy             *string
	SortDirection      *string
	MinTvl             *float64
	MinVolume          *float64
	Stats              []model.TimePeriod
	UserTokens         []string
	HasRewards         *bool
	VerifiedOnly       *bool
	HasLockedLiquidity *bool
}

func (p SearchPoolsParams) encode() string {
	var q queryBuilder
	q.add("q", p.Q)
	q.addString("next", p.Next)
	q.addUint32("size", p.Size)
	q.addString("sortBy", p.SortBy)
	q.addString("sortDirection", p.SortDirection)
	q.addFloat64("minTvl", p.MinTvl)
	q.addFloat64("minVolume", p.MinVolume)
	q.addPeriods("stats", p.Stats)
	q.addStringSlice("userTokens", p.UserTokens)
	q.addBool("hasRewards", p.HasRewards)
	q.addBool("verifiedOnly", p.VerifiedOnly)
	q.addBool("hasLockedLiquidity", p.HasLockedLiquidity)
	return q.encode()
}
