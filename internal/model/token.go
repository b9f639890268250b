package model

import "encoding/json"

// Token is an on-chain token record. The extensions, metadata, stats, and
// tags fields arrive as JSON-encoded strings and are kept as raw text; their
// inner schema is not pinned down by the API, so decoding them would break
// forward compatibility.
type Token struct {
	Address         string  `json:"address"`
	Decimals        uint8   `json:"decimals"`
	Extensions      string  `json:"extensions"`
	FreezeAuthority *string `json:"freezeAuthority"`
	IsInitialized   bool    `json:"isInitialized"`
	Metadata        string  `json:"metadata"`
	MintAuthority   *string `json:"mintAuthority"`
	PriceUsdc       string  `json:"priceUsdc"`
	Stats           string  `json:"stats"`
	Supply          string  `json:"supply"`
	Tags            string  `json:"tags"`
	TokenProgram    string  `json:"tokenProgram"`
	UpdatedAt       string  `json:"updatedAt"`
	UpdatedEpoch    uint64  `json:"updatedEpoch"`
}

// freezeAuthority and mintAuthority are nullable.
var tokenRequired = []string{
	"address", "decimals", "extensions", "isInitialized", "metadata",
	"priceUsdc", "stats", "supply", "tags", "tokenProgram",
	"updatedAt", "updatedEpoch",
}

func (t *Token) UnmarshalJSON(data []byte) error {
	if err := requireKeys(data, tokenRequired); err != nil {
		return err
	}
	type alias Token
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	*t = Token(a)
	return nil
}

// LockInfo is one locked-liquidity record for a pool.
type LockInfo struct {
	LockedPercentage string `json:"lockedPercentage"`
	Name             string `json:"name"`
}

var lockInfoRequired = []string{"lockedPercentage", "name"}

func (l *LockInfo) UnmarshalJSON(data []byte) error {
	if err := requireKeys(data, lockInfoRequired); err != nil {
		return err
	}
	type alias LockInfo
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	*l = LockInfo(a)
	return nil
}
