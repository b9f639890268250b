package model

import "encoding/json"

// ProtocolInfo aggregates protocol-wide financials. All amounts are decimal
// strings in USDC.
type ProtocolInfo struct {
	Fees24hUsdc    string `json:"fees24hUsdc"`
	Revenue24hUsdc string `json:"revenue24hUsdc"`
	TVL            string `json:"tvl"`
	Volume24hUsdc  string `json:"volume24hUsdc"`
}

var protocolInfoRequired = []string{"fees24hUsdc", "revenue24hUsdc", "tvl", "volume24hUsdc"}

func (p *ProtocolInfo) UnmarshalJSON(data []byte) error {
	if err := requireKeys(data, protocolInfoRequired); err != nil {
		return err
	}
	type alias ProtocolInfo
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	*p = ProtocolInfo(a)
	return nil
}

// TokenVolume carries the traded volume for one window.
type TokenVolume struct {
	Volume string `json:"volume"`
}

var tokenVolumeRequired = []string{"volume"}

func (v *TokenVolume) UnmarshalJSON(data []byte) error {
	if err := requireKeys(data, tokenVolumeRequired); err != nil {
		return err
	}
	type alias TokenVolume
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	*v = TokenVolume(a)
	return nil
}

// TokenStats is the fixed per-period stats sub-object on TokenInfo. The API
// currently serves a single 24h window here.
type TokenStats struct {
	H24 TokenVolume `json:"24h"`
}

var tokenStatsRequired = []string{"24h"}

func (s *TokenStats) UnmarshalJSON(data []byte) error {
	if err := requireKeys(data, tokenStatsRequired); err != nil {
		return err
	}
	type alias TokenStats
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	*s = TokenStats(a)
	return nil
}

// TokenInfo describes the protocol's native token.
type TokenInfo struct {
	CirculatingSupply string     `json:"circulatingSupply"`
	Description       string     `json:"description"`
	ImageURL          string     `json:"imageUrl"`
	Name              string     `json:"name"`
	Price             string     `json:"price"`
	Stats             TokenStats `json:"stats"`
	Symbol            string     `json:"symbol"`
	TotalSupply       string     `json:"totalSupply"`
}

var tokenInfoRequired = []string{
	"circulatingSupply", "description", "imageUrl", "name",
	"price", "stats", "symbol", "totalSupply",
}

func (t *TokenInfo) UnmarshalJSON(data []byte) error {
	if err := requireKeys(data, tokenInfoRequired); err != nil {
		return err
	}
	type alias TokenInfo
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	*t = TokenInfo(a)
	return nil
}

// CirculatingSupplyResponse is the single-field circulating supply payload.
type CirculatingSupplyResponse struct {
	CirculatingSupply string `json:"circulating_supply"`
}

func (c *CirculatingSupplyResponse) UnmarshalJSON(data []byte) error {
	if err := requireKeys(data, []string{"circulating_supply"}); err != nil {
		return err
	}
	type alias CirculatingSupplyResponse
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	*c = CirculatingSupplyResponse(a)
	return nil
}

// TotalSupplyResponse is the single-field total supply payload.
type TotalSupplyResponse struct {
	TotalSupply string `json:"total_supply"`
}

func (t *TotalSupplyResponse) UnmarshalJSON(data []byte) error {
	if err := requireKeys(data, []string{"total_supply"}); err != nil {
		return err
	}
	type alias TotalSupplyResponse
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	*t = TotalSupplyResponse(a)
	return nil
}
