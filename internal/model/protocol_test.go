package model

import (
	"encoding/json"
	"testing"
)

func TestProtocolInfoDecode(t *testing.T) {
	payload := `{
		"fees24hUsdc": "317428.0521046",
		"revenue24hUsdc": "41265.646773",
		"tvl": "230551269.0085",
		"volume24hUsdc": "552567794.7830"
	}`

	var info ProtocolInfo
	if err := json.Unmarshal([]byte(payload), &info); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if info.Fees24hUsdc != "317428.0521046" {
		t.Errorf("fees: got %q", info.Fees24hUsdc)
	}
	if info.Revenue24hUsdc != "41265.646773" {
		t.Errorf("revenue: got %q", info.Revenue24hUsdc)
	}
	if info.TVL != "230551269.0085" {
		t.Errorf("tvl: got %q", info.TVL)
	}
	if info.Volume24hUsdc != "552567794.7830" {
		t.Errorf("volume: got %q", info.Volume24hUsdc)
	}
}

func TestProtocolInfoMissingRequired(t *testing.T) {
	payload := `{
		"fees24hUsdc": "1",
		"revenue24hUsdc": "2",
		"volume24hUsdc": "3"
	}`

	var info ProtocolInfo
	if err := json.Unmarshal([]byte(payload), &info); err == nil {
		t.Fatalf("expected error for missing tvl")
	}
}

func TestProtocolInfoNullRequired(t *testing.T) {
	payload := `{
		"fees24hUsdc": "1",
		"revenue24hUsdc": "2",
		"tvl": null,
		"volume24hUsdc": "3"
	}`

	var info ProtocolInfo
	if err := json.Unmarshal([]byte(payload), &info); err == nil {
		t.Fatalf("expected error for null tvl")
	}
}

func TestProtocolInfoIgnoresUnknownFields(t *testing.T) {
	payload := `{
		"fees24hUsdc": "1",
		"revenue24hUsdc": "2",
		"tvl": "3",
		"volume24hUsdc": "4",
		"futureField": {"nested": true}
	}`

	var info ProtocolInfo
	if err := json.Unmarshal([]byte(payload), &info); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
}

func TestTokenInfoDecode(t *testing.T) {
	payload := `{
		"circulatingSupply": "53275182.419413",
		"description": "Orca Token",
		"imageUrl": "https://example.com/logo.png",
		"name": "Orca",
		"price": "1.6767140",
		"stats": {"24h": {"volume": "594947.6898176792"}},
		"symbol": "ORCA",
		"totalSupply": "99999712.243267"
	}`

	var info TokenInfo
	if err := json.Unmarshal([]byte(payload), &info); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if info.Name != "Orca" {
		t.Errorf("name: got %q", info.Name)
	}
	if info.Stats.H24.Volume != "594947.6898176792" {
		t.Errorf("24h volume: got %q", info.Stats.H24.Volume)
	}
}

func TestTokenInfoMissingStats(t *testing.T) {
	payload := `{
		"circulatingSupply": "1",
		"description": "d",
		"imageUrl": "u",
		"name": "n",
		"price": "p",
		"symbol": "s",
		"totalSupply": "t"
	}`

	var info TokenInfo
	if err := json.Unmarshal([]byte(payload), &info); err == nil {
		t.Fatalf("expected error for missing stats")
	}
}

func TestSupplyResponses(t *testing.T) {
	var circulating CirculatingSupplyResponse
	if err := json.Unmarshal([]byte(`{"circulating_supply": "53275183"}`), &circulating); err != nil {
		t.Fatalf("unmarshal circulating: %v", err)
	}
	if circulating.CirculatingSupply != "53275183" {
		t.Errorf("circulating: got %q", circulating.CirculatingSupply)
	}

	var total TotalSupplyResponse
	if err := json.Unmarshal([]byte(`{"total_supply": "99999713"}`), &total); err != nil {
		t.Fatalf("unmarshal total: %v", err)
	}
	if total.TotalSupply != "99999713" {
		t.Errorf("total: got %q", total.TotalSupply)
	}

	if err := json.Unmarshal([]byte(`{}`), &total); err == nil {
		t.Fatalf("expected error for empty total supply object")
	}
}
