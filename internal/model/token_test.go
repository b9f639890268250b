package model

import (
	"encoding/json"
	"testing"
)

const tokenPayload = `{
	"address": "So11111111111111111111111111111111111111112",
	"decimals": 9,
	"extensions": "{}",
	"freezeAuthority": null,
	"isInitialized": true,
	"metadata": "{\"name\":\"Wrapped SOL\"}",
	"mintAuthority": null,
	"priceUsdc": "130.0",
	"stats": "{\"24h\":{\"volume\":\"1\"}}",
	"supply": "1000000000",
	"tags": "[\"verified\"]",
	"tokenProgram": "TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA",
	"updatedAt": "2025-05-09T00:04:50.745163Z",
	"updatedEpoch": 784
}`

func TestTokenDecode(t *testing.T) {
	var token Token
	if err := json.Unmarshal([]byte(tokenPayload), &token); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if token.Address != "So11111111111111111111111111111111111111112" {
		t.Errorf("address: got %q", token.Address)
	}
	if token.Decimals != 9 {
		t.Errorf("decimals: got %d", token.Decimals)
	}
	if token.FreezeAuthority != nil || token.MintAuthority != nil {
		t.Errorf("authorities should be absent: %v %v", token.FreezeAuthority, token.MintAuthority)
	}
	if token.UpdatedEpoch != 784 {
		t.Errorf("updatedEpoch: got %d", token.UpdatedEpoch)
	}
}

// The nested sub-objects arrive as JSON-encoded strings and must stay raw.
func TestTokenOpaqueFieldsStayRaw(t *testing.T) {
	var token Token
	if err := json.Unmarshal([]byte(tokenPayload), &token); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if token.Extensions != "{}" {
		t.Errorf("extensions: got %q", token.Extensions)
	}
	if token.Metadata != `{"name":"Wrapped SOL"}` {
		t.Errorf("metadata: got %q", token.Metadata)
	}
	if token.Stats != `{"24h":{"volume":"1"}}` {
		t.Errorf("stats: got %q", token.Stats)
	}
	if token.Tags != `["verified"]` {
		t.Errorf("tags: got %q", token.Tags)
	}
}

func TestTokenAuthoritiesPresent(t *testing.T) {
	payload := `{
		"address": "a",
		"decimals": 6,
		"extensions": "{}",
		"freezeAuthority": "freeze111",
		"isInitialized": true,
		"metadata": "{}",
		"mintAuthority": "mint111",
		"priceUsdc": "1.0",
		"stats": "{}",
		"supply": "1",
		"tags": "[]",
		"tokenProgram": "p",
		"updatedAt": "2025-01-01T00:00:00Z",
		"updatedEpoch": 1
	}`

	var token Token
	if err := json.Unmarshal([]byte(payload), &token); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if token.FreezeAuthority == nil || *token.FreezeAuthority != "freeze111" {
		t.Errorf("freezeAuthority: got %v", token.FreezeAuthority)
	}
	if token.MintAuthority == nil || *token.MintAuthority != "mint111" {
		t.Errorf("mintAuthority: got %v", token.MintAuthority)
	}
}

func TestTokenMissingRequiredFails(t *testing.T) {
	payload := `{
		"address": "a",
		"decimals": 6,
		"isInitialized": true,
		"metadata": "{}",
		"priceUsdc": "1.0",
		"stats": "{}",
		"supply": "1",
		"tags": "[]",
		"tokenProgram": "p",
		"updatedAt": "2025-01-01T00:00:00Z",
		"updatedEpoch": 1
	}`

	var token Token
	if err := json.Unmarshal([]byte(payload), &token); err == nil {
		t.Fatalf("expected error for missing extensions")
	}
}

func TestLockInfoDecode(t *testing.T) {
	payload := `[{"lockedPercentage": "0.7", "name": "Whirlpool-Lock"}]`

	var locks []LockInfo
	if err := json.Unmarshal([]byte(payload), &locks); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(locks) != 1 {
		t.Fatalf("expected one record, got %d", len(locks))
	}
	if locks[0].LockedPercentage != "0.7" || locks[0].Name != "Whirlpool-Lock" {
		t.Errorf("lock: got %+v", locks[0])
	}

	if err := json.Unmarshal([]byte(`[{"name": "x"}]`), &locks); err == nil {
		t.Fatalf("expected error for missing lockedPercentage")
	}
}
