package model

import (
	"encoding/json"
	"testing"
)

func TestTimePeriodWireForms(t *testing.T) {
	want := []string{"5m", "15m", "30m", "1h", "2h", "4h", "8h", "12h", "24h"}
	if len(TimePeriods) != len(want) {
		t.Fatalf("expected %d periods, got %d", len(want), len(TimePeriods))
	}
	for i, p := range TimePeriods {
		if p.String() != want[i] {
			t.Errorf("period %d: expected %q, got %q", i, want[i], p.String())
		}
	}
}

func TestTimePeriodRoundTrip(t *testing.T) {
	for _, p := range TimePeriods {
		text, err := p.MarshalText()
		if err != nil {
			t.Fatalf("marshal %q: %v", p, err)
		}

		var decoded TimePeriod
		if err := decoded.UnmarshalText(text); err != nil {
			t.Fatalf("unmarshal %q: %v", text, err)
		}
		if decoded != p {
			t.Fatalf("round-trip mismatch: %q != %q", decoded, p)
		}
	}
}

func TestTimePeriodRejectsUnknown(t *testing.T) {
	for _, bad := range []string{"", "7m", "1d", "24H", "H24"} {
		if _, err := ParseTimePeriod(bad); err == nil {
			t.Errorf("expected error for %q", bad)
		}
	}
}

func TestTimePeriodAsMapKey(t *testing.T) {
	var stats map[TimePeriod]PoolStats
	payload := `{"24h":{"fees":"1","rewards":"2","volume":"3","yieldOverTvl":"4"}}`
	if err := json.Unmarshal([]byte(payload), &stats); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if _, ok := stats[Period24h]; !ok {
		t.Fatalf("expected 24h key, got %v", stats)
	}

	bad := `{"36h":{"fees":"1","rewards":"2","volume":"3","yieldOverTvl":"4"}}`
	if err := json.Unmarshal([]byte(bad), &stats); err == nil {
		t.Fatalf("expected error for unknown period key")
	}
}
