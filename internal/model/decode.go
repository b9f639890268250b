package model

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// requireKeys verifies that every listed wire key is present and non-null in
// the JSON object. Unknown extra keys are ignored so the schema stays
// forward-compatible with server-side additions.
func requireKeys(data []byte, keys []string) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	for _, key := range keys {
		val, ok := raw[key]
		if !ok {
			return fmt.Errorf("missing required field %q", key)
		}
		if isNull(val) {
			return fmt.Errorf("required field %q is null", key)
		}
	}
	return nil
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}
