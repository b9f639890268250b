package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPoolFlagConflicts(t *testing.T) {
	cases := []struct {
		name    string
		args    []string
		wantErr bool
	}{
		{"no flags", nil, false},
		{"list flags in list mode", []string{"--has-warning", "--addresses", "a", "--include-blocked"}, false},
		{"search flags in search mode", []string{"--query", "sol", "--verified-only", "--user-tokens", "m1"}, false},
		{"shared flags in search mode", []string{"--query", "sol", "--min-tvl", "100", "--stats", "24h", "--has-rewards"}, false},
		{"address alone", []string{"--address", "pool111"}, false},
		{"list flag in search mode", []string{"--query", "sol", "--addresses", "a"}, true},
		{"previous in search mode", []string{"--query", "sol", "--previous", "p1"}, true},
		{"search flag in list mode", []string{"--verified-only"}, true},
		{"user tokens in list mode", []string{"--user-tokens", "m1"}, true},
		{"filter combined with address", []string{"--address", "pool111", "--min-tvl", "100"}, true},
		{"query combined with address", []string{"--address", "pool111", "--query", "sol"}, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cmd := newPoolsCmd()
			require.NoError(t, cmd.Flags().Parse(tc.args))

			err := poolFlagConflicts(cmd)
			if tc.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}
