package config

import (
	"time"

	"github.com/spf13/pflag"
)

// SnapshotConfig holds configuration for the snapshot command.
type SnapshotConfig struct {
	ClientConfig
	PageSize          uint32
	MaxPages          int
	MinTvl            float64
	Stats             []string
	Out               string
	PGDSN             string
	Checkpoint        string
	CheckpointEnabled bool
	MaxRetries        int
	RetryBackoff      time.Duration
	MetricsAddr       string
}

// LoadSnapshot merges config file, environment variables, and flags into
// SnapshotConfig.
func LoadSnapshot(cfgFile string, flags *pflag.FlagSet) (SnapshotConfig, error) {
	defaults := clientDefaults()
	defaults["page-size"] = uint32(200)
	defaults["max-pages"] = 0
	defaults["min-tvl"] = float64(0)
	defaults["out"] = "./data/pools.jsonl"
	defaults["checkpoint"] = "./data/checkpoint.json"
	defaults["checkpoint-enabled"] = true
	defaults["max-retries"] = 5
	defaults["retry-backoff"] = 500 * time.Millisecond

	v, err := newViper(cfgFile, flags, defaults)
	if err != nil {
		return SnapshotConfig{}, err
	}

	cfg := SnapshotConfig{
		ClientConfig:      clientConfig(v),
		PageSize:          v.GetUint32("page-size"),
		MaxPages:          v.GetInt("max-pages"),
		MinTvl:            v.GetFloat64("min-tvl"),
		Stats:             getStringSlice(v, "stats"),
		Out:               v.GetString("out"),
		PGDSN:             v.GetString("pg-dsn"),
		Checkpoint:        v.GetString("checkpoint"),
		CheckpointEnabled: v.GetBool("checkpoint-enabled"),
		MaxRetries:        v.GetInt("max-retries"),
		RetryBackoff:      v.GetDuration("retry-backoff"),
		MetricsAddr:       v.GetString("metrics-addr"),
	}

	return cfg, nil
}
