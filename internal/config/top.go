package config

import "github.com/spf13/pflag"

// TopConfig holds configuration for the top command.
type TopConfig struct {
	ClientConfig
	Metric string
	Period string
	Limit  int
	Pages  int
	Size   uint32
	MinTvl float64
}

// LoadTop merges config file, environment variables, and flags into
// TopConfig.
func LoadTop(cfgFile string, flags *pflag.FlagSet) (TopConfig, error) {
	defaults := clientDefaults()
	defaults["metric"] = "volume"
	defaults["period"] = "24h"
	defaults["limit"] = 20
	defaults["pages"] = 5
	defaults["size"] = uint32(200)
	defaults["min-tvl"] = float64(0)

	v, err := newViper(cfgFile, flags, defaults)
	if err != nil {
		return TopConfig{}, err
	}

	cfg := TopConfig{
		ClientConfig: clientConfig(v),
		Metric:       v.GetString("metric"),
		Period:       v.GetString("period"),
		Limit:        v.GetInt("limit"),
		Pages:        v.GetInt("pages"),
		Size:         v.GetUint32("size"),
		MinTvl:       v.GetFloat64("min-tvl"),
	}

	return cfg, nil
}
