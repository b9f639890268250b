package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// newViper builds a viper instance merging config file, WHIRLSCOPE_* env
// variables, and command flags, in ascending precedence.
func newViper(cfgFile string, flags *pflag.FlagSet, defaults map[string]any) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix("WHIRLSCOPE")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return nil, fmt.Errorf("bind flags: %w", err)
		}
	}

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	return v, nil
}

// ClientConfig holds the settings shared by every command that talks to the
// API.
type ClientConfig struct {
	BaseURL  string
	Chain    string
	LogLevel string
}

func clientDefaults() map[string]any {
	return map[string]any{
		"base-url":  "",
		"chain":     "solana",
		"log-level": "info",
	}
}

func clientConfig(v *viper.Viper) ClientConfig {
	return ClientConfig{
		BaseURL:  v.GetString("base-url"),
		Chain:    v.GetString("chain"),
		LogLevel: v.GetString("log-level"),
	}
}

// LoadClient merges config file, environment variables, and flags into
// ClientConfig.
func LoadClient(cfgFile string, flags *pflag.FlagSet) (ClientConfig, error) {
	v, err := newViper(cfgFile, flags, clientDefaults())
	if err != nil {
		return ClientConfig{}, err
	}
	return clientConfig(v), nil
}

func getStringSlice(v *viper.Viper, key string) []string {
	if !v.IsSet(key) {
		return nil
	}

	val := v.Get(key)
	switch typed := val.(type) {
	case []string:
		return cleanStrings(typed)
	case string:
		return splitAndClean(typed)
	case []interface{}:
		items := make([]string, 0, len(typed))
		for _, item := range typed {
			items = append(items, fmt.Sprintf("%v", item))
		}
		return cleanStrings(items)
	default:
		return nil
	}
}

func splitAndClean(input string) []string {
	if input == "" {
		return nil
	}
	parts := strings.Split(input, ",")
	return cleanStrings(parts)
}

func cleanStrings(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		out = append(out, item)
	}
	return out
}
