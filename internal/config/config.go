package config

import (
	"strings"

	"github.com/spf13/viper"
)

// RateLimitConfig bounds requests per client IP.
type RateLimitConfig struct {
	RPS   float64
	Burst int
}

// Config is the full service configuration.
type Config struct {
	Addr      string
	DataFile  string
	RedisAddr string
	CacheTTL  int // seconds, status cache entries
	PrettyLog bool
	RateLimit RateLimitConfig
}

// Load reads configuration from an optional config.yaml in the working
// directory and from INVENTORY_-prefixed environment variables
// (e.g. INVENTORY_ADDR, INVENTORY_RATE_LIMIT_RPS).
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("addr", ":8080")
	v.SetDefault("data_file", "inventory_store.json")
	v.SetDefault("redis_addr", "")
	v.SetDefault("cache_ttl", 30)
	v.SetDefault("pretty_log", false)
	v.SetDefault("rate_limit.rps", 10.0)
	v.SetDefault("rate_limit.burst", 20)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetEnvPrefix("INVENTORY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, err
		}
	}

	return Config{
		Addr:      v.GetString("addr"),
		DataFile:  v.GetString("data_file"),
		RedisAddr: v.GetString("redis_addr"),
		CacheTTL:  v.GetInt("cache_ttl"),
		PrettyLog: v.GetBool("pretty_log"),
		RateLimit: RateLimitConfig{
			RPS:   v.GetFloat64("rate_limit.rps"),
			Burst: v.GetInt("rate_limit.burst"),
		},
	}, nil
}
