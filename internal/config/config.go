package config

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

const EnvPrefix = "OTHELLO"

type Config struct {
	PlayerColor      string  `mapstructure:"PLAYER_COLOR"`
	PlayerStrategy   string  `mapstructure:"PLAYER_STRATEGY"`
	OpponentStrategy string  `mapstructure:"OPPONENT_STRATEGY"`
	Depth            int     `mapstructure:"DEPTH"`
	CacheMinDepth    int     `mapstructure:"CACHE_MIN_DEPTH"`
	Alpha            float64 `mapstructure:"ALPHA"`
	Gamma            float64 `mapstructure:"GAMMA"`
	Epsilon          float64 `mapstructure:"EPSILON"`
	Seed             int64   `mapstructure:"SEED"`
	DataDir          string  `mapstructure:"DATA_DIR"`
	RedisUrl         string  `mapstructure:"REDIS_URL"`
	MongoUri         string  `mapstructure:"MONGO_URI"`
	MongoDatabase    string  `mapstructure:"MONGO_DATABASE"`
	Concurrency      int     `mapstructure:"CONCURRENCY"`
	Rounds           int     `mapstructure:"ROUNDS"`
}

var defaults = map[string]interface{}{
	"PLAYER_COLOR":      "black",
	"PLAYER_STRATEGY":   "minmax",
	"OPPONENT_STRATEGY": "minmax",
	"DEPTH":             3,
	"CACHE_MIN_DEPTH":   4,
	"ALPHA":             0.5,
	"GAMMA":             0.9,
	"EPSILON":           0.1,
	"SEED":              0,
	"DATA_DIR":          "data",
	"REDIS_URL":         "",
	"MONGO_URI":         "",
	"MONGO_DATABASE":    "othello",
	"CONCURRENCY":       4,
	"ROUNDS":            10,
}

// Setup reads the config file at cfgPath, if any, over the defaults.
// Environment variables OTHELLO_<KEY> override both.
func Setup(cfgPath string) (*Config, error) {
	var v = viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "read config %s", cfgPath)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshal config")
	}
	return &cfg, nil
}
