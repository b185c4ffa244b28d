package config

import (
	"os"

	"github.com/omnitrade/execution-engine/pkg/riskgate"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

type AppConfig struct {
	ServiceName      string      `yaml:"service_name"`
	LogLevel         string      `yaml:"log_level"`
	HeartbeatSeconds int         `yaml:"heartbeat_seconds"`
	Gate             *GateConfig `yaml:"gate"`
}

type GateConfig struct {
	OrderLimits  riskgate.OrderLimits  `yaml:"order_limits"`
	MarketLimits riskgate.MarketLimits `yaml:"market_limits"`

	// Balance is the static available-funds figure used by the balance
	// check until a real account feed is wired in.
	Balance float64 `yaml:"balance"`

	// AmountLimitFile optionally points to a JSON file with per-symbol
	// amount bounds applied as an extra rule.
	AmountLimitFile string `yaml:"amount_limit_file"`

	// GateMarketOnOrder runs the market-condition check as part of every
	// order evaluation instead of only on demand.
	GateMarketOnOrder bool `yaml:"gate_market_on_order"`

	// StatsWindowSize is the number of ticks kept for spread/volatility.
	StatsWindowSize int `yaml:"stats_window_size"`
}

// Load load config from file and environment variables.
func Load(filePath string) (*AppConfig, error) {
	if len(filePath) == 0 {
		filePath = os.Getenv("CONFIG_FILE")
	}
	if len(filePath) == 0 {
		return nil, ErrNoConfigFile
	}

	fields := []interface{}{
		"func",
		"config.readFromFile",
		"filePath",
		filePath,
	}

	sugar := zap.S().With(fields...)

	sugar.Debug("Load config...")
	zap.S().Debugf("CONFIG_FILE=%v", filePath)

	configBytes, err := os.ReadFile(filePath)
	if err != nil {
		sugar.Error("Failed to load config file")
		return nil, err
	}
	configBytes = []byte(os.ExpandEnv(string(configBytes)))

	cfg := &AppConfig{}

	err = yaml.Unmarshal(configBytes, cfg)
	if err != nil {
		sugar.Error("Failed to parse config file")
		return nil, err
	}

	cfg.applyDefaults()

	zap.S().Debugf("config: %+v", cfg)

	return cfg, nil
}

func (c *AppConfig) applyDefaults() {
	if c.HeartbeatSeconds <= 0 {
		c.HeartbeatSeconds = 60
	}
	if c.Gate == nil {
		c.Gate = &GateConfig{}
	}
	if c.Gate.StatsWindowSize <= 0 {
		c.Gate.StatsWindowSize = 100
	}
}
