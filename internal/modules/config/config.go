package config

import (
	"os"
	"strings"
	"time"

	"github.com/eric2788/ordset/pkg/ds"
	"github.com/eric2788/ordset/utils"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"go.uber.org/fx"
)

var logger = logrus.WithField("module", "config")

var ErrInvalidConfig = errors.New("invalid workload config")

// all config will be loaded from environment variables
type Config struct {
	Strategies []ds.Strategy

	Elements int
	Workers  int
	Duration time.Duration

	// percentages of the operation mix; the remainder is split between
	// Contains and AddOrRemove
	RemoveRatio int
	IndexRatio  int

	// per worker, 0 means unlimited
	OpsPerSecond int

	LogLevel logrus.Level
}

func provider() (*Config, error) {

	level, err := logrus.ParseLevel(utils.EmptyOrElse(os.Getenv("LOG_LEVEL"), "info"))
	if err != nil {
		return nil, err
	}

	strategies, err := parseStrategies(utils.EmptyOrElse(os.Getenv("WORKLOAD_STRATEGY"), "both"))
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Strategies: strategies,
		LogLevel:   level,
	}

	ints := []struct {
		key   string
		value *int
		def   int
	}{
		{"WORKLOAD_ELEMENTS", &cfg.Elements, 10000},
		{"WORKLOAD_WORKERS", &cfg.Workers, 4},
		{"WORKLOAD_REMOVE_RATIO", &cfg.RemoveRatio, 25},
		{"WORKLOAD_INDEX_RATIO", &cfg.IndexRatio, 25},
		{"WORKLOAD_OPS_PER_SECOND", &cfg.OpsPerSecond, 0},
	}
	for _, i := range ints {
		if *i.value, err = utils.EnvInt(i.key, i.def); err != nil {
			return nil, err
		}
	}

	if cfg.Duration, err = utils.EnvDuration("WORKLOAD_DURATION", 5*time.Second); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logrus.SetLevel(cfg.LogLevel)
	logger.Debugf("loaded config: %+v", *cfg)
	return cfg, nil
}

func (c *Config) Validate() error {
	switch {
	case c.Elements < 1:
		return errors.Wrapf(ErrInvalidConfig, "elements must be positive, got %d", c.Elements)
	case c.Workers < 1:
		return errors.Wrapf(ErrInvalidConfig, "workers must be positive, got %d", c.Workers)
	case c.Duration <= 0:
		return errors.Wrapf(ErrInvalidConfig, "duration must be positive, got %v", c.Duration)
	case c.RemoveRatio < 0 || c.IndexRatio < 0 || c.RemoveRatio+c.IndexRatio > 100:
		return errors.Wrapf(ErrInvalidConfig, "remove ratio %d and index ratio %d must be non-negative and sum to at most 100", c.RemoveRatio, c.IndexRatio)
	case c.OpsPerSecond < 0:
		return errors.Wrapf(ErrInvalidConfig, "ops per second must not be negative, got %d", c.OpsPerSecond)
	case len(c.Strategies) == 0:
		return errors.Wrap(ErrInvalidConfig, "no strategy selected")
	}
	return nil
}

func parseStrategies(s string) ([]ds.Strategy, error) {
	if strings.EqualFold(strings.TrimSpace(s), "both") {
		return []ds.Strategy{ds.ArrayBacked, ds.Linked}, nil
	}
	var strategies []ds.Strategy
	for _, part := range strings.Split(s, ",") {
		strategy, err := ds.ParseStrategy(part)
		if err != nil {
			return nil, errors.Wrap(err, "WORKLOAD_STRATEGY")
		}
		strategies = append(strategies, strategy)
	}
	// "array,array" runs once
	return ds.Of(strategies...).ToSlice(), nil
}

var Module = fx.Module("config", fx.Provide(provider))
