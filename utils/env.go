package utils

import (
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cast"
)

// EnvInt reads key as an int, returning defaultValue when it is unset.
func EnvInt(key string, defaultValue int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return defaultValue, nil
	}
	n, err := cast.ToIntE(v)
	if err != nil {
		return 0, errors.Wrapf(err, "parse %s", key)
	}
	return n, nil
}

// EnvDuration reads key as a time.Duration ("5s", "1m30s"), returning
// defaultValue when it is unset.
func EnvDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return defaultValue, nil
	}
	d, err := cast.ToDurationE(v)
	if err != nil {
		return 0, errors.Wrapf(err, "parse %s", key)
	}
	return d, nil
}
