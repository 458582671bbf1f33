package lkenv

import (
	"os"
	"strconv"
	"time"

	"github.com/cockroachdb/errors"
)

// String returns the value of the named variable, or fallback when the
// variable is unset. An empty-but-set variable returns the empty string.
func String(name, fallback string) string {
	if v, ok := os.LookupEnv(name); ok {
		return v
	}
	return fallback
}

// MustString returns the value of the named variable and errors when the
// variable is unset or empty.
func MustString(name string) (string, error) {
	v := os.Getenv(name)
	if v == "" {
		return "", errors.Newf("required environment variable %s is not set", name)
	}
	return v, nil
}

// Bool parses the named variable with strconv.ParseBool semantics,
// returning fallback when unset or unparsable.
func Bool(name string, fallback bool) bool {
	v, ok := os.LookupEnv(name)
	if !ok {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}

// Int parses the named variable as a base-10 integer, returning fallback
// when unset or unparsable.
func Int(name string, fallback int) int {
	v, ok := os.LookupEnv(name)
	if !ok {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

// Duration parses the named variable with time.ParseDuration, returning
// fallback when unset or unparsable.
func Duration(name string, fallback time.Duration) time.Duration {
	v, ok := os.LookupEnv(name)
	if !ok {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}

// Value returns the named variable coerced to its most specific type:
// values accepted by strconv.ParseBool become bool, values accepted by
// strconv.ParseFloat become float64, and everything else stays a string.
// Numeric coercion discards formatting, so "007" yields float64(7); use
// String when leading zeros are significant. Returns nil when unset.
func Value(name string) any {
	v, ok := os.LookupEnv(name)
	if !ok {
		return nil
	}
	if b, err := strconv.ParseBool(v); err == nil {
		return b
	}
	if f, err := strconv.ParseFloat(v, 64); err == nil {
		return f
	}
	return v
}
