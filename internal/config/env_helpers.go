package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/joho/godotenv"
)

var (
	dotenvOnce sync.Once
	dotenvErr  error
)

// loadDotenv loads ./.env once. A missing file is fine; an unreadable or
// malformed one is reported on every call.
func loadDotenv() error {
	dotenvOnce.Do(func() {
		if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
			dotenvErr = fmt.Errorf("load .env: %w", err)
		}
	})
	return dotenvErr
}

// env reads typed variables and collects every value that fails to parse, so
// a bad setting is reported instead of silently replaced by its default.
type env struct {
	errs []error
}

func (e *env) err() error { return errors.Join(e.errs...) }

func (e *env) invalid(k, v, want string) {
	e.errs = append(e.errs, fmt.Errorf("%s=%q: want %s", k, v, want))
}

func (e *env) lookup(k string) (string, bool) {
	v := strings.TrimSpace(os.Getenv(k))
	return v, v != ""
}

func (e *env) str(k, def string) string {
	if v, ok := e.lookup(k); ok {
		return v
	}
	return def
}

func (e *env) required(k string) string {
	v, ok := e.lookup(k)
	if !ok {
		e.errs = append(e.errs, fmt.Errorf("missing %s", k))
	}
	return v
}

func (e *env) u64(k string, def uint64) uint64 {
	v, ok := e.lookup(k)
	if !ok {
		return def
	}
	x, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		e.invalid(k, v, "an unsigned integer")
		return def
	}
	return x
}

func (e *env) i64(k string, def int64) int64 {
	v, ok := e.lookup(k)
	if !ok {
		return def
	}
	x, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		e.invalid(k, v, "an integer")
		return def
	}
	return x
}

func (e *env) positive(k string, def int) int {
	v, ok := e.lookup(k)
	if !ok {
		return def
	}
	x, err := strconv.Atoi(v)
	if err != nil || x <= 0 {
		e.invalid(k, v, "a positive integer")
		return def
	}
	return x
}

func (e *env) boolean(k string, def bool) bool {
	v, ok := e.lookup(k)
	if !ok {
		return def
	}
	switch strings.ToLower(v) {
	case "1", "true", "yes", "y", "on":
		return true
	case "0", "false", "no", "n", "off":
		return false
	}
	e.invalid(k, v, "a boolean")
	return def
}

// duration accepts a Go duration ("90s", "250ms") or a bare count of unit.
func (e *env) duration(k string, unit, def time.Duration) time.Duration {
	v, ok := e.lookup(k)
	if !ok {
		return def
	}
	if d, err := time.ParseDuration(v); err == nil && d > 0 {
		return d
	}
	if n, err := strconv.Atoi(v); err == nil && n > 0 {
		return time.Duration(n) * unit
	}
	e.invalid(k, v, "a positive duration")
	return def
}

func (e *env) list(k string, def []string) []string {
	var out []string
	for _, part := range strings.Split(e.str(k, ""), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}
