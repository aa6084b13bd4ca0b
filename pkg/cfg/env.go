// Package cfg reads process-level settings that have to be known before the
// config file is loaded.
package cfg

import (
	"os"
	"strings"
)

// String returns the trimmed value of key, or def when it is unset or blank.
func String(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}
	return def
}

// Env returns the normalized application environment from APP_ENV.
func Env() string {
	return strings.ToLower(String("APP_ENV", "dev"))
}

// IsDev reports whether APP_ENV is explicitly set to dev. Unlike Env it
// does not fall back to dev, so debug routes stay off unless asked for.
func IsDev() bool {
	return strings.ToLower(String("APP_ENV", "")) == "dev"
}
