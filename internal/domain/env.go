package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidEnvKey is returned for variable names the engine would reject.
var ErrInvalidEnvKey = errors.New("invalid environment variable name")

// ValidateEnvKey accepts any name the engine accepts: non-empty, without
// '=' or NUL. Dotted and dashed names such as com.example.flag are valid.
func ValidateEnvKey(key string) error {
	if key == "" || strings.ContainsAny(key, "=\x00") {
		return fmt.Errorf("%w: %q", ErrInvalidEnvKey, key)
	}
	return nil
}

// ParseEnvAssignments parses KEY=VALUE pairs as given on a command line.
// Matching surrounding quotes are stripped; a later key overrides an earlier one.
func ParseEnvAssignments(pairs ...string) (map[string]string, error) {
	env := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, fmt.Errorf("%w: %q has no '='", ErrInvalidEnvKey, pair)
		}

		key = strings.TrimSpace(key)
		if err := ValidateEnvKey(key); err != nil {
			return nil, err
		}

		if len(value) >= 2 {
			if (strings.HasPrefix(value, "\"") && strings.HasSuffix(value, "\"")) ||
				(strings.HasPrefix(value, "'") && strings.HasSuffix(value, "'")) {
				value = value[1 : len(value)-1]
			}
		}

		env[key] = value
	}
	return env, nil
}
