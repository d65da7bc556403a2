package common

import (
	"fmt"
	"net/url"
)

// RequiredString extracts a required string argument. An absent, non-string,
// or empty value is an error.
func RequiredString(args map[string]interface{}, key string) (string, error) {
	value, ok := args[key].(string)
	if !ok || value == "" {
		return "", fmt.Errorf("%s is required", key)
	}
	return value, nil
}

// OptionalString extracts an optional string argument, returning "" if absent.
func OptionalString(args map[string]interface{}, key string) string {
	value, _ := args[key].(string)
	return value
}

// OptionalInt extracts an optional integer argument, returning def if absent.
// JSON numbers arrive as float64; integral floats are accepted.
func OptionalInt(args map[string]interface{}, key string, def int) int {
	switch v := args[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	}
	return def
}

// RequiredInt extracts a required integer argument.
func RequiredInt(args map[string]interface{}, key string) (int, error) {
	switch v := args[key].(type) {
	case float64:
		return int(v), nil
	case int:
		return v, nil
	}
	return 0, fmt.Errorf("%s is required", key)
}

// ValidateMaxLength checks that a string argument does not exceed max characters.
func ValidateMaxLength(key, value string, max int) error {
	if len(value) > max {
		return fmt.Errorf("%s must be at most %d characters", key, max)
	}
	return nil
}

// ValidateURL checks that a string argument parses as an absolute URL with a
// host.
func ValidateURL(key, value string) error {
	u, err := url.Parse(value)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%s must be a valid absolute URL", key)
	}
	return nil
}

// ValidateIntRange checks that an integer argument lies in [min, max].
func ValidateIntRange(key string, value, min, max int) error {
	if value < min || value > max {
		return fmt.Errorf("%s must be between %d and %d", key, min, max)
	}
	return nil
}
