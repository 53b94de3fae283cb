package cmd

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	errors "github.com/Laisky/errors/v2"
	gconfig "github.com/Laisky/go-config/v2"

	"github.com/Laisky/video-search/library/config"
)

// configGetter retrieves raw configuration values by dotted key path.
type configGetter func(key string) any

// validateStartupConfig validates startup configuration from the shared config source.
// It returns an error when any configured value is malformed or violates constraints.
func validateStartupConfig() error {
	return validateStartupConfigWithGetter(func(key string) any {
		return gconfig.Shared.Get(key)
	})
}

// validateStartupConfigWithGetter validates startup configuration via a key-value getter.
// It accepts a value getter and returns nil when all configured values are valid.
func validateStartupConfigWithGetter(get configGetter) error {
	if get == nil {
		return errors.New("config getter is nil")
	}

	validationErrs := make([]string, 0)

	validateAPIConfig(get, &validationErrs)
	validateLogConfig(get, &validationErrs)

	if len(validationErrs) == 0 {
		return nil
	}

	return errors.Errorf("invalid configuration:\n - %s", strings.Join(validationErrs, "\n - "))
}

// validateAPIConfig validates the question-answering API endpoint settings.
// It accepts a getter and an error collector pointer and appends validation errors.
func validateAPIConfig(get configGetter, errs *[]string) {
	validateOptionalHTTPURL(get, config.KeyAPIBaseURL, errs)
	validateOptionalDurationMin(get, config.KeyAPITimeout, 0, errs)
}

// validateLogConfig validates the logger level.
// It accepts a getter and an error collector pointer and appends validation errors.
func validateLogConfig(get configGetter, errs *[]string) {
	validateOptionalOneOf(get, "log-level", []string{"debug", "info", "warn", "error"}, errs)
}

// validateOptionalHTTPURL validates an optionally configured absolute http(s) URL key.
// It accepts a getter, the key, and an error collector pointer and appends validation errors.
func validateOptionalHTTPURL(get configGetter, key string, errs *[]string) {
	raw := get(key)
	if raw == nil {
		return
	}

	value, parseErr := parseStrictString(raw)
	if parseErr != nil {
		appendValidationError(errs, "%s must be a string URL", key)
		return
	}

	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		appendValidationError(errs, "%s must not be empty", key)
		return
	}

	parsed, err := url.Parse(trimmed)
	if err != nil || parsed.Host == "" {
		appendValidationError(errs, "%s must be a valid absolute URL", key)
		return
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		appendValidationError(errs, "%s must use http or https", key)
	}
}

// validateOptionalDurationMin validates an optionally configured duration key with a minimum constraint.
// It accepts a getter, the key, a minimum value, and an error collector pointer and appends validation errors.
func validateOptionalDurationMin(get configGetter, key string, min time.Duration, errs *[]string) {
	raw := get(key)
	if raw == nil {
		return
	}

	value, parseErr := parseStrictDuration(raw)
	if parseErr != nil {
		appendValidationError(errs, "%s must be a duration like 30s", key)
		return
	}

	if value < min {
		appendValidationError(errs, "%s must be >= %s", key, min)
	}
}

// validateOptionalOneOf validates an optionally configured string key against allowed values.
// It accepts a getter, the key, the allowed values, and an error collector pointer and appends validation errors.
func validateOptionalOneOf(get configGetter, key string, allowed []string, errs *[]string) {
	raw := get(key)
	if raw == nil {
		return
	}

	value, parseErr := parseStrictString(raw)
	if parseErr != nil {
		appendValidationError(errs, "%s must be a string", key)
		return
	}

	normalized := strings.ToLower(strings.TrimSpace(value))
	for _, candidate := range allowed {
		if normalized == candidate {
			return
		}
	}

	appendValidationError(errs, "%s must be one of [%s]", key, strings.Join(allowed, ", "))
}

// parseStrictDuration parses a value as a duration.
// Strings use time.ParseDuration, an empty string means zero, bare integers are seconds.
func parseStrictDuration(value any) (time.Duration, error) {
	switch v := value.(type) {
	case time.Duration:
		return v, nil
	case int:
		return time.Duration(v) * time.Second, nil
	case int64:
		return time.Duration(v) * time.Second, nil
	case string:
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			return 0, nil
		}
		if secs, err := strconv.Atoi(trimmed); err == nil {
			return time.Duration(secs) * time.Second, nil
		}
		parsed, err := time.ParseDuration(trimmed)
		if err != nil {
			return 0, errors.Wrap(err, "parse duration")
		}
		return parsed, nil
	default:
		return 0, errors.Errorf("unsupported duration type %T", value)
	}
}

// parseStrictString parses a value as a strict string.
// It accepts a raw value and returns the parsed string and an error when parsing fails.
func parseStrictString(value any) (string, error) {
	switch v := value.(type) {
	case string:
		return v, nil
	case []byte:
		return string(v), nil
	default:
		return "", errors.Errorf("unsupported string type %T", value)
	}
}

// appendValidationError appends a formatted validation error to the collector.
// It accepts an error slice pointer, a format string, and format arguments, and has no return value.
func appendValidationError(errs *[]string, format string, args ...any) {
	if errs == nil {
		return
	}
	*errs = append(*errs, fmt.Sprintf(format, args...))
}
