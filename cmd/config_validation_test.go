package cmd

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// TestValidateStartupConfigWithGetterEmpty verifies empty configuration passes validation.
func TestValidateStartupConfigWithGetterEmpty(t *testing.T) {
	err := validateStartupConfigWithGetter(newMapConfigGetter(map[string]any{}))
	require.NoError(t, err)
}

// TestValidateStartupConfigWithGetterNil verifies a nil getter is rejected.
func TestValidateStartupConfigWithGetterNil(t *testing.T) {
	require.Error(t, validateStartupConfigWithGetter(nil))
}

// TestValidateStartupConfigWithGetterValid verifies a complete valid configuration passes validation.
func TestValidateStartupConfigWithGetterValid(t *testing.T) {
	cfg := map[string]any{
		"log-level": "debug",
		"settings": map[string]any{
			"api": map[string]any{
				"base_url": "https://qa.example.com/",
				"timeout":  "30s",
			},
		},
	}

	require.NoError(t, validateStartupConfigWithGetter(newMapConfigGetter(cfg)))
}

// TestValidateStartupConfigWithGetterInvalidBaseURL verifies malformed API origins fail validation.
func TestValidateStartupConfigWithGetterInvalidBaseURL(t *testing.T) {
	for _, baseURL := range []any{"", "localhost:8000", "ftp://example.com", "/ask", 8000} {
		cfg := map[string]any{
			"settings": map[string]any{
				"api": map[string]any{"base_url": baseURL},
			},
		}

		err := validateStartupConfigWithGetter(newMapConfigGetter(cfg))
		require.Error(t, err, baseURL)
		require.Contains(t, err.Error(), "settings.api.base_url")
	}
}

// TestValidateStartupConfigWithGetterInvalidTimeout verifies malformed or negative timeouts fail validation.
func TestValidateStartupConfigWithGetterInvalidTimeout(t *testing.T) {
	for _, timeout := range []any{"soon", "-1s", true} {
		cfg := map[string]any{
			"settings": map[string]any{
				"api": map[string]any{"timeout": timeout},
			},
		}

		err := validateStartupConfigWithGetter(newMapConfigGetter(cfg))
		require.Error(t, err, timeout)
		require.Contains(t, err.Error(), "settings.api.timeout")
	}
}

// TestValidateStartupConfigWithGetterCollectsErrors verifies every problem is reported at once.
func TestValidateStartupConfigWithGetterCollectsErrors(t *testing.T) {
	cfg := map[string]any{
		"log-level": "verbose",
		"settings": map[string]any{
			"api": map[string]any{
				"base_url": "nope",
				"timeout":  "-5s",
			},
		},
	}

	err := validateStartupConfigWithGetter(newMapConfigGetter(cfg))
	require.Error(t, err)
	require.Contains(t, err.Error(), "log-level")
	require.Contains(t, err.Error(), "settings.api.base_url")
	require.Contains(t, err.Error(), "settings.api.timeout")
	require.Equal(t, 3, strings.Count(err.Error(), "\n - "))
}

// TestParseStrictDuration verifies the accepted duration encodings.
func TestParseStrictDuration(t *testing.T) {
	d, err := parseStrictDuration("1m30s")
	require.NoError(t, err)
	require.Equal(t, 90*time.Second, d)

	d, err = parseStrictDuration(15)
	require.NoError(t, err)
	require.Equal(t, 15*time.Second, d)

	d, err = parseStrictDuration("30")
	require.NoError(t, err)
	require.Equal(t, 30*time.Second, d)

	d, err = parseStrictDuration("")
	require.NoError(t, err)
	require.Zero(t, d)

	_, err = parseStrictDuration(1.5)
	require.Error(t, err)
}

// newMapConfigGetter builds a dotted-key getter backed by nested maps.
func newMapConfigGetter(root map[string]any) configGetter {
	return func(key string) any {
		if key == "" {
			return nil
		}

		parts := strings.Split(key, ".")
		var current any = root
		for _, part := range parts {
			nextMap, ok := current.(map[string]any)
			if !ok {
				return nil
			}

			next, exists := nextMap[part]
			if !exists {
				return nil
			}
			current = next
		}

		return current
	}
}
