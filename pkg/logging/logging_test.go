package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestShortenString(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{"github.com/abstratium-informatique-sarl/mtypes/pkg/config", "g.a.m.p.config"},
		{"example.com/path/to/resource", "e.p.t.resource"},
		{"single", "single"}, // No slashes
		{"", ""},             // Empty string
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			actual := shortenString(tc.input)
			if actual != tc.expected {
				t.Errorf("Expected: %q, Got: %q", tc.expected, actual)
			}
		})
	}
}

func TestAbbreviateIfNecessary(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("mtypes      ", abbreviateIfNecessary("mtypes"))
	assert.Equal("abcdefghijkl", abbreviateIfNecessary("abcdefghijkl"))
	assert.Equal("abcdefghij..", abbreviateIfNecessary("abcdefghijklmnop"))
}

func TestGetLog_levelFromConfigFile(t *testing.T) {
	assert := assert.New(t)

	dir := t.TempDir()
	err := os.WriteFile(filepath.Join(dir, LOG_CONFIG_FILE), []byte(`{"root": "error", "mtypes": "debug"}`), 0o600)
	assert.Nil(err)
	t.Chdir(dir)
	Reset()
	defer Reset()

	// when
	l := GetLog("mtypes")
	other := GetLog("config")

	// then
	assert.Equal(zerolog.DebugLevel, l.GetLevel())
	assert.Equal(zerolog.ErrorLevel, other.GetLevel())
}

func TestGetLog_fallsBackToEnvThenWarn(t *testing.T) {
	assert := assert.New(t)

	t.Chdir(t.TempDir())
	t.Setenv(LOG_LEVEL_ENV_NAME, "info")
	Reset()
	assert.Equal(zerolog.InfoLevel, GetLog("anything").GetLevel())

	t.Setenv(LOG_LEVEL_ENV_NAME, "")
	Reset()
	defer Reset()
	assert.Equal(zerolog.WarnLevel, GetLog("anything").GetLevel())
}

func TestGetLog_unknownLevelIsWarn(t *testing.T) {
	assert := assert.New(t)

	t.Chdir(t.TempDir())
	t.Setenv(LOG_LEVEL_ENV_NAME, "chatty")
	Reset()
	defer Reset()

	assert.Equal(zerolog.WarnLevel, GetLog("anything").GetLevel())
}
