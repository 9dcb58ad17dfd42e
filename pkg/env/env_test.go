package env

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/abstratium-informatique-sarl/mtypes/pkg/mtypes"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestSetup_loadsEnvFilesFromAParentDirectory(t *testing.T) {
	assert := assert.New(t)
	root := t.TempDir()
	sub := filepath.Join(root, "a", "b")
	assert.NoError(os.MkdirAll(sub, 0o755))
	writeFile(t, filepath.Join(root, ".env"), "MTYPES_PRECISION=4\nMTYPES_FORMAT=e\n")
	writeFile(t, filepath.Join(root, ".env.dev"), "MTYPES_PRECISION=6\n")

	t.Setenv(ENV_NAME, "dev")
	t.Setenv(PRECISION_NAME, "")
	t.Setenv(FORMAT_NAME, "")
	os.Unsetenv(PRECISION_NAME)
	os.Unsetenv(FORMAT_NAME)
	t.Chdir(sub)

	Setup()

	assert.Equal("dev", Getenv())
	assert.True(GetenvIsNotProd())
	// the specific file is loaded first and wins
	assert.Equal("6", os.Getenv(PRECISION_NAME))
	assert.Equal("e", os.Getenv(FORMAT_NAME))
}

func TestSetup_withoutEnvFile(t *testing.T) {
	assert := assert.New(t)
	t.Setenv(ENV_NAME, "")
	t.Chdir(t.TempDir())

	assert.NotPanics(Setup)
	assert.Equal(_PROD, Getenv())
	assert.True(GetenvIsProd())
}

func TestFormatOptions(t *testing.T) {
	assert := assert.New(t)
	t.Setenv(ALIGNED_NAME, "true")
	t.Setenv(FORMAT_NAME, "f")
	t.Setenv(PRECISION_NAME, "3")

	opts, err := FormatOptions()
	assert.NoError(err)
	assert.Len(opts, 3)

	s, err := mtypes.ToString(3.14159, opts...)
	assert.NoError(err)
	assert.Equal(" 3.14", s)
}

func TestFormatOptions_unsetGivesDefaults(t *testing.T) {
	assert := assert.New(t)
	t.Setenv(ALIGNED_NAME, "")
	t.Setenv(FORMAT_NAME, "")
	t.Setenv(PRECISION_NAME, "")

	opts, err := FormatOptions()
	assert.NoError(err)
	assert.Empty(opts)
}

func TestFormatOptions_invalid(t *testing.T) {
	tests := []struct {
		name, key, value string
	}{
		{"aligned", ALIGNED_NAME, "maybe"},
		{"format", FORMAT_NAME, "ee"},
		{"precision not a number", PRECISION_NAME, "five"},
		{"precision out of range", PRECISION_NAME, "9"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert := assert.New(t)
			t.Setenv(ALIGNED_NAME, "")
			t.Setenv(FORMAT_NAME, "")
			t.Setenv(PRECISION_NAME, "")
			t.Setenv(tt.key, tt.value)

			_, err := FormatOptions()
			assert.ErrorIs(err, mtypes.ErrInvalidArgument)
		})
	}
}
