package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/abstratium-informatique-sarl/mtypes/pkg/mtypes"
)

func TestLoad_toml(t *testing.T) {
	assert := assert.New(t)
	path := filepath.Join(t.TempDir(), "mtcalc.toml")
	assert.NoError(os.WriteFile(path, []byte(`
[format]
aligned = true
notation = "f"
precision = 3
`), 0o644))

	cfg, err := Load(path)
	assert.NoError(err)
	assert.True(*cfg.Format.Aligned)
	assert.Equal("f", cfg.Format.Notation)
	assert.Equal(3, *cfg.Format.Precision)

	s, err := mtypes.ToString(2.71828, cfg.Format.Options()...)
	assert.NoError(err)
	assert.Equal(" 2.72", s)
}

func TestLoad_yaml(t *testing.T) {
	assert := assert.New(t)
	for _, name := range []string{"mtcalc.yaml", "mtcalc.YML"} {
		path := filepath.Join(t.TempDir(), name)
		assert.NoError(os.WriteFile(path, []byte("format:\n  notation: e\n  precision: 7\n"), 0o644))

		cfg, err := Load(path)
		assert.NoError(err)
		assert.Nil(cfg.Format.Aligned)
		assert.Len(cfg.Format.Options(), 2)

		s, err := mtypes.ToString(0.5, cfg.Format.Options()...)
		assert.NoError(err)
		assert.Equal("5.000000e-01", s)
	}
}

func TestLoad_missingSectionKeepsDefaults(t *testing.T) {
	assert := assert.New(t)
	cfg, err := Parse([]byte("[other]\nkey = 1\n"), FormatTOML)
	assert.NoError(err)
	assert.Empty(cfg.Format.Options())
}

func TestLoad_errors(t *testing.T) {
	assert := assert.New(t)

	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(err, ErrConfig)
	assert.ErrorIs(err, os.ErrNotExist)

	_, err = Parse([]byte("[format\n"), FormatTOML)
	assert.ErrorIs(err, ErrConfig)

	_, err = Parse([]byte("format: [1, 2"), FormatYAML)
	assert.ErrorIs(err, ErrConfig)

	_, err = Parse([]byte("[format]\nprecision = 8\n"), FormatTOML)
	assert.ErrorIs(err, ErrConfig)
	assert.ErrorIs(err, mtypes.ErrInvalidArgument)

	_, err = Parse([]byte("[format]\nnotation = \"fixed\"\n"), FormatTOML)
	assert.ErrorIs(err, ErrConfig)

	_, err = Parse(nil, FileFormat(9))
	assert.ErrorIs(err, ErrConfig)
}

func TestDetectFormat(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(FormatYAML, DetectFormat("a/b.yml"))
	assert.Equal(FormatYAML, DetectFormat("b.YAML"))
	assert.Equal(FormatTOML, DetectFormat("b.toml"))
	assert.Equal(FormatTOML, DetectFormat("b.conf"))
	assert.Equal("yaml", FormatYAML.String())
}
