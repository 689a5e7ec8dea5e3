package util

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigCreatesDefaults(t *testing.T) {
	pth := filepath.Join(t.TempDir(), "screenpadctl", "config.toml")

	cfg, err := LoadConfig(pth)
	require.NoError(t, err)

	assert.Equal(t, int16(15), cfg.PositiveIncrement)
	assert.Equal(t, int16(-15), cfg.NegativeIncrement)

	// The defaults must have been persisted for the next run.
	_, err = os.Stat(pth)
	assert.NoError(t, err)
}

func TestStoreConfigRoundTrip(t *testing.T) {
	pth := filepath.Join(t.TempDir(), "config.toml")
	want := Config{PositiveIncrement: 30, NegativeIncrement: -5}

	require.NoError(t, StoreConfig(pth, want))

	got, err := LoadConfig(pth)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestLoadConfigMalformedFile(t *testing.T) {
	pth := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(pth, []byte("positive_increment = \"up\"\n"), 0644))

	_, err := LoadConfig(pth)
	assert.Error(t, err)
}

func TestReadInt16(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		content string
		want    int16
		wantErr bool
	}{
		{name: "plain value", content: "128", want: 128},
		{name: "trailing newline", content: "128\n", want: 128},
		{name: "zero", content: "0\n", want: 0},
		{name: "garbage", content: "bright\n", wantErr: true},
		{name: "empty", content: "", wantErr: true},
		{name: "out of int16 range", content: "70000\n", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pth := filepath.Join(dir, tt.name)
			require.NoError(t, os.WriteFile(pth, []byte(tt.content), 0644))

			got, err := ReadInt16(pth)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReadInt16MissingFile(t *testing.T) {
	_, err := ReadInt16(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}

func TestPathExists(t *testing.T) {
	dir := t.TempDir()

	ex, err := PathExists(dir)
	require.NoError(t, err)
	assert.True(t, ex)

	ex, err = PathExists(filepath.Join(dir, "missing"))
	require.NoError(t, err)
	assert.False(t, ex)
}
