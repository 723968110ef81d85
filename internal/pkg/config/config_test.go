//go:build unit

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"go-netcfg/internal/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 20*time.Second, cfg.Backend.CommandTimeout.Std())
	assert.NotEmpty(t, cfg.Storage.SnapshotFile)
	assert.NotEmpty(t, cfg.Storage.ProfilesFile)
}

func TestLoadOverlaysDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
logging:
  level: debug
  format: compact
backend:
  command_timeout: 30s
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "compact", cfg.Logging.Format)
	assert.Equal(t, 30*time.Second, cfg.Backend.CommandTimeout.Std())
	// Untouched sections keep their defaults
	assert.Equal(t, 4, cfg.Ping.Count)
}

func TestLoadRejectsBadValues(t *testing.T) {
	dir := t.TempDir()

	t.Run("TimeoutOutOfRange", func(t *testing.T) {
		path := filepath.Join(dir, "timeout.yaml")
		require.NoError(t, os.WriteFile(path, []byte("backend:\n  command_timeout: 10ms\n"), 0o644))
		_, err := Load(path)
		assert.Error(t, err)
	})

	t.Run("BadLogFormat", func(t *testing.T) {
		path := filepath.Join(dir, "format.yaml")
		require.NoError(t, os.WriteFile(path, []byte("logging:\n  format: xml\n"), 0o644))
		_, err := Load(path)
		assert.Error(t, err)
	})

	t.Run("MissingFile", func(t *testing.T) {
		_, err := Load(filepath.Join(dir, "nope.yaml"))
		assert.Error(t, err)
	})
}

func TestValidateStructDottedQuad(t *testing.T) {
	good := types.InterfaceConfiguration{
		Mode:       types.ModeStatic,
		Address:    "192.168.1.10",
		SubnetMask: "255.255.255.0",
		Gateway:    "192.168.1.1",
		DNS:        []string{"1.1.1.1", "8.8.8.8"},
	}
	assert.NoError(t, ValidateStruct(good))

	bad := good
	bad.Address = "256.1.1.1"
	assert.Error(t, ValidateStruct(bad))

	bad = good
	bad.DNS = []string{"1.1.1.1", "not-an-ip"}
	assert.Error(t, ValidateStruct(bad))
}
