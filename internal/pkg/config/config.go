package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go-netcfg/internal/pkg/logging"

	"gopkg.in/yaml.v3"
)

// Duration decodes the human form ("20s", "1m30s") from YAML, which the
// yaml package cannot do for time.Duration directly.
type Duration time.Duration

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	*d = Duration(parsed)
	return nil
}

func (d Duration) MarshalYAML() (interface{}, error) {
	return time.Duration(d).String(), nil
}

// Std returns the wrapped time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// BackendConfig tunes how the OS configuration backend is invoked.
type BackendConfig struct {
	// CommandTimeout bounds every single backend invocation. Expiry counts
	// as a failed source or strategy, never a hang.
	CommandTimeout Duration `yaml:"command_timeout"`
}

// StorageConfig locates the durable stores.
type StorageConfig struct {
	SnapshotFile string `yaml:"snapshot_file" validate:"required"`
	ProfilesFile string `yaml:"profiles_file" validate:"required"`
}

// PingConfig tunes the connectivity diagnostic.
type PingConfig struct {
	Count   int      `yaml:"count" validate:"min=1,max=100"`
	Timeout Duration `yaml:"timeout"`
}

// Config represents the main configuration structure
type Config struct {
	Logging logging.LogConfig `yaml:"logging"`
	Backend BackendConfig     `yaml:"backend"`
	Storage StorageConfig     `yaml:"storage"`
	Ping    PingConfig        `yaml:"ping"`
}

// Default returns the built-in configuration. Stores live under the user
// configuration directory.
func Default() *Config {
	base, err := os.UserConfigDir()
	if err != nil {
		base = "."
	}
	dir := filepath.Join(base, "netcfg")
	return &Config{
		Logging: logging.LogConfig{
			Level:  "info",
			Format: "text",
		},
		Backend: BackendConfig{
			CommandTimeout: Duration(20 * time.Second),
		},
		Storage: StorageConfig{
			SnapshotFile: filepath.Join(dir, "snapshot.json"),
			ProfilesFile: filepath.Join(dir, "profiles.yaml"),
		},
		Ping: PingConfig{
			Count:   4,
			Timeout: Duration(3 * time.Second),
		},
	}
}

// Load returns the defaults overlaid with the YAML file at configPath.
// An empty path yields the defaults unchanged.
func Load(configPath string) (*Config, error) {
	config := Default()

	if configPath != "" {
		data, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
		}
		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", configPath, err)
		}
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if err := ValidateStruct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	// Duration ranges are checked by hand; the wrapper type is opaque to
	// the struct validator.
	if t := c.Backend.CommandTimeout.Std(); t < time.Second || t > 5*time.Minute {
		return fmt.Errorf("invalid configuration: backend.command_timeout %s outside 1s-5m", t)
	}
	if t := c.Ping.Timeout.Std(); t < 100*time.Millisecond || t > time.Minute {
		return fmt.Errorf("invalid configuration: ping.timeout %s outside 100ms-1m", t)
	}
	return nil
}
