package main

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v2"

	hotspot "github.com/axondata/go-hotspot"
)

// fileConfig is the YAML shape of the hotspotctl config file
type fileConfig struct {
	// Adapter is the preferred adapter name or description fragment
	Adapter string `yaml:"adapter"`

	// StateFile is where the resolved adapter selection is persisted
	StateFile string `yaml:"stateFile"`

	Log struct {
		File       string `yaml:"file"`
		MaxSizeMB  int    `yaml:"maxSizeMb"`
		MaxBackups int    `yaml:"maxBackups"`
		Debug      bool   `yaml:"debug"`
	} `yaml:"log"`

	Toggle struct {
		Strategy               string `yaml:"strategy"`
		ProfileWaitAttempts    int    `yaml:"profileWaitAttempts"`
		ProfileWaitIntervalSec int    `yaml:"profileWaitIntervalSec"`
		SettleDelaySec         int    `yaml:"settleDelaySec"`
		RadioOffDelaySec       int    `yaml:"radioOffDelaySec"`
		RadioOnSettleSec       int    `yaml:"radioOnSettleSec"`
		RestartAdapter         bool   `yaml:"restartAdapter"`
	} `yaml:"toggle"`

	Unattended struct {
		StartupDelaySec int `yaml:"startupDelaySec"`
	} `yaml:"unattended"`

	LockFile string `yaml:"lockFile"`
}

// defaultFileConfig returns the configuration used when no file or flag
// overrides it
func defaultFileConfig() *fileConfig {
	cfg := &fileConfig{}
	cfg.StateFile = filepath.Join(configDir(), "adapter.yaml")
	cfg.Log.MaxSizeMB = 10
	cfg.Log.MaxBackups = 3
	cfg.Toggle.Strategy = hotspot.CycleTetherDance.String()
	cfg.Toggle.ProfileWaitAttempts = hotspot.DefaultProfileWaitAttempts
	cfg.Toggle.ProfileWaitIntervalSec = int(hotspot.DefaultProfileWaitInterval.Seconds())
	cfg.Toggle.SettleDelaySec = int(hotspot.DefaultSettleDelay.Seconds())
	cfg.Toggle.RadioOffDelaySec = int(hotspot.DefaultRadioOffDelay.Seconds())
	cfg.Toggle.RadioOnSettleSec = int(hotspot.DefaultRadioOnSettle.Seconds())
	cfg.Unattended.StartupDelaySec = 10
	cfg.LockFile = filepath.Join(os.TempDir(), "hotspotctl.lock")
	return cfg
}

func configDir() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "hotspotctl")
	}
	return "."
}

// loadConfig merges the config file at path (or the default location,
// or HOTSPOTCTL_CONFIG) over the defaults. A missing file is not an
// error; an unreadable or invalid one is.
func loadConfig(path string) (*fileConfig, error) {
	cfg := defaultFileConfig()

	explicit := path != ""
	if path == "" {
		path = os.Getenv("HOTSPOTCTL_CONFIG")
		explicit = path != ""
	}
	if path == "" {
		path = filepath.Join(configDir(), "config.yaml")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func validateConfig(cfg *fileConfig) error {
	if cfg.Toggle.ProfileWaitAttempts < 1 {
		return fmt.Errorf("toggle.profileWaitAttempts must be >= 1")
	}
	if cfg.Toggle.ProfileWaitIntervalSec < 0 {
		return fmt.Errorf("toggle.profileWaitIntervalSec must be >= 0")
	}
	if _, err := hotspot.ParseCycleStrategy(cfg.Toggle.Strategy); err != nil {
		return err
	}
	if cfg.StateFile == "" {
		return fmt.Errorf("stateFile must not be empty")
	}
	return nil
}
