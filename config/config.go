package config

import (
	"os"
	"path/filepath"

	"github.com/StakeportTeam/stakeport-go-node/cmd/utils"
	"github.com/StakeportTeam/stakeport-go-node/core/types"
)

const (
	// LogFormatPlain is a format for colored text
	LogFormatPlain = "plain"
	// LogFormatJSON is a format for json output
	LogFormatJSON = "json"

	defaultConfigDir = "config"
	defaultDataDir   = "data"

	defaultConfigFileName  = "config.toml"
	defaultGenesisJSONName = "genesis.json"
)

var (
	defaultConfigFilePath  = filepath.Join(defaultConfigDir, defaultConfigFileName)
	defaultGenesisJSONPath = filepath.Join(defaultConfigDir, defaultGenesisJSONName)

	defaultMoniker = getDefaultMoniker()
)

// DefaultConfig returns a default configuration for a Stakeport node
func DefaultConfig() *Config {
	return &Config{
		BaseConfig: DefaultBaseConfig(),
	}
}

func GetConfig() *Config {
	cfg := DefaultConfig()

	cfg.SetRoot(utils.GetStakeportHome())
	EnsureRoot(utils.GetStakeportHome())

	return cfg
}

// Config defines the top level configuration for a Stakeport node
type Config struct {
	BaseConfig `mapstructure:",squash"`
}

// SetRoot sets the RootDir for all Config structs
func (cfg *Config) SetRoot(root string) *Config {
	cfg.BaseConfig.RootDir = root
	return cfg
}

//-----------------------------------------------------------------------------
// BaseConfig

// BaseConfig defines the base configuration for a Stakeport node
type BaseConfig struct {
	// The root directory for all data.
	// This should be set in viper so it can unmarshal into this struct
	RootDir string `mapstructure:"home"`

	// Path to the JSON file containing the initial ledger state
	Genesis string `mapstructure:"genesis_file"`

	// A custom human readable name for this node
	Moniker string `mapstructure:"moniker"`

	// Output level for logging
	LogLevel string `mapstructure:"log_level"`

	// Output format: 'plain' (colored text) or 'json'
	LogFormat string `mapstructure:"log_format"`

	// Path to file for logs, "stdout" by default
	LogPath string `mapstructure:"log_path"`

	// Database backend: goleveldb | memdb
	DBBackend string `mapstructure:"db_backend"`

	// Database directory
	DBPath string `mapstructure:"db_dir"`

	// Address to listen for API connections
	APIListenAddress string `mapstructure:"api_listen_addr"`

	// Address allowed to run privileged operations
	AdminAddress string `mapstructure:"admin_address"`

	// Cooldown period in seconds seeded into a fresh ledger
	InitialCooldownPeriod uint64 `mapstructure:"initial_cooldown_period"`

	KeepLastStates int64 `mapstructure:"keep_last_states"`

	StateCacheSize int `mapstructure:"state_cache_size"`
}

// DefaultBaseConfig returns a default base configuration for a Stakeport node
func DefaultBaseConfig() BaseConfig {
	return BaseConfig{
		Genesis:               defaultGenesisJSONPath,
		Moniker:               defaultMoniker,
		LogLevel:              "info",
		LogFormat:             LogFormatPlain,
		LogPath:               "stdout",
		DBBackend:             "goleveldb",
		DBPath:                "data",
		APIListenAddress:      "tcp://0.0.0.0:8841",
		AdminAddress:          "",
		InitialCooldownPeriod: types.DefaultCooldownPeriod,
		KeepLastStates:        120,
		StateCacheSize:        1000000,
	}
}

// GenesisFile returns the full path to the genesis.json file
func (cfg BaseConfig) GenesisFile() string {
	return rootify(cfg.Genesis, cfg.RootDir)
}

// DBDir returns the full path to the database directory
func (cfg BaseConfig) DBDir() string {
	return rootify(cfg.DBPath, cfg.RootDir)
}

func rootify(path, root string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(root, path)
}

func getDefaultMoniker() string {
	moniker, err := os.Hostname()
	if err != nil {
		moniker = "anonymous"
	}
	return moniker
}
