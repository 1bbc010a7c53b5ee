package utils

import (
	"os"
	"path/filepath"
)

var (
	StakeportHome   string
	StakeportConfig string
)

func GetStakeportHome() string {
	if StakeportHome != "" {
		return StakeportHome
	}

	home := os.Getenv("STAKEPORTHOME")

	if home != "" {
		return home
	}

	return os.ExpandEnv(filepath.Join("$HOME", ".stakeport"))
}

func GetStakeportConfigPath() string {
	if StakeportConfig != "" {
		return StakeportConfig
	}

	return GetStakeportHome() + "/config/config.toml"
}
