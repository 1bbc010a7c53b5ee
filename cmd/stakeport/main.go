package main

import (
	"github.com/StakeportTeam/stakeport-go-node/cmd/stakeport/cmd"
	"github.com/StakeportTeam/stakeport-go-node/cmd/utils"
)

func main() {
	rootCmd := cmd.RootCmd
	rootCmd.PersistentFlags().StringVar(&utils.StakeportHome, "home-dir", "", "base dir (default is $HOME/.stakeport)")
	rootCmd.PersistentFlags().StringVar(&utils.StakeportConfig, "config", "", "path to config.toml")

	rootCmd.AddCommand(
		cmd.RunNode,
		cmd.ExportCommand,
		cmd.Version)

	if err := cmd.RootCmd.Execute(); err != nil {
		panic(err)
	}
}
