package cmd

import (
	"github.com/StakeportTeam/stakeport-go-node/api"
	"github.com/StakeportTeam/stakeport-go-node/core/stakeport"
	"github.com/StakeportTeam/stakeport-go-node/log"
	"github.com/StakeportTeam/stakeport-go-node/version"
	"github.com/spf13/cobra"
)

// RunNode is the command that allows the CLI to start a node.
var RunNode = &cobra.Command{
	Use:   "node",
	Short: "Run the Stakeport node",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runNode(cmd)
	},
}

func runNode(cmd *cobra.Command) error {
	log.InitLog(cfg)

	node, err := stakeport.NewNode(cfg)
	if err != nil {
		return err
	}

	log.Info("Started node", "version", version.Version, "latest_state_height", node.State().Height())

	go func() {
		if err := api.RunAPI(node, cfg); err != nil {
			log.Fatal("API stopped", "err", err)
		}
	}()

	<-cmd.Context().Done()

	node.Stop()

	return nil
}
