package cmd

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/StakeportTeam/stakeport-go-node/core/state"
	"github.com/spf13/cobra"
	db "github.com/tendermint/tm-db"
)

var (
	ExportCommand = &cobra.Command{
		Use:   "export",
		Short: "Export the ledger state as a genesis document",
		RunE:  export,
	}
)

func init() {
	ExportCommand.Flags().Uint64("height", 0, "state version to export (0 for latest)")
	ExportCommand.Flags().Bool("indent", false, "indent the output")
}

func export(cmd *cobra.Command, args []string) error {
	height, err := cmd.Flags().GetUint64("height")
	if err != nil {
		log.Panicf("Cannot parse height: %s", err)
	}

	indent, err := cmd.Flags().GetBool("indent")
	if err != nil {
		log.Panicf("Cannot parse indent: %s", err)
	}

	stateDB, err := db.NewDB("state", db.BackendType(cfg.DBBackend), cfg.DBDir())
	if err != nil {
		return err
	}
	defer stateDB.Close()

	cState, err := state.NewCheckStateAtHeight(height, stateDB)
	if err != nil {
		return err
	}

	appState := cState.Export()
	if err := appState.Verify(); err != nil {
		return err
	}

	var data []byte
	if indent {
		data, err = json.MarshalIndent(appState, "", "  ")
	} else {
		data, err = json.Marshal(appState)
	}
	if err != nil {
		return err
	}

	fmt.Println(string(data))

	return nil
}
