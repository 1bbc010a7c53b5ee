package api

import (
	"net/http"

	"github.com/StakeportTeam/stakeport-go-node/version"
)

type StatusResponse struct {
	Version           string `json:"version"`
	LatestStateHash   string `json:"latest_state_hash"`
	LatestStateHeight uint64 `json:"latest_state_height"`
	CooldownPeriod    uint64 `json:"cooldown_period"`
	GlobalNonce       uint64 `json:"global_nonce"`
}

func Status(w http.ResponseWriter, r *http.Request) {
	cState := node.CheckState()

	writeResponse(w, Response{
		Code: 0,
		Result: StatusResponse{
			Version:           version.Version,
			LatestStateHash:   node.State().HashString(),
			LatestStateHeight: node.State().Height(),
			CooldownPeriod:    cState.App().GetCooldownPeriod(),
			GlobalNonce:       cState.App().GetGlobalNonce(),
		},
	})
}
