package api

import (
	"net/http"

	"github.com/StakeportTeam/stakeport-go-node/core/code"
	"github.com/StakeportTeam/stakeport-go-node/core/types"
	"github.com/gorilla/mux"
)

type BalanceResponse struct {
	Balance string `json:"balance"`
}

func Balance(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	if !types.IsHexAddress(vars["address"]) {
		writeResponse(w, Response{Code: code.DecodeError, Log: "invalid address"})
		return
	}
	address := types.HexToAddress(vars["address"])

	writeResponse(w, Response{
		Code:   0,
		Result: BalanceResponse{Balance: node.CheckState().Accounts().GetBalance(address).String()},
	})
}
