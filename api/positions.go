package api

import (
	"net/http"

	"github.com/StakeportTeam/stakeport-go-node/core/code"
	"github.com/StakeportTeam/stakeport-go-node/core/types"
	"github.com/gorilla/mux"
)

type PositionsResponse struct {
	Positions []PositionResponse `json:"positions"`
}

func Positions(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	if !types.IsHexAddress(vars["address"]) {
		writeResponse(w, Response{Code: code.DecodeError, Log: "invalid address"})
		return
	}
	address := types.HexToAddress(vars["address"])

	list := node.CheckState().Positions().GetByOwner(address)
	result := PositionsResponse{Positions: make([]PositionResponse, 0, len(list))}
	for _, position := range list {
		result.Positions = append(result.Positions, PositionResponse{
			Owner:            address,
			Nonce:            position.Nonce,
			Amount:           position.GetValue().String(),
			DepositTimestamp: position.GetDepositTimestamp(),
			Status:           types.PositionStatusName(position.GetStatus()),
			UnlocksAt:        position.GetUnlocksAt(),
		})
	}

	writeResponse(w, Response{Code: 0, Result: result})
}
