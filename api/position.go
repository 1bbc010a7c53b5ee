package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/StakeportTeam/stakeport-go-node/core/code"
	"github.com/StakeportTeam/stakeport-go-node/core/ledger"
	"github.com/StakeportTeam/stakeport-go-node/core/types"
	"github.com/gorilla/mux"
)

type PositionResponse struct {
	Owner            types.Address `json:"owner"`
	Nonce            uint64        `json:"nonce"`
	Amount           string        `json:"amount"`
	DepositTimestamp uint64        `json:"deposit_timestamp"`
	Status           string        `json:"status"`
	UnlocksAt        uint64        `json:"unlocks_at"`
}

func Position(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	if !types.IsHexAddress(vars["address"]) {
		writeResponse(w, Response{Code: code.DecodeError, Log: "invalid address"})
		return
	}
	address := types.HexToAddress(vars["address"])

	nonce, err := strconv.ParseUint(vars["nonce"], 10, 64)
	if err != nil {
		writeResponse(w, Response{Code: code.DecodeError, Log: "invalid nonce"})
		return
	}

	position := node.CheckState().Positions().Get(address, nonce)
	if position == nil {
		writeResponse(w, Response{
			Code:   code.PositionNotFound,
			Result: json.RawMessage(ledger.EncodeError(code.NewPositionNotFound(address.String(), nonce))),
			Log:    "position does not exist",
		})
		return
	}

	writeResponse(w, Response{
		Code: 0,
		Result: PositionResponse{
			Owner:            address,
			Nonce:            position.Nonce,
			Amount:           position.GetValue().String(),
			DepositTimestamp: position.GetDepositTimestamp(),
			Status:           types.PositionStatusName(position.GetStatus()),
			UnlocksAt:        position.GetUnlocksAt(),
		},
	})
}
