package api

import (
	"net/http"

	"github.com/StakeportTeam/stakeport-go-node/core/types"
)

type CustodyResponse struct {
	Address types.Address `json:"address"`
	Balance string        `json:"balance"`
}

func Custody(w http.ResponseWriter, r *http.Request) {
	writeResponse(w, Response{
		Code: 0,
		Result: CustodyResponse{
			Address: types.CustodyAddress,
			Balance: node.CheckState().Accounts().GetBalance(types.CustodyAddress).String(),
		},
	})
}
