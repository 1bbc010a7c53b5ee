package api

import (
	"encoding/json"
	"net/http"

	"github.com/StakeportTeam/stakeport-go-node/core/code"
	"github.com/StakeportTeam/stakeport-go-node/core/ledger"
	"github.com/StakeportTeam/stakeport-go-node/core/types"
)

type SetCooldownPeriodRequest struct {
	From   types.Address `json:"from"`
	Period uint64        `json:"period"`
}

func SetCooldownPeriod(w http.ResponseWriter, r *http.Request) {
	var request SetCooldownPeriodRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeResponse(w, Response{
			Code:   code.DecodeError,
			Result: json.RawMessage(ledger.EncodeError(code.NewDecodeError())),
			Log:    err.Error(),
		})
		return
	}

	writeLedgerResponse(w, node.Ledger().SetCooldownPeriod(request.From, request.Period))
}
