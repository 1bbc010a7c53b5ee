package api

import (
	"encoding/json"
	"net/http"

	"github.com/StakeportTeam/stakeport-go-node/core/code"
	"github.com/StakeportTeam/stakeport-go-node/core/ledger"
	"github.com/StakeportTeam/stakeport-go-node/core/types"
)

type RestakeRequest struct {
	From  types.Address `json:"from"`
	Nonce uint64        `json:"nonce"`
}

func Restake(w http.ResponseWriter, r *http.Request) {
	var request RestakeRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeResponse(w, Response{
			Code:   code.DecodeError,
			Result: json.RawMessage(ledger.EncodeError(code.NewDecodeError())),
			Log:    err.Error(),
		})
		return
	}

	writeLedgerResponse(w, node.Ledger().Restake(request.From, request.Nonce))
}
