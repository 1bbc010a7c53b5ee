package api

import (
	"encoding/json"
	"net/http"

	"github.com/StakeportTeam/stakeport-go-node/core/code"
	"github.com/StakeportTeam/stakeport-go-node/core/ledger"
	"github.com/StakeportTeam/stakeport-go-node/core/types"
)

type WithdrawRequest struct {
	From  types.Address `json:"from"`
	Nonce uint64        `json:"nonce"`
}

func Withdraw(w http.ResponseWriter, r *http.Request) {
	var request WithdrawRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeResponse(w, Response{
			Code:   code.DecodeError,
			Result: json.RawMessage(ledger.EncodeError(code.NewDecodeError())),
			Log:    err.Error(),
		})
		return
	}

	writeLedgerResponse(w, node.Ledger().Withdraw(request.From, request.Nonce))
}
