package api

import (
	"encoding/json"
	"net/http"

	"github.com/StakeportTeam/stakeport-go-node/core/code"
	"github.com/StakeportTeam/stakeport-go-node/core/ledger"
	"github.com/StakeportTeam/stakeport-go-node/core/types"
	"github.com/StakeportTeam/stakeport-go-node/helpers"
)

type DepositRequest struct {
	From   types.Address `json:"from"`
	Amount string        `json:"amount"`
}

func Deposit(w http.ResponseWriter, r *http.Request) {
	var request DepositRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeResponse(w, Response{
			Code:   code.DecodeError,
			Result: json.RawMessage(ledger.EncodeError(code.NewDecodeError())),
			Log:    err.Error(),
		})
		return
	}

	if !helpers.IsValidBigInt(request.Amount) {
		writeResponse(w, Response{
			Code:   code.InvalidAmount,
			Result: json.RawMessage(ledger.EncodeError(code.NewInvalidAmount(request.Amount))),
			Log:    "amount is not a valid integer",
		})
		return
	}

	writeLedgerResponse(w, node.Ledger().Deposit(request.From, helpers.StringToBigInt(request.Amount)))
}
