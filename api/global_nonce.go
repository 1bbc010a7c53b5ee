package api

import (
	"net/http"
)

type GlobalNonceResponse struct {
	GlobalNonce uint64 `json:"global_nonce"`
}

func GlobalNonce(w http.ResponseWriter, r *http.Request) {
	writeResponse(w, Response{
		Code:   0,
		Result: GlobalNonceResponse{GlobalNonce: node.CheckState().App().GetGlobalNonce()},
	})
}
