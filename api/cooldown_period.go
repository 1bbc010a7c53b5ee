package api

import (
	"net/http"
)

type CooldownPeriodResponse struct {
	CooldownPeriod uint64 `json:"cooldown_period"`
}

func CooldownPeriod(w http.ResponseWriter, r *http.Request) {
	writeResponse(w, Response{
		Code:   0,
		Result: CooldownPeriodResponse{CooldownPeriod: node.CheckState().App().GetCooldownPeriod()},
	})
}
