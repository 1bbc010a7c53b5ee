package api

import (
	"net/http"
	"strconv"

	"github.com/StakeportTeam/stakeport-go-node/core/code"
	"github.com/StakeportTeam/stakeport-go-node/core/events"
	"github.com/gorilla/mux"
)

type EventsResponse struct {
	Events events.Events `json:"events"`
}

func Events(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	version, err := strconv.ParseUint(vars["version"], 10, 32)
	if err != nil {
		writeResponse(w, Response{Code: code.DecodeError, Log: "invalid version"})
		return
	}

	writeResponse(w, Response{
		Code:   0,
		Result: EventsResponse{Events: node.Events().LoadEvents(uint32(version))},
	})
}
