package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/StakeportTeam/stakeport-go-node/config"
	"github.com/StakeportTeam/stakeport-go-node/core/ledger"
	"github.com/StakeportTeam/stakeport-go-node/core/stakeport"
	"github.com/StakeportTeam/stakeport-go-node/log"
	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

var (
	node *stakeport.Node
)

func RunAPI(n *stakeport.Node, cfg *config.Config) error {
	node = n

	handler := Handler()

	listenAddr := strings.TrimPrefix(cfg.APIListenAddress, "tcp://")
	log.Info("Running API", "address", listenAddr)

	return http.ListenAndServe(listenAddr, handler)
}

// Handler builds the API router. Split out so tests can serve it in-process.
func Handler() http.Handler {
	router := mux.NewRouter().StrictSlash(true)

	router.HandleFunc("/api/status", Status).Methods("GET")
	router.HandleFunc("/api/cooldownPeriod", CooldownPeriod).Methods("GET")
	router.HandleFunc("/api/globalNonce", GlobalNonce).Methods("GET")
	router.HandleFunc("/api/position/{address}/{nonce}", Position).Methods("GET")
	router.HandleFunc("/api/positions/{address}", Positions).Methods("GET")
	router.HandleFunc("/api/balance/{address}", Balance).Methods("GET")
	router.HandleFunc("/api/custody", Custody).Methods("GET")
	router.HandleFunc("/api/events/{version}", Events).Methods("GET")
	router.HandleFunc("/api/deposit", Deposit).Methods("POST")
	router.HandleFunc("/api/initiateWithdraw", InitiateWithdraw).Methods("POST")
	router.HandleFunc("/api/withdraw", Withdraw).Methods("POST")
	router.HandleFunc("/api/restake", Restake).Methods("POST")
	router.HandleFunc("/api/setCooldownPeriod", SetCooldownPeriod).Methods("POST")

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"POST", "GET"},
		AllowCredentials: true,
	})

	return c.Handler(router)
}

type Response struct {
	Code   uint32      `json:"code"`
	Result interface{} `json:"result,omitempty"`
	Log    string      `json:"log,omitempty"`
}

func writeResponse(w http.ResponseWriter, response Response) {
	w.Header().Set("Content-Type", "application/json; charset=UTF-8")
	w.WriteHeader(http.StatusOK)

	_ = json.NewEncoder(w).Encode(response)
}

// writeLedgerResponse maps an operation outcome to the API envelope. The
// typed error payload from Info becomes the result on failure.
func writeLedgerResponse(w http.ResponseWriter, response ledger.Response) {
	result := response.Data
	if response.Info != "" {
		result = json.RawMessage(response.Info)
	}

	writeResponse(w, Response{
		Code:   response.Code,
		Result: result,
		Log:    response.Log,
	})
}
