package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math/big"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/StakeportTeam/stakeport-go-node/config"
	"github.com/StakeportTeam/stakeport-go-node/core/code"
	"github.com/StakeportTeam/stakeport-go-node/core/stakeport"
	"github.com/StakeportTeam/stakeport-go-node/core/types"
	"github.com/stretchr/testify/require"
)

var (
	testSender = types.HexToAddress("Sx04bea23efb744dc93b4fda4c20bf4a21c6e195f1")
	testAdmin  = types.HexToAddress("Sxee81347211c72524338f9680072af90744333146")
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	cfg := config.DefaultConfig()
	cfg.SetRoot(t.TempDir())
	cfg.DBBackend = "memdb"
	cfg.AdminAddress = testAdmin.String()

	n, err := stakeport.NewNode(cfg)
	require.NoError(t, err)
	t.Cleanup(n.Stop)

	n.State().Accounts.AddBalance(testSender, big.NewInt(1000000))

	node = n

	server := httptest.NewServer(Handler())
	t.Cleanup(server.Close)

	return server
}

func get(t *testing.T, server *httptest.Server, path string) Response {
	t.Helper()

	resp, err := http.Get(server.URL + path)
	require.NoError(t, err)
	defer resp.Body.Close()

	var response Response
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&response))
	return response
}

func post(t *testing.T, server *httptest.Server, path string, body interface{}) Response {
	t.Helper()

	data, err := json.Marshal(body)
	require.NoError(t, err)

	resp, err := http.Post(server.URL+path, "application/json", bytes.NewReader(data))
	require.NoError(t, err)
	defer resp.Body.Close()

	var response Response
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&response))
	return response
}

func TestStatus(t *testing.T) {
	server := newTestServer(t)

	response := get(t, server, "/api/status")
	require.Equal(t, uint32(0), response.Code)

	result := response.Result.(map[string]interface{})
	require.NotEmpty(t, result["version"])
	require.EqualValues(t, 1, result["latest_state_height"])
	require.EqualValues(t, types.DefaultCooldownPeriod, result["cooldown_period"])
}

func TestDepositAndQueries(t *testing.T) {
	server := newTestServer(t)

	response := post(t, server, "/api/deposit", DepositRequest{From: testSender, Amount: "500"})
	require.Equal(t, uint32(0), response.Code, response.Log)

	nonce := response.Result.(map[string]interface{})["nonce"]
	require.EqualValues(t, 0, nonce)

	response = get(t, server, fmt.Sprintf("/api/position/%s/0", testSender.String()))
	require.Equal(t, uint32(0), response.Code)
	position := response.Result.(map[string]interface{})
	require.Equal(t, "500", position["amount"])
	require.Equal(t, "active", position["status"])
	require.EqualValues(t, 0, position["unlocks_at"])

	response = get(t, server, fmt.Sprintf("/api/positions/%s", testSender.String()))
	require.Equal(t, uint32(0), response.Code)
	list := response.Result.(map[string]interface{})["positions"].([]interface{})
	require.Len(t, list, 1)

	response = get(t, server, "/api/custody")
	require.Equal(t, uint32(0), response.Code)
	require.Equal(t, "500", response.Result.(map[string]interface{})["balance"])

	response = get(t, server, fmt.Sprintf("/api/balance/%s", testSender.String()))
	require.Equal(t, "999500", response.Result.(map[string]interface{})["balance"])

	response = get(t, server, "/api/globalNonce")
	require.EqualValues(t, 1, response.Result.(map[string]interface{})["global_nonce"])

	response = get(t, server, "/api/events/2")
	require.Equal(t, uint32(0), response.Code)
	events := response.Result.(map[string]interface{})["events"].([]interface{})
	require.Len(t, events, 1)
}

func TestPositionNotFound(t *testing.T) {
	server := newTestServer(t)

	response := get(t, server, fmt.Sprintf("/api/position/%s/99", testSender.String()))
	require.Equal(t, code.PositionNotFound, response.Code)
}

func TestPositionBadAddress(t *testing.T) {
	server := newTestServer(t)

	response := get(t, server, "/api/position/nonsense/1")
	require.Equal(t, code.DecodeError, response.Code)
}

func TestDepositInvalidAmount(t *testing.T) {
	server := newTestServer(t)

	response := post(t, server, "/api/deposit", DepositRequest{From: testSender, Amount: "many"})
	require.Equal(t, code.InvalidAmount, response.Code)
}

func TestWithdrawFlow(t *testing.T) {
	server := newTestServer(t)

	response := post(t, server, "/api/deposit", DepositRequest{From: testSender, Amount: "500"})
	require.Equal(t, uint32(0), response.Code, response.Log)

	response = post(t, server, "/api/initiateWithdraw", InitiateWithdrawRequest{From: testSender, Nonce: 0})
	require.Equal(t, uint32(0), response.Code, response.Log)

	// cooldown has not elapsed
	response = post(t, server, "/api/withdraw", WithdrawRequest{From: testSender, Nonce: 0})
	require.Equal(t, code.NotYetUnlocked, response.Code)

	response = post(t, server, "/api/restake", RestakeRequest{From: testSender, Nonce: 0})
	require.Equal(t, uint32(0), response.Code, response.Log)

	response = get(t, server, fmt.Sprintf("/api/position/%s/0", testSender.String()))
	require.Equal(t, "active", response.Result.(map[string]interface{})["status"])
}

func TestSetCooldownPeriod(t *testing.T) {
	server := newTestServer(t)

	response := post(t, server, "/api/setCooldownPeriod", SetCooldownPeriodRequest{From: testSender, Period: 3600})
	require.Equal(t, code.Unauthorized, response.Code)

	response = post(t, server, "/api/setCooldownPeriod", SetCooldownPeriodRequest{From: testAdmin, Period: 3600})
	require.Equal(t, uint32(0), response.Code, response.Log)

	response = get(t, server, "/api/cooldownPeriod")
	require.EqualValues(t, 3600, response.Result.(map[string]interface{})["cooldown_period"])
}
