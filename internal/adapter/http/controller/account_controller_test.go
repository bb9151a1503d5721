package controller_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgerworks/banking-ledger/internal/adapter/http/controller"
	"github.com/ledgerworks/banking-ledger/internal/adapter/http/router"
	"github.com/ledgerworks/banking-ledger/internal/adapter/repository/memory"
	"github.com/ledgerworks/banking-ledger/internal/usecase/services"
)

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Errors  []string        `json:"errors"`
}

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	store := memory.New()
	ledger := services.NewLedgerService(store)
	mux := router.New(controller.NewAccountController(ledger))
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func doJSON(t *testing.T, srv *httptest.Server, method, path string, body string) (int, envelope) {
	t.Helper()

	var reader *bytes.Reader
	if body == "" {
		reader = bytes.NewReader(nil)
	} else {
		reader = bytes.NewReader([]byte(body))
	}

	req, err := http.NewRequest(method, srv.URL+path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return resp.StatusCode, env
}

func createAccount(t *testing.T, srv *httptest.Server, number string, amount int, currency string) {
	t.Helper()
	status, _ := doJSON(t, srv, http.MethodPost, "/accounts",
		fmt.Sprintf(`{"accountNumber":%q,"amount":%d,"currency":%q}`, number, amount, currency))
	require.Equal(t, http.StatusCreated, status)
}

func TestCreateAccountEndpoint(t *testing.T) {
	srv := newTestServer(t)

	status, env := doJSON(t, srv, http.MethodPost, "/accounts", `{"accountNumber":"A1","amount":100,"currency":"USD"}`)
	require.Equal(t, http.StatusCreated, status)
	assert.True(t, env.Success)

	var account struct {
		AccountNumber string `json:"accountNumber"`
		Balance       string `json:"balance"`
		Currency      string `json:"currency"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &account))
	assert.Equal(t, "A1", account.AccountNumber)
	assert.Equal(t, "100", account.Balance)
	assert.Equal(t, "USD", account.Currency)
}

func TestCreateAccountEndpointValidation(t *testing.T) {
	srv := newTestServer(t)

	status, env := doJSON(t, srv, http.MethodPost, "/accounts", `{"amount":100,"currency":"USD"}`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.False(t, env.Success)

	status, _ = doJSON(t, srv, http.MethodPost, "/accounts", `{not json`)
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestCreateAccountEndpointDuplicate(t *testing.T) {
	srv := newTestServer(t)
	createAccount(t, srv, "A1", 100, "USD")

	status, env := doJSON(t, srv, http.MethodPost, "/accounts", `{"accountNumber":"A1","amount":5,"currency":"USD"}`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.False(t, env.Success)
}

func TestListAccountsEndpoint(t *testing.T) {
	srv := newTestServer(t)
	createAccount(t, srv, "A1", 100, "USD")
	createAccount(t, srv, "A2", 50, "EUR")

	status, env := doJSON(t, srv, http.MethodGet, "/accounts", "")
	require.Equal(t, http.StatusOK, status)

	var accounts []struct {
		AccountNumber string `json:"accountNumber"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &accounts))
	require.Len(t, accounts, 2)
}

func TestGetAccountEndpoint(t *testing.T) {
	srv := newTestServer(t)
	createAccount(t, srv, "A1", 100, "USD")

	status, env := doJSON(t, srv, http.MethodGet, "/accounts/A1", "")
	require.Equal(t, http.StatusOK, status)
	assert.True(t, env.Success)

	status, env = doJSON(t, srv, http.MethodGet, "/accounts/missing", "")
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Account not found", env.Message)
}

func TestDepositEndpoint(t *testing.T) {
	srv := newTestServer(t)
	createAccount(t, srv, "A1", 100, "USD")

	status, env := doJSON(t, srv, http.MethodPost, "/accounts/deposit", `{"accountNumber":"A1","amount":50}`)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Deposit successful", env.Message)

	var result struct {
		Balance string `json:"balance"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &result))
	assert.Equal(t, "150", result.Balance)
}

func TestDepositEndpointNegativeAmount(t *testing.T) {
	srv := newTestServer(t)
	createAccount(t, srv, "A1", 100, "USD")

	status, env := doJSON(t, srv, http.MethodPost, "/accounts/deposit", `{"accountNumber":"A1","amount":-10}`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.False(t, env.Success)
}

func TestDepositEndpointUnknownAccount(t *testing.T) {
	srv := newTestServer(t)

	status, _ := doJSON(t, srv, http.MethodPost, "/accounts/deposit", `{"accountNumber":"missing","amount":10}`)
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestWithdrawEndpoint(t *testing.T) {
	srv := newTestServer(t)
	createAccount(t, srv, "A1", 150, "USD")

	status, env := doJSON(t, srv, http.MethodPost, "/accounts/withdraw", `{"accountNumber":"A1","amount":50}`)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Withdrawal successful", env.Message)

	status, env = doJSON(t, srv, http.MethodPost, "/accounts/withdraw", `{"accountNumber":"A1","amount":500}`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.False(t, env.Success)
}

func TestTransferEndpoint(t *testing.T) {
	srv := newTestServer(t)
	createAccount(t, srv, "A1", 150, "USD")
	createAccount(t, srv, "A2", 50, "USD")

	status, env := doJSON(t, srv, http.MethodPost, "/accounts/transfer",
		`{"fromAccountNumber":"A1","toAccountNumber":"A2","amount":50}`)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Transfer successful", env.Message)

	var result struct {
		FromBalance string `json:"fromBalance"`
		ToBalance   string `json:"toBalance"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &result))
	assert.Equal(t, "100", result.FromBalance)
	assert.Equal(t, "100", result.ToBalance)
}

func TestTransferEndpointCurrencyMismatch(t *testing.T) {
	srv := newTestServer(t)
	createAccount(t, srv, "A1", 150, "USD")
	createAccount(t, srv, "A3", 50, "EUR")

	status, env := doJSON(t, srv, http.MethodPost, "/accounts/transfer",
		`{"fromAccountNumber":"A1","toAccountNumber":"A3","amount":50}`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.False(t, env.Success)
}

func TestTransactionsEndpoint(t *testing.T) {
	srv := newTestServer(t)
	createAccount(t, srv, "A1", 100, "USD")

	_, _ = doJSON(t, srv, http.MethodPost, "/accounts/deposit", `{"accountNumber":"A1","amount":10}`)

	status, env := doJSON(t, srv, http.MethodGet, "/accounts/A1/transactions", "")
	require.Equal(t, http.StatusOK, status)

	var entries []struct {
		Type string `json:"type"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &entries))
	require.Len(t, entries, 2)
	assert.Equal(t, "OPENING", entries[0].Type)
	assert.Equal(t, "DEPOSIT", entries[1].Type)

	status, _ = doJSON(t, srv, http.MethodGet, "/accounts/missing/transactions", "")
	assert.Equal(t, http.StatusNotFound, status)
}

func TestMethodNotAllowed(t *testing.T) {
	srv := newTestServer(t)

	status, _ := doJSON(t, srv, http.MethodDelete, "/accounts", "")
	assert.Equal(t, http.StatusMethodNotAllowed, status)

	status, _ = doJSON(t, srv, http.MethodGet, "/accounts/deposit", "")
	assert.Equal(t, http.StatusMethodNotAllowed, status)
}
