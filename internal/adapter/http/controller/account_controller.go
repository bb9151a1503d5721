package controller

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/ledgerworks/banking-ledger/internal/adapter/http/models"
	"github.com/ledgerworks/banking-ledger/internal/commons"
	"github.com/ledgerworks/banking-ledger/internal/domain"
	"github.com/ledgerworks/banking-ledger/internal/usecase/service_interfaces"
)

type AccountController struct {
	service service_interfaces.LedgerService
}

func NewAccountController(service service_interfaces.LedgerService) *AccountController {
	return &AccountController{service: service}
}

func (c *AccountController) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/accounts", c.accounts)
	mux.HandleFunc("/accounts/", c.accountSubtree)
	mux.HandleFunc("/accounts/deposit", c.deposit)
	mux.HandleFunc("/accounts/withdraw", c.withdraw)
	mux.HandleFunc("/accounts/transfer", c.transfer)
}

// accounts handles POST /accounts (create) and GET /accounts (list).
func (c *AccountController) accounts(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		c.createAccount(w, r)
	case http.MethodGet:
		c.listAccounts(w, r)
	default:
		writeJSON(w, http.StatusMethodNotAllowed, commons.ErrorResponse[struct{}]("method not allowed"))
	}
}

// accountSubtree handles GET /accounts/{number} and
// GET /accounts/{number}/transactions.
func (c *AccountController) accountSubtree(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeJSON(w, http.StatusMethodNotAllowed, commons.ErrorResponse[struct{}]("method not allowed"))
		return
	}

	rest := strings.Trim(strings.TrimPrefix(r.URL.Path, "/accounts/"), "/")
	parts := strings.Split(rest, "/")

	switch {
	case len(parts) == 1 && parts[0] != "":
		c.getAccount(w, r, parts[0])
	case len(parts) == 2 && parts[0] != "" && parts[1] == "transactions":
		c.listTransactions(w, r, parts[0])
	default:
		writeJSON(w, http.StatusNotFound, commons.ErrorResponse[struct{}]("not found"))
	}
}

func (c *AccountController) createAccount(w http.ResponseWriter, r *http.Request) {
	var req models.CreateAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, commons.ErrorResponse[models.AccountResponse]("invalid request body", err.Error()))
		return
	}
	logRequest(r, req)

	if err := req.Validate(); err != nil {
		writeJSON(w, http.StatusBadRequest, commons.ErrorResponse[models.AccountResponse]("validation failed", err.Error()))
		return
	}

	account, err := c.service.CreateAccount(r.Context(), req)
	if err != nil {
		writeError[models.AccountResponse](w, r, err, "failed to create account")
		return
	}

	writeJSON(w, http.StatusCreated, commons.SuccessResponse("account created successfully", *account))
}

func (c *AccountController) listAccounts(w http.ResponseWriter, r *http.Request) {
	accounts, err := c.service.ListAccounts(r.Context())
	if err != nil {
		writeError[[]models.AccountResponse](w, r, err, "failed to list accounts")
		return
	}

	writeJSON(w, http.StatusOK, commons.SuccessResponse("accounts fetched successfully", accounts))
}

func (c *AccountController) getAccount(w http.ResponseWriter, r *http.Request, accountNumber string) {
	account, err := c.service.GetAccount(r.Context(), accountNumber)
	if err != nil {
		writeError[models.AccountResponse](w, r, err, "failed to get account")
		return
	}
	if account == nil {
		writeJSON(w, http.StatusNotFound, commons.ErrorResponse[models.AccountResponse]("Account not found"))
		return
	}

	writeJSON(w, http.StatusOK, commons.SuccessResponse("account fetched successfully", *account))
}

func (c *AccountController) listTransactions(w http.ResponseWriter, r *http.Request, accountNumber string) {
	entries, err := c.service.ListTransactions(r.Context(), accountNumber)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			writeJSON(w, http.StatusNotFound, commons.ErrorResponse[[]models.TransactionResponse]("Account not found"))
			return
		}
		writeError[[]models.TransactionResponse](w, r, err, "failed to list transactions")
		return
	}

	writeJSON(w, http.StatusOK, commons.SuccessResponse("transactions fetched successfully", entries))
}

func (c *AccountController) deposit(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeBalanceRequest(w, r)
	if !ok {
		return
	}

	result, err := c.service.Deposit(r.Context(), req)
	if err != nil {
		writeError[models.BalanceResponse](w, r, err, "failed to deposit funds")
		return
	}

	writeJSON(w, http.StatusOK, commons.SuccessResponse("Deposit successful", *result))
}

func (c *AccountController) withdraw(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeBalanceRequest(w, r)
	if !ok {
		return
	}

	result, err := c.service.Withdraw(r.Context(), req)
	if err != nil {
		writeError[models.BalanceResponse](w, r, err, "failed to withdraw funds")
		return
	}

	writeJSON(w, http.StatusOK, commons.SuccessResponse("Withdrawal successful", *result))
}

func (c *AccountController) transfer(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, commons.ErrorResponse[models.TransferResponse]("method not allowed"))
		return
	}
	var req models.TransferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, commons.ErrorResponse[models.TransferResponse]("invalid request body", err.Error()))
		return
	}
	logRequest(r, req)

	if err := req.Validate(); err != nil {
		writeJSON(w, http.StatusBadRequest, commons.ErrorResponse[models.TransferResponse]("validation failed", err.Error()))
		return
	}

	result, err := c.service.Transfer(r.Context(), req)
	if err != nil {
		writeError[models.TransferResponse](w, r, err, "failed to transfer funds")
		return
	}

	writeJSON(w, http.StatusOK, commons.SuccessResponse("Transfer successful", *result))
}

func decodeBalanceRequest(w http.ResponseWriter, r *http.Request) (models.BalanceRequest, bool) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, commons.ErrorResponse[models.BalanceResponse]("method not allowed"))
		return models.BalanceRequest{}, false
	}
	var req models.BalanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, commons.ErrorResponse[models.BalanceResponse]("invalid request body", err.Error()))
		return models.BalanceRequest{}, false
	}
	logRequest(r, req)

	if err := req.Validate(); err != nil {
		writeJSON(w, http.StatusBadRequest, commons.ErrorResponse[models.BalanceResponse]("validation failed", err.Error()))
		return models.BalanceRequest{}, false
	}

	return req, true
}

// writeError maps ledger errors to 400 responses with the error detail;
// anything else is a store-level failure and stays a generic 500.
func writeError[T any](w http.ResponseWriter, r *http.Request, err error, message string) {
	logError(r, err, nil)

	if isLedgerError(err) {
		writeJSON(w, http.StatusBadRequest, commons.ErrorResponse[T](message, err.Error()))
		return
	}

	writeJSON(w, http.StatusInternalServerError, commons.ErrorResponse[T](message, "unable to process the request right now"))
}

func isLedgerError(err error) bool {
	return errors.Is(err, domain.ErrInvalidArgument) ||
		errors.Is(err, domain.ErrInvalidAmount) ||
		errors.Is(err, domain.ErrInsufficientFunds) ||
		errors.Is(err, domain.ErrAccountNotFound) ||
		errors.Is(err, domain.ErrDuplicateAccount) ||
		errors.Is(err, domain.ErrCurrencyMismatch)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
