package api

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/gobidev/ems-api/internal/domain"
	"github.com/gobidev/ems-api/internal/service"
)

// AccountHandler handles employee bank account API requests.
type AccountHandler struct {
	accountService service.AccountService
	validator      *validator.Validate
}

// NewAccountHandler creates a new AccountHandler with the given dependencies.
func NewAccountHandler(accountService service.AccountService) *AccountHandler {
	return &AccountHandler{
		accountService: accountService,
		validator:      validator.New(),
	}
}

// Add handles POST /employees/{id}/account. An employee holds at most one
// active account.
func (h *AccountHandler) Add(w http.ResponseWriter, r *http.Request) {
	employeeID, err := getPathInt(r, "id")
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}

	var req AccountRequest
	if err := DecodeJSON(r, &req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	account, err := h.accountService.AddAccount(r.Context(), employeeID, &domain.Account{
		AccountNumber: req.AccountNumber,
		BankName:      req.BankName,
		IFSCCode:      req.IFSCCode,
	})
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusCreated, NewAccountResponse(account))
}

// Get handles GET /employees/{id}/account.
func (h *AccountHandler) Get(w http.ResponseWriter, r *http.Request) {
	employeeID, err := getPathInt(r, "id")
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}

	account, err := h.accountService.GetEmployeeAccount(r.Context(), employeeID)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusOK, NewAccountResponse(account))
}

// Update handles PUT /employees/{id}/account.
func (h *AccountHandler) Update(w http.ResponseWriter, r *http.Request) {
	employeeID, err := getPathInt(r, "id")
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}

	var req AccountRequest
	if err := DecodeJSON(r, &req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	account, err := h.accountService.UpdateAccount(r.Context(), employeeID, &domain.Account{
		AccountNumber: req.AccountNumber,
		BankName:      req.BankName,
		IFSCCode:      req.IFSCCode,
	})
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusOK, NewAccountResponse(account))
}

// Delete handles DELETE /employees/{id}/account. The removal is a soft
// delete of the account row.
func (h *AccountHandler) Delete(w http.ResponseWriter, r *http.Request) {
	employeeID, err := getPathInt(r, "id")
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}

	if err := h.accountService.RemoveAccount(r.Context(), employeeID); err != nil {
		respondWithServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
