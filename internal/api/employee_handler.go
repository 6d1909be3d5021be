package api

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/gobidev/ems-api/internal/api/shared"
	"github.com/gobidev/ems-api/internal/service"
)

const (
	defaultPage     = 0
	defaultPageSize = 10
)

// EmployeeHandler handles employee profile API requests.
type EmployeeHandler struct {
	employeeService service.EmployeeService
	validator       *validator.Validate
}

// NewEmployeeHandler creates a new EmployeeHandler with the given dependencies.
func NewEmployeeHandler(employeeService service.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{
		employeeService: employeeService,
		validator:       validator.New(),
	}
}

// AddDetails handles POST /employees. It fills in the profile of an
// already-registered employee, resolved by the payload's email.
func (h *EmployeeHandler) AddDetails(w http.ResponseWriter, r *http.Request) {
	var req EmployeeRequest

	if err := DecodeJSON(r, &req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	draft, err := req.toEmployeeDraft()
	if err != nil {
		RespondWithError(w, r, http.StatusBadRequest, "Invalid date of birth")
		return
	}

	employee, err := h.employeeService.AddDetails(r.Context(), draft)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusCreated, NewEmployeeResponse(employee))
}

// Get handles GET /employees/{id}.
func (h *EmployeeHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := getPathInt(r, "id")
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}

	employee, err := h.employeeService.GetByID(r.Context(), id)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusOK, NewEmployeeResponse(employee))
}

// List handles GET /employees with zero-based page and size query parameters.
func (h *EmployeeHandler) List(w http.ResponseWriter, r *http.Request) {
	page := getQueryInt(r, "page", defaultPage)
	size := getQueryInt(r, "size", defaultPageSize)

	employees, err := h.employeeService.List(r.Context(), page, size)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}

	resp := make([]*EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		resp = append(resp, NewEmployeeResponse(e))
	}
	RespondWithJSON(w, r, http.StatusOK, resp)
}

// Update handles PUT /employees. A payload without an id has it resolved by
// email, soft-deleted rows included.
func (h *EmployeeHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req EmployeeRequest

	if err := DecodeJSON(r, &req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	draft, err := req.toEmployeeDraft()
	if err != nil {
		RespondWithError(w, r, http.StatusBadRequest, "Invalid date of birth")
		return
	}

	employee, err := h.employeeService.Update(r.Context(), draft)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}

	if actor, ok := shared.GetEmployeeEmail(r.Context()); ok {
		slog.Info("employee updated",
			"employee_id", employee.ID,
			"actor", actor)
	}

	RespondWithJSON(w, r, http.StatusOK, NewEmployeeResponse(employee))
}

// Delete handles DELETE /employees/{id}. The delete is soft and cascades to
// the employee's account.
func (h *EmployeeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := getPathInt(r, "id")
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}

	if err := h.employeeService.Delete(r.Context(), id); err != nil {
		respondWithServiceError(w, r, err)
		return
	}

	if actor, ok := shared.GetEmployeeEmail(r.Context()); ok {
		slog.Info("employee deleted",
			"employee_id", id,
			"actor", actor)
	}

	w.WriteHeader(http.StatusNoContent)
}
