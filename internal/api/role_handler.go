package api

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/gobidev/ems-api/internal/domain"
	"github.com/gobidev/ems-api/internal/service"
)

// RoleHandler handles employee role API requests.
type RoleHandler struct {
	roleService service.RoleService
	validator   *validator.Validate
}

// NewRoleHandler creates a new RoleHandler with the given dependencies.
func NewRoleHandler(roleService service.RoleService) *RoleHandler {
	return &RoleHandler{
		roleService: roleService,
		validator:   validator.New(),
	}
}

// Add handles POST /employees/{id}/role.
func (h *RoleHandler) Add(w http.ResponseWriter, r *http.Request) {
	employeeID, err := getPathInt(r, "id")
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}

	var req RoleRequest
	if err := DecodeJSON(r, &req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	role, err := h.roleService.AddRole(r.Context(), employeeID, &domain.Role{
		Designation: req.Designation,
		Department:  req.Department,
	})
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusCreated, NewRoleResponse(role))
}

// Get handles GET /employees/{id}/role.
func (h *RoleHandler) Get(w http.ResponseWriter, r *http.Request) {
	employeeID, err := getPathInt(r, "id")
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}

	role, err := h.roleService.GetEmployeeRole(r.Context(), employeeID)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusOK, NewRoleResponse(role))
}

// Update handles PUT /employees/{id}/role. An existing role with the same
// designation and department is reattached rather than duplicated.
func (h *RoleHandler) Update(w http.ResponseWriter, r *http.Request) {
	employeeID, err := getPathInt(r, "id")
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}

	var req RoleRequest
	if err := DecodeJSON(r, &req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	role, err := h.roleService.UpdateRole(r.Context(), employeeID, &domain.Role{
		Designation: req.Designation,
		Department:  req.Department,
	})
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusOK, NewRoleResponse(role))
}

// Delete handles DELETE /employees/{id}/role.
func (h *RoleHandler) Delete(w http.ResponseWriter, r *http.Request) {
	employeeID, err := getPathInt(r, "id")
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}

	if err := h.roleService.DeleteRole(r.Context(), employeeID); err != nil {
		respondWithServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
