package api

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/gobidev/ems-api/internal/domain"
	"github.com/gobidev/ems-api/internal/service"
)

// SkillHandler handles employee skill API requests.
type SkillHandler struct {
	skillService service.SkillService
	validator    *validator.Validate
}

// NewSkillHandler creates a new SkillHandler with the given dependencies.
func NewSkillHandler(skillService service.SkillService) *SkillHandler {
	return &SkillHandler{
		skillService: skillService,
		validator:    validator.New(),
	}
}

// Add handles POST /employees/{id}/skills. A skill name already present in
// the catalog is attached as-is; the rest of the payload is then ignored.
func (h *SkillHandler) Add(w http.ResponseWriter, r *http.Request) {
	employeeID, err := getPathInt(r, "id")
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}

	var req SkillRequest
	if err := DecodeJSON(r, &req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	skill, err := h.skillService.AddSkill(r.Context(), &domain.Skill{
		Name:      req.Name,
		Category:  req.Category,
		Institute: req.Institute,
	}, employeeID)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusCreated, NewSkillResponse(skill))
}

// List handles GET /employees/{id}/skills.
func (h *SkillHandler) List(w http.ResponseWriter, r *http.Request) {
	employeeID, err := getPathInt(r, "id")
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}

	skills, err := h.skillService.GetEmployeeSkills(r.Context(), employeeID)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}

	resp := make([]*SkillResponse, 0, len(skills))
	for _, s := range skills {
		resp = append(resp, NewSkillResponse(s))
	}
	RespondWithJSON(w, r, http.StatusOK, resp)
}

// Update handles PUT /skills. It overwrites the catalog entry matching the
// payload's id, which is visible to every employee referencing it.
func (h *SkillHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req SkillRequest
	if err := DecodeJSON(r, &req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	skill, err := h.skillService.UpdateSkill(r.Context(), &domain.Skill{
		ID:        req.ID,
		Name:      req.Name,
		Category:  req.Category,
		Institute: req.Institute,
	})
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusOK, NewSkillResponse(skill))
}

// DeleteAll handles DELETE /employees/{id}/skills.
func (h *SkillHandler) DeleteAll(w http.ResponseWriter, r *http.Request) {
	employeeID, err := getPathInt(r, "id")
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}

	if err := h.skillService.DeleteSkills(r.Context(), employeeID); err != nil {
		respondWithServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Delete handles DELETE /employees/{id}/skills/{skillId}. Every reference
// sharing the target skill's name is removed from the employee's list.
func (h *SkillHandler) Delete(w http.ResponseWriter, r *http.Request) {
	employeeID, err := getPathInt(r, "id")
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	skillID, err := getPathInt(r, "skillId")
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}

	if err := h.skillService.DeleteSkill(r.Context(), skillID, employeeID); err != nil {
		respondWithServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
