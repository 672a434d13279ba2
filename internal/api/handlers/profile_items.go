package handlers

import (
	"hr-recruiting-api/internal/storage"
	"hr-recruiting-api/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// ProfileItemHandler serves the five child-relation families for one parent
// kind. The same handler type is mounted under both the job seeker and the
// employee route trees, each with its own repository.
type ProfileItemHandler struct {
	repo      storage.ProfileItemRepository
	validator *validator.Validate
}

// NewProfileItemHandler creates a new ProfileItemHandler.
func NewProfileItemHandler(repo storage.ProfileItemRepository, validate *validator.Validate) *ProfileItemHandler {
	return &ProfileItemHandler{repo: repo, validator: validate}
}

// --- Skills ---

func (h *ProfileItemHandler) GetSkills(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	skills, err := h.repo.GetSkills(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	respondOK(c, skills)
}

func (h *ProfileItemHandler) AddSkill(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.AddSkillRequest
	if !bindAndValidate(c, h.validator, &req) {
		return
	}

	skill, err := h.repo.AddSkill(c.Request.Context(), id, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	respondCreated(c, skill)
}

func (h *ProfileItemHandler) RemoveSkill(c *gin.Context) {
	skillID, ok := parseIDParam(c, "skillId")
	if !ok {
		return
	}

	if err := h.repo.RemoveSkill(c.Request.Context(), skillID); err != nil {
		handleServiceError(c, err)
		return
	}
	respondMessage(c, "Skill removed successfully")
}

// --- Degrees ---

func (h *ProfileItemHandler) GetDegrees(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	degrees, err := h.repo.GetDegrees(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	respondOK(c, degrees)
}

func (h *ProfileItemHandler) AddDegree(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.AddDegreeRequest
	if !bindAndValidate(c, h.validator, &req) {
		return
	}

	degree, err := h.repo.AddDegree(c.Request.Context(), id, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	respondCreated(c, degree)
}

func (h *ProfileItemHandler) RemoveDegree(c *gin.Context) {
	degreeID, ok := parseIDParam(c, "degreeId")
	if !ok {
		return
	}

	if err := h.repo.RemoveDegree(c.Request.Context(), degreeID); err != nil {
		handleServiceError(c, err)
		return
	}
	respondMessage(c, "Degree removed successfully")
}

// --- Experiences ---

func (h *ProfileItemHandler) GetExperiences(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	experiences, err := h.repo.GetExperiences(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	respondOK(c, experiences)
}

func (h *ProfileItemHandler) AddExperience(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.AddExperienceRequest
	if !bindAndValidate(c, h.validator, &req) {
		return
	}

	experience, err := h.repo.AddExperience(c.Request.Context(), id, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	respondCreated(c, experience)
}

func (h *ProfileItemHandler) RemoveExperience(c *gin.Context) {
	experienceID, ok := parseIDParam(c, "experienceId")
	if !ok {
		return
	}

	if err := h.repo.RemoveExperience(c.Request.Context(), experienceID); err != nil {
		handleServiceError(c, err)
		return
	}
	respondMessage(c, "Experience removed successfully")
}

// --- Volunteer work ---

func (h *ProfileItemHandler) GetVolunteerWork(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	volunteerWork, err := h.repo.GetVolunteerWork(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	respondOK(c, volunteerWork)
}

func (h *ProfileItemHandler) AddVolunteerWork(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.AddVolunteerWorkRequest
	if !bindAndValidate(c, h.validator, &req) {
		return
	}

	volunteerWork, err := h.repo.AddVolunteerWork(c.Request.Context(), id, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	respondCreated(c, volunteerWork)
}

func (h *ProfileItemHandler) RemoveVolunteerWork(c *gin.Context) {
	volunteerID, ok := parseIDParam(c, "volunteerId")
	if !ok {
		return
	}

	if err := h.repo.RemoveVolunteerWork(c.Request.Context(), volunteerID); err != nil {
		handleServiceError(c, err)
		return
	}
	respondMessage(c, "Volunteer work removed successfully")
}

// --- Awards ---

func (h *ProfileItemHandler) GetAwards(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	awards, err := h.repo.GetAwards(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	respondOK(c, awards)
}

func (h *ProfileItemHandler) AddAward(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.AddAwardRequest
	if !bindAndValidate(c, h.validator, &req) {
		return
	}

	award, err := h.repo.AddAward(c.Request.Context(), id, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	respondCreated(c, award)
}

func (h *ProfileItemHandler) RemoveAward(c *gin.Context) {
	awardID, ok := parseIDParam(c, "awardId")
	if !ok {
		return
	}

	if err := h.repo.RemoveAward(c.Request.Context(), awardID); err != nil {
		handleServiceError(c, err)
		return
	}
	respondMessage(c, "Award removed successfully")
}
