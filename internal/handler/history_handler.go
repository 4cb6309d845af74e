package handler

import (
	"net/http"
	"strconv"

	"medichat-backend/internal/models"

	"github.com/gin-gonic/gin"
)

type MedicalHistoryRequest struct {
	UserID      int64   `json:"user_id" example:"1"`
	Allergies   *string `json:"allergies" example:"bees"`
	Conditions  *string `json:"conditions" example:"asthma"`
	BloodType   *string `json:"blood_type" example:"O+"`
	Medications *string `json:"medications" example:"ibuprofen"`
}

// GetMedicalHistory godoc
// @Summary      Fetch the medical profile
// @Description  Returns the user's medical profile. A user without a stored profile gets an all-empty one.
// @Tags         MedicalHistory
// @Produce      json
// @Param        user_id query int true "user id"
// @Success      200 {object} models.MedicalHistory
// @Failure      400 {object} handler.ErrorResponse "missing or malformed user_id"
// @Failure      404 {object} handler.ErrorResponse "unknown user"
// @Failure      500 {object} handler.ErrorResponse
// @Router       /api/medical-history [get]
func (h *Handler) GetMedicalHistory(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Query("user_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "User ID required"})
		return
	}
	if !h.requireUser(c, userID) {
		return
	}

	hist, err := h.store.GetHistoryByUserID(userID)
	if err != nil {
		h.log.Error().Err(err).Int64("user_id", userID).Msg("failed to fetch medical history")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	c.JSON(http.StatusOK, hist)
}

// UpdateMedicalHistory godoc
// @Summary      Update the medical profile
// @Description  Upserts the profile. Omitted fields keep their stored values; supplied fields replace them.
// @Tags         MedicalHistory
// @Accept       json
// @Produce      json
// @Param        request body handler.MedicalHistoryRequest true "partial profile update"
// @Success      200 {object} models.MedicalHistory
// @Failure      400 {object} handler.ErrorResponse "missing user_id"
// @Failure      404 {object} handler.ErrorResponse "unknown user"
// @Failure      500 {object} handler.ErrorResponse
// @Router       /api/medical-history [post]
func (h *Handler) UpdateMedicalHistory(c *gin.Context) {
	var req MedicalHistoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	if req.UserID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "User ID required"})
		return
	}
	if !h.requireUser(c, req.UserID) {
		return
	}

	hist, err := h.store.UpsertHistory(req.UserID, models.MedicalHistoryUpdate{
		Allergies:   req.Allergies,
		Conditions:  req.Conditions,
		BloodType:   req.BloodType,
		Medications: req.Medications,
	})
	if err != nil {
		h.log.Error().Err(err).Int64("user_id", req.UserID).Msg("failed to upsert medical history")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	c.JSON(http.StatusOK, hist)
}

// requireUser answers 404 (or 500) and returns false when userID does not
// reference an existing user.
func (h *Handler) requireUser(c *gin.Context, userID int64) bool {
	exists, err := h.store.UserExists(userID)
	if err != nil {
		h.log.Error().Err(err).Int64("user_id", userID).Msg("failed to check user")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return false
	}
	if !exists {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return false
	}
	return true
}
