package handler

import (
	"errors"
	"net/http"
	"strings"

	"medichat-backend/internal/models"
	"medichat-backend/internal/storage"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

type SignupRequest struct {
	Username    string `json:"username" example:"ana"`
	Password    string `json:"password" example:"password123"`
	Allergies   string `json:"allergies" example:"peanuts"`
	Conditions  string `json:"conditions" example:"asthma"`
	BloodType   string `json:"blood_type" example:"O+"`
	Medications string `json:"medications" example:"ibuprofen"`
}

type LoginRequest struct {
	Username string `json:"username" example:"ana"`
	Password string `json:"password" example:"password123"`
}

// Signup godoc
// @Summary      Create an account
// @Description  Registers a new user and stores the optional initial medical profile.
// @Tags         User
// @Accept       json
// @Produce      json
// @Param        request body handler.SignupRequest true "signup payload"
// @Success      201 {object} handler.SuccessResponse
// @Failure      400 {object} handler.ErrorResponse "empty credentials or duplicate username"
// @Failure      500 {object} handler.ErrorResponse
// @Router       /api/signup [post]
func (h *Handler) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	if strings.TrimSpace(req.Username) == "" || strings.TrimSpace(req.Password) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username and password required"})
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}

	_, err = h.store.CreateUser(req.Username, string(hashed), models.MedicalHistory{
		Allergies:   req.Allergies,
		Conditions:  req.Conditions,
		BloodType:   req.BloodType,
		Medications: req.Medications,
	})
	if err != nil {
		if errors.Is(err, storage.ErrUsernameExists) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "User already exists"})
			return
		}
		h.log.Error().Err(err).Msg("failed to create user")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "User created successfully"})
}

// Login godoc
// @Summary      Log in
// @Description  Verifies credentials and returns the user id the client keeps for later calls.
// @Tags         User
// @Accept       json
// @Produce      json
// @Param        request body handler.LoginRequest true "login payload"
// @Success      200 {object} handler.LoginResponse
// @Failure      401 {object} handler.ErrorResponse "bad credentials"
// @Failure      500 {object} handler.ErrorResponse
// @Router       /api/login [post]
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	// Unknown user and wrong password answer identically so the endpoint
	// never reveals whether a username exists.
	user, err := h.store.GetUserByUsername(req.Username)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
			return
		}
		h.log.Error().Err(err).Msg("failed to look up user")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Login successful", "user_id": user.ID})
}
