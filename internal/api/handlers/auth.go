package handlers

import (
	"net/http"

	"org-management-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles HTTP requests for admin authentication
type AuthHandler struct {
	service service.AuthServiceInterface
}

// NewAuthHandler creates a new authentication handler
func NewAuthHandler(service service.AuthServiceInterface) *AuthHandler {
	return &AuthHandler{service: service}
}

// Login handles POST /admin/login
// @Summary Admin login
// @Description Authenticate an organization admin and issue a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body service.LoginRequest true "Admin credentials"
// @Success 200 {object} service.TokenResponse "Successfully authenticated"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 401 {object} ErrorResponse "Invalid email or password"
// @Failure 422 {object} ErrorResponse "Validation failed"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /admin/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req service.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	resp, err := h.service.Login(&req)
	if err != nil {
		respondError(c, err, "Failed to log in")
		return
	}

	c.JSON(http.StatusOK, resp)
}
