package handlers

import (
	"net/http"

	"org-management-backend/internal/auth"
	"org-management-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// OrganizationHandler handles HTTP requests for the organization lifecycle
type OrganizationHandler struct {
	service service.OrganizationServiceInterface
}

// NewOrganizationHandler creates a new organization handler
func NewOrganizationHandler(service service.OrganizationServiceInterface) *OrganizationHandler {
	return &OrganizationHandler{service: service}
}

// CreateOrganization handles POST /org/create
// @Summary Create a new organization
// @Description Create an organization together with its admin account and an isolated data partition
// @Tags organizations
// @Accept json
// @Produce json
// @Param organization body service.CreateOrganizationRequest true "Organization and admin data"
// @Success 201 {object} service.CreateOrganizationResponse "Successfully created organization"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 409 {object} ErrorResponse "Organization or admin email already exists"
// @Failure 422 {object} ErrorResponse "Validation failed"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /org/create [post]
func (h *OrganizationHandler) CreateOrganization(c *gin.Context) {
	var req service.CreateOrganizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	resp, err := h.service.Create(&req)
	if err != nil {
		respondError(c, err, "Failed to create organization")
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// GetOrganization handles GET /org/:name
// @Summary Get organization by name
// @Description Get an organization's metadata by its name
// @Tags organizations
// @Accept json
// @Produce json
// @Param name path string true "Organization name"
// @Success 200 {object} service.OrganizationResponse "Successfully retrieved organization"
// @Failure 404 {object} ErrorResponse "Organization not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /org/{name} [get]
func (h *OrganizationHandler) GetOrganization(c *gin.Context) {
	name := c.Param("name")
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Organization name is required"})
		return
	}

	resp, err := h.service.Get(name)
	if err != nil {
		respondError(c, err, "Failed to get organization")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// UpdateOrganization handles PUT /org/:name
// @Summary Update an organization
// @Description Update the organization name, admin email or admin password; only the organization's admin may do this
// @Tags organizations
// @Accept json
// @Produce json
// @Param name path string true "Organization name"
// @Param organization body service.UpdateOrganizationRequest true "Fields to update"
// @Success 200 {object} service.OrganizationResponse "Successfully updated organization"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 401 {object} ErrorResponse "Missing or invalid token"
// @Failure 403 {object} ErrorResponse "Caller is not the organization admin"
// @Failure 404 {object} ErrorResponse "Organization not found"
// @Failure 409 {object} ErrorResponse "New name or email already taken"
// @Failure 422 {object} ErrorResponse "Validation failed"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /org/{name} [put]
func (h *OrganizationHandler) UpdateOrganization(c *gin.Context) {
	name := c.Param("name")
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Organization name is required"})
		return
	}

	callerID, ok := auth.GetAdminID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var req service.UpdateOrganizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	resp, err := h.service.Update(name, callerID, &req)
	if err != nil {
		respondError(c, err, "Failed to update organization")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// DeleteOrganization handles DELETE /org/:name
// @Summary Delete an organization
// @Description Delete the organization, its admin account and its data partition; only the organization's admin may do this
// @Tags organizations
// @Accept json
// @Produce json
// @Param name path string true "Organization name"
// @Success 200 {object} map[string]interface{} "Successfully deleted organization"
// @Failure 401 {object} ErrorResponse "Missing or invalid token"
// @Failure 403 {object} ErrorResponse "Caller is not the organization admin"
// @Failure 404 {object} ErrorResponse "Organization not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /org/{name} [delete]
func (h *OrganizationHandler) DeleteOrganization(c *gin.Context) {
	name := c.Param("name")
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Organization name is required"})
		return
	}

	callerID, ok := auth.GetAdminID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	if err := h.service.Delete(name, callerID); err != nil {
		respondError(c, err, "Failed to delete organization")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Organization deleted successfully"})
}
