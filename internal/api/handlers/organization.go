package handlers

import (
	"errors"
	"net/http"
	"strconv"

	apperrors "todo-list-backend/internal/errors"
	"todo-list-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// OrganizationHandler handles HTTP requests for organizations
type OrganizationHandler struct {
	service service.OrganizationServiceInterface
}

// NewOrganizationHandler creates a new organization handler
func NewOrganizationHandler(service service.OrganizationServiceInterface) *OrganizationHandler {
	return &OrganizationHandler{service: service}
}

// CreateOrganization handles POST /api/organizations
// @Summary Create a new organization
// @Description Create a new organization. Names are globally unique.
// @Tags organizations
// @Accept json
// @Produce json
// @Param organization body service.CreateOrganizationRequest true "Organization data"
// @Success 201 {object} service.OrganizationResponse "Successfully created organization"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 403 {object} map[string]interface{} "Authentication credentials were not provided."
// @Failure 409 {object} map[string]interface{} "Organization already exists"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security SessionCookie
// @Router /organizations [post]
func (h *OrganizationHandler) CreateOrganization(c *gin.Context) {
	var req service.CreateOrganizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	org, err := h.service.Create(&req)
	if err != nil {
		h.writeError(c, err, "Failed to create organization")
		return
	}

	c.JSON(http.StatusCreated, org)
}

// GetOrganization handles GET /api/organizations/:id
// @Summary Get organization by ID
// @Description Get a specific organization by its UUID
// @Tags organizations
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Success 200 {object} service.OrganizationResponse "Successfully retrieved organization"
// @Failure 400 {object} map[string]interface{} "Invalid organization ID"
// @Failure 403 {object} map[string]interface{} "Authentication credentials were not provided."
// @Failure 404 {object} map[string]interface{} "Organization not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security SessionCookie
// @Router /organizations/{id} [get]
func (h *OrganizationHandler) GetOrganization(c *gin.Context) {
	id, ok := parseOrganizationID(c)
	if !ok {
		return
	}

	org, err := h.service.GetByID(id)
	if err != nil {
		h.writeError(c, err, "Failed to get organization")
		return
	}

	c.JSON(http.StatusOK, org)
}

// ListOrganizations handles GET /api/organizations
// @Summary List organizations
// @Description List organizations ordered by name. The total count is returned in X-Total-Count.
// @Tags organizations
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(100)
// @Success 200 {array} service.OrganizationResponse "Successfully retrieved organizations"
// @Failure 403 {object} map[string]interface{} "Authentication credentials were not provided."
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security SessionCookie
// @Router /organizations [get]
func (h *OrganizationHandler) ListOrganizations(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "100"))

	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 1000 {
		pageSize = 100
	}

	list, err := h.service.GetAll(page, pageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get organizations", "details": err.Error()})
		return
	}

	c.Header("X-Total-Count", strconv.FormatInt(list.Total, 10))
	c.JSON(http.StatusOK, list.Organizations)
}

// UpdateOrganization handles PUT /api/organizations/:id
// @Summary Update organization
// @Description Replace an organization's fields
// @Tags organizations
// @Accept json
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Param organization body service.UpdateOrganizationRequest true "Updated organization data"
// @Success 200 {object} service.OrganizationResponse "Successfully updated organization"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 403 {object} map[string]interface{} "Authentication credentials were not provided."
// @Failure 404 {object} map[string]interface{} "Organization not found"
// @Failure 409 {object} map[string]interface{} "Organization already exists"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security SessionCookie
// @Router /organizations/{id} [put]
func (h *OrganizationHandler) UpdateOrganization(c *gin.Context) {
	id, ok := parseOrganizationID(c)
	if !ok {
		return
	}

	var req service.UpdateOrganizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	org, err := h.service.Update(id, &req)
	if err != nil {
		h.writeError(c, err, "Failed to update organization")
		return
	}

	c.JSON(http.StatusOK, org)
}

// PatchOrganization handles PATCH /api/organizations/:id
// @Summary Partially update organization
// @Description Change only the fields present in the body
// @Tags organizations
// @Accept json
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Param organization body service.PatchOrganizationRequest true "Fields to change"
// @Success 200 {object} service.OrganizationResponse "Successfully updated organization"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 403 {object} map[string]interface{} "Authentication credentials were not provided."
// @Failure 404 {object} map[string]interface{} "Organization not found"
// @Failure 409 {object} map[string]interface{} "Organization already exists"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security SessionCookie
// @Router /organizations/{id} [patch]
func (h *OrganizationHandler) PatchOrganization(c *gin.Context) {
	id, ok := parseOrganizationID(c)
	if !ok {
		return
	}

	var req service.PatchOrganizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	org, err := h.service.Patch(id, &req)
	if err != nil {
		h.writeError(c, err, "Failed to update organization")
		return
	}

	c.JSON(http.StatusOK, org)
}

// DeleteOrganization handles DELETE /api/organizations/:id
// @Summary Delete organization
// @Description Delete an organization with its users and todo list entries
// @Tags organizations
// @Param id path string true "Organization ID (UUID)"
// @Success 204 "Successfully deleted organization"
// @Failure 400 {object} map[string]interface{} "Invalid organization ID"
// @Failure 403 {object} map[string]interface{} "Authentication credentials were not provided."
// @Failure 404 {object} map[string]interface{} "Organization not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security SessionCookie
// @Router /organizations/{id} [delete]
func (h *OrganizationHandler) DeleteOrganization(c *gin.Context) {
	id, ok := parseOrganizationID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(id); err != nil {
		h.writeError(c, err, "Failed to delete organization")
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *OrganizationHandler) writeError(c *gin.Context, err error, message string) {
	switch {
	case apperrors.IsValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
	case errors.Is(err, apperrors.ErrOrganizationNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case apperrors.IsAlreadyExists(err):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": message, "details": err.Error()})
	}
}

func parseOrganizationID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid organization ID: invalid UUID format"})
		return uuid.Nil, false
	}
	return id, true
}
