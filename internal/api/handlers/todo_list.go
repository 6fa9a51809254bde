package handlers

import (
	"errors"
	"net/http"

	"todo-list-backend/internal/auth"
	apperrors "todo-list-backend/internal/errors"
	"todo-list-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ToDoListHandler serves the caller's todo list. Every operation is scoped to
// the organization of the authenticated user.
type ToDoListHandler struct {
	service service.ToDoListServiceInterface
}

// NewToDoListHandler creates a new todo list handler
func NewToDoListHandler(service service.ToDoListServiceInterface) *ToDoListHandler {
	return &ToDoListHandler{service: service}
}

// ListToDoLists handles GET /api/todo_lists
// @Summary List todo list entries
// @Description List the entries of the caller's organization
// @Tags todo_lists
// @Produce json
// @Success 200 {array} service.ToDoListResponse "Successfully retrieved entries"
// @Failure 403 {object} map[string]interface{} "Authentication credentials were not provided."
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security SessionCookie
// @Router /todo_lists [get]
func (h *ToDoListHandler) ListToDoLists(c *gin.Context) {
	orgID, ok := callerOrganization(c)
	if !ok {
		return
	}

	items, err := h.service.List(orgID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get todo lists", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, items)
}

// CreateToDoList handles POST /api/todo_lists
// @Summary Create a todo list entry
// @Description Add an entry to the caller's organization. Any organization in the body is ignored.
// @Tags todo_lists
// @Accept json
// @Produce json
// @Param entry body service.CreateToDoListRequest true "Entry data"
// @Success 201 {object} service.ToDoListResponse "Successfully created entry"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 403 {object} map[string]interface{} "Authentication credentials were not provided."
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security SessionCookie
// @Router /todo_lists [post]
func (h *ToDoListHandler) CreateToDoList(c *gin.Context) {
	orgID, ok := callerOrganization(c)
	if !ok {
		return
	}

	var req service.CreateToDoListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	item, err := h.service.Create(orgID, &req)
	if err != nil {
		writeToDoListError(c, err, "Failed to create todo list")
		return
	}

	c.JSON(http.StatusCreated, item)
}

// GetToDoList handles GET /api/todo_lists/:id
// @Summary Get a todo list entry
// @Tags todo_lists
// @Produce json
// @Param id path string true "Entry ID (UUID)"
// @Success 200 {object} service.ToDoListResponse "Successfully retrieved entry"
// @Failure 400 {object} map[string]interface{} "Invalid entry ID"
// @Failure 403 {object} map[string]interface{} "Authentication credentials were not provided."
// @Failure 404 {object} map[string]interface{} "Entry not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security SessionCookie
// @Router /todo_lists/{id} [get]
func (h *ToDoListHandler) GetToDoList(c *gin.Context) {
	orgID, id, ok := callerEntry(c)
	if !ok {
		return
	}

	item, err := h.service.Get(orgID, id)
	if err != nil {
		writeToDoListError(c, err, "Failed to get todo list")
		return
	}

	c.JSON(http.StatusOK, item)
}

// UpdateToDoList handles PUT /api/todo_lists/:id
// @Summary Update a todo list entry
// @Tags todo_lists
// @Accept json
// @Produce json
// @Param id path string true "Entry ID (UUID)"
// @Param entry body service.UpdateToDoListRequest true "Entry data"
// @Success 200 {object} service.ToDoListResponse "Successfully updated entry"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 403 {object} map[string]interface{} "Authentication credentials were not provided."
// @Failure 404 {object} map[string]interface{} "Entry not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security SessionCookie
// @Router /todo_lists/{id} [put]
func (h *ToDoListHandler) UpdateToDoList(c *gin.Context) {
	orgID, id, ok := callerEntry(c)
	if !ok {
		return
	}

	var req service.UpdateToDoListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	item, err := h.service.Update(orgID, id, &req)
	if err != nil {
		writeToDoListError(c, err, "Failed to update todo list")
		return
	}

	c.JSON(http.StatusOK, item)
}

// PatchToDoList handles PATCH /api/todo_lists/:id
// @Summary Partially update a todo list entry
// @Tags todo_lists
// @Accept json
// @Produce json
// @Param id path string true "Entry ID (UUID)"
// @Param entry body service.PatchToDoListRequest true "Fields to change"
// @Success 200 {object} service.ToDoListResponse "Successfully updated entry"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 403 {object} map[string]interface{} "Authentication credentials were not provided."
// @Failure 404 {object} map[string]interface{} "Entry not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security SessionCookie
// @Router /todo_lists/{id} [patch]
func (h *ToDoListHandler) PatchToDoList(c *gin.Context) {
	orgID, id, ok := callerEntry(c)
	if !ok {
		return
	}

	var req service.PatchToDoListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	item, err := h.service.Patch(orgID, id, &req)
	if err != nil {
		writeToDoListError(c, err, "Failed to update todo list")
		return
	}

	c.JSON(http.StatusOK, item)
}

// DeleteToDoList handles DELETE /api/todo_lists/:id
// @Summary Delete a todo list entry
// @Tags todo_lists
// @Param id path string true "Entry ID (UUID)"
// @Success 204 "Successfully deleted entry"
// @Failure 400 {object} map[string]interface{} "Invalid entry ID"
// @Failure 403 {object} map[string]interface{} "Authentication credentials were not provided."
// @Failure 404 {object} map[string]interface{} "Entry not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security SessionCookie
// @Router /todo_lists/{id} [delete]
func (h *ToDoListHandler) DeleteToDoList(c *gin.Context) {
	orgID, id, ok := callerEntry(c)
	if !ok {
		return
	}

	if err := h.service.Delete(orgID, id); err != nil {
		writeToDoListError(c, err, "Failed to delete todo list")
		return
	}

	c.Status(http.StatusNoContent)
}

func writeToDoListError(c *gin.Context, err error, message string) {
	switch {
	case apperrors.IsValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
	case errors.Is(err, apperrors.ErrToDoListNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": message, "details": err.Error()})
	}
}

// callerOrganization reads the organization set by auth.RequireAuth. Routes
// mounted without the middleware answer 403.
func callerOrganization(c *gin.Context) (uuid.UUID, bool) {
	orgID, ok := auth.GetOrganizationID(c)
	if !ok {
		c.JSON(http.StatusForbidden, gin.H{"detail": auth.NotAuthenticatedMessage})
		return uuid.Nil, false
	}
	return orgID, true
}

func callerEntry(c *gin.Context) (uuid.UUID, uuid.UUID, bool) {
	orgID, ok := callerOrganization(c)
	if !ok {
		return uuid.Nil, uuid.Nil, false
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid todo list ID: invalid UUID format"})
		return uuid.Nil, uuid.Nil, false
	}
	return orgID, id, true
}
