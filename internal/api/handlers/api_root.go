package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// APIRootResponse lists the collections reachable from /api/
type APIRootResponse struct {
	Organizations string `json:"organizations" example:"http://localhost:8000/api/organizations"`
	ToDoLists     string `json:"todo_lists" example:"http://localhost:8000/api/todo_lists"`
}

// APIRoot handles GET /api/
// @Summary API root
// @Description Links to the browsable collections
// @Tags api
// @Produce json
// @Success 200 {object} APIRootResponse
// @Failure 403 {object} map[string]interface{} "Authentication credentials were not provided."
// @Security SessionCookie
// @Router / [get]
func APIRoot(c *gin.Context) {
	scheme := "http"
	if c.Request.TLS != nil || c.GetHeader("X-Forwarded-Proto") == "https" {
		scheme = "https"
	}
	base := scheme + "://" + c.Request.Host + "/api"

	c.JSON(http.StatusOK, APIRootResponse{
		Organizations: base + "/organizations",
		ToDoLists:     base + "/todo_lists",
	})
}
