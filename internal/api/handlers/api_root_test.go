package handlers

import (
	"net/http"
	"testing"

	"todo-list-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
)

func TestAPIRoot(t *testing.T) {
	httpSuite := testutils.SetupHTTPTest()
	httpSuite.Router.GET("/api/", APIRoot)

	recorder := httpSuite.MakeRequest(http.MethodGet, "/api/", nil)

	var response APIRootResponse
	testutils.AssertJSONResponse(t, recorder, http.StatusOK, &response)
	assert.Equal(t, "http://example.com/api/organizations", response.Organizations)
	assert.Equal(t, "http://example.com/api/todo_lists", response.ToDoLists)
}

func TestAPIRootForwardedProto(t *testing.T) {
	httpSuite := testutils.SetupHTTPTest()
	httpSuite.Router.GET("/api/", APIRoot)

	recorder := httpSuite.MakeRequestWithHeaders(http.MethodGet, "/api/", nil, map[string]string{"X-Forwarded-Proto": "https"})

	var response APIRootResponse
	testutils.AssertJSONResponse(t, recorder, http.StatusOK, &response)
	assert.Equal(t, "https://example.com/api/todo_lists", response.ToDoLists)
}
