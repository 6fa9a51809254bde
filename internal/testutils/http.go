package testutils

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// HTTPTestSuite contains common utilities for HTTP testing
type HTTPTestSuite struct {
	Router *gin.Engine
}

// SetupHTTPTest initializes Gin for testing
func SetupHTTPTest() *HTTPTestSuite {
	gin.SetMode(gin.TestMode)
	return &HTTPTestSuite{Router: gin.New()}
}

func newRequest(method, url string, body interface{}) *http.Request {
	var reqBody io.Reader
	if body != nil {
		jsonBytes, _ := json.Marshal(body)
		reqBody = bytes.NewBuffer(jsonBytes)
	}

	req := httptest.NewRequest(method, url, reqBody)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req
}

func (suite *HTTPTestSuite) serve(req *http.Request) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	suite.Router.ServeHTTP(recorder, req)
	return recorder
}

// MakeRequest creates and executes an HTTP request for testing
func (suite *HTTPTestSuite) MakeRequest(method, url string, body interface{}) *httptest.ResponseRecorder {
	return suite.serve(newRequest(method, url, body))
}

// MakeRequestWithHeaders creates and executes an HTTP request with custom headers
func (suite *HTTPTestSuite) MakeRequestWithHeaders(method, url string, body interface{}, headers map[string]string) *httptest.ResponseRecorder {
	req := newRequest(method, url, body)
	for key, value := range headers {
		req.Header.Set(key, value)
	}
	return suite.serve(req)
}

// MakeRequestWithCookies creates and executes an HTTP request carrying cookies,
// typically the ones a previous response set.
func (suite *HTTPTestSuite) MakeRequestWithCookies(method, url string, body interface{}, cookies []*http.Cookie) *httptest.ResponseRecorder {
	req := newRequest(method, url, body)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	return suite.serve(req)
}

// AssertJSONResponse asserts the response status and unmarshals JSON response
func AssertJSONResponse(t *testing.T, recorder *httptest.ResponseRecorder, expectedStatus int, target interface{}) {
	assert.Equal(t, expectedStatus, recorder.Code)
	assert.Equal(t, "application/json; charset=utf-8", recorder.Header().Get("Content-Type"))

	if target != nil {
		err := json.Unmarshal(recorder.Body.Bytes(), target)
		require.NoError(t, err)
	}
}

// AssertErrorResponse asserts an error response whose "error" field contains expectedMessage
func AssertErrorResponse(t *testing.T, recorder *httptest.ResponseRecorder, expectedStatus int, expectedMessage string) {
	assertField(t, recorder, expectedStatus, "error", expectedMessage)
}

// AssertValidationError asserts a 400 response carrying validation_error
func AssertValidationError(t *testing.T, recorder *httptest.ResponseRecorder, expectedMessage string) {
	assertField(t, recorder, http.StatusBadRequest, "validation_error", expectedMessage)
}

// AssertForbidden asserts the response the session gate gives anonymous callers
func AssertForbidden(t *testing.T, recorder *httptest.ResponseRecorder) {
	assertField(t, recorder, http.StatusForbidden, "detail", "Authentication credentials were not provided.")
}

func assertField(t *testing.T, recorder *httptest.ResponseRecorder, expectedStatus int, field, expectedMessage string) {
	assert.Equal(t, expectedStatus, recorder.Code)

	var body map[string]interface{}
	err := json.Unmarshal(recorder.Body.Bytes(), &body)
	require.NoError(t, err)

	if expectedMessage != "" {
		assert.Contains(t, body[field], expectedMessage)
	}
}

// ParseJSONResponse parses JSON response into target struct
func ParseJSONResponse(t *testing.T, recorder *httptest.ResponseRecorder, target interface{}) {
	err := json.Unmarshal(recorder.Body.Bytes(), target)
	require.NoError(t, err)
}
