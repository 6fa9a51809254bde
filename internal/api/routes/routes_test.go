//go:build integration
// +build integration

package routes

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"todo-list-backend/internal/auth"
	"todo-list-backend/internal/database/models"
	"todo-list-backend/internal/repository"
	"todo-list-backend/internal/service"
	"todo-list-backend/internal/testutils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
)

// RoutesTestSuite drives the fully wired router against Postgres
type RoutesTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	httpSuite     *testutils.HTTPTestSuite
	orgRepo       *repository.OrganizationRepository
}

func (suite *RoutesTestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	router, err := SetupRoutes(suite.baseTestSuite.DB, suite.baseTestSuite.Config)
	suite.Require().NoError(err)
	suite.httpSuite = &testutils.HTTPTestSuite{Router: router}
	suite.orgRepo = repository.NewOrganizationRepository(suite.baseTestSuite.DB)
}

func (suite *RoutesTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

func (suite *RoutesTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

func (suite *RoutesTestSuite) createOrganization(name string) *models.Organization {
	org := &models.Organization{Name: name}
	suite.Require().NoError(suite.orgRepo.Create(org))
	return org
}

func (suite *RoutesTestSuite) register(email, organization, password string) *httptest.ResponseRecorder {
	return suite.httpSuite.MakeRequest(http.MethodPost, "/api/register", map[string]interface{}{
		"email":        email,
		"organization": organization,
		"password":     password,
	})
}

// login returns the session cookie handed out on success
func (suite *RoutesTestSuite) login(email, organization, password string) *http.Cookie {
	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/login", map[string]interface{}{
		"email":        email,
		"organization": organization,
		"password":     password,
	})
	suite.Require().Equal(http.StatusOK, recorder.Code, recorder.Body.String())

	var body auth.LoginResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &body)
	suite.Equal(auth.LoginSuccessMessage, body.Detail)
	suite.NotEmpty(body.Token)

	for _, cookie := range recorder.Result().Cookies() {
		if cookie.Name == suite.baseTestSuite.Config.SessionCookieName {
			suite.True(cookie.HttpOnly)
			return cookie
		}
	}
	suite.FailNow("login did not set the session cookie")
	return nil
}

func (suite *RoutesTestSuite) get(url string, cookie *http.Cookie) *httptest.ResponseRecorder {
	return suite.httpSuite.MakeRequestWithCookies(http.MethodGet, url, nil, []*http.Cookie{cookie})
}

func (suite *RoutesTestSuite) TestRegisterLoginAndTodoLifecycle() {
	suite.createOrganization("Test Company")

	recorder := suite.register("simple@email.com", "Test Company", "foo")
	suite.Require().Equal(http.StatusCreated, recorder.Code, recorder.Body.String())

	var user service.UserResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &user)
	suite.Equal("simple@email.com", user.Email)
	suite.Equal("Test Company", user.Organization)

	cookie := suite.login("simple@email.com", "Test Company", "foo")

	recorder = suite.get("/api/todo_lists", cookie)
	suite.Equal(http.StatusOK, recorder.Code)
	suite.JSONEq("[]", recorder.Body.String())

	recorder = suite.httpSuite.MakeRequestWithCookies(http.MethodPost, "/api/todo_lists", map[string]interface{}{
		"text":        "buy milk",
		"is_finished": false,
	}, []*http.Cookie{cookie})
	suite.Require().Equal(http.StatusCreated, recorder.Code, recorder.Body.String())

	var entry service.ToDoListResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &entry)
	suite.Equal("buy milk", entry.Text)
	suite.Equal("Test Company", entry.Organization)

	recorder = suite.get("/api/logout", cookie)
	suite.Equal(http.StatusOK, recorder.Code)
	suite.JSONEq(`{"detail":"User logged out"}`, recorder.Body.String())

	testutils.AssertForbidden(suite.T(), suite.get("/api/todo_lists", cookie))
}

func (suite *RoutesTestSuite) TestAnonymousRequestsAreForbidden() {
	for _, url := range []string{"/api/", "/api/todo_lists", "/api/organizations", "/api/logout"} {
		recorder := suite.httpSuite.MakeRequest(http.MethodGet, url, nil)
		testutils.AssertForbidden(suite.T(), recorder)
	}

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/todo_lists", map[string]interface{}{"text": "x"})
	testutils.AssertForbidden(suite.T(), recorder)
}

func (suite *RoutesTestSuite) TestTenantIsolation() {
	suite.createOrganization("Test Company")
	suite.createOrganization("Other Company")
	suite.Require().Equal(http.StatusCreated, suite.register("simple@email.com", "Test Company", "foo").Code)
	suite.Require().Equal(http.StatusCreated, suite.register("simple@email.com", "Other Company", "bar").Code)

	mine := suite.login("simple@email.com", "Test Company", "foo")
	theirs := suite.login("simple@email.com", "Other Company", "bar")

	recorder := suite.httpSuite.MakeRequestWithCookies(http.MethodPost, "/api/todo_lists", map[string]interface{}{
		"text":         "secret plan",
		"organization": "Other Company",
	}, []*http.Cookie{mine})
	suite.Require().Equal(http.StatusCreated, recorder.Code)

	var entry service.ToDoListResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &entry)
	suite.Equal("Test Company", entry.Organization)

	recorder = suite.get("/api/todo_lists", theirs)
	suite.Equal(http.StatusOK, recorder.Code)
	suite.JSONEq("[]", recorder.Body.String())

	entryURL := fmt.Sprintf("/api/todo_lists/%s", entry.ID)
	suite.Equal(http.StatusNotFound, suite.get(entryURL, theirs).Code)

	recorder = suite.httpSuite.MakeRequestWithCookies(http.MethodPatch, entryURL, map[string]interface{}{"is_finished": true}, []*http.Cookie{theirs})
	suite.Equal(http.StatusNotFound, recorder.Code)

	recorder = suite.httpSuite.MakeRequestWithCookies(http.MethodDelete, entryURL, nil, []*http.Cookie{theirs})
	suite.Equal(http.StatusNotFound, recorder.Code)

	recorder = suite.get(entryURL, mine)
	suite.Equal(http.StatusOK, recorder.Code)
	testutils.ParseJSONResponse(suite.T(), recorder, &entry)
	suite.False(entry.IsFinished)
}

func (suite *RoutesTestSuite) TestEntryOfAnotherOrganizationIsNotFound() {
	ids := map[string]string{}
	cookies := map[string]*http.Cookie{}
	for _, name := range []string{"A", "B"} {
		suite.createOrganization(name)
		suite.Require().Equal(http.StatusCreated, suite.register("user@"+name+".com", name, "pw").Code)
		cookies[name] = suite.login("user@"+name+".com", name, "pw")

		recorder := suite.httpSuite.MakeRequestWithCookies(http.MethodPost, "/api/todo_lists", map[string]interface{}{"text": "entry of " + name}, []*http.Cookie{cookies[name]})
		suite.Require().Equal(http.StatusCreated, recorder.Code)
		var entry service.ToDoListResponse
		testutils.ParseJSONResponse(suite.T(), recorder, &entry)
		ids[name] = entry.ID.String()
	}

	recorder := suite.get("/api/todo_lists/"+ids["B"], cookies["A"])
	suite.Equal(http.StatusNotFound, recorder.Code)
	suite.NotContains(recorder.Body.String(), "entry of B")

	recorder = suite.httpSuite.MakeRequestWithCookies(http.MethodPut, "/api/todo_lists/"+ids["B"], map[string]interface{}{"text": "taken over"}, []*http.Cookie{cookies["A"]})
	suite.Equal(http.StatusNotFound, recorder.Code)
}

func (suite *RoutesTestSuite) TestLoginRejections() {
	suite.createOrganization("Test Company")
	suite.Require().Equal(http.StatusCreated, suite.register("simple@email.com", "Test Company", "foo").Code)

	cases := []map[string]interface{}{
		{"email": "simple@email.com", "organization": "Test Company", "password": "wrong"},
		{"email": "simple@email.com", "organization": "Unknown", "password": "foo"},
		{"email": "other@email.com", "organization": "Test Company", "password": "foo"},
	}
	for _, body := range cases {
		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/login", body)
		suite.Equal(http.StatusBadRequest, recorder.Code)
		suite.JSONEq(`{"detail":"Invalid login"}`, recorder.Body.String())
	}
}

func (suite *RoutesTestSuite) TestRegisterRejections() {
	suite.createOrganization("Test Company")

	recorder := suite.register("simple@email.com", "Missing", "foo")
	suite.Equal(http.StatusBadRequest, recorder.Code)
	suite.JSONEq(`{"validation_error":"You can not register a user if his organization does not exist"}`, recorder.Body.String())

	suite.Require().Equal(http.StatusCreated, suite.register("simple@email.com", "Test Company", "foo").Code)
	testutils.AssertValidationError(suite.T(), suite.register("simple@email.com", "Test Company", "foo"), "")
}

func (suite *RoutesTestSuite) TestBearerTokenAndOrganizationCRUD() {
	suite.createOrganization("Test Company")
	suite.Require().Equal(http.StatusCreated, suite.register("simple@email.com", "Test Company", "foo").Code)

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/login", map[string]interface{}{
		"email":        "simple@email.com",
		"organization": "Test Company",
		"password":     "foo",
	})
	suite.Require().Equal(http.StatusOK, recorder.Code)
	var login auth.LoginResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &login)
	headers := map[string]string{"Authorization": "Bearer " + login.Token}

	recorder = suite.httpSuite.MakeRequestWithHeaders(http.MethodPost, "/api/organizations", map[string]interface{}{"name": "Acme"}, headers)
	suite.Require().Equal(http.StatusCreated, recorder.Code)
	var org service.OrganizationResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &org)

	recorder = suite.httpSuite.MakeRequestWithHeaders(http.MethodPost, "/api/organizations", map[string]interface{}{"name": "Acme"}, headers)
	suite.Equal(http.StatusConflict, recorder.Code)

	recorder = suite.httpSuite.MakeRequestWithHeaders(http.MethodGet, "/api/organizations", nil, headers)
	suite.Equal(http.StatusOK, recorder.Code)
	suite.Equal("2", recorder.Header().Get("X-Total-Count"))
	var orgs []service.OrganizationResponse
	suite.Require().NoError(json.Unmarshal(recorder.Body.Bytes(), &orgs))
	suite.Equal("Acme", orgs[0].Name)

	recorder = suite.httpSuite.MakeRequestWithHeaders(http.MethodDelete, fmt.Sprintf("/api/organizations/%s", org.ID), nil, headers)
	suite.Equal(http.StatusNoContent, recorder.Code)
}

func (suite *RoutesTestSuite) TestHealthAndMetricsAreOpen() {
	suite.Equal(http.StatusOK, suite.httpSuite.MakeRequest(http.MethodGet, "/health/live", nil).Code)
	suite.Equal(http.StatusOK, suite.httpSuite.MakeRequest(http.MethodGet, "/metrics", nil).Code)
	suite.Equal(http.StatusNotFound, suite.httpSuite.MakeRequest(http.MethodGet, "/nowhere", nil).Code)
}

func TestRoutesTestSuite(t *testing.T) {
	suite.Run(t, new(RoutesTestSuite))
}
