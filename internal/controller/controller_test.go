package controller_test

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"blogmosaic/internal/controller"
	"blogmosaic/internal/dto"
	"blogmosaic/internal/gateway"
	"blogmosaic/internal/model"
	"blogmosaic/internal/pkg/serverutils"
	"blogmosaic/internal/service"
	svcmocks "blogmosaic/internal/service/mocks"
	"blogmosaic/internal/session"
)

func newTestApp(entry *session.Entry, register func(api fiber.Router)) *fiber.App {
	app := fiber.New()
	app.Use(serverutils.ErrorHandlerMiddleware())
	if entry != nil {
		app.Use(func(c *fiber.Ctx) error {
			c.Locals(serverutils.SessionLocalKey, entry)
			return c.Next()
		})
	}
	api := app.Group("/api")
	register(api)
	return app
}

func decodeBody(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &body))
	return body
}

func jsonRequest(method, target, payload string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func authedEntry() *session.Entry {
	return session.NewEntry(&model.UserRecord{ID: "user-1", Name: "Alice", Email: "a@example.com"}, "remote-token")
}

func TestLoginSetsSessionCookie(t *testing.T) {
	authSvc := new(svcmocks.MockAuthService)
	res := dto.NewSessionResponse(model.NewAuthenticatedSession(&model.UserRecord{ID: "user-1", Name: "Alice"}))
	authSvc.On("Login", mock.Anything, mock.Anything).Return(&res, "signed-token", nil)

	app := newTestApp(nil, func(api fiber.Router) {
		controller.NewAuthController(authSvc, "bm_session", time.Hour).RegisterRoutes(api)
	})

	resp, err := app.Test(jsonRequest("POST", "/api/auth/login", `{"email":"a@example.com","password":"secret123"}`))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var cookie string
	for _, c := range resp.Cookies() {
		if c.Name == "bm_session" {
			cookie = c.Value
		}
	}
	assert.Equal(t, "signed-token", cookie)

	body := decodeBody(t, resp)
	assert.Equal(t, true, body["success"])
}

func TestLoginRemoteFailureIsUnauthorized(t *testing.T) {
	authSvc := new(svcmocks.MockAuthService)
	authSvc.On("Login", mock.Anything, mock.Anything).
		Return(nil, "", &gateway.RemoteError{Op: "login", Message: "invalid credentials"})

	app := newTestApp(nil, func(api fiber.Router) {
		controller.NewAuthController(authSvc, "bm_session", time.Hour).RegisterRoutes(api)
	})

	resp, err := app.Test(jsonRequest("POST", "/api/auth/login", `{"email":"a@example.com","password":"wrongpass"}`))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "invalid credentials", body["message"])
}

func TestSignupValidatesInput(t *testing.T) {
	authSvc := new(svcmocks.MockAuthService)

	app := newTestApp(nil, func(api fiber.Router) {
		controller.NewAuthController(authSvc, "bm_session", time.Hour).RegisterRoutes(api)
	})

	resp, err := app.Test(jsonRequest("POST", "/api/auth/signup", `{"name":"A","email":"bad","password":"short"}`))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	authSvc.AssertNotCalled(t, "Signup", mock.Anything, mock.Anything)
}

func TestMeAlwaysAnswers(t *testing.T) {
	authSvc := new(svcmocks.MockAuthService)
	authSvc.On("Current", mock.Anything, mock.Anything).
		Return(dto.NewSessionResponse(model.NewUnauthenticatedSession()))

	app := newTestApp(nil, func(api fiber.Router) {
		controller.NewAuthController(authSvc, "bm_session", time.Hour).RegisterRoutes(api)
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/api/auth/me", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, "unauthenticated", data["status"])
	assert.Nil(t, data["user"])
}

func TestHomePageReady(t *testing.T) {
	postSvc := new(svcmocks.MockPostService)
	postSvc.On("ListHome", mock.Anything).Return([]dto.PostCard{{ID: "a", Title: "First"}}, nil)

	app := newTestApp(nil, func(api fiber.Router) {
		controller.NewPageController(postSvc).RegisterRoutes(api)
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/api/pages/home", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	page := body["data"].(map[string]interface{})
	assert.Equal(t, "ready", page["state"])
	assert.Len(t, page["data"], 1)
}

func TestHomePageEmptyIsNotError(t *testing.T) {
	postSvc := new(svcmocks.MockPostService)
	postSvc.On("ListHome", mock.Anything).Return([]dto.PostCard{}, nil)

	app := newTestApp(nil, func(api fiber.Router) {
		controller.NewPageController(postSvc).RegisterRoutes(api)
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/api/pages/home", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	page := body["data"].(map[string]interface{})
	assert.Equal(t, "empty", page["state"])
}

func TestHomePageErrorOffersRetry(t *testing.T) {
	postSvc := new(svcmocks.MockPostService)
	postSvc.On("ListHome", mock.Anything).Return(nil, errors.New("remote down"))

	app := newTestApp(nil, func(api fiber.Router) {
		controller.NewPageController(postSvc).RegisterRoutes(api)
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/api/pages/home", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	page := body["data"].(map[string]interface{})
	assert.Equal(t, "error", page["state"])
	assert.Equal(t, true, page["retry"])
}

func TestMyPostsRequiresAuth(t *testing.T) {
	postSvc := new(svcmocks.MockPostService)

	app := newTestApp(nil, func(api fiber.Router) {
		controller.NewPageController(postSvc).RegisterRoutes(api)
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/api/pages/my-posts", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	postSvc.AssertNotCalled(t, "ListMine", mock.Anything, mock.Anything)
}

func TestMyPostsWithSession(t *testing.T) {
	postSvc := new(svcmocks.MockPostService)
	postSvc.On("ListMine", mock.Anything, mock.MatchedBy(func(u *model.UserRecord) bool {
		return u != nil && u.ID == "user-1"
	})).Return([]dto.PostCard{{ID: "a"}}, nil)

	app := newTestApp(authedEntry(), func(api fiber.Router) {
		controller.NewPageController(postSvc).RegisterRoutes(api)
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/api/pages/my-posts", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestPostDetailMissingIs404(t *testing.T) {
	postSvc := new(svcmocks.MockPostService)
	postSvc.On("GetBySlug", mock.Anything, "gone", mock.Anything).Return(nil, nil)

	app := newTestApp(nil, func(api fiber.Router) {
		controller.NewPageController(postSvc).RegisterRoutes(api)
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/api/pages/posts/gone", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	body := decodeBody(t, resp)
	page := body["data"].(map[string]interface{})
	assert.Equal(t, "empty", page["state"])
}

func TestCreatePostRequiresAuth(t *testing.T) {
	postSvc := new(svcmocks.MockPostService)

	app := newTestApp(nil, func(api fiber.Router) {
		controller.NewPostController(postSvc).RegisterRoutes(api)
	})

	resp, err := app.Test(jsonRequest("POST", "/api/posts", `{"title":"T","content":"c"}`))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestCreatePost(t *testing.T) {
	postSvc := new(svcmocks.MockPostService)
	postSvc.On("Create", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(&dto.MutatePostResponse{ID: "hello-world", Slug: "hello-world"}, nil)

	app := newTestApp(authedEntry(), func(api fiber.Router) {
		controller.NewPostController(postSvc).RegisterRoutes(api)
	})

	resp, err := app.Test(jsonRequest("POST", "/api/posts", `{"title":"Hello, World!","content":"body"}`))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	body := decodeBody(t, resp)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, "hello-world", data["slug"])
}

func TestDeleteForeignPostIsForbidden(t *testing.T) {
	postSvc := new(svcmocks.MockPostService)
	postSvc.On("Delete", mock.Anything, mock.Anything, "not-mine").
		Return(service.ErrNotPostOwner)

	app := newTestApp(authedEntry(), func(api fiber.Router) {
		controller.NewPostController(postSvc).RegisterRoutes(api)
	})

	resp, err := app.Test(httptest.NewRequest("DELETE", "/api/posts/not-mine", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}
