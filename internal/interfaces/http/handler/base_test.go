package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/praveenjayakumarramesh/st-joseph-church/internal/domain/shared"
	"github.com/praveenjayakumarramesh/st-joseph-church/internal/infrastructure/logger"
	"github.com/praveenjayakumarramesh/st-joseph-church/internal/interfaces/http/middleware"
	"github.com/praveenjayakumarramesh/st-joseph-church/tests/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func init() {
	gin.SetMode(gin.TestMode)
	middleware.SetupValidator()
}

func newTestContext(method, path, body string) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	var r *http.Request
	if body == "" {
		r = httptest.NewRequest(method, path, nil)
	} else {
		r = httptest.NewRequest(method, path, strings.NewReader(body))
		r.Header.Set("Content-Type", "application/json")
	}
	c.Request = r
	return c, w
}

func TestBaseHandlerSuccess(t *testing.T) {
	h := NewBaseHandler(false)
	c, w := newTestContext(http.MethodGet, "/", "")

	h.Success(c, gin.H{"ok": true})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, testutil.JSONBody(t, w)["ok"])
}

func TestBaseHandlerCreated(t *testing.T) {
	h := NewBaseHandler(false)
	c, w := newTestContext(http.MethodPost, "/", "")

	h.Created(c, gin.H{"_id": "abc"})

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestBaseHandlerDeleted(t *testing.T) {
	h := NewBaseHandler(false)
	c, w := newTestContext(http.MethodDelete, "/", "")

	h.Deleted(c, "Donation")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, map[string]any{"message": "Donation deleted"}, testutil.JSONBody(t, w))
}

func TestBaseHandlerHandleError(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		expectStatus int
		expectCode   string
		expectMsg    string
	}{
		{
			name:         "invalid parameter",
			err:          shared.NewInvalidParameter("Invalid year parameter", "abcd"),
			expectStatus: http.StatusBadRequest,
			expectCode:   shared.CodeInvalidParameter,
			expectMsg:    "Invalid year parameter",
		},
		{
			name:         "not found",
			err:          shared.NewNotFound("Record not found"),
			expectStatus: http.StatusNotFound,
			expectCode:   shared.CodeNotFound,
			expectMsg:    "Record not found",
		},
		{
			name:         "already exists is a bad request",
			err:          shared.NewAlreadyExists("Designation name already exists"),
			expectStatus: http.StatusBadRequest,
			expectCode:   shared.CodeAlreadyExists,
			expectMsg:    "Designation name already exists",
		},
		{
			name:         "invalid credentials",
			err:          shared.NewDomainError(shared.CodeInvalidCredentials, "Invalid credentials"),
			expectStatus: http.StatusUnauthorized,
			expectCode:   shared.CodeInvalidCredentials,
			expectMsg:    "Invalid credentials",
		},
		{
			name:         "plain error becomes internal",
			err:          errors.New("boom"),
			expectStatus: http.StatusInternalServerError,
			expectCode:   shared.CodeInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewBaseHandler(false)
			c, w := newTestContext(http.MethodGet, "/", "")

			h.HandleError(c, tt.err)

			testutil.AssertError(t, w, tt.expectStatus, tt.expectCode, tt.expectMsg)
			assert.True(t, c.IsAborted())
			assert.Len(t, c.Errors, 1)
		})
	}
}

func TestBaseHandlerHandleError_Received(t *testing.T) {
	h := NewBaseHandler(true)
	c, w := newTestContext(http.MethodGet, "/", "")

	h.HandleError(c, shared.NewInvalidParameter("Year must be between 2000 and 2026", 1999))

	body := testutil.JSONBody(t, w)
	assert.Equal(t, float64(1999), body["received"])
}

func TestBaseHandlerHandleError_ExposesCauseOutsideProduction(t *testing.T) {
	cause := errors.New("connection refused")

	t.Run("development", func(t *testing.T) {
		core, logs := observer.New(zap.ErrorLevel)
		h := NewBaseHandler(false)
		c, w := newTestContext(http.MethodGet, "/api/records", "")
		c.Set(logger.GinLoggerKey, zap.New(core))

		h.HandleError(c, shared.NewStoreFailure("records.list", cause))

		body := testutil.JSONBody(t, w)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, shared.CodeStoreFailure, body["code"])
		assert.Equal(t, "connection refused", body["error"])

		require.Equal(t, 1, logs.Len())
		entry := logs.All()[0]
		assert.Equal(t, "Request failed", entry.Message)
		assert.Equal(t, "records.list", entry.ContextMap()["op"])
	})

	t.Run("production", func(t *testing.T) {
		h := NewBaseHandler(true)
		c, w := newTestContext(http.MethodGet, "/api/records", "")

		h.HandleError(c, shared.NewStoreFailure("records.list", cause))

		body := testutil.JSONBody(t, w)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		_, present := body["error"]
		assert.False(t, present)
	})
}

func TestBaseHandlerHandleError_ClientErrorsAreNotLogged(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	h := NewBaseHandler(false)
	c, _ := newTestContext(http.MethodGet, "/", "")
	c.Set(logger.GinLoggerKey, zap.New(core))

	h.HandleError(c, shared.NewNotFound("Expense not found"))

	assert.Zero(t, logs.Len())
}

func TestBaseHandlerBindJSON(t *testing.T) {
	type payload struct {
		Name string `json:"name" binding:"max=5"`
	}

	t.Run("empty body decodes to zero value", func(t *testing.T) {
		h := NewBaseHandler(false)
		c, w := newTestContext(http.MethodPost, "/", "")
		c.Request.Header.Set("Content-Type", "application/json")

		var req payload
		assert.True(t, h.bindJSON(c, &req))
		assert.Empty(t, req.Name)
		assert.False(t, c.IsAborted())
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("validation failure names the field", func(t *testing.T) {
		h := NewBaseHandler(false)
		c, w := newTestContext(http.MethodPost, "/", `{"name":"too long"}`)

		var req payload
		assert.False(t, h.bindJSON(c, &req))
		testutil.AssertError(t, w, http.StatusBadRequest, shared.CodeInvalidParameter, "name: Must be at most 5 characters")
	})

	t.Run("malformed json", func(t *testing.T) {
		h := NewBaseHandler(false)
		c, w := newTestContext(http.MethodPost, "/", `{"name":`)

		var req payload
		assert.False(t, h.bindJSON(c, &req))
		testutil.AssertError(t, w, http.StatusBadRequest, shared.CodeInvalidParameter, "Invalid request body")
	})
}

func TestFilterParams(t *testing.T) {
	c, _ := newTestContext(http.MethodGet, "/api/records?year=2024&function=Feast&type=offering", "")

	p := filterParams(c)

	assert.Equal(t, "2024", p.Year)
	assert.Equal(t, "Feast", p.Function)
	assert.Equal(t, "offering", p.Type)
}

type stubPinger struct{ err error }

func (p stubPinger) Ping(context.Context) error { return p.err }

func TestHealthHandler(t *testing.T) {
	t.Run("healthy", func(t *testing.T) {
		c, w := newTestContext(http.MethodGet, "/health", "")
		NewHealthHandler(stubPinger{}).Health(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, map[string]any{"status": "healthy", "database": "connected"}, testutil.JSONBody(t, w))
	})

	t.Run("store unreachable", func(t *testing.T) {
		core, logs := observer.New(zap.WarnLevel)
		c, w := newTestContext(http.MethodGet, "/health", "")
		c.Set(logger.GinLoggerKey, zap.New(core))

		NewHealthHandler(stubPinger{err: errors.New("dial tcp: refused")}).Health(c)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Equal(t, map[string]any{"status": "unhealthy", "database": "disconnected"}, testutil.JSONBody(t, w))
		assert.Equal(t, 1, logs.FilterMessage("Health check failed").Len())
	})
}

func TestAuthHandler_LoginBindingNeverEchoesPassword(t *testing.T) {
	h := NewAuthHandler(NewBaseHandler(false), nil)
	c, w := newTestContext(http.MethodPost, "/api/auth/login", `{"username":"admin","password":""}`)

	h.Login(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	body := testutil.JSONBody(t, w)
	assert.Equal(t, shared.CodeInvalidParameter, body["code"])
	assert.Equal(t, map[string]any{"username": "admin"}, body["received"])
}

func TestAuthHandler_RequiresClaims(t *testing.T) {
	h := NewAuthHandler(NewBaseHandler(false), nil)

	c, w := newTestContext(http.MethodPost, "/api/auth/logout", "")
	h.Logout(c)
	testutil.AssertError(t, w, http.StatusUnauthorized, shared.CodeUnauthorized, "Authentication required")

	c, w = newTestContext(http.MethodGet, "/api/auth/me", "")
	h.Me(c)
	testutil.AssertError(t, w, http.StatusUnauthorized, shared.CodeUnauthorized, "Authentication required")
}
