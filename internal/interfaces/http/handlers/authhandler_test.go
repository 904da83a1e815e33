package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fieldops/internal/application/auth/usecases"
	"fieldops/internal/shared/errors"
	"fieldops/internal/shared/utils"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func performLogin(t *testing.T, handler *AuthHandler, body string) *httptest.ResponseRecorder {
	t.Helper()

	engine := gin.New()
	engine.POST("/auth/login", handler.Login)

	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	recorder := httptest.NewRecorder()
	engine.ServeHTTP(recorder, req)
	return recorder
}

func TestAuthHandler_Login(t *testing.T) {
	loginUC := &mockLoginExecutor{
		ExecuteFunc: func(ctx context.Context, cmd usecases.LoginCommand) (*usecases.LoginResult, error) {
			assert.Equal(t, "carla", cmd.Username)
			return &usecases.LoginResult{
				AccessToken: "token-123",
				ExpiresAt:   3600,
				Username:    "carla",
				DisplayName: "carla",
				Role:        "dispatcher",
			}, nil
		},
	}
	handler := NewAuthHandler(loginUC, &mockLogger{})

	recorder := performLogin(t, handler, `{"username":"carla","password":"secret"}`)

	require.Equal(t, http.StatusOK, recorder.Code)

	var resp utils.APIResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
	assert.True(t, resp.Success)

	data := resp.Data.(map[string]interface{})
	assert.Equal(t, "token-123", data["access_token"])
	assert.Equal(t, "dispatcher", data["role"])
}

func TestAuthHandler_LoginInvalidCredentials(t *testing.T) {
	loginUC := &mockLoginExecutor{
		ExecuteFunc: func(ctx context.Context, cmd usecases.LoginCommand) (*usecases.LoginResult, error) {
			return nil, errors.NewInvalidCredentialsError()
		},
	}
	handler := NewAuthHandler(loginUC, &mockLogger{})

	recorder := performLogin(t, handler, `{"username":"carla","password":"wrong"}`)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestAuthHandler_LoginMissingFields(t *testing.T) {
	called := false
	loginUC := &mockLoginExecutor{
		ExecuteFunc: func(ctx context.Context, cmd usecases.LoginCommand) (*usecases.LoginResult, error) {
			called = true
			return nil, nil
		},
	}
	handler := NewAuthHandler(loginUC, &mockLogger{})

	recorder := performLogin(t, handler, `{"username":"carla"}`)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.False(t, called, "binding failure must not reach the use case")
}
