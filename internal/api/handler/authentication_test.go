package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/inventory-insights-api/internal/domain"
	"github.com/vfg2006/inventory-insights-api/internal/usecases/authenticating"
	"github.com/vfg2006/inventory-insights-api/internal/usecases/authenticating/mocks"
	"github.com/vfg2006/inventory-insights-api/pkg/apiErrors"
	"github.com/vfg2006/inventory-insights-api/pkg/middleware"
	"go.uber.org/mock/gomock"
)

func TestLogin(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setupMocks func(mockAuth *mocks.MockAuthenticator)
		validate   func(t *testing.T, resp *httptest.ResponseRecorder)
	}{
		{
			name: "Returns the token",
			body: `{"email": "marina@example.com", "password": "Sunrise!2024"}`,
			setupMocks: func(mockAuth *mocks.MockAuthenticator) {
				mockAuth.EXPECT().
					LoginUser("marina@example.com", "Sunrise!2024").
					Return("jwt-abc", nil)
			},
			validate: func(t *testing.T, resp *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusOK, resp.Code)
				assert.Equal(t, "application/json", resp.Header().Get("Content-Type"))

				var response map[string]string
				require.NoError(t, json.NewDecoder(resp.Body).Decode(&response))
				assert.Equal(t, "jwt-abc", response["token"])
			},
		},
		{
			name:       "Rejects a malformed body",
			body:       `{not json`,
			setupMocks: func(mockAuth *mocks.MockAuthenticator) {},
			validate: func(t *testing.T, resp *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusBadRequest, resp.Code)

				var apiErr apiErrors.APIError
				require.NoError(t, json.NewDecoder(resp.Body).Decode(&apiErr))
				assert.Equal(t, apiErrors.ErrInvalidRequest, apiErr.Code)
				assert.Equal(t, "Invalid request format", apiErr.Message)
			},
		},
		{
			name: "Invalid credentials",
			body: `{"email": "marina@example.com", "password": "wrong"}`,
			setupMocks: func(mockAuth *mocks.MockAuthenticator) {
				mockAuth.EXPECT().
					LoginUser("marina@example.com", "wrong").
					Return("", authenticating.ErrInvalidCredentials)
			},
			validate: func(t *testing.T, resp *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusUnauthorized, resp.Code)

				var apiErr apiErrors.APIError
				require.NoError(t, json.NewDecoder(resp.Body).Decode(&apiErr))
				assert.Equal(t, apiErrors.ErrInvalidCredentials, apiErr.Code)
				assert.Equal(t, "Invalid credentials", apiErr.Message)
			},
		},
		{
			name: "Disabled user carries the user context",
			body: `{"email": "otavio@example.com", "password": "Sunrise!2024"}`,
			setupMocks: func(mockAuth *mocks.MockAuthenticator) {
				mockAuth.EXPECT().
					LoginUser("otavio@example.com", "Sunrise!2024").
					Return("", authenticating.NewUserAuthError(
						authenticating.ErrUserDisabled,
						apiErrors.ErrUserDisabled,
						"usr-4",
						"waiting for activation",
					))
			},
			validate: func(t *testing.T, resp *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusForbidden, resp.Code)

				var apiErr apiErrors.APIError
				require.NoError(t, json.NewDecoder(resp.Body).Decode(&apiErr))
				assert.Equal(t, apiErrors.ErrUserDisabled, apiErr.Code)
				assert.Equal(t, "user disabled: waiting for activation", apiErr.Message)

				details, ok := apiErr.Details.(map[string]any)
				require.True(t, ok)
				assert.Equal(t, "usr-4", details["user_id"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockAuth := mocks.NewMockAuthenticator(ctrl)
			tt.setupMocks(mockAuth)

			req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(tt.body))
			resp := httptest.NewRecorder()

			Login(mockAuth).ServeHTTP(resp, req)

			tt.validate(t, resp)
		})
	}
}

func TestGetMe(t *testing.T) {
	tests := []struct {
		name       string
		claims     *domain.Claims
		setupMocks func(mockAuth *mocks.MockAuthenticator)
		validate   func(t *testing.T, resp *httptest.ResponseRecorder)
	}{
		{
			name:   "Returns the logged-in profile",
			claims: &domain.Claims{UserID: "usr-1"},
			setupMocks: func(mockAuth *mocks.MockAuthenticator) {
				mockAuth.EXPECT().
					GetUserProfile("usr-1").
					Return(&domain.User{ID: "usr-1", Name: "Marina Duarte", Active: true, RoleID: domain.RoleAdmin}, nil)
			},
			validate: func(t *testing.T, resp *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusOK, resp.Code)

				var user domain.User
				require.NoError(t, json.NewDecoder(resp.Body).Decode(&user))
				assert.Equal(t, "usr-1", user.ID)
				assert.Equal(t, "Marina Duarte", user.Name)
			},
		},
		{
			name:       "Missing claims returns 401",
			claims:     nil,
			setupMocks: func(mockAuth *mocks.MockAuthenticator) {},
			validate: func(t *testing.T, resp *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusUnauthorized, resp.Code)

				var apiErr apiErrors.APIError
				require.NoError(t, json.NewDecoder(resp.Body).Decode(&apiErr))
				assert.Equal(t, apiErrors.ErrInvalidToken, apiErr.Code)
				assert.Equal(t, "User not authenticated", apiErr.Message)
			},
		},
		{
			name:   "Profile no longer exists",
			claims: &domain.Claims{UserID: "usr-404"},
			setupMocks: func(mockAuth *mocks.MockAuthenticator) {
				mockAuth.EXPECT().
					GetUserProfile("usr-404").
					Return(nil, nil)
			},
			validate: func(t *testing.T, resp *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusNotFound, resp.Code)

				var apiErr apiErrors.APIError
				require.NoError(t, json.NewDecoder(resp.Body).Decode(&apiErr))
				assert.Equal(t, apiErrors.ErrUserNotFound, apiErr.Code)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockAuth := mocks.NewMockAuthenticator(ctrl)
			tt.setupMocks(mockAuth)

			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.claims != nil {
				req = req.WithContext(context.WithValue(req.Context(), middleware.ContextKeyUser, tt.claims))
			}
			resp := httptest.NewRecorder()

			GetMe(mockAuth).ServeHTTP(resp, req)

			tt.validate(t, resp)
		})
	}
}
