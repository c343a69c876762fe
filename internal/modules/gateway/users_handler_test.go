package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"bookstore/internal/clients"
	"bookstore/internal/domain"
)

type mockAuthClient struct {
	mock.Mock
}

func (m *mockAuthClient) Signup(ctx context.Context, req clients.SignupRequest) (*clients.TokenPair, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*clients.TokenPair), args.Error(1)
}

func (m *mockAuthClient) Login(ctx context.Context, req clients.LoginRequest) (*clients.TokenPair, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*clients.TokenPair), args.Error(1)
}

func (m *mockAuthClient) Logout(ctx context.Context, refreshToken string) (*clients.MessageResponse, error) {
	args := m.Called(ctx, refreshToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*clients.MessageResponse), args.Error(1)
}

func (m *mockAuthClient) Refresh(ctx context.Context, refreshToken string) (*clients.AccessTokenResponse, error) {
	args := m.Called(ctx, refreshToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*clients.AccessTokenResponse), args.Error(1)
}

func (m *mockAuthClient) ListUsers(ctx context.Context, bearer string) ([]domain.User, error) {
	args := m.Called(ctx, bearer)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func setupUserRouter(auth *mockAuthClient) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := NewUserHandler(auth, CookieConfig{
		Secure:     false,
		AccessTTL:  15 * time.Minute,
		RefreshTTL: 168 * time.Hour,
	})
	router := gin.New()
	handler.RegisterPublicRoutes(router.Group("/"))
	return router
}

func postUserJSON(t *testing.T, router *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func cookieByName(cookies []*http.Cookie, name string) *http.Cookie {
	for _, c := range cookies {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func TestUserHandler_SignupUser_ForcesUserRole(t *testing.T) {
	auth := new(mockAuthClient)
	auth.On("Signup", mock.Anything, mock.MatchedBy(func(req clients.SignupRequest) bool {
		return req.Role == "user"
	})).Return(&clients.TokenPair{AccessToken: "a", RefreshToken: "r"}, nil)

	router := setupUserRouter(auth)

	// The client claims admin; the endpoint overrides it.
	w := postUserJSON(t, router, "/user/signup", map[string]string{
		"name": "bob", "email": "bob@example.com", "password": "secret123", "role": "admin",
	})

	require.Equal(t, http.StatusOK, w.Code)
	auth.AssertExpectations(t)
}

func TestUserHandler_SignupAdmin_ForcesAdminRole(t *testing.T) {
	auth := new(mockAuthClient)
	auth.On("Signup", mock.Anything, mock.MatchedBy(func(req clients.SignupRequest) bool {
		return req.Role == "admin"
	})).Return(&clients.TokenPair{AccessToken: "a", RefreshToken: "r"}, nil)

	router := setupUserRouter(auth)

	w := postUserJSON(t, router, "/admin/signup", map[string]string{
		"name": "root", "email": "root@example.com", "password": "secret123", "role": "user",
	})

	require.Equal(t, http.StatusOK, w.Code)
	auth.AssertExpectations(t)
}

func TestUserHandler_Login_SetsTokenCookies(t *testing.T) {
	auth := new(mockAuthClient)
	auth.On("Login", mock.Anything, mock.Anything).
		Return(&clients.TokenPair{AccessToken: "access-jwt", RefreshToken: "refresh-jwt"}, nil)

	router := setupUserRouter(auth)

	w := postUserJSON(t, router, "/login", map[string]string{"name": "bob", "password": "secret123"})
	require.Equal(t, http.StatusOK, w.Code)

	cookies := w.Result().Cookies()
	access := cookieByName(cookies, "accessToken")
	refresh := cookieByName(cookies, "refreshToken")

	require.NotNil(t, access)
	require.NotNil(t, refresh)
	assert.Equal(t, "access-jwt", access.Value)
	assert.Equal(t, "refresh-jwt", refresh.Value)
	assert.True(t, access.HttpOnly)
	assert.True(t, refresh.HttpOnly)
	assert.Equal(t, http.SameSiteStrictMode, access.SameSite)
	assert.Equal(t, int((15 * time.Minute).Seconds()), access.MaxAge)
	assert.Equal(t, int((168 * time.Hour).Seconds()), refresh.MaxAge)
}

func TestUserHandler_Login_EmptyPairRejected(t *testing.T) {
	auth := new(mockAuthClient)
	auth.On("Login", mock.Anything, mock.Anything).Return(&clients.TokenPair{}, nil)

	router := setupUserRouter(auth)

	w := postUserJSON(t, router, "/login", map[string]string{"name": "bob", "password": "secret123"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "cannot be empty")
}

func TestUserHandler_Login_DownstreamStatusBecomes401(t *testing.T) {
	auth := new(mockAuthClient)
	auth.On("Login", mock.Anything, mock.Anything).
		Return(nil, &clients.Error{Kind: clients.KindStatus, Service: "auth-service", StatusCode: 401, Message: "Invalid password"})

	router := setupUserRouter(auth)

	w := postUserJSON(t, router, "/login", map[string]string{"name": "bob", "password": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid password")
}

func TestUserHandler_Login_NoResponseBecomes504(t *testing.T) {
	auth := new(mockAuthClient)
	auth.On("Login", mock.Anything, mock.Anything).
		Return(nil, &clients.Error{Kind: clients.KindNoResponse, Service: "auth-service", Message: "connection refused"})

	router := setupUserRouter(auth)

	w := postUserJSON(t, router, "/login", map[string]string{"name": "bob", "password": "secret123"})
	assert.Equal(t, http.StatusGatewayTimeout, w.Code)
	assert.Contains(t, w.Body.String(), "No response from the auth server")
}

func TestUserHandler_Logout_ClearsCookies(t *testing.T) {
	auth := new(mockAuthClient)
	auth.On("Logout", mock.Anything, "refresh-jwt").
		Return(&clients.MessageResponse{Message: "Logout successful"}, nil)

	router := setupUserRouter(auth)

	w := postUserJSON(t, router, "/logout", map[string]string{"refreshToken": "refresh-jwt"})
	require.Equal(t, http.StatusOK, w.Code)

	cookies := w.Result().Cookies()
	access := cookieByName(cookies, "accessToken")
	require.NotNil(t, access)
	assert.Empty(t, access.Value)
	assert.Less(t, access.MaxAge, 0)
}

func TestUserHandler_Refresh_SetsOnlyAccessCookie(t *testing.T) {
	auth := new(mockAuthClient)
	auth.On("Refresh", mock.Anything, "refresh-jwt").
		Return(&clients.AccessTokenResponse{AccessToken: "new-access"}, nil)

	router := setupUserRouter(auth)

	w := postUserJSON(t, router, "/refresh-token", map[string]string{"refreshToken": "refresh-jwt"})
	require.Equal(t, http.StatusOK, w.Code)

	cookies := w.Result().Cookies()
	access := cookieByName(cookies, "accessToken")
	require.NotNil(t, access)
	assert.Equal(t, "new-access", access.Value)
	assert.Nil(t, cookieByName(cookies, "refreshToken"))
}
