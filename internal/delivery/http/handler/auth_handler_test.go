package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"medimatch/config"
	"medimatch/internal/delivery/dto"
	"medimatch/internal/delivery/http/middleware"
	"medimatch/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestAuthHandler() (*AuthHandler, *mockAuthUsecase) {
	authUsecase := new(mockAuthUsecase)
	return NewAuthHandler(authUsecase, config.SessionConfig{TTL: time.Hour, CookieSecure: true}, "http://localhost:3000/"), authUsecase
}

func TestAuthHandler_GoogleLogin(t *testing.T) {
	h, authUsecase := newTestAuthHandler()
	authUsecase.On("BeginGoogleLogin", mock.Anything).Return("https://accounts.google.com/o/oauth2/auth?state=abc", nil)

	rec := httptest.NewRecorder()
	h.GoogleLogin(rec, newRequest(t, http.MethodGet, "/api/v1/auth/google/login", nil))

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "https://accounts.google.com/o/oauth2/auth?state=abc", rec.Header().Get("Location"))
}

func TestAuthHandler_GoogleCallback_SetsSessionCookie(t *testing.T) {
	tests := []struct {
		name     string
		result   *dto.LoginResult
		location string
	}{
		{"first login", &dto.LoginResult{SessionID: "sid", IsNewUser: true, Role: "U"}, "http://localhost:3000/onboarding"},
		{"doctor", &dto.LoginResult{SessionID: "sid", Role: "D"}, "http://localhost:3000/doctor-dashboard"},
		{"patient", &dto.LoginResult{SessionID: "sid", Role: "U"}, "http://localhost:3000/dashboard"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, authUsecase := newTestAuthHandler()
			tt.result.ExpiresAt = time.Now().Add(time.Hour)
			authUsecase.On("CompleteGoogleLogin", mock.Anything, "code-1", "state-1").Return(tt.result, nil)

			rec := httptest.NewRecorder()
			h.GoogleCallback(rec, newRequest(t, http.MethodGet, "/api/v1/auth/google/callback?code=code-1&state=state-1", nil))

			assert.Equal(t, http.StatusFound, rec.Code)
			assert.Equal(t, tt.location, rec.Header().Get("Location"))

			cookies := rec.Result().Cookies()
			require.Len(t, cookies, 1)
			assert.Equal(t, middleware.SessionCookieName, cookies[0].Name)
			assert.Equal(t, "sid", cookies[0].Value)
			assert.True(t, cookies[0].HttpOnly)
			assert.True(t, cookies[0].Secure)
			assert.Equal(t, http.SameSiteLaxMode, cookies[0].SameSite)
			assert.Equal(t, "/", cookies[0].Path)
		})
	}
}

func TestAuthHandler_GoogleCallback_Failures(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		err        error
		wantStatus int
	}{
		{"missing code", "/cb?state=s", nil, http.StatusBadRequest},
		{"missing state", "/cb?code=c", nil, http.StatusBadRequest},
		{"bad state", "/cb?code=c&state=s", usecase.ErrInvalidState, http.StatusBadRequest},
		{"google rejected", "/cb?code=c&state=s", usecase.ErrIdentityRejected, http.StatusUnauthorized},
		{"store failure", "/cb?code=c&state=s", errors.New("db down"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, authUsecase := newTestAuthHandler()
			authUsecase.On("CompleteGoogleLogin", mock.Anything, mock.Anything, mock.Anything).Return(nil, tt.err)

			rec := httptest.NewRecorder()
			h.GoogleCallback(rec, newRequest(t, http.MethodGet, tt.target, nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Empty(t, rec.Result().Cookies())
		})
	}
}

func TestAuthHandler_GoogleCallback_ConsentDenied(t *testing.T) {
	h, authUsecase := newTestAuthHandler()

	rec := httptest.NewRecorder()
	h.GoogleCallback(rec, newRequest(t, http.MethodGet, "/cb?error=access_denied&state=s", nil))

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "http://localhost:3000/login?error=access_denied", rec.Header().Get("Location"))
	authUsecase.AssertNotCalled(t, "CompleteGoogleLogin", mock.Anything, mock.Anything, mock.Anything)
}

func TestAuthHandler_Logout(t *testing.T) {
	h, authUsecase := newTestAuthHandler()
	authUsecase.On("Logout", mock.Anything, 5, "session-token").Return(nil)

	rec := httptest.NewRecorder()
	h.Logout(rec, asUser(newRequest(t, http.MethodPost, "/api/v1/auth/logout", nil), patientUser))

	assert.Equal(t, http.StatusOK, rec.Code)
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, middleware.SessionCookieName, cookies[0].Name)
	assert.Empty(t, cookies[0].Value)
	assert.Equal(t, -1, cookies[0].MaxAge)
	authUsecase.AssertExpectations(t)
}

func TestAuthHandler_GetCurrentUser(t *testing.T) {
	h, _ := newTestAuthHandler()

	rec := httptest.NewRecorder()
	h.GetCurrentUser(rec, asUser(newRequest(t, http.MethodGet, "/api/v1/auth/me", nil), doctorUser))

	assert.Equal(t, http.StatusOK, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.True(t, env.Success)
	assert.JSONEq(t, `{"id":2,"name":"Asha","email":"asha@example.com","role":"D"}`, string(env.Data))
}

func TestAuthHandler_GetCurrentUser_Anonymous(t *testing.T) {
	h, _ := newTestAuthHandler()

	rec := httptest.NewRecorder()
	h.GetCurrentUser(rec, newRequest(t, http.MethodGet, "/api/v1/auth/me", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthHandler_GetActivity_ClampsLimit(t *testing.T) {
	for target, limit := range map[string]int{
		"/api/v1/auth/me/activity":           20,
		"/api/v1/auth/me/activity?limit=5":   5,
		"/api/v1/auth/me/activity?limit=500": 20,
		"/api/v1/auth/me/activity?limit=x":   20,
	} {
		h, authUsecase := newTestAuthHandler()
		authUsecase.On("GetActivity", mock.Anything, 5, limit).Return(&dto.ActivityListResponse{Activities: []dto.ActivityResponse{}}, nil)

		rec := httptest.NewRecorder()
		h.GetActivity(rec, asUser(newRequest(t, http.MethodGet, target, nil), patientUser))

		assert.Equal(t, http.StatusOK, rec.Code, target)
		authUsecase.AssertExpectations(t)
	}
}
