package handler

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"medimatch/config"
	"medimatch/internal/delivery/dto"
	"medimatch/internal/delivery/http/middleware"
	"medimatch/internal/domain/entity"
	"medimatch/internal/usecase"
	"medimatch/pkg/response"
)

type AuthHandler struct {
	authUsecase usecase.AuthUsecase
	session     config.SessionConfig
	frontendURL string
}

func NewAuthHandler(authUsecase usecase.AuthUsecase, session config.SessionConfig, frontendURL string) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
		session:     session,
		frontendURL: strings.TrimRight(frontendURL, "/"),
	}
}

// GoogleLogin redirects to the Google consent page
// @Summary Start Google login
// @Tags Auth
// @Success 302
// @Router /auth/google/login [get]
func (h *AuthHandler) GoogleLogin(w http.ResponseWriter, r *http.Request) {
	url, err := h.authUsecase.BeginGoogleLogin(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to start login")
		return
	}

	http.Redirect(w, r, url, http.StatusFound)
}

// GoogleCallback completes the login, sets the session cookie and redirects to the frontend
// @Summary Google OAuth callback
// @Tags Auth
// @Param code query string true "Authorization code"
// @Param state query string true "Signed state"
// @Success 302
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /auth/google/callback [get]
func (h *AuthHandler) GoogleCallback(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	if query.Get("error") != "" {
		http.Redirect(w, r, h.frontendURL+"/login?error=access_denied", http.StatusFound)
		return
	}

	code, state := query.Get("code"), query.Get("state")
	if code == "" || state == "" {
		response.BadRequest(w, "Missing code or state")
		return
	}

	result, err := h.authUsecase.CompleteGoogleLogin(r.Context(), code, state)
	if err != nil {
		switch err {
		case usecase.ErrInvalidState:
			response.BadRequest(w, "Invalid or expired login state")
		case usecase.ErrIdentityRejected:
			response.Unauthorized(w, "Google login could not be verified")
		default:
			response.InternalServerError(w, "Failed to complete login")
		}
		return
	}

	http.SetCookie(w, h.sessionCookie(result.SessionID, result.ExpiresAt))
	http.Redirect(w, r, h.frontendURL+landingPath(result), http.StatusFound)
}

// Logout handles user logout
// @Summary Logout user
// @Tags Auth
// @Produce json
// @Success 200 {object} response.Response
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}
	sessionID, _ := middleware.GetSessionIDFromContext(r.Context())

	if err := h.authUsecase.Logout(r.Context(), user.ID, sessionID); err != nil {
		response.InternalServerError(w, "Failed to logout")
		return
	}

	cookie := h.sessionCookie("", time.Unix(0, 0))
	cookie.MaxAge = -1
	http.SetCookie(w, cookie)

	response.Success(w, http.StatusOK, "Logout successful", nil)
}

// GetCurrentUser handles getting current user info
// @Summary Get current user
// @Tags Auth
// @Produce json
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /auth/me [get]
func (h *AuthHandler) GetCurrentUser(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	response.Success(w, http.StatusOK, "User retrieved successfully", user)
}

func (h *AuthHandler) GetActivity(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	if limit < 1 || limit > 100 {
		limit = 20
	}

	activity, err := h.authUsecase.GetActivity(r.Context(), user.ID, limit)
	if err != nil {
		response.InternalServerError(w, "Failed to get activity")
		return
	}

	response.Success(w, http.StatusOK, "Activity retrieved successfully", activity)
}

func (h *AuthHandler) sessionCookie(value string, expires time.Time) *http.Cookie {
	return &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    value,
		Path:     "/",
		Expires:  expires,
		HttpOnly: true,
		Secure:   h.session.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	}
}

func landingPath(result *dto.LoginResult) string {
	switch {
	case result.IsNewUser:
		return "/onboarding"
	case entity.Role(result.Role) == entity.RoleDoctor:
		return "/doctor-dashboard"
	default:
		return "/dashboard"
	}
}
