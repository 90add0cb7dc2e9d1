package handler

import (
	"net/http"
	"strconv"

	"medimatch/internal/delivery/dto"
	"medimatch/internal/delivery/http/middleware"
	"medimatch/pkg/response"

	"github.com/gorilla/mux"
)

// currentUser writes a 401 when the request carries no authenticated user.
func currentUser(w http.ResponseWriter, r *http.Request) (*dto.CurrentUser, bool) {
	user, ok := middleware.GetCurrentUserFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Not authenticated")
		return nil, false
	}
	return user, true
}

// pathID parses a positive integer route variable.
func pathID(r *http.Request, name string) (int, bool) {
	id, err := strconv.Atoi(mux.Vars(r)[name])
	if err != nil || id < 1 {
		return 0, false
	}
	return id, true
}
