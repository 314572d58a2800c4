package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/toolshed/handyman/internal/handyman/domain"
	"github.com/toolshed/handyman/internal/handyman/service"
	"github.com/toolshed/handyman/pkg/httpx"
	"github.com/toolshed/handyman/pkg/slogx"
)

type errorResponse struct {
	Error string `json:"error"`
}

// decodeJSON parses the request body into dst and reports a client error
// on malformed input.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return false
	}
	return true
}

// writeError maps service and domain errors onto HTTP statuses. Unknown
// errors are logged with detail and reported without any.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	var verr *domain.ValidationError

	switch {
	case errors.As(err, &verr):
		httpx.WriteJSON(w, http.StatusBadRequest, errorResponse{Error: verr.Error()})
	case errors.Is(err, service.ErrNotFound):
		httpx.WriteJSON(w, http.StatusNotFound, errorResponse{Error: "not found"})
	case errors.Is(err, service.ErrUnauthorized):
		httpx.WriteJSON(w, http.StatusUnauthorized, errorResponse{Error: "invalid email or password"})
	case errors.Is(err, service.ErrEmailTaken):
		httpx.WriteJSON(w, http.StatusConflict, errorResponse{Error: "email already registered"})
	default:
		slogx.FromContext(r.Context()).Error("request failed", "err", err)
		httpx.WriteJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}

// writeProjects writes the standard mutation response: the caller's full
// project list.
func writeProjects(w http.ResponseWriter, projects []domain.Project) {
	httpx.WriteJSON(w, http.StatusOK, toProjectListResponse(projects))
}
