package http

import (
	"net/http"

	"github.com/toolshed/handyman/internal/handyman/service"
	"github.com/toolshed/handyman/pkg/httpx"
)

// AccountHandlers serves registration and sign-in.
type AccountHandlers struct {
	accounts *service.AccountService
}

func NewAccountHandlers(accounts *service.AccountService) *AccountHandlers {
	return &AccountHandlers{accounts: accounts}
}

// CreateAccount handles POST /v1/accounts.
func (h *AccountHandlers) CreateAccount(w http.ResponseWriter, r *http.Request) {
	var req createAccountRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	_, err := h.accounts.CreateAccount(r.Context(), req.FirstName, req.LastName, req.Email, req.Password)
	if err != nil {
		writeError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, map[string]string{"message": "success"})
}

// SignIn handles POST /v1/sessions.
func (h *AccountHandlers) SignIn(w http.ResponseWriter, r *http.Request) {
	var req signInRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	session, err := h.accounts.SignIn(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, sessionResponse{
		Token:    session.Token,
		Email:    session.Email,
		Projects: toProjectListResponse(session.Projects).Projects,
	})
}
