package http

import (
	"encoding/json"
	"net/http"

	"github.com/toolshed/handyman/internal/handyman/store"
	"github.com/toolshed/handyman/pkg/httpx"
	"github.com/toolshed/handyman/pkg/jwtx"
)

// MetaHandlers serves the unauthenticated operational endpoints: health
// probes and the public key set.
type MetaHandlers struct {
	store store.Store
	jwks  jwtx.JWKS
}

func NewMetaHandlers(st store.Store, jwks jwtx.JWKS) *MetaHandlers {
	return &MetaHandlers{store: st, jwks: jwks}
}

// Livez handles GET /livez. It answers as long as the process is up.
func (h *MetaHandlers) Livez(w http.ResponseWriter, r *http.Request) {
	httpx.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Readyz handles GET /readyz. Ready means the database answers.
func (h *MetaHandlers) Readyz(w http.ResponseWriter, r *http.Request) {
	if err := h.store.Ping(r.Context()); err != nil {
		httpx.WriteJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// JWKS handles GET /.well-known/jwks.json so external services can verify
// our tokens. Unlike the API responses this one is cacheable; the key set
// only changes on rotation.
func (h *MetaHandlers) JWKS(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Cache-Control", "public, max-age=300")
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(h.jwks)
}
