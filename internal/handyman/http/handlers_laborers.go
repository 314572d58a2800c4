package http

import (
	"net/http"

	"github.com/toolshed/handyman/internal/handyman/service"
	"github.com/toolshed/handyman/pkg/httpx"
)

// LaborerHandlers serves the laborer endpoints nested under a project.
type LaborerHandlers struct {
	laborers *service.LaborerService
}

func NewLaborerHandlers(laborers *service.LaborerService) *LaborerHandlers {
	return &LaborerHandlers{laborers: laborers}
}

// Add handles POST /v1/projects/{projectId}/laborers.
func (h *LaborerHandlers) Add(w http.ResponseWriter, r *http.Request) {
	userID := httpx.UserIDFromContext(r.Context())
	projectID := r.PathValue("projectId")

	var req laborerRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	projects, err := h.laborers.AddLaborer(r.Context(), userID, projectID, req.Name, req.Job, req.HourlyWage, req.HoursWorked)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeProjects(w, projects)
}

// Edit handles PUT /v1/projects/{projectId}/laborers/{laborerId}.
func (h *LaborerHandlers) Edit(w http.ResponseWriter, r *http.Request) {
	userID := httpx.UserIDFromContext(r.Context())
	projectID := r.PathValue("projectId")
	laborerID := r.PathValue("laborerId")

	var req laborerRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	projects, err := h.laborers.EditLaborer(r.Context(), userID, projectID, laborerID, req.Name, req.Job, req.HourlyWage, req.HoursWorked)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeProjects(w, projects)
}

// Delete handles DELETE /v1/projects/{projectId}/laborers/{laborerId}.
func (h *LaborerHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	userID := httpx.UserIDFromContext(r.Context())
	projectID := r.PathValue("projectId")
	laborerID := r.PathValue("laborerId")

	projects, err := h.laborers.DeleteLaborer(r.Context(), userID, projectID, laborerID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeProjects(w, projects)
}
