package http

import (
	"net/http"

	"github.com/toolshed/handyman/internal/handyman/service"
	"github.com/toolshed/handyman/pkg/httpx"
)

// ProjectHandlers serves the project CRUD surface. The user id always
// comes from the verified token, never from the request.
type ProjectHandlers struct {
	projects *service.ProjectService
}

func NewProjectHandlers(projects *service.ProjectService) *ProjectHandlers {
	return &ProjectHandlers{projects: projects}
}

// List handles GET /v1/projects.
func (h *ProjectHandlers) List(w http.ResponseWriter, r *http.Request) {
	userID := httpx.UserIDFromContext(r.Context())

	projects, err := h.projects.ListProjects(r.Context(), userID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeProjects(w, projects)
}

// Add handles POST /v1/projects.
func (h *ProjectHandlers) Add(w http.ResponseWriter, r *http.Request) {
	userID := httpx.UserIDFromContext(r.Context())

	var req projectRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	projects, err := h.projects.AddProject(r.Context(), userID, req.Name, req.Memo)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeProjects(w, projects)
}

// Edit handles PUT /v1/projects/{projectId}.
func (h *ProjectHandlers) Edit(w http.ResponseWriter, r *http.Request) {
	userID := httpx.UserIDFromContext(r.Context())
	projectID := r.PathValue("projectId")

	var req projectRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	projects, err := h.projects.EditProject(r.Context(), userID, projectID, req.Name, req.Memo)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeProjects(w, projects)
}

// UpdatePay handles PUT /v1/projects/{projectId}/pay.
func (h *ProjectHandlers) UpdatePay(w http.ResponseWriter, r *http.Request) {
	userID := httpx.UserIDFromContext(r.Context())
	projectID := r.PathValue("projectId")

	var req payRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	projects, err := h.projects.UpdatePay(r.Context(), userID, projectID, req.JobPay)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeProjects(w, projects)
}

// Delete handles DELETE /v1/projects/{projectId}.
func (h *ProjectHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	userID := httpx.UserIDFromContext(r.Context())
	projectID := r.PathValue("projectId")

	projects, err := h.projects.DeleteProject(r.Context(), userID, projectID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeProjects(w, projects)
}
