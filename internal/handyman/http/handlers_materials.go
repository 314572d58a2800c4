package http

import (
	"net/http"

	"github.com/toolshed/handyman/internal/handyman/service"
	"github.com/toolshed/handyman/pkg/httpx"
)

// MaterialHandlers serves the material endpoints nested under a project.
type MaterialHandlers struct {
	materials *service.MaterialService
}

func NewMaterialHandlers(materials *service.MaterialService) *MaterialHandlers {
	return &MaterialHandlers{materials: materials}
}

// Add handles POST /v1/projects/{projectId}/materials.
func (h *MaterialHandlers) Add(w http.ResponseWriter, r *http.Request) {
	userID := httpx.UserIDFromContext(r.Context())
	projectID := r.PathValue("projectId")

	var req materialRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	projects, err := h.materials.AddMaterial(r.Context(), userID, projectID, req.Name, req.Quantity, req.Value)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeProjects(w, projects)
}

// Edit handles PUT /v1/projects/{projectId}/materials/{materialId}.
func (h *MaterialHandlers) Edit(w http.ResponseWriter, r *http.Request) {
	userID := httpx.UserIDFromContext(r.Context())
	projectID := r.PathValue("projectId")
	materialID := r.PathValue("materialId")

	var req materialRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	projects, err := h.materials.EditMaterial(r.Context(), userID, projectID, materialID, req.Name, req.Quantity, req.Value)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeProjects(w, projects)
}

// Delete handles DELETE /v1/projects/{projectId}/materials/{materialId}.
func (h *MaterialHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	userID := httpx.UserIDFromContext(r.Context())
	projectID := r.PathValue("projectId")
	materialID := r.PathValue("materialId")

	projects, err := h.materials.DeleteMaterial(r.Context(), userID, projectID, materialID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeProjects(w, projects)
}
