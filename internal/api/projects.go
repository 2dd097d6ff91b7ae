// ABOUTME: Project CRUD handlers for the portfolio listing
// ABOUTME: Create and delete are token-gated; the listing itself is public

package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/mkkmani/my-portfolio-backend/internal/store"
)

// CreateProjectRequest is the JSON request body for POST /project.
type CreateProjectRequest struct {
	ProjectName  string `json:"projectName"`
	ProjectURL   string `json:"projectUrl"`
	GitLink      string `json:"gitLink"`
	PreviewImage string `json:"previewImage"`
}

// DeleteProjectRequest is the JSON request body for DELETE /project.
type DeleteProjectRequest struct {
	ProjectURL string `json:"projectUrl"`
}

// ProjectResponse is the JSON shape of a project in the public listing.
type ProjectResponse struct {
	ID           string `json:"id"`
	ProjectName  string `json:"projectName"`
	ProjectURL   string `json:"projectUrl"`
	GitLink      string `json:"gitLink"`
	PreviewImage string `json:"previewImage"`
}

// ListProjectsResponse is the JSON response for GET /projects.
type ListProjectsResponse struct {
	ProjectsList []ProjectResponse `json:"projectsList"`
}

// handleProject dispatches /project requests by method.
func (s *Server) handleProject(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		s.handleCreateProject(w, r)
	case http.MethodDelete:
		s.handleDeleteProject(w, r)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

// handleCreateProject handles POST /project requests.
func (s *Server) handleCreateProject(w http.ResponseWriter, r *http.Request) {
	var req CreateProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.sendJSONError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	if req.ProjectName == "" || req.ProjectURL == "" || req.GitLink == "" || req.PreviewImage == "" {
		s.sendJSONError(w, http.StatusBadRequest, "projectName, projectUrl, gitLink and previewImage are required")
		return
	}

	project := &store.Project{
		ID:           uuid.New().String(),
		ProjectName:  req.ProjectName,
		ProjectURL:   req.ProjectURL,
		GitLink:      req.GitLink,
		PreviewImage: req.PreviewImage,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.store.CreateProject(r.Context(), project); err != nil {
		if errors.Is(err, store.ErrProjectExists) {
			s.sendJSONError(w, http.StatusConflict, "Project already exists")
			return
		}
		s.logger.Error("failed to create project", "error", err)
		s.sendJSONError(w, http.StatusInternalServerError, "error in creating new project")
		return
	}

	s.sendJSON(w, http.StatusOK, map[string]string{"message": "project added successfully"})
}

// handleDeleteProject handles DELETE /project requests. The project URL in the
// body is the deletion key.
func (s *Server) handleDeleteProject(w http.ResponseWriter, r *http.Request) {
	var req DeleteProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.sendJSONError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	if req.ProjectURL == "" {
		s.sendJSONError(w, http.StatusBadRequest, "projectUrl is required")
		return
	}

	if err := s.store.DeleteProjectByURL(r.Context(), req.ProjectURL); err != nil {
		if errors.Is(err, store.ErrProjectNotFound) {
			// 401 rather than 404: existing clients key off this status
			s.sendJSONError(w, http.StatusUnauthorized, "Project not found")
			return
		}
		s.logger.Error("failed to delete project", "error", err)
		s.sendJSONError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	s.sendJSON(w, http.StatusOK, map[string]string{"message": "Projected removed successfully"})
}

// handleListProjects handles GET /projects requests for the public listing.
func (s *Server) handleListProjects(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	projects, err := s.store.ListProjects(r.Context())
	if err != nil {
		s.logger.Error("failed to list projects", "error", err)
		s.sendJSONError(w, http.StatusInternalServerError, "internal server error in getting projects")
		return
	}

	response := ListProjectsResponse{ProjectsList: make([]ProjectResponse, 0, len(projects))}
	for _, p := range projects {
		response.ProjectsList = append(response.ProjectsList, ProjectResponse{
			ID:           p.ID,
			ProjectName:  p.ProjectName,
			ProjectURL:   p.ProjectURL,
			GitLink:      p.GitLink,
			PreviewImage: p.PreviewImage,
		})
	}

	s.sendJSON(w, http.StatusOK, response)
}
