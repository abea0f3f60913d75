package v1

import (
	"net/http"

	"github.com/appcanvas-backend/dto"
	"github.com/appcanvas-backend/services"
	"github.com/gin-gonic/gin"
)

// ProjectHandler exposes the owner-scoped project endpoints plus the
// public get-by-id endpoint
type ProjectHandler struct {
	projects *services.ProjectService
}

// NewProjectHandler creates a new project handler instance
func NewProjectHandler(projects *services.ProjectService) *ProjectHandler {
	return &ProjectHandler{projects: projects}
}

// Create handles project creation for the authenticated user
func (h *ProjectHandler) Create(c *gin.Context) {
	var req dto.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
		return
	}

	project, err := h.projects.Create(c.GetString("userId"), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, project)
}

// List returns the caller's projects, most recently updated first
func (h *ProjectHandler) List(c *gin.Context) {
	projects, err := h.projects.ListOwned(c.GetString("userId"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, projects)
}

// GetPublic returns a public project by ID, no authentication required
func (h *ProjectHandler) GetPublic(c *gin.Context) {
	project, err := h.projects.GetPublic(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, project)
}

// Update applies field updates to the caller's project
func (h *ProjectHandler) Update(c *gin.Context) {
	var req dto.UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
		return
	}

	project, err := h.projects.Update(c.GetString("userId"), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, project)
}

// AddAsset attaches an uploaded asset URL to the caller's project
func (h *ProjectHandler) AddAsset(c *gin.Context) {
	var req dto.AddAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
		return
	}

	project, err := h.projects.AddAsset(c.GetString("userId"), c.Param("id"), req.URL)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, project)
}

// Deploy marks the caller's project public at its stable deployed path
func (h *ProjectHandler) Deploy(c *gin.Context) {
	deployedURL, err := h.projects.Deploy(c.GetString("userId"), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"deployedUrl": deployedURL})
}
