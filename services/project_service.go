package services

import (
	"time"

	"github.com/appcanvas-backend/dto"
	"github.com/appcanvas-backend/models"
)

// ProjectStore is the persistence surface the project service depends on.
type ProjectStore interface {
	FindByID(id string) (models.Project, error)
	FindByOwnerID(ownerID string) ([]models.Project, error)
	Create(project models.Project) (models.Project, error)
	Save(project models.Project) (models.Project, error)
}

// ProjectService handles business logic for projects
type ProjectService struct {
	projects ProjectStore
}

// NewProjectService creates a new project service instance
func NewProjectService(projects ProjectStore) *ProjectService {
	return &ProjectService{projects: projects}
}

// DeployedPath returns the stable public path for a deployed project.
// Deploying the same project always yields the same path.
func DeployedPath(projectID string) string {
	return "/deployed/" + projectID
}

// Create stores a new project for the given owner. The version history
// starts with a single entry equal to the creation code.
func (s *ProjectService) Create(ownerID string, req dto.CreateProjectRequest) (models.Project, error) {
	if req.Title == "" || req.Code == "" {
		return models.Project{}, models.ErrInvalidInput
	}

	now := time.Now()
	project := models.Project{
		OwnerID:     ownerID,
		Title:       req.Title,
		Description: req.Description,
		Code:        req.Code,
		Versions:    []models.Version{{Code: req.Code, CreatedAt: now}},
		Assets:      []string{},
		IsPublic:    req.IsPublic,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if req.InputData != nil {
		project.InputData = *req.InputData
	}

	return s.projects.Create(project)
}

// ListOwned retrieves the caller's projects, most recently updated first
func (s *ProjectService) ListOwned(ownerID string) ([]models.Project, error) {
	return s.projects.FindByOwnerID(ownerID)
}

// GetPublic retrieves a project anyone may see. Private projects are
// reported as not found, owner included.
func (s *ProjectService) GetPublic(id string) (models.Project, error) {
	project, err := s.projects.FindByID(id)
	if err != nil {
		return models.Project{}, err
	}
	if !project.IsPublic {
		return models.Project{}, models.ErrNotFound
	}
	return project, nil
}

// GetOwned retrieves a project on behalf of its owner
func (s *ProjectService) GetOwned(userID, id string) (models.Project, error) {
	project, err := s.projects.FindByID(id)
	if err != nil {
		return models.Project{}, err
	}
	if !project.IsOwnedBy(userID) {
		return models.Project{}, models.ErrForbidden
	}
	return project, nil
}

// Update applies the provided fields to the caller's project. Changing the
// code to a different value appends a version; equal code does not.
// UpdatedAt is refreshed on every successful call, changed fields or not.
func (s *ProjectService) Update(userID, id string, req dto.UpdateProjectRequest) (models.Project, error) {
	project, err := s.GetOwned(userID, id)
	if err != nil {
		return models.Project{}, err
	}

	if req.Title != nil && *req.Title != "" {
		project.Title = *req.Title
	}
	if req.Description != nil && *req.Description != "" {
		project.Description = *req.Description
	}
	if req.Code != nil && *req.Code != "" && *req.Code != project.Code {
		project.Code = *req.Code
		project.Versions = append(project.Versions, models.Version{
			Code:      *req.Code,
			CreatedAt: time.Now(),
		})
	}
	if req.InputData != nil {
		project.InputData = *req.InputData
	}
	if req.IsPublic != nil {
		project.IsPublic = *req.IsPublic
	}

	project.UpdatedAt = time.Now()

	return s.projects.Save(project)
}

// AddAsset appends an uploaded asset URL to the caller's project
func (s *ProjectService) AddAsset(userID, id, url string) (models.Project, error) {
	if url == "" {
		return models.Project{}, models.ErrInvalidInput
	}

	project, err := s.GetOwned(userID, id)
	if err != nil {
		return models.Project{}, err
	}

	project.Assets = append(project.Assets, url)
	project.UpdatedAt = time.Now()

	return s.projects.Save(project)
}

// Deploy marks the caller's project publicly servable at its stable path.
// Repeated calls recompute the same URL.
func (s *ProjectService) Deploy(userID, id string) (string, error) {
	project, err := s.GetOwned(userID, id)
	if err != nil {
		return "", err
	}

	project.DeployedURL = DeployedPath(project.ID)
	project.IsPublic = true // deployment implies public access
	project.UpdatedAt = time.Now()

	if _, err := s.projects.Save(project); err != nil {
		return "", err
	}

	return project.DeployedURL, nil
}

// GetDeployed retrieves a project for the public render endpoint. Projects
// that are absent, private, or never deployed are all reported as not found.
func (s *ProjectService) GetDeployed(id string) (models.Project, error) {
	project, err := s.projects.FindByID(id)
	if err != nil {
		return models.Project{}, err
	}
	if !project.IsPublic || project.DeployedURL == "" {
		return models.Project{}, models.ErrNotFound
	}
	return project, nil
}
