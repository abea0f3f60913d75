package dto

import (
	"github.com/appcanvas-backend/models"
)

// CreateProjectRequest represents the request payload for creating a new project
type CreateProjectRequest struct {
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Code        string            `json:"code"`
	InputData   *models.InputData `json:"inputData"`
	IsPublic    bool              `json:"isPublic"`
}

// UpdateProjectRequest represents the request payload for updating a project.
// Pointer fields distinguish "absent" from "provided"; absent fields are
// left untouched.
type UpdateProjectRequest struct {
	Title       *string           `json:"title"`
	Description *string           `json:"description"`
	Code        *string           `json:"code"`
	InputData   *models.InputData `json:"inputData"`
	IsPublic    *bool             `json:"isPublic"`
}

// AddAssetRequest represents the request payload for attaching an uploaded
// asset URL to a project
type AddAssetRequest struct {
	URL string `json:"url"`
}
