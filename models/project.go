package models

import (
	"time"
)

// Version is an immutable snapshot of a project's code, appended only
// when an update actually changes the code.
type Version struct {
	Code      string    `json:"code"`
	CreatedAt time.Time `json:"createdAt"`
}

// InputData carries the optional creation inputs attached to a project.
// DrawingData is an opaque structured blob (e.g. stroke JSON).
type InputData struct {
	Text             string                 `json:"text,omitempty"`
	SpeechTranscript string                 `json:"speechTranscript,omitempty"`
	DrawingData      map[string]interface{} `json:"drawingData,omitempty"`
}

// Project is the aggregate root for a stored unit of code plus metadata.
// Versions, assets and input data live inside the project record as JSON
// columns; all reads are per-project so nothing is normalized out.
type Project struct {
	ID          string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	OwnerID     string    `json:"ownerId" gorm:"type:uuid;not null;index"`
	Title       string    `json:"title" gorm:"not null"`
	Description string    `json:"description" gorm:"default:null"`
	Code        string    `json:"code" gorm:"type:text;not null"`
	Versions    []Version `json:"versions" gorm:"serializer:json;type:jsonb"`
	Assets      []string  `json:"assets" gorm:"serializer:json;type:jsonb"`
	InputData   InputData `json:"inputData" gorm:"serializer:json;type:jsonb"`
	IsPublic    bool      `json:"isPublic" gorm:"default:false"`
	DeployedURL string    `json:"deployedUrl,omitempty" gorm:"default:null"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// IsOwnedBy reports whether the given user owns this project. Every
// owner-scoped operation goes through this single predicate.
func (p Project) IsOwnedBy(userID string) bool {
	return p.OwnerID == userID
}
