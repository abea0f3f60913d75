package repositories

import (
	"errors"

	"github.com/appcanvas-backend/models"
	"gorm.io/gorm"
)

// ProjectRepository handles database operations for projects
type ProjectRepository struct {
	db *gorm.DB
}

// NewProjectRepository creates a new project repository instance
func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// FindByID retrieves a project by its ID
func (r *ProjectRepository) FindByID(id string) (models.Project, error) {
	var project models.Project
	err := r.db.First(&project, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Project{}, models.ErrNotFound
	}
	return project, err
}

// FindByOwnerID retrieves all projects belonging to a user, most recently
// updated first
func (r *ProjectRepository) FindByOwnerID(ownerID string) ([]models.Project, error) {
	var projects []models.Project
	result := r.db.Where("owner_id = ?", ownerID).Order("updated_at DESC").Find(&projects)
	return projects, result.Error
}

// Create inserts a new project into the database
func (r *ProjectRepository) Create(project models.Project) (models.Project, error) {
	result := r.db.Create(&project)
	return project, result.Error
}

// Save writes back the full project record. The store guarantees the
// single-record write is atomic; the surrounding read-modify-write is not,
// so concurrent updates to one project are last-write-wins.
func (r *ProjectRepository) Save(project models.Project) (models.Project, error) {
	result := r.db.Save(&project)
	return project, result.Error
}
