package repositories

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"pmportal/internship-matcher/internal/models"
)

type InternshipRepository interface {
	Create(internship *models.Internship) error
	FindByID(id uuid.UUID) (*models.Internship, error)
	FindActive() ([]models.Internship, error)
}

type internshipRepository struct {
	db *gorm.DB
}

func NewInternshipRepository(db *gorm.DB) InternshipRepository {
	return &internshipRepository{db: db}
}

// Create implements InternshipRepository.
func (r *internshipRepository) Create(internship *models.Internship) error {
	if err := r.db.Create(internship).Error; err != nil {
		return fmt.Errorf("failed to create internship: %w", err)
	}
	return nil
}

// FindByID implements InternshipRepository.
func (r *internshipRepository) FindByID(id uuid.UUID) (*models.Internship, error) {
	var internship models.Internship
	if err := r.db.Where("id = ?", id).First(&internship).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("internship %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find internship: %w", err)
	}
	return &internship, nil
}

// FindActive implements InternshipRepository.
func (r *internshipRepository) FindActive() ([]models.Internship, error) {
	var internships []models.Internship
	if err := r.db.Where("is_active = ?", true).Find(&internships).Error; err != nil {
		return nil, fmt.Errorf("failed to list active internships: %w", err)
	}
	return internships, nil
}
