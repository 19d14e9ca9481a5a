package repositories

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"pmportal/internship-matcher/internal/models"
)

type ApplicationRepository interface {
	Create(application *models.Application) error
	FindByID(id uuid.UUID) (*models.Application, error)
	ExistsForPair(studentID, internshipID uuid.UUID) (bool, error)
	FindByStudent(studentID uuid.UUID) ([]models.Application, error)
	FindByInternship(internshipID uuid.UUID) ([]models.Application, error)
	SaveStatusChange(application *models.Application, internship *models.Internship) error
}

type applicationRepository struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &applicationRepository{db: db}
}

// Create implements ApplicationRepository.
func (r *applicationRepository) Create(application *models.Application) error {
	if err := r.db.Create(application).Error; err != nil {
		return fmt.Errorf("failed to create application: %w", err)
	}
	return nil
}

// FindByID implements ApplicationRepository.
func (r *applicationRepository) FindByID(id uuid.UUID) (*models.Application, error) {
	var application models.Application
	if err := r.db.Where("id = ?", id).First(&application).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("application %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find application: %w", err)
	}
	return &application, nil
}

// ExistsForPair implements ApplicationRepository.
func (r *applicationRepository) ExistsForPair(studentID, internshipID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.Model(&models.Application{}).
		Where("student_id = ? AND internship_id = ?", studentID, internshipID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check existing application: %w", err)
	}
	return count > 0, nil
}

// FindByStudent implements ApplicationRepository.
func (r *applicationRepository) FindByStudent(studentID uuid.UUID) ([]models.Application, error) {
	var applications []models.Application
	err := r.db.
		Where("student_id = ?", studentID).
		Order("applied_at DESC").
		Find(&applications).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}
	return applications, nil
}

// FindByInternship implements ApplicationRepository.
func (r *applicationRepository) FindByInternship(internshipID uuid.UUID) ([]models.Application, error) {
	var applications []models.Application
	err := r.db.
		Where("internship_id = ?", internshipID).
		Order("applied_at DESC").
		Find(&applications).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}
	return applications, nil
}

// SaveStatusChange persists a status transition and the owning internship's
// capacity counter as one unit. Either both rows land or neither does.
func (r *applicationRepository) SaveStatusChange(application *models.Application, internship *models.Internship) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		appUpdates := map[string]interface{}{
			"status":           application.Status,
			"department_notes": application.DepartmentNotes,
			"response_date":    application.ResponseDate,
			"updated_at":       time.Now(),
		}
		result := tx.Model(&models.Application{}).
			Where("id = ?", application.ID).
			Updates(appUpdates)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("application %s: %w", application.ID, ErrNotFound)
		}

		return tx.Model(&models.Internship{}).
			Where("id = ?", internship.ID).
			Update("filled_positions", internship.FilledPositions).Error
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return err
		}
		return fmt.Errorf("failed to save status change: %w", err)
	}
	return nil
}
