package repositories

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"pmportal/internship-matcher/internal/models"
)

type StudentRepository interface {
	Create(student *models.Student) error
	FindByID(id uuid.UUID) (*models.Student, error)
	FindAll() ([]models.Student, error)
}

type studentRepository struct {
	db *gorm.DB
}

func NewStudentRepository(db *gorm.DB) StudentRepository {
	return &studentRepository{db: db}
}

// Create implements StudentRepository.
func (r *studentRepository) Create(student *models.Student) error {
	if err := r.db.Create(student).Error; err != nil {
		return fmt.Errorf("failed to create student: %w", err)
	}
	return nil
}

// FindByID implements StudentRepository.
func (r *studentRepository) FindByID(id uuid.UUID) (*models.Student, error) {
	var student models.Student
	if err := r.db.Where("id = ?", id).First(&student).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("student %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find student: %w", err)
	}
	return &student, nil
}

// FindAll implements StudentRepository.
func (r *studentRepository) FindAll() ([]models.Student, error) {
	var students []models.Student
	if err := r.db.Order("created_at ASC").Find(&students).Error; err != nil {
		return nil, fmt.Errorf("failed to list students: %w", err)
	}
	return students, nil
}
