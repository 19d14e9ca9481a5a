package repositories

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"pmportal/internship-matcher/internal/models"
)

type MatchRepository interface {
	CreateBatch(matches []*models.Match) error
	ExistsForPair(studentID, internshipID uuid.UUID) (bool, error)
	FindByStudent(studentID uuid.UUID) ([]models.Match, error)
}

type matchRepository struct {
	db *gorm.DB
}

func NewMatchRepository(db *gorm.DB) MatchRepository {
	return &matchRepository{db: db}
}

// CreateBatch persists all matches in one transaction. A failure on any row
// rolls back the whole batch.
func (r *matchRepository) CreateBatch(matches []*models.Match) error {
	if len(matches) == 0 {
		return nil
	}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		for _, match := range matches {
			if err := tx.Create(match).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to create match batch: %w", err)
	}
	return nil
}

// ExistsForPair implements MatchRepository.
func (r *matchRepository) ExistsForPair(studentID, internshipID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.Model(&models.Match{}).
		Where("student_id = ? AND internship_id = ?", studentID, internshipID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check existing match: %w", err)
	}
	return count > 0, nil
}

// FindByStudent returns the student's matches best first.
func (r *matchRepository) FindByStudent(studentID uuid.UUID) ([]models.Match, error) {
	var matches []models.Match
	err := r.db.
		Where("student_id = ?", studentID).
		Order("overall_score DESC").
		Find(&matches).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list matches: %w", err)
	}
	return matches, nil
}
