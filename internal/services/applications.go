package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"pmportal/internship-matcher/internal/models"
	"pmportal/internship-matcher/internal/repositories"
)

var (
	// ErrUnknownStatus rejects a transition to a status outside the five
	// recognised review states.
	ErrUnknownStatus = errors.New("unknown application status")
	// ErrCapacityExceeded refuses an accept when every position is filled.
	ErrCapacityExceeded = errors.New("all positions are filled")
	// ErrAlreadyApplied refuses a duplicate application for a pair.
	ErrAlreadyApplied = errors.New("application already exists for this internship")
	// ErrInternshipClosed refuses applications to inactive or expired postings.
	ErrInternshipClosed = errors.New("internship is not accepting applications")
)

type ApplicationService interface {
	Apply(studentID, internshipID uuid.UUID, coverLetter, portfolioURL, additionalNotes string) (*models.Application, error)
	UpdateStatus(applicationID uuid.UUID, newStatus models.ApplicationStatus, departmentNotes string) (*models.Application, error)
}

type applicationService struct {
	applicationRepo repositories.ApplicationRepository
	internshipRepo  repositories.InternshipRepository
	studentRepo     repositories.StudentRepository
	logger          *zap.Logger
}

func NewApplicationService(
	applicationRepo repositories.ApplicationRepository,
	internshipRepo repositories.InternshipRepository,
	studentRepo repositories.StudentRepository,
	logger *zap.Logger,
) ApplicationService {
	return &applicationService{
		applicationRepo: applicationRepo,
		internshipRepo:  internshipRepo,
		studentRepo:     studentRepo,
		logger:          logger,
	}
}

// Apply creates a pending application for the pair. At most one application
// per (student, internship) is allowed.
func (s *applicationService) Apply(studentID, internshipID uuid.UUID, coverLetter, portfolioURL, additionalNotes string) (*models.Application, error) {
	if _, err := s.studentRepo.FindByID(studentID); err != nil {
		return nil, err
	}

	internship, err := s.internshipRepo.FindByID(internshipID)
	if err != nil {
		return nil, err
	}
	if !internship.IsActive {
		return nil, ErrInternshipClosed
	}
	if internship.ApplicationDeadline != nil && internship.ApplicationDeadline.Before(time.Now()) {
		return nil, ErrInternshipClosed
	}

	exists, err := s.applicationRepo.ExistsForPair(studentID, internshipID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrAlreadyApplied
	}

	application := &models.Application{
		StudentID:       studentID,
		InternshipID:    internshipID,
		CoverLetter:     coverLetter,
		PortfolioURL:    portfolioURL,
		AdditionalNotes: additionalNotes,
		Status:          models.ApplicationPending,
		AppliedAt:       time.Now(),
		UpdatedAt:       time.Now(),
	}

	if err := s.applicationRepo.Create(application); err != nil {
		return nil, err
	}

	s.logger.Info("application submitted",
		zap.String("student_id", studentID.String()),
		zap.String("internship_id", internshipID.String()))

	return application, nil
}

// UpdateStatus applies a status transition and keeps the owning
// internship's filled-position counter in step. Accepting a candidate
// consumes a position; moving an accepted candidate to any other status
// releases one. The status change, department notes, response timestamp and
// counter land in one transaction or not at all.
func (s *applicationService) UpdateStatus(applicationID uuid.UUID, newStatus models.ApplicationStatus, departmentNotes string) (*models.Application, error) {
	if !models.KnownApplicationStatus(newStatus) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStatus, newStatus)
	}

	application, err := s.applicationRepo.FindByID(applicationID)
	if err != nil {
		return nil, err
	}

	internship, err := s.internshipRepo.FindByID(application.InternshipID)
	if err != nil {
		return nil, err
	}

	oldStatus := application.Status
	switch {
	case oldStatus != models.ApplicationAccepted && newStatus == models.ApplicationAccepted:
		if internship.FilledPositions >= internship.TotalPositions {
			return nil, fmt.Errorf("%w: %d of %d", ErrCapacityExceeded,
				internship.FilledPositions, internship.TotalPositions)
		}
		internship.FilledPositions++
	case oldStatus == models.ApplicationAccepted && newStatus != models.ApplicationAccepted:
		if internship.FilledPositions > 0 {
			internship.FilledPositions--
		}
	}

	now := time.Now()
	application.Status = newStatus
	application.DepartmentNotes = departmentNotes
	application.ResponseDate = &now
	application.UpdatedAt = now

	if err := s.applicationRepo.SaveStatusChange(application, internship); err != nil {
		return nil, err
	}

	s.logger.Info("application status updated",
		zap.String("application_id", applicationID.String()),
		zap.String("from", string(oldStatus)),
		zap.String("to", string(newStatus)))

	return application, nil
}
