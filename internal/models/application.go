package models

import (
	"time"

	"github.com/google/uuid"
)

type ApplicationStatus string

const (
	ApplicationPending     ApplicationStatus = "pending"
	ApplicationUnderReview ApplicationStatus = "under_review"
	ApplicationShortlisted ApplicationStatus = "shortlisted"
	ApplicationAccepted    ApplicationStatus = "accepted"
	ApplicationRejected    ApplicationStatus = "rejected"
)

// KnownApplicationStatus reports whether s is one of the five recognised
// review statuses.
func KnownApplicationStatus(s ApplicationStatus) bool {
	switch s {
	case ApplicationPending, ApplicationUnderReview, ApplicationShortlisted,
		ApplicationAccepted, ApplicationRejected:
		return true
	}
	return false
}

type Application struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	StudentID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_applications_pair" json:"student_id"`
	InternshipID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_applications_pair" json:"internship_id"`

	CoverLetter     string `gorm:"type:text" json:"cover_letter"`
	PortfolioURL    string `gorm:"type:varchar(255)" json:"portfolio_url"`
	AdditionalNotes string `gorm:"type:text" json:"additional_notes"`

	Status    ApplicationStatus `gorm:"type:varchar(50);default:'pending'" json:"status"`
	AppliedAt time.Time         `gorm:"default:CURRENT_TIMESTAMP" json:"applied_at"`
	UpdatedAt time.Time         `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`

	// Department response
	DepartmentNotes string     `gorm:"type:text" json:"department_notes"`
	InterviewDate   *time.Time `json:"interview_date,omitempty"`
	ResponseDate    *time.Time `json:"response_date,omitempty"`

	Student    Student    `gorm:"foreignKey:StudentID" json:"-"`
	Internship Internship `gorm:"foreignKey:InternshipID" json:"-"`
}

func (Application) TableName() string {
	return "applications"
}
