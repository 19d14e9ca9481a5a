package models

import (
	"time"

	"github.com/google/uuid"
)

type MatchStatus string

const (
	MatchPending  MatchStatus = "pending"
	MatchAccepted MatchStatus = "accepted"
	MatchRejected MatchStatus = "rejected"
)

// Match is a scored student/internship pair. The engine only ever writes
// "pending"; the Application carries the authoritative decision lifecycle.
type Match struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	StudentID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_matches_pair" json:"student_id"`
	InternshipID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_matches_pair" json:"internship_id"`

	OverallScore           float64 `gorm:"not null" json:"overall_score"`
	SkillsScore            float64 `json:"skills_score"`
	LocationScore          float64 `json:"location_score"`
	AcademicScore          float64 `json:"academic_score"`
	AffirmativeActionScore float64 `json:"affirmative_action_score"`
	SectorScore            float64 `json:"sector_score"`

	Status    MatchStatus `gorm:"type:varchar(50);default:'pending'" json:"status"`
	CreatedAt time.Time   `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`

	Student    Student    `gorm:"foreignKey:StudentID" json:"-"`
	Internship Internship `gorm:"foreignKey:InternshipID" json:"-"`
}

func (Match) TableName() string {
	return "matches"
}
