package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type Internship struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	DepartmentID uuid.UUID `gorm:"type:uuid;not null;index" json:"department_id"`

	// Basic information
	Title       string `gorm:"type:varchar(200);not null" json:"title"`
	Description string `gorm:"type:text" json:"description"`
	Sector      string `gorm:"type:varchar(100)" json:"sector"`
	Location    string `gorm:"type:varchar(100)" json:"location"`

	// Requirements
	RequiredSkills         string  `gorm:"type:text" json:"required_skills"`
	PreferredCourse        string  `gorm:"type:varchar(100)" json:"preferred_course"`
	MinCGPA                float64 `json:"min_cgpa"`
	YearOfStudyRequirement string  `gorm:"type:varchar(50)" json:"year_of_study_requirement"`

	// Capacity and duration
	TotalPositions  int     `gorm:"default:1" json:"total_positions"`
	FilledPositions int     `gorm:"default:0" json:"filled_positions"`
	DurationMonths  int     `json:"duration_months"`
	Stipend         float64 `json:"stipend"`

	// Affirmative action quotas (informational, feed the bonus scorer)
	RuralQuota int `gorm:"default:0" json:"rural_quota"`
	SCQuota    int `gorm:"default:0" json:"sc_quota"`
	STQuota    int `gorm:"default:0" json:"st_quota"`
	OBCQuota   int `gorm:"default:0" json:"obc_quota"`

	IsActive            bool       `gorm:"default:true" json:"is_active"`
	ApplicationDeadline *time.Time `json:"application_deadline,omitempty"`
	CreatedAt           time.Time  `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`

	Department Department `gorm:"foreignKey:DepartmentID" json:"-"`
}

func (Internship) TableName() string {
	return "internships"
}

// IsFull reports whether the internship has no remaining capacity.
func (i *Internship) IsFull() bool {
	return i.FilledPositions >= i.TotalPositions
}

// QuotaForCategory maps a social category to its quota count through a fixed
// table. Unknown categories and "General" have no quota.
func (i *Internship) QuotaForCategory(category string) int {
	switch strings.ToUpper(strings.TrimSpace(category)) {
	case "SC":
		return i.SCQuota
	case "ST":
		return i.STQuota
	case "OBC":
		return i.OBCQuota
	default:
		return 0
	}
}
