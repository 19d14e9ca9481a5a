package models

import (
	"time"

	"github.com/google/uuid"
)

type Student struct {
	ID    uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name  string    `gorm:"type:varchar(100);not null" json:"name"`
	Email string    `gorm:"type:varchar(120);unique;not null" json:"email"`
	Phone string    `gorm:"type:varchar(15)" json:"phone"`

	// Academic information
	Institution string  `gorm:"type:varchar(200)" json:"institution"`
	Course      string  `gorm:"type:varchar(100)" json:"course"`
	YearOfStudy int     `json:"year_of_study"`
	CGPA        float64 `json:"cgpa"`

	// Skills and interests, stored as comma-separated text
	TechnicalSkills string `gorm:"type:text" json:"technical_skills"`
	SoftSkills      string `gorm:"type:text" json:"soft_skills"`
	SectorInterests string `gorm:"type:text" json:"sector_interests"`

	// Location preferences
	PreferredLocations string `gorm:"type:text" json:"preferred_locations"`
	CurrentLocation    string `gorm:"type:varchar(100)" json:"current_location"`

	// Affirmative action data
	SocialCategory string `gorm:"type:varchar(50)" json:"social_category"`
	DistrictType   string `gorm:"type:varchar(50)" json:"district_type"`
	HomeDistrict   string `gorm:"type:varchar(100)" json:"home_district"`

	// Previous participation
	PreviousInternships int  `gorm:"default:0" json:"previous_internships"`
	PMSchemeParticipant bool `gorm:"default:false" json:"pm_scheme_participant"`

	CreatedAt time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (Student) TableName() string {
	return "students"
}

// CombinedSkills joins technical and soft skills into the single text the
// skills scorer consumes.
func (s *Student) CombinedSkills() string {
	if s.SoftSkills == "" {
		return s.TechnicalSkills
	}
	if s.TechnicalSkills == "" {
		return s.SoftSkills
	}
	return s.TechnicalSkills + ", " + s.SoftSkills
}

type completenessField struct {
	label  string
	weight int
	filled func(*Student) bool
}

var completenessFields = []completenessField{
	{"Full Name", 10, func(s *Student) bool { return s.Name != "" }},
	{"Email", 10, func(s *Student) bool { return s.Email != "" }},
	{"Phone Number", 10, func(s *Student) bool { return s.Phone != "" }},
	{"Institution", 10, func(s *Student) bool { return s.Institution != "" }},
	{"Course/Degree", 10, func(s *Student) bool { return s.Course != "" }},
	{"Year of Study", 5, func(s *Student) bool { return s.YearOfStudy > 0 }},
	{"CGPA/Percentage", 5, func(s *Student) bool { return s.CGPA > 0 }},
	{"Technical Skills", 10, func(s *Student) bool { return s.TechnicalSkills != "" }},
	{"Soft Skills", 5, func(s *Student) bool { return s.SoftSkills != "" }},
	{"Sector Interests", 10, func(s *Student) bool { return s.SectorInterests != "" }},
	{"Current Location", 5, func(s *Student) bool { return s.CurrentLocation != "" }},
	{"Preferred Locations", 5, func(s *Student) bool { return s.PreferredLocations != "" }},
	{"Social Category", 3, func(s *Student) bool { return s.SocialCategory != "" }},
	{"District Type", 3, func(s *Student) bool { return s.DistrictType != "" }},
	{"Home District", 4, func(s *Student) bool { return s.HomeDistrict != "" }},
	// Participation counters are meaningful even when zero/false.
	{"Number of Previous Internships", 5, func(s *Student) bool { return true }},
	{"PM Scheme Participant", 5, func(s *Student) bool { return true }},
}

// ProfileCompleteness returns a 0-100 completeness score together with the
// labels of the fields still missing.
func (s *Student) ProfileCompleteness() (int, []string) {
	score := 0
	var missing []string

	for _, f := range completenessFields {
		if f.filled(s) {
			score += f.weight
		} else {
			missing = append(missing, f.label)
		}
	}

	if score > 100 {
		score = 100
	}
	return score, missing
}
