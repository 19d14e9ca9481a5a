package models

type CreateInternshipRequest struct {
	DepartmentID           string  `json:"department_id" validate:"required,uuid"`
	Title                  string  `json:"title" validate:"required"`
	Description            string  `json:"description"`
	Sector                 string  `json:"sector"`
	Location               string  `json:"location"`
	RequiredSkills         string  `json:"required_skills"`
	PreferredCourse        string  `json:"preferred_course"`
	MinCGPA                float64 `json:"min_cgpa"`
	YearOfStudyRequirement string  `json:"year_of_study_requirement"`
	TotalPositions         int     `json:"total_positions"`
	DurationMonths         int     `json:"duration_months"`
	Stipend                float64 `json:"stipend"`
	RuralQuota             int     `json:"rural_quota"`
	SCQuota                int     `json:"sc_quota"`
	STQuota                int     `json:"st_quota"`
	OBCQuota               int     `json:"obc_quota"`
}

type ApplyRequest struct {
	StudentID       string `json:"student_id" validate:"required,uuid"`
	InternshipID    string `json:"internship_id" validate:"required,uuid"`
	CoverLetter     string `json:"cover_letter"`
	PortfolioURL    string `json:"portfolio_url"`
	AdditionalNotes string `json:"additional_notes"`
}

type UpdateApplicationStatusRequest struct {
	Status          string `json:"status" validate:"required"`
	DepartmentNotes string `json:"department_notes"`
}

type GenerateMatchesResponse struct {
	StudentID string  `json:"student_id"`
	Created   int     `json:"created"`
	Matches   []Match `json:"matches"`
}

type GenerateAllMatchesResponse struct {
	TotalMatches int `json:"total_matches"`
}

type ProfileCompletenessResponse struct {
	StudentID     string   `json:"student_id"`
	Completeness  int      `json:"completeness"`
	MissingFields []string `json:"missing_fields"`
}
