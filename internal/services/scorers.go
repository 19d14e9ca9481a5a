package services

import (
	"math"
	"strconv"
	"strings"

	"pmportal/internship-matcher/internal/models"
)

// Fixed aggregation weights. They sum to 1.0.
const (
	skillsWeight            = 0.35
	academicWeight          = 0.25
	locationWeight          = 0.20
	sectorWeight            = 0.15
	affirmativeActionWeight = 0.05
)

// DimensionScorer scores one independent compatibility dimension of a
// student/internship pair. Implementations are pure and stateless.
type DimensionScorer interface {
	Name() string
	Weight() float64
	Score(student *models.Student, internship *models.Internship) float64
}

// DefaultScorers returns the five production dimensions.
func DefaultScorers() []DimensionScorer {
	return []DimensionScorer{
		skillsScorer{},
		academicScorer{},
		locationScorer{},
		sectorInterestScorer{},
		affirmativeActionScorer{},
	}
}

type skillsScorer struct{}

func (skillsScorer) Name() string    { return "skills" }
func (skillsScorer) Weight() float64 { return skillsWeight }

// Score compares the student's combined technical and soft skills against
// the internship's required skills via TF-IDF cosine similarity. Missing
// text on either side scores 0.
func (skillsScorer) Score(student *models.Student, internship *models.Internship) float64 {
	return tfidfCosine(
		NormalizeText(student.CombinedSkills()),
		NormalizeText(internship.RequiredSkills),
	)
}

type locationScorer struct{}

func (locationScorer) Name() string    { return "location" }
func (locationScorer) Weight() float64 { return locationWeight }

func (locationScorer) Score(student *models.Student, internship *models.Internship) float64 {
	return locationScore(student.PreferredLocations, student.CurrentLocation, internship.Location)
}

// locationScore is additive: preferred-location hit 0.8, current-location hit
// 0.6, remote posting 0.7, capped at 1.0. A posting without a location is
// neutral 0.5.
func locationScore(preferredCSV, currentLocation, internshipLocation string) float64 {
	location := strings.ToLower(strings.TrimSpace(internshipLocation))
	if location == "" {
		return 0.5
	}

	score := 0.0

	for _, pref := range NormalizeTerms(preferredCSV) {
		if strings.Contains(location, pref) || strings.Contains(pref, location) {
			score += 0.8
			break
		}
	}

	current := strings.ToLower(strings.TrimSpace(currentLocation))
	if current != "" && strings.Contains(location, current) {
		score += 0.6
	}

	if strings.Contains(location, "remote") || strings.Contains(location, "work from home") {
		score += 0.7
	}

	return math.Min(score, 1.0)
}

type academicScorer struct{}

func (academicScorer) Name() string    { return "academic" }
func (academicScorer) Weight() float64 { return academicWeight }

// Score combines CGPA standing, course relevance and year-of-study fit.
// The CGPA penalty can push the running sum negative; the final value is
// clamped to [0,1].
func (academicScorer) Score(student *models.Student, internship *models.Internship) float64 {
	score := 0.0

	switch {
	case student.CGPA > 0 && internship.MinCGPA > 0:
		if student.CGPA >= internship.MinCGPA {
			ratio := student.CGPA / internship.MinCGPA
			score += math.Min(ratio*0.4, 0.5)
		} else {
			score -= 0.3
		}
	case student.CGPA > 0:
		score += math.Min(student.CGPA/10.0*0.4, 0.4)
	}

	course := strings.ToLower(strings.TrimSpace(student.Course))
	preferred := strings.ToLower(strings.TrimSpace(internship.PreferredCourse))
	if course != "" && preferred != "" &&
		(strings.Contains(preferred, course) || strings.Contains(course, preferred)) {
		score += 0.3
	}

	requirement := strings.ToLower(strings.TrimSpace(internship.YearOfStudyRequirement))
	if student.YearOfStudy > 0 && requirement != "" {
		year := student.YearOfStudy
		switch {
		case strings.Contains(requirement, "any"),
			strings.Contains(requirement, strconv.Itoa(year)):
			score += 0.2
		case strings.Contains(requirement, "final") && year >= 3:
			score += 0.2
		case strings.Contains(requirement, "junior") && year <= 2:
			score += 0.2
		}
	}

	return math.Max(0.0, math.Min(score, 1.0))
}

type affirmativeActionScorer struct{}

func (affirmativeActionScorer) Name() string    { return "affirmative_action" }
func (affirmativeActionScorer) Weight() float64 { return affirmativeActionWeight }

// Score stacks the affirmative-action bonuses. The quota-backed rural bonus
// and the general rural bonus are mutually exclusive.
func (affirmativeActionScorer) Score(student *models.Student, internship *models.Internship) float64 {
	score := 0.0

	category := strings.TrimSpace(student.SocialCategory)
	if category != "" && !strings.EqualFold(category, "general") &&
		internship.QuotaForCategory(category) > 0 {
		score += 0.3
	}

	district := strings.ToLower(strings.TrimSpace(student.DistrictType))
	if district == "rural" || district == "aspirational" {
		if internship.RuralQuota > 0 {
			score += 0.25
		} else {
			score += 0.15
		}
	}

	if !student.PMSchemeParticipant {
		score += 0.1
	}

	if student.PreviousInternships <= 1 {
		score += 0.1
	}

	return math.Min(score, 1.0)
}

type sectorInterestScorer struct{}

func (sectorInterestScorer) Name() string    { return "sector" }
func (sectorInterestScorer) Weight() float64 { return sectorWeight }

func (sectorInterestScorer) Score(student *models.Student, internship *models.Internship) float64 {
	return sectorInterestScore(student.SectorInterests, internship.Sector)
}

// relatedSectors maps canonical interest categories to sector keywords so a
// posting like "IT Services" still matches a "technology" interest.
var relatedSectors = []struct {
	category string
	keywords []string
}{
	{"technology", []string{"software", "it", "tech", "digital"}},
	{"finance", []string{"banking", "financial", "fintech"}},
	{"healthcare", []string{"medical", "pharma", "health"}},
	{"education", []string{"teaching", "academic", "research"}},
	{"marketing", []string{"advertising", "sales", "digital marketing"}},
}

func sectorInterestScore(interestsCSV, sector string) float64 {
	interests := NormalizeTerms(interestsCSV)
	sectorLower := strings.ToLower(strings.TrimSpace(sector))
	if len(interests) == 0 || sectorLower == "" {
		return 0.5
	}

	for _, interest := range interests {
		if interest == sectorLower || strings.Contains(sectorLower, interest) {
			return 1.0
		}
	}

	for _, related := range relatedSectors {
		for _, keyword := range related.keywords {
			if !strings.Contains(sectorLower, keyword) {
				continue
			}
			for _, interest := range interests {
				if interest == related.category {
					return 0.8
				}
			}
			break
		}
	}

	return 0.3
}
