package services

import (
	"context"
	"math"
	"testing"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"pmportal/internship-matcher/internal/models"
)

func newTestEngine(students *fakeStudentRepo, internships *fakeInternshipRepo, matches *fakeMatchRepo) MatchingEngine {
	return NewMatchingEngine(students, internships, matches, zap.NewNop())
}

// A profile/posting pair that scores well above the threshold.
func strongPair() (*models.Student, *models.Internship) {
	student := &models.Student{
		Name:               "Ananya Iyer",
		Email:              "ananya@example.com",
		CGPA:               8.5,
		YearOfStudy:        3,
		Course:             "Computer Science",
		TechnicalSkills:    "Python, SQL, Machine Learning",
		SoftSkills:         "Communication",
		SectorInterests:    "Technology",
		PreferredLocations: "Pune",
		CurrentLocation:    "Pune",
	}
	internship := &models.Internship{
		Title:                  "Data Science Intern",
		Sector:                 "Technology",
		Location:               "Pune",
		RequiredSkills:         "Python, SQL, Machine Learning",
		PreferredCourse:        "Computer Science",
		MinCGPA:                6.0,
		YearOfStudyRequirement: "any",
		TotalPositions:         3,
		IsActive:               true,
	}
	return student, internship
}

func TestScorePairAggregatesWithFixedWeights(t *testing.T) {
	engine := newTestEngine(newFakeStudentRepo(), newFakeInternshipRepo(), newFakeMatchRepo())

	student, internship := strongPair()
	breakdown := engine.ScorePair(student, internship)

	want := breakdown.Skills*0.35 +
		breakdown.Academic*0.25 +
		breakdown.Location*0.20 +
		breakdown.Sector*0.15 +
		breakdown.AffirmativeAction*0.05
	if math.Abs(breakdown.Overall-want) > 1e-9 {
		t.Fatalf("overall = %v, want weighted sum %v", breakdown.Overall, want)
	}

	for name, score := range map[string]float64{
		"skills":             breakdown.Skills,
		"location":           breakdown.Location,
		"academic":           breakdown.Academic,
		"affirmative_action": breakdown.AffirmativeAction,
		"sector":             breakdown.Sector,
	} {
		if score < 0.0 || score > 1.0 {
			t.Fatalf("%s score %v out of [0,1]", name, score)
		}
	}
}

func TestGenerateMatchesForStudentCreatesQualifyingMatches(t *testing.T) {
	student, internship := strongPair()
	students := newFakeStudentRepo(student)
	internships := newFakeInternshipRepo(internship)
	matches := newFakeMatchRepo()
	engine := newTestEngine(students, internships, matches)

	created, err := engine.GenerateMatchesForStudent(context.Background(), student.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(created) != 1 {
		t.Fatalf("expected 1 match, got %d", len(created))
	}

	match := created[0]
	if match.StudentID != student.ID || match.InternshipID != internship.ID {
		t.Fatalf("match references wrong pair")
	}
	if match.Status != models.MatchPending {
		t.Fatalf("match status = %q, want pending", match.Status)
	}
	if match.OverallScore < MatchThreshold {
		t.Fatalf("persisted match below threshold: %v", match.OverallScore)
	}
}

func TestGenerateMatchesForStudentIsIdempotent(t *testing.T) {
	student, internship := strongPair()
	students := newFakeStudentRepo(student)
	internships := newFakeInternshipRepo(internship)
	matches := newFakeMatchRepo()
	engine := newTestEngine(students, internships, matches)

	first, err := engine.GenerateMatchesForStudent(context.Background(), student.ID)
	if err != nil {
		t.Fatalf("first run: %v", err)
	}
	if len(first) != 1 {
		t.Fatalf("first run created %d matches, want 1", len(first))
	}

	second, err := engine.GenerateMatchesForStudent(context.Background(), student.ID)
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	if len(second) != 0 {
		t.Fatalf("second run created %d matches, want 0", len(second))
	}
	if len(matches.created) != 1 {
		t.Fatalf("store holds %d matches, want 1", len(matches.created))
	}
}

func TestGenerateMatchesSkipsFullInternships(t *testing.T) {
	student, internship := strongPair()
	internship.TotalPositions = 2
	internship.FilledPositions = 2

	students := newFakeStudentRepo(student)
	internships := newFakeInternshipRepo(internship)
	matches := newFakeMatchRepo()
	engine := newTestEngine(students, internships, matches)

	created, err := engine.GenerateMatchesForStudent(context.Background(), student.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(created) != 0 {
		t.Fatalf("expected no matches for a full internship, got %d", len(created))
	}
}

func TestGenerateMatchesSortsByOverallScoreDescending(t *testing.T) {
	student, strong := strongPair()
	weaker := &models.Internship{
		Title:          "Policy Analyst Intern",
		Sector:         "Technology",
		Location:       "Pune",
		RequiredSkills: "Research, Writing",
		TotalPositions: 2,
		IsActive:       true,
	}

	students := newFakeStudentRepo(student)
	internships := newFakeInternshipRepo(strong, weaker)
	matches := newFakeMatchRepo()
	engine := newTestEngine(students, internships, matches)

	created, err := engine.GenerateMatchesForStudent(context.Background(), student.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(created) < 2 {
		t.Fatalf("expected both internships to qualify, got %d matches", len(created))
	}
	for i := 1; i < len(created); i++ {
		if created[i-1].OverallScore < created[i].OverallScore {
			t.Fatalf("matches not sorted descending: %v before %v",
				created[i-1].OverallScore, created[i].OverallScore)
		}
	}
}

func TestGenerateMatchesThresholdBoundary(t *testing.T) {
	// Engineered to land exactly on the threshold: academic 0.2 (weight
	// 0.25), location neutral 0.5 (weight 0.20), sector 1.0 (weight 0.15),
	// skills and affirmative action 0.
	student := &models.Student{
		Name:                "Boundary Case",
		Email:               "boundary@example.com",
		YearOfStudy:         1,
		SectorInterests:     "Technology",
		PMSchemeParticipant: true,
		PreviousInternships: 2,
	}
	internship := &models.Internship{
		Title:                  "Threshold Intern",
		Sector:                 "technology",
		YearOfStudyRequirement: "any",
		TotalPositions:         1,
		IsActive:               true,
	}

	students := newFakeStudentRepo(student)
	internships := newFakeInternshipRepo(internship)
	matches := newFakeMatchRepo()
	engine := newTestEngine(students, internships, matches)

	breakdown := engine.ScorePair(student, internship)
	if math.Abs(breakdown.Overall-MatchThreshold) > 1e-9 {
		t.Fatalf("expected overall at the threshold, got %v", breakdown.Overall)
	}

	created, err := engine.GenerateMatchesForStudent(context.Background(), student.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(created) != 1 {
		t.Fatalf("score meeting the threshold must be included, got %d matches", len(created))
	}
}

func TestGenerateMatchesBelowThresholdExcluded(t *testing.T) {
	// Same shape as the boundary case but with a weak sector signal:
	// academic 0.05 + location 0.10 + sector 0.045 = 0.195 overall.
	student := &models.Student{
		Name:                "Below Threshold",
		Email:               "below@example.com",
		YearOfStudy:         1,
		SectorInterests:     "finance",
		PMSchemeParticipant: true,
		PreviousInternships: 2,
	}
	internship := &models.Internship{
		Title:                  "Weak Fit Intern",
		Sector:                 "Agriculture",
		YearOfStudyRequirement: "any",
		TotalPositions:         1,
		IsActive:               true,
	}

	students := newFakeStudentRepo(student)
	internships := newFakeInternshipRepo(internship)
	matches := newFakeMatchRepo()
	engine := newTestEngine(students, internships, matches)

	created, err := engine.GenerateMatchesForStudent(context.Background(), student.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(created) != 0 {
		t.Fatalf("sub-threshold pair must be excluded, got %d matches", len(created))
	}
}

func TestGenerateMatchesRollsBackOnCommitFailure(t *testing.T) {
	student, internship := strongPair()
	students := newFakeStudentRepo(student)
	internships := newFakeInternshipRepo(internship)
	matches := newFakeMatchRepo()
	matches.failCreate = true
	engine := newTestEngine(students, internships, matches)

	created, err := engine.GenerateMatchesForStudent(context.Background(), student.ID)
	if err == nil {
		t.Fatalf("expected commit failure to surface")
	}
	if len(created) != 0 {
		t.Fatalf("failed batch must yield no matches, got %d", len(created))
	}
	if len(matches.created) != 0 {
		t.Fatalf("failed batch must persist nothing, store holds %d", len(matches.created))
	}
}

func TestGenerateMatchesUnknownStudent(t *testing.T) {
	engine := newTestEngine(newFakeStudentRepo(), newFakeInternshipRepo(), newFakeMatchRepo())

	created, err := engine.GenerateMatchesForStudent(context.Background(), uuid.New())
	if err == nil {
		t.Fatalf("expected not-found error")
	}
	if len(created) != 0 {
		t.Fatalf("unknown student must yield no matches")
	}
}

func TestGenerateAllMatchesIsolatesPerStudentFailures(t *testing.T) {
	good, internship := strongPair()
	broken := &models.Student{
		Name:            "Broken Lookup",
		Email:           "broken@example.com",
		TechnicalSkills: "Python, SQL",
		SectorInterests: "Technology",
	}
	students := newFakeStudentRepo(good, broken)
	students.failIDs[broken.ID] = true
	internships := newFakeInternshipRepo(internship)
	matches := newFakeMatchRepo()
	engine := newTestEngine(students, internships, matches)

	total, err := engine.GenerateAllMatches(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 1 {
		t.Fatalf("total = %d, want 1 from the healthy student", total)
	}

	goodMatches, err := matches.FindByStudent(good.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(goodMatches) != 1 {
		t.Fatalf("healthy student has %d matches, want 1", len(goodMatches))
	}

	// Re-running the whole batch is a no-op for the healthy student.
	total, err = engine.GenerateAllMatches(context.Background())
	if err != nil {
		t.Fatalf("unexpected error on rerun: %v", err)
	}
	if total != 0 {
		t.Fatalf("rerun total = %d, want 0", total)
	}
}

func TestGenerateMatchesHonorsCancellation(t *testing.T) {
	student, internship := strongPair()
	students := newFakeStudentRepo(student)
	internships := newFakeInternshipRepo(internship)
	matches := newFakeMatchRepo()
	engine := newTestEngine(students, internships, matches)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	created, err := engine.GenerateMatchesForStudent(ctx, student.ID)
	if err == nil {
		t.Fatalf("expected context error")
	}
	if len(created) != 0 {
		t.Fatalf("cancelled run must create nothing")
	}
	if len(matches.created) != 0 {
		t.Fatalf("cancelled run must persist nothing")
	}
}
