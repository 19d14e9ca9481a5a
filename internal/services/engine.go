package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"pmportal/internship-matcher/internal/models"
	"pmportal/internship-matcher/internal/repositories"
)

// MatchThreshold is the minimum overall score for a pair to be persisted
// as a match.
const MatchThreshold = 0.3

// ScoreBreakdown carries the five dimension scores and their weighted sum.
type ScoreBreakdown struct {
	Skills            float64
	Location          float64
	Academic          float64
	AffirmativeAction float64
	Sector            float64
	Overall           float64
}

type MatchingEngine interface {
	GenerateMatchesForStudent(ctx context.Context, studentID uuid.UUID) ([]models.Match, error)
	GenerateAllMatches(ctx context.Context) (int, error)
	ScorePair(student *models.Student, internship *models.Internship) ScoreBreakdown
}

type matchingEngine struct {
	studentRepo    repositories.StudentRepository
	internshipRepo repositories.InternshipRepository
	matchRepo      repositories.MatchRepository
	scorers        []DimensionScorer
	logger         *zap.Logger
}

func NewMatchingEngine(
	studentRepo repositories.StudentRepository,
	internshipRepo repositories.InternshipRepository,
	matchRepo repositories.MatchRepository,
	logger *zap.Logger,
) MatchingEngine {
	return &matchingEngine{
		studentRepo:    studentRepo,
		internshipRepo: internshipRepo,
		matchRepo:      matchRepo,
		scorers:        DefaultScorers(),
		logger:         logger,
	}
}

// ScorePair runs every dimension scorer against the pair and aggregates the
// weighted overall score. No shared state is touched, so concurrent calls
// are safe.
func (e *matchingEngine) ScorePair(student *models.Student, internship *models.Internship) ScoreBreakdown {
	var breakdown ScoreBreakdown

	for _, scorer := range e.scorers {
		score := scorer.Score(student, internship)
		breakdown.Overall += score * scorer.Weight()

		switch scorer.Name() {
		case "skills":
			breakdown.Skills = score
		case "location":
			breakdown.Location = score
		case "academic":
			breakdown.Academic = score
		case "affirmative_action":
			breakdown.AffirmativeAction = score
		case "sector":
			breakdown.Sector = score
		}
	}

	return breakdown
}

// GenerateMatchesForStudent scores the student against every active,
// non-full internship not already matched, persists the qualifying pairs as
// one batch, and returns them best first. Re-running with unchanged data
// creates nothing new.
func (e *matchingEngine) GenerateMatchesForStudent(ctx context.Context, studentID uuid.UUID) ([]models.Match, error) {
	student, err := e.studentRepo.FindByID(studentID)
	if err != nil {
		return nil, fmt.Errorf("failed to load student: %w", err)
	}

	internships, err := e.internshipRepo.FindActive()
	if err != nil {
		return nil, fmt.Errorf("failed to load internships: %w", err)
	}

	var staged []*models.Match
	for i := range internships {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		internship := &internships[i]
		// Capacity check here is an advisory snapshot; the authoritative
		// refusal happens at accept time.
		if internship.IsFull() {
			continue
		}

		exists, err := e.matchRepo.ExistsForPair(studentID, internship.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to check existing match: %w", err)
		}
		if exists {
			continue
		}

		breakdown := e.ScorePair(student, internship)
		if breakdown.Overall < MatchThreshold {
			continue
		}

		staged = append(staged, &models.Match{
			StudentID:              studentID,
			InternshipID:           internship.ID,
			OverallScore:           breakdown.Overall,
			SkillsScore:            breakdown.Skills,
			LocationScore:          breakdown.Location,
			AcademicScore:          breakdown.Academic,
			AffirmativeActionScore: breakdown.AffirmativeAction,
			SectorScore:            breakdown.Sector,
			Status:                 models.MatchPending,
			CreatedAt:              time.Now(),
		})
	}

	if err := e.matchRepo.CreateBatch(staged); err != nil {
		e.logger.Error("match batch rolled back",
			zap.String("student_id", studentID.String()),
			zap.Int("staged", len(staged)),
			zap.Error(err))
		return nil, fmt.Errorf("failed to persist matches: %w", err)
	}

	matches := make([]models.Match, 0, len(staged))
	for _, m := range staged {
		matches = append(matches, *m)
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].OverallScore > matches[j].OverallScore
	})

	e.logger.Info("generated matches",
		zap.String("student_id", studentID.String()),
		zap.Int("created", len(matches)))

	return matches, nil
}

// GenerateAllMatches runs per-student generation for the whole population.
// A failure for one student is logged and skipped; the batch carries on.
func (e *matchingEngine) GenerateAllMatches(ctx context.Context) (int, error) {
	students, err := e.studentRepo.FindAll()
	if err != nil {
		return 0, fmt.Errorf("failed to load students: %w", err)
	}

	total := 0
	for i := range students {
		if err := ctx.Err(); err != nil {
			return total, err
		}

		matches, err := e.GenerateMatchesForStudent(ctx, students[i].ID)
		if err != nil {
			e.logger.Warn("skipping student in bulk generation",
				zap.String("student_id", students[i].ID.String()),
				zap.Error(err))
			continue
		}
		total += len(matches)
	}

	e.logger.Info("bulk generation finished",
		zap.Int("students", len(students)),
		zap.Int("total_matches", total))

	return total, nil
}
