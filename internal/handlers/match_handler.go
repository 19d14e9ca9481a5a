package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"pmportal/internship-matcher/internal/models"
	"pmportal/internship-matcher/internal/repositories"
	"pmportal/internship-matcher/internal/services"
)

type MatchHandler struct {
	engine    services.MatchingEngine
	matchRepo repositories.MatchRepository
}

func NewMatchHandler(engine services.MatchingEngine, matchRepo repositories.MatchRepository) *MatchHandler {
	return &MatchHandler{
		engine:    engine,
		matchRepo: matchRepo,
	}
}

// HandleGenerateForStudent handles POST /students/:id/matches/generate
func (h *MatchHandler) HandleGenerateForStudent(c *fiber.Ctx) error {
	studentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid student ID format",
		})
	}

	matches, err := h.engine.GenerateMatchesForStudent(c.Context(), studentID)
	if err != nil {
		return statusError(c, err, "Failed to generate matches")
	}

	return c.JSON(models.GenerateMatchesResponse{
		StudentID: studentID.String(),
		Created:   len(matches),
		Matches:   matches,
	})
}

// HandleListForStudent handles GET /students/:id/matches
func (h *MatchHandler) HandleListForStudent(c *fiber.Ctx) error {
	studentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid student ID format",
		})
	}

	matches, err := h.matchRepo.FindByStudent(studentID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list matches",
		})
	}

	return c.JSON(matches)
}

// HandleGenerateAll handles POST /matches/generate-all
func (h *MatchHandler) HandleGenerateAll(c *fiber.Ctx) error {
	total, err := h.engine.GenerateAllMatches(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to generate matches",
		})
	}

	return c.JSON(models.GenerateAllMatchesResponse{TotalMatches: total})
}
