package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"pmportal/internship-matcher/internal/models"
	"pmportal/internship-matcher/internal/repositories"
)

type InternshipHandler struct {
	internshipRepo repositories.InternshipRepository
}

func NewInternshipHandler(internshipRepo repositories.InternshipRepository) *InternshipHandler {
	return &InternshipHandler{internshipRepo: internshipRepo}
}

// HandleCreate handles POST /internships
func (h *InternshipHandler) HandleCreate(c *fiber.Ctx) error {
	var req models.CreateInternshipRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if req.Title == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "title is required",
		})
	}

	departmentID, err := uuid.Parse(req.DepartmentID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid department_id format",
		})
	}

	totalPositions := req.TotalPositions
	if totalPositions <= 0 {
		totalPositions = 1
	}

	internship := &models.Internship{
		DepartmentID:           departmentID,
		Title:                  req.Title,
		Description:            req.Description,
		Sector:                 req.Sector,
		Location:               req.Location,
		RequiredSkills:         req.RequiredSkills,
		PreferredCourse:        req.PreferredCourse,
		MinCGPA:                req.MinCGPA,
		YearOfStudyRequirement: req.YearOfStudyRequirement,
		TotalPositions:         totalPositions,
		DurationMonths:         req.DurationMonths,
		Stipend:                req.Stipend,
		RuralQuota:             req.RuralQuota,
		SCQuota:                req.SCQuota,
		STQuota:                req.STQuota,
		OBCQuota:               req.OBCQuota,
		IsActive:               true,
	}

	if err := h.internshipRepo.Create(internship); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create internship",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(internship)
}

// HandleListActive handles GET /internships
func (h *InternshipHandler) HandleListActive(c *fiber.Ctx) error {
	internships, err := h.internshipRepo.FindActive()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list internships",
		})
	}

	return c.JSON(internships)
}
