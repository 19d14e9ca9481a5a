package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"pmportal/internship-matcher/internal/models"
	"pmportal/internship-matcher/internal/repositories"
	"pmportal/internship-matcher/internal/services"
)

type ApplicationHandler struct {
	applications    services.ApplicationService
	applicationRepo repositories.ApplicationRepository
}

func NewApplicationHandler(
	applications services.ApplicationService,
	applicationRepo repositories.ApplicationRepository,
) *ApplicationHandler {
	return &ApplicationHandler{
		applications:    applications,
		applicationRepo: applicationRepo,
	}
}

// HandleApply handles POST /applications
func (h *ApplicationHandler) HandleApply(c *fiber.Ctx) error {
	var req models.ApplyRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	studentID, err := uuid.Parse(req.StudentID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid student_id format",
		})
	}

	internshipID, err := uuid.Parse(req.InternshipID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid internship_id format",
		})
	}

	application, err := h.applications.Apply(studentID, internshipID,
		req.CoverLetter, req.PortfolioURL, req.AdditionalNotes)
	if err != nil {
		return statusError(c, err, "Failed to submit application")
	}

	return c.Status(fiber.StatusCreated).JSON(application)
}

// HandleUpdateStatus handles PATCH /applications/:id/status
func (h *ApplicationHandler) HandleUpdateStatus(c *fiber.Ctx) error {
	applicationID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid application ID format",
		})
	}

	var req models.UpdateApplicationStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if req.Status == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "status is required",
		})
	}

	application, err := h.applications.UpdateStatus(applicationID,
		models.ApplicationStatus(req.Status), req.DepartmentNotes)
	if err != nil {
		return statusError(c, err, "Failed to update application status")
	}

	return c.JSON(application)
}

// HandleListByStudent handles GET /students/:id/applications
func (h *ApplicationHandler) HandleListByStudent(c *fiber.Ctx) error {
	studentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid student ID format",
		})
	}

	applications, err := h.applicationRepo.FindByStudent(studentID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list applications",
		})
	}

	return c.JSON(applications)
}

// HandleListByInternship handles GET /internships/:id/applications
func (h *ApplicationHandler) HandleListByInternship(c *fiber.Ctx) error {
	internshipID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid internship ID format",
		})
	}

	applications, err := h.applicationRepo.FindByInternship(internshipID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list applications",
		})
	}

	return c.JSON(applications)
}
