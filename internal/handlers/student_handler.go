package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"pmportal/internship-matcher/internal/models"
	"pmportal/internship-matcher/internal/repositories"
	"pmportal/internship-matcher/internal/services"
)

type StudentHandler struct {
	studentRepo repositories.StudentRepository
	worker      services.Worker
}

func NewStudentHandler(studentRepo repositories.StudentRepository, worker services.Worker) *StudentHandler {
	return &StudentHandler{
		studentRepo: studentRepo,
		worker:      worker,
	}
}

// HandleCreate handles POST /students
func (h *StudentHandler) HandleCreate(c *fiber.Ctx) error {
	var student models.Student
	if err := c.BodyParser(&student); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if student.Name == "" || student.Email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "name and email are required",
		})
	}

	if err := h.studentRepo.Create(&student); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create student",
		})
	}

	// New profile, fresh matches.
	h.worker.EnqueueStudent(student.ID)

	return c.Status(fiber.StatusCreated).JSON(student)
}

// HandleProfileCompleteness handles GET /students/:id/profile-completeness
func (h *StudentHandler) HandleProfileCompleteness(c *fiber.Ctx) error {
	studentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid student ID format",
		})
	}

	student, err := h.studentRepo.FindByID(studentID)
	if err != nil {
		return statusError(c, err, "Failed to load student")
	}

	score, missing := student.ProfileCompleteness()
	return c.JSON(models.ProfileCompletenessResponse{
		StudentID:     studentID.String(),
		Completeness:  score,
		MissingFields: missing,
	})
}
