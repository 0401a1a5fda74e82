package handler

import (
	"mime/multipart"
	"strconv"

	"exambook/internal/dto"
	"exambook/internal/service"
	"exambook/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// ExamHandler handles exam catalog HTTP requests
type ExamHandler struct {
	service   service.ExamService
	validator *validation.Validator
}

// NewExamHandler creates a new ExamHandler instance
func NewExamHandler(service service.ExamService, validator *validation.Validator) *ExamHandler {
	return &ExamHandler{
		service:   service,
		validator: validator,
	}
}

// CreateExam handles POST /api/exams
func (h *ExamHandler) CreateExam(c *fiber.Ctx) error {
	var req dto.CreateExamRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	if errs := h.validator.ValidateCreateExamRequest(&req); len(errs) > 0 {
		return errs
	}

	resp, err := h.service.CreateExam(c.UserContext(), &req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// GetExams handles GET /api/exams
func (h *ExamHandler) GetExams(c *fiber.Ctx) error {
	resp, err := h.service.GetExams(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// GetExamByID handles GET /api/exams/:id
func (h *ExamHandler) GetExamByID(c *fiber.Ctx) error {
	resp, err := h.service.GetExamByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// CreateExercise handles POST /api/exams/:id/exercises. The body is
// multipart form data: text fields plus up to three image files named
// statement_image, question_image and answer_image.
func (h *ExamHandler) CreateExercise(c *fiber.Ctx) error {
	isMultipleChoice, _ := strconv.ParseBool(c.FormValue("isMultipleChoice"))
	req := dto.CreateExerciseRequest{
		Topic:            c.FormValue("topic"),
		Subtopic:         c.FormValue("subtopic"),
		IsMultipleChoice: isMultipleChoice,
		CorrectAnswer:    c.FormValue("correctAnswer"),
		DifficultyLevel:  c.FormValue("difficultyLevel"),
		Statement:        c.FormValue("statement"),
		Question:         c.FormValue("question"),
		Answer:           c.FormValue("answer"),
	}

	if errs := h.validator.ValidateCreateExerciseRequest(&req); len(errs) > 0 {
		return errs
	}

	var uploads dto.ExerciseImageUploads
	var openFiles []multipart.File
	defer func() {
		for _, f := range openFiles {
			f.Close()
		}
	}()

	for _, slot := range []struct {
		field  string
		target **dto.ImageUpload
	}{
		{"statement_image", &uploads.Statement},
		{"question_image", &uploads.Question},
		{"answer_image", &uploads.Answer},
	} {
		header, err := c.FormFile(slot.field)
		if err != nil {
			// Slot not supplied.
			continue
		}
		file, err := header.Open()
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Failed to open uploaded file")
		}
		openFiles = append(openFiles, file)
		*slot.target = &dto.ImageUpload{Filename: header.Filename, Content: file}
	}

	resp, err := h.service.CreateExercise(c.UserContext(), c.Params("id"), &req, &uploads)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// GetExercisesByExamID handles GET /api/exams/:id/exercises
func (h *ExamHandler) GetExercisesByExamID(c *fiber.Ctx) error {
	resp, err := h.service.GetExercisesByExamID(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// GetExerciseByID handles GET /api/exercises/:id
func (h *ExamHandler) GetExerciseByID(c *fiber.Ctx) error {
	resp, err := h.service.GetExerciseByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// GetExamMarkdown handles GET /api/exams/:id/markdown
func (h *ExamHandler) GetExamMarkdown(c *fiber.Ctx) error {
	resp, err := h.service.GetExamMarkdown(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// GetImage handles GET /api/images/*. The wildcard is the stored image
// path without its /images prefix.
func (h *ExamHandler) GetImage(c *fiber.Ctx) error {
	path := "/images/" + c.Params("*")
	resp, err := h.service.GetImage(c.UserContext(), path)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}
