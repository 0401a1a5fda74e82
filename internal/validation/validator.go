package validation

import (
	"regexp"
	"strings"
	"time"

	"exambook/internal/domain"
	"exambook/internal/dto"
)

// minExamYear is the lower bound of accepted exam years; the upper bound
// is next calendar year.
const minExamYear = 2000

var schoolYearPattern = regexp.MustCompile(`^\d{4}-\d{4}$`)

// Validator provides request validation functionality
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateCreateExamRequest validates the create exam request
func (v *Validator) ValidateCreateExamRequest(req *dto.CreateExamRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(req.Subject) == "" {
		errors = append(errors, domain.NewMissingFieldError("subject"))
	}

	if strings.TrimSpace(req.SchoolYear) == "" {
		errors = append(errors, domain.NewMissingFieldError("schoolYear"))
	} else if !schoolYearPattern.MatchString(req.SchoolYear) {
		errors = append(errors, domain.NewInvalidFormatError("schoolYear", req.SchoolYear))
	}

	maxExamYear := time.Now().Year() + 1
	if req.ExamYear == 0 {
		errors = append(errors, domain.NewMissingFieldError("examYear"))
	} else if req.ExamYear < minExamYear || req.ExamYear > maxExamYear {
		errors = append(errors, domain.NewOutOfRangeError("examYear", req.ExamYear, minExamYear, maxExamYear))
	}

	return errors
}

// ValidateCreateExerciseRequest validates the create exercise request
func (v *Validator) ValidateCreateExerciseRequest(req *dto.CreateExerciseRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(req.Topic) == "" {
		errors = append(errors, domain.NewMissingFieldError("topic"))
	}
	if strings.TrimSpace(req.Subtopic) == "" {
		errors = append(errors, domain.NewMissingFieldError("subtopic"))
	}
	if strings.TrimSpace(req.Question) == "" {
		errors = append(errors, domain.NewMissingFieldError("question"))
	}
	if strings.TrimSpace(req.Answer) == "" {
		errors = append(errors, domain.NewMissingFieldError("answer"))
	}

	if strings.TrimSpace(req.DifficultyLevel) == "" {
		errors = append(errors, domain.NewMissingFieldError("difficultyLevel"))
	} else if !domain.DifficultyLevel(req.DifficultyLevel).IsValid() {
		errors = append(errors, domain.NewInvalidFormatError("difficultyLevel", req.DifficultyLevel))
	}

	if req.IsMultipleChoice && strings.TrimSpace(req.CorrectAnswer) == "" {
		errors = append(errors, domain.NewMissingFieldError("correctAnswer"))
	}

	return errors
}

// ValidateImageType validates an image type path segment
func (v *Validator) ValidateImageType(imageType string) domain.ValidationErrors {
	var errors domain.ValidationErrors
	if !domain.ImageType(imageType).IsValid() {
		errors = append(errors, domain.NewInvalidFormatError("type", imageType))
	}
	return errors
}
