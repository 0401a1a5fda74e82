package domain

import (
	"time"
)

// DifficultyLevel classifies how hard an exercise is.
type DifficultyLevel string

const (
	DifficultyEasy   DifficultyLevel = "Easy"
	DifficultyMedium DifficultyLevel = "Medium"
	DifficultyHard   DifficultyLevel = "Hard"
)

// IsValid reports whether the difficulty level is one of the known values.
func (d DifficultyLevel) IsValid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// ImageType identifies which exercise field an image illustrates.
type ImageType string

const (
	ImageTypeStatement ImageType = "statement"
	ImageTypeQuestion  ImageType = "question"
	ImageTypeAnswer    ImageType = "answer"
)

// IsValid reports whether the image type is one of the known values.
func (t ImageType) IsValid() bool {
	switch t {
	case ImageTypeStatement, ImageTypeQuestion, ImageTypeAnswer:
		return true
	}
	return false
}

// Exam represents a cataloged exam
type Exam struct {
	ID         string    `json:"id"`
	Subject    string    `json:"subject"`
	SchoolYear string    `json:"schoolYear"`
	ExamYear   int       `json:"examYear"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// Exercise represents a single exercise belonging to an exam.
// OrderNumber is the 1-based position among the exercises of the same exam,
// assigned once at creation and never reassigned.
type Exercise struct {
	ID               string          `json:"id"`
	ExamID           string          `json:"examId"`
	OrderNumber      int             `json:"orderNumber"`
	Topic            string          `json:"topic"`
	Subtopic         string          `json:"subtopic"`
	IsMultipleChoice bool            `json:"isMultipleChoice"`
	CorrectAnswer    string          `json:"correctAnswer,omitempty"`
	DifficultyLevel  DifficultyLevel `json:"difficultyLevel"`
	Statement        string          `json:"statement,omitempty"`
	Question         string          `json:"question"`
	Answer           string          `json:"answer"`
	Images           []ExerciseImage `json:"images"`
}

// ExerciseImage records one stored image of an exercise. Path is a derived
// storage key, not a filesystem path; at most one image exists per type.
type ExerciseImage struct {
	ID         string    `json:"id"`
	ExerciseID string    `json:"exerciseId"`
	Type       ImageType `json:"type"`
	Path       string    `json:"path"`
}

// CreateExamInput holds the caller-supplied fields for a new exam.
type CreateExamInput struct {
	Subject    string
	SchoolYear string
	ExamYear   int
}

// CreateExerciseInput holds the caller-supplied fields for a new exercise.
type CreateExerciseInput struct {
	Topic            string
	Subtopic         string
	IsMultipleChoice bool
	CorrectAnswer    string
	DifficultyLevel  DifficultyLevel
	Statement        string
	Question         string
	Answer           string
}

// Validate validates the exercise input
func (i *CreateExerciseInput) Validate() error {
	if i.Topic == "" {
		return NewValidationError("topic is required")
	}
	if i.Question == "" {
		return NewValidationError("question is required")
	}
	if i.Answer == "" {
		return NewValidationError("answer is required")
	}
	if !i.DifficultyLevel.IsValid() {
		return NewValidationError("difficulty level must be Easy, Medium or Hard")
	}
	return nil
}

// Validate validates the exam input
func (i *CreateExamInput) Validate() error {
	if i.Subject == "" {
		return NewValidationError("subject is required")
	}
	if i.SchoolYear == "" {
		return NewValidationError("school year is required")
	}
	return nil
}
