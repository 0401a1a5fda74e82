package dto

import (
	"io"
	"time"
)

// CreateExamRequest represents the request body for creating an exam
type CreateExamRequest struct {
	Subject    string `json:"subject"`
	SchoolYear string `json:"schoolYear"`
	ExamYear   int    `json:"examYear"`
}

// ExamResponse represents an exam in the API response
type ExamResponse struct {
	ID         string    `json:"id"`
	Subject    string    `json:"subject"`
	SchoolYear string    `json:"schoolYear"`
	ExamYear   int       `json:"examYear"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// CreateExerciseRequest represents the fields of a new exercise
type CreateExerciseRequest struct {
	Topic            string `json:"topic"`
	Subtopic         string `json:"subtopic"`
	IsMultipleChoice bool   `json:"isMultipleChoice"`
	CorrectAnswer    string `json:"correctAnswer,omitempty"`
	DifficultyLevel  string `json:"difficultyLevel"`
	Statement        string `json:"statement,omitempty"`
	Question         string `json:"question"`
	Answer           string `json:"answer"`
}

// ImageUpload carries one uploaded image file. Content is read exactly
// once while persisting.
type ImageUpload struct {
	Filename string
	Content  io.Reader
}

// ExerciseImageUploads holds the optional image slots of a new exercise.
type ExerciseImageUploads struct {
	Statement *ImageUpload
	Question  *ImageUpload
	Answer    *ImageUpload
}

// ExerciseImageResponse represents a stored exercise image in the API response
type ExerciseImageResponse struct {
	ID         string `json:"id"`
	ExerciseID string `json:"exerciseId"`
	Type       string `json:"type"`
	Path       string `json:"path"`
}

// ExerciseResponse represents an exercise in the API response
type ExerciseResponse struct {
	ID               string                  `json:"id"`
	ExamID           string                  `json:"examId"`
	OrderNumber      int                     `json:"orderNumber"`
	Topic            string                  `json:"topic"`
	Subtopic         string                  `json:"subtopic"`
	IsMultipleChoice bool                    `json:"isMultipleChoice"`
	CorrectAnswer    string                  `json:"correctAnswer,omitempty"`
	DifficultyLevel  string                  `json:"difficultyLevel"`
	Statement        string                  `json:"statement,omitempty"`
	Question         string                  `json:"question"`
	Answer           string                  `json:"answer"`
	Images           []ExerciseImageResponse `json:"images"`
}

// MarkdownResponse carries an exam's rendered markdown export
type MarkdownResponse struct {
	ExamID   string `json:"examId"`
	Markdown string `json:"markdown"`
}

// ImageResponse carries a stored image as a base64 data URL
type ImageResponse struct {
	Path    string `json:"path"`
	Content string `json:"content"`
}

// ErrorResponse represents an error in the API response
type ErrorResponse struct {
	Error string `json:"error"`
}
