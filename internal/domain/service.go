package domain

import (
	"context"
	"io"
)

// ImageUpload carries the raw content of one image to be persisted.
// Content is consumed exactly once when the image is saved.
type ImageUpload struct {
	Filename string
	Content  io.Reader
}

// ExerciseImages holds the optional image slots of a new exercise.
// Slots are persisted in the order statement, question, answer.
type ExerciseImages struct {
	Statement *ImageUpload
	Question  *ImageUpload
	Answer    *ImageUpload
}

// ExamRepository defines the interface for exam and exercise persistence.
// It is the only component permitted to mutate the two primary collections.
type ExamRepository interface {
	// CreateExam appends a new exam to the collection and writes an initial
	// (empty) markdown export for it.
	CreateExam(ctx context.Context, input CreateExamInput) (*Exam, error)

	// GetExams returns the full exam collection in insertion order.
	GetExams(ctx context.Context) ([]*Exam, error)

	// GetExamByID retrieves an exam by its ID. It returns (nil, nil) when
	// no exam matches.
	GetExamByID(ctx context.Context, id string) (*Exam, error)

	// CreateExercise persists a new exercise together with its images and
	// refreshes the owning exam's markdown export.
	CreateExercise(ctx context.Context, examID string, input CreateExerciseInput, images ExerciseImages) (*Exercise, error)

	// GetExercisesByExamID returns the exercises of an exam sorted
	// ascending by order number.
	GetExercisesByExamID(ctx context.Context, examID string) ([]*Exercise, error)

	// GetExerciseByID retrieves an exercise by its ID. It returns
	// (nil, nil) when no exercise matches.
	GetExerciseByID(ctx context.Context, id string) (*Exercise, error)
}

// ImageStore defines the interface for persisting binary image content in
// a text-only medium.
type ImageStore interface {
	// SaveImage encodes content into a text-safe representation, stores it
	// under a derived path and returns that path.
	SaveImage(ctx context.Context, examID, exerciseID string, imageType ImageType, filename string, content io.Reader) (string, error)

	// GetImage returns the encoded content stored under path.
	// It returns ErrNoValue if no image exists at that path.
	GetImage(ctx context.Context, path string) (string, error)
}

// MarkdownExporter derives a human-readable document from an exam and its
// exercises and persists it as a cache keyed by exam ID. The export is
// never read back by the repository.
type MarkdownExporter interface {
	// SaveExamMarkdown renders and stores the document, unconditionally
	// overwriting any prior rendering.
	SaveExamMarkdown(ctx context.Context, exam *Exam, exercises []*Exercise) error

	// GetExamMarkdown returns the stored document for an exam.
	// It returns ErrNoValue if no export exists.
	GetExamMarkdown(ctx context.Context, examID string) (string, error)
}
