package export

import (
	"context"
	"fmt"
	"strings"

	"exambook/internal/domain"
	"exambook/internal/storage"
)

// Exporter renders exam documents to markdown and persists them as a
// cache keyed by exam ID. It implements domain.MarkdownExporter. The
// stored document is a user-facing artifact only; the repository never
// reads it back.
type Exporter struct {
	storage domain.Storage
}

// NewExporter creates a new markdown exporter on top of the given storage
// port.
func NewExporter(s domain.Storage) domain.MarkdownExporter {
	return &Exporter{storage: s}
}

// SaveExamMarkdown renders the document and stores it, unconditionally
// overwriting any prior rendering.
func (e *Exporter) SaveExamMarkdown(ctx context.Context, exam *domain.Exam, exercises []*domain.Exercise) error {
	doc := RenderExamMarkdown(exam, exercises)
	if err := e.storage.Set(ctx, storage.MarkdownKey(exam.ID), doc); err != nil {
		return fmt.Errorf("failed to save markdown for exam %s: %w", exam.ID, err)
	}
	return nil
}

// GetExamMarkdown returns the stored document for an exam, or
// domain.ErrNoValue if none exists.
func (e *Exporter) GetExamMarkdown(ctx context.Context, examID string) (string, error) {
	return e.storage.Get(ctx, storage.MarkdownKey(examID))
}

// createdDateLayout matches the short date the original catalog printed in
// the document header.
const createdDateLayout = "1/2/2006"

// RenderExamMarkdown produces the document for an exam and its exercises.
// It is a pure function of its inputs: identical inputs yield
// byte-identical output.
func RenderExamMarkdown(exam *domain.Exam, exercises []*domain.Exercise) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s Exam (%d)\n\n", exam.Subject, exam.ExamYear)
	fmt.Fprintf(&b, "School Year: %s\n", exam.SchoolYear)
	fmt.Fprintf(&b, "Created: %s\n\n", exam.CreatedAt.Format(createdDateLayout))
	b.WriteString("---\n\n")

	for _, exercise := range exercises {
		renderExercise(&b, exercise)
	}

	return b.String()
}

func renderExercise(b *strings.Builder, exercise *domain.Exercise) {
	fmt.Fprintf(b, "## Exercise %d\n\n", exercise.OrderNumber)
	fmt.Fprintf(b, "**Topic:** %s\n", exercise.Topic)
	fmt.Fprintf(b, "**Subtopic:** %s\n", exercise.Subtopic)
	fmt.Fprintf(b, "**Difficulty:** %s\n\n", exercise.DifficultyLevel)

	if exercise.Statement != "" {
		fmt.Fprintf(b, "### Statement\n\n%s\n\n", exercise.Statement)
	}

	fmt.Fprintf(b, "### Question\n\n%s\n\n", exercise.Question)

	if exercise.IsMultipleChoice {
		fmt.Fprintf(b, "**Correct Answer:** %s\n\n", exercise.CorrectAnswer)
	}

	fmt.Fprintf(b, "### Answer\n\n%s\n\n", exercise.Answer)

	if len(exercise.Images) > 0 {
		b.WriteString("### Images\n\n")
		for _, image := range exercise.Images {
			fmt.Fprintf(b, "- %s: %s\n", image.Type, image.Path)
		}
	}

	b.WriteString("---\n\n")
}
