package export

import (
	"context"
	"strings"
	"testing"
	"time"

	"exambook/internal/adapter"
	"exambook/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testExam() *domain.Exam {
	return &domain.Exam{
		ID:         "exam1",
		Subject:    "Math",
		SchoolYear: "2023-2024",
		ExamYear:   2024,
		CreatedAt:  time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC),
		UpdatedAt:  time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC),
	}
}

func TestRenderExamMarkdown_Header(t *testing.T) {
	doc := RenderExamMarkdown(testExam(), nil)

	assert.True(t, strings.HasPrefix(doc, "# Math Exam (2024)\n\n"))
	assert.Contains(t, doc, "School Year: 2023-2024\n")
	assert.Contains(t, doc, "Created: 3/15/2024\n")
	assert.Contains(t, doc, "---\n\n")
}

func TestRenderExamMarkdown_ExerciseSections(t *testing.T) {
	exercises := []*domain.Exercise{
		{
			ID:              "ex1",
			ExamID:          "exam1",
			OrderNumber:     1,
			Topic:           "Algebra",
			Subtopic:        "Equations",
			DifficultyLevel: domain.DifficultyEasy,
			Question:        "Solve x+1=2",
			Answer:          "x=1",
		},
		{
			ID:               "ex2",
			ExamID:           "exam1",
			OrderNumber:      2,
			Topic:            "Geometry",
			Subtopic:         "Triangles",
			DifficultyLevel:  domain.DifficultyHard,
			Statement:        "Consider triangle ABC.",
			Question:         "Which angle is largest?",
			Answer:           "The angle opposite the longest side.",
			IsMultipleChoice: true,
			CorrectAnswer:    "C",
			Images: []domain.ExerciseImage{
				{ID: "img1", ExerciseID: "ex2", Type: domain.ImageTypeQuestion, Path: "/images/exam1/ex2/question/tri.png"},
			},
		},
	}

	doc := RenderExamMarkdown(testExam(), exercises)

	assert.Contains(t, doc, "## Exercise 1\n\n")
	assert.Contains(t, doc, "**Topic:** Algebra\n")
	assert.Contains(t, doc, "**Subtopic:** Equations\n")
	assert.Contains(t, doc, "**Difficulty:** Easy\n\n")
	assert.Contains(t, doc, "### Question\n\nSolve x+1=2\n\n")
	assert.Contains(t, doc, "### Answer\n\nx=1\n\n")

	assert.Contains(t, doc, "## Exercise 2\n\n")
	assert.Contains(t, doc, "### Statement\n\nConsider triangle ABC.\n\n")
	assert.Contains(t, doc, "**Correct Answer:** C\n\n")
	assert.Contains(t, doc, "### Images\n\n- question: /images/exam1/ex2/question/tri.png\n")

	// First exercise has no statement and no correct-answer line.
	first := doc[:strings.Index(doc, "## Exercise 2")]
	assert.NotContains(t, first, "### Statement")
	assert.NotContains(t, first, "**Correct Answer:**")
}

func TestRenderExamMarkdown_Deterministic(t *testing.T) {
	exam := testExam()
	exercises := []*domain.Exercise{
		{OrderNumber: 1, Topic: "Algebra", Subtopic: "Equations", DifficultyLevel: domain.DifficultyEasy, Question: "q", Answer: "a"},
	}

	assert.Equal(t, RenderExamMarkdown(exam, exercises), RenderExamMarkdown(exam, exercises))
}

func TestSaveExamMarkdown_OverwritesAndRoundTrips(t *testing.T) {
	ctx := context.Background()
	store := adapter.NewMemoryStorageAdapter()
	exporter := NewExporter(store)
	exam := testExam()

	require.NoError(t, exporter.SaveExamMarkdown(ctx, exam, nil))
	first, err := exporter.GetExamMarkdown(ctx, exam.ID)
	require.NoError(t, err)
	assert.Contains(t, first, "# Math Exam (2024)")
	assert.NotContains(t, first, "## Exercise 1")

	exercises := []*domain.Exercise{
		{OrderNumber: 1, Topic: "Algebra", Subtopic: "Equations", DifficultyLevel: domain.DifficultyEasy, Question: "q", Answer: "a"},
	}
	require.NoError(t, exporter.SaveExamMarkdown(ctx, exam, exercises))
	second, err := exporter.GetExamMarkdown(ctx, exam.ID)
	require.NoError(t, err)
	assert.Contains(t, second, "## Exercise 1")

	// Saving twice with identical inputs stores byte-identical output.
	require.NoError(t, exporter.SaveExamMarkdown(ctx, exam, exercises))
	third, err := exporter.GetExamMarkdown(ctx, exam.ID)
	require.NoError(t, err)
	assert.Equal(t, second, third)
}

func TestGetExamMarkdown_NotFound(t *testing.T) {
	exporter := NewExporter(adapter.NewMemoryStorageAdapter())
	_, err := exporter.GetExamMarkdown(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrNoValue)
}
