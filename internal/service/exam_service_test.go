package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"exambook/internal/domain"
	"exambook/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newServiceWithMocks() (ExamService, *MockExamRepository, *MockImageStore, *MockMarkdownExporter) {
	repo := new(MockExamRepository)
	images := new(MockImageStore)
	exporter := new(MockMarkdownExporter)
	return NewExamService(repo, images, exporter), repo, images, exporter
}

func TestCreateExam(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		svc, repo, _, _ := newServiceWithMocks()
		now := time.Now()
		exam := &domain.Exam{ID: "e1", Subject: "Math", SchoolYear: "2023-2024", ExamYear: 2024, CreatedAt: now, UpdatedAt: now}
		repo.On("CreateExam", ctx, domain.CreateExamInput{Subject: "Math", SchoolYear: "2023-2024", ExamYear: 2024}).Return(exam, nil)

		resp, err := svc.CreateExam(ctx, &dto.CreateExamRequest{Subject: "Math", SchoolYear: "2023-2024", ExamYear: 2024})
		require.NoError(t, err)
		assert.Equal(t, "e1", resp.ID)
		assert.Equal(t, "Math", resp.Subject)
		repo.AssertExpectations(t)
	})

	t.Run("PersistenceFailure", func(t *testing.T) {
		svc, repo, _, _ := newServiceWithMocks()
		repo.On("CreateExam", ctx, mock.Anything).Return(nil, errors.New("quota exceeded"))

		_, err := svc.CreateExam(ctx, &dto.CreateExamRequest{Subject: "Math", SchoolYear: "2023-2024", ExamYear: 2024})
		require.Error(t, err)

		var domainErr *domain.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, domain.CodeSaveFailed, domainErr.Code)
		// The cause detail is not leaked into the message.
		assert.NotContains(t, domainErr.Message, "quota")
	})
}

func TestGetExamByID(t *testing.T) {
	ctx := context.Background()

	t.Run("Found", func(t *testing.T) {
		svc, repo, _, _ := newServiceWithMocks()
		repo.On("GetExamByID", ctx, "e1").Return(&domain.Exam{ID: "e1", Subject: "Math"}, nil)

		resp, err := svc.GetExamByID(ctx, "e1")
		require.NoError(t, err)
		assert.Equal(t, "Math", resp.Subject)
	})

	t.Run("NotFound", func(t *testing.T) {
		svc, repo, _, _ := newServiceWithMocks()
		repo.On("GetExamByID", ctx, "missing").Return(nil, nil)

		_, err := svc.GetExamByID(ctx, "missing")
		var domainErr *domain.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, domain.CodeExamNotFound, domainErr.Code)
	})
}

func TestCreateExercise(t *testing.T) {
	ctx := context.Background()
	req := &dto.CreateExerciseRequest{
		Topic:           "Algebra",
		Subtopic:        "Equations",
		DifficultyLevel: "Easy",
		Question:        "Solve x+1=2",
		Answer:          "x=1",
	}

	t.Run("Success", func(t *testing.T) {
		svc, repo, _, _ := newServiceWithMocks()
		repo.On("GetExamByID", ctx, "e1").Return(&domain.Exam{ID: "e1"}, nil)
		exercise := &domain.Exercise{ID: "x1", ExamID: "e1", OrderNumber: 1, Topic: "Algebra", Images: []domain.ExerciseImage{}}
		repo.On("CreateExercise", ctx, "e1", mock.Anything, domain.ExerciseImages{}).Return(exercise, nil)

		resp, err := svc.CreateExercise(ctx, "e1", req, nil)
		require.NoError(t, err)
		assert.Equal(t, 1, resp.OrderNumber)
		assert.NotNil(t, resp.Images)
		assert.Empty(t, resp.Images)
		repo.AssertExpectations(t)
	})

	t.Run("ExamNotFound", func(t *testing.T) {
		svc, repo, _, _ := newServiceWithMocks()
		repo.On("GetExamByID", ctx, "ghost").Return(nil, nil)

		_, err := svc.CreateExercise(ctx, "ghost", req, nil)
		var domainErr *domain.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, domain.CodeExamNotFound, domainErr.Code)
		repo.AssertNotCalled(t, "CreateExercise", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("RepositoryErrorKeepsDomainCode", func(t *testing.T) {
		svc, repo, _, _ := newServiceWithMocks()
		repo.On("GetExamByID", ctx, "e1").Return(&domain.Exam{ID: "e1"}, nil)
		saveErr := domain.NewSaveFailedError("Failed to save one or more images", errors.New("boom"))
		repo.On("CreateExercise", ctx, "e1", mock.Anything, mock.Anything).Return(nil, saveErr)

		_, err := svc.CreateExercise(ctx, "e1", req, nil)
		var domainErr *domain.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, domain.CodeSaveFailed, domainErr.Code)
		assert.Equal(t, "Failed to save one or more images", domainErr.Message)
	})
}

func TestGetExerciseByID_NotFound(t *testing.T) {
	ctx := context.Background()
	svc, repo, _, _ := newServiceWithMocks()
	repo.On("GetExerciseByID", ctx, "missing").Return(nil, nil)

	_, err := svc.GetExerciseByID(ctx, "missing")
	var domainErr *domain.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.CodeExerciseNotFound, domainErr.Code)
}

func TestGetExamMarkdown(t *testing.T) {
	ctx := context.Background()

	t.Run("Found", func(t *testing.T) {
		svc, _, _, exporter := newServiceWithMocks()
		exporter.On("GetExamMarkdown", ctx, "e1").Return("# Math Exam (2024)", nil)

		resp, err := svc.GetExamMarkdown(ctx, "e1")
		require.NoError(t, err)
		assert.Equal(t, "e1", resp.ExamID)
		assert.Contains(t, resp.Markdown, "# Math Exam (2024)")
	})

	t.Run("NotFound", func(t *testing.T) {
		svc, _, _, exporter := newServiceWithMocks()
		exporter.On("GetExamMarkdown", ctx, "missing").Return("", domain.ErrNoValue)

		_, err := svc.GetExamMarkdown(ctx, "missing")
		var domainErr *domain.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, domain.CodeMarkdownNotFound, domainErr.Code)
	})
}

func TestGetImage(t *testing.T) {
	ctx := context.Background()
	path := "/images/e1/x1/question/fig.png"

	t.Run("Found", func(t *testing.T) {
		svc, _, images, _ := newServiceWithMocks()
		images.On("GetImage", ctx, path).Return("data:image/png;base64,AAAA", nil)

		resp, err := svc.GetImage(ctx, path)
		require.NoError(t, err)
		assert.Equal(t, path, resp.Path)
		assert.Equal(t, "data:image/png;base64,AAAA", resp.Content)
	})

	t.Run("NotFound", func(t *testing.T) {
		svc, _, images, _ := newServiceWithMocks()
		images.On("GetImage", ctx, path).Return("", domain.ErrNoValue)

		_, err := svc.GetImage(ctx, path)
		var domainErr *domain.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, domain.CodeImageNotFound, domainErr.Code)
	})
}
