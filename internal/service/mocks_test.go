package service

import (
	"context"
	"io"

	"exambook/internal/domain"

	"github.com/stretchr/testify/mock"
)

// --- MockExamRepository ---
type MockExamRepository struct {
	mock.Mock
}

func (m *MockExamRepository) CreateExam(ctx context.Context, input domain.CreateExamInput) (*domain.Exam, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Exam), args.Error(1)
}

func (m *MockExamRepository) GetExams(ctx context.Context) ([]*domain.Exam, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Exam), args.Error(1)
}

func (m *MockExamRepository) GetExamByID(ctx context.Context, id string) (*domain.Exam, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Exam), args.Error(1)
}

func (m *MockExamRepository) CreateExercise(ctx context.Context, examID string, input domain.CreateExerciseInput, images domain.ExerciseImages) (*domain.Exercise, error) {
	args := m.Called(ctx, examID, input, images)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Exercise), args.Error(1)
}

func (m *MockExamRepository) GetExercisesByExamID(ctx context.Context, examID string) ([]*domain.Exercise, error) {
	args := m.Called(ctx, examID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Exercise), args.Error(1)
}

func (m *MockExamRepository) GetExerciseByID(ctx context.Context, id string) (*domain.Exercise, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Exercise), args.Error(1)
}

// --- MockImageStore ---
type MockImageStore struct {
	mock.Mock
}

func (m *MockImageStore) SaveImage(ctx context.Context, examID, exerciseID string, imageType domain.ImageType, filename string, content io.Reader) (string, error) {
	args := m.Called(ctx, examID, exerciseID, imageType, filename, content)
	return args.String(0), args.Error(1)
}

func (m *MockImageStore) GetImage(ctx context.Context, path string) (string, error) {
	args := m.Called(ctx, path)
	return args.String(0), args.Error(1)
}

// --- MockMarkdownExporter ---
type MockMarkdownExporter struct {
	mock.Mock
}

func (m *MockMarkdownExporter) SaveExamMarkdown(ctx context.Context, exam *domain.Exam, exercises []*domain.Exercise) error {
	args := m.Called(ctx, exam, exercises)
	return args.Error(0)
}

func (m *MockMarkdownExporter) GetExamMarkdown(ctx context.Context, examID string) (string, error) {
	args := m.Called(ctx, examID)
	return args.String(0), args.Error(1)
}
