package service

import (
	"context"
	"errors"

	"exambook/internal/domain"
	"exambook/internal/dto"
	"exambook/internal/logger"

	"go.uber.org/zap"
)

// ExamService defines the interface for exam catalog operations as seen by
// the presentation layer.
type ExamService interface {
	CreateExam(ctx context.Context, req *dto.CreateExamRequest) (*dto.ExamResponse, error)
	GetExams(ctx context.Context) ([]*dto.ExamResponse, error)
	GetExamByID(ctx context.Context, id string) (*dto.ExamResponse, error)
	CreateExercise(ctx context.Context, examID string, req *dto.CreateExerciseRequest, images *dto.ExerciseImageUploads) (*dto.ExerciseResponse, error)
	GetExercisesByExamID(ctx context.Context, examID string) ([]*dto.ExerciseResponse, error)
	GetExerciseByID(ctx context.Context, id string) (*dto.ExerciseResponse, error)
	GetExamMarkdown(ctx context.Context, examID string) (*dto.MarkdownResponse, error)
	GetImage(ctx context.Context, path string) (*dto.ImageResponse, error)
}

// examService implements ExamService
type examService struct {
	repo     domain.ExamRepository
	images   domain.ImageStore
	exporter domain.MarkdownExporter
}

// NewExamService creates a new instance of examService
func NewExamService(repo domain.ExamRepository, images domain.ImageStore, exporter domain.MarkdownExporter) ExamService {
	return &examService{repo: repo, images: images, exporter: exporter}
}

// CreateExam implements ExamService
func (s *examService) CreateExam(ctx context.Context, req *dto.CreateExamRequest) (*dto.ExamResponse, error) {
	input := domain.CreateExamInput{
		Subject:    req.Subject,
		SchoolYear: req.SchoolYear,
		ExamYear:   req.ExamYear,
	}

	exam, err := s.repo.CreateExam(ctx, input)
	if err != nil {
		logger.Get().Error("Failed to create exam", zap.Error(err), zap.String("subject", req.Subject))
		return nil, wrapPersistenceError("Failed to save exam", err)
	}

	return toExamResponse(exam), nil
}

// GetExams implements ExamService
func (s *examService) GetExams(ctx context.Context) ([]*dto.ExamResponse, error) {
	exams, err := s.repo.GetExams(ctx)
	if err != nil {
		logger.Get().Error("Failed to list exams", zap.Error(err))
		return nil, domain.NewInternalError("Failed to load exams", err)
	}

	responses := make([]*dto.ExamResponse, 0, len(exams))
	for _, exam := range exams {
		responses = append(responses, toExamResponse(exam))
	}
	return responses, nil
}

// GetExamByID implements ExamService
func (s *examService) GetExamByID(ctx context.Context, id string) (*dto.ExamResponse, error) {
	exam, err := s.repo.GetExamByID(ctx, id)
	if err != nil {
		logger.Get().Error("Failed to get exam", zap.Error(err), zap.String("examID", id))
		return nil, domain.NewInternalError("Failed to load exam", err)
	}
	if exam == nil {
		return nil, domain.NewExamNotFoundError(id)
	}
	return toExamResponse(exam), nil
}

// CreateExercise implements ExamService. The owning exam must exist; the
// original catalog redirected to the exam list in that case.
func (s *examService) CreateExercise(ctx context.Context, examID string, req *dto.CreateExerciseRequest, images *dto.ExerciseImageUploads) (*dto.ExerciseResponse, error) {
	exam, err := s.repo.GetExamByID(ctx, examID)
	if err != nil {
		logger.Get().Error("Failed to get exam", zap.Error(err), zap.String("examID", examID))
		return nil, domain.NewInternalError("Failed to load exam", err)
	}
	if exam == nil {
		return nil, domain.NewExamNotFoundError(examID)
	}

	input := domain.CreateExerciseInput{
		Topic:            req.Topic,
		Subtopic:         req.Subtopic,
		IsMultipleChoice: req.IsMultipleChoice,
		CorrectAnswer:    req.CorrectAnswer,
		DifficultyLevel:  domain.DifficultyLevel(req.DifficultyLevel),
		Statement:        req.Statement,
		Question:         req.Question,
		Answer:           req.Answer,
	}

	exercise, err := s.repo.CreateExercise(ctx, examID, input, toDomainImages(images))
	if err != nil {
		logger.Get().Error("Failed to create exercise", zap.Error(err), zap.String("examID", examID))
		return nil, wrapPersistenceError("Failed to save exercise", err)
	}

	return toExerciseResponse(exercise), nil
}

// GetExercisesByExamID implements ExamService
func (s *examService) GetExercisesByExamID(ctx context.Context, examID string) ([]*dto.ExerciseResponse, error) {
	exercises, err := s.repo.GetExercisesByExamID(ctx, examID)
	if err != nil {
		logger.Get().Error("Failed to list exercises", zap.Error(err), zap.String("examID", examID))
		return nil, domain.NewInternalError("Failed to load exercises", err)
	}

	responses := make([]*dto.ExerciseResponse, 0, len(exercises))
	for _, exercise := range exercises {
		responses = append(responses, toExerciseResponse(exercise))
	}
	return responses, nil
}

// GetExerciseByID implements ExamService
func (s *examService) GetExerciseByID(ctx context.Context, id string) (*dto.ExerciseResponse, error) {
	exercise, err := s.repo.GetExerciseByID(ctx, id)
	if err != nil {
		logger.Get().Error("Failed to get exercise", zap.Error(err), zap.String("exerciseID", id))
		return nil, domain.NewInternalError("Failed to load exercise", err)
	}
	if exercise == nil {
		return nil, domain.NewExerciseNotFoundError(id)
	}
	return toExerciseResponse(exercise), nil
}

// GetExamMarkdown implements ExamService
func (s *examService) GetExamMarkdown(ctx context.Context, examID string) (*dto.MarkdownResponse, error) {
	doc, err := s.exporter.GetExamMarkdown(ctx, examID)
	if errors.Is(err, domain.ErrNoValue) {
		return nil, domain.NewMarkdownNotFoundError(examID)
	}
	if err != nil {
		logger.Get().Error("Failed to get markdown", zap.Error(err), zap.String("examID", examID))
		return nil, domain.NewInternalError("Failed to load markdown", err)
	}
	return &dto.MarkdownResponse{ExamID: examID, Markdown: doc}, nil
}

// GetImage implements ExamService
func (s *examService) GetImage(ctx context.Context, path string) (*dto.ImageResponse, error) {
	content, err := s.images.GetImage(ctx, path)
	if errors.Is(err, domain.ErrNoValue) {
		return nil, domain.NewImageNotFoundError(path)
	}
	if err != nil {
		logger.Get().Error("Failed to get image", zap.Error(err), zap.String("path", path))
		return nil, domain.NewInternalError("Failed to load image", err)
	}
	return &dto.ImageResponse{Path: path, Content: content}, nil
}

// wrapPersistenceError keeps an already-typed domain error and wraps
// everything else as a generic save failure. The cause survives only for
// logging.
func wrapPersistenceError(message string, err error) error {
	var domainErr *domain.DomainError
	if errors.As(err, &domainErr) {
		return domainErr
	}
	return domain.NewSaveFailedError(message, err)
}

func toDomainImages(images *dto.ExerciseImageUploads) domain.ExerciseImages {
	if images == nil {
		return domain.ExerciseImages{}
	}
	return domain.ExerciseImages{
		Statement: toDomainUpload(images.Statement),
		Question:  toDomainUpload(images.Question),
		Answer:    toDomainUpload(images.Answer),
	}
}

func toDomainUpload(upload *dto.ImageUpload) *domain.ImageUpload {
	if upload == nil {
		return nil
	}
	return &domain.ImageUpload{Filename: upload.Filename, Content: upload.Content}
}

func toExamResponse(exam *domain.Exam) *dto.ExamResponse {
	return &dto.ExamResponse{
		ID:         exam.ID,
		Subject:    exam.Subject,
		SchoolYear: exam.SchoolYear,
		ExamYear:   exam.ExamYear,
		CreatedAt:  exam.CreatedAt,
		UpdatedAt:  exam.UpdatedAt,
	}
}

func toExerciseResponse(exercise *domain.Exercise) *dto.ExerciseResponse {
	images := make([]dto.ExerciseImageResponse, 0, len(exercise.Images))
	for _, image := range exercise.Images {
		images = append(images, dto.ExerciseImageResponse{
			ID:         image.ID,
			ExerciseID: image.ExerciseID,
			Type:       string(image.Type),
			Path:       image.Path,
		})
	}
	return &dto.ExerciseResponse{
		ID:               exercise.ID,
		ExamID:           exercise.ExamID,
		OrderNumber:      exercise.OrderNumber,
		Topic:            exercise.Topic,
		Subtopic:         exercise.Subtopic,
		IsMultipleChoice: exercise.IsMultipleChoice,
		CorrectAnswer:    exercise.CorrectAnswer,
		DifficultyLevel:  string(exercise.DifficultyLevel),
		Statement:        exercise.Statement,
		Question:         exercise.Question,
		Answer:           exercise.Answer,
		Images:           images,
	}
}
