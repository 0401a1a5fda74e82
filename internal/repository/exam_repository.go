package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"exambook/internal/domain"
	"exambook/internal/storage"
	"exambook/internal/util"
)

// examRepository implements domain.ExamRepository over the storage port.
// Both collections are stored as whole JSON arrays and read-modify-written
// on every mutation. Two interleaved creations for the same exam can race
// on order number assignment; last write wins. Acceptable for a
// single-writer catalog.
type examRepository struct {
	storage  domain.Storage
	images   domain.ImageStore
	exporter domain.MarkdownExporter
}

// NewExamRepository creates a new repository on top of the given storage
// port, image store and markdown exporter.
func NewExamRepository(s domain.Storage, images domain.ImageStore, exporter domain.MarkdownExporter) domain.ExamRepository {
	return &examRepository{storage: s, images: images, exporter: exporter}
}

func (r *examRepository) loadExams(ctx context.Context) ([]*domain.Exam, error) {
	raw, err := r.storage.Get(ctx, storage.ExamsKey)
	if errors.Is(err, domain.ErrNoValue) {
		return []*domain.Exam{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load exams: %w", err)
	}

	var exams []*domain.Exam
	if err := json.Unmarshal([]byte(raw), &exams); err != nil {
		return nil, fmt.Errorf("failed to decode exams: %w", err)
	}
	return exams, nil
}

func (r *examRepository) storeExams(ctx context.Context, exams []*domain.Exam) error {
	raw, err := json.Marshal(exams)
	if err != nil {
		return fmt.Errorf("failed to encode exams: %w", err)
	}
	if err := r.storage.Set(ctx, storage.ExamsKey, string(raw)); err != nil {
		return fmt.Errorf("failed to store exams: %w", err)
	}
	return nil
}

func (r *examRepository) loadExercises(ctx context.Context) ([]*domain.Exercise, error) {
	raw, err := r.storage.Get(ctx, storage.ExercisesKey)
	if errors.Is(err, domain.ErrNoValue) {
		return []*domain.Exercise{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load exercises: %w", err)
	}

	var exercises []*domain.Exercise
	if err := json.Unmarshal([]byte(raw), &exercises); err != nil {
		return nil, fmt.Errorf("failed to decode exercises: %w", err)
	}
	return exercises, nil
}

func (r *examRepository) storeExercises(ctx context.Context, exercises []*domain.Exercise) error {
	raw, err := json.Marshal(exercises)
	if err != nil {
		return fmt.Errorf("failed to encode exercises: %w", err)
	}
	if err := r.storage.Set(ctx, storage.ExercisesKey, string(raw)); err != nil {
		return fmt.Errorf("failed to store exercises: %w", err)
	}
	return nil
}

// CreateExam implements domain.ExamRepository
func (r *examRepository) CreateExam(ctx context.Context, input domain.CreateExamInput) (*domain.Exam, error) {
	exams, err := r.loadExams(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	exam := &domain.Exam{
		ID:         util.NewULID(),
		Subject:    input.Subject,
		SchoolYear: input.SchoolYear,
		ExamYear:   input.ExamYear,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	exams = append(exams, exam)
	if err := r.storeExams(ctx, exams); err != nil {
		return nil, err
	}

	// Initial export with zero exercises.
	if err := r.exporter.SaveExamMarkdown(ctx, exam, nil); err != nil {
		return nil, err
	}

	return exam, nil
}

// GetExams implements domain.ExamRepository
func (r *examRepository) GetExams(ctx context.Context) ([]*domain.Exam, error) {
	return r.loadExams(ctx)
}

// GetExamByID implements domain.ExamRepository
func (r *examRepository) GetExamByID(ctx context.Context, id string) (*domain.Exam, error) {
	exams, err := r.loadExams(ctx)
	if err != nil {
		return nil, err
	}
	for _, exam := range exams {
		if exam.ID == id {
			return exam, nil
		}
	}
	return nil, nil
}

// CreateExercise implements domain.ExamRepository.
//
// The order number is computed from the exercise count at call time and is
// not re-validated before the write. Images are persisted before the
// exercise record; if one fails, the creation fails and images already
// written stay behind unreferenced.
func (r *examRepository) CreateExercise(ctx context.Context, examID string, input domain.CreateExerciseInput, images domain.ExerciseImages) (*domain.Exercise, error) {
	exercises, err := r.loadExercises(ctx)
	if err != nil {
		return nil, err
	}

	orderNumber := 1
	for _, exercise := range exercises {
		if exercise.ExamID == examID {
			orderNumber++
		}
	}

	exerciseID := util.NewULID()

	exerciseImages, err := r.saveImages(ctx, examID, exerciseID, images)
	if err != nil {
		return nil, err
	}

	exercise := &domain.Exercise{
		ID:               exerciseID,
		ExamID:           examID,
		OrderNumber:      orderNumber,
		Topic:            input.Topic,
		Subtopic:         input.Subtopic,
		IsMultipleChoice: input.IsMultipleChoice,
		CorrectAnswer:    input.CorrectAnswer,
		DifficultyLevel:  input.DifficultyLevel,
		Statement:        input.Statement,
		Question:         input.Question,
		Answer:           input.Answer,
		Images:           exerciseImages,
	}

	exercises = append(exercises, exercise)
	if err := r.storeExercises(ctx, exercises); err != nil {
		return nil, err
	}

	// Refresh the owning exam's export. Skipped silently when the exam
	// cannot be found; the exercise itself is already persisted.
	exam, err := r.GetExamByID(ctx, examID)
	if err != nil {
		return nil, err
	}
	if exam != nil {
		byExam, err := r.GetExercisesByExamID(ctx, examID)
		if err != nil {
			return nil, err
		}
		if err := r.exporter.SaveExamMarkdown(ctx, exam, byExam); err != nil {
			return nil, err
		}
	}

	return exercise, nil
}

// saveImages persists the present image slots in a fixed order: statement,
// question, answer.
func (r *examRepository) saveImages(ctx context.Context, examID, exerciseID string, images domain.ExerciseImages) ([]domain.ExerciseImage, error) {
	slots := []struct {
		imageType domain.ImageType
		upload    *domain.ImageUpload
	}{
		{domain.ImageTypeStatement, images.Statement},
		{domain.ImageTypeQuestion, images.Question},
		{domain.ImageTypeAnswer, images.Answer},
	}

	saved := []domain.ExerciseImage{}
	for _, slot := range slots {
		if slot.upload == nil {
			continue
		}
		path, err := r.images.SaveImage(ctx, examID, exerciseID, slot.imageType, slot.upload.Filename, slot.upload.Content)
		if err != nil {
			return nil, domain.NewSaveFailedError("Failed to save one or more images", err)
		}
		saved = append(saved, domain.ExerciseImage{
			ID:         util.NewULID(),
			ExerciseID: exerciseID,
			Type:       slot.imageType,
			Path:       path,
		})
	}
	return saved, nil
}

// GetExercisesByExamID implements domain.ExamRepository
func (r *examRepository) GetExercisesByExamID(ctx context.Context, examID string) ([]*domain.Exercise, error) {
	exercises, err := r.loadExercises(ctx)
	if err != nil {
		return nil, err
	}

	byExam := []*domain.Exercise{}
	for _, exercise := range exercises {
		if exercise.ExamID == examID {
			byExam = append(byExam, exercise)
		}
	}
	sort.Slice(byExam, func(i, j int) bool {
		return byExam[i].OrderNumber < byExam[j].OrderNumber
	})
	return byExam, nil
}

// GetExerciseByID implements domain.ExamRepository
func (r *examRepository) GetExerciseByID(ctx context.Context, id string) (*domain.Exercise, error) {
	exercises, err := r.loadExercises(ctx)
	if err != nil {
		return nil, err
	}
	for _, exercise := range exercises {
		if exercise.ID == id {
			return exercise, nil
		}
	}
	return nil, nil
}
