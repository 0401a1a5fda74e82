package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"exambook/internal/adapter"
	"exambook/internal/config"
	"exambook/internal/database"
	"exambook/internal/domain"
	"exambook/internal/export"
	"exambook/internal/imagestore"
	"exambook/internal/logger"
	"exambook/internal/repository"

	"go.uber.org/zap"
)

const seedFilePath = "configs/seed_data/sample_exams.json"

type seedExercise struct {
	Topic            string `json:"topic"`
	Subtopic         string `json:"subtopic"`
	IsMultipleChoice bool   `json:"isMultipleChoice"`
	CorrectAnswer    string `json:"correctAnswer"`
	DifficultyLevel  string `json:"difficultyLevel"`
	Statement        string `json:"statement"`
	Question         string `json:"question"`
	Answer           string `json:"answer"`
}

type seedExam struct {
	Subject    string         `json:"subject"`
	SchoolYear string         `json:"schoolYear"`
	ExamYear   int            `json:"examYear"`
	Exercises  []seedExercise `json:"exercises"`
}

func main() {
	ctx := context.Background()
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	log := logger.Get()

	log.Info("Starting initial data seeding process...")

	if cfg.Storage.Backend != "sqlite" {
		log.Fatal("Seeding only supports the sqlite backend", zap.String("backend", cfg.Storage.Backend))
	}
	db, err := database.NewSQLXSQLiteDB(cfg.Storage.SQLite.Path)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	store := adapter.NewSQLiteStorageAdapter(db)
	repo := repository.NewExamRepository(store, imagestore.NewStore(store), export.NewExporter(store))

	raw, err := os.ReadFile(seedFilePath)
	if err != nil {
		log.Fatal("Failed to read seed file", zap.String("path", seedFilePath), zap.Error(err))
	}

	var exams []seedExam
	if err := json.Unmarshal(raw, &exams); err != nil {
		log.Fatal("Failed to parse seed file", zap.Error(err))
	}

	for _, se := range exams {
		examInput := domain.CreateExamInput{
			Subject:    se.Subject,
			SchoolYear: se.SchoolYear,
			ExamYear:   se.ExamYear,
		}
		if err := examInput.Validate(); err != nil {
			log.Fatal("Invalid exam in seed file", zap.String("subject", se.Subject), zap.Error(err))
		}
		exam, err := repo.CreateExam(ctx, examInput)
		if err != nil {
			log.Fatal("Failed to seed exam", zap.String("subject", se.Subject), zap.Error(err))
		}
		log.Info("Seeded exam", zap.String("id", exam.ID), zap.String("subject", exam.Subject))

		for _, sx := range se.Exercises {
			exerciseInput := domain.CreateExerciseInput{
				Topic:            sx.Topic,
				Subtopic:         sx.Subtopic,
				IsMultipleChoice: sx.IsMultipleChoice,
				CorrectAnswer:    sx.CorrectAnswer,
				DifficultyLevel:  domain.DifficultyLevel(sx.DifficultyLevel),
				Statement:        sx.Statement,
				Question:         sx.Question,
				Answer:           sx.Answer,
			}
			if err := exerciseInput.Validate(); err != nil {
				log.Fatal("Invalid exercise in seed file", zap.String("topic", sx.Topic), zap.Error(err))
			}
			exercise, err := repo.CreateExercise(ctx, exam.ID, exerciseInput, domain.ExerciseImages{})
			if err != nil {
				log.Fatal("Failed to seed exercise", zap.String("topic", sx.Topic), zap.Error(err))
			}
			log.Info("Seeded exercise", zap.String("id", exercise.ID), zap.Int("orderNumber", exercise.OrderNumber))
		}
	}

	log.Info("Seeding completed successfully")
}
