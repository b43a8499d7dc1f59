package main

import (
	"context"
	"log"
	"time"

	"github.com/noah-isme/review360-api/internal/models"
	"github.com/noah-isme/review360-api/internal/repository"
	"github.com/noah-isme/review360-api/pkg/config"
	"github.com/noah-isme/review360-api/pkg/database"
	"github.com/noah-isme/review360-api/pkg/logger"
)

// catalog is the fixed questionnaire. The closing question is the only
// comment-only entry; it carries an explicit kind instead of being inferred
// from its position.
var catalog = []models.Question{
	{Text: "Demonstrates clear vision and strategic thinking", Category: "Leadership & Vision", Order: 1, Kind: models.QuestionKindRated},
	{Text: "Inspires and motivates others", Category: "Leadership & Vision", Order: 2, Kind: models.QuestionKindRated},
	{Text: "Makes effective decisions under pressure", Category: "Leadership & Vision", Order: 3, Kind: models.QuestionKindRated},
	{Text: "Communicates clearly and effectively", Category: "Communication & Collaboration", Order: 4, Kind: models.QuestionKindRated},
	{Text: "Actively listens to others' perspectives", Category: "Communication & Collaboration", Order: 5, Kind: models.QuestionKindRated},
	{Text: "Collaborates well across teams", Category: "Communication & Collaboration", Order: 6, Kind: models.QuestionKindRated},
	{Text: "Provides constructive feedback", Category: "Communication & Collaboration", Order: 7, Kind: models.QuestionKindRated},
	{Text: "Consistently delivers high-quality work", Category: "Performance & Results", Order: 8, Kind: models.QuestionKindRated},
	{Text: "Meets deadlines and commitments", Category: "Performance & Results", Order: 9, Kind: models.QuestionKindRated},
	{Text: "Takes initiative and ownership", Category: "Performance & Results", Order: 10, Kind: models.QuestionKindRated},
	{Text: "Continuously learns and develops new skills", Category: "Professional Development", Order: 11, Kind: models.QuestionKindRated},
	{Text: "Adapts well to change", Category: "Professional Development", Order: 12, Kind: models.QuestionKindRated},
	{Text: "Shares knowledge with others", Category: "Professional Development", Order: 13, Kind: models.QuestionKindRated},
	{Text: "Builds positive working relationships", Category: "Interpersonal Skills", Order: 14, Kind: models.QuestionKindRated},
	{Text: "Shows respect and empathy", Category: "Interpersonal Skills", Order: 15, Kind: models.QuestionKindRated},
	{Text: "Handles conflicts constructively", Category: "Interpersonal Skills", Order: 16, Kind: models.QuestionKindRated},
	{Text: "Overall effectiveness in their role", Category: "Overall Assessment", Order: 17, Kind: models.QuestionKindRated},
	{Text: "What are the key areas for development? (Please provide specific examples)", Category: "Overall Assessment", Order: 18, Kind: models.QuestionKindCommentOnly},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Sugar().Fatalw("failed to connect database", "error", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := database.EnsureSchema(ctx, db); err != nil {
		logr.Sugar().Fatalw("failed to ensure schema", "error", err)
	}

	repo := repository.NewQuestionRepository(db)
	for _, question := range catalog {
		if err := repo.Upsert(ctx, question); err != nil {
			logr.Sugar().Fatalw("failed to seed question", "order", question.Order, "error", err)
		}
	}

	total, err := repo.Count(ctx)
	if err != nil {
		logr.Sugar().Fatalw("failed to count questions", "error", err)
	}

	logr.Sugar().Infow("catalog seeded", "questions", total)
}
