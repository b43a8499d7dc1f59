package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/review360-api/internal/models"
)

// QuestionRepository reads the seeded question catalog.
type QuestionRepository struct {
	db *sqlx.DB
}

// NewQuestionRepository constructs the repository.
func NewQuestionRepository(db *sqlx.DB) *QuestionRepository {
	return &QuestionRepository{db: db}
}

// ListOrdered returns the full catalog ascending by display order.
func (r *QuestionRepository) ListOrdered(ctx context.Context) ([]models.Question, error) {
	const query = `SELECT id, text, category, display_order, kind FROM questions ORDER BY display_order ASC`
	var questions []models.Question
	if err := r.db.SelectContext(ctx, &questions, query); err != nil {
		return nil, fmt.Errorf("list questions: %w", err)
	}
	return questions, nil
}

// Upsert inserts or refreshes one catalog entry keyed by display order. Used
// by the seeding command only; the catalog is read-only at runtime.
func (r *QuestionRepository) Upsert(ctx context.Context, q models.Question) error {
	const query = `INSERT INTO questions (text, category, display_order, kind)
VALUES ($1, $2, $3, $4)
ON CONFLICT (display_order) DO UPDATE SET text = EXCLUDED.text, category = EXCLUDED.category, kind = EXCLUDED.kind`
	if _, err := r.db.ExecContext(ctx, query, q.Text, q.Category, q.Order, q.Kind); err != nil {
		return fmt.Errorf("upsert question order %d: %w", q.Order, err)
	}
	return nil
}

// Count returns the catalog size.
func (r *QuestionRepository) Count(ctx context.Context) (int, error) {
	var total int
	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM questions"); err != nil {
		return 0, fmt.Errorf("count questions: %w", err)
	}
	return total, nil
}
