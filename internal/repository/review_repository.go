package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/review360-api/internal/models"
)

// ReviewRepository manages persistence for reviews and their reviewer sets.
type ReviewRepository struct {
	db *sqlx.DB
}

// NewReviewRepository constructs the repository.
func NewReviewRepository(db *sqlx.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

// Create persists a review together with its full reviewer set in a single
// transaction. A failure on any reviewer aborts the whole creation; a partial
// reviewer set is never left behind.
func (r *ReviewRepository) Create(ctx context.Context, review *models.Review, reviewers []models.Reviewer) error {
	if review.ID == "" {
		review.ID = uuid.NewString()
	}
	if review.CreatedAt.IsZero() {
		review.CreatedAt = time.Now().UTC()
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin create review: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	const reviewQuery = `INSERT INTO reviews (id, owner_name, owner_email, reviewee_name, created_at)
VALUES (:id, :owner_name, :owner_email, :reviewee_name, :created_at)`
	if _, err := tx.NamedExecContext(ctx, reviewQuery, review); err != nil {
		return fmt.Errorf("insert review: %w", err)
	}

	const reviewerQuery = `INSERT INTO reviewers (id, review_id, email, category, token, name)
VALUES (:id, :review_id, :email, :category, :token, :name)`
	for i := range reviewers {
		reviewers[i].ReviewID = review.ID
		if reviewers[i].ID == "" {
			reviewers[i].ID = uuid.NewString()
		}
		if _, err := tx.NamedExecContext(ctx, reviewerQuery, reviewers[i]); err != nil {
			return fmt.Errorf("insert reviewer %s: %w", reviewers[i].Email, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit create review: %w", err)
	}
	return nil
}

// FindByID loads a review header by identifier.
func (r *ReviewRepository) FindByID(ctx context.Context, id string) (*models.Review, error) {
	const query = `SELECT id, owner_name, owner_email, reviewee_name, created_at FROM reviews WHERE id = $1`
	var review models.Review
	if err := r.db.GetContext(ctx, &review, query, id); err != nil {
		return nil, err
	}
	return &review, nil
}
