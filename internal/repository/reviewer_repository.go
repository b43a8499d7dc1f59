package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/review360-api/internal/dto"
	"github.com/noah-isme/review360-api/internal/models"
)

// ReviewerRepository resolves reviewers and their submission state.
type ReviewerRepository struct {
	db *sqlx.DB
}

// NewReviewerRepository constructs the repository.
func NewReviewerRepository(db *sqlx.DB) *ReviewerRepository {
	return &ReviewerRepository{db: db}
}

// FindByToken resolves a reviewer by its single-use token. The token column
// carries a global uniqueness constraint, so at most one row can match.
func (r *ReviewerRepository) FindByToken(ctx context.Context, token string) (*models.Reviewer, error) {
	const query = `SELECT id, review_id, email, category, token, name FROM reviewers WHERE token = $1`
	var reviewer models.Reviewer
	if err := r.db.GetContext(ctx, &reviewer, query, token); err != nil {
		return nil, err
	}
	return &reviewer, nil
}

// HasResponse reports whether the reviewer already submitted.
func (r *ReviewerRepository) HasResponse(ctx context.Context, reviewerID string) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM responses WHERE reviewer_id = $1)`
	var exists bool
	if err := r.db.GetContext(ctx, &exists, query, reviewerID); err != nil {
		return false, fmt.Errorf("check response existence: %w", err)
	}
	return exists, nil
}

// ListByReview returns all reviewers of a review.
func (r *ReviewerRepository) ListByReview(ctx context.Context, reviewID string) ([]models.Reviewer, error) {
	const query = `SELECT id, review_id, email, category, token, name FROM reviewers WHERE review_id = $1 ORDER BY email ASC`
	var reviewers []models.Reviewer
	if err := r.db.SelectContext(ctx, &reviewers, query, reviewID); err != nil {
		return nil, fmt.Errorf("list reviewers: %w", err)
	}
	return reviewers, nil
}

// ListStatuses projects the organizer manage view: one row per reviewer with
// its token and submission flag.
func (r *ReviewerRepository) ListStatuses(ctx context.Context, reviewID string) ([]dto.ReviewerStatus, error) {
	const query = `
SELECT
	v.id,
	v.email,
	v.category,
	v.token,
	EXISTS (SELECT 1 FROM responses p WHERE p.reviewer_id = v.id) AS has_submitted
FROM reviewers v
WHERE v.review_id = $1
ORDER BY v.email ASC`
	var statuses []dto.ReviewerStatus
	if err := r.db.SelectContext(ctx, &statuses, query, reviewID); err != nil {
		return nil, fmt.Errorf("list reviewer statuses: %w", err)
	}
	return statuses, nil
}
