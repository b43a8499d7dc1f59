package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/noah-isme/review360-api/internal/models"
)

// ErrDuplicateResponse signals that the reviewer already has a response. It
// surfaces the storage-level uniqueness constraint on responses.reviewer_id,
// which is the authoritative guard against concurrent double submissions.
var ErrDuplicateResponse = errors.New("response already exists for reviewer")

const uniqueViolation = "23505"

// ResponseRepository manages persistence for submitted responses.
type ResponseRepository struct {
	db *sqlx.DB
}

// NewResponseRepository constructs the repository.
func NewResponseRepository(db *sqlx.DB) *ResponseRepository {
	return &ResponseRepository{db: db}
}

// Submit records a reviewer's one-time response. The display-name update,
// response row and answer rows share a transaction: either all land or none
// do. Two racing submissions for the same reviewer both reach the insert and
// the unique constraint rejects the loser.
func (r *ResponseRepository) Submit(ctx context.Context, reviewerID string, name *string, answers []models.Answer) (*models.Response, error) {
	response := &models.Response{
		ID:          uuid.NewString(),
		ReviewerID:  reviewerID,
		SubmittedAt: time.Now().UTC(),
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin submit: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `UPDATE reviewers SET name = $1 WHERE id = $2`, name, reviewerID); err != nil {
		return nil, fmt.Errorf("update reviewer name: %w", err)
	}

	const responseQuery = `INSERT INTO responses (id, reviewer_id, submitted_at) VALUES ($1, $2, $3)`
	if _, err := tx.ExecContext(ctx, responseQuery, response.ID, response.ReviewerID, response.SubmittedAt); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolation {
			return nil, ErrDuplicateResponse
		}
		return nil, fmt.Errorf("insert response: %w", err)
	}

	const answerQuery = `INSERT INTO response_answers (id, response_id, question_id, rating, comment)
VALUES (:id, :response_id, :question_id, :rating, :comment)`
	for i := range answers {
		answers[i].ResponseID = response.ID
		if answers[i].ID == "" {
			answers[i].ID = uuid.NewString()
		}
		if _, err := tx.NamedExecContext(ctx, answerQuery, answers[i]); err != nil {
			return nil, fmt.Errorf("insert answer for question %d: %w", answers[i].QuestionID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit submit: %w", err)
	}

	response.Answers = answers
	return response, nil
}

// ListByReview loads every submitted response of a review with its answer
// rows attached, keyed for the aggregation pass.
func (r *ResponseRepository) ListByReview(ctx context.Context, reviewID string) ([]models.Response, error) {
	const responseQuery = `
SELECT p.id, p.reviewer_id, p.submitted_at
FROM responses p
JOIN reviewers v ON v.id = p.reviewer_id
WHERE v.review_id = $1
ORDER BY p.submitted_at ASC`
	var responses []models.Response
	if err := r.db.SelectContext(ctx, &responses, responseQuery, reviewID); err != nil {
		return nil, fmt.Errorf("list responses: %w", err)
	}
	if len(responses) == 0 {
		return responses, nil
	}

	const answerQuery = `
SELECT a.id, a.response_id, a.question_id, a.rating, a.comment
FROM response_answers a
JOIN responses p ON p.id = a.response_id
JOIN reviewers v ON v.id = p.reviewer_id
WHERE v.review_id = $1
ORDER BY a.question_id ASC`
	var answers []models.Answer
	if err := r.db.SelectContext(ctx, &answers, answerQuery, reviewID); err != nil {
		return nil, fmt.Errorf("list answers: %w", err)
	}

	byResponse := make(map[string][]models.Answer, len(responses))
	for _, a := range answers {
		byResponse[a.ResponseID] = append(byResponse[a.ResponseID], a)
	}
	for i := range responses {
		responses[i].Answers = byResponse[responses[i].ID]
	}
	return responses, nil
}
