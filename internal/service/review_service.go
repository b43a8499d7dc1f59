package service

import (
	"context"
	"crypto/rand"
	"database/sql"
	"encoding/hex"
	"fmt"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/review360-api/internal/dto"
	"github.com/noah-isme/review360-api/internal/models"
	appErrors "github.com/noah-isme/review360-api/pkg/errors"
)

// tokenBytes sizes the reviewer access token. 32 random bytes hex-encoded is
// the entire authorization model, so it must stay unguessable.
const tokenBytes = 32

type reviewStore interface {
	Create(ctx context.Context, review *models.Review, reviewers []models.Reviewer) error
	FindByID(ctx context.Context, id string) (*models.Review, error)
}

type reviewerStatusLister interface {
	ListStatuses(ctx context.Context, reviewID string) ([]dto.ReviewerStatus, error)
}

// ReviewService orchestrates review creation and the organizer manage view.
type ReviewService struct {
	repo      reviewStore
	reviewers reviewerStatusLister
	validator *validator.Validate
	logger    *zap.Logger
}

// NewReviewService builds a ReviewService with sane defaults.
func NewReviewService(repo reviewStore, reviewers reviewerStatusLister, validate *validator.Validate, logger *zap.Logger) *ReviewService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReviewService{repo: repo, reviewers: reviewers, validator: validate, logger: logger}
}

// Create persists a review with its full reviewer set, assigning each
// reviewer a freshly generated token. The returned tokens are what the
// organizer turns into shareable links.
func (s *ReviewService) Create(ctx context.Context, req dto.CreateReviewRequest) (*dto.CreateReviewResult, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "missing required fields")
	}

	review := &models.Review{
		OwnerName:    req.OwnerName,
		OwnerEmail:   req.OwnerEmail,
		RevieweeName: req.RevieweeName,
	}

	reviewers := make([]models.Reviewer, 0, len(req.Reviewers))
	for _, input := range req.Reviewers {
		token, err := generateToken()
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to generate reviewer token")
		}
		reviewers = append(reviewers, models.Reviewer{
			Email:    input.Email,
			Category: input.Category,
			Token:    token,
		})
	}

	if err := s.repo.Create(ctx, review, reviewers); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create review")
	}

	s.logger.Info("review created",
		zap.String("review_id", review.ID),
		zap.Int("reviewer_count", len(reviewers)),
	)

	result := &dto.CreateReviewResult{ReviewID: review.ID}
	for _, reviewer := range reviewers {
		result.Reviewers = append(result.Reviewers, dto.CreatedReviewer{
			ID:       reviewer.ID,
			Email:    reviewer.Email,
			Category: reviewer.Category,
			Token:    reviewer.Token,
		})
	}
	return result, nil
}

// Overview returns the organizer manage view: review header plus all
// reviewers with their tokens and submission flags.
func (s *ReviewService) Overview(ctx context.Context, reviewID string) (*dto.ReviewOverview, error) {
	if reviewID == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "reviewId is required")
	}

	review, err := s.repo.FindByID(ctx, reviewID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "review not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load review")
	}

	statuses, err := s.reviewers.ListStatuses(ctx, reviewID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load reviewers")
	}

	return &dto.ReviewOverview{
		ID:           review.ID,
		OwnerName:    review.OwnerName,
		RevieweeName: review.RevieweeName,
		CreatedAt:    review.CreatedAt,
		Reviewers:    statuses,
	}, nil
}

func generateToken() (string, error) {
	buf := make([]byte, tokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("read random token bytes: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
