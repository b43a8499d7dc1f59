package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/review360-api/internal/dto"
	"github.com/noah-isme/review360-api/internal/models"
	"github.com/noah-isme/review360-api/internal/repository"
	appErrors "github.com/noah-isme/review360-api/pkg/errors"
)

type reviewerFinder interface {
	FindByToken(ctx context.Context, token string) (*models.Reviewer, error)
	HasResponse(ctx context.Context, reviewerID string) (bool, error)
}

type reviewReader interface {
	FindByID(ctx context.Context, id string) (*models.Review, error)
}

type catalogProvider interface {
	Questions(ctx context.Context) ([]models.Question, error)
}

type responseWriter interface {
	Submit(ctx context.Context, reviewerID string, name *string, answers []models.Answer) (*models.Response, error)
}

// SubmissionService handles the token-gated submission flow.
type SubmissionService struct {
	reviewers reviewerFinder
	reviews   reviewReader
	catalog   catalogProvider
	responses responseWriter
	validator *validator.Validate
	logger    *zap.Logger
}

// NewSubmissionService builds a SubmissionService with sane defaults.
func NewSubmissionService(reviewers reviewerFinder, reviews reviewReader, catalog catalogProvider, responses responseWriter, validate *validator.Validate, logger *zap.Logger) *SubmissionService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SubmissionService{
		reviewers: reviewers,
		reviews:   reviews,
		catalog:   catalog,
		responses: responses,
		validator: validate,
		logger:    logger,
	}
}

// Context resolves a token into the submission form context: the reviewer's
// own category and submission flag, the reviewee name and the ordered
// catalog. Nothing about other reviewers crosses this boundary.
func (s *SubmissionService) Context(ctx context.Context, token string) (*dto.ReviewerContext, error) {
	if token == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "token is required")
	}

	reviewer, err := s.reviewers.FindByToken(ctx, token)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "reviewer not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to resolve token")
	}

	submitted, err := s.reviewers.HasResponse(ctx, reviewer.ID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check submission state")
	}

	review, err := s.reviews.FindByID(ctx, reviewer.ReviewID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load review")
	}

	questions, err := s.catalog.Questions(ctx)
	if err != nil {
		return nil, err
	}

	return &dto.ReviewerContext{
		Reviewer: dto.ReviewerSummary{
			ID:           reviewer.ID,
			Category:     reviewer.Category,
			HasSubmitted: submitted,
		},
		Review:    dto.ReviewContext{RevieweeName: review.RevieweeName},
		Questions: questions,
	}, nil
}

// Submit records a reviewer's one-time response. The pre-check on an existing
// response gives a friendly error on the common path; the storage uniqueness
// constraint settles concurrent duplicates.
func (s *SubmissionService) Submit(ctx context.Context, req dto.SubmitResponseRequest) (*dto.SubmitResponseResult, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid submission payload")
	}

	reviewer, err := s.reviewers.FindByToken(ctx, req.Token)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "reviewer not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to resolve token")
	}

	submitted, err := s.reviewers.HasResponse(ctx, reviewer.ID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check submission state")
	}
	if submitted {
		return nil, appErrors.ErrAlreadySubmitted
	}

	answers := make([]models.Answer, 0, len(req.Answers))
	for _, input := range req.Answers {
		answers = append(answers, models.Answer{
			QuestionID: input.QuestionID,
			Rating:     input.Rating,
			Comment:    input.Comment,
		})
	}

	if _, err := s.responses.Submit(ctx, reviewer.ID, req.ReviewerName, answers); err != nil {
		if errors.Is(err, repository.ErrDuplicateResponse) {
			return nil, appErrors.ErrAlreadySubmitted
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to store response")
	}

	s.logger.Info("response submitted",
		zap.String("review_id", reviewer.ReviewID),
		zap.String("category", string(reviewer.Category)),
	)

	return &dto.SubmitResponseResult{Success: true}, nil
}
