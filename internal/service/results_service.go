package service

import (
	"context"
	"database/sql"

	"go.uber.org/zap"

	"github.com/noah-isme/review360-api/internal/dto"
	"github.com/noah-isme/review360-api/internal/models"
	appErrors "github.com/noah-isme/review360-api/pkg/errors"
)

type reviewerLister interface {
	ListByReview(ctx context.Context, reviewID string) ([]models.Reviewer, error)
}

type responseLister interface {
	ListByReview(ctx context.Context, reviewID string) ([]models.Response, error)
}

// ResultsService computes the derived results view. Aggregates are
// recomputed from the committed response set on every request; nothing here
// is persisted or cached.
type ResultsService struct {
	reviews   reviewReader
	reviewers reviewerLister
	responses responseLister
	catalog   catalogProvider
	logger    *zap.Logger
}

// NewResultsService builds a ResultsService.
func NewResultsService(reviews reviewReader, reviewers reviewerLister, responses responseLister, catalog catalogProvider, logger *zap.Logger) *ResultsService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ResultsService{
		reviews:   reviews,
		reviewers: reviewers,
		responses: responses,
		catalog:   catalog,
		logger:    logger,
	}
}

// Results loads a review with all submitted responses and aggregates them
// per category and overall.
func (s *ResultsService) Results(ctx context.Context, reviewID string) (*dto.ResultsPayload, error) {
	if reviewID == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "reviewId is required")
	}

	review, err := s.reviews.FindByID(ctx, reviewID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "review not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load review")
	}

	reviewers, err := s.reviewers.ListByReview(ctx, reviewID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load reviewers")
	}

	responses, err := s.responses.ListByReview(ctx, reviewID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load responses")
	}

	questions, err := s.catalog.Questions(ctx)
	if err != nil {
		return nil, err
	}

	byCategory, overall := aggregate(reviewers, responses)

	return &dto.ResultsPayload{
		Review: dto.ReviewMeta{
			ID:           review.ID,
			RevieweeName: review.RevieweeName,
			OwnerName:    review.OwnerName,
			CreatedAt:    review.CreatedAt,
		},
		Questions:  questions,
		ByCategory: byCategory,
		Overall:    overall,
	}, nil
}

// aggregate is the pure in-memory aggregation pass. Ratings count only when
// present and non-zero; zero means "unset", matching the submission form
// semantics. Comments count when non-empty. Categories appear in the result
// only when at least one of their reviewers submitted.
func aggregate(reviewers []models.Reviewer, responses []models.Response) (map[models.ReviewerCategory]*dto.CategoryAggregate, dto.OverallAggregate) {
	categoryByReviewer := make(map[string]models.ReviewerCategory, len(reviewers))
	for _, reviewer := range reviewers {
		categoryByReviewer[reviewer.ID] = reviewer.Category
	}

	byCategory := make(map[models.ReviewerCategory]*dto.CategoryAggregate)
	overall := dto.OverallAggregate{
		QuestionAverages: make(map[int]*dto.QuestionStats),
		Comments:         []dto.CategoryComment{},
		TotalResponses:   len(responses),
	}

	for _, response := range responses {
		category, ok := categoryByReviewer[response.ReviewerID]
		if !ok {
			continue
		}

		agg := byCategory[category]
		if agg == nil {
			agg = &dto.CategoryAggregate{
				QuestionAverages: make(map[int]*dto.QuestionStats),
				Comments:         []dto.QuestionComment{},
			}
			byCategory[category] = agg
		}
		agg.Count++

		for _, answer := range response.Answers {
			if hasRating(answer) {
				accumulate(agg.QuestionAverages, answer.QuestionID, *answer.Rating)
				accumulate(overall.QuestionAverages, answer.QuestionID, *answer.Rating)
			}
			if answer.Comment != "" {
				agg.Comments = append(agg.Comments, dto.QuestionComment{
					QuestionID: answer.QuestionID,
					Comment:    answer.Comment,
				})
				overall.Comments = append(overall.Comments, dto.CategoryComment{
					QuestionID: answer.QuestionID,
					Comment:    answer.Comment,
					Category:   category,
				})
			}
		}
	}

	return byCategory, overall
}

func hasRating(answer models.Answer) bool {
	return answer.Rating != nil && *answer.Rating != 0
}

func accumulate(stats map[int]*dto.QuestionStats, questionID, rating int) {
	entry := stats[questionID]
	if entry == nil {
		entry = &dto.QuestionStats{}
		stats[questionID] = entry
	}
	entry.Sum += rating
	entry.Count++
	entry.Average = float64(entry.Sum) / float64(entry.Count)
}
