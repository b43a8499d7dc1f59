package service

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/noah-isme/review360-api/internal/models"
	appErrors "github.com/noah-isme/review360-api/pkg/errors"
)

type reviewerListerStub struct {
	reviewers []models.Reviewer
	err       error
}

func (s reviewerListerStub) ListByReview(ctx context.Context, reviewID string) ([]models.Reviewer, error) {
	return s.reviewers, s.err
}

type responseListerStub struct {
	responses []models.Response
	err       error
}

func (s responseListerStub) ListByReview(ctx context.Context, reviewID string) ([]models.Response, error) {
	return s.responses, s.err
}

func TestResultsServiceSingleResponse(t *testing.T) {
	reviews := reviewReaderStub{review: &models.Review{ID: "review-1", RevieweeName: "Bob", OwnerName: "Alice"}}
	reviewers := reviewerListerStub{reviewers: []models.Reviewer{
		{ID: "rev-1", ReviewID: "review-1", Category: models.CategorySupervisor},
		{ID: "rev-2", ReviewID: "review-1", Category: models.CategoryPeer},
	}}
	responses := responseListerStub{responses: []models.Response{
		{ID: "resp-1", ReviewerID: "rev-1", Answers: []models.Answer{
			{QuestionID: 1, Rating: intPtr(5)},
			{QuestionID: 18, Comment: "Improve X"},
		}},
	}}
	catalog := catalogStub{questions: []models.Question{{ID: 1, Order: 1}, {ID: 18, Order: 18}}}

	service := NewResultsService(reviews, reviewers, responses, catalog, zap.NewNop())

	payload, err := service.Results(context.Background(), "review-1")
	require.NoError(t, err)
	assert.Equal(t, "Bob", payload.Review.RevieweeName)
	assert.Equal(t, 1, payload.Overall.TotalResponses)

	supervisor := payload.ByCategory[models.CategorySupervisor]
	require.NotNil(t, supervisor)
	assert.Equal(t, 1, supervisor.Count)
	stats := supervisor.QuestionAverages[1]
	require.NotNil(t, stats)
	assert.Equal(t, 5, stats.Sum)
	assert.Equal(t, 1, stats.Count)
	assert.InDelta(t, 5.0, stats.Average, 0.0001)
	require.Len(t, supervisor.Comments, 1)
	assert.Equal(t, 18, supervisor.Comments[0].QuestionID)
	assert.Equal(t, "Improve X", supervisor.Comments[0].Comment)

	// The peer never submitted, so their category is absent entirely.
	assert.NotContains(t, payload.ByCategory, models.CategoryPeer)

	require.Len(t, payload.Overall.Comments, 1)
	assert.Equal(t, models.CategorySupervisor, payload.Overall.Comments[0].Category)
}

func TestResultsServiceAveragesAcrossCategory(t *testing.T) {
	reviews := reviewReaderStub{review: &models.Review{ID: "review-1", RevieweeName: "Bob"}}
	reviewers := reviewerListerStub{reviewers: []models.Reviewer{
		{ID: "rev-1", ReviewID: "review-1", Category: models.CategoryPeer},
		{ID: "rev-2", ReviewID: "review-1", Category: models.CategoryPeer},
	}}
	responses := responseListerStub{responses: []models.Response{
		{ID: "resp-1", ReviewerID: "rev-1", Answers: []models.Answer{{QuestionID: 2, Rating: intPtr(4)}}},
		{ID: "resp-2", ReviewerID: "rev-2", Answers: []models.Answer{{QuestionID: 2, Rating: intPtr(5)}}},
	}}

	service := NewResultsService(reviews, reviewers, responses, catalogStub{}, zap.NewNop())

	payload, err := service.Results(context.Background(), "review-1")
	require.NoError(t, err)

	peer := payload.ByCategory[models.CategoryPeer]
	require.NotNil(t, peer)
	assert.Equal(t, 2, peer.Count)
	stats := peer.QuestionAverages[2]
	require.NotNil(t, stats)
	assert.Equal(t, 9, stats.Sum)
	assert.Equal(t, 2, stats.Count)
	assert.InDelta(t, 4.5, stats.Average, 0.0001)

	overall := payload.Overall.QuestionAverages[2]
	require.NotNil(t, overall)
	assert.InDelta(t, 4.5, overall.Average, 0.0001)
	assert.Equal(t, 2, payload.Overall.TotalResponses)
}

func TestResultsServiceSkipsUnsetRatings(t *testing.T) {
	reviews := reviewReaderStub{review: &models.Review{ID: "review-1"}}
	reviewers := reviewerListerStub{reviewers: []models.Reviewer{
		{ID: "rev-1", ReviewID: "review-1", Category: models.CategorySubordinate},
	}}
	responses := responseListerStub{responses: []models.Response{
		{ID: "resp-1", ReviewerID: "rev-1", Answers: []models.Answer{
			{QuestionID: 1, Rating: intPtr(0)},
			{QuestionID: 2, Rating: nil},
			{QuestionID: 3, Rating: intPtr(3)},
		}},
	}}

	service := NewResultsService(reviews, reviewers, responses, catalogStub{}, zap.NewNop())

	payload, err := service.Results(context.Background(), "review-1")
	require.NoError(t, err)

	subordinate := payload.ByCategory[models.CategorySubordinate]
	require.NotNil(t, subordinate)
	assert.Equal(t, 1, subordinate.Count)
	assert.NotContains(t, subordinate.QuestionAverages, 1)
	assert.NotContains(t, subordinate.QuestionAverages, 2)
	require.Contains(t, subordinate.QuestionAverages, 3)
	assert.InDelta(t, 3.0, subordinate.QuestionAverages[3].Average, 0.0001)
}

func TestResultsServiceEmptyReview(t *testing.T) {
	reviews := reviewReaderStub{review: &models.Review{ID: "review-1"}}
	reviewers := reviewerListerStub{reviewers: []models.Reviewer{
		{ID: "rev-1", ReviewID: "review-1", Category: models.CategoryPeer},
	}}

	service := NewResultsService(reviews, reviewers, responseListerStub{}, catalogStub{}, zap.NewNop())

	payload, err := service.Results(context.Background(), "review-1")
	require.NoError(t, err)
	assert.Empty(t, payload.ByCategory)
	assert.Equal(t, 0, payload.Overall.TotalResponses)
	assert.NotNil(t, payload.Overall.Comments)
	assert.Empty(t, payload.Overall.Comments)
}

func TestResultsServiceRepeatedReadsAgree(t *testing.T) {
	reviews := reviewReaderStub{review: &models.Review{ID: "review-1"}}
	reviewers := reviewerListerStub{reviewers: []models.Reviewer{
		{ID: "rev-1", ReviewID: "review-1", Category: models.CategoryOther},
	}}
	responses := responseListerStub{responses: []models.Response{
		{ID: "resp-1", ReviewerID: "rev-1", Answers: []models.Answer{{QuestionID: 5, Rating: intPtr(2)}}},
	}}

	service := NewResultsService(reviews, reviewers, responses, catalogStub{}, zap.NewNop())

	first, err := service.Results(context.Background(), "review-1")
	require.NoError(t, err)
	second, err := service.Results(context.Background(), "review-1")
	require.NoError(t, err)
	assert.Equal(t, first.ByCategory, second.ByCategory)
	assert.Equal(t, first.Overall, second.Overall)
}

func TestResultsServiceNotFound(t *testing.T) {
	service := NewResultsService(reviewReaderStub{err: sql.ErrNoRows}, reviewerListerStub{}, responseListerStub{}, catalogStub{}, zap.NewNop())

	_, err := service.Results(context.Background(), "missing")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}
