package service

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/noah-isme/review360-api/internal/dto"
	"github.com/noah-isme/review360-api/internal/models"
	"github.com/noah-isme/review360-api/internal/repository"
	appErrors "github.com/noah-isme/review360-api/pkg/errors"
)

type reviewerFinderStub struct {
	reviewer  *models.Reviewer
	findErr   error
	submitted bool
	hasErr    error
}

func (s reviewerFinderStub) FindByToken(ctx context.Context, token string) (*models.Reviewer, error) {
	if s.findErr != nil {
		return nil, s.findErr
	}
	if s.reviewer == nil || s.reviewer.Token != token {
		return nil, sql.ErrNoRows
	}
	return s.reviewer, nil
}

func (s reviewerFinderStub) HasResponse(ctx context.Context, reviewerID string) (bool, error) {
	return s.submitted, s.hasErr
}

type reviewReaderStub struct {
	review *models.Review
	err    error
}

func (s reviewReaderStub) FindByID(ctx context.Context, id string) (*models.Review, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.review, nil
}

type catalogStub struct {
	questions []models.Question
	err       error
}

func (s catalogStub) Questions(ctx context.Context) ([]models.Question, error) {
	return s.questions, s.err
}

type responseWriterStub struct {
	err        error
	called     bool
	name       *string
	answers    []models.Answer
	reviewerID string
}

func (s *responseWriterStub) Submit(ctx context.Context, reviewerID string, name *string, answers []models.Answer) (*models.Response, error) {
	s.called = true
	s.reviewerID = reviewerID
	s.name = name
	s.answers = answers
	if s.err != nil {
		return nil, s.err
	}
	return &models.Response{ID: "resp-1", ReviewerID: reviewerID, Answers: answers}, nil
}

func intPtr(v int) *int { return &v }

func strPtr(v string) *string { return &v }

func TestSubmissionServiceContext(t *testing.T) {
	reviewers := reviewerFinderStub{
		reviewer: &models.Reviewer{ID: "rev-1", ReviewID: "review-1", Category: models.CategoryPeer, Token: "tok"},
	}
	reviews := reviewReaderStub{review: &models.Review{ID: "review-1", RevieweeName: "Bob"}}
	catalog := catalogStub{questions: []models.Question{{ID: 1, Text: "Q1", Order: 1, Kind: models.QuestionKindRated}}}

	service := NewSubmissionService(reviewers, reviews, catalog, &responseWriterStub{}, nil, zap.NewNop())

	got, err := service.Context(context.Background(), "tok")
	require.NoError(t, err)
	assert.Equal(t, "rev-1", got.Reviewer.ID)
	assert.Equal(t, models.CategoryPeer, got.Reviewer.Category)
	assert.False(t, got.Reviewer.HasSubmitted)
	assert.Equal(t, "Bob", got.Review.RevieweeName)
	require.Len(t, got.Questions, 1)
}

func TestSubmissionServiceContextUnknownToken(t *testing.T) {
	service := NewSubmissionService(reviewerFinderStub{}, reviewReaderStub{}, catalogStub{}, &responseWriterStub{}, nil, zap.NewNop())

	_, err := service.Context(context.Background(), "bogus")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}

func TestSubmissionServiceSubmit(t *testing.T) {
	reviewers := reviewerFinderStub{
		reviewer: &models.Reviewer{ID: "rev-1", ReviewID: "review-1", Category: models.CategoryPeer, Token: "tok"},
	}
	writer := &responseWriterStub{}
	service := NewSubmissionService(reviewers, reviewReaderStub{}, catalogStub{}, writer, nil, zap.NewNop())

	result, err := service.Submit(context.Background(), dto.SubmitResponseRequest{
		Token:        "tok",
		ReviewerName: strPtr("Carol"),
		Answers: []dto.AnswerInput{
			{QuestionID: 1, Rating: intPtr(5)},
			{QuestionID: 18, Comment: "Keep it up"},
		},
	})
	require.NoError(t, err)
	assert.True(t, result.Success)
	require.True(t, writer.called)
	assert.Equal(t, "rev-1", writer.reviewerID)
	require.NotNil(t, writer.name)
	assert.Equal(t, "Carol", *writer.name)
	require.Len(t, writer.answers, 2)
	assert.Equal(t, "Keep it up", writer.answers[1].Comment)
}

func TestSubmissionServiceSubmitUnknownToken(t *testing.T) {
	writer := &responseWriterStub{}
	service := NewSubmissionService(reviewerFinderStub{}, reviewReaderStub{}, catalogStub{}, writer, nil, zap.NewNop())

	_, err := service.Submit(context.Background(), dto.SubmitResponseRequest{
		Token:   "bogus",
		Answers: []dto.AnswerInput{{QuestionID: 1, Rating: intPtr(3)}},
	})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
	assert.False(t, writer.called)
}

func TestSubmissionServiceSubmitAlreadySubmitted(t *testing.T) {
	reviewers := reviewerFinderStub{
		reviewer:  &models.Reviewer{ID: "rev-1", ReviewID: "review-1", Token: "tok"},
		submitted: true,
	}
	writer := &responseWriterStub{}
	service := NewSubmissionService(reviewers, reviewReaderStub{}, catalogStub{}, writer, nil, zap.NewNop())

	_, err := service.Submit(context.Background(), dto.SubmitResponseRequest{
		Token:   "tok",
		Answers: []dto.AnswerInput{{QuestionID: 1, Rating: intPtr(4)}},
	})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrAlreadySubmitted.Code, appErrors.FromError(err).Code)
	assert.False(t, writer.called)
}

func TestSubmissionServiceSubmitDuplicateRace(t *testing.T) {
	reviewers := reviewerFinderStub{
		reviewer: &models.Reviewer{ID: "rev-1", ReviewID: "review-1", Token: "tok"},
	}
	writer := &responseWriterStub{err: repository.ErrDuplicateResponse}
	service := NewSubmissionService(reviewers, reviewReaderStub{}, catalogStub{}, writer, nil, zap.NewNop())

	_, err := service.Submit(context.Background(), dto.SubmitResponseRequest{
		Token:   "tok",
		Answers: []dto.AnswerInput{{QuestionID: 1, Rating: intPtr(4)}},
	})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrAlreadySubmitted.Code, appErrors.FromError(err).Code)
}

func TestSubmissionServiceSubmitRejectsOutOfRangeRating(t *testing.T) {
	writer := &responseWriterStub{}
	service := NewSubmissionService(reviewerFinderStub{}, reviewReaderStub{}, catalogStub{}, writer, nil, zap.NewNop())

	_, err := service.Submit(context.Background(), dto.SubmitResponseRequest{
		Token:   "tok",
		Answers: []dto.AnswerInput{{QuestionID: 1, Rating: intPtr(6)}},
	})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
	assert.False(t, writer.called)
}

func TestSubmissionServiceSubmitRequiresAnswers(t *testing.T) {
	service := NewSubmissionService(reviewerFinderStub{}, reviewReaderStub{}, catalogStub{}, &responseWriterStub{}, nil, zap.NewNop())

	_, err := service.Submit(context.Background(), dto.SubmitResponseRequest{Token: "tok"})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}
