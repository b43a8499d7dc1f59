package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/review360-api/internal/dto"
	"github.com/noah-isme/review360-api/internal/models"
	appErrors "github.com/noah-isme/review360-api/pkg/errors"
)

type submissionServiceMock struct {
	context   *dto.ReviewerContext
	ctxErr    error
	result    *dto.SubmitResponseResult
	submitErr error
	submitted *dto.SubmitResponseRequest
}

func (m *submissionServiceMock) Context(ctx context.Context, token string) (*dto.ReviewerContext, error) {
	if m.ctxErr != nil {
		return nil, m.ctxErr
	}
	return m.context, nil
}

func (m *submissionServiceMock) Submit(ctx context.Context, req dto.SubmitResponseRequest) (*dto.SubmitResponseResult, error) {
	m.submitted = &req
	if m.submitErr != nil {
		return nil, m.submitErr
	}
	return m.result, nil
}

func TestSubmissionHandlerContext(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := &submissionServiceMock{context: &dto.ReviewerContext{
		Reviewer:  dto.ReviewerSummary{ID: "rev-1", Category: models.CategoryPeer},
		Review:    dto.ReviewContext{RevieweeName: "Bob"},
		Questions: []models.Question{{ID: 1, Text: "Q1", Order: 1, Kind: models.QuestionKindRated}},
	}}
	h := NewSubmissionHandler(svc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/reviewers/tok-1", nil)
	c.Params = gin.Params{{Key: "token", Value: "tok-1"}}

	h.Context(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var envelope struct {
		Data dto.ReviewerContext `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.Equal(t, "Bob", envelope.Data.Review.RevieweeName)
	require.Len(t, envelope.Data.Questions, 1)
}

func TestSubmissionHandlerContextUnknownToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := &submissionServiceMock{ctxErr: appErrors.Clone(appErrors.ErrNotFound, "reviewer not found")}
	h := NewSubmissionHandler(svc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/reviewers/bogus", nil)
	c.Params = gin.Params{{Key: "token", Value: "bogus"}}

	h.Context(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSubmissionHandlerSubmit(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := &submissionServiceMock{result: &dto.SubmitResponseResult{Success: true}}
	h := NewSubmissionHandler(svc)

	body := `{"token":"tok-1","reviewerName":"Carol","answers":[{"questionId":1,"rating":5},{"questionId":18,"comment":"Keep it up"}]}`
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/responses", bytes.NewBufferString(body))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Submit(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	require.NotNil(t, svc.submitted)
	assert.Equal(t, "tok-1", svc.submitted.Token)
	require.Len(t, svc.submitted.Answers, 2)
	require.NotNil(t, svc.submitted.Answers[0].Rating)
	assert.Equal(t, 5, *svc.submitted.Answers[0].Rating)
}

func TestSubmissionHandlerSubmitAlreadySubmitted(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := &submissionServiceMock{submitErr: appErrors.ErrAlreadySubmitted}
	h := NewSubmissionHandler(svc)

	body := `{"token":"tok-1","answers":[{"questionId":1,"rating":4}]}`
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/responses", bytes.NewBufferString(body))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Submit(c)

	assert.Equal(t, http.StatusConflict, w.Code)

	var envelope struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.Equal(t, appErrors.ErrAlreadySubmitted.Code, envelope.Error.Code)
}
