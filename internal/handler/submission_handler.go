package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/review360-api/internal/dto"
	appErrors "github.com/noah-isme/review360-api/pkg/errors"
	"github.com/noah-isme/review360-api/pkg/response"
)

type submissionService interface {
	Context(ctx context.Context, token string) (*dto.ReviewerContext, error)
	Submit(ctx context.Context, req dto.SubmitResponseRequest) (*dto.SubmitResponseResult, error)
}

// SubmissionHandler exposes the reviewer-facing, token-gated endpoints.
type SubmissionHandler struct {
	service submissionService
}

// NewSubmissionHandler builds a new handler.
func NewSubmissionHandler(service submissionService) *SubmissionHandler {
	return &SubmissionHandler{service: service}
}

// Context godoc
// @Summary Resolve a reviewer token into the submission form context
// @Tags Submissions
// @Produce json
// @Param token path string true "Reviewer token"
// @Success 200 {object} response.Envelope
// @Router /reviewers/{token} [get]
func (h *SubmissionHandler) Context(c *gin.Context) {
	ctx, err := h.service.Context(c.Request.Context(), c.Param("token"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, ctx, nil)
}

// Submit godoc
// @Summary Submit the one-time response for a reviewer token
// @Tags Submissions
// @Accept json
// @Produce json
// @Param payload body dto.SubmitResponseRequest true "Submission payload"
// @Success 201 {object} response.Envelope
// @Router /responses [post]
func (h *SubmissionHandler) Submit(c *gin.Context) {
	var req dto.SubmitResponseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid submission payload"))
		return
	}
	result, err := h.service.Submit(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, result)
}
