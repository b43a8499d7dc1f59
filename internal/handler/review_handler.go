package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/review360-api/internal/dto"
	"github.com/noah-isme/review360-api/internal/service"
	appErrors "github.com/noah-isme/review360-api/pkg/errors"
	"github.com/noah-isme/review360-api/pkg/response"
)

type reviewService interface {
	Create(ctx context.Context, req dto.CreateReviewRequest) (*dto.CreateReviewResult, error)
	Overview(ctx context.Context, reviewID string) (*dto.ReviewOverview, error)
}

type resultsService interface {
	Results(ctx context.Context, reviewID string) (*dto.ResultsPayload, error)
}

type exportService interface {
	Export(ctx context.Context, reviewID, format string) (*service.ExportFile, error)
}

// ReviewHandler exposes organizer-facing review endpoints.
type ReviewHandler struct {
	reviews reviewService
	results resultsService
	exports exportService
}

// NewReviewHandler builds a new handler.
func NewReviewHandler(reviews reviewService, results resultsService, exports exportService) *ReviewHandler {
	return &ReviewHandler{reviews: reviews, results: results, exports: exports}
}

// Create godoc
// @Summary Create a review with its reviewer set
// @Tags Reviews
// @Accept json
// @Produce json
// @Param payload body dto.CreateReviewRequest true "Review payload"
// @Success 201 {object} response.Envelope
// @Router /reviews [post]
func (h *ReviewHandler) Create(c *gin.Context) {
	var req dto.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid review payload"))
		return
	}
	result, err := h.reviews.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, result)
}

// Overview godoc
// @Summary Organizer manage view: reviewers with tokens and submission flags
// @Tags Reviews
// @Produce json
// @Param reviewId path string true "Review ID"
// @Success 200 {object} response.Envelope
// @Router /reviews/{reviewId} [get]
func (h *ReviewHandler) Overview(c *gin.Context) {
	overview, err := h.reviews.Overview(c.Request.Context(), c.Param("reviewId"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, overview, nil)
}

// Results godoc
// @Summary Aggregated results per category and overall
// @Tags Reviews
// @Produce json
// @Param reviewId path string true "Review ID"
// @Success 200 {object} response.Envelope
// @Router /reviews/{reviewId}/results [get]
func (h *ReviewHandler) Results(c *gin.Context) {
	results, err := h.results.Results(c.Request.Context(), c.Param("reviewId"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, results, nil)
}

// Export godoc
// @Summary Download overall results as CSV or PDF
// @Tags Reviews
// @Produce text/csv
// @Produce application/pdf
// @Param reviewId path string true "Review ID"
// @Param format query string false "csv or pdf (default csv)"
// @Success 200 {file} file
// @Router /reviews/{reviewId}/results/export [get]
func (h *ReviewHandler) Export(c *gin.Context) {
	file, err := h.exports.Export(c.Request.Context(), c.Param("reviewId"), c.Query("format"))
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+file.Filename+`"`)
	c.Data(http.StatusOK, file.ContentType, file.Payload)
}
