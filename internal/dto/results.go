package dto

import (
	"time"

	"github.com/noah-isme/review360-api/internal/models"
)

// QuestionStats accumulates ratings for one question.
type QuestionStats struct {
	Sum     int     `json:"sum"`
	Count   int     `json:"count"`
	Average float64 `json:"average"`
}

// QuestionComment is a free-text answer collected within one category.
type QuestionComment struct {
	QuestionID int    `json:"questionId"`
	Comment    string `json:"comment"`
}

// CategoryComment is a free-text answer in the overall view. The category is
// preserved deliberately: anonymity is per reviewer identity, not per
// category.
type CategoryComment struct {
	QuestionID int                     `json:"questionId"`
	Comment    string                  `json:"comment"`
	Category   models.ReviewerCategory `json:"category"`
}

// CategoryAggregate holds per-category statistics. Categories without any
// submitted response are absent from the results map entirely.
type CategoryAggregate struct {
	Count            int                    `json:"count"`
	QuestionAverages map[int]*QuestionStats `json:"questionAverages"`
	Comments         []QuestionComment      `json:"comments"`
}

// OverallAggregate accumulates across all submitted responses regardless of
// category.
type OverallAggregate struct {
	QuestionAverages map[int]*QuestionStats `json:"questionAverages"`
	Comments         []CategoryComment      `json:"comments"`
	TotalResponses   int                    `json:"totalResponses"`
}

// ReviewMeta is the review header shown with results.
type ReviewMeta struct {
	ID           string    `json:"id"`
	RevieweeName string    `json:"revieweeName"`
	OwnerName    string    `json:"ownerName"`
	CreatedAt    time.Time `json:"createdAt"`
}

// ResultsPayload is the full derived results view. It is recomputed from the
// current response set on every request and never persisted.
type ResultsPayload struct {
	Review     ReviewMeta                                     `json:"review"`
	Questions  []models.Question                              `json:"questions"`
	ByCategory map[models.ReviewerCategory]*CategoryAggregate `json:"byCategory"`
	Overall    OverallAggregate                               `json:"overall"`
}
