package dto

import "github.com/noah-isme/review360-api/internal/models"

// ReviewerSummary exposes the minimal reviewer fields the submission UI
// needs. Other reviewers' identities and answers never cross this boundary.
type ReviewerSummary struct {
	ID           string                  `json:"id"`
	Category     models.ReviewerCategory `json:"category"`
	HasSubmitted bool                    `json:"hasSubmitted"`
}

// ReviewContext carries the parent review fields visible to a reviewer.
type ReviewContext struct {
	RevieweeName string `json:"revieweeName"`
}

// ReviewerContext is what a token resolves to: just enough to render the
// submission form, plus the ordered question catalog.
type ReviewerContext struct {
	Reviewer  ReviewerSummary   `json:"reviewer"`
	Review    ReviewContext     `json:"review"`
	Questions []models.Question `json:"questions"`
}

// AnswerInput is one submitted answer. Ratings are optional but, when
// present, must fall in the closed 1..5 range.
type AnswerInput struct {
	QuestionID int    `json:"questionId" validate:"required"`
	Rating     *int   `json:"rating" validate:"omitempty,min=1,max=5"`
	Comment    string `json:"comment"`
}

// SubmitResponseRequest defines the one-shot submission payload.
type SubmitResponseRequest struct {
	Token        string        `json:"token" validate:"required"`
	ReviewerName *string       `json:"reviewerName"`
	Answers      []AnswerInput `json:"answers" validate:"required,min=1,dive"`
}

// SubmitResponseResult acknowledges a successful submission.
type SubmitResponseResult struct {
	Success bool `json:"success"`
}
