package dto

import (
	"time"

	"github.com/noah-isme/review360-api/internal/models"
)

// ReviewerInput describes one invited reviewer on review creation.
type ReviewerInput struct {
	Email    string                  `json:"email" validate:"required,email"`
	Category models.ReviewerCategory `json:"category" validate:"required,oneof=SUBORDINATE PEER SUPERVISOR OTHER"`
}

// CreateReviewRequest defines the payload for creating a review together with
// its full reviewer set.
type CreateReviewRequest struct {
	OwnerName    string          `json:"ownerName" validate:"required"`
	OwnerEmail   string          `json:"ownerEmail" validate:"required,email"`
	RevieweeName string          `json:"revieweeName" validate:"required"`
	Reviewers    []ReviewerInput `json:"reviewers" validate:"required,min=1,dive"`
}

// CreatedReviewer carries the generated token the organizer needs to build a
// shareable submission link.
type CreatedReviewer struct {
	ID       string                  `json:"id"`
	Email    string                  `json:"email"`
	Category models.ReviewerCategory `json:"category"`
	Token    string                  `json:"token"`
}

// CreateReviewResult is the creation response.
type CreateReviewResult struct {
	ReviewID  string            `json:"reviewId"`
	Reviewers []CreatedReviewer `json:"reviewers"`
}

// ReviewerStatus is one organizer-facing manage row: invitation state plus
// the shareable token. Never exposed to reviewers.
type ReviewerStatus struct {
	ID           string                  `db:"id" json:"id"`
	Email        string                  `db:"email" json:"email"`
	Category     models.ReviewerCategory `db:"category" json:"category"`
	Token        string                  `db:"token" json:"token"`
	HasSubmitted bool                    `db:"has_submitted" json:"hasSubmitted"`
}

// ReviewOverview is the organizer manage view for a review.
type ReviewOverview struct {
	ID           string           `json:"id"`
	OwnerName    string           `json:"ownerName"`
	RevieweeName string           `json:"revieweeName"`
	CreatedAt    time.Time        `json:"createdAt"`
	Reviewers    []ReviewerStatus `json:"reviewers"`
}
