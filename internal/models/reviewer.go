package models

// ReviewerCategory is the relationship of a reviewer to the reviewee.
type ReviewerCategory string

const (
	CategorySubordinate ReviewerCategory = "SUBORDINATE"
	CategoryPeer        ReviewerCategory = "PEER"
	CategorySupervisor  ReviewerCategory = "SUPERVISOR"
	CategoryOther       ReviewerCategory = "OTHER"
)

// Reviewer is an invited participant. The token is the entire authorization
// model: unguessable, globally unique (storage constraint) and usable for a
// single submission.
type Reviewer struct {
	ID       string           `db:"id" json:"id"`
	ReviewID string           `db:"review_id" json:"reviewId"`
	Email    string           `db:"email" json:"email"`
	Category ReviewerCategory `db:"category" json:"category"`
	Token    string           `db:"token" json:"token"`
	Name     *string          `db:"name" json:"name,omitempty"`
}
