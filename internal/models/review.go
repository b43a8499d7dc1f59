package models

import "time"

// Review is one 360-degree feedback cycle for a single reviewee. A review is
// created together with its full reviewer set and is immutable afterwards
// except for the growth of reviewer responses.
type Review struct {
	ID           string    `db:"id" json:"id"`
	OwnerName    string    `db:"owner_name" json:"ownerName"`
	OwnerEmail   string    `db:"owner_email" json:"ownerEmail"`
	RevieweeName string    `db:"reviewee_name" json:"revieweeName"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`

	Reviewers []Reviewer `db:"-" json:"reviewers,omitempty"`
}
