package models

import "time"

// Response is the one-time submitted answer set for a reviewer. At most one
// response exists per reviewer, enforced by a uniqueness constraint on
// responses.reviewer_id rather than application logic alone.
type Response struct {
	ID          string    `db:"id" json:"id"`
	ReviewerID  string    `db:"reviewer_id" json:"reviewerId"`
	SubmittedAt time.Time `db:"submitted_at" json:"submittedAt"`

	Answers []Answer `db:"-" json:"answers,omitempty"`
}

// Answer is one normalized row of a response: an optional 1..5 rating and an
// optional free-text comment for a single question.
type Answer struct {
	ID         string `db:"id" json:"id"`
	ResponseID string `db:"response_id" json:"responseId"`
	QuestionID int    `db:"question_id" json:"questionId"`
	Rating     *int   `db:"rating" json:"rating,omitempty"`
	Comment    string `db:"comment" json:"comment"`
}
