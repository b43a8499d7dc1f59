package models

// QuestionKind discriminates how a question is answered.
type QuestionKind string

const (
	// QuestionKindRated expects a 1..5 rating and an optional comment.
	QuestionKindRated QuestionKind = "RATED"
	// QuestionKindCommentOnly expects free text only, no rating.
	QuestionKindCommentOnly QuestionKind = "COMMENT_ONLY"
)

// Question is one entry of the seeded catalog. The catalog is immutable at
// runtime; seeding happens out of band via cmd/seed.
type Question struct {
	ID       int          `db:"id" json:"id"`
	Text     string       `db:"text" json:"text"`
	Category string       `db:"category" json:"category"`
	Order    int          `db:"display_order" json:"order"`
	Kind     QuestionKind `db:"kind" json:"kind"`
}
