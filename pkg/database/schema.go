package database

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// schemaStatements are executed in order by EnsureSchema. Every statement is
// idempotent so the seeding command can run repeatedly.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS questions (
	id SERIAL PRIMARY KEY,
	text TEXT NOT NULL,
	category TEXT NOT NULL,
	display_order INTEGER NOT NULL UNIQUE,
	kind TEXT NOT NULL DEFAULT 'RATED'
)`,
	`CREATE TABLE IF NOT EXISTS reviews (
	id TEXT PRIMARY KEY,
	owner_name TEXT NOT NULL,
	owner_email TEXT NOT NULL,
	reviewee_name TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`,
	`CREATE TABLE IF NOT EXISTS reviewers (
	id TEXT PRIMARY KEY,
	review_id TEXT NOT NULL REFERENCES reviews(id) ON DELETE CASCADE,
	email TEXT NOT NULL,
	category TEXT NOT NULL,
	token TEXT NOT NULL UNIQUE,
	name TEXT
)`,
	`CREATE INDEX IF NOT EXISTS idx_reviewers_review_id ON reviewers(review_id)`,
	`CREATE TABLE IF NOT EXISTS responses (
	id TEXT PRIMARY KEY,
	reviewer_id TEXT NOT NULL UNIQUE REFERENCES reviewers(id) ON DELETE CASCADE,
	submitted_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`,
	`CREATE TABLE IF NOT EXISTS response_answers (
	id TEXT PRIMARY KEY,
	response_id TEXT NOT NULL REFERENCES responses(id) ON DELETE CASCADE,
	question_id INTEGER NOT NULL REFERENCES questions(id),
	rating INTEGER CHECK (rating BETWEEN 1 AND 5),
	comment TEXT NOT NULL DEFAULT ''
)`,
	`CREATE INDEX IF NOT EXISTS idx_response_answers_response_id ON response_answers(response_id)`,
}

// EnsureSchema creates the relational schema if it does not exist yet. The
// uniqueness constraints on reviewers.token and responses.reviewer_id carry
// the token-uniqueness and one-response-per-reviewer invariants; application
// checks alone are not trusted under concurrency.
func EnsureSchema(ctx context.Context, db *sqlx.DB) error {
	for _, stmt := range schemaStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
