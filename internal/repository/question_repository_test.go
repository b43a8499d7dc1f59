package repository

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/review360-api/internal/models"
)

func TestQuestionRepositoryListOrdered(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewQuestionRepository(db)

	rows := sqlmock.NewRows([]string{"id", "text", "category", "display_order", "kind"}).
		AddRow(1, "Q1", "Leadership", 1, "RATED").
		AddRow(18, "Anything else?", "General", 18, "COMMENT_ONLY")
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, text, category, display_order, kind FROM questions ORDER BY display_order ASC")).
		WillReturnRows(rows)

	questions, err := repo.ListOrdered(context.Background())
	require.NoError(t, err)
	require.Len(t, questions, 2)
	assert.Equal(t, 1, questions[0].Order)
	assert.Equal(t, models.QuestionKindRated, questions[0].Kind)
	assert.Equal(t, models.QuestionKindCommentOnly, questions[1].Kind)
}

func TestQuestionRepositoryUpsert(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewQuestionRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO questions")).
		WithArgs("Q1", "Leadership", 1, "RATED").
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.Upsert(context.Background(), models.Question{Text: "Q1", Category: "Leadership", Order: 1, Kind: models.QuestionKindRated})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestQuestionRepositoryCount(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewQuestionRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM questions")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(18))

	total, err := repo.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 18, total)
}
