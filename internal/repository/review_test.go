package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/bookshare/bookshare-service/internal/model"
)

func newMockRepo(t *testing.T) (*repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	r, err := NewRepository(sqlx.NewDb(db, "sqlmock"), zap.NewNop())
	require.NoError(t, err)
	return r, mock
}

func TestRepository_CreateReview(t *testing.T) {
	t.Parallel()
	r, mock := newMockRepo(t)

	createdAt := time.Date(2026, time.August, 27, 12, 30, 0, 0, time.UTC)
	mock.ExpectQuery("insert into reviews").
		WithArgs("f7cdc58f-2caf-4b15-9727-f89dcc629b27", "e9f1a9a1-7a65-4a3e-93f5-9b4a4dbb7e41", 5, "great read").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(7, createdAt))

	review, err := r.CreateReview(context.Background(), model.CreateReviewRequest{
		Stars:       5,
		Body:        "great read",
		BookUid:     "f7cdc58f-2caf-4b15-9727-f89dcc629b27",
		ReviewerUid: "e9f1a9a1-7a65-4a3e-93f5-9b4a4dbb7e41",
	})
	require.NoError(t, err)
	require.Equal(t, 7, review.ID)
	require.Equal(t, 5, review.Stars)
	require.Equal(t, createdAt, review.CreatedAt)
	require.NoError(t, mock.ExpectationsWereMet())
}
