package repository

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/bookshare/bookshare-service/internal/model"
)

func TestRepository_CreateBook_LogsError(t *testing.T) {
	t.Parallel()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	core, logs := observer.New(zap.ErrorLevel)
	r, err := NewRepository(sqlx.NewDb(db, "sqlmock"), zap.New(core))
	require.NoError(t, err)

	mock.ExpectQuery("INSERT INTO books").
		WillReturnError(errors.New("boom"))

	_, err = r.CreateBook(context.Background(), model.CreateBookRequest{
		Title:     "Dune",
		Author:    "Frank Herbert",
		Condition: model.ConditionGood,
		OwnerUid:  "3917d2d0-7a4a-4f61-a6a5-84e106b79f78",
	})
	require.Error(t, err)

	entries := logs.FilterMessage("CreateBook").All()
	require.Len(t, entries, 1)
	var logged error
	for _, f := range entries[0].Context {
		if f.Key == "error" {
			logged, _ = f.Interface.(error)
		}
	}
	require.Error(t, logged)
	require.EqualError(t, logged, "boom")
	require.NoError(t, mock.ExpectationsWereMet())
}
