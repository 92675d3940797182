package repository

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookingRepoSetOrderID(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(`UPDATE bookings SET order_id = \? WHERE booking_id = \?`).
		WithArgs("order_MkzQ1", 7).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := NewBookingRepo(db)
	require.NoError(t, repo.SetOrderID(context.Background(), 7, "order_MkzQ1"))

	mock.ExpectExec(`UPDATE bookings SET order_id = \? WHERE booking_id = \?`).
		WithArgs("order_MkzQ1", 99).
		WillReturnResult(sqlmock.NewResult(0, 0))
	assert.ErrorIs(t, repo.SetOrderID(context.Background(), 99, "order_MkzQ1"), ErrBookingNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
