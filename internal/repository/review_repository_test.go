package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reviewColumns() []string {
	return []string{
		"review_id", "user_id", "user_name", "movie_id", "event_id", "review_type",
		"rating", "comment", "created_at", "updated_at",
	}
}

func TestReviewRepoListByMovie(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()

	now := time.Now()
	mock.ExpectQuery(`SELECT .+ FROM reviews WHERE movie_id = \? ORDER BY created_at DESC`).
		WithArgs(3).
		WillReturnRows(sqlmock.NewRows(reviewColumns()).
			AddRow(11, 7, "Asha Rao", 3, nil, "MOVIE", 9.0, "loved it", now, now).
			AddRow(10, 8, "Vikram Iyer", 3, nil, "MOVIE", 7.5, "decent", now, now))

	repo := NewReviewRepo(db)
	reviews, err := repo.ListByMovie(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, reviews, 2)
	assert.Equal(t, uint64(11), reviews[0].ID)
	require.NotNil(t, reviews[0].MovieID)
	assert.Equal(t, uint64(3), *reviews[0].MovieID)
	assert.Nil(t, reviews[0].EventID)
	assert.Equal(t, 9.0, reviews[0].Rating)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReviewRepoAverageForMovieEmpty(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT COALESCE\(AVG\(rating\), 0\) FROM reviews WHERE movie_id = \?`).
		WithArgs(42).
		WillReturnRows(sqlmock.NewRows([]string{"avg"}).AddRow(0.0))

	repo := NewReviewRepo(db)
	avg, err := repo.AverageForMovie(context.Background(), 42)
	require.NoError(t, err)
	assert.Zero(t, avg)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReviewRepoDeleteNotFound(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(`DELETE FROM reviews WHERE review_id = \?`).
		WithArgs(99).
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := NewReviewRepo(db)
	assert.ErrorIs(t, repo.Delete(context.Background(), 99), ErrReviewNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBannerRepoListActive(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()

	now := time.Now()
	cols := []string{
		"banner_id", "title", "subtitle", "movie_id", "event_id", "banner_image_url",
		"display_order", "link_url", "is_active", "created_at", "updated_at",
	}
	mock.ExpectQuery(`SELECT .+ FROM banners WHERE is_active = 1 ORDER BY display_order, banner_id`).
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow(1, "Now Showing", "Book today", 3, nil, "https://b/1.jpg", 0, "", true, now, now).
			AddRow(2, "Live This Weekend", "", nil, 5, "https://b/2.jpg", 1, "/events/5", true, now, now))

	repo := NewBannerRepo(db)
	banners, err := repo.ListActive(context.Background())
	require.NoError(t, err)
	require.Len(t, banners, 2)
	require.NotNil(t, banners[0].MovieID)
	assert.Equal(t, uint64(3), *banners[0].MovieID)
	require.NotNil(t, banners[1].EventID)
	assert.Equal(t, uint64(5), *banners[1].EventID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBannerRepoGetByIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT .+ FROM banners WHERE banner_id = \?`).
		WithArgs(7).
		WillReturnRows(sqlmock.NewRows([]string{"banner_id"}))

	repo := NewBannerRepo(db)
	_, err = repo.GetByID(context.Background(), 7)
	assert.ErrorIs(t, err, ErrBannerNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
