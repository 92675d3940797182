package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func movieColumns() []string {
	return []string{
		"movie_id", "title", "description", "duration_minutes", "genre", "language",
		"parental_rating", "release_date", "cast_names", "crew_names",
		"trailer_url", "display_image_url", "banner_image_url", "rating", "is_active",
		"created_at", "updated_at",
	}
}

func TestMovieRepoListActive(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()

	now := time.Now()
	mock.ExpectQuery(`SELECT .+ FROM movies WHERE is_active = 1 ORDER BY release_date DESC`).
		WillReturnRows(sqlmock.NewRows(movieColumns()).
			AddRow(1, "Interstellar", "space", 169, "Sci-Fi", "English",
				"UA", "2014-11-07", "M. McConaughey", "C. Nolan",
				"https://t", "https://p", "https://b", 8.7, true, now, now).
			AddRow(2, "Dune", "sand", 155, "Sci-Fi", "English",
				"UA", "2021-10-22", "T. Chalamet", "D. Villeneuve",
				"https://t2", "https://p2", "https://b2", 8.1, true, now, now))

	repo := NewMovieRepo(db)
	movies, err := repo.ListActive(context.Background())
	require.NoError(t, err)
	require.Len(t, movies, 2)
	assert.Equal(t, uint64(1), movies[0].ID)
	assert.Equal(t, "Interstellar", movies[0].Title)
	assert.Equal(t, "2014-11-07", movies[0].ReleaseDate)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMovieRepoGetByIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT .+ FROM movies WHERE movie_id = \?`).
		WithArgs(99).
		WillReturnRows(sqlmock.NewRows(movieColumns()))

	repo := NewMovieRepo(db)
	_, err = repo.GetByID(context.Background(), 99)
	assert.ErrorIs(t, err, ErrMovieNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMovieRepoSetActive(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(`UPDATE movies SET is_active = \? WHERE movie_id = \?`).
		WithArgs(false, 5).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := NewMovieRepo(db)
	require.NoError(t, repo.SetActive(context.Background(), 5, false))

	mock.ExpectExec(`UPDATE movies SET is_active = \? WHERE movie_id = \?`).
		WithArgs(true, 99).
		WillReturnResult(sqlmock.NewResult(0, 0))
	assert.ErrorIs(t, repo.SetActive(context.Background(), 99, true), ErrMovieNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
