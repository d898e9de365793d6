package service

import (
	"context"
	"sync"
	"testing"

	"github.com/bestbytes/movie-review-api/internal/logger"
	"github.com/bestbytes/movie-review-api/internal/store"
	"github.com/bestbytes/movie-review-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMovieService(t *testing.T) MovieService {
	t.Helper()

	repo := store.NewMovieFileRepository(t.TempDir(), logger.Nop())
	return NewMovieService(repo, &sync.Mutex{}, logger.Nop())
}

func catalogMovie(title string, rating float64, year string, genres, directors []string) models.Movie {
	return models.Movie{
		Title:           title,
		MovieIMDbRating: rating,
		DatePublished:   year,
		MovieGenres:     genres,
		Directors:       directors,
	}
}

func TestMovieService_CreateAndGet(t *testing.T) {
	svc := newTestMovieService(t)
	ctx := context.Background()

	movie := catalogMovie("Inception", 8.8, "2010-07-16", []string{"Sci-Fi"}, []string{"Christopher Nolan"})
	require.NoError(t, svc.CreateMovie(ctx, movie))

	got, err := svc.GetMovie(ctx, "Inception")
	require.NoError(t, err)
	assert.Equal(t, movie.MovieIMDbRating, got.MovieIMDbRating)
	assert.Empty(t, got.Reviews)
}

func TestMovieService_CreateRejectsDuplicateAndEmptyTitle(t *testing.T) {
	svc := newTestMovieService(t)
	ctx := context.Background()

	require.NoError(t, svc.CreateMovie(ctx, catalogMovie("Inception", 8.8, "2010", nil, nil)))

	err := svc.CreateMovie(ctx, catalogMovie("Inception", 1, "1999", nil, nil))
	assert.ErrorIs(t, err, store.ErrMovieAlreadyExists)

	err = svc.CreateMovie(ctx, catalogMovie("   ", 1, "1999", nil, nil))
	assert.ErrorIs(t, err, ErrInvalidMovieTitle)
}

func TestMovieService_UpdateKeepsTitle(t *testing.T) {
	svc := newTestMovieService(t)
	ctx := context.Background()

	require.NoError(t, svc.CreateMovie(ctx, catalogMovie("Inception", 8.8, "2010", nil, nil)))

	updated, err := svc.UpdateMovie(ctx, "Inception", catalogMovie("Renamed", 9.0, "2010", nil, nil))
	require.NoError(t, err)
	assert.Equal(t, "Inception", updated.Title)
	assert.Equal(t, 9.0, updated.MovieIMDbRating)

	_, err = svc.UpdateMovie(ctx, "Nope", catalogMovie("Nope", 1, "2000", nil, nil))
	assert.ErrorIs(t, err, store.ErrMovieNotFound)
}

func TestMovieService_Delete(t *testing.T) {
	svc := newTestMovieService(t)
	ctx := context.Background()

	require.NoError(t, svc.CreateMovie(ctx, catalogMovie("Inception", 8.8, "2010", nil, nil)))
	require.NoError(t, svc.DeleteMovie(ctx, "Inception"))

	_, err := svc.GetMovie(ctx, "Inception")
	assert.ErrorIs(t, err, store.ErrMovieNotFound)

	assert.ErrorIs(t, svc.DeleteMovie(ctx, "Inception"), store.ErrMovieNotFound)
}

func TestMovieService_Search(t *testing.T) {
	svc := newTestMovieService(t)
	ctx := context.Background()

	require.NoError(t, svc.CreateMovie(ctx, catalogMovie("Inception", 8.8, "2010-07-16", []string{"Action", "Sci-Fi"}, []string{"Christopher Nolan"})))
	require.NoError(t, svc.CreateMovie(ctx, catalogMovie("Interstellar", 8.7, "2014-11-07", []string{"Sci-Fi", "Drama"}, []string{"Christopher Nolan"})))
	require.NoError(t, svc.CreateMovie(ctx, catalogMovie("Heat", 8.3, "1995-12-15", []string{"Crime"}, []string{"Michael Mann"})))

	titlesOf := func(movies []models.Movie) []string {
		titles := make([]string, 0, len(movies))
		for _, m := range movies {
			titles = append(titles, m.Title)
		}
		return titles
	}

	t.Run("title substring case-insensitive", func(t *testing.T) {
		got, err := svc.SearchMovies(ctx, models.MovieFilter{Title: "inter"})
		require.NoError(t, err)
		assert.Equal(t, []string{"Interstellar"}, titlesOf(got))
	})

	t.Run("genre", func(t *testing.T) {
		got, err := svc.SearchMovies(ctx, models.MovieFilter{Genres: []string{"sci-fi"}})
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"Inception", "Interstellar"}, titlesOf(got))
	})

	t.Run("director and year combined", func(t *testing.T) {
		got, err := svc.SearchMovies(ctx, models.MovieFilter{Directors: []string{"christopher nolan"}, Year: 2014})
		require.NoError(t, err)
		assert.Equal(t, []string{"Interstellar"}, titlesOf(got))
	})

	t.Run("rating bounds inclusive", func(t *testing.T) {
		minRating, maxRating := 8.3, 8.7
		got, err := svc.SearchMovies(ctx, models.MovieFilter{MinRating: &minRating, MaxRating: &maxRating})
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"Interstellar", "Heat"}, titlesOf(got))
	})

	t.Run("no criteria returns everything", func(t *testing.T) {
		got, err := svc.SearchMovies(ctx, models.MovieFilter{})
		require.NoError(t, err)
		assert.Len(t, got, 3)
	})

	t.Run("no match", func(t *testing.T) {
		got, err := svc.SearchMovies(ctx, models.MovieFilter{Title: "godzilla"})
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}
