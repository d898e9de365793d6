package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/bestbytes/movie-review-api/internal/logger"
	"github.com/bestbytes/movie-review-api/internal/store"
	"github.com/bestbytes/movie-review-api/models"
)

// movieService is the concrete implementation of MovieService. Writes to the
// catalog share a mutex with the review service, so a movie cannot vanish
// under a concurrent review update.
type movieService struct {
	movieRepository store.MovieRepository
	mu              *sync.Mutex
	logger          *logger.Logger
}

// NewMovieService constructs a MovieService over the given repository.
// mu serializes catalog writes and must be shared with the review service.
func NewMovieService(movieRepository store.MovieRepository, mu *sync.Mutex, logger *logger.Logger) MovieService {
	return &movieService{
		movieRepository: movieRepository,
		mu:              mu,
		logger:          logger,
	}
}

// ListMovies returns the metadata of every movie in the catalog. Reviews are
// not attached; use GetMovie for a single movie with its reviews.
func (m *movieService) ListMovies(ctx context.Context) ([]models.Movie, error) {
	titles, err := m.movieRepository.ListTitles(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing movie titles: %w", err)
	}

	movies := make([]models.Movie, 0, len(titles))
	for _, title := range titles {
		movie, err := m.movieRepository.LoadMetadata(ctx, title)
		if err != nil {
			return nil, fmt.Errorf("error loading movie %q: %w", title, err)
		}
		movies = append(movies, movie)
	}

	return movies, nil
}

// GetMovie returns the movie's metadata with its reviews attached.
//
// Returns store.ErrMovieNotFound when no such movie exists.
func (m *movieService) GetMovie(ctx context.Context, title string) (models.Movie, error) {
	movie, err := m.movieRepository.LoadMetadata(ctx, title)
	if err != nil {
		return models.Movie{}, err
	}

	reviews, err := m.movieRepository.LoadReviews(ctx, title)
	if err != nil {
		return models.Movie{}, fmt.Errorf("error loading reviews for %q: %w", title, err)
	}
	movie.Reviews = reviews

	return movie, nil
}

// CreateMovie adds a new movie to the catalog.
//
// Returns ErrInvalidMovieTitle for an empty title and
// store.ErrMovieAlreadyExists when a movie with the same title exists.
func (m *movieService) CreateMovie(ctx context.Context, movie models.Movie) error {
	log := logger.FromContext(ctx)

	title := strings.TrimSpace(movie.Title)
	if title == "" {
		return ErrInvalidMovieTitle
	}
	movie.Title = title

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.movieRepository.Exists(ctx, title) {
		return store.ErrMovieAlreadyExists
	}

	if err := m.movieRepository.SaveMetadata(ctx, title, movie); err != nil {
		return fmt.Errorf("error saving movie %q: %w", title, err)
	}

	log.Info().Str("title", title).Msg("movie created")

	return nil
}

// UpdateMovie replaces the metadata of an existing movie. The path title
// wins over any title carried in the body, so a movie cannot be renamed by
// an update.
//
// Returns store.ErrMovieNotFound when no such movie exists.
func (m *movieService) UpdateMovie(ctx context.Context, title string, movie models.Movie) (models.Movie, error) {
	log := logger.FromContext(ctx)

	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.movieRepository.Exists(ctx, title) {
		return models.Movie{}, store.ErrMovieNotFound
	}

	movie.Title = title
	movie.Reviews = nil
	if err := m.movieRepository.SaveMetadata(ctx, title, movie); err != nil {
		return models.Movie{}, fmt.Errorf("error saving movie %q: %w", title, err)
	}

	log.Info().Str("title", title).Msg("movie updated")

	return movie, nil
}

// DeleteMovie removes the movie with all its reviews.
//
// Returns store.ErrMovieNotFound when no such movie exists.
func (m *movieService) DeleteMovie(ctx context.Context, title string) error {
	log := logger.FromContext(ctx)

	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.movieRepository.DeleteMovie(ctx, title); err != nil {
		return err
	}

	log.Info().Str("title", title).Msg("movie deleted")

	return nil
}

// SearchMovies returns every movie matching all set filter fields. Text
// criteria are case-insensitive; rating bounds are inclusive; the year is
// matched against the leading year of the publication date.
func (m *movieService) SearchMovies(ctx context.Context, filter models.MovieFilter) ([]models.Movie, error) {
	movies, err := m.ListMovies(ctx)
	if err != nil {
		return nil, err
	}

	matched := make([]models.Movie, 0, len(movies))
	for _, movie := range movies {
		if movieMatches(movie, filter) {
			matched = append(matched, movie)
		}
	}

	return matched, nil
}

func movieMatches(movie models.Movie, filter models.MovieFilter) bool {
	if filter.Title != "" && !strings.Contains(strings.ToLower(movie.Title), strings.ToLower(filter.Title)) {
		return false
	}
	if !containsAllFold(movie.MovieGenres, filter.Genres) {
		return false
	}
	if !containsAllFold(movie.Directors, filter.Directors) {
		return false
	}
	if filter.MinRating != nil && movie.MovieIMDbRating < *filter.MinRating {
		return false
	}
	if filter.MaxRating != nil && movie.MovieIMDbRating > *filter.MaxRating {
		return false
	}
	if filter.Year != 0 && publicationYear(movie.DatePublished) != filter.Year {
		return false
	}

	return true
}

// containsAllFold reports whether every wanted value appears in have,
// compared case-insensitively. An empty wanted list always matches.
func containsAllFold(have, wanted []string) bool {
	for _, w := range wanted {
		found := false
		for _, h := range have {
			if strings.EqualFold(strings.TrimSpace(h), strings.TrimSpace(w)) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	return true
}

// publicationYear extracts the year from a date like "2010-07-16".
// Returns 0 when the date does not start with a year.
func publicationYear(datePublished string) int {
	if len(datePublished) < 4 {
		return 0
	}

	year, err := strconv.Atoi(datePublished[:4])
	if err != nil {
		return 0
	}

	return year
}
