package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/bestbytes/movie-review-api/internal/logger"
	"github.com/bestbytes/movie-review-api/internal/store"
	"github.com/bestbytes/movie-review-api/models"
)

// reviewDateLayout is the format of the dateOfReview column.
const reviewDateLayout = "2006-01-02"

// reviewService is the concrete implementation of ReviewService. It shares
// its write mutex with the movie service because reviews live inside movie
// directories.
type reviewService struct {
	movieRepository store.MovieRepository
	mu              *sync.Mutex
	now             func() time.Time
	logger          *logger.Logger
}

// NewReviewService constructs a ReviewService over the given repository.
// mu must be the same mutex handed to the movie service.
func NewReviewService(movieRepository store.MovieRepository, mu *sync.Mutex, logger *logger.Logger) ReviewService {
	return &reviewService{
		movieRepository: movieRepository,
		mu:              mu,
		now:             time.Now,
		logger:          logger,
	}
}

// ListReviews returns all reviews of the movie in file order.
//
// Returns store.ErrMovieNotFound when no such movie exists.
func (r *reviewService) ListReviews(ctx context.Context, title string) ([]models.Review, error) {
	if !r.movieRepository.Exists(ctx, title) {
		return nil, store.ErrMovieNotFound
	}

	return r.movieRepository.LoadReviews(ctx, title)
}

// ListReviewsByUser collects the user's reviews across the whole catalog,
// keyed by movie title. Movies the user has not reviewed are omitted.
// Username comparison is case-insensitive.
func (r *reviewService) ListReviewsByUser(ctx context.Context, username string) (map[string][]models.Review, error) {
	titles, err := r.movieRepository.ListTitles(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing movie titles: %w", err)
	}

	byMovie := make(map[string][]models.Review)
	for _, title := range titles {
		reviews, err := r.movieRepository.LoadReviews(ctx, title)
		if err != nil {
			return nil, fmt.Errorf("error loading reviews for %q: %w", title, err)
		}

		for _, review := range reviews {
			if strings.EqualFold(review.User, username) {
				byMovie[title] = append(byMovie[title], review)
			}
		}
	}

	return byMovie, nil
}

// AddReview appends the review to the movie's review file. A missing review
// date is filled with today's date.
//
// Returns:
//   - store.ErrMovieNotFound when no such movie exists.
//   - ErrEmptyReviewTitle / ErrEmptyReviewText when either text field is blank.
//   - ErrDuplicateReview when the user already reviewed this movie.
func (r *reviewService) AddReview(ctx context.Context, title string, review models.Review) error {
	log := logger.FromContext(ctx)

	if strings.TrimSpace(review.ReviewTitle) == "" {
		return ErrEmptyReviewTitle
	}
	if strings.TrimSpace(review.Review) == "" {
		return ErrEmptyReviewText
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.movieRepository.Exists(ctx, title) {
		return store.ErrMovieNotFound
	}

	reviews, err := r.movieRepository.LoadReviews(ctx, title)
	if err != nil {
		return fmt.Errorf("error loading reviews for %q: %w", title, err)
	}

	for _, existing := range reviews {
		if strings.EqualFold(existing.User, review.User) {
			return ErrDuplicateReview
		}
	}

	if review.DateOfReview == "" {
		review.DateOfReview = r.now().Format(reviewDateLayout)
	}

	reviews = append(reviews, review)
	if err := r.movieRepository.SaveReviews(ctx, title, reviews); err != nil {
		return fmt.Errorf("error saving reviews for %q: %w", title, err)
	}

	log.Info().Str("title", title).Str("user", review.User).Msg("review added")

	return nil
}

// UpdateReview replaces the review at index. Only the review's author or an
// admin may update it; the author and date of the stored review are kept.
//
// Returns store.ErrMovieNotFound, ErrReviewNotFound, ErrNotReviewOwner, or
// the empty-field errors of AddReview.
func (r *reviewService) UpdateReview(ctx context.Context, title string, index int, actor models.Account, review models.Review) error {
	log := logger.FromContext(ctx)

	if strings.TrimSpace(review.ReviewTitle) == "" {
		return ErrEmptyReviewTitle
	}
	if strings.TrimSpace(review.Review) == "" {
		return ErrEmptyReviewText
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	reviews, err := r.loadExistingLocked(ctx, title)
	if err != nil {
		return err
	}
	if index < 0 || index >= len(reviews) {
		return ErrReviewNotFound
	}
	if !canTouchReview(actor, reviews[index]) {
		return ErrNotReviewOwner
	}

	review.User = reviews[index].User
	review.DateOfReview = reviews[index].DateOfReview
	reviews[index] = review

	if err := r.movieRepository.SaveReviews(ctx, title, reviews); err != nil {
		return fmt.Errorf("error saving reviews for %q: %w", title, err)
	}

	log.Info().Str("title", title).Int("index", index).Msg("review updated")

	return nil
}

// DeleteReview removes the review at index. Only the review's author or an
// admin may delete it. Deleting the last review removes the review file.
//
// Returns store.ErrMovieNotFound, ErrReviewNotFound, or ErrNotReviewOwner.
func (r *reviewService) DeleteReview(ctx context.Context, title string, index int, actor models.Account) error {
	log := logger.FromContext(ctx)

	r.mu.Lock()
	defer r.mu.Unlock()

	reviews, err := r.loadExistingLocked(ctx, title)
	if err != nil {
		return err
	}
	if index < 0 || index >= len(reviews) {
		return ErrReviewNotFound
	}
	if !canTouchReview(actor, reviews[index]) {
		return ErrNotReviewOwner
	}

	reviews = append(reviews[:index], reviews[index+1:]...)
	if err := r.movieRepository.SaveReviews(ctx, title, reviews); err != nil {
		return fmt.Errorf("error saving reviews for %q: %w", title, err)
	}

	log.Info().Str("title", title).Int("index", index).Msg("review deleted")

	return nil
}

// loadExistingLocked loads the reviews of an existing movie. Callers must
// hold r.mu.
func (r *reviewService) loadExistingLocked(ctx context.Context, title string) ([]models.Review, error) {
	if !r.movieRepository.Exists(ctx, title) {
		return nil, store.ErrMovieNotFound
	}

	reviews, err := r.movieRepository.LoadReviews(ctx, title)
	if err != nil {
		return nil, fmt.Errorf("error loading reviews for %q: %w", title, err)
	}

	return reviews, nil
}

func canTouchReview(actor models.Account, review models.Review) bool {
	return actor.Role == models.RoleAdmin || strings.EqualFold(actor.Username, review.User)
}
