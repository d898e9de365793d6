package service

import (
	"context"

	"github.com/bestbytes/movie-review-api/models"
)

// AuthService owns the account registry, the session table, and the penalty
// ledger. Implementations must be safe for concurrent use.
type AuthService interface {
	Register(ctx context.Context, username, email, password string) (models.Account, error)
	VerifyEmail(ctx context.Context, username, token string) (bool, error)
	Login(ctx context.Context, username, password string) (string, error)
	Logout(ctx context.Context, token string) bool
	ResolveSession(ctx context.Context, token string) (*models.Account, bool)

	GrantPenalty(ctx context.Context, username string, points int, reason, grantedBy string) error
	Penalties(ctx context.Context, username string) ([]models.PenaltyGrant, error)
	SetRole(ctx context.Context, username, role string) error
}

// MovieService manages the movie catalog.
type MovieService interface {
	ListMovies(ctx context.Context) ([]models.Movie, error)
	GetMovie(ctx context.Context, title string) (models.Movie, error)
	CreateMovie(ctx context.Context, movie models.Movie) error
	UpdateMovie(ctx context.Context, title string, movie models.Movie) (models.Movie, error)
	DeleteMovie(ctx context.Context, title string) error
	SearchMovies(ctx context.Context, filter models.MovieFilter) ([]models.Movie, error)
}

// ReviewService manages per-movie user reviews.
type ReviewService interface {
	ListReviews(ctx context.Context, title string) ([]models.Review, error)
	ListReviewsByUser(ctx context.Context, username string) (map[string][]models.Review, error)
	AddReview(ctx context.Context, title string, review models.Review) error
	UpdateReview(ctx context.Context, title string, index int, actor models.Account, review models.Review) error
	DeleteReview(ctx context.Context, title string, index int, actor models.Account) error
}

// ListService manages named per-user movie lists.
type ListService interface {
	CreateList(ctx context.Context, username, name string) error
	AddMovieToList(ctx context.Context, username, name, title string) error
	RemoveMovieFromList(ctx context.Context, username, name, title string) error
	Lists(ctx context.Context, username string) (map[string][]string, error)
}
