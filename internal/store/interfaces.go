package store

import (
	"context"

	"github.com/bestbytes/movie-review-api/models"
)

// StoredAccount is the on-disk form of one account inside users.json.
// The registry file is a single JSON object keyed by username.
type StoredAccount struct {
	Email      string `json:"email"`
	Password   string `json:"password"`
	IsVerified bool   `json:"isVerified"`
}

// AccountRepository persists the account registry. Writes replace the whole
// registry atomically (temp file + rename), so a crash mid-write never
// corrupts previously stored accounts.
type AccountRepository interface {
	LoadAccounts(ctx context.Context) (map[string]StoredAccount, error)
	SaveAccounts(ctx context.Context, accounts map[string]StoredAccount) error
}

// MovieRepository persists movie metadata and reviews, one directory per
// movie title containing metadata.json and movieReviews.csv.
type MovieRepository interface {
	ListTitles(ctx context.Context) ([]string, error)
	Exists(ctx context.Context, title string) bool
	LoadMetadata(ctx context.Context, title string) (models.Movie, error)
	SaveMetadata(ctx context.Context, title string, movie models.Movie) error
	LoadReviews(ctx context.Context, title string) ([]models.Review, error)
	SaveReviews(ctx context.Context, title string, reviews []models.Review) error
	DeleteMovie(ctx context.Context, title string) error
}

// ListRepository persists user movie lists as a single JSON document keyed by
// username, then by list name.
type ListRepository interface {
	LoadLists(ctx context.Context) (map[string]map[string][]string, error)
	SaveLists(ctx context.Context, lists map[string]map[string][]string) error
}
