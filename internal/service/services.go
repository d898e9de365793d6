package service

import (
	"context"
	"sync"

	"github.com/bestbytes/movie-review-api/internal/config"
	"github.com/bestbytes/movie-review-api/internal/logger"
	"github.com/bestbytes/movie-review-api/internal/store"
)

// Services bundles every service handed to the HTTP layer.
type Services struct {
	Auth    AuthService
	Movies  MovieService
	Reviews ReviewService
	Lists   ListService
}

// NewServices wires all services over the given storages. The auth service
// loads the persisted account registry, so construction can fail.
func NewServices(ctx context.Context, storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	auth, err := NewAuthService(ctx, storages.Accounts, cfg.App, logger)
	if err != nil {
		return nil, err
	}

	// Movie and review writes touch the same directories.
	catalogMu := &sync.Mutex{}

	return &Services{
		Auth:    auth,
		Movies:  NewMovieService(storages.Movies, catalogMu, logger),
		Reviews: NewReviewService(storages.Movies, catalogMu, logger),
		Lists:   NewListService(storages.Lists, storages.Movies, logger),
	}, nil
}
