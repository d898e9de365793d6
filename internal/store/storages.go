package store

import (
	"github.com/bestbytes/movie-review-api/internal/config"
	"github.com/bestbytes/movie-review-api/internal/logger"
)

// Storages bundles all repositories handed to the service layer.
type Storages struct {
	Accounts AccountRepository
	Movies   MovieRepository
	Lists    ListRepository
}

// NewStorages constructs the file-backed repositories from the storage
// configuration.
func NewStorages(cfg config.Storage, logger *logger.Logger) *Storages {
	return &Storages{
		Accounts: NewAccountFileRepository(cfg.Files.UsersDir, logger),
		Movies:   NewMovieFileRepository(cfg.Files.MoviesDir, logger),
		Lists:    NewListFileRepository(cfg.Files.UsersDir, logger),
	}
}
