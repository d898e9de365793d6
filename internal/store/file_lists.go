package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/bestbytes/movie-review-api/internal/logger"
)

const listsFileName = "movieLists.json"

// listFileRepository is the file-backed implementation of [ListRepository].
// All user movie lists live in one movieLists.json document keyed by
// username, then by list name.
type listFileRepository struct {
	dir    string
	logger *logger.Logger
}

// NewListFileRepository constructs a [ListRepository] rooted at dir.
func NewListFileRepository(dir string, logger *logger.Logger) ListRepository {
	logger.Debug().Str("dir", dir).Msg("creating list file repository")
	return &listFileRepository{
		dir:    dir,
		logger: logger,
	}
}

// LoadLists reads movieLists.json. A missing or corrupt file yields an empty
// document, mirroring the account registry behavior.
func (r *listFileRepository) LoadLists(ctx context.Context) (map[string]map[string][]string, error) {
	log := logger.FromContext(ctx)

	path := filepath.Join(r.dir, listsFileName)
	raw, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return map[string]map[string][]string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error reading movie lists: %w", err)
	}

	lists := map[string]map[string][]string{}
	if err := json.Unmarshal(raw, &lists); err != nil {
		log.Warn().Err(err).Str("path", path).Msg("movie lists file is corrupt, starting empty")
		return map[string]map[string][]string{}, nil
	}

	return lists, nil
}

// SaveLists replaces movieLists.json atomically.
func (r *listFileRepository) SaveLists(ctx context.Context, lists map[string]map[string][]string) error {
	log := logger.FromContext(ctx)

	if err := os.MkdirAll(r.dir, 0o755); err != nil {
		return fmt.Errorf("error creating users dir: %w", err)
	}

	data, err := json.MarshalIndent(lists, "", "  ")
	if err != nil {
		return fmt.Errorf("error encoding movie lists: %w", err)
	}

	path := filepath.Join(r.dir, listsFileName)
	if err := writeFileAtomic(path, data); err != nil {
		log.Err(err).Str("path", path).Msg("error writing movie lists")
		return fmt.Errorf("error writing movie lists: %w", err)
	}

	return nil
}
