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

const usersFileName = "users.json"

// accountFileRepository is the file-backed implementation of
// [AccountRepository]. The whole registry lives in a single users.json inside
// dir, written atomically via a temp file in the same directory followed by
// a rename.
type accountFileRepository struct {
	dir    string
	logger *logger.Logger
}

// NewAccountFileRepository constructs an [AccountRepository] rooted at dir.
// The directory is created on first save if it does not exist.
func NewAccountFileRepository(dir string, logger *logger.Logger) AccountRepository {
	logger.Debug().Str("dir", dir).Msg("creating account file repository")
	return &accountFileRepository{
		dir:    dir,
		logger: logger,
	}
}

// LoadAccounts reads the registry from users.json.
//
// A missing file yields an empty registry: the store starts fresh on first
// run. An unreadable or corrupt file also yields an empty registry with a
// warning, so a damaged file never takes the whole service down.
func (r *accountFileRepository) LoadAccounts(ctx context.Context) (map[string]StoredAccount, error) {
	log := logger.FromContext(ctx)

	path := filepath.Join(r.dir, usersFileName)
	raw, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return map[string]StoredAccount{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error reading account registry: %w", err)
	}

	accounts := map[string]StoredAccount{}
	if err := json.Unmarshal(raw, &accounts); err != nil {
		log.Warn().Err(err).Str("path", path).Msg("account registry is corrupt, starting empty")
		return map[string]StoredAccount{}, nil
	}

	return accounts, nil
}

// SaveAccounts replaces the registry on disk. The new content is written to a
// temp file in the same directory and renamed over users.json, so readers
// never observe a partially written registry.
func (r *accountFileRepository) SaveAccounts(ctx context.Context, accounts map[string]StoredAccount) error {
	log := logger.FromContext(ctx)

	if err := os.MkdirAll(r.dir, 0o755); err != nil {
		return fmt.Errorf("error creating users dir: %w", err)
	}

	data, err := json.MarshalIndent(accounts, "", "  ")
	if err != nil {
		return fmt.Errorf("error encoding account registry: %w", err)
	}

	path := filepath.Join(r.dir, usersFileName)
	if err := writeFileAtomic(path, data); err != nil {
		log.Err(err).Str("path", path).Msg("error writing account registry")
		return fmt.Errorf("error writing account registry: %w", err)
	}

	return nil
}

// writeFileAtomic writes data to a temp file next to path and renames it into
// place. The rename is atomic on POSIX filesystems.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return err
	}

	return nil
}
