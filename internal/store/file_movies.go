package store

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/bestbytes/movie-review-api/internal/logger"
	"github.com/bestbytes/movie-review-api/models"
)

const (
	metadataFileName = "metadata.json"
	reviewsFileName  = "movieReviews.csv"
)

// reviewsHeader is the column order of movieReviews.csv.
var reviewsHeader = []string{
	"dateOfReview",
	"user",
	"usefulnessVote",
	"totalVotes",
	"userRatingOutOf10",
	"reviewTitle",
	"review",
}

// movieFileRepository is the file-backed implementation of [MovieRepository].
// Each movie occupies one sub-directory of baseDir named after its title,
// containing metadata.json and movieReviews.csv. All writes go through a
// temp file + rename.
type movieFileRepository struct {
	baseDir string
	logger  *logger.Logger
}

// NewMovieFileRepository constructs a [MovieRepository] rooted at baseDir.
func NewMovieFileRepository(baseDir string, logger *logger.Logger) MovieRepository {
	logger.Debug().Str("dir", baseDir).Msg("creating movie file repository")
	return &movieFileRepository{
		baseDir: baseDir,
		logger:  logger,
	}
}

func (r *movieFileRepository) movieDir(title string) string {
	return filepath.Join(r.baseDir, title)
}

// ListTitles returns the names of all movie directories under baseDir.
// A missing base directory yields an empty list.
func (r *movieFileRepository) ListTitles(ctx context.Context) ([]string, error) {
	entries, err := os.ReadDir(r.baseDir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error reading movies dir: %w", err)
	}

	titles := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			titles = append(titles, entry.Name())
		}
	}

	return titles, nil
}

// Exists reports whether a directory for title is present.
func (r *movieFileRepository) Exists(ctx context.Context, title string) bool {
	info, err := os.Stat(r.movieDir(title))
	return err == nil && info.IsDir()
}

// LoadMetadata reads metadata.json for title.
//
// Returns [ErrMovieNotFound] when the movie directory does not exist and
// [ErrMetadataMissing] when the directory exists without a metadata file.
// The returned movie carries no reviews; use [LoadReviews] for those.
func (r *movieFileRepository) LoadMetadata(ctx context.Context, title string) (models.Movie, error) {
	if !r.Exists(ctx, title) {
		return models.Movie{}, ErrMovieNotFound
	}

	raw, err := os.ReadFile(filepath.Join(r.movieDir(title), metadataFileName))
	if errors.Is(err, fs.ErrNotExist) {
		return models.Movie{}, ErrMetadataMissing
	}
	if err != nil {
		return models.Movie{}, fmt.Errorf("error reading metadata for %q: %w", title, err)
	}

	var movie models.Movie
	if err := json.Unmarshal(raw, &movie); err != nil {
		return models.Movie{}, fmt.Errorf("error decoding metadata for %q: %w", title, err)
	}
	movie.Reviews = nil

	return movie, nil
}

// SaveMetadata writes metadata.json for title, creating the movie directory
// if needed. Reviews embedded in the movie value are not persisted here.
func (r *movieFileRepository) SaveMetadata(ctx context.Context, title string, movie models.Movie) error {
	log := logger.FromContext(ctx)

	dir := r.movieDir(title)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("error creating movie dir for %q: %w", title, err)
	}

	movie.Reviews = nil
	data, err := json.MarshalIndent(movie, "", "  ")
	if err != nil {
		return fmt.Errorf("error encoding metadata for %q: %w", title, err)
	}

	path := filepath.Join(dir, metadataFileName)
	if err := writeFileAtomic(path, data); err != nil {
		log.Err(err).Str("path", path).Msg("error writing movie metadata")
		return fmt.Errorf("error writing metadata for %q: %w", title, err)
	}

	return nil
}

// LoadReviews reads movieReviews.csv for title. A missing reviews file means
// the movie has no reviews yet and yields an empty slice.
func (r *movieFileRepository) LoadReviews(ctx context.Context, title string) ([]models.Review, error) {
	f, err := os.Open(filepath.Join(r.movieDir(title), reviewsFileName))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error reading reviews for %q: %w", title, err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("error parsing reviews for %q: %w", title, err)
	}
	if len(records) < 2 {
		// header only, or empty file
		return nil, nil
	}

	columns := map[string]int{}
	for i, name := range records[0] {
		columns[name] = i
	}

	reviews := make([]models.Review, 0, len(records)-1)
	for _, record := range records[1:] {
		review, err := reviewFromRecord(record, columns)
		if err != nil {
			return nil, fmt.Errorf("error parsing review row for %q: %w", title, err)
		}
		reviews = append(reviews, review)
	}

	return reviews, nil
}

// SaveReviews replaces movieReviews.csv for title. Saving an empty slice
// removes the file instead, matching the on-disk convention that a movie
// without reviews has no reviews file.
func (r *movieFileRepository) SaveReviews(ctx context.Context, title string, reviews []models.Review) error {
	log := logger.FromContext(ctx)

	dir := r.movieDir(title)
	path := filepath.Join(dir, reviewsFileName)

	if len(reviews) == 0 {
		if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("error removing reviews file for %q: %w", title, err)
		}
		return nil
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("error creating movie dir for %q: %w", title, err)
	}

	tmp, err := os.CreateTemp(dir, reviewsFileName+".tmp-*")
	if err != nil {
		return fmt.Errorf("error creating temp reviews file for %q: %w", title, err)
	}

	writer := csv.NewWriter(tmp)
	rows := make([][]string, 0, len(reviews)+1)
	rows = append(rows, reviewsHeader)
	for _, review := range reviews {
		rows = append(rows, recordFromReview(review))
	}

	if err := writer.WriteAll(rows); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("error writing reviews for %q: %w", title, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("error closing temp reviews file for %q: %w", title, err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		log.Err(err).Str("path", path).Msg("error replacing reviews file")
		return fmt.Errorf("error replacing reviews file for %q: %w", title, err)
	}

	return nil
}

// DeleteMovie removes the movie directory and everything in it.
func (r *movieFileRepository) DeleteMovie(ctx context.Context, title string) error {
	if !r.Exists(ctx, title) {
		return ErrMovieNotFound
	}

	if err := os.RemoveAll(r.movieDir(title)); err != nil {
		return fmt.Errorf("error deleting movie %q: %w", title, err)
	}

	return nil
}

func reviewFromRecord(record []string, columns map[string]int) (models.Review, error) {
	field := func(name string) string {
		i, ok := columns[name]
		if !ok || i >= len(record) {
			return ""
		}
		return record[i]
	}

	usefulness, err := strconv.Atoi(field("usefulnessVote"))
	if err != nil {
		return models.Review{}, fmt.Errorf("bad usefulnessVote: %w", err)
	}
	totalVotes, err := strconv.Atoi(field("totalVotes"))
	if err != nil {
		return models.Review{}, fmt.Errorf("bad totalVotes: %w", err)
	}
	rating, err := strconv.ParseFloat(field("userRatingOutOf10"), 64)
	if err != nil {
		return models.Review{}, fmt.Errorf("bad userRatingOutOf10: %w", err)
	}

	return models.Review{
		DateOfReview:      field("dateOfReview"),
		User:              field("user"),
		UsefulnessVote:    usefulness,
		TotalVotes:        totalVotes,
		UserRatingOutOf10: rating,
		ReviewTitle:       field("reviewTitle"),
		Review:            field("review"),
	}, nil
}

func recordFromReview(review models.Review) []string {
	return []string{
		review.DateOfReview,
		review.User,
		strconv.Itoa(review.UsefulnessVote),
		strconv.Itoa(review.TotalVotes),
		strconv.FormatFloat(review.UserRatingOutOf10, 'f', -1, 64),
		review.ReviewTitle,
		review.Review,
	}
}
