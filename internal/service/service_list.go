package service

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/bestbytes/movie-review-api/internal/logger"
	"github.com/bestbytes/movie-review-api/internal/store"
)

// listService is the concrete implementation of ListService. List ownership
// keys are the lowercased username, so "Alice" and "alice" share one set of
// lists.
type listService struct {
	listRepository  store.ListRepository
	movieRepository store.MovieRepository
	mu              sync.Mutex
	logger          *logger.Logger
}

// NewListService constructs a ListService over the given repositories. The
// movie repository is consulted so only catalog movies can enter a list.
func NewListService(listRepository store.ListRepository, movieRepository store.MovieRepository, logger *logger.Logger) ListService {
	return &listService{
		listRepository:  listRepository,
		movieRepository: movieRepository,
		logger:          logger,
	}
}

// CreateList creates an empty named list for the user.
//
// Returns ErrEmptyListName for a blank name and ErrListAlreadyExists when the
// user already has a list with that name.
func (l *listService) CreateList(ctx context.Context, username, name string) error {
	log := logger.FromContext(ctx)

	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyListName
	}
	owner := listOwnerKey(username)

	l.mu.Lock()
	defer l.mu.Unlock()

	lists, err := l.listRepository.LoadLists(ctx)
	if err != nil {
		return fmt.Errorf("error loading movie lists: %w", err)
	}

	if _, exists := lists[owner][name]; exists {
		return ErrListAlreadyExists
	}
	if lists[owner] == nil {
		lists[owner] = map[string][]string{}
	}
	lists[owner][name] = []string{}

	if err := l.listRepository.SaveLists(ctx, lists); err != nil {
		return fmt.Errorf("error saving movie lists: %w", err)
	}

	log.Info().Str("owner", owner).Str("list", name).Msg("movie list created")

	return nil
}

// AddMovieToList appends a catalog movie to one of the user's lists.
//
// Returns ErrListNotFound when the list does not exist,
// store.ErrMovieNotFound when the title is not in the catalog, and
// ErrMovieAlreadyInList when the list already holds the title.
func (l *listService) AddMovieToList(ctx context.Context, username, name, title string) error {
	log := logger.FromContext(ctx)

	owner := listOwnerKey(username)

	l.mu.Lock()
	defer l.mu.Unlock()

	lists, err := l.listRepository.LoadLists(ctx)
	if err != nil {
		return fmt.Errorf("error loading movie lists: %w", err)
	}

	titles, exists := lists[owner][name]
	if !exists {
		return ErrListNotFound
	}
	if !l.movieRepository.Exists(ctx, title) {
		return store.ErrMovieNotFound
	}
	for _, existing := range titles {
		if existing == title {
			return ErrMovieAlreadyInList
		}
	}

	lists[owner][name] = append(titles, title)
	if err := l.listRepository.SaveLists(ctx, lists); err != nil {
		return fmt.Errorf("error saving movie lists: %w", err)
	}

	log.Info().Str("owner", owner).Str("list", name).Str("title", title).Msg("movie added to list")

	return nil
}

// RemoveMovieFromList removes a title from one of the user's lists. The list
// itself stays, even when it becomes empty.
//
// Returns ErrListNotFound or ErrMovieNotInList.
func (l *listService) RemoveMovieFromList(ctx context.Context, username, name, title string) error {
	log := logger.FromContext(ctx)

	owner := listOwnerKey(username)

	l.mu.Lock()
	defer l.mu.Unlock()

	lists, err := l.listRepository.LoadLists(ctx)
	if err != nil {
		return fmt.Errorf("error loading movie lists: %w", err)
	}

	titles, exists := lists[owner][name]
	if !exists {
		return ErrListNotFound
	}

	idx := -1
	for i, existing := range titles {
		if existing == title {
			idx = i
			break
		}
	}
	if idx < 0 {
		return ErrMovieNotInList
	}

	lists[owner][name] = append(titles[:idx], titles[idx+1:]...)
	if err := l.listRepository.SaveLists(ctx, lists); err != nil {
		return fmt.Errorf("error saving movie lists: %w", err)
	}

	log.Info().Str("owner", owner).Str("list", name).Str("title", title).Msg("movie removed from list")

	return nil
}

// Lists returns all of the user's lists keyed by list name. A user without
// lists gets an empty map, not an error.
func (l *listService) Lists(ctx context.Context, username string) (map[string][]string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	lists, err := l.listRepository.LoadLists(ctx)
	if err != nil {
		return nil, fmt.Errorf("error loading movie lists: %w", err)
	}

	owned, ok := lists[listOwnerKey(username)]
	if !ok {
		return map[string][]string{}, nil
	}

	return owned, nil
}

// listOwnerKey folds the username used as the ownership key in the lists
// document.
func listOwnerKey(username string) string {
	return strings.ToLower(username)
}
