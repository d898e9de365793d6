package http

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/bestbytes/movie-review-api/internal/logger"
	"github.com/bestbytes/movie-review-api/internal/service"
	"github.com/bestbytes/movie-review-api/models"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mock services
// ─────────────────────────────────────────────

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	registerFn       func(ctx context.Context, username, email, password string) (models.Account, error)
	verifyEmailFn    func(ctx context.Context, username, token string) (bool, error)
	loginFn          func(ctx context.Context, username, password string) (string, error)
	logoutFn         func(ctx context.Context, token string) bool
	resolveSessionFn func(ctx context.Context, token string) (*models.Account, bool)
	grantPenaltyFn   func(ctx context.Context, username string, points int, reason, grantedBy string) error
	penaltiesFn      func(ctx context.Context, username string) ([]models.PenaltyGrant, error)
	setRoleFn        func(ctx context.Context, username, role string) error
}

func (m *mockAuthService) Register(ctx context.Context, username, email, password string) (models.Account, error) {
	return m.registerFn(ctx, username, email, password)
}

func (m *mockAuthService) VerifyEmail(ctx context.Context, username, token string) (bool, error) {
	return m.verifyEmailFn(ctx, username, token)
}

func (m *mockAuthService) Login(ctx context.Context, username, password string) (string, error) {
	return m.loginFn(ctx, username, password)
}

func (m *mockAuthService) Logout(ctx context.Context, token string) bool {
	return m.logoutFn(ctx, token)
}

func (m *mockAuthService) ResolveSession(ctx context.Context, token string) (*models.Account, bool) {
	return m.resolveSessionFn(ctx, token)
}

func (m *mockAuthService) GrantPenalty(ctx context.Context, username string, points int, reason, grantedBy string) error {
	return m.grantPenaltyFn(ctx, username, points, reason, grantedBy)
}

func (m *mockAuthService) Penalties(ctx context.Context, username string) ([]models.PenaltyGrant, error) {
	return m.penaltiesFn(ctx, username)
}

func (m *mockAuthService) SetRole(ctx context.Context, username, role string) error {
	return m.setRoleFn(ctx, username, role)
}

// mockMovieService implements service.MovieService for unit tests.
type mockMovieService struct {
	listFn   func(ctx context.Context) ([]models.Movie, error)
	getFn    func(ctx context.Context, title string) (models.Movie, error)
	createFn func(ctx context.Context, movie models.Movie) error
	updateFn func(ctx context.Context, title string, movie models.Movie) (models.Movie, error)
	deleteFn func(ctx context.Context, title string) error
	searchFn func(ctx context.Context, filter models.MovieFilter) ([]models.Movie, error)
}

func (m *mockMovieService) ListMovies(ctx context.Context) ([]models.Movie, error) {
	return m.listFn(ctx)
}

func (m *mockMovieService) GetMovie(ctx context.Context, title string) (models.Movie, error) {
	return m.getFn(ctx, title)
}

func (m *mockMovieService) CreateMovie(ctx context.Context, movie models.Movie) error {
	return m.createFn(ctx, movie)
}

func (m *mockMovieService) UpdateMovie(ctx context.Context, title string, movie models.Movie) (models.Movie, error) {
	return m.updateFn(ctx, title, movie)
}

func (m *mockMovieService) DeleteMovie(ctx context.Context, title string) error {
	return m.deleteFn(ctx, title)
}

func (m *mockMovieService) SearchMovies(ctx context.Context, filter models.MovieFilter) ([]models.Movie, error) {
	return m.searchFn(ctx, filter)
}

// mockReviewService implements service.ReviewService for unit tests.
type mockReviewService struct {
	listFn       func(ctx context.Context, title string) ([]models.Review, error)
	listByUserFn func(ctx context.Context, username string) (map[string][]models.Review, error)
	addFn        func(ctx context.Context, title string, review models.Review) error
	updateFn     func(ctx context.Context, title string, index int, actor models.Account, review models.Review) error
	deleteFn     func(ctx context.Context, title string, index int, actor models.Account) error
}

func (m *mockReviewService) ListReviews(ctx context.Context, title string) ([]models.Review, error) {
	return m.listFn(ctx, title)
}

func (m *mockReviewService) ListReviewsByUser(ctx context.Context, username string) (map[string][]models.Review, error) {
	return m.listByUserFn(ctx, username)
}

func (m *mockReviewService) AddReview(ctx context.Context, title string, review models.Review) error {
	return m.addFn(ctx, title, review)
}

func (m *mockReviewService) UpdateReview(ctx context.Context, title string, index int, actor models.Account, review models.Review) error {
	return m.updateFn(ctx, title, index, actor, review)
}

func (m *mockReviewService) DeleteReview(ctx context.Context, title string, index int, actor models.Account) error {
	return m.deleteFn(ctx, title, index, actor)
}

// mockListService implements service.ListService for unit tests.
type mockListService struct {
	createFn func(ctx context.Context, username, name string) error
	addFn    func(ctx context.Context, username, name, title string) error
	removeFn func(ctx context.Context, username, name, title string) error
	listsFn  func(ctx context.Context, username string) (map[string][]string, error)
}

func (m *mockListService) CreateList(ctx context.Context, username, name string) error {
	return m.createFn(ctx, username, name)
}

func (m *mockListService) AddMovieToList(ctx context.Context, username, name, title string) error {
	return m.addFn(ctx, username, name, title)
}

func (m *mockListService) RemoveMovieFromList(ctx context.Context, username, name, title string) error {
	return m.removeFn(ctx, username, name, title)
}

func (m *mockListService) Lists(ctx context.Context, username string) (map[string][]string, error) {
	return m.listsFn(ctx, username)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// newTestHandler builds a Handler over the given service mocks. Unused
// services may be left nil when the exercised handler never touches them.
func newTestHandler(t *testing.T, svcs *service.Services) *Handler {
	t.Helper()
	return NewHandler(svcs, logger.Nop())
}

// jsonBody serialises v to a JSON request body string.
func jsonBody(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}

// sessionAuth returns a mockAuthService whose ResolveSession accepts the
// given token and yields account.
func sessionAuth(token string, account models.Account) *mockAuthService {
	return &mockAuthService{
		resolveSessionFn: func(_ context.Context, got string) (*models.Account, bool) {
			if got != token {
				return nil, false
			}
			snapshot := account
			return &snapshot, true
		},
	}
}

// fixtures shared across handler tests.
var (
	aliceAccount = models.Account{ID: "id-1", Username: "alice", Email: "alice@example.com", Role: models.RoleUser, IsVerified: true}
	adminAccount = models.Account{ID: "id-0", Username: "admin", Email: "admin@example.com", Role: models.RoleAdmin, IsVerified: true}
)
