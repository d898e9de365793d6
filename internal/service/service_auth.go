// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 BestBytes

package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/bestbytes/movie-review-api/internal/config"
	"github.com/bestbytes/movie-review-api/internal/logger"
	"github.com/bestbytes/movie-review-api/internal/store"
	"github.com/bestbytes/movie-review-api/internal/utils"
	"github.com/bestbytes/movie-review-api/internal/validators"
	"github.com/bestbytes/movie-review-api/models"
)

// bootstrapAdminUsername is promoted to RoleAdmin when loaded from the
// registry file. Further admins are created with SetRole.
const bootstrapAdminUsername = "admin"

// session is one live login. Expiry is computed lazily from createdAt; there
// is no background sweeper.
type session struct {
	username  string
	createdAt time.Time
}

// authService is the concrete implementation of AuthService.
// All mutable state (accounts, sessions, penalty ledgers) lives behind a
// single mutex; every operation is a locked read-modify-write.
type authService struct {
	mu sync.Mutex

	// accounts is the in-memory registry keyed by username.
	accounts map[string]*models.Account

	// sessions maps opaque tokens to live logins.
	sessions map[string]session

	accountRepository store.AccountRepository

	// sessionTimeout is how long a token stays valid after login.
	sessionTimeout time.Duration

	// penaltyThreshold blocks login when an account's total points reach it.
	// The comparison is inclusive.
	penaltyThreshold int

	// now is the clock; replaced in tests to cross the session boundary.
	now func() time.Time

	uuid   *utils.UUIDGenerator
	logger *logger.Logger
}

// NewAuthService constructs an AuthService backed by the given account
// repository and loads the persisted registry into memory.
//
// Accounts restored from disk carry only username, email, password hash and
// the verified flag; they receive a fresh ID and the default role. The
// account named "admin" is restored with the admin role.
func NewAuthService(ctx context.Context, accountRepository store.AccountRepository, cfg config.App, logger *logger.Logger) (AuthService, error) {
	a := &authService{
		accounts:          make(map[string]*models.Account),
		sessions:          make(map[string]session),
		accountRepository: accountRepository,
		sessionTimeout:    cfg.SessionTimeout,
		penaltyThreshold:  cfg.PenaltyThreshold,
		now:               time.Now,
		uuid:              utils.NewUUIDGenerator(),
		logger:            logger,
	}

	stored, err := accountRepository.LoadAccounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("error loading account registry: %w", err)
	}

	for username, rec := range stored {
		role := models.RoleUser
		if username == bootstrapAdminUsername {
			role = models.RoleAdmin
		}

		a.accounts[username] = &models.Account{
			ID:           a.uuid.Generate(),
			Username:     username,
			Email:        rec.Email,
			PasswordHash: rec.Password,
			Role:         role,
			IsVerified:   rec.IsVerified,
			CreatedAt:    a.now(),
		}
	}

	logger.Info().Int("accounts", len(a.accounts)).Msg("account registry loaded")

	return a, nil
}

// Register creates a new account with a fresh ID and verification token and
// persists the updated registry.
//
// Returns the created account or:
//   - ErrInvalidUsername / ErrInvalidEmail on format violations.
//   - utils.ErrWeakPassword when the password is outside the 8-72 byte bounds.
//   - ErrUsernameTaken / ErrEmailTaken on uniqueness violations.
//   - A wrapped storage error if persisting fails; the in-memory insert is
//     rolled back so the registry is never half-applied.
func (a *authService) Register(ctx context.Context, username, email, password string) (models.Account, error) {
	log := logger.FromContext(ctx)

	if !validators.ValidateUsername(username) {
		return models.Account{}, ErrInvalidUsername
	}
	if !validators.ValidateEmail(email) {
		return models.Account{}, ErrInvalidEmail
	}

	// bcrypt is slow on purpose, so hash before taking the lock.
	passwordHash, err := utils.HashPassword(password)
	if err != nil {
		return models.Account{}, err
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if _, taken := a.accounts[username]; taken {
		return models.Account{}, ErrUsernameTaken
	}
	for _, existing := range a.accounts {
		if existing.Email == email {
			return models.Account{}, ErrEmailTaken
		}
	}

	account := &models.Account{
		ID:                a.uuid.Generate(),
		Username:          username,
		Email:             email,
		PasswordHash:      passwordHash,
		Role:              models.RoleUser,
		VerificationToken: a.uuid.Generate(),
		CreatedAt:         a.now(),
	}
	a.accounts[username] = account

	if err := a.persistLocked(ctx); err != nil {
		delete(a.accounts, username)
		log.Err(err).Str("username", username).Msg("account registration rolled back")
		return models.Account{}, fmt.Errorf("error persisting account registry: %w", err)
	}

	log.Info().Str("username", username).Msg("account registered")

	return *account, nil
}

// VerifyEmail marks the account as verified when token matches its
// verification token. A mismatching token returns false regardless of the
// verification state; resubmitting the correct token after verification
// returns true, so the operation is idempotent for the correct token only.
//
// Returns ErrUserNotFound when the username is unknown.
func (a *authService) VerifyEmail(ctx context.Context, username, token string) (bool, error) {
	log := logger.FromContext(ctx)

	a.mu.Lock()
	defer a.mu.Unlock()

	account, ok := a.accounts[username]
	if !ok {
		return false, ErrUserNotFound
	}

	if token == "" || token != account.VerificationToken {
		return false, nil
	}
	if account.IsVerified {
		return true, nil
	}

	account.IsVerified = true
	if err := a.persistLocked(ctx); err != nil {
		account.IsVerified = false
		log.Err(err).Str("username", username).Msg("email verification rolled back")
		return false, fmt.Errorf("error persisting account registry: %w", err)
	}

	return true, nil
}

// Login authenticates the account and opens a new session.
//
// Expired sessions are purged first. Returns the opaque session token or:
//   - ErrInvalidCredentials for an unknown username or a wrong password.
//   - ErrEmailNotVerified when the password is correct but the email is not
//     confirmed yet.
//   - ErrTooManyPenalties when total penalty points reach the threshold.
func (a *authService) Login(ctx context.Context, username, password string) (string, error) {
	log := logger.FromContext(ctx)

	a.mu.Lock()
	defer a.mu.Unlock()

	a.purgeExpiredLocked()

	account, ok := a.accounts[username]
	if !ok {
		return "", ErrInvalidCredentials
	}
	if !utils.VerifyPassword(password, account.PasswordHash) {
		return "", ErrInvalidCredentials
	}
	if !account.IsVerified {
		return "", ErrEmailNotVerified
	}
	if account.TotalPoints() >= a.penaltyThreshold {
		log.Warn().
			Str("username", username).
			Int("points", account.TotalPoints()).
			Int("threshold", a.penaltyThreshold).
			Msg("login blocked by penalty points")
		return "", ErrTooManyPenalties
	}

	token := utils.NewSessionToken()
	loginTime := a.now()
	a.sessions[token] = session{username: username, createdAt: loginTime}
	account.LastLogin = &loginTime

	log.Info().Str("username", username).Msg("user logged in")

	return token, nil
}

// Logout removes the session for token. It reports whether a session
// existed; logging out twice is not an error.
func (a *authService) Logout(ctx context.Context, token string) bool {
	a.mu.Lock()
	defer a.mu.Unlock()

	_, ok := a.sessions[token]
	delete(a.sessions, token)

	return ok
}

// ResolveSession returns the account owning token, or false when the token
// is unknown or expired. Expired sessions are purged first.
//
// The returned account is a copy; callers may not mutate registry state
// through it.
func (a *authService) ResolveSession(ctx context.Context, token string) (*models.Account, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.purgeExpiredLocked()

	s, ok := a.sessions[token]
	if !ok {
		return nil, false
	}

	account, ok := a.accounts[s.username]
	if !ok {
		delete(a.sessions, token)
		return nil, false
	}

	snapshot := *account
	return &snapshot, true
}

// GrantPenalty appends a grant to the account's penalty ledger. Each grant
// carries a per-account monotonic sequence number, so two grants issued
// within clock resolution remain distinguishable.
//
// Returns ErrUserNotFound when the username is unknown.
func (a *authService) GrantPenalty(ctx context.Context, username string, points int, reason, grantedBy string) error {
	log := logger.FromContext(ctx)

	a.mu.Lock()
	defer a.mu.Unlock()

	account, ok := a.accounts[username]
	if !ok {
		return ErrUserNotFound
	}

	var seq uint64 = 1
	if n := len(account.Penalties); n > 0 {
		seq = account.Penalties[n-1].Seq + 1
	}

	account.Penalties = append(account.Penalties, models.PenaltyGrant{
		Points:    points,
		Reason:    reason,
		GrantedBy: grantedBy,
		IssuedAt:  a.now(),
		Seq:       seq,
	})

	log.Info().
		Str("username", username).
		Int("points", points).
		Int("total", account.TotalPoints()).
		Msg("penalty granted")

	return nil
}

// Penalties returns a copy of the account's penalty ledger in issuance order.
//
// Returns ErrUserNotFound when the username is unknown.
func (a *authService) Penalties(ctx context.Context, username string) ([]models.PenaltyGrant, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	account, ok := a.accounts[username]
	if !ok {
		return nil, ErrUserNotFound
	}

	grants := make([]models.PenaltyGrant, len(account.Penalties))
	copy(grants, account.Penalties)

	return grants, nil
}

// SetRole changes the account's role.
//
// Returns ErrUserNotFound when the username is unknown.
func (a *authService) SetRole(ctx context.Context, username, role string) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	account, ok := a.accounts[username]
	if !ok {
		return ErrUserNotFound
	}
	account.Role = role

	return nil
}

// purgeExpiredLocked drops sessions older than the session timeout.
// Callers must hold a.mu.
func (a *authService) purgeExpiredLocked() {
	cutoff := a.now().Add(-a.sessionTimeout)
	for token, s := range a.sessions {
		if s.createdAt.Before(cutoff) {
			delete(a.sessions, token)
		}
	}
}

// persistLocked writes the current registry to disk. Callers must hold a.mu.
func (a *authService) persistLocked(ctx context.Context) error {
	stored := make(map[string]store.StoredAccount, len(a.accounts))
	for username, account := range a.accounts {
		stored[username] = store.StoredAccount{
			Email:      account.Email,
			Password:   account.PasswordHash,
			IsVerified: account.IsVerified,
		}
	}

	return a.accountRepository.SaveAccounts(ctx, stored)
}
