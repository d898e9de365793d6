// Package utils provides general-purpose helper utilities used across
// different parts of the application: context keys, password hashing,
// identifier generation, and HTTP response writing.
package utils

import (
	"context"

	"github.com/bestbytes/movie-review-api/models"
)

// contextKey is a private type for context keys. Using a dedicated type
// instead of a plain string prevents collisions with other packages that may
// store string-keyed values in the context.
type contextKey string

// String returns the string representation of the context key.
func (c contextKey) String() string {
	return string(c)
}

// AccountCtxKey is the key under which the authentication middleware stores
// the resolved account in the request context.
//
// Example of writing a value to the context:
//
//	ctx := context.WithValue(ctx, utils.AccountCtxKey, account)
var AccountCtxKey = contextKey("account")

// GetAccountFromContext retrieves the authenticated account from the context.
//
// Returns the account and an ok flag: true when an authenticated account
// is attached to ctx with the correct type, false otherwise.
func GetAccountFromContext(ctx context.Context) (*models.Account, bool) {
	account, ok := ctx.Value(AccountCtxKey).(*models.Account)
	return account, ok
}
