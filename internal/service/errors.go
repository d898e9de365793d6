package service

import "errors"

var (
	ErrInvalidUsername = errors.New("username must be 3-20 alphanumeric characters")
	ErrInvalidEmail    = errors.New("email address is not valid")
	ErrUsernameTaken   = errors.New("username is already taken")
	ErrEmailTaken      = errors.New("email is already registered")

	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrEmailNotVerified   = errors.New("email is not verified")
	ErrTooManyPenalties   = errors.New("account is blocked by penalty points")

	ErrInvalidMovieTitle = errors.New("movie title must not be empty")

	ErrEmptyReviewTitle = errors.New("review title must not be empty")
	ErrEmptyReviewText  = errors.New("review text must not be empty")
	ErrDuplicateReview  = errors.New("user has already reviewed this movie")
	ErrReviewNotFound   = errors.New("review not found")
	ErrNotReviewOwner   = errors.New("review belongs to another user")

	ErrEmptyListName      = errors.New("list name must not be empty")
	ErrListAlreadyExists  = errors.New("list already exists")
	ErrListNotFound       = errors.New("list not found")
	ErrMovieAlreadyInList = errors.New("movie is already in the list")
	ErrMovieNotInList     = errors.New("movie is not in the list")
)
