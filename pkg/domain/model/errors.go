package model

import "github.com/m-mizutani/goerr/v2"

// Error tags. The HTTP layer maps them to status codes.
var (
	// ErrTagClassificationFailure marks any failure of the content safety
	// service: network, timeout, non-2xx status or malformed response.
	ErrTagClassificationFailure = goerr.NewTag("classification_failure")

	// ErrTagConfiguration marks invalid startup configuration
	ErrTagConfiguration = goerr.NewTag("configuration")

	ErrTagNotFound     = goerr.NewTag("not_found")
	ErrTagValidation   = goerr.NewTag("validation")
	ErrTagConflict     = goerr.NewTag("conflict")
	ErrTagUnauthorized = goerr.NewTag("unauthorized")
	ErrTagForbidden    = goerr.NewTag("forbidden")
	ErrTagRateLimited  = goerr.NewTag("rate_limited")
)

// Sentinel errors for domain operations
var (
	ErrUserNotFound      = goerr.New("user not found", goerr.T(ErrTagNotFound))
	ErrPostNotFound      = goerr.New("post not found", goerr.T(ErrTagNotFound))
	ErrSessionNotFound   = goerr.New("session not found", goerr.T(ErrTagNotFound))
	ErrEmailTaken        = goerr.New("email already registered", goerr.T(ErrTagConflict))
	ErrUsernameTaken     = goerr.New("username already taken", goerr.T(ErrTagConflict))
	ErrInvalidCredential = goerr.New("invalid username or password", goerr.T(ErrTagUnauthorized))
	ErrSessionExpired    = goerr.New("session expired", goerr.T(ErrTagUnauthorized))
	ErrNotPostOwner      = goerr.New("post belongs to another user", goerr.T(ErrTagForbidden))
)
