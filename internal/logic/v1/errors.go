// Package v1 provides the business logic for API version 1: entity services
// with save-or-update dispatch, search with pagination, and session-based
// authentication.
//
// Error Handling:
// This package defines sentinel errors for the caller-visible failure
// outcomes. They are wrapped with context using fmt.Errorf("%w") when
// returned, and handlers dispatch on them with errors.Is:
//
//	switch {
//	case errors.Is(err, logicv1.ErrInvalidCredentials):
//	    c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid username or password"})
//	case errors.Is(err, logicv1.ErrChefExists):
//	    c.JSON(http.StatusConflict, gin.H{"error": "Username already exists"})
//	default:
//	    c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
//	}
//
// Storage failures underneath search and list reads are not part of this
// taxonomy: the services absorb them, log, and degrade to an empty result.
package v1

import "errors"

// Sentinel errors for logic operations.
// These errors should be wrapped with context using fmt.Errorf("%w") when
// returned.
var (
	// ErrInvalidCredentials covers both an unknown username and a wrong
	// password. The two causes are intentionally indistinguishable to the
	// caller.
	// HTTP Status: 401 Unauthorized
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUsernameRequired indicates a blank username on registration,
	// rejected before any storage call.
	// HTTP Status: 400 Bad Request
	ErrUsernameRequired = errors.New("username is required")

	// ErrPasswordRequired indicates a blank password on registration,
	// rejected before any storage call.
	// HTTP Status: 400 Bad Request
	ErrPasswordRequired = errors.New("password is required")

	// ErrChefExists indicates the username is already taken.
	// HTTP Status: 409 Conflict
	ErrChefExists = errors.New("username already exists")
)
