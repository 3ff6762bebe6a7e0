package models

import (
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var (
	// ErrNotFound is returned by repositories when no entity matches.
	// Callers check it with errors.Is; it is never a storage failure.
	ErrNotFound = status.Error(codes.NotFound, "not found")

	// ErrEmailExists is returned when a user create would duplicate an email.
	ErrEmailExists = status.Error(codes.AlreadyExists, "email already registered")

	// ErrUserNotFound is returned when a conversation references a user
	// that does not exist.
	ErrUserNotFound = status.Error(codes.FailedPrecondition, "referenced user not found")
)
