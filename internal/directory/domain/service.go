package domain

import (
	"context"
	"errors"
)

// Admin is the administrative surface of the external identity directory.
// Implementations decide the failure kind; callers only match the sentinels.
type Admin interface {
	GetPrincipalByEmail(ctx context.Context, email string) (*Principal, error)
	CreatePrincipal(ctx context.Context, req CreatePrincipalRequest) (*Principal, error)
	GenerateRecoveryLink(ctx context.Context, email, redirectTo string) error
}

var (
	ErrPrincipalNotFound = errors.New("principal not found")
	ErrPrincipalExists   = errors.New("principal already exists")
	ErrUnavailable       = errors.New("directory unavailable")
)
