package domain

import (
	"context"
	"errors"
	"strings"
)

type UpsertRequest struct {
	VendorCode string
	VendorName string
	Email      string
}

type UpsertResponse struct {
	Vendor Vendor
	IsNew  bool
}

type Service interface {
	// Upsert ensures exactly one vendor row exists for the normalized code,
	// creating it or refreshing name/email as needed.
	Upsert(context.Context, UpsertRequest) (UpsertResponse, error)
	GetByCode(context.Context, string) (Vendor, error)
}

var (
	ErrInvalidCode  = errors.New("invalid_vendor_code")
	ErrInvalidName  = errors.New("invalid_vendor_name")
	ErrInvalidEmail = errors.New("invalid_email")
	ErrNotFound     = errors.New("not_found")
)

// NormalizeCode uppercases a vendor code so lookups are case-insensitive.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// NormalizeEmail lowercases an email so it matches the directory principal.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
