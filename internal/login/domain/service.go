package domain

import (
	"context"
	"errors"
	"time"
)

type Request struct {
	VendorCode string `json:"vendor_code"`
	Password   string `json:"password"`
}

type Result struct {
	VendorCode string    `json:"vendor_code"`
	VendorName string    `json:"vendor_name"`
	Token      string    `json:"token"`
	ExpiresAt  time.Time `json:"-"`
}

type Service interface {
	Login(ctx context.Context, req Request) (*Result, error)
}

// ErrInvalidVendor covers every authentication miss with one generic message
// so callers cannot probe which vendor codes exist.
var ErrInvalidVendor = errors.New("invalid vendor")
