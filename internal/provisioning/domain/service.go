package domain

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"
)

type Request struct {
	VendorCode string `json:"vendor_code"`
	VendorName string `json:"vendor_name"`
	Email      string `json:"email"`
}

// Result aggregates the outcome of one provisioning run. Err carries a soft
// failure (principal resolution or recovery link) that did not void the
// vendor record write.
type Result struct {
	VendorCode  string
	VendorName  string
	Email       string
	IsNewVendor bool
	AuthCreated bool
	EmailSent   bool
	UserID      string
	RedirectURL string
	Err         error
}

type Service interface {
	Provision(ctx context.Context, req Request) (*Result, error)
}

// Recorder persists a trail of completed provisioning runs.
type Recorder interface {
	Record(ctx context.Context, vendorID snowflake.ID, result Result) error
}

var ErrInvalidRequest = errors.New("invalid provisioning request")
