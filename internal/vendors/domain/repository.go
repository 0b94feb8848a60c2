package domain

import (
	"context"
	"time"

	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, vendor *Vendor) error
	FindByCode(ctx context.Context, db *gorm.DB, code string) (*Vendor, error)
	UpdateContact(ctx context.Context, db *gorm.DB, code string, fields ContactFields) error
}

type ContactFields struct {
	VendorName string
	Email      string
	UpdatedAt  time.Time
}
