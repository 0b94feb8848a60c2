package repository

import (
	"context"

	"github.com/julinemart/vendorid/internal/vendors/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, vendor *domain.Vendor) error {
	return db.WithContext(ctx).Exec(
		`INSERT INTO vendors (id, vendor_code, vendor_name, email, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		vendor.ID,
		vendor.VendorCode,
		vendor.VendorName,
		vendor.Email,
		vendor.CreatedAt,
		vendor.UpdatedAt,
	).Error
}

func (r *repo) FindByCode(ctx context.Context, db *gorm.DB, code string) (*domain.Vendor, error) {
	var vendor domain.Vendor
	err := db.WithContext(ctx).Raw(
		`SELECT id, vendor_code, vendor_name, email, created_at, updated_at
		 FROM vendors WHERE vendor_code = ?`,
		code,
	).Scan(&vendor).Error
	if err != nil {
		return nil, err
	}
	if vendor.ID == 0 {
		return nil, nil
	}
	return &vendor, nil
}

func (r *repo) UpdateContact(ctx context.Context, db *gorm.DB, code string, fields domain.ContactFields) error {
	return db.WithContext(ctx).Exec(
		`UPDATE vendors SET vendor_name = ?, email = ?, updated_at = ? WHERE vendor_code = ?`,
		fields.VendorName,
		fields.Email,
		fields.UpdatedAt,
		code,
	).Error
}
