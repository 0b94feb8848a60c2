package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

type Vendor struct {
	ID         snowflake.ID `gorm:"primaryKey" json:"id"`
	VendorCode string       `gorm:"not null;uniqueIndex" json:"vendor_code"`
	VendorName string       `gorm:"not null" json:"vendor_name"`
	Email      string       `gorm:"not null" json:"email"`
	CreatedAt  time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt  time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}
