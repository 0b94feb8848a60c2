package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/datatypes"
)

type ProvisionEvent struct {
	ID        snowflake.ID      `gorm:"primaryKey" json:"id"`
	VendorID  snowflake.ID      `gorm:"not null;index" json:"vendor_id"`
	EventType string            `gorm:"not null" json:"event_type"`
	Payload   datatypes.JSONMap `gorm:"type:jsonb;not null;default:'{}'" json:"payload,omitempty"`
	CreatedAt time.Time         `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (ProvisionEvent) TableName() string {
	return "vendor_provision_events"
}
