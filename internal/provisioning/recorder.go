package provisioning

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"github.com/julinemart/vendorid/internal/provisioning/domain"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const VendorProvisionedTopic = "vendor.provisioned"

type noopRecorder struct{}

func NewNoopRecorder() domain.Recorder {
	return &noopRecorder{}
}

func (r *noopRecorder) Record(ctx context.Context, vendorID snowflake.ID, result domain.Result) error {
	_ = ctx
	_ = vendorID
	_ = result
	return nil
}

type EventRecorder struct {
	db    *gorm.DB
	genID *snowflake.Node
}

func NewEventRecorder(db *gorm.DB, genID *snowflake.Node) domain.Recorder {
	return &EventRecorder{
		db:    db,
		genID: genID,
	}
}

func (r *EventRecorder) Record(ctx context.Context, vendorID snowflake.ID, result domain.Result) error {
	event := &domain.ProvisionEvent{
		ID:        r.genID.Generate(),
		VendorID:  vendorID,
		EventType: VendorProvisionedTopic,
		Payload: datatypes.JSONMap{
			"vendor_code":   result.VendorCode,
			"is_new_vendor": result.IsNewVendor,
			"auth_created":  result.AuthCreated,
			"email_sent":    result.EmailSent,
		},
	}

	return r.db.WithContext(ctx).Create(event).Error
}
