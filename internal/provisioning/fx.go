package provisioning

import (
	"github.com/bwmarrin/snowflake"
	"github.com/julinemart/vendorid/internal/config"
	"github.com/julinemart/vendorid/internal/provisioning/domain"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

var Module = fx.Module("provisioning.service",
	fx.Provide(newRecorder),
	fx.Provide(New),
)

func newRecorder(cfg config.Config, db *gorm.DB, genID *snowflake.Node) domain.Recorder {
	if !cfg.ProvisionEvents {
		return NewNoopRecorder()
	}

	return NewEventRecorder(db, genID)
}
