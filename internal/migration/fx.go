package migration

import (
	"github.com/julinemart/vendorid/internal/config"
	provisioningdomain "github.com/julinemart/vendorid/internal/provisioning/domain"
	vendordomain "github.com/julinemart/vendorid/internal/vendors/domain"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

var Module = fx.Module("migrations",
	fx.Invoke(func(conn *gorm.DB, cfg config.Config) error {
		// The SQL migrations target postgres; other dialects (local dev,
		// sqlite) fall back to schema sync from the models.
		if cfg.DBType != "postgres" {
			return conn.AutoMigrate(
				&vendordomain.Vendor{},
				&provisioningdomain.ProvisionEvent{},
			)
		}

		sqlDB, err := conn.DB()
		if err != nil {
			return err
		}

		return RunMigrations(sqlDB)
	}),
)
