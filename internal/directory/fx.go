package directory

import (
	"github.com/julinemart/vendorid/internal/config"
	"github.com/julinemart/vendorid/internal/directory/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Module("directory.client",
	fx.Provide(NewAdmin),
)

func NewAdmin(cfg config.Config, log *zap.Logger) domain.Admin {
	return NewClient(cfg, log)
}
