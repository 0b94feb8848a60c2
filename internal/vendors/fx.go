package vendors

import (
	"github.com/julinemart/vendorid/internal/vendors/repository"
	"github.com/julinemart/vendorid/internal/vendors/service"
	"go.uber.org/fx"
)

var Module = fx.Module("vendor.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
