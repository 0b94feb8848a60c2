package login

import (
	"go.uber.org/fx"
)

var Module = fx.Module("login.service",
	fx.Provide(New),
)
