package token

import (
	"github.com/julinemart/vendorid/internal/config"
	"go.uber.org/fx"
)

var Module = fx.Module("token.issuer",
	fx.Provide(NewFromConfig),
)

func NewFromConfig(cfg config.Config) (*Issuer, error) {
	return NewIssuer(cfg.SigningSecret())
}
