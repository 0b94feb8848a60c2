package login

import (
	"context"
	"errors"

	"github.com/julinemart/vendorid/internal/login/domain"
	"github.com/julinemart/vendorid/internal/token"
	vendordomain "github.com/julinemart/vendorid/internal/vendors/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type Params struct {
	fx.In

	Log     *zap.Logger
	Vendors vendordomain.Service
	Issuer  *token.Issuer
}

type service struct {
	log     *zap.Logger
	vendors vendordomain.Service
	issuer  *token.Issuer
}

func New(p Params) domain.Service {
	return &service{
		log:     p.Log.Named("login.service"),
		vendors: p.Vendors,
		issuer:  p.Issuer,
	}
}

// Login resolves the vendor code and mints a claim token. The password field
// is accepted for wire compatibility but not verified here: the directory
// service holds the only credential, and the platform session flow checks it.
func (s *service) Login(ctx context.Context, req domain.Request) (*domain.Result, error) {
	found, err := s.vendors.GetByCode(ctx, req.VendorCode)
	if err != nil {
		if errors.Is(err, vendordomain.ErrNotFound) || errors.Is(err, vendordomain.ErrInvalidCode) {
			return nil, domain.ErrInvalidVendor
		}
		return nil, err
	}

	signed, expiresAt, err := s.issuer.Issue(found.VendorCode)
	if err != nil {
		return nil, err
	}

	s.log.Info("vendor token issued",
		zap.String("vendor_code", found.VendorCode),
	)

	return &domain.Result{
		VendorCode: found.VendorCode,
		VendorName: found.VendorName,
		Token:      signed,
		ExpiresAt:  expiresAt,
	}, nil
}
