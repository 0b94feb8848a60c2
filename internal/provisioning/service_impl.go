package provisioning

import (
	"context"
	"errors"
	"strings"

	"github.com/julinemart/vendorid/internal/config"
	directorydomain "github.com/julinemart/vendorid/internal/directory/domain"
	"github.com/julinemart/vendorid/internal/provisioning/domain"
	vendordomain "github.com/julinemart/vendorid/internal/vendors/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// VendorEntryPath is appended to the site URL as the recovery link redirect.
const VendorEntryPath = "/vendor/index.html"

type Params struct {
	fx.In

	Cfg       config.Config
	Log       *zap.Logger
	Vendors   vendordomain.Service
	Directory directorydomain.Admin
	Recorder  domain.Recorder
}

type service struct {
	log       *zap.Logger
	vendors   vendordomain.Service
	directory directorydomain.Admin
	recorder  domain.Recorder
	siteURL   string
}

func New(p Params) domain.Service {
	return &service{
		log:       p.Log.Named("provisioning.service"),
		vendors:   p.Vendors,
		directory: p.Directory,
		recorder:  p.Recorder,
		siteURL:   p.Cfg.SiteURL,
	}
}

func (s *service) Provision(ctx context.Context, req domain.Request) (*domain.Result, error) {
	code := vendordomain.NormalizeCode(req.VendorCode)
	name := strings.TrimSpace(req.VendorName)
	email := vendordomain.NormalizeEmail(req.Email)
	if code == "" || name == "" || email == "" {
		return nil, domain.ErrInvalidRequest
	}

	// The vendor record write is the only fatal step. Everything after it is
	// best effort: the row is committed and a retry is idempotent.
	upserted, err := s.vendors.Upsert(ctx, vendordomain.UpsertRequest{
		VendorCode: code,
		VendorName: name,
		Email:      email,
	})
	if err != nil {
		return nil, err
	}

	result := &domain.Result{
		VendorCode:  code,
		VendorName:  name,
		Email:       email,
		IsNewVendor: upserted.IsNew,
		RedirectURL: s.siteURL + VendorEntryPath,
	}

	principalID, created, err := s.resolvePrincipal(ctx, email, code, name)
	if err != nil {
		s.log.Error("principal resolution failed",
			zap.String("vendor_code", code),
			zap.Error(err),
		)
		result.Err = err
		return result, nil
	}
	result.UserID = principalID
	result.AuthCreated = created

	if err := s.directory.GenerateRecoveryLink(ctx, email, result.RedirectURL); err != nil {
		s.log.Warn("recovery link generation failed",
			zap.String("email", email),
			zap.Error(err),
		)
	} else {
		result.EmailSent = true
	}

	if err := s.recorder.Record(ctx, upserted.Vendor.ID, *result); err != nil {
		s.log.Warn("provision event not recorded",
			zap.String("vendor_code", code),
			zap.Error(err),
		)
	}

	return result, nil
}

// resolvePrincipal ensures exactly one directory principal exists for the
// email. Created principals are pre-confirmed; the recovery link is the
// actual invitation. A lost create race resolves to the winner's principal.
func (s *service) resolvePrincipal(ctx context.Context, email, code, name string) (string, bool, error) {
	principal, err := s.directory.GetPrincipalByEmail(ctx, email)
	if err == nil {
		return principal.ID, false, nil
	}
	if !errors.Is(err, directorydomain.ErrPrincipalNotFound) {
		return "", false, err
	}

	created, err := s.directory.CreatePrincipal(ctx, directorydomain.CreatePrincipalRequest{
		Email:        email,
		EmailConfirm: true,
		UserMetadata: map[string]any{
			"role":        "vendor",
			"vendor_code": code,
			"vendor_name": name,
		},
	})
	if err == nil {
		return created.ID, true, nil
	}
	if !errors.Is(err, directorydomain.ErrPrincipalExists) {
		return "", false, err
	}

	existing, err := s.directory.GetPrincipalByEmail(ctx, email)
	if err != nil {
		return "", false, err
	}
	return existing.ID, false, nil
}
