package service

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/julinemart/vendorid/internal/vendors/domain"
	dbpkg "github.com/julinemart/vendorid/pkg/db"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	GenID *snowflake.Node
	Repo  domain.Repository
}

type Service struct {
	db    *gorm.DB
	log   *zap.Logger
	genID *snowflake.Node
	repo  domain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		db:    p.DB,
		log:   p.Log.Named("vendor.service"),
		genID: p.GenID,
		repo:  p.Repo,
	}
}

func (s *Service) Upsert(ctx context.Context, req domain.UpsertRequest) (domain.UpsertResponse, error) {
	code := domain.NormalizeCode(req.VendorCode)
	if code == "" {
		return domain.UpsertResponse{}, domain.ErrInvalidCode
	}

	name := strings.TrimSpace(req.VendorName)
	if name == "" {
		return domain.UpsertResponse{}, domain.ErrInvalidName
	}

	email := domain.NormalizeEmail(req.Email)
	if email == "" || !strings.Contains(email, "@") {
		return domain.UpsertResponse{}, domain.ErrInvalidEmail
	}

	existing, err := s.repo.FindByCode(ctx, s.db, code)
	if err != nil {
		return domain.UpsertResponse{}, err
	}

	if existing == nil {
		now := time.Now().UTC()
		created := domain.Vendor{
			ID:         s.genID.Generate(),
			VendorCode: code,
			VendorName: name,
			Email:      email,
			CreatedAt:  now,
			UpdatedAt:  now,
		}

		err := s.repo.Insert(ctx, s.db, &created)
		if err == nil {
			return domain.UpsertResponse{Vendor: created, IsNew: true}, nil
		}
		if !dbpkg.IsDuplicateKeyErr(err) {
			return domain.UpsertResponse{}, err
		}

		// Lost the check-then-insert race; the row exists now, carry on.
		s.log.Info("vendor row already present, continuing",
			zap.String("vendor_code", code),
		)
		existing, err = s.repo.FindByCode(ctx, s.db, code)
		if err != nil {
			return domain.UpsertResponse{}, err
		}
		if existing == nil {
			return domain.UpsertResponse{}, domain.ErrNotFound
		}
	}

	if !strings.EqualFold(existing.Email, email) {
		now := time.Now().UTC()
		fields := domain.ContactFields{
			VendorName: name,
			Email:      email,
			UpdatedAt:  now,
		}
		if err := s.repo.UpdateContact(ctx, s.db, code, fields); err != nil {
			return domain.UpsertResponse{}, err
		}
		existing.VendorName = name
		existing.Email = email
		existing.UpdatedAt = now
	}

	return domain.UpsertResponse{Vendor: *existing, IsNew: false}, nil
}

func (s *Service) GetByCode(ctx context.Context, code string) (domain.Vendor, error) {
	normalized := domain.NormalizeCode(code)
	if normalized == "" {
		return domain.Vendor{}, domain.ErrInvalidCode
	}

	found, err := s.repo.FindByCode(ctx, s.db, normalized)
	if err != nil {
		return domain.Vendor{}, err
	}
	if found == nil {
		return domain.Vendor{}, domain.ErrNotFound
	}

	return *found, nil
}
