package service

import (
	"context"
	"errors"
	"testing"

	"github.com/bwmarrin/snowflake"
	"github.com/julinemart/vendorid/internal/vendors/domain"
	"github.com/julinemart/vendorid/internal/vendors/repository"
	dbpkg "github.com/julinemart/vendorid/pkg/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type repoMock struct {
	mock.Mock
}

func (m *repoMock) Insert(ctx context.Context, db *gorm.DB, vendor *domain.Vendor) error {
	args := m.Called(ctx, db, vendor)
	return args.Error(0)
}

func (m *repoMock) FindByCode(ctx context.Context, db *gorm.DB, code string) (*domain.Vendor, error) {
	args := m.Called(ctx, db, code)
	res := args.Get(0)
	if res == nil {
		return nil, args.Error(1)
	}
	return res.(*domain.Vendor), args.Error(1)
}

func (m *repoMock) UpdateContact(ctx context.Context, db *gorm.DB, code string, fields domain.ContactFields) error {
	args := m.Called(ctx, db, code, fields)
	return args.Error(0)
}

func newTestService(t *testing.T) domain.Service {
	t.Helper()

	dbConn, err := dbpkg.NewTest()
	require.NoError(t, err)
	require.NoError(t, dbConn.AutoMigrate(&domain.Vendor{}))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	return New(Params{
		DB:    dbConn,
		Log:   zap.NewNop(),
		GenID: node,
		Repo:  repository.Provide(),
	})
}

func TestUpsertCreatesThenReuses(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	first, err := svc.Upsert(ctx, domain.UpsertRequest{
		VendorCode: "abc",
		VendorName: "Acme Co",
		Email:      "Owner@Acme.com",
	})
	require.NoError(t, err)
	assert.True(t, first.IsNew)
	assert.Equal(t, "ABC", first.Vendor.VendorCode)
	assert.Equal(t, "owner@acme.com", first.Vendor.Email)

	second, err := svc.Upsert(ctx, domain.UpsertRequest{
		VendorCode: "ABC",
		VendorName: "Acme Co",
		Email:      "owner@acme.com",
	})
	require.NoError(t, err)
	assert.False(t, second.IsNew)
	assert.Equal(t, first.Vendor.ID, second.Vendor.ID)
	assert.Equal(t, first.Vendor.Email, second.Vendor.Email)
}

func TestUpsertUpdatesChangedEmail(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.Upsert(ctx, domain.UpsertRequest{
		VendorCode: "ABC",
		VendorName: "Acme Co",
		Email:      "owner@acme.com",
	})
	require.NoError(t, err)

	updated, err := svc.Upsert(ctx, domain.UpsertRequest{
		VendorCode: "abc",
		VendorName: "Acme Corporation",
		Email:      "Billing@Acme.com",
	})
	require.NoError(t, err)
	assert.False(t, updated.IsNew)
	assert.Equal(t, "billing@acme.com", updated.Vendor.Email)
	assert.Equal(t, "Acme Corporation", updated.Vendor.VendorName)

	found, err := svc.GetByCode(ctx, "ABC")
	require.NoError(t, err)
	assert.Equal(t, "billing@acme.com", found.Email)
}

func TestUpsertValidatesInput(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.Upsert(ctx, domain.UpsertRequest{VendorName: "Acme", Email: "a@b.com"})
	assert.ErrorIs(t, err, domain.ErrInvalidCode)

	_, err = svc.Upsert(ctx, domain.UpsertRequest{VendorCode: "ABC", Email: "a@b.com"})
	assert.ErrorIs(t, err, domain.ErrInvalidName)

	_, err = svc.Upsert(ctx, domain.UpsertRequest{VendorCode: "ABC", VendorName: "Acme", Email: "nomail"})
	assert.ErrorIs(t, err, domain.ErrInvalidEmail)
}

func TestUpsertToleratesInsertRace(t *testing.T) {
	repo := &repoMock{}
	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	svc := New(Params{
		DB:    nil,
		Log:   zap.NewNop(),
		GenID: node,
		Repo:  repo,
	})

	winner := &domain.Vendor{
		ID:         node.Generate(),
		VendorCode: "ABC",
		VendorName: "Acme Co",
		Email:      "owner@acme.com",
	}

	repo.On("FindByCode", mock.Anything, mock.Anything, "ABC").Return(nil, nil).Once()
	repo.On("Insert", mock.Anything, mock.Anything, mock.Anything).
		Return(errors.New("duplicate key value violates unique constraint \"idx_vendors_vendor_code\"")).Once()
	repo.On("FindByCode", mock.Anything, mock.Anything, "ABC").Return(winner, nil).Once()

	resp, err := svc.Upsert(context.Background(), domain.UpsertRequest{
		VendorCode: "ABC",
		VendorName: "Acme Co",
		Email:      "owner@acme.com",
	})
	require.NoError(t, err)
	assert.False(t, resp.IsNew)
	assert.Equal(t, winner.ID, resp.Vendor.ID)
	repo.AssertExpectations(t)
}

func TestUpsertPropagatesFatalStoreError(t *testing.T) {
	repo := &repoMock{}
	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	svc := New(Params{
		DB:    nil,
		Log:   zap.NewNop(),
		GenID: node,
		Repo:  repo,
	})

	storeErr := errors.New("connection reset by peer")
	repo.On("FindByCode", mock.Anything, mock.Anything, "ABC").Return(nil, nil).Once()
	repo.On("Insert", mock.Anything, mock.Anything, mock.Anything).Return(storeErr).Once()

	_, err = svc.Upsert(context.Background(), domain.UpsertRequest{
		VendorCode: "ABC",
		VendorName: "Acme Co",
		Email:      "owner@acme.com",
	})
	assert.ErrorIs(t, err, storeErr)
}

func TestGetByCodeNormalizesAndMisses(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.Upsert(ctx, domain.UpsertRequest{
		VendorCode: "ABC",
		VendorName: "Acme Co",
		Email:      "owner@acme.com",
	})
	require.NoError(t, err)

	found, err := svc.GetByCode(ctx, "abc")
	require.NoError(t, err)
	assert.Equal(t, "ABC", found.VendorCode)

	_, err = svc.GetByCode(ctx, "ZZZ")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
