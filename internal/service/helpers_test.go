package service

import (
	"testing"

	"insurance/internal/apierror"
	"insurance/internal/repository"
	"insurance/internal/testutil"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// ── Test harness ──────────────────────────────────────────────────────────────

type harness struct {
	db       *gorm.DB
	products ProductService
	holders  HolderService
	vehicles VehicleService
	policies PolicyService
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	db := testutil.NewDB(t)
	productRepo := repository.NewProductRepository(db)
	holderRepo := repository.NewHolderRepository(db)
	vehicleRepo := repository.NewVehicleRepository(db)
	policyRepo := repository.NewPolicyRepository(db)
	return &harness{
		db:       db,
		products: NewProductService(productRepo),
		holders:  NewHolderService(holderRepo, repository.NewHolderHistoryRepository(db)),
		vehicles: NewVehicleService(vehicleRepo),
		policies: NewPolicyService(policyRepo, productRepo, holderRepo, vehicleRepo),
	}
}

func (h *harness) count(t *testing.T, model any) int64 {
	t.Helper()
	var n int64
	require.NoError(t, h.db.Model(model).Count(&n).Error)
	return n
}

func requireKind(t *testing.T, err error, kind apierror.Kind) *apierror.Error {
	t.Helper()
	require.Error(t, err)
	require.True(t, apierror.IsKind(err, kind), "expected domain error kind %v, got %v", kind, err)
	derr, _ := apierror.As(err)
	return derr
}

func ptr[T any](v T) *T { return &v }
