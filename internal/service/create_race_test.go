package service

import (
	"context"
	"testing"

	"insurance/internal/apierror"
	"insurance/internal/dto"
	"insurance/internal/model"
	"insurance/internal/repository"
	"insurance/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// The repositories below report every natural key as free, so the insert
// runs into a row committed after the lookup, as a concurrent create would.

type staleProductRepo struct{ repository.ProductRepository }

func (r staleProductRepo) FindByCode(context.Context, string) (repository.Lookup[model.Product], error) {
	return repository.NotFound[model.Product](), nil
}

func (r staleProductRepo) WithTx(tx *gorm.DB) repository.ProductRepository {
	return staleProductRepo{r.ProductRepository.WithTx(tx)}
}

type staleHolderRepo struct{ repository.HolderRepository }

func (r staleHolderRepo) FindByPassport(context.Context, string) (repository.Lookup[model.Holder], error) {
	return repository.NotFound[model.Holder](), nil
}

func (r staleHolderRepo) WithTx(tx *gorm.DB) repository.HolderRepository {
	return staleHolderRepo{r.HolderRepository.WithTx(tx)}
}

type stalePolicyRepo struct{ repository.PolicyRepository }

func (r stalePolicyRepo) FindByCode(context.Context, string) (repository.Lookup[model.Policy], error) {
	return repository.NotFound[model.Policy](), nil
}

func (r stalePolicyRepo) WithTx(tx *gorm.DB) repository.PolicyRepository {
	return stalePolicyRepo{r.PolicyRepository.WithTx(tx)}
}

func TestCreateProduct_LostRaceIsConflict(t *testing.T) {
	db := testutil.NewDB(t)
	testutil.SeedProduct(t, db, "S6DHD78S", "Full of risk")
	svc := NewProductService(staleProductRepo{repository.NewProductRepository(db)})

	_, err := svc.Create(context.Background(), dto.CreateProductRequest{ProductCode: "S6DHD78S", ProductName: "Again"})

	derr := requireKind(t, err, apierror.KindConflict)
	assert.Equal(t, "Product Code S6DHD78S already exists in database!", derr.Msg)
}

func TestCreateHolder_LostRaceIsConflict(t *testing.T) {
	db := testutil.NewDB(t)
	testutil.SeedHolder(t, db, "PS9393474S", "987654321")
	svc := NewHolderService(
		staleHolderRepo{repository.NewHolderRepository(db)},
		repository.NewHolderHistoryRepository(db),
	)

	_, err := svc.Create(context.Background(), dto.CreateHolderRequest{
		HolderName:     "Igor",
		HolderSurname:  "Dosinchuk",
		PhoneNumber:    "1",
		Email:          "other@example.com",
		PassportNumber: "PS9393474S",
	})

	derr := requireKind(t, err, apierror.KindConflict)
	assert.Contains(t, derr.Msg, "PS9393474S")
}

func TestCreatePolicy_LostRaceIsConflict(t *testing.T) {
	h := newHarness(t)
	fx := seedReferences(t, h)
	testutil.SeedPolicy(t, h.db, "RJHD21JD", 100, fx.product, fx.holder, fx.vehicle)
	svc := NewPolicyService(
		stalePolicyRepo{repository.NewPolicyRepository(h.db)},
		repository.NewProductRepository(h.db),
		repository.NewHolderRepository(h.db),
		repository.NewVehicleRepository(h.db),
	)

	_, err := svc.Create(context.Background(), validPolicyRequest())

	derr := requireKind(t, err, apierror.KindConflict)
	assert.Equal(t, "Policy Code RJHD21JD already exists in database!", derr.Msg)
	require.Equal(t, int64(1), h.count(t, &model.Policy{}))
}
