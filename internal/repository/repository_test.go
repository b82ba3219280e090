package repository

import (
	"context"
	"testing"

	"insurance/internal/dto"
	"insurance/internal/model"
	"insurance/internal/testutil"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestLookup_FoundAndNotFound(t *testing.T) {
	db := testutil.NewDB(t)
	seeded := testutil.SeedProduct(t, db, "S6DHD78S", "Full of risk")
	repo := NewProductRepository(db)
	ctx := context.Background()

	found, err := repo.FindByCode(ctx, "S6DHD78S")
	require.NoError(t, err)
	p, ok := found.Get()
	require.True(t, ok)
	assert.Equal(t, seeded.ID, p.ID)
	assert.Equal(t, "Full of risk", p.ProductName)

	missing, err := repo.FindByCode(ctx, "NOPE")
	require.NoError(t, err, "absence is not an error")
	_, ok = missing.Get()
	assert.False(t, ok)
	assert.False(t, missing.Exists())
}

func TestFindForUpdate_InsideTransaction(t *testing.T) {
	db := testutil.NewDB(t)
	testutil.SeedHolder(t, db, "PS9393474S", "987654321")
	repo := NewHolderRepository(db)

	err := db.Transaction(func(tx *gorm.DB) error {
		l, err := repo.WithTx(tx).FindByPassportForUpdate(context.Background(), "PS9393474S")
		require.NoError(t, err)
		assert.True(t, l.Exists())
		return nil
	})
	require.NoError(t, err)
}

func TestCreate_DuplicateNaturalKey(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewVehicleRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &model.Vehicle{LicensePlate: "6846JNR", Brand: "Seat"}))
	err := repo.Create(ctx, &model.Vehicle{LicensePlate: "6846JNR", Brand: "Audi"})

	require.Error(t, err)
	assert.True(t, IsDuplicateKey(err))
}

func TestList_PagesInIDOrder(t *testing.T) {
	db := testutil.NewDB(t)
	for _, code := range []string{"A1", "B2", "C3", "D4", "E5"} {
		testutil.SeedProduct(t, db, code, "product "+code)
	}
	repo := NewProductRepository(db)

	rows, total, err := repo.List(context.Background(), dto.PageRequest{Page: 2, Limit: 2})

	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	require.Len(t, rows, 2)
	assert.Equal(t, "C3", rows[0].ProductCode)
	assert.Equal(t, "D4", rows[1].ProductCode)
}

func TestFindByIDs(t *testing.T) {
	db := testutil.NewDB(t)
	a := testutil.SeedVehicle(t, db, "1111AAA", "Seat")
	b := testutil.SeedVehicle(t, db, "2222BBB", "Kia")
	repo := NewVehicleRepository(db)

	got, err := repo.FindByIDs(context.Background(), []uint{a.ID, b.ID, 999})

	require.NoError(t, err)
	assert.Len(t, got, 2)
	assert.Equal(t, "Kia", got[b.ID].Brand)

	empty, err := repo.FindByIDs(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestHolderHistory_NewestFirst(t *testing.T) {
	db := testutil.NewDB(t)
	h := testutil.SeedHolder(t, db, "PS9393474S", "1")
	repo := NewHolderHistoryRepository(db)
	ctx := context.Background()

	for _, phone := range []string{"2", "3", "4"} {
		snap := *h
		snap.PhoneNumber = phone
		require.NoError(t, repo.Append(ctx, model.NewHolderHistory(snap)))
	}

	rows, total, err := repo.ListByHolder(ctx, h.ID, dto.PageRequest{Page: 1, Limit: 2})

	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, rows, 2)
	assert.Equal(t, "4", rows[0].PhoneNumber)
	assert.Equal(t, "3", rows[1].PhoneNumber)
	assert.Equal(t, h.ID, rows[0].HolderID)
}

func TestPolicy_FindByCode(t *testing.T) {
	db := testutil.NewDB(t)
	p := testutil.SeedProduct(t, db, "S6DHD78S", "Full of risk")
	h := testutil.SeedHolder(t, db, "PS9393474S", "987654321")
	v := testutil.SeedVehicle(t, db, "6846JNR", "Seat")
	testutil.SeedPolicy(t, db, "RJHD21JD", 100, p, h, v)
	repo := NewPolicyRepository(db)
	ctx := context.Background()

	l, err := repo.FindByCode(ctx, "RJHD21JD")
	require.NoError(t, err)
	pol, ok := l.Get()
	require.True(t, ok)
	assert.Equal(t, v.ID, pol.VehicleID)
	assert.True(t, decimal.NewFromInt(100).Equal(pol.Cost))

	l, err = repo.FindByCode(ctx, "NOPE")
	require.NoError(t, err)
	assert.False(t, l.Exists())
}
