package service

import (
	"context"
	"net/http"
	"testing"

	"insurance/internal/apierror"
	"insurance/internal/dto"
	"insurance/internal/model"
	"insurance/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateProduct(t *testing.T) {
	h := newHarness(t)

	resp, err := h.products.Create(context.Background(), dto.CreateProductRequest{
		ProductCode: "S6DHD78S",
		ProductName: "Full of risk",
	})

	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.Status)
	assert.Equal(t, "/api/v1/products/S6DHD78S", resp.Location)

	got, err := h.products.Get(context.Background(), "S6DHD78S")
	require.NoError(t, err)
	assert.Equal(t, "Full of risk", got.ProductName)
	assert.NotZero(t, got.ID)
}

func TestCreateProduct_DuplicateCode(t *testing.T) {
	h := newHarness(t)
	req := dto.CreateProductRequest{ProductCode: "S6DHD78S", ProductName: "Full of risk"}

	_, err := h.products.Create(context.Background(), req)
	require.NoError(t, err)
	_, err = h.products.Create(context.Background(), req)

	derr := requireKind(t, err, apierror.KindConflict)
	assert.Equal(t, "Product Code S6DHD78S already exists in database!", derr.Msg)
	assert.Equal(t, int64(1), h.count(t, &model.Product{}))
}

func TestGetProduct_NotFound(t *testing.T) {
	h := newHarness(t)

	_, err := h.products.Get(context.Background(), "MISSING")

	derr := requireKind(t, err, apierror.KindNotFound)
	assert.Contains(t, derr.Msg, "MISSING")
}

func TestUpdateProduct_KeepsProductCode(t *testing.T) {
	h := newHarness(t)
	testutil.SeedProduct(t, h.db, "S6DHD78S", "Full of risk")

	resp, err := h.products.Update(context.Background(), "S6DHD78S", dto.UpdateProductRequest{
		ProductCode: ptr("OTHERCODE"),
		ProductName: ptr("Third party"),
	})

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.Status)

	got, err := h.products.Get(context.Background(), "S6DHD78S")
	require.NoError(t, err)
	assert.Equal(t, "Third party", got.ProductName)

	_, err = h.products.Get(context.Background(), "OTHERCODE")
	requireKind(t, err, apierror.KindNotFound)
}

func TestUpdateProduct_NotFound(t *testing.T) {
	h := newHarness(t)

	_, err := h.products.Update(context.Background(), "MISSING", dto.UpdateProductRequest{ProductName: ptr("x")})

	requireKind(t, err, apierror.KindNotFound)
}

func TestListProducts_Paged(t *testing.T) {
	h := newHarness(t)
	for _, code := range []string{"A1", "B2", "C3"} {
		testutil.SeedProduct(t, h.db, code, "p")
	}

	page, err := h.products.List(context.Background(), dto.PageRequest{Page: 2, Limit: 2})

	require.NoError(t, err)
	assert.Equal(t, int64(3), page.Total)
	assert.Equal(t, 2, page.TotalPages)
	require.Len(t, page.Data, 1)
	assert.Equal(t, "C3", page.Data[0].ProductCode)
}
