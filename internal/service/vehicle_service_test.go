package service

import (
	"context"
	"testing"

	"insurance/internal/apierror"
	"insurance/internal/dto"
	"insurance/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateVehicle_DuplicatePlate(t *testing.T) {
	h := newHarness(t)
	req := dto.CreateVehicleRequest{LicensePlate: "6846JNR", Brand: "Seat"}

	resp, err := h.vehicles.Create(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "/api/v1/vehicles/6846JNR", resp.Location)

	_, err = h.vehicles.Create(context.Background(), req)
	derr := requireKind(t, err, apierror.KindConflict)
	assert.Contains(t, derr.Msg, "6846JNR")
}

func TestUpdateVehicle_KeepsLicensePlate(t *testing.T) {
	h := newHarness(t)
	testutil.SeedVehicle(t, h.db, "6846JNR", "Seat")

	_, err := h.vehicles.Update(context.Background(), "6846JNR", dto.UpdateVehicleRequest{
		LicensePlate: ptr("0000XXX"),
		Brand:        ptr("Cupra"),
	})
	require.NoError(t, err)

	got, err := h.vehicles.Get(context.Background(), "6846JNR")
	require.NoError(t, err)
	assert.Equal(t, "Cupra", got.Brand)
	assert.Equal(t, "6846JNR", got.LicensePlate)

	_, err = h.vehicles.Get(context.Background(), "0000XXX")
	requireKind(t, err, apierror.KindNotFound)
}

func TestUpdateVehicle_NotFound(t *testing.T) {
	h := newHarness(t)

	_, err := h.vehicles.Update(context.Background(), "NOPE", dto.UpdateVehicleRequest{Brand: ptr("Kia")})

	requireKind(t, err, apierror.KindNotFound)
}

func TestListVehicles_Empty(t *testing.T) {
	h := newHarness(t)

	page, err := h.vehicles.List(context.Background(), dto.PageRequest{})

	require.NoError(t, err)
	assert.NotNil(t, page.Data)
	assert.Empty(t, page.Data)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, dto.DefaultPageLimit, page.Limit)
}
