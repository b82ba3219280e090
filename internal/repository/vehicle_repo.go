package repository

import (
	"context"

	"insurance/internal/dto"
	"insurance/internal/model"

	"gorm.io/gorm"
)

// VehicleRepository defines the data access contract for vehicles.
// The natural key is the license plate.
type VehicleRepository interface {
	Create(ctx context.Context, v *model.Vehicle) error
	FindByPlate(ctx context.Context, plate string) (Lookup[model.Vehicle], error)
	FindByPlateForUpdate(ctx context.Context, plate string) (Lookup[model.Vehicle], error)
	FindByIDs(ctx context.Context, ids []uint) (map[uint]*model.Vehicle, error)
	List(ctx context.Context, page dto.PageRequest) ([]model.Vehicle, int64, error)
	Update(ctx context.Context, v *model.Vehicle) error

	// WithTx returns a repository bound to tx. Callers own commit/rollback.
	WithTx(tx *gorm.DB) VehicleRepository
	// DB exposes the underlying *gorm.DB so services can open transactions.
	DB() *gorm.DB
}

type vehicleRepo struct{ db *gorm.DB }

func NewVehicleRepository(db *gorm.DB) VehicleRepository { return &vehicleRepo{db: db} }

func (r *vehicleRepo) Create(ctx context.Context, v *model.Vehicle) error {
	return r.db.WithContext(ctx).Create(v).Error
}

func (r *vehicleRepo) FindByPlate(ctx context.Context, plate string) (Lookup[model.Vehicle], error) {
	return findOne[model.Vehicle](ctx, r.db, "license_plate", plate, false)
}

func (r *vehicleRepo) FindByPlateForUpdate(ctx context.Context, plate string) (Lookup[model.Vehicle], error) {
	return findOne[model.Vehicle](ctx, r.db, "license_plate", plate, true)
}

func (r *vehicleRepo) FindByIDs(ctx context.Context, ids []uint) (map[uint]*model.Vehicle, error) {
	return findByIDs(ctx, r.db, ids, func(v *model.Vehicle) uint { return v.ID })
}

func (r *vehicleRepo) List(ctx context.Context, page dto.PageRequest) ([]model.Vehicle, int64, error) {
	return listPage[model.Vehicle](ctx, r.db, page)
}

func (r *vehicleRepo) Update(ctx context.Context, v *model.Vehicle) error {
	return r.db.WithContext(ctx).Save(v).Error
}

func (r *vehicleRepo) WithTx(tx *gorm.DB) VehicleRepository { return &vehicleRepo{db: tx} }

func (r *vehicleRepo) DB() *gorm.DB { return r.db }
