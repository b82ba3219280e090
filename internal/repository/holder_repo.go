package repository

import (
	"context"

	"insurance/internal/dto"
	"insurance/internal/model"

	"gorm.io/gorm"
)

// HolderRepository defines the data access contract for policy holders.
type HolderRepository interface {
	Create(ctx context.Context, h *model.Holder) error
	FindByPassport(ctx context.Context, passport string) (Lookup[model.Holder], error)
	// FindByPassportForUpdate locks the row until the surrounding tx ends.
	FindByPassportForUpdate(ctx context.Context, passport string) (Lookup[model.Holder], error)
	FindByIDs(ctx context.Context, ids []uint) (map[uint]*model.Holder, error)
	List(ctx context.Context, page dto.PageRequest) ([]model.Holder, int64, error)
	Update(ctx context.Context, h *model.Holder) error

	WithTx(tx *gorm.DB) HolderRepository
	DB() *gorm.DB
}

type holderRepo struct{ db *gorm.DB }

func NewHolderRepository(db *gorm.DB) HolderRepository { return &holderRepo{db: db} }

func (r *holderRepo) Create(ctx context.Context, h *model.Holder) error {
	return r.db.WithContext(ctx).Create(h).Error
}

func (r *holderRepo) FindByPassport(ctx context.Context, passport string) (Lookup[model.Holder], error) {
	return findOne[model.Holder](ctx, r.db, "passport_number", passport, false)
}

func (r *holderRepo) FindByPassportForUpdate(ctx context.Context, passport string) (Lookup[model.Holder], error) {
	return findOne[model.Holder](ctx, r.db, "passport_number", passport, true)
}

func (r *holderRepo) FindByIDs(ctx context.Context, ids []uint) (map[uint]*model.Holder, error) {
	return findByIDs(ctx, r.db, ids, func(h *model.Holder) uint { return h.ID })
}

func (r *holderRepo) List(ctx context.Context, page dto.PageRequest) ([]model.Holder, int64, error) {
	return listPage[model.Holder](ctx, r.db, page)
}

func (r *holderRepo) Update(ctx context.Context, h *model.Holder) error {
	return r.db.WithContext(ctx).Save(h).Error
}

func (r *holderRepo) WithTx(tx *gorm.DB) HolderRepository { return &holderRepo{db: tx} }

func (r *holderRepo) DB() *gorm.DB { return r.db }
