package repository

import (
	"context"

	"insurance/internal/dto"
	"insurance/internal/model"

	"gorm.io/gorm"
)

// ProductRepository defines the data access contract for products.
type ProductRepository interface {
	Create(ctx context.Context, p *model.Product) error
	FindByCode(ctx context.Context, code string) (Lookup[model.Product], error)
	FindByCodeForUpdate(ctx context.Context, code string) (Lookup[model.Product], error)
	FindByIDs(ctx context.Context, ids []uint) (map[uint]*model.Product, error)
	List(ctx context.Context, page dto.PageRequest) ([]model.Product, int64, error)
	Update(ctx context.Context, p *model.Product) error

	// WithTx returns a repository bound to tx. Callers own commit/rollback.
	WithTx(tx *gorm.DB) ProductRepository
	// DB exposes the underlying *gorm.DB so services can open transactions.
	DB() *gorm.DB
}

type productRepo struct{ db *gorm.DB }

func NewProductRepository(db *gorm.DB) ProductRepository { return &productRepo{db: db} }

func (r *productRepo) Create(ctx context.Context, p *model.Product) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *productRepo) FindByCode(ctx context.Context, code string) (Lookup[model.Product], error) {
	return findOne[model.Product](ctx, r.db, "product_code", code, false)
}

func (r *productRepo) FindByCodeForUpdate(ctx context.Context, code string) (Lookup[model.Product], error) {
	return findOne[model.Product](ctx, r.db, "product_code", code, true)
}

func (r *productRepo) FindByIDs(ctx context.Context, ids []uint) (map[uint]*model.Product, error) {
	return findByIDs(ctx, r.db, ids, func(p *model.Product) uint { return p.ID })
}

func (r *productRepo) List(ctx context.Context, page dto.PageRequest) ([]model.Product, int64, error) {
	return listPage[model.Product](ctx, r.db, page)
}

func (r *productRepo) Update(ctx context.Context, p *model.Product) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *productRepo) WithTx(tx *gorm.DB) ProductRepository { return &productRepo{db: tx} }

func (r *productRepo) DB() *gorm.DB { return r.db }
