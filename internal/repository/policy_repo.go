package repository

import (
	"context"

	"insurance/internal/dto"
	"insurance/internal/model"

	"gorm.io/gorm"
)

// PolicyRepository defines the data access contract for policies.
// Policies store their product/holder/vehicle references as ids only.
type PolicyRepository interface {
	Create(ctx context.Context, p *model.Policy) error
	FindByCode(ctx context.Context, code string) (Lookup[model.Policy], error)
	FindByCodeForUpdate(ctx context.Context, code string) (Lookup[model.Policy], error)
	List(ctx context.Context, page dto.PageRequest) ([]model.Policy, int64, error)
	Update(ctx context.Context, p *model.Policy) error

	WithTx(tx *gorm.DB) PolicyRepository
	DB() *gorm.DB
}

type policyRepo struct{ db *gorm.DB }

func NewPolicyRepository(db *gorm.DB) PolicyRepository { return &policyRepo{db: db} }

func (r *policyRepo) Create(ctx context.Context, p *model.Policy) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *policyRepo) FindByCode(ctx context.Context, code string) (Lookup[model.Policy], error) {
	return findOne[model.Policy](ctx, r.db, "policy_code", code, false)
}

func (r *policyRepo) FindByCodeForUpdate(ctx context.Context, code string) (Lookup[model.Policy], error) {
	return findOne[model.Policy](ctx, r.db, "policy_code", code, true)
}

func (r *policyRepo) List(ctx context.Context, page dto.PageRequest) ([]model.Policy, int64, error) {
	return listPage[model.Policy](ctx, r.db, page)
}

func (r *policyRepo) Update(ctx context.Context, p *model.Policy) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *policyRepo) WithTx(tx *gorm.DB) PolicyRepository { return &policyRepo{db: tx} }

func (r *policyRepo) DB() *gorm.DB { return r.db }
