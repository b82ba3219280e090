package repository

import (
	"context"

	"insurance/internal/dto"
	"insurance/internal/model"

	"gorm.io/gorm"
)

// HolderHistoryRepository is the append-only log of holder snapshots.
// There is intentionally no Update or Delete.
type HolderHistoryRepository interface {
	Append(ctx context.Context, h *model.HolderHistory) error
	ListByHolder(ctx context.Context, holderID uint, page dto.PageRequest) ([]model.HolderHistory, int64, error)
	CountByHolder(ctx context.Context, holderID uint) (int64, error)

	WithTx(tx *gorm.DB) HolderHistoryRepository
}

type holderHistoryRepo struct{ db *gorm.DB }

func NewHolderHistoryRepository(db *gorm.DB) HolderHistoryRepository {
	return &holderHistoryRepo{db: db}
}

func (r *holderHistoryRepo) Append(ctx context.Context, h *model.HolderHistory) error {
	return r.db.WithContext(ctx).Create(h).Error
}

// ListByHolder returns one page of snapshots for a holder, newest first
// (append-only table, so id order is insert order).
func (r *holderHistoryRepo) ListByHolder(
	ctx context.Context,
	holderID uint,
	page dto.PageRequest,
) ([]model.HolderHistory, int64, error) {
	total, err := r.CountByHolder(ctx, holderID)
	if err != nil {
		return nil, 0, err
	}

	var rows []model.HolderHistory
	if err := r.db.WithContext(ctx).
		Where("holder_id = ?", holderID).
		Order("id DESC").
		Limit(page.Limit).
		Offset(page.Offset()).
		Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

func (r *holderHistoryRepo) CountByHolder(ctx context.Context, holderID uint) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&model.HolderHistory{}).
		Where("holder_id = ?", holderID).
		Count(&total).Error
	return total, err
}

func (r *holderHistoryRepo) WithTx(tx *gorm.DB) HolderHistoryRepository {
	return &holderHistoryRepo{db: tx}
}
