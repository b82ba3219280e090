package repository

import (
	"context"
	"errors"

	"insurance/internal/dto"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Lookup is the outcome of a natural-key resolution. Absence is a normal
// outcome, not an error: callers must branch on Get before touching the record.
type Lookup[T any] struct {
	record *T
}

// Found wraps an existing record.
func Found[T any](record *T) Lookup[T] { return Lookup[T]{record: record} }

// NotFound is the empty lookup.
func NotFound[T any]() Lookup[T] { return Lookup[T]{} }

// Get returns the record and whether it exists.
func (l Lookup[T]) Get() (*T, bool) { return l.record, l.record != nil }

// Exists reports whether the lookup resolved to a record.
func (l Lookup[T]) Exists() bool { return l.record != nil }

// findOne resolves a single row by column value. gorm.ErrRecordNotFound maps
// to NotFound; every other error is a store fault.
func findOne[T any](ctx context.Context, db *gorm.DB, column string, value any, lock bool) (Lookup[T], error) {
	var row T
	q := db.WithContext(ctx)
	if lock {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	err := q.Where(clause.Eq{Column: clause.Column{Name: column}, Value: value}).Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return NotFound[T](), nil
	}
	if err != nil {
		return NotFound[T](), err
	}
	return Found(&row), nil
}

// findByIDs loads rows whose primary key is in ids, indexed by id.
func findByIDs[T any](ctx context.Context, db *gorm.DB, ids []uint, idOf func(*T) uint) (map[uint]*T, error) {
	out := make(map[uint]*T, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	var rows []T
	if err := db.WithContext(ctx).Where("id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, err
	}
	for i := range rows {
		out[idOf(&rows[i])] = &rows[i]
	}
	return out, nil
}

// listPage returns one page of T ordered by id, plus the total row count.
func listPage[T any](ctx context.Context, db *gorm.DB, page dto.PageRequest) ([]T, int64, error) {
	var total int64
	if err := db.WithContext(ctx).Model(new(T)).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var rows []T
	err := db.WithContext(ctx).
		Order("id ASC").
		Limit(page.Limit).
		Offset(page.Offset()).
		Find(&rows).Error
	return rows, total, err
}

// IsDuplicateKey reports whether err is a unique-constraint violation.
// Requires the gorm connection to be opened with TranslateError.
func IsDuplicateKey(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}
