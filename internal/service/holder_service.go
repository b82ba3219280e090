package service

import (
	"context"
	"fmt"

	"insurance/internal/dto"
	"insurance/internal/metrics"
	"insurance/internal/model"
	"insurance/internal/repository"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// HolderService defines the business logic contract for policy holders.
// Every effective update is archived in the holder history log.
type HolderService interface {
	List(ctx context.Context, page dto.PageRequest) (*dto.Page[dto.HolderResponse], error)
	Get(ctx context.Context, passportNumber string) (*dto.HolderResponse, error)
	Create(ctx context.Context, req dto.CreateHolderRequest) (*dto.StatusMessage, error)
	Update(ctx context.Context, passportNumber string, req dto.UpdateHolderRequest) (*dto.StatusMessage, error)
	History(ctx context.Context, passportNumber string, page dto.PageRequest) (*dto.Page[dto.HolderHistoryItem], error)
}

type holderService struct {
	holders repository.HolderRepository
	history repository.HolderHistoryRepository
}

func NewHolderService(holders repository.HolderRepository, history repository.HolderHistoryRepository) HolderService {
	return &holderService{holders: holders, history: history}
}

func (s *holderService) List(ctx context.Context, page dto.PageRequest) (*dto.Page[dto.HolderResponse], error) {
	page = page.Normalize()
	rows, total, err := s.holders.List(ctx, page)
	if err != nil {
		return nil, fmt.Errorf("list holders: %w", err)
	}
	out := make([]dto.HolderResponse, 0, len(rows))
	for _, h := range rows {
		out = append(out, toHolderResponse(h))
	}
	return dto.NewPage(out, total, page), nil
}

func (s *holderService) Get(ctx context.Context, passportNumber string) (*dto.HolderResponse, error) {
	h, err := s.find(ctx, passportNumber)
	if err != nil {
		return nil, err
	}
	resp := toHolderResponse(*h)
	return &resp, nil
}

func (s *holderService) Create(ctx context.Context, req dto.CreateHolderRequest) (*dto.StatusMessage, error) {
	log.Info().Str("passport_number", req.PassportNumber).Msg("process add new holder")

	err := runTx(ctx, s.holders.DB(), func(tx *gorm.DB) error {
		holders := s.holders.WithTx(tx)
		existing, err := holders.FindByPassport(ctx, req.PassportNumber)
		if err != nil {
			return err
		}
		if existing.Exists() {
			return holderExists(req.PassportNumber)
		}
		if err := holders.Create(ctx, newHolder(req)); err != nil {
			if repository.IsDuplicateKey(err) {
				return holderExists(req.PassportNumber)
			}
			return err
		}
		return nil
	})
	if err := finish(entityHolder, "create", err); err != nil {
		return nil, err
	}
	return created("Created new holder", location("holders", req.PassportNumber)), nil
}

// Update merges req into the stored holder. A merge that changes nothing is
// rejected; otherwise the holder is saved and a snapshot of the merged state
// is appended to the history log in the same transaction.
func (s *holderService) Update(ctx context.Context, passportNumber string, req dto.UpdateHolderRequest) (*dto.StatusMessage, error) {
	log.Info().Str("passport_number", passportNumber).Msg("process patch holder")

	err := runTx(ctx, s.holders.DB(), func(tx *gorm.DB) error {
		holders := s.holders.WithTx(tx)
		l, err := holders.FindByPassportForUpdate(ctx, passportNumber)
		if err != nil {
			return err
		}
		stored, ok := l.Get()
		if !ok {
			return holderNotFound(passportNumber)
		}

		merged := applyHolderUpdate(*stored, req)
		if merged.SameAs(*stored) {
			return holderUnchanged(passportNumber)
		}

		if err := holders.Update(ctx, &merged); err != nil {
			return err
		}
		return s.history.WithTx(tx).Append(ctx, model.NewHolderHistory(merged))
	})
	if err := finish(entityHolder, "update", err); err != nil {
		return nil, err
	}
	metrics.RecordHolderHistory()
	return updated("Patch holder process", location("holders", passportNumber)), nil
}

// History lists the archived snapshots of one holder, newest first.
func (s *holderService) History(ctx context.Context, passportNumber string, page dto.PageRequest) (*dto.Page[dto.HolderHistoryItem], error) {
	h, err := s.find(ctx, passportNumber)
	if err != nil {
		return nil, err
	}
	page = page.Normalize()
	rows, total, err := s.history.ListByHolder(ctx, h.ID, page)
	if err != nil {
		return nil, fmt.Errorf("list holder history: %w", err)
	}
	out := make([]dto.HolderHistoryItem, 0, len(rows))
	for _, r := range rows {
		out = append(out, toHolderHistoryItem(r))
	}
	return dto.NewPage(out, total, page), nil
}

func (s *holderService) find(ctx context.Context, passportNumber string) (*model.Holder, error) {
	l, err := s.holders.FindByPassport(ctx, passportNumber)
	if err != nil {
		return nil, fmt.Errorf("find holder: %w", err)
	}
	h, ok := l.Get()
	if !ok {
		return nil, holderNotFound(passportNumber)
	}
	return h, nil
}
