package service

import (
	"context"
	"fmt"

	"insurance/internal/dto"
	"insurance/internal/repository"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// VehicleService defines the business logic contract for vehicles,
// addressed by license plate.
type VehicleService interface {
	List(ctx context.Context, page dto.PageRequest) (*dto.Page[dto.VehicleResponse], error)
	Get(ctx context.Context, licensePlate string) (*dto.VehicleResponse, error)
	Create(ctx context.Context, req dto.CreateVehicleRequest) (*dto.StatusMessage, error)
	Update(ctx context.Context, licensePlate string, req dto.UpdateVehicleRequest) (*dto.StatusMessage, error)
}

type vehicleService struct {
	repo repository.VehicleRepository
}

func NewVehicleService(repo repository.VehicleRepository) VehicleService {
	return &vehicleService{repo: repo}
}

func (s *vehicleService) List(ctx context.Context, page dto.PageRequest) (*dto.Page[dto.VehicleResponse], error) {
	page = page.Normalize()
	rows, total, err := s.repo.List(ctx, page)
	if err != nil {
		return nil, fmt.Errorf("list vehicles: %w", err)
	}
	out := make([]dto.VehicleResponse, 0, len(rows))
	for _, v := range rows {
		out = append(out, toVehicleResponse(v))
	}
	return dto.NewPage(out, total, page), nil
}

func (s *vehicleService) Get(ctx context.Context, licensePlate string) (*dto.VehicleResponse, error) {
	l, err := s.repo.FindByPlate(ctx, licensePlate)
	if err != nil {
		return nil, fmt.Errorf("find vehicle: %w", err)
	}
	v, ok := l.Get()
	if !ok {
		return nil, vehicleNotFound(licensePlate)
	}
	resp := toVehicleResponse(*v)
	return &resp, nil
}

func (s *vehicleService) Create(ctx context.Context, req dto.CreateVehicleRequest) (*dto.StatusMessage, error) {
	log.Info().Str("license_plate", req.LicensePlate).Msg("process add new vehicle")

	err := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		existing, err := repo.FindByPlate(ctx, req.LicensePlate)
		if err != nil {
			return err
		}
		if existing.Exists() {
			return vehicleExists(req.LicensePlate)
		}
		if err := repo.Create(ctx, newVehicle(req)); err != nil {
			if repository.IsDuplicateKey(err) {
				return vehicleExists(req.LicensePlate)
			}
			return err
		}
		return nil
	})
	if err := finish(entityVehicle, "create", err); err != nil {
		return nil, err
	}
	return created("Created new vehicle", location("vehicles", req.LicensePlate)), nil
}

func (s *vehicleService) Update(ctx context.Context, licensePlate string, req dto.UpdateVehicleRequest) (*dto.StatusMessage, error) {
	log.Info().Str("license_plate", licensePlate).Msg("process patch vehicle")

	err := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		l, err := repo.FindByPlateForUpdate(ctx, licensePlate)
		if err != nil {
			return err
		}
		stored, ok := l.Get()
		if !ok {
			return vehicleNotFound(licensePlate)
		}
		merged := applyVehicleUpdate(*stored, req)
		return repo.Update(ctx, &merged)
	})
	if err := finish(entityVehicle, "update", err); err != nil {
		return nil, err
	}
	return updated("Patch vehicle process", location("vehicles", licensePlate)), nil
}
