package service

import (
	"context"
	"fmt"

	"insurance/internal/dto"
	"insurance/internal/model"
	"insurance/internal/repository"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// PolicyService composes policies out of a product, a holder and a vehicle,
// each referenced by its natural key.
type PolicyService interface {
	List(ctx context.Context, page dto.PageRequest) (*dto.Page[dto.PolicyResponse], error)
	Get(ctx context.Context, policyCode string) (*dto.PolicyResponse, error)
	Create(ctx context.Context, req dto.CreatePolicyRequest) (*dto.StatusMessage, error)
	Update(ctx context.Context, policyCode string, req dto.UpdatePolicyRequest) (*dto.StatusMessage, error)
}

type policyService struct {
	policies repository.PolicyRepository
	products repository.ProductRepository
	holders  repository.HolderRepository
	vehicles repository.VehicleRepository
}

func NewPolicyService(
	policies repository.PolicyRepository,
	products repository.ProductRepository,
	holders repository.HolderRepository,
	vehicles repository.VehicleRepository,
) PolicyService {
	return &policyService{
		policies: policies,
		products: products,
		holders:  holders,
		vehicles: vehicles,
	}
}

// withTx returns a copy of s whose repositories all run on tx.
func (s *policyService) withTx(tx *gorm.DB) *policyService {
	return &policyService{
		policies: s.policies.WithTx(tx),
		products: s.products.WithTx(tx),
		holders:  s.holders.WithTx(tx),
		vehicles: s.vehicles.WithTx(tx),
	}
}

// ── Reference resolution ─────────────────────────────────────────────────────
// Each resolver turns absence into a NotFound error naming the key.

func (s *policyService) resolveProduct(ctx context.Context, code string) (*model.Product, error) {
	l, err := s.products.FindByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	p, ok := l.Get()
	if !ok {
		return nil, missingProduct(code)
	}
	return p, nil
}

func (s *policyService) resolveHolder(ctx context.Context, passport string) (*model.Holder, error) {
	l, err := s.holders.FindByPassport(ctx, passport)
	if err != nil {
		return nil, err
	}
	h, ok := l.Get()
	if !ok {
		return nil, missingHolder(passport)
	}
	return h, nil
}

func (s *policyService) resolveVehicle(ctx context.Context, plate string) (*model.Vehicle, error) {
	l, err := s.vehicles.FindByPlate(ctx, plate)
	if err != nil {
		return nil, err
	}
	v, ok := l.Get()
	if !ok {
		return nil, missingVehicle(plate)
	}
	return v, nil
}

// ── Create ───────────────────────────────────────────────────────────────────
//   1. reject a policy code that is already taken
//   2. resolve product, holder and vehicle, stopping at the first miss
//   3. only then insert the policy
// All steps share one transaction; nothing is written before step 3.

func (s *policyService) Create(ctx context.Context, req dto.CreatePolicyRequest) (*dto.StatusMessage, error) {
	log.Info().Str("policy_code", req.PolicyCode).Msg("process add new policy")

	err := runTx(ctx, s.policies.DB(), func(tx *gorm.DB) error {
		r := s.withTx(tx)

		existing, err := r.policies.FindByCode(ctx, req.PolicyCode)
		if err != nil {
			return err
		}
		if existing.Exists() {
			return policyExists(req.PolicyCode)
		}

		product, err := r.resolveProduct(ctx, req.ProductCode)
		if err != nil {
			return err
		}
		holder, err := r.resolveHolder(ctx, req.PassportNumber)
		if err != nil {
			return err
		}
		vehicle, err := r.resolveVehicle(ctx, req.LicensePlate)
		if err != nil {
			return err
		}

		policy := &model.Policy{
			PolicyCode: req.PolicyCode,
			Cost:       req.Cost,
			ProductID:  product.ID,
			HolderID:   holder.ID,
			VehicleID:  vehicle.ID,
		}
		if err := r.policies.Create(ctx, policy); err != nil {
			if repository.IsDuplicateKey(err) {
				return policyExists(req.PolicyCode)
			}
			return err
		}
		return nil
	})
	if err := finish(entityPolicy, "create", err); err != nil {
		return nil, err
	}
	return created("Created new policy", location("policies", req.PolicyCode)), nil
}

// ── Update ───────────────────────────────────────────────────────────────────
//   1. lock the stored policy; its code is never rewritten
//   2. resolve every supplied, non-empty reference key and stage its id
//   3. save only when all supplied references resolved

func (s *policyService) Update(ctx context.Context, policyCode string, req dto.UpdatePolicyRequest) (*dto.StatusMessage, error) {
	log.Info().Str("policy_code", policyCode).Msg("process patch policy")

	err := runTx(ctx, s.policies.DB(), func(tx *gorm.DB) error {
		r := s.withTx(tx)

		l, err := r.policies.FindByCodeForUpdate(ctx, policyCode)
		if err != nil {
			return err
		}
		stored, ok := l.Get()
		if !ok {
			return policyNotFound(policyCode)
		}

		staged := *stored
		if code := nonEmpty(req.ProductCode); code != "" {
			p, err := r.resolveProduct(ctx, code)
			if err != nil {
				return err
			}
			staged.ProductID = p.ID
		}
		if passport := nonEmpty(req.PassportNumber); passport != "" {
			h, err := r.resolveHolder(ctx, passport)
			if err != nil {
				return err
			}
			staged.HolderID = h.ID
		}
		if plate := nonEmpty(req.LicensePlate); plate != "" {
			v, err := r.resolveVehicle(ctx, plate)
			if err != nil {
				return err
			}
			staged.VehicleID = v.ID
		}
		if req.Cost != nil {
			staged.Cost = *req.Cost
		}

		return r.policies.Update(ctx, &staged)
	})
	if err := finish(entityPolicy, "update", err); err != nil {
		return nil, err
	}
	return updated("Patch policy process", location("policies", policyCode)), nil
}

// ── Read paths ───────────────────────────────────────────────────────────────

// Get returns the policy with its product, holder and vehicle embedded.
func (s *policyService) Get(ctx context.Context, policyCode string) (*dto.PolicyResponse, error) {
	l, err := s.policies.FindByCode(ctx, policyCode)
	if err != nil {
		return nil, fmt.Errorf("find policy: %w", err)
	}
	policy, ok := l.Get()
	if !ok {
		return nil, policyNotFound(policyCode)
	}

	views, err := s.expand(ctx, []model.Policy{*policy})
	if err != nil {
		return nil, err
	}
	resp := toPolicyResponse(views[0])
	return &resp, nil
}

func (s *policyService) List(ctx context.Context, page dto.PageRequest) (*dto.Page[dto.PolicyResponse], error) {
	page = page.Normalize()
	rows, total, err := s.policies.List(ctx, page)
	if err != nil {
		return nil, fmt.Errorf("list policies: %w", err)
	}
	views, err := s.expand(ctx, rows)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PolicyResponse, 0, len(views))
	for _, v := range views {
		out = append(out, toPolicyResponse(v))
	}
	return dto.NewPage(out, total, page), nil
}

// expand joins policies with their referenced records: one IN query per
// referenced table, whatever the number of policies.
func (s *policyService) expand(ctx context.Context, policies []model.Policy) ([]model.PolicyView, error) {
	productIDs := make([]uint, 0, len(policies))
	holderIDs := make([]uint, 0, len(policies))
	vehicleIDs := make([]uint, 0, len(policies))
	for _, p := range policies {
		productIDs = append(productIDs, p.ProductID)
		holderIDs = append(holderIDs, p.HolderID)
		vehicleIDs = append(vehicleIDs, p.VehicleID)
	}

	products, err := s.products.FindByIDs(ctx, productIDs)
	if err != nil {
		return nil, fmt.Errorf("expand policy products: %w", err)
	}
	holders, err := s.holders.FindByIDs(ctx, holderIDs)
	if err != nil {
		return nil, fmt.Errorf("expand policy holders: %w", err)
	}
	vehicles, err := s.vehicles.FindByIDs(ctx, vehicleIDs)
	if err != nil {
		return nil, fmt.Errorf("expand policy vehicles: %w", err)
	}

	views := make([]model.PolicyView, 0, len(policies))
	for _, p := range policies {
		product, okP := products[p.ProductID]
		holder, okH := holders[p.HolderID]
		vehicle, okV := vehicles[p.VehicleID]
		if !okP || !okH || !okV {
			return nil, fmt.Errorf("policy %s references a missing record", p.PolicyCode)
		}
		views = append(views, model.PolicyView{
			Policy:  p,
			Product: *product,
			Holder:  *holder,
			Vehicle: *vehicle,
		})
	}
	return views, nil
}

func nonEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
