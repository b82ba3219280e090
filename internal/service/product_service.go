package service

import (
	"context"
	"fmt"

	"insurance/internal/dto"
	"insurance/internal/repository"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// ProductService defines the business logic contract for products.
type ProductService interface {
	List(ctx context.Context, page dto.PageRequest) (*dto.Page[dto.ProductResponse], error)
	Get(ctx context.Context, productCode string) (*dto.ProductResponse, error)
	Create(ctx context.Context, req dto.CreateProductRequest) (*dto.StatusMessage, error)
	Update(ctx context.Context, productCode string, req dto.UpdateProductRequest) (*dto.StatusMessage, error)
}

type productService struct {
	repo repository.ProductRepository
}

func NewProductService(repo repository.ProductRepository) ProductService {
	return &productService{repo: repo}
}

func (s *productService) List(ctx context.Context, page dto.PageRequest) (*dto.Page[dto.ProductResponse], error) {
	page = page.Normalize()
	rows, total, err := s.repo.List(ctx, page)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	out := make([]dto.ProductResponse, 0, len(rows))
	for _, p := range rows {
		out = append(out, toProductResponse(p))
	}
	return dto.NewPage(out, total, page), nil
}

func (s *productService) Get(ctx context.Context, productCode string) (*dto.ProductResponse, error) {
	l, err := s.repo.FindByCode(ctx, productCode)
	if err != nil {
		return nil, fmt.Errorf("find product: %w", err)
	}
	p, ok := l.Get()
	if !ok {
		return nil, productNotFound(productCode)
	}
	resp := toProductResponse(*p)
	return &resp, nil
}

func (s *productService) Create(ctx context.Context, req dto.CreateProductRequest) (*dto.StatusMessage, error) {
	log.Info().Str("product_code", req.ProductCode).Msg("process add new product")

	err := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		existing, err := repo.FindByCode(ctx, req.ProductCode)
		if err != nil {
			return err
		}
		if existing.Exists() {
			return productExists(req.ProductCode)
		}
		if err := repo.Create(ctx, newProduct(req)); err != nil {
			// Lost a race against a concurrent create with the same code.
			if repository.IsDuplicateKey(err) {
				return productExists(req.ProductCode)
			}
			return err
		}
		return nil
	})
	if err := finish(entityProduct, "create", err); err != nil {
		return nil, err
	}
	return created("Created new product", location("products", req.ProductCode)), nil
}

func (s *productService) Update(ctx context.Context, productCode string, req dto.UpdateProductRequest) (*dto.StatusMessage, error) {
	log.Info().Str("product_code", productCode).Msg("process patch product")

	err := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		l, err := repo.FindByCodeForUpdate(ctx, productCode)
		if err != nil {
			return err
		}
		stored, ok := l.Get()
		if !ok {
			return productNotFound(productCode)
		}
		merged := applyProductUpdate(*stored, req)
		return repo.Update(ctx, &merged)
	})
	if err := finish(entityProduct, "update", err); err != nil {
		return nil, err
	}
	return updated("Patch product process", location("products", productCode)), nil
}

