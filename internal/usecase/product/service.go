package product

import (
	"context"

	dom "example.com/protein-store/internal/domain/product"
)

type Service struct {
	repo dom.Repository
}

func NewService(repo dom.Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, p *dom.Product) (*dom.Product, error) {
	return s.repo.Create(ctx, p)
}

// Update merges the non-empty fields of p into the stored product.
// Featured carries no empty value, so it is only applied when setFeatured
// is true (the field was present in the request).
func (s *Service) Update(ctx context.Context, p *dom.Product, setFeatured bool) (*dom.Product, error) {
	existed, err := s.repo.GetByID(ctx, p.ID)
	if err != nil {
		return nil, err
	}

	if p.Name != "" {
		existed.Name = p.Name
	}
	if p.Description != "" {
		existed.Description = p.Description
	}
	if p.Price > 0 {
		existed.Price = p.Price
	}
	if p.Category != "" {
		existed.Category = p.Category
	}
	if p.ImagePath != "" {
		existed.ImagePath = p.ImagePath
	}
	if setFeatured {
		existed.Featured = p.Featured
	}

	return s.repo.Update(ctx, existed)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) GetByID(ctx context.Context, id int64) (*dom.Product, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context, filter dom.ListFilter) ([]*dom.Product, error) {
	return s.repo.List(ctx, filter)
}
