package usecase

import (
	"context"
	"errors"

	"github.com/TajwarSaiyeed/nexora-e-commerce/internal/entity"
)

// Catalog exposes the read-only product catalog.
type Catalog struct {
	products ProductRepo
}

func NewCatalog(products ProductRepo) *Catalog {
	return &Catalog{products: products}
}

func (s *Catalog) List(ctx context.Context) ([]entity.Product, error) {
	return s.products.List(ctx)
}

func (s *Catalog) Get(ctx context.Context, id string) (*entity.Product, error) {
	product, err := s.products.GetByID(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return nil, notFound("Product not found")
	}
	return product, err
}
