package service

import (
	"context"

	"jewelpos/internal/domain"
	"jewelpos/internal/port"
)

// ProductService resolves scanned barcodes to stocked products; the result
// feeds the billing form with pricing defaults.
type ProductService interface {
	Scan(ctx context.Context, barcode string) (*domain.Product, error)
}

type productService struct {
	repo port.ProductRepository
}

// NewProductService creates a new ProductService.
func NewProductService(repo port.ProductRepository) ProductService {
	return &productService{repo: repo}
}

func (s *productService) Scan(ctx context.Context, barcode string) (*domain.Product, error) {
	if barcode == "" {
		return nil, domain.NewValidationError("barcode", "is required")
	}
	return s.repo.GetByBarcode(ctx, barcode)
}
