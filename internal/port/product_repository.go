package port

import (
	"context"

	"jewelpos/internal/domain"
)

// ProductRepository resolves scanned barcodes to stocked products.
type ProductRepository interface {
	GetByBarcode(ctx context.Context, barcode string) (*domain.Product, error)
}
