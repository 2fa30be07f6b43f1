package catalog

import (
	"context"

	"nike-dashboard/internal/domain"
)

type Repository interface {
	ListAll(ctx context.Context) ([]domain.Product, error)
	GetByStyleCode(ctx context.Context, styleCode string) (*domain.Product, error)
	Upsert(ctx context.Context, product domain.Product) error
}
