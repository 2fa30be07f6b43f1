package catalog

import (
	"context"
	"io"
	"log"

	"nike-dashboard/internal/domain"
	catalogrepo "nike-dashboard/internal/repository/catalog"
)

type Service struct {
	repo   catalogrepo.Repository
	logger *log.Logger
}

func New(repo catalogrepo.Repository, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Service{repo: repo, logger: logger}
}

// Load fetches every catalog row for one page render. A failed query is
// logged and collapses to an empty slice: the dashboard shows its
// empty-state instead of an error page, and the caller never retries.
func (s *Service) Load(ctx context.Context) []domain.Product {
	products, err := s.repo.ListAll(ctx)
	if err != nil {
		s.logger.Printf("catalog load failed, rendering empty catalog: %v", err)
		return nil
	}
	return products
}

// Get returns a single row by style code. Unlike Load, lookups surface
// their error so the API can answer 404 for unknown codes.
func (s *Service) Get(ctx context.Context, styleCode string) (*domain.Product, error) {
	return s.repo.GetByStyleCode(ctx, styleCode)
}
