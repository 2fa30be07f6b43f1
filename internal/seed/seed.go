package seed

import (
	"context"
	"fmt"
	"log"

	"nike-dashboard/internal/domain"
	catalogrepo "nike-dashboard/internal/repository/catalog"
)

// Apply inserts basic seed data for manual testing. It is idempotent via
// the repository's ON CONFLICT upsert.
func Apply(ctx context.Context, repo catalogrepo.Repository, logger *log.Logger) error {
	products := []domain.Product{
		{
			DetailURL:       "https://www.nike.com/ph/t/air-force-1-07-shoes",
			ImageURL:        "https://static.nike.com/a/images/air-force-1-07.png",
			Tagging:         "Best Seller",
			Name:            "Nike Air Force 1 '07",
			Description:     "Men's Shoes",
			OriginalPrice:   "₱6,895",
			Sizes:           "EU 40, EU 41, EU 42",
			AvailableColors: "2 Colours",
			ColorShown:      "White/White",
			StyleCode:       "CW2288-111",
			RatingScore:     "4.8",
			ReviewCount:     "610",
		},
		{
			DetailURL:       "https://www.nike.com/ph/t/pegasus-41-road-running-shoes",
			ImageURL:        "https://static.nike.com/a/images/pegasus-41.png",
			Tagging:         "Sale",
			Name:            "Nike Pegasus 41",
			Description:     "Men's Road Running Shoes",
			OriginalPrice:   "₱8,295",
			DiscountPrice:   "₱5,807",
			Vouchers:        "Limited Time Offer",
			Sizes:           "EU 41, EU 42.5",
			AvailableColors: "3 Colours",
			ColorShown:      "Black/White",
			StyleCode:       "FD2722-001",
			RatingScore:     "4.6",
			ReviewCount:     "1,204",
		},
		{
			DetailURL:     "https://www.nike.com/ph/t/dunk-low-retro-shoes",
			Name:          "Nike Dunk Low Retro",
			Description:   "Men's Shoes",
			OriginalPrice: "₱5,895",
			StyleCode:     "DD1391-100",
		},
	}

	for _, p := range products {
		if err := repo.Upsert(ctx, p); err != nil {
			return fmt.Errorf("upsert product %s: %w", p.StyleCode, err)
		}
	}
	logger.Printf("seeded %d products", len(products))

	return nil
}
