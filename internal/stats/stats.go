// Package stats derives the dashboard aggregates and rankings from a
// loaded product slice. Everything here is a pure function of its input;
// numeric interpretation of the text fields is delegated to domain's parse
// helpers so the aggregator and the card renderer agree on edge cases.
package stats

import (
	"math"
	"sort"
	"strconv"

	"nike-dashboard/internal/domain"
)

// maxCategoryLabels caps the coarse category indicator on the dashboard.
const maxCategoryLabels = 5

// Summary holds the derived statistics for one page render.
type Summary struct {
	TotalProducts   int      `json:"totalProducts"`
	CategoryLabels  []string `json:"categoryLabels"`
	CategoryCount   int      `json:"categoryCount"`
	AverageRating   float64  `json:"averageRating"`
	RatingAvailable bool     `json:"ratingAvailable"`
}

// AverageRatingLabel formats the mean rating for display, with "N/A" as the
// sentinel when no product carried a valid positive rating.
func (s Summary) AverageRatingLabel() string {
	if !s.RatingAvailable {
		return "N/A"
	}
	return strconv.FormatFloat(s.AverageRating, 'f', 1, 64)
}

// Summarize computes the dashboard aggregates. The average includes only
// ratings that parse to a finite positive number; unparsable ratings are
// excluded, not zeroed. Category labels are the first five distinct
// non-empty descriptions by first occurrence - a display approximation,
// not a taxonomy.
func Summarize(products []domain.Product) Summary {
	s := Summary{TotalProducts: len(products)}

	var (
		sum   float64
		rated int
		seen  = map[string]struct{}{}
	)
	for _, p := range products {
		if v, ok := domain.ParseRating(p.RatingScore); ok {
			sum += v
			rated++
		}
		if p.Description == "" || len(s.CategoryLabels) >= maxCategoryLabels {
			continue
		}
		if _, dup := seen[p.Description]; !dup {
			seen[p.Description] = struct{}{}
			s.CategoryLabels = append(s.CategoryLabels, p.Description)
		}
	}

	if rated > 0 {
		s.AverageRating = math.Round(sum/float64(rated)*10) / 10
		s.RatingAvailable = true
	}
	s.CategoryCount = len(s.CategoryLabels)
	return s
}

// RankedProduct is a catalog row with its dense rank in a rating ranking.
type RankedProduct struct {
	Rank int `json:"rank"`
	domain.Product
}

// MostExpensive returns up to limit products ordered by parsed discount
// price descending. Rows without a parsable positive discount price are
// excluded entirely.
func MostExpensive(products []domain.Product, limit int) []domain.Product {
	priced := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if domain.ParsePrice(p.DiscountPrice) > 0 {
			priced = append(priced, p)
		}
	}
	sort.SliceStable(priced, func(i, j int) bool {
		return domain.ParsePrice(priced[i].DiscountPrice) > domain.ParsePrice(priced[j].DiscountPrice)
	})
	if limit > 0 && len(priced) > limit {
		priced = priced[:limit]
	}
	return priced
}

// TopRated ranks products by rating then review count, both descending,
// keeping only rows whose parsed review count exceeds minReviews. Ties on
// both rating and review count share a dense rank. Up to limit rows are
// returned.
func TopRated(products []domain.Product, minReviews, limit int) []RankedProduct {
	type scored struct {
		product domain.Product
		rating  float64
		reviews int
	}

	eligible := make([]scored, 0, len(products))
	for _, p := range products {
		reviews := domain.ParseCount(p.ReviewCount)
		if reviews <= minReviews {
			continue
		}
		rating, _ := domain.ParseRating(p.RatingScore)
		eligible = append(eligible, scored{product: p, rating: rating, reviews: reviews})
	}

	sort.SliceStable(eligible, func(i, j int) bool {
		if eligible[i].rating != eligible[j].rating {
			return eligible[i].rating > eligible[j].rating
		}
		return eligible[i].reviews > eligible[j].reviews
	})

	ranked := make([]RankedProduct, 0, len(eligible))
	rank := 0
	var prev *scored
	for i := range eligible {
		e := eligible[i]
		if prev == nil || e.rating != prev.rating || e.reviews != prev.reviews {
			rank++
		}
		prev = &eligible[i]
		ranked = append(ranked, RankedProduct{Rank: rank, Product: e.product})
		if limit > 0 && len(ranked) == limit {
			break
		}
	}
	return ranked
}
