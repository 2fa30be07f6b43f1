package httpserver

import (
	"math"

	"nike-dashboard/internal/domain"
)

// placeholderImage is shown when a row has no image URL.
const placeholderImage = "https://placehold.co/400x480?text=No+Image"

const starCount = 5

// productCard is the view model for one card on the dashboard grid. It is
// derived from a Product and nothing else, so rendering is pure.
type productCard struct {
	ImageURL        string
	Badge           string
	Name            string
	Description     string
	Stars           [starCount]bool
	RatingLabel     string
	Reviews         int
	CurrentPrice    string
	OriginalPrice   string
	HasDiscount     bool
	DetailURL       string
	Sizes           string
	ColorShown      string
	AvailableColors string
	Vouchers        string
	StyleCode       string
}

// buildCard maps a catalog row onto its card. Absent fields degrade to
// placeholders; nothing here can fail.
func buildCard(p domain.Product) productCard {
	card := productCard{
		ImageURL:        p.ImageURL,
		Badge:           p.Tagging,
		Name:            p.Name,
		Description:     p.Description,
		RatingLabel:     p.RatingScore,
		Reviews:         domain.ParseCount(p.ReviewCount),
		CurrentPrice:    p.DisplayPrice(),
		OriginalPrice:   p.OriginalPrice,
		HasDiscount:     p.HasDiscount(),
		DetailURL:       p.DetailURL,
		Sizes:           p.Sizes,
		ColorShown:      p.ColorShown,
		AvailableColors: p.AvailableColors,
		Vouchers:        p.Vouchers,
		StyleCode:       p.StyleCode,
	}

	if card.ImageURL == "" {
		card.ImageURL = placeholderImage
	}

	rating, ok := domain.ParseRating(p.RatingScore)
	if !ok {
		// Missing and unparsable ratings both show the sentinel and fill
		// no stars; only the text of a valid rating is kept verbatim.
		card.RatingLabel = "N/A"
		return card
	}

	filled := int(math.Floor(rating))
	if filled > starCount {
		filled = starCount
	}
	for i := 0; i < filled; i++ {
		card.Stars[i] = true
	}

	return card
}

func buildCards(products []domain.Product) []productCard {
	cards := make([]productCard, 0, len(products))
	for _, p := range products {
		cards = append(cards, buildCard(p))
	}
	return cards
}
