package domain

// Product is one scraped Nike catalog row. Every field arrives as opaque
// text from the upstream table; RatingScore and ReviewCount are untrusted
// and must go through the parse helpers before any arithmetic.
type Product struct {
	DetailURL       string `json:"productUrl"`
	ImageURL        string `json:"imageUrl"`
	Tagging         string `json:"tagging,omitempty"`
	Name            string `json:"name"`
	Description     string `json:"description,omitempty"`
	OriginalPrice   string `json:"originalPrice"`
	DiscountPrice   string `json:"discountPrice,omitempty"`
	Sizes           string `json:"sizesAvailable,omitempty"`
	Vouchers        string `json:"vouchers,omitempty"`
	AvailableColors string `json:"availableColors,omitempty"`
	ColorShown      string `json:"colorShown,omitempty"`
	StyleCode       string `json:"styleCode"`
	RatingScore     string `json:"ratingScore,omitempty"`
	ReviewCount     string `json:"reviewCount,omitempty"`
}

// DisplayPrice is the price shown on a card: the discount price when the
// row has one, the original price otherwise.
func (p Product) DisplayPrice() string {
	if p.DiscountPrice != "" {
		return p.DiscountPrice
	}
	return p.OriginalPrice
}

// HasDiscount reports whether the row carries a discount price, which is
// what drives the struck-through original price on the card.
func (p Product) HasDiscount() bool {
	return p.DiscountPrice != ""
}
