package stats

import (
	"reflect"
	"testing"

	"nike-dashboard/internal/domain"
)

func TestSummarize_TotalMatchesLength(t *testing.T) {
	if got := Summarize(nil).TotalProducts; got != 0 {
		t.Fatalf("expected 0 for empty input, got %d", got)
	}
	products := []domain.Product{{Name: "a"}, {Name: "b"}, {Name: "c"}}
	if got := Summarize(products).TotalProducts; got != 3 {
		t.Fatalf("expected 3, got %d", got)
	}
}

func TestSummarize_AverageExcludesInvalidRatings(t *testing.T) {
	products := []domain.Product{
		{RatingScore: "4.0"},
		{RatingScore: "5.0"},
		{RatingScore: "abc"},
		{RatingScore: ""},
		{RatingScore: "0"},
	}
	s := Summarize(products)
	if !s.RatingAvailable {
		t.Fatalf("expected a valid average")
	}
	if s.AverageRating != 4.5 {
		t.Fatalf("expected 4.5, got %v", s.AverageRating)
	}
	if s.AverageRatingLabel() != "4.5" {
		t.Fatalf("expected label 4.5, got %q", s.AverageRatingLabel())
	}
}

func TestSummarize_AverageRoundsToOneDecimal(t *testing.T) {
	products := []domain.Product{
		{RatingScore: "4.0"},
		{RatingScore: "4.1"},
		{RatingScore: "4.1"},
	}
	s := Summarize(products)
	if s.AverageRating != 4.1 {
		t.Fatalf("expected 4.1, got %v", s.AverageRating)
	}
}

func TestSummarize_NoValidRatingsYieldsSentinel(t *testing.T) {
	products := []domain.Product{
		{RatingScore: "abc"},
		{RatingScore: ""},
	}
	s := Summarize(products)
	if s.RatingAvailable {
		t.Fatalf("expected rating to be unavailable")
	}
	if s.AverageRatingLabel() != "N/A" {
		t.Fatalf("expected N/A, got %q", s.AverageRatingLabel())
	}
}

func TestSummarize_CategoryLabelsFirstFiveDistinct(t *testing.T) {
	products := []domain.Product{
		{Description: "Running Shoes"},
		{Description: "Running Shoes"},
		{Description: "Basketball"},
		{Description: ""},
		{Description: "Lifestyle"},
		{Description: "Training"},
		{Description: "Basketball"},
		{Description: "Football"},
		{Description: "Skateboarding"},
	}
	s := Summarize(products)
	want := []string{"Running Shoes", "Basketball", "Lifestyle", "Training", "Football"}
	if !reflect.DeepEqual(s.CategoryLabels, want) {
		t.Fatalf("unexpected labels %v", s.CategoryLabels)
	}
	if s.CategoryCount != 5 {
		t.Fatalf("expected category count 5, got %d", s.CategoryCount)
	}
}

func TestSummarize_CategoryLabelsFewerThanFive(t *testing.T) {
	products := []domain.Product{
		{Description: "Running Shoes"},
		{Description: "Basketball"},
		{Description: "Running Shoes"},
	}
	s := Summarize(products)
	if len(s.CategoryLabels) != 2 {
		t.Fatalf("expected 2 labels, got %v", s.CategoryLabels)
	}
}

func TestMostExpensive_OrdersByDiscountPriceDesc(t *testing.T) {
	products := []domain.Product{
		{Name: "mid", DiscountPrice: "₱5,495"},
		{Name: "no-discount", DiscountPrice: ""},
		{Name: "top", DiscountPrice: "₱9,677"},
		{Name: "cheap", DiscountPrice: "₱1,095"},
	}
	got := MostExpensive(products, 10)
	if len(got) != 3 {
		t.Fatalf("expected 3 priced products, got %d", len(got))
	}
	if got[0].Name != "top" || got[1].Name != "mid" || got[2].Name != "cheap" {
		t.Fatalf("unexpected order: %v, %v, %v", got[0].Name, got[1].Name, got[2].Name)
	}
}

func TestMostExpensive_AppliesLimit(t *testing.T) {
	products := []domain.Product{
		{Name: "a", DiscountPrice: "$30"},
		{Name: "b", DiscountPrice: "$20"},
		{Name: "c", DiscountPrice: "$10"},
	}
	if got := MostExpensive(products, 2); len(got) != 2 {
		t.Fatalf("expected 2, got %d", len(got))
	}
}

func TestTopRated_AppliesReviewFloorAndDenseRank(t *testing.T) {
	products := []domain.Product{
		{Name: "few-reviews", RatingScore: "5.0", ReviewCount: "12"},
		{Name: "best-a", RatingScore: "4.8", ReviewCount: "400"},
		{Name: "best-b", RatingScore: "4.8", ReviewCount: "400"},
		{Name: "second", RatingScore: "4.8", ReviewCount: "300"},
		{Name: "third", RatingScore: "4.5", ReviewCount: "900"},
	}
	got := TopRated(products, 150, 20)
	if len(got) != 4 {
		t.Fatalf("expected 4 eligible products, got %d", len(got))
	}
	if got[0].Rank != 1 || got[1].Rank != 1 {
		t.Fatalf("expected shared rank 1 for exact ties, got %d and %d", got[0].Rank, got[1].Rank)
	}
	if got[2].Rank != 2 || got[2].Name != "second" {
		t.Fatalf("expected rank 2 for %q, got rank %d for %q", "second", got[2].Rank, got[2].Name)
	}
	if got[3].Rank != 3 || got[3].Name != "third" {
		t.Fatalf("expected rank 3 for %q, got rank %d for %q", "third", got[3].Rank, got[3].Name)
	}
}

func TestTopRated_AppliesLimit(t *testing.T) {
	products := []domain.Product{
		{Name: "a", RatingScore: "4.9", ReviewCount: "200"},
		{Name: "b", RatingScore: "4.8", ReviewCount: "200"},
		{Name: "c", RatingScore: "4.7", ReviewCount: "200"},
	}
	got := TopRated(products, 150, 2)
	if len(got) != 2 || got[1].Name != "b" {
		t.Fatalf("unexpected ranking %+v", got)
	}
}
