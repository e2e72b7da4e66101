package productControllers

import (
	"testing"

	"github.com/IskDev0/organick-backend/models"
)

func TestToCard_NoDiscount(t *testing.T) {
	card := toCard(models.Product{
		ID:       1,
		Name:     "Carrots",
		Price:    4.50,
		Category: models.Category{Name: "Vegetables"},
	})

	if card.Price != 4.50 {
		t.Errorf("Expected price 4.50, got %.2f", card.Price)
	}
	if card.OldPrice != nil {
		t.Error("Expected no oldPrice without a discount")
	}
	if card.Category != "Vegetables" {
		t.Errorf("Expected category Vegetables, got %q", card.Category)
	}
}

func TestToCard_DiscountExposesOldPrice(t *testing.T) {
	card := toCard(models.Product{
		Price:    100.00,
		Discount: 25,
	})

	if card.Price != 75.00 {
		t.Errorf("Expected discounted price 75.00, got %.2f", card.Price)
	}
	if card.OldPrice == nil {
		t.Fatal("Expected oldPrice when a discount applies")
	}
	if *card.OldPrice != 100.00 {
		t.Errorf("Expected oldPrice 100.00, got %.2f", *card.OldPrice)
	}
}

func TestToCard_AverageRating(t *testing.T) {
	card := toCard(models.Product{
		Price: 10,
		Reviews: []models.Review{
			{Rating: 5},
			{Rating: 4},
			{Rating: 4},
		},
	})

	if card.Rating != 4.3 {
		t.Errorf("Expected rating 4.3, got %.1f", card.Rating)
	}
}

func TestToCard_NoReviewsZeroRating(t *testing.T) {
	card := toCard(models.Product{Price: 10})
	if card.Rating != 0 {
		t.Errorf("Expected rating 0, got %.1f", card.Rating)
	}
}
