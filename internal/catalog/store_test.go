package catalog

import (
	"testing"

	"docinho/internal"
)

func TestProductPriceCaseInsensitive(t *testing.T) {
	s := Seeded()

	price, ok := s.ProductPrice("Trufa de Morango")
	if !ok || price != 4.00 {
		t.Fatalf("price=%v ok=%v", price, ok)
	}
	if _, ok := s.ProductPrice("bolo de rolo"); ok {
		t.Fatal("unknown product must not match")
	}
}

func TestCategoryForFirstMatchWins(t *testing.T) {
	s := NewStore()
	s.ReplaceKeywords([]KeywordCategory{
		{Keyword: "uber", Category: "Transporte"},
		{Keyword: "shopping", Category: "Lazer"},
	})

	// Both keywords occur; insertion order decides.
	cat, ok := s.CategoryFor("Uber para o shopping")
	if !ok || cat != "Transporte" {
		t.Fatalf("cat=%q ok=%v", cat, ok)
	}

	if _, ok := s.CategoryFor("mensalidade da academia"); ok {
		t.Fatal("no keyword should match")
	}
}

func TestReplaceNormalizesKeys(t *testing.T) {
	s := NewStore()
	s.ReplaceProducts(map[string]float64{" Pudim De Leite ": 8})
	if price, ok := s.ProductPrice("pudim de leite"); !ok || price != 8 {
		t.Fatalf("price=%v ok=%v", price, ok)
	}

	s.ReplaceIngredients(map[string]internal.Ingredient{"Morango": {Unit: "g", Price: 10}})
	ing, ok := s.Ingredient("MORANGO")
	if !ok || ing.Unit != "g" || ing.Price != 10 {
		t.Fatalf("ing=%+v ok=%v", ing, ok)
	}
}
