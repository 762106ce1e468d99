package catalog

import (
	"strings"
	"sync"

	"docinho/internal"
)

// KeywordCategory is one (keyword, category) inference pair. Pairs are kept
// as an ordered slice, not a map: expense category inference is first-match
// and must stay deterministic across reloads.
type KeywordCategory struct {
	Keyword  string
	Category string
}

// Store holds the product, ingredient and expense-keyword reference data.
// Lookups lowercase their argument; keys are stored lowercase. The store is
// safe for concurrent readers with occasional bulk replaces.
type Store struct {
	mu          sync.RWMutex
	products    map[string]float64
	ingredients map[string]internal.Ingredient
	keywords    []KeywordCategory
}

func NewStore() *Store {
	return &Store{
		products:    map[string]float64{},
		ingredients: map[string]internal.Ingredient{},
	}
}

func (s *Store) ProductPrice(name string) (float64, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	price, ok := s.products[strings.ToLower(strings.TrimSpace(name))]
	return price, ok
}

func (s *Store) Ingredient(name string) (internal.Ingredient, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ing, ok := s.ingredients[strings.ToLower(strings.TrimSpace(name))]
	return ing, ok
}

// CategoryFor scans description for the first keyword contained as a
// substring and returns its category. Substring containment is intentional:
// "uber" matches inside "Uber para o shopping".
func (s *Store) CategoryFor(description string) (string, bool) {
	lowered := strings.ToLower(description)
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, pair := range s.keywords {
		if strings.Contains(lowered, pair.Keyword) {
			return pair.Category, true
		}
	}
	return "", false
}

func (s *Store) ReplaceProducts(products map[string]float64) {
	normalized := make(map[string]float64, len(products))
	for name, price := range products {
		normalized[strings.ToLower(strings.TrimSpace(name))] = price
	}
	s.mu.Lock()
	s.products = normalized
	s.mu.Unlock()
}

func (s *Store) ReplaceIngredients(ingredients map[string]internal.Ingredient) {
	normalized := make(map[string]internal.Ingredient, len(ingredients))
	for name, ing := range ingredients {
		normalized[strings.ToLower(strings.TrimSpace(name))] = ing
	}
	s.mu.Lock()
	s.ingredients = normalized
	s.mu.Unlock()
}

func (s *Store) ReplaceKeywords(pairs []KeywordCategory) {
	normalized := make([]KeywordCategory, 0, len(pairs))
	for _, pair := range pairs {
		normalized = append(normalized, KeywordCategory{
			Keyword:  strings.ToLower(strings.TrimSpace(pair.Keyword)),
			Category: pair.Category,
		})
	}
	s.mu.Lock()
	s.keywords = normalized
	s.mu.Unlock()
}

func (s *Store) ProductCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.products)
}

func (s *Store) IngredientCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.ingredients)
}
