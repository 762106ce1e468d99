package catalog

import "docinho/internal"

// Seeded returns a store preloaded with the confeitaria's standing catalog.
// The seed is used until a spreadsheet reload succeeds.
func Seeded() *Store {
	s := NewStore()
	s.ReplaceProducts(map[string]float64{
		"trufa de morango":    4.00,
		"trufa de maracujá":   4.00,
		"trufa de castanha":   4.00,
		"trufa de brigadeiro": 4.00,
		"trufa de paçoca":     4.00,
		"trufa de coco":       4.00,
		"mousse de maracujá":  7.00,
		"mousse de limão":     7.00,
		"torta de maracujá":   8.00,
		"torta de morango":    8.00,
		"torta de limão":      8.00,
		"torta de paçoca":     8.00,
		"torta de oreo":       8.00,
		"delícia de uva":      8.00,
		"pudim de leite":      8.00,
	})
	s.ReplaceIngredients(map[string]internal.Ingredient{
		"leite condensado":   {Unit: "g", Price: 6.45},
		"uva verde":          {Unit: "g", Price: 16.00},
		"limão":              {Unit: "g", Price: 5.00},
		"maracujá":           {Unit: "kg", Price: 15.00},
		"chantily":           {Unit: "litro", Price: 20.00},
		"chocolate em barra": {Unit: "g", Price: 28.00},
		"creme de leite":     {Unit: "g", Price: 3.39},
		"morango":            {Unit: "g", Price: 10.00},
	})
	s.ReplaceKeywords([]KeywordCategory{
		{Keyword: "uber", Category: "Transporte"},
		{Keyword: "táxi", Category: "Transporte"},
		{Keyword: "ônibus", Category: "Transporte"},
		{Keyword: "metrô", Category: "Transporte"},
		{Keyword: "almoço", Category: "Alimentação"},
		{Keyword: "jantar", Category: "Alimentação"},
		{Keyword: "lanche", Category: "Alimentação"},
		{Keyword: "café", Category: "Alimentação"},
		{Keyword: "cinema", Category: "Lazer"},
		{Keyword: "show", Category: "Lazer"},
		{Keyword: "teatro", Category: "Lazer"},
		{Keyword: "internet", Category: "Contas"},
		{Keyword: "luz", Category: "Contas"},
		{Keyword: "água", Category: "Contas"},
		{Keyword: "telefone", Category: "Contas"},
		{Keyword: "aluguel", Category: "Moradia"},
		{Keyword: "condomínio", Category: "Moradia"},
		{Keyword: "remédio", Category: "Saúde"},
		{Keyword: "consulta", Category: "Saúde"},
		{Keyword: "exame", Category: "Saúde"},
	})
	return s
}
