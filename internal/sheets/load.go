package sheets

import (
	"context"
	"strings"

	"docinho/internal"
	"docinho/internal/catalog"
	"docinho/internal/util"
)

// LoadProducts reads the product tab (name in column B, price in column D)
// and returns the name -> unit price mapping. Rows with an unparseable price
// are skipped.
func LoadProducts(ctx context.Context, api RowAPI) (map[string]float64, error) {
	values, err := api.Get(ctx, "Produtos!B:D")
	if err != nil {
		return nil, err
	}

	products := map[string]float64{}
	for i, row := range values {
		if i < headerRows || len(row) < 3 {
			continue
		}
		name := strings.ToLower(strings.TrimSpace(cellText(row, 0)))
		if name == "" {
			continue
		}
		price, ok := util.ParseBRL(cellText(row, 2))
		if !ok {
			continue
		}
		products[name] = price
	}
	return products, nil
}

// LoadIngredients reads the stock tab (name, current qty, unit, price) and
// returns the ingredient mapping. Missing units default to "g", missing
// prices to 0.
func LoadIngredients(ctx context.Context, api RowAPI) (map[string]internal.Ingredient, error) {
	values, err := api.Get(ctx, stockSheet+"!B:E")
	if err != nil {
		return nil, err
	}

	ingredients := map[string]internal.Ingredient{}
	for i, row := range values {
		if i < headerRows || len(row) < 3 {
			continue
		}
		name := strings.ToLower(strings.TrimSpace(cellText(row, 0)))
		if name == "" {
			continue
		}

		unit := cellText(row, 2)
		if strings.TrimSpace(unit) == "" {
			unit = "g"
		}
		price, ok := util.ParseBRL(cellText(row, 3))
		if !ok {
			price = 0
		}
		ingredients[name] = internal.Ingredient{Unit: unit, Price: price}
	}
	return ingredients, nil
}

// ReloadCatalog bulk-replaces the store's product and ingredient mappings
// from the spreadsheet. The keyword pairs are not sheet-backed and keep their
// seed values.
func ReloadCatalog(ctx context.Context, api RowAPI, store *catalog.Store) error {
	products, err := LoadProducts(ctx, api)
	if err != nil {
		return err
	}
	ingredients, err := LoadIngredients(ctx, api)
	if err != nil {
		return err
	}
	store.ReplaceProducts(products)
	store.ReplaceIngredients(ingredients)
	return nil
}
