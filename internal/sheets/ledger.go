package sheets

import (
	"context"
	"fmt"
	"strings"

	"docinho/internal"
	"docinho/internal/util"
)

// Sheet tab names and layout constants. The first four rows of each tab are
// headers; data starts at row 5.
const (
	salesSheet    = "Registro de Vendas"
	stockSheet    = "Controle de Estoque"
	businessSheet = "Via 1 - Negócios"
	personalSheet = "Via 2 - Pessoal"

	headerRows   = 4
	firstDataRow = headerRows + 1
)

// Ledger persists transaction records as spreadsheet rows. Appends work the
// way the sheet was designed for: read the column block, find the next free
// row, write in place.
type Ledger struct {
	api RowAPI
}

func NewLedger(api RowAPI) *Ledger {
	return &Ledger{api: api}
}

func (l *Ledger) AppendSale(ctx context.Context, sale internal.Sale) error {
	values, err := l.api.Get(ctx, salesSheet+"!A:G")
	if err != nil {
		return err
	}
	next := len(values) + 1
	if next < firstDataRow {
		next = firstDataRow
	}

	row := []any{sale.Date, sale.Product, sale.Qty, sale.UnitPrice, sale.Total, sale.Payment, sale.Notes}
	return l.api.Update(ctx, fmt.Sprintf("%s!A%d:G%d", salesSheet, next, next), [][]any{row})
}

func (l *Ledger) AppendPurchase(ctx context.Context, purchase internal.Purchase) error {
	for _, item := range purchase.Items {
		if err := l.upsertStock(ctx, item, purchase.Location); err != nil {
			return err
		}
	}

	values, err := l.api.Get(ctx, businessSheet+"!A:G")
	if err != nil {
		return err
	}
	next := len(values) + 1

	row := []any{purchase.Date, purchase.ItemsRaw, "Ingredientes", purchase.Total, purchase.Payment, purchase.Notes}
	return l.api.Update(ctx, fmt.Sprintf("%s!A%d:F%d", businessSheet, next, next), [][]any{row})
}

func (l *Ledger) AppendPersonal(ctx context.Context, expense internal.PersonalExpense) error {
	values, err := l.api.Get(ctx, personalSheet+"!A:G")
	if err != nil {
		return err
	}
	next := len(values) + 1

	row := []any{expense.Date, expense.Description, expense.Category, expense.Amount, expense.Payment, expense.Notes}
	return l.api.Update(ctx, fmt.Sprintf("%s!A%d:F%d", personalSheet, next, next), [][]any{row})
}

// upsertStock adds the purchased quantity onto the item's stock row, or
// inserts a new stock row with a generated sequential code when the item is
// not tracked yet.
func (l *Ledger) upsertStock(ctx context.Context, item internal.PurchaseItem, location string) error {
	values, err := l.api.Get(ctx, stockSheet+"!A:G")
	if err != nil {
		return err
	}

	for i, row := range values {
		if i < headerRows {
			continue
		}
		if !strings.EqualFold(strings.TrimSpace(cellText(row, 1)), item.Name) {
			continue
		}

		current, _ := cellFloat(row, 2)
		updated := current + float64(item.Qty)
		rowNum := i + 1
		return l.api.Update(ctx, fmt.Sprintf("%s!C%d", stockSheet, rowNum), [][]any{{updated}})
	}

	next := len(values) + 1
	code := fmt.Sprintf("ING%03d", next-headerRows)
	row := []any{
		code,
		util.TitleWords(item.Name),
		item.Qty,
		"g", // default unit, refined manually on the sheet
		0,
		fmt.Sprintf("=C%d*E%d", next, next),
		"",
		location,
	}
	return l.api.Update(ctx, fmt.Sprintf("%s!A%d:H%d", stockSheet, next, next), [][]any{row})
}
