package parser

import (
	"regexp"
	"strconv"
	"strings"

	"docinho/internal"
	"docinho/internal/util"
)

// "3 leites condensados" -> qty 3, name "leites condensados".
var itemQtyPattern = regexp.MustCompile(`^(\d+)\s+(.+)$`)

// ParsePurchase handles
// "Compra: [Itens] - [Valor Total] - [Local] - [Pagamento] - [Observações]".
// Every field after the items list is optional; an unparseable total silently
// becomes 0.
func (p *Parser) ParsePurchase(text string) (internal.Purchase, bool) {
	content, ok := stripKindPrefix(text, "compra:")
	if !ok {
		return internal.Purchase{}, false
	}

	segments := strings.Split(content, "-")
	itemsField := segment(segments, 0)

	fragments := strings.Split(itemsField, ",")
	items := make([]internal.PurchaseItem, 0, len(fragments))
	for _, fragment := range fragments {
		fragment = strings.TrimSpace(fragment)
		if m := itemQtyPattern.FindStringSubmatch(fragment); m != nil {
			qty, _ := strconv.Atoi(m[1])
			items = append(items, internal.PurchaseItem{
				Name: strings.ToLower(strings.TrimSpace(m[2])),
				Qty:  qty,
			})
			continue
		}
		items = append(items, internal.PurchaseItem{Name: strings.ToLower(fragment), Qty: 1})
	}

	total := 0.0
	if amount := segment(segments, 1); amount != "" {
		if parsed, ok := util.ParseBRL(amount); ok {
			total = parsed
		}
	}

	return internal.Purchase{
		Date:     p.today(),
		Items:    items,
		ItemsRaw: itemsField,
		Total:    total,
		Location: segment(segments, 2),
		Payment:  segment(segments, 3),
		Notes:    segment(segments, 4),
	}, true
}
