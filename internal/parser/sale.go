package parser

import (
	"strconv"
	"strings"

	"docinho/internal"
	"docinho/internal/util"
)

// ParseSale handles "Venda: [Produto] x[Quantidade] - [Pagamento] - [Observações]".
// The product must exist in the catalog; an unknown product or a malformed
// quantity makes this parser decline so the dispatcher can try the next kind.
func (p *Parser) ParseSale(text string) (internal.Sale, bool) {
	content, ok := stripKindPrefix(text, "venda:")
	if !ok {
		return internal.Sale{}, false
	}

	segments := strings.Split(content, "-")
	if len(segments) < 2 {
		return internal.Sale{}, false
	}

	productField := segment(segments, 0)
	product := strings.ToLower(productField)
	qty := 1
	if strings.Contains(productField, "x") {
		pieces := strings.SplitN(productField, "x", 2)
		product = strings.ToLower(strings.TrimSpace(pieces[0]))
		parsed, err := strconv.Atoi(strings.TrimSpace(pieces[1]))
		if err != nil {
			return internal.Sale{}, false
		}
		qty = parsed
	}

	unitPrice, ok := p.Catalog.ProductPrice(product)
	if !ok {
		return internal.Sale{}, false
	}

	return internal.Sale{
		Date:      p.today(),
		Product:   util.TitleWords(product),
		Qty:       qty,
		UnitPrice: unitPrice,
		Total:     unitPrice * float64(qty),
		Payment:   segment(segments, 1),
		Notes:     segment(segments, 2),
	}, true
}
