package parser

import (
	"strings"

	"docinho/internal"
	"docinho/internal/util"
)

// ParsePersonal handles
// "Pessoal: [Descrição] - [Valor] - [Categoria] - [Pagamento] - [Observações]".
// When the category segment is absent or blank the category is inferred from
// the description via the catalog's ordered keyword pairs.
func (p *Parser) ParsePersonal(text string) (internal.PersonalExpense, bool) {
	content, ok := stripKindPrefix(text, "pessoal:")
	if !ok {
		return internal.PersonalExpense{}, false
	}

	segments := strings.Split(content, "-")
	description := segment(segments, 0)

	amount := 0.0
	if field := segment(segments, 1); field != "" {
		if parsed, ok := util.ParseBRL(field); ok {
			amount = parsed
		}
	}

	category := segment(segments, 2)
	if category == "" {
		category, _ = p.Catalog.CategoryFor(description)
	}

	return internal.PersonalExpense{
		Date:        p.today(),
		Description: description,
		Amount:      amount,
		Category:    category,
		Payment:     segment(segments, 3),
		Notes:       segment(segments, 4),
	}, true
}
