package parser

import "docinho/internal"

// Dispatch tries the three parsers in fixed order and returns the first
// accepted record. ok=false means no parser recognized the message and the
// sender should get the usage help.
func (p *Parser) Dispatch(text string) (internal.Record, bool) {
	if sale, ok := p.ParseSale(text); ok {
		return internal.Record{Kind: internal.KindSale, Sale: &sale}, true
	}
	if purchase, ok := p.ParsePurchase(text); ok {
		return internal.Record{Kind: internal.KindPurchase, Purchase: &purchase}, true
	}
	if personal, ok := p.ParsePersonal(text); ok {
		return internal.Record{Kind: internal.KindPersonal, Personal: &personal}, true
	}
	return internal.Record{}, false
}
