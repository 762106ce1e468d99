// Package parser turns inbound free-text messages into typed transaction
// records. Parsing is deterministic and delimiter-based: a kind prefix, then
// "-" separated segments. Each parser reports (record, ok); ok=false means
// "not this message kind" and the dispatcher moves on.
package parser

import (
	"strings"
	"time"

	"docinho/internal/catalog"
	"docinho/internal/util"
)

const dateLayout = "02/01/2006"

type Parser struct {
	Catalog *catalog.Store
	Now     func() time.Time
}

func New(store *catalog.Store) *Parser {
	return &Parser{Catalog: store, Now: time.Now}
}

func (p *Parser) today() string {
	return p.Now().Format(dateLayout)
}

// stripKindPrefix removes a case-insensitive kind prefix ("venda:", ...) and
// returns the trimmed remainder.
func stripKindPrefix(text, prefix string) (string, bool) {
	if !util.HasFoldPrefix(text, prefix) {
		return "", false
	}
	return strings.TrimSpace(text[len(prefix):]), true
}

// segment returns segments[i] trimmed, or "" when absent.
func segment(segments []string, i int) string {
	if i >= len(segments) {
		return ""
	}
	return strings.TrimSpace(segments[i])
}
