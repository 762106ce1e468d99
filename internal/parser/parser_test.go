package parser

import (
	"time"

	"docinho/internal/catalog"
)

func newTestParser() *Parser {
	p := New(catalog.Seeded())
	p.Now = func() time.Time { return time.Date(2026, 3, 14, 10, 30, 0, 0, time.UTC) }
	return p
}

const testDate = "14/03/2026"
