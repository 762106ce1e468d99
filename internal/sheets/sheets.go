// Package sheets is the spreadsheet side of the system: it appends ledger
// rows for parsed records and loads catalog reference data. Row access goes
// through RowAPI so the ledger logic is testable without the Sheets service.
package sheets

import (
	"context"
	"strconv"
	"strings"
)

type RowAPI interface {
	Get(ctx context.Context, readRange string) ([][]any, error)
	Update(ctx context.Context, writeRange string, values [][]any) error
}

func cellText(row []any, i int) string {
	if i >= len(row) {
		return ""
	}
	s, _ := row[i].(string)
	return s
}

func cellFloat(row []any, i int) (float64, bool) {
	if i >= len(row) {
		return 0, false
	}
	switch v := row[i].(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, false
		}
		return parsed, true
	}
	return 0, false
}
