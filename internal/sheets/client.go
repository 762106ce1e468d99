package sheets

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"

	"docinho/internal/config"
)

// Client wraps the Google Sheets API for a single spreadsheet, authenticated
// with a service account.
type Client struct {
	svc           *sheetsapi.Service
	spreadsheetID string
}

func NewClient(ctx context.Context, cfg config.Config) (*Client, error) {
	if err := cfg.Require("SHEETS_SPREADSHEET_ID", cfg.SpreadsheetID); err != nil {
		return nil, err
	}

	creds, err := os.ReadFile(cfg.CredentialsFile)
	if err != nil {
		return nil, fmt.Errorf("read credentials file: %w", err)
	}

	jwtCfg, err := google.JWTConfigFromJSON(creds, sheetsapi.SpreadsheetsScope)
	if err != nil {
		return nil, fmt.Errorf("parse service account credentials: %w", err)
	}

	svc, err := sheetsapi.NewService(ctx, option.WithTokenSource(jwtCfg.TokenSource(ctx)))
	if err != nil {
		return nil, err
	}

	return &Client{svc: svc, spreadsheetID: cfg.SpreadsheetID}, nil
}

func (c *Client) Get(ctx context.Context, readRange string) ([][]any, error) {
	resp, err := c.svc.Spreadsheets.Values.Get(c.spreadsheetID, readRange).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("sheets get %s: %w", readRange, err)
	}
	return resp.Values, nil
}

func (c *Client) Update(ctx context.Context, writeRange string, values [][]any) error {
	body := &sheetsapi.ValueRange{Values: values}
	_, err := c.svc.Spreadsheets.Values.Update(c.spreadsheetID, writeRange, body).
		ValueInputOption("USER_ENTERED").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("sheets update %s: %w", writeRange, err)
	}
	return nil
}
