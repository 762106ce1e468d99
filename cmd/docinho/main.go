package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"docinho/internal/catalog"
	"docinho/internal/config"
	"docinho/internal/parser"
	"docinho/internal/report"
	"docinho/internal/sheets"
	"docinho/internal/storage"
	"docinho/internal/webhook"
)

func main() {
	cfg, err := config.Load()
	must(err)

	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	cmd := os.Args[1]
	switch cmd {
	case "serve":
		db, err := storage.Open(cfg.DBPath)
		must(err)
		defer db.Close()
		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer cancel()
		must(webhook.Run(ctx, cfg, db))
	case "catalog:reload":
		client, err := sheets.NewClient(context.Background(), cfg)
		must(err)
		store := catalog.NewStore()
		must(sheets.ReloadCatalog(context.Background(), client, store))
		fmt.Printf("catalog reload complete: products=%d ingredients=%d\n", store.ProductCount(), store.IngredientCount())
	case "parse":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		text := fs.String("text", "", "raw message text")
		_ = fs.Parse(os.Args[2:])
		if strings.TrimSpace(*text) == "" {
			must(fmt.Errorf("--text is required"))
		}
		p := parser.New(catalog.Seeded())
		record, ok := p.Dispatch(*text)
		if !ok {
			fmt.Println("unrecognized format")
			os.Exit(1)
		}
		blob, err := json.MarshalIndent(record, "", "  ")
		must(err)
		fmt.Println(string(blob))
	case "export:xlsx":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		month := fs.String("month", "", "month as MM/YYYY")
		out := fs.String("out", "", "output xlsx path")
		_ = fs.Parse(os.Args[2:])
		if strings.TrimSpace(*month) == "" {
			must(fmt.Errorf("--month is required"))
		}
		if strings.TrimSpace(*out) == "" {
			name := fmt.Sprintf("relatorio-%s.xlsx", strings.ReplaceAll(*month, "/", "-"))
			*out = filepath.Join(cfg.OutputDir, name)
		}
		db, err := storage.Open(cfg.DBPath)
		must(err)
		defer db.Close()
		rows, err := db.ListRecordsByMonth(*month)
		must(err)
		if len(rows) == 0 {
			must(fmt.Errorf("no records for month=%s", *month))
		}
		must(report.ExportRowsToXLSX(rows, *out))
		fmt.Printf("exported %d rows to %s\n", len(rows), *out)
	default:
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Println("usage: docinho <command>")
	fmt.Println("commands:")
	fmt.Println("  serve")
	fmt.Println("  catalog:reload")
	fmt.Println("  parse --text=\"Venda: Trufa de Morango x2 - PIX\"")
	fmt.Println("  export:xlsx --month=MM/YYYY [--out=./out/relatorio.xlsx]")
}

func must(err error) {
	if err == nil {
		return
	}
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}
