package parser

import "testing"

func TestParsePersonalExplicitCategory(t *testing.T) {
	p := newTestParser()

	expense, ok := p.ParsePersonal("Pessoal: Uber volta do mercado - 20,00 - Transporte - Cartão - Urgente")
	if !ok {
		t.Fatal("expected match")
	}
	if expense.Description != "Uber volta do mercado" {
		t.Errorf("description = %q", expense.Description)
	}
	if expense.Amount != 20.00 || expense.Category != "Transporte" {
		t.Errorf("amount=%v category=%q", expense.Amount, expense.Category)
	}
	if expense.Payment != "Cartão" || expense.Notes != "Urgente" {
		t.Errorf("payment=%q notes=%q", expense.Payment, expense.Notes)
	}
	if expense.Date != testDate {
		t.Errorf("date = %q", expense.Date)
	}
}

func TestParsePersonalInfersCategoryWhenSegmentBlank(t *testing.T) {
	p := newTestParser()

	// Category segment is present but blank: the keyword scan still runs.
	expense, ok := p.ParsePersonal("Pessoal: Uber para o shopping - 25,00 - - PIX")
	if !ok {
		t.Fatal("expected match")
	}
	if expense.Category != "Transporte" {
		t.Errorf("category = %q, want Transporte", expense.Category)
	}
	if expense.Payment != "PIX" {
		t.Errorf("payment = %q", expense.Payment)
	}
}

func TestParsePersonalSingleSegment(t *testing.T) {
	p := newTestParser()

	expense, ok := p.ParsePersonal("Pessoal: Almoço no shopping")
	if !ok {
		t.Fatal("expected match")
	}
	if expense.Amount != 0 {
		t.Errorf("amount = %v", expense.Amount)
	}
	if expense.Category != "Alimentação" {
		t.Errorf("category = %q, want Alimentação", expense.Category)
	}
	if expense.Payment != "" || expense.Notes != "" {
		t.Errorf("payment=%q notes=%q", expense.Payment, expense.Notes)
	}
}

func TestParsePersonalNoKeywordMatch(t *testing.T) {
	p := newTestParser()

	expense, ok := p.ParsePersonal("Pessoal: Presente para a sogra - 30,00")
	if !ok {
		t.Fatal("expected match")
	}
	if expense.Category != "" {
		t.Errorf("category = %q, want empty", expense.Category)
	}
}

func TestParsePersonalAmountSoftFallback(t *testing.T) {
	p := newTestParser()

	expense, ok := p.ParsePersonal("Pessoal: Cinema - caro")
	if !ok {
		t.Fatal("expected match")
	}
	if expense.Amount != 0 {
		t.Errorf("amount = %v, want 0", expense.Amount)
	}
	if expense.Category != "Lazer" {
		t.Errorf("category = %q", expense.Category)
	}
}
