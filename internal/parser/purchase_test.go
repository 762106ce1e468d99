package parser

import "testing"

func TestParsePurchaseFull(t *testing.T) {
	p := newTestParser()

	purchase, ok := p.ParsePurchase("Compra: 3 leites condensados, 2 cremes de leite - 50,00 - Atacadão - Cartão - Promoção")
	if !ok {
		t.Fatal("expected match")
	}

	if len(purchase.Items) != 2 {
		t.Fatalf("items = %d", len(purchase.Items))
	}
	if purchase.Items[0].Name != "leites condensados" || purchase.Items[0].Qty != 3 {
		t.Errorf("item0 = %+v", purchase.Items[0])
	}
	if purchase.Items[1].Name != "cremes de leite" || purchase.Items[1].Qty != 2 {
		t.Errorf("item1 = %+v", purchase.Items[1])
	}

	if purchase.Total != 50.00 {
		t.Errorf("total = %v", purchase.Total)
	}
	if purchase.Location != "Atacadão" || purchase.Payment != "Cartão" || purchase.Notes != "Promoção" {
		t.Errorf("location=%q payment=%q notes=%q", purchase.Location, purchase.Payment, purchase.Notes)
	}
	if purchase.ItemsRaw != "3 leites condensados, 2 cremes de leite" {
		t.Errorf("itemsRaw = %q", purchase.ItemsRaw)
	}
	if purchase.Date != testDate {
		t.Errorf("date = %q", purchase.Date)
	}
}

func TestParsePurchaseItemsOnly(t *testing.T) {
	p := newTestParser()

	purchase, ok := p.ParsePurchase("Compra: 4 cremes de leite, 1 chocolate em barra")
	if !ok {
		t.Fatal("expected match")
	}
	if purchase.Total != 0 || purchase.Location != "" || purchase.Payment != "" || purchase.Notes != "" {
		t.Errorf("defaults not empty: %+v", purchase)
	}
}

func TestParsePurchaseItemWithoutQuantity(t *testing.T) {
	p := newTestParser()

	purchase, ok := p.ParsePurchase("Compra: granulado, 2 morangos - 12,00")
	if !ok {
		t.Fatal("expected match")
	}
	if purchase.Items[0].Name != "granulado" || purchase.Items[0].Qty != 1 {
		t.Errorf("item0 = %+v", purchase.Items[0])
	}
	if purchase.Items[1].Qty != 2 {
		t.Errorf("item1 = %+v", purchase.Items[1])
	}
}

func TestParsePurchaseAmountSoftFallback(t *testing.T) {
	p := newTestParser()

	purchase, ok := p.ParsePurchase("Compra: 2 limões - abc - Feira")
	if !ok {
		t.Fatal("expected match: a bad amount never fails the purchase parser")
	}
	if purchase.Total != 0 {
		t.Errorf("total = %v, want 0", purchase.Total)
	}
	if purchase.Location != "Feira" {
		t.Errorf("location = %q", purchase.Location)
	}
}

func TestParsePurchaseWrongPrefix(t *testing.T) {
	p := newTestParser()
	if _, ok := p.ParsePurchase("Venda: trufa de coco - PIX"); ok {
		t.Fatal("expected decline")
	}
}
