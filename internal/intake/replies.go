package intake

import (
	"fmt"
	"strings"

	"docinho/internal"
	"docinho/internal/util"
)

// Reply texts mirror the sheet owner's WhatsApp vocabulary; the webhook
// echoes back what was understood so mistakes are visible immediately.

func saleConfirmation(sale internal.Sale) string {
	return fmt.Sprintf(
		"✅ Venda registrada com sucesso!\n\n"+
			"Produto: %s\n"+
			"Quantidade: %d\n"+
			"Valor Total: %s\n"+
			"Forma de Pagamento: %s",
		sale.Product, sale.Qty, util.FormatBRL(sale.Total), sale.Payment)
}

func purchaseConfirmation(purchase internal.Purchase) string {
	items := make([]string, 0, len(purchase.Items))
	for _, item := range purchase.Items {
		items = append(items, fmt.Sprintf("%d %s", item.Qty, item.Name))
	}
	return fmt.Sprintf(
		"✅ Compra registrada com sucesso!\n\n"+
			"Itens: %s\n"+
			"Valor Total: %s\n"+
			"Local: %s\n"+
			"Forma de Pagamento: %s\n\n"+
			"✓ Estoque atualizado automaticamente",
		strings.Join(items, ", "), util.FormatBRL(purchase.Total), purchase.Location, purchase.Payment)
}

func personalConfirmation(expense internal.PersonalExpense) string {
	return fmt.Sprintf(
		"✅ Gasto pessoal registrado com sucesso!\n\n"+
			"Descrição: %s\n"+
			"Valor: %s\n"+
			"Categoria: %s\n"+
			"Forma de Pagamento: %s",
		expense.Description, util.FormatBRL(expense.Amount), expense.Category, expense.Payment)
}

func failureReply(kind internal.RecordKind) string {
	switch kind {
	case internal.KindSale:
		return "❌ Erro ao registrar a venda. Por favor, tente novamente."
	case internal.KindPurchase:
		return "❌ Erro ao registrar a compra. Por favor, tente novamente."
	default:
		return "❌ Erro ao registrar o gasto pessoal. Por favor, tente novamente."
	}
}

const usageHelp = "⚠️ Formato inválido. Use um dos formatos:\n\n" +
	"1) Para vendas:\n" +
	"Venda: [Produto] x[Quantidade] - [Forma de Pagamento] - [Observações]\n" +
	"Exemplo: Venda: Trufa de Morango x2 - PIX - Cliente Maria\n\n" +
	"2) Para compras de ingredientes:\n" +
	"Compra: [Itens] - [Valor Total] - [Local] - [Forma de Pagamento] - [Observações]\n" +
	"Exemplo: Compra: 3 leites condensados, 2 cremes de leite - 50,00 - Atacadão - Cartão - Promoção\n\n" +
	"3) Para gastos pessoais:\n" +
	"Pessoal: [Descrição] - [Valor] - [Categoria] - [Forma de Pagamento] - [Observações]\n" +
	"Exemplo: Pessoal: Uber volta do mercado - 20,00 - Transporte - Cartão - Urgente"

func recordSummary(record internal.Record) string {
	switch record.Kind {
	case internal.KindSale:
		return fmt.Sprintf("%s x%d", record.Sale.Product, record.Sale.Qty)
	case internal.KindPurchase:
		return record.Purchase.ItemsRaw
	case internal.KindPersonal:
		return record.Personal.Description
	}
	return ""
}
