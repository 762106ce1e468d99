package internal

type RecordKind string

const (
	KindSale     RecordKind = "venda"
	KindPurchase RecordKind = "compra"
	KindPersonal RecordKind = "pessoal"
)

// Sale is a recorded sale of a catalog product. Product holds the display
// form (each word capitalized); the catalog key form is lowercase.
type Sale struct {
	Date      string  `json:"data"`
	Product   string  `json:"produto"`
	Qty       int     `json:"quantidade"`
	UnitPrice float64 `json:"valorUnitario"`
	Total     float64 `json:"valorTotal"`
	Payment   string  `json:"pagamento"`
	Notes     string  `json:"observacoes"`
}

type PurchaseItem struct {
	Name string `json:"nome"`
	Qty  int    `json:"quantidade"`
}

// Purchase is an acquisition of one or more stock items. ItemsRaw keeps the
// first message segment verbatim for ledger display.
type Purchase struct {
	Date     string         `json:"data"`
	Items    []PurchaseItem `json:"itens"`
	ItemsRaw string         `json:"descricao"`
	Total    float64        `json:"valorTotal"`
	Location string         `json:"local"`
	Payment  string         `json:"pagamento"`
	Notes    string         `json:"observacoes"`
}

type PersonalExpense struct {
	Date        string  `json:"data"`
	Description string  `json:"descricao"`
	Amount      float64 `json:"valor"`
	Category    string  `json:"categoria"`
	Payment     string  `json:"pagamento"`
	Notes       string  `json:"observacoes"`
}

// Record is a tagged union over the three transaction kinds. Exactly one of
// the variant pointers is set, selected by Kind.
type Record struct {
	Kind     RecordKind       `json:"tipo"`
	Sale     *Sale            `json:"venda,omitempty"`
	Purchase *Purchase        `json:"compra,omitempty"`
	Personal *PersonalExpense `json:"pessoal,omitempty"`
}

func (r Record) Date() string {
	switch r.Kind {
	case KindSale:
		return r.Sale.Date
	case KindPurchase:
		return r.Purchase.Date
	case KindPersonal:
		return r.Personal.Date
	}
	return ""
}

func (r Record) Amount() float64 {
	switch r.Kind {
	case KindSale:
		return r.Sale.Total
	case KindPurchase:
		return r.Purchase.Total
	case KindPersonal:
		return r.Personal.Amount
	}
	return 0
}

type Ingredient struct {
	Unit  string  `json:"unidade"`
	Price float64 `json:"preco"`
}

const (
	MessageFetched      = "fetched"
	MessageRecorded     = "recorded"
	MessageFailed       = "failed"
	MessageUnrecognized = "unrecognized"
)

type MessageRow struct {
	ID         int64
	Provider   string
	MessageSID string
	Sender     string
	Body       string
	Kind       string
	Status     string
	CreatedAt  string
}

type RecordRow struct {
	ID          int64
	MessageID   *int64
	Kind        string
	Date        string
	Amount      float64
	Summary     string
	PayloadJSON string
	CreatedAt   string
}
