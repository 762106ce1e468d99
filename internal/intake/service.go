// Package intake runs one inbound message through the pipeline: journal,
// classify, persist to the ledger, reply to the sender.
package intake

import (
	"context"
	"log"
	"strings"

	"docinho/internal"
	"docinho/internal/catalog"
	"docinho/internal/parser"
	"docinho/internal/storage"
)

type Ledger interface {
	AppendSale(ctx context.Context, sale internal.Sale) error
	AppendPurchase(ctx context.Context, purchase internal.Purchase) error
	AppendPersonal(ctx context.Context, expense internal.PersonalExpense) error
}

type Notifier interface {
	Send(ctx context.Context, to, body string) error
}

type InboundMessage struct {
	Provider   string
	MessageSID string
	From       string
	Body       string
}

// Outcome types reported back to the webhook caller.
const (
	OutcomeDuplicate     = "duplicate"
	OutcomeInvalidFormat = "invalid_format"
)

type Outcome struct {
	Type  string
	Reply string
}

type Service struct {
	parser   *parser.Parser
	ledger   Ledger
	notifier Notifier
	journal  *storage.DB
}

func NewService(store *catalog.Store, ledger Ledger, notifier Notifier, journal *storage.DB) *Service {
	return &Service{
		parser:   parser.New(store),
		ledger:   ledger,
		notifier: notifier,
		journal:  journal,
	}
}

// Handle processes one inbound message end to end. The returned error covers
// only journal failures; classification misses and ledger write failures are
// reported to the sender, not the transport.
func (s *Service) Handle(ctx context.Context, msg InboundMessage) (Outcome, error) {
	sender := strings.TrimPrefix(msg.From, "whatsapp:")

	row, seen, err := s.journal.InsertMessage(msg.Provider, msg.MessageSID, sender, msg.Body)
	if err != nil {
		return Outcome{}, err
	}
	if seen {
		// Provider redelivery. The first attempt already answered.
		return Outcome{Type: OutcomeDuplicate}, nil
	}

	record, ok := s.parser.Dispatch(msg.Body)
	if !ok {
		_ = s.journal.UpdateMessageOutcome(row.ID, "", internal.MessageUnrecognized)
		s.reply(ctx, sender, usageHelp)
		return Outcome{Type: OutcomeInvalidFormat, Reply: usageHelp}, nil
	}

	if err := s.persist(ctx, record); err != nil {
		log.Printf("ledger write failed kind=%s: %v", record.Kind, err)
		_ = s.journal.UpdateMessageOutcome(row.ID, string(record.Kind), internal.MessageFailed)
		text := failureReply(record.Kind)
		s.reply(ctx, sender, text)
		return Outcome{Type: string(record.Kind), Reply: text}, nil
	}

	_ = s.journal.UpdateMessageOutcome(row.ID, string(record.Kind), internal.MessageRecorded)
	if _, err := s.journal.InsertRecord(row.ID, record, recordSummary(record)); err != nil {
		log.Printf("journal record insert failed: %v", err)
	}

	text := confirmation(record)
	s.reply(ctx, sender, text)
	return Outcome{Type: string(record.Kind), Reply: text}, nil
}

func (s *Service) persist(ctx context.Context, record internal.Record) error {
	switch record.Kind {
	case internal.KindSale:
		return s.ledger.AppendSale(ctx, *record.Sale)
	case internal.KindPurchase:
		return s.ledger.AppendPurchase(ctx, *record.Purchase)
	default:
		return s.ledger.AppendPersonal(ctx, *record.Personal)
	}
}

func confirmation(record internal.Record) string {
	switch record.Kind {
	case internal.KindSale:
		return saleConfirmation(*record.Sale)
	case internal.KindPurchase:
		return purchaseConfirmation(*record.Purchase)
	default:
		return personalConfirmation(*record.Personal)
	}
}

// reply is fire-and-forget: delivery failures are logged, never retried here.
func (s *Service) reply(ctx context.Context, to, body string) {
	if err := s.notifier.Send(ctx, to, body); err != nil {
		log.Printf("notify failed to=%s: %v", to, err)
	}
}
