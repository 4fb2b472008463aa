package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"finvoice/internal/gateway"
	"finvoice/internal/models"
)

// ErrEmptyUtterance is returned when a command arrives with no words in it
var ErrEmptyUtterance = errors.New("utterance is empty")

// CommandProcessor is the single entry point for voice commands. One
// utterance produces one reply; each handler issues at most one gateway
// call and awaits it before building text.
type CommandProcessor struct {
	gateway    gateway.GatewayInterface
	classifier IntentClassifierInterface
	extractor  FilterExtractorInterface
	responses  ResponseGeneratorInterface
	metrics    MetricsRecorderInterface
	now        func() time.Time
}

func NewCommandProcessor(
	gw gateway.GatewayInterface,
	classifier IntentClassifierInterface,
	extractor FilterExtractorInterface,
	responses ResponseGeneratorInterface,
	metrics MetricsRecorderInterface,
) *CommandProcessor {
	return &CommandProcessor{
		gateway:    gw,
		classifier: classifier,
		extractor:  extractor,
		responses:  responses,
		metrics:    metrics,
		now:        time.Now,
	}
}

// ProcessCommand interprets one transcribed utterance and returns the
// spoken reply. Empty results are not errors; a gateway failure propagates
// to the caller unchanged so the transport layer can decide how to apologize.
func (p *CommandProcessor) ProcessCommand(ctx context.Context, utterance string) (string, error) {
	normalized := strings.ToLower(strings.TrimSpace(utterance))
	if normalized == "" {
		return "", ErrEmptyUtterance
	}

	intent := p.classifier.Classify(normalized)

	start := p.now()
	reply, err := p.dispatch(ctx, intent, normalized)
	p.recordCommand(intent, err, p.now().Sub(start))
	if err != nil {
		return "", err
	}
	return reply, nil
}

func (p *CommandProcessor) dispatch(ctx context.Context, intent models.Intent, utterance string) (string, error) {
	switch intent {
	case models.IntentVirtualCard:
		return p.handleVirtualCards(ctx, utterance)
	case models.IntentTransaction:
		return p.handleTransactions(ctx, utterance)
	case models.IntentExpenseCategory:
		return p.handleExpenseCategories(ctx, utterance)
	case models.IntentReceipt:
		return ReceiptMessage, nil
	default:
		return UnknownCommandMessage, nil
	}
}

func (p *CommandProcessor) handleVirtualCards(ctx context.Context, utterance string) (string, error) {
	cards, err := p.gateway.ListVirtualCards(ctx)
	if err != nil {
		return "", err
	}
	if len(cards) == 0 {
		return NoVirtualCardsMessage, nil
	}

	if wantsEnumeration(utterance) {
		return p.responses.VirtualCardList(cards), nil
	}
	return VirtualCardHintMessage, nil
}

func (p *CommandProcessor) handleTransactions(ctx context.Context, utterance string) (string, error) {
	filters := p.extractor.ExtractFilters(utterance, p.now())

	transactions, err := p.gateway.ListTransactions(ctx, filters)
	if err != nil {
		return "", err
	}
	if len(transactions) == 0 {
		return NoTransactionsMessage, nil
	}

	switch {
	case strings.Contains(utterance, "how much"):
		timePeriod := ""
		if filters.DateRange != nil {
			timePeriod = filters.DateRange.Description
		}
		return p.responses.TransactionSummary(transactions, timePeriod, filters.Category), nil

	case wantsEnumeration(utterance):
		return p.responses.TransactionList(transactions, DefaultTransactionLimit), nil
	}
	return TransactionHintMessage, nil
}

func (p *CommandProcessor) handleExpenseCategories(ctx context.Context, utterance string) (string, error) {
	categories, err := p.gateway.ListExpenseCategories(ctx)
	if err != nil {
		return "", err
	}
	if len(categories) == 0 {
		return NoExpenseCategoriesMessage, nil
	}

	if wantsEnumeration(utterance) {
		return p.responses.ExpenseCategoryList(categories), nil
	}
	return ExpenseCategoryHintMessage, nil
}

// wantsEnumeration reports whether the utterance asks to read items out
func wantsEnumeration(utterance string) bool {
	return strings.Contains(utterance, "list") ||
		strings.Contains(utterance, "show") ||
		strings.Contains(utterance, "what")
}

func (p *CommandProcessor) recordCommand(intent models.Intent, err error, duration time.Duration) {
	if p.metrics == nil {
		return
	}
	status := "success"
	if err != nil {
		status = "failed"
	}
	p.metrics.IncrementCounter("command.processed", map[string]string{
		"intent": intent.String(),
		"status": status,
	})
	p.metrics.RecordProcessingTime("command.processing", duration)
}
