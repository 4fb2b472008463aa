package services

import (
	"context"
	"time"

	"finvoice/internal/models"
	"finvoice/internal/news"
)

// IntentClassifierInterface maps a transcribed utterance to an Intent
type IntentClassifierInterface interface {
	Classify(utterance string) models.Intent
}

// FilterExtractorInterface derives transaction filters from an utterance
type FilterExtractorInterface interface {
	ExtractDateRange(utterance string, now time.Time) *models.DateRange
	ExtractCategory(utterance string) string
	ExtractFilters(utterance string, now time.Time) models.TransactionFilters
}

// ResponseGeneratorInterface builds the spoken reply text
type ResponseGeneratorInterface interface {
	FormatCents(cents int64) string
	TransactionSummary(transactions []models.Transaction, timePeriod, category string) string
	TransactionList(transactions []models.Transaction, limit int) string
	VirtualCardList(cards []models.VirtualCard) string
	ExpenseCategoryList(categories []models.ExpenseCategory) string
	WelcomeMessage() string
	HelpMessage() string
	ErrorMessage(err error) string
}

// CommandProcessorInterface is the single entry point for voice commands
type CommandProcessorInterface interface {
	ProcessCommand(ctx context.Context, utterance string) (string, error)
}

// NewsFetcherInterface fetches stories for the morning briefing
type NewsFetcherInterface interface {
	FetchTechNews(ctx context.Context) ([]news.Article, error)
}

// BriefingServiceInterface assembles the spoken news briefing
type BriefingServiceInterface interface {
	DailyBriefing(ctx context.Context) (string, []string, error)
}

// MetricsRecorderInterface defines the contract for recording metrics
type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}
