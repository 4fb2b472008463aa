package services

import (
	"strings"
	"time"

	"finvoice/internal/models"
)

// categoryVocabulary is the fixed set of categories spoken filters can name
var categoryVocabulary = []string{"travel", "food", "office", "entertainment", "utilities"}

// FilterExtractor derives date ranges and categories from an utterance. It
// is pure given now; the clock is always passed in explicitly.
type FilterExtractor struct{}

func NewFilterExtractor() *FilterExtractor {
	return &FilterExtractor{}
}

// ExtractFilters combines date range and category extraction into the
// filter set a gateway query takes
func (e *FilterExtractor) ExtractFilters(utterance string, now time.Time) models.TransactionFilters {
	return models.TransactionFilters{
		DateRange: e.ExtractDateRange(utterance, now),
		Category:  e.ExtractCategory(utterance),
	}
}

// ExtractDateRange recognizes the spoken time phrases "today", "yesterday",
// "this week", "this month" and "last month", checked in that order with
// first match winning. Returns nil when no phrase is present.
func (e *FilterExtractor) ExtractDateRange(utterance string, now time.Time) *models.DateRange {
	normalized := strings.ToLower(utterance)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	switch {
	case strings.Contains(normalized, "today"):
		return &models.DateRange{StartDate: today, EndDate: today, Description: "today"}

	case strings.Contains(normalized, "yesterday"):
		yesterday := today.AddDate(0, 0, -1)
		return &models.DateRange{StartDate: yesterday, EndDate: yesterday, Description: "yesterday"}

	case strings.Contains(normalized, "this week"):
		// Weeks start on Monday
		daysSinceMonday := (int(today.Weekday()) + 6) % 7
		return &models.DateRange{
			StartDate:   today.AddDate(0, 0, -daysSinceMonday),
			EndDate:     today,
			Description: "this week",
		}

	case strings.Contains(normalized, "this month"):
		return &models.DateRange{
			StartDate:   time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location()),
			EndDate:     today,
			Description: "this month",
		}

	case strings.Contains(normalized, "last month"):
		return lastMonthRange(today)
	}

	return nil
}

// lastMonthRange computes the previous calendar month with fixed month
// lengths. February is always treated as 28 days, leap years included; the
// answers this feeds are spoken approximations, and callers rely on the
// stable cutoff.
func lastMonthRange(today time.Time) *models.DateRange {
	year, month := today.Year(), today.Month()
	if month == time.January {
		year, month = year-1, time.December
	} else {
		month--
	}

	var lastDay int
	switch today.Month() {
	case time.March:
		lastDay = 28
	case time.May, time.July, time.October, time.December:
		lastDay = 30
	default:
		lastDay = 31
	}

	return &models.DateRange{
		StartDate:   time.Date(year, month, 1, 0, 0, 0, 0, today.Location()),
		EndDate:     time.Date(year, month, lastDay, 0, 0, 0, 0, today.Location()),
		Description: "last month",
	}
}

// ExtractCategory returns the vocabulary word the utterance mentions first,
// or the empty string when none is present. When two categories share a
// position the vocabulary order breaks the tie.
func (e *FilterExtractor) ExtractCategory(utterance string) string {
	normalized := strings.ToLower(utterance)

	best := ""
	bestIndex := -1
	for _, category := range categoryVocabulary {
		index := strings.Index(normalized, category)
		if index < 0 {
			continue
		}
		if bestIndex < 0 || index < bestIndex {
			best, bestIndex = category, index
		}
	}
	return best
}
