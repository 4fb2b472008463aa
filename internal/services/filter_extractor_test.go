package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

type FilterExtractorTestSuite struct {
	suite.Suite
	extractor *FilterExtractor
	now       time.Time
}

func TestFilterExtractorSuite(t *testing.T) {
	suite.Run(t, new(FilterExtractorTestSuite))
}

func (s *FilterExtractorTestSuite) SetupTest() {
	s.extractor = NewFilterExtractor()
	// A Tuesday
	s.now = time.Date(2024, time.March, 5, 14, 30, 0, 0, time.UTC)
}

func (s *FilterExtractorTestSuite) TestToday() {
	dr := s.extractor.ExtractDateRange("how much did I spend today", s.now)
	s.Require().NotNil(dr)
	s.Equal("2024-03-05", dr.StartString())
	s.Equal("2024-03-05", dr.EndString())
	s.Equal("today", dr.Description)
}

func (s *FilterExtractorTestSuite) TestYesterday() {
	dr := s.extractor.ExtractDateRange("transactions from yesterday", s.now)
	s.Require().NotNil(dr)
	s.Equal("2024-03-04", dr.StartString())
	s.Equal("2024-03-04", dr.EndString())
	s.Equal("yesterday", dr.Description)
}

func (s *FilterExtractorTestSuite) TestThisWeekStartsOnMonday() {
	dr := s.extractor.ExtractDateRange("spending this week", s.now)
	s.Require().NotNil(dr)
	s.Equal("2024-03-04", dr.StartString())
	s.Equal("2024-03-05", dr.EndString())
	s.Equal("this week", dr.Description)
}

func (s *FilterExtractorTestSuite) TestThisWeekOnSunday() {
	// Sunday belongs to the week that began six days earlier
	sunday := time.Date(2024, time.March, 10, 9, 0, 0, 0, time.UTC)
	dr := s.extractor.ExtractDateRange("spending this week", sunday)
	s.Require().NotNil(dr)
	s.Equal("2024-03-04", dr.StartString())
	s.Equal("2024-03-10", dr.EndString())
}

func (s *FilterExtractorTestSuite) TestThisMonth() {
	dr := s.extractor.ExtractDateRange("how much did I spend this month", s.now)
	s.Require().NotNil(dr)
	s.Equal("2024-03-01", dr.StartString())
	s.Equal("2024-03-05", dr.EndString())
	s.Equal("this month", dr.Description)
}

func (s *FilterExtractorTestSuite) TestLastMonthFebruaryAlwaysEndsOn28() {
	// 2024 is a leap year but February still cuts off at the 28th
	dr := s.extractor.ExtractDateRange("spending last month", s.now)
	s.Require().NotNil(dr)
	s.Equal("2024-02-01", dr.StartString())
	s.Equal("2024-02-28", dr.EndString())
	s.Equal("last month", dr.Description)
}

func (s *FilterExtractorTestSuite) TestLastMonthJanuaryRollsOverYear() {
	january := time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)
	dr := s.extractor.ExtractDateRange("spending last month", january)
	s.Require().NotNil(dr)
	s.Equal("2023-12-01", dr.StartString())
	s.Equal("2023-12-31", dr.EndString())
}

func (s *FilterExtractorTestSuite) TestLastMonthThirtyDayMonths() {
	tests := []struct {
		now     time.Time
		wantEnd string
	}{
		{time.Date(2024, time.May, 10, 0, 0, 0, 0, time.UTC), "2024-04-30"},
		{time.Date(2024, time.July, 10, 0, 0, 0, 0, time.UTC), "2024-06-30"},
		{time.Date(2024, time.October, 10, 0, 0, 0, 0, time.UTC), "2024-09-30"},
		{time.Date(2024, time.December, 10, 0, 0, 0, 0, time.UTC), "2024-11-30"},
		{time.Date(2024, time.August, 10, 0, 0, 0, 0, time.UTC), "2024-07-31"},
	}

	for _, tt := range tests {
		dr := s.extractor.ExtractDateRange("last month", tt.now)
		s.Require().NotNil(dr)
		s.Equal(tt.wantEnd, dr.EndString(), "now: %s", tt.now)
	}
}

func (s *FilterExtractorTestSuite) TestPhraseOrderFirstMatchWins() {
	// "today" is checked before "this week"
	dr := s.extractor.ExtractDateRange("today and this week", s.now)
	s.Require().NotNil(dr)
	s.Equal("today", dr.Description)
}

func (s *FilterExtractorTestSuite) TestNoDatePhrase() {
	s.Nil(s.extractor.ExtractDateRange("show my transactions", s.now))
}

func (s *FilterExtractorTestSuite) TestCategoryVocabulary() {
	tests := []struct {
		utterance string
		expected  string
	}{
		{"how much did I spend on travel", "travel"},
		{"food spending this month", "food"},
		{"office supplies", "office"},
		{"entertainment budget", "entertainment"},
		{"my utilities bill", "utilities"},
		{"show my transactions", ""},
	}

	for _, tt := range tests {
		s.Equal(tt.expected, s.extractor.ExtractCategory(tt.utterance), "utterance: %q", tt.utterance)
	}
}

func (s *FilterExtractorTestSuite) TestCategoryFirstMentionWins() {
	s.Equal("food", s.extractor.ExtractCategory("food and travel"))
	s.Equal("travel", s.extractor.ExtractCategory("travel and food"))
}

func (s *FilterExtractorTestSuite) TestCategoryCaseInsensitive() {
	s.Equal("food", s.extractor.ExtractCategory("how much on FOOD"))
}

func (s *FilterExtractorTestSuite) TestExtractFilters() {
	filters := s.extractor.ExtractFilters("how much did i spend this month on food", s.now)
	s.Require().NotNil(filters.DateRange)
	s.Equal("this month", filters.DateRange.Description)
	s.Equal("food", filters.Category)
	s.False(filters.IsZero())

	s.True(s.extractor.ExtractFilters("show my transactions", s.now).IsZero())
}
