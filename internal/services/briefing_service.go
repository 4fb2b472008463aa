package services

import (
	"context"
	"strings"

	"finvoice/internal/news"
)

// briefingStoryCount caps the briefing at roughly thirty seconds of speech
const briefingStoryCount = 3

// NoArticlesMessage is spoken when the news source returns nothing
const NoArticlesMessage = "I couldn't find any recent tech news articles at the moment."

// priorityKeywords pulls AI and tech market stories to the front of the
// briefing when the source mixes in general business news
var priorityKeywords = []string{"ai", "artificial intelligence", "tech", "technology"}

// BriefingService turns raw news articles into a short spoken briefing
type BriefingService struct {
	fetcher NewsFetcherInterface
	metrics MetricsRecorderInterface
}

func NewBriefingService(fetcher NewsFetcherInterface, metrics MetricsRecorderInterface) *BriefingService {
	return &BriefingService{fetcher: fetcher, metrics: metrics}
}

// DailyBriefing fetches today's tech news and composes the spoken briefing.
// It returns the briefing text plus the headlines it was built from.
func (s *BriefingService) DailyBriefing(ctx context.Context) (string, []string, error) {
	articles, err := s.fetcher.FetchTechNews(ctx)
	if err != nil {
		s.recordBriefing("failed")
		return "", nil, err
	}
	s.recordBriefing("success")

	if len(articles) == 0 {
		return NoArticlesMessage, nil, nil
	}

	headlines := topHeadlines(articles)

	var b strings.Builder
	b.WriteString("Here's your tech news briefing for today:\n\n")
	for _, headline := range headlines {
		b.WriteString("• " + headline + "\n")
	}
	return b.String(), headlines, nil
}

// topHeadlines prioritizes AI and tech stories, falls back to everything
// when none match, and trims the trailing source name news wires append
// after " - "
func topHeadlines(articles []news.Article) []string {
	prioritized := make([]news.Article, 0, len(articles))
	for _, article := range articles {
		title := strings.ToLower(article.Title)
		for _, keyword := range priorityKeywords {
			if strings.Contains(title, keyword) {
				prioritized = append(prioritized, article)
				break
			}
		}
	}
	if len(prioritized) == 0 {
		prioritized = articles
	}
	if len(prioritized) > briefingStoryCount {
		prioritized = prioritized[:briefingStoryCount]
	}

	headlines := make([]string, 0, len(prioritized))
	for _, article := range prioritized {
		title, _, _ := strings.Cut(article.Title, " - ")
		headlines = append(headlines, title)
	}
	return headlines
}

func (s *BriefingService) recordBriefing(status string) {
	if s.metrics == nil {
		return
	}
	s.metrics.IncrementCounter("briefing.assembled", map[string]string{"status": status})
}
