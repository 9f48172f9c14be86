package services

import (
	"fmt"
	"sort"

	"alfredoptarigan/resume-matcher/internal/models"
)

type ExtractorService interface {
	Extract(doc *models.Document) ([]models.Keyword, error)
}

type extractorService struct {
	topN        int
	minDistinct int
}

// NewExtractorService returns an extractor that keeps the topN most
// frequent terms and rejects documents with fewer than minDistinct
// distinct terms.
func NewExtractorService(topN, minDistinct int) ExtractorService {
	return &extractorService{
		topN:        topN,
		minDistinct: minDistinct,
	}
}

// Extract ranks the document's terms by descending frequency, ties broken
// by first occurrence, and truncates the ranking to the configured top N.
func (e *extractorService) Extract(doc *models.Document) ([]models.Keyword, error) {
	counts := make(map[string]int)
	var order []string

	for _, token := range doc.Tokens {
		if counts[token] == 0 {
			order = append(order, token)
		}
		counts[token]++
	}

	if len(order) < e.minDistinct {
		return nil, fmt.Errorf(
			"extract keywords: %d distinct terms, need at least %d: %w",
			len(order), e.minDistinct, models.ErrInsufficientKeywords,
		)
	}

	keywords := make([]models.Keyword, 0, len(order))
	for _, term := range order {
		keywords = append(keywords, models.Keyword{
			Term:      term,
			Frequency: counts[term],
		})
	}

	// The slice is built in first-occurrence order, so a stable sort
	// preserves that order among equal frequencies.
	sort.SliceStable(keywords, func(i, j int) bool {
		return keywords[i].Frequency > keywords[j].Frequency
	})

	if len(keywords) > e.topN {
		keywords = keywords[:e.topN]
	}

	return keywords, nil
}
