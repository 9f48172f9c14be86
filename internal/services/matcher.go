package services

import (
	"alfredoptarigan/resume-matcher/internal/models"
)

type MatcherService interface {
	Match(resume *models.Document, keywords []models.Keyword) []models.KeywordMatch
}

type matcherService struct{}

func NewMatcherService() MatcherService {
	return &matcherService{}
}

// Match marks each keyword found when the term itself or any of its
// synonyms appears as a token of the resume. Matching is exact string
// equality on normalized tokens; there is no partial or fuzzy matching.
func (m *matcherService) Match(resume *models.Document, keywords []models.Keyword) []models.KeywordMatch {
	tokens := resume.TokenSet()

	matches := make([]models.KeywordMatch, 0, len(keywords))
	for _, kw := range keywords {
		match := models.KeywordMatch{Keyword: kw}

		if _, ok := tokens[kw.Term]; ok {
			match.Found = true
			match.MatchType = models.MatchExact
			match.MatchedVariant = kw.Term
		} else {
			for _, synonym := range kw.Synonyms {
				if _, ok := tokens[synonym]; ok {
					match.Found = true
					match.MatchType = models.MatchSynonym
					match.MatchedVariant = synonym
					break
				}
			}
		}

		matches = append(matches, match)
	}

	return matches
}
