package services

import (
	"fmt"
	"regexp"
	"strings"

	"alfredoptarigan/resume-matcher/internal/models"
)

type NormalizerService interface {
	Normalize(text string) (*models.Document, error)
}

type normalizerService struct{}

func NewNormalizerService() NormalizerService {
	return &normalizerService{}
}

// wordPattern matches alphabetic runs of three or more letters. Shorter
// fragments and digit-bearing runs carry too little signal for matching.
var wordPattern = regexp.MustCompile(`\b[a-z]{3,}\b`)

// stopWords are common terms excluded from keyword consideration.
var stopWords = map[string]struct{}{
	"the": {}, "and": {}, "for": {}, "are": {}, "but": {}, "not": {},
	"you": {}, "all": {}, "can": {}, "your": {}, "has": {}, "had": {},
	"her": {}, "his": {}, "how": {}, "out": {}, "see": {}, "now": {},
	"one": {}, "may": {}, "get": {}, "its": {}, "who": {}, "than": {},
	"been": {}, "any": {}, "our": {}, "from": {}, "with": {}, "this": {},
	"that": {}, "have": {}, "will": {}, "would": {}, "should": {},
	"could": {}, "what": {}, "when": {}, "where": {}, "which": {},
	"there": {}, "their": {}, "they": {}, "them": {}, "these": {},
	"those": {}, "then": {}, "such": {}, "some": {}, "also": {},
	"more": {}, "most": {}, "just": {}, "like": {}, "only": {},
	"other": {}, "about": {}, "into": {}, "over": {}, "under": {},
	"after": {}, "before": {}, "between": {}, "through": {},
	"during": {}, "without": {}, "being": {}, "both": {}, "each": {},
	"while": {}, "until": {}, "upon": {}, "within": {}, "using": {},
	"based": {}, "including": {}, "according": {}, "following": {},
	"various": {}, "provide": {}, "provided": {},
}

// Normalize lowercases the text, strips punctuation, splits it into word
// tokens and removes stop words. The resulting token order follows the
// source text.
func (n *normalizerService) Normalize(text string) (*models.Document, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("normalize document: %w", models.ErrEmptyDocument)
	}

	words := wordPattern.FindAllString(strings.ToLower(text), -1)

	tokens := make([]string, 0, len(words))
	for _, word := range words {
		if _, skip := stopWords[word]; skip {
			continue
		}
		tokens = append(tokens, word)
	}

	if len(tokens) == 0 {
		return nil, fmt.Errorf("normalize document: %w", models.ErrEmptyDocument)
	}

	return &models.Document{
		RawText: text,
		Tokens:  tokens,
	}, nil
}
