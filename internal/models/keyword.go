package models

// Category classifies a keyword for the report breakdown.
type Category string

const (
	CategoryTechnical Category = "technical"
	CategorySoftSkill Category = "soft-skill"
	CategoryOther     Category = "other"
)

// MatchType records how a found keyword was satisfied.
type MatchType string

const (
	MatchExact   MatchType = "exact"
	MatchSynonym MatchType = "synonym"
)

// Keyword is a normalized term extracted from the job description, ranked
// by frequency and tagged with its category and known synonyms.
type Keyword struct {
	Term      string   `json:"term"`
	Frequency int      `json:"frequency"`
	Category  Category `json:"category"`
	Synonyms  []string `json:"synonyms,omitempty"`
}

// KeywordMatch maps a keyword to its match outcome against the resume.
// MatchedVariant is the resume token that satisfied the keyword: the term
// itself for exact matches, otherwise the synonym that matched.
type KeywordMatch struct {
	Keyword        Keyword   `json:"keyword"`
	Found          bool      `json:"found"`
	MatchType      MatchType `json:"match_type,omitempty"`
	MatchedVariant string    `json:"matched_variant,omitempty"`
}
