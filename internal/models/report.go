package models

// CategoryBreakdown counts found and missing keywords within one category.
type CategoryBreakdown struct {
	Category Category `json:"category"`
	Found    int      `json:"found"`
	Missing  int      `json:"missing"`
}

// Report is the full comparison result for one resume / job description
// pair. It is deterministic: identical inputs always produce an identical
// Report. Found and Missing preserve the extraction rank of the keywords.
type Report struct {
	MatchPercentage int                 `json:"match_percentage"`
	TotalKeywords   int                 `json:"total_keywords"`
	ExactMatches    int                 `json:"exact_matches"`
	SynonymMatches  int                 `json:"synonym_matches"`
	Found           []KeywordMatch      `json:"found_keywords"`
	Missing         []Keyword           `json:"missing_keywords"`
	Categories      []CategoryBreakdown `json:"category_breakdown"`
	Suggestions     []string            `json:"suggestions"`
	Assessment      string              `json:"assessment"`
}
