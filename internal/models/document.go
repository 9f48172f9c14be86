package models

// Document holds a source text together with its normalized token sequence.
// Tokens are ordered, lowercased, punctuation-free and stop-word filtered.
// A Document is never mutated after normalization.
type Document struct {
	RawText string
	Tokens  []string
}

// TokenSet returns the document's tokens as a set for membership checks.
func (d *Document) TokenSet() map[string]struct{} {
	set := make(map[string]struct{}, len(d.Tokens))
	for _, t := range d.Tokens {
		set[t] = struct{}{}
	}
	return set
}
