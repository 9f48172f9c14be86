package models

import "errors"

var (
	// ErrEmptyDocument is returned when a document is blank or has no
	// tokens left after stop-word removal.
	ErrEmptyDocument = errors.New("document is empty or contains no usable text")

	// ErrInsufficientKeywords is returned when the job description has too
	// few distinct terms to analyze meaningfully.
	ErrInsufficientKeywords = errors.New("job description is too short to extract meaningful keywords")
)
