package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alfredoptarigan/resume-matcher/internal/models"
)

func TestNormalizeLowercasesAndStripsPunctuation(t *testing.T) {
	n := NewNormalizerService()

	doc, err := n.Normalize("Senior Python Developer! (Remote, full-time)")
	require.NoError(t, err)

	assert.Equal(t, []string{"senior", "python", "developer", "remote", "full", "time"}, doc.Tokens)
}

func TestNormalizeRemovesStopWords(t *testing.T) {
	n := NewNormalizerService()

	doc, err := n.Normalize("the candidate should have experience with python and sql")
	require.NoError(t, err)

	assert.Equal(t, []string{"candidate", "experience", "python", "sql"}, doc.Tokens)
}

func TestNormalizeDropsShortAndNumericTokens(t *testing.T) {
	n := NewNormalizerService()

	doc, err := n.Normalize("go c 42 b2b java python3")
	require.NoError(t, err)

	// Two-letter words, bare numbers and digit-bearing runs are excluded.
	assert.Equal(t, []string{"java"}, doc.Tokens)
}

func TestNormalizePreservesTokenOrderAndDuplicates(t *testing.T) {
	n := NewNormalizerService()

	doc, err := n.Normalize("Python SQL Python Java SQL SQL")
	require.NoError(t, err)

	assert.Equal(t, []string{"python", "sql", "python", "java", "sql", "sql"}, doc.Tokens)
}

func TestNormalizeBlankDocument(t *testing.T) {
	n := NewNormalizerService()

	for _, input := range []string{"", "   ", "\n\t "} {
		_, err := n.Normalize(input)
		assert.ErrorIs(t, err, models.ErrEmptyDocument, "input %q", input)
	}
}

func TestNormalizeOnlyStopWords(t *testing.T) {
	n := NewNormalizerService()

	_, err := n.Normalize("the and for with about")
	assert.ErrorIs(t, err, models.ErrEmptyDocument)
}
