package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alfredoptarigan/resume-matcher/internal/models"
)

func TestSynonymResolverLoadsEmbeddedTable(t *testing.T) {
	_, err := NewSynonymResolver()
	require.NoError(t, err)
}

func TestResolveKnownTechnicalTerm(t *testing.T) {
	r, err := NewSynonymResolver()
	require.NoError(t, err)

	category, synonyms := r.Resolve("sql")
	assert.Equal(t, models.CategoryTechnical, category)
	assert.Contains(t, synonyms, "mysql")
	assert.Contains(t, synonyms, "postgresql")
}

func TestResolveKnownSoftSkill(t *testing.T) {
	r, err := NewSynonymResolver()
	require.NoError(t, err)

	category, synonyms := r.Resolve("teamwork")
	assert.Equal(t, models.CategorySoftSkill, category)
	assert.Contains(t, synonyms, "collaboration")
}

func TestResolveUnknownTermDefaultsToOther(t *testing.T) {
	r, err := NewSynonymResolver()
	require.NoError(t, err)

	category, synonyms := r.Resolve("underwater")
	assert.Equal(t, models.CategoryOther, category)
	assert.Empty(t, synonyms)
}

func TestAnnotatePreservesRankOrder(t *testing.T) {
	r, err := NewSynonymResolver()
	require.NoError(t, err)

	keywords := []models.Keyword{
		{Term: "sql", Frequency: 3},
		{Term: "python", Frequency: 2},
		{Term: "underwater", Frequency: 1},
	}

	annotated := r.Annotate(keywords)
	require.Len(t, annotated, 3)

	assert.Equal(t, "sql", annotated[0].Term)
	assert.Equal(t, models.CategoryTechnical, annotated[0].Category)
	assert.Equal(t, 3, annotated[0].Frequency)

	assert.Equal(t, "python", annotated[1].Term)
	assert.Equal(t, models.CategoryTechnical, annotated[1].Category)

	assert.Equal(t, "underwater", annotated[2].Term)
	assert.Equal(t, models.CategoryOther, annotated[2].Category)
	assert.Empty(t, annotated[2].Synonyms)
}
