package services

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"alfredoptarigan/resume-matcher/internal/models"
)

//go:embed skills.yaml
var skillsYAML []byte

type SynonymResolver interface {
	Resolve(term string) (models.Category, []string)
	Annotate(keywords []models.Keyword) []models.Keyword
}

type synonymResolver struct {
	entries map[string]skillEntry
}

type skillEntry struct {
	category models.Category
	synonyms []string
}

type skillsFile struct {
	Skills []struct {
		Term     string   `yaml:"term"`
		Category string   `yaml:"category"`
		Synonyms []string `yaml:"synonyms"`
	} `yaml:"skills"`
}

// NewSynonymResolver parses the embedded skills table. The table is
// read-only after this point and safe to share across requests.
func NewSynonymResolver() (SynonymResolver, error) {
	var file skillsFile
	if err := yaml.Unmarshal(skillsYAML, &file); err != nil {
		return nil, fmt.Errorf("failed to parse skills table: %w", err)
	}

	entries := make(map[string]skillEntry, len(file.Skills))
	for _, skill := range file.Skills {
		category := models.Category(skill.Category)
		switch category {
		case models.CategoryTechnical, models.CategorySoftSkill, models.CategoryOther:
		default:
			return nil, fmt.Errorf("skills table: term %q has unknown category %q", skill.Term, skill.Category)
		}
		entries[skill.Term] = skillEntry{
			category: category,
			synonyms: skill.Synonyms,
		}
	}

	return &synonymResolver{entries: entries}, nil
}

// Resolve returns the term's category and known synonyms. Terms absent
// from the table default to category "other" with no synonyms.
func (r *synonymResolver) Resolve(term string) (models.Category, []string) {
	if entry, ok := r.entries[term]; ok {
		return entry.category, entry.synonyms
	}
	return models.CategoryOther, nil
}

// Annotate fills in category and synonyms for each keyword, preserving
// rank order.
func (r *synonymResolver) Annotate(keywords []models.Keyword) []models.Keyword {
	annotated := make([]models.Keyword, len(keywords))
	for i, kw := range keywords {
		kw.Category, kw.Synonyms = r.Resolve(kw.Term)
		annotated[i] = kw
	}
	return annotated
}
