package services

import (
	"fmt"
	"math"

	"alfredoptarigan/resume-matcher/internal/models"
)

type ScorerService interface {
	BuildReport(matches []models.KeywordMatch) *models.Report
}

type scorerService struct{}

func NewScorerService() ScorerService {
	return &scorerService{}
}

var categoryOrder = []models.Category{
	models.CategoryTechnical,
	models.CategorySoftSkill,
	models.CategoryOther,
}

// BuildReport aggregates match results into the final report: rounded
// match percentage, found/missing lists in extraction rank order, category
// breakdown and improvement suggestions.
func (s *scorerService) BuildReport(matches []models.KeywordMatch) *models.Report {
	report := &models.Report{
		TotalKeywords: len(matches),
		Found:         []models.KeywordMatch{},
		Missing:       []models.Keyword{},
	}

	for _, match := range matches {
		if match.Found {
			report.Found = append(report.Found, match)
			if match.MatchType == models.MatchExact {
				report.ExactMatches++
			} else {
				report.SynonymMatches++
			}
		} else {
			report.Missing = append(report.Missing, match.Keyword)
		}
	}

	if report.TotalKeywords > 0 {
		ratio := float64(len(report.Found)) / float64(report.TotalKeywords)
		report.MatchPercentage = int(math.Round(ratio * 100))
	}

	report.Categories = buildCategoryBreakdown(matches)
	report.Suggestions = buildSuggestions(report.Missing)
	report.Assessment = assess(report.MatchPercentage)

	return report
}

func buildCategoryBreakdown(matches []models.KeywordMatch) []models.CategoryBreakdown {
	found := make(map[models.Category]int)
	missing := make(map[models.Category]int)

	for _, match := range matches {
		if match.Found {
			found[match.Keyword.Category]++
		} else {
			missing[match.Keyword.Category]++
		}
	}

	breakdown := make([]models.CategoryBreakdown, 0, len(categoryOrder))
	for _, category := range categoryOrder {
		breakdown = append(breakdown, models.CategoryBreakdown{
			Category: category,
			Found:    found[category],
			Missing:  missing[category],
		})
	}

	return breakdown
}

func buildSuggestions(missing []models.Keyword) []string {
	suggestions := make([]string, 0, len(missing)+1)

	for _, kw := range missing {
		suggestions = append(suggestions, fmt.Sprintf(
			"Consider adding %q to your resume; the job description mentions it %d time(s).",
			kw.Term, kw.Frequency,
		))
	}

	switch {
	case len(missing) > 10:
		suggestions = append(suggestions, "Major revision needed: restructure your resume to better match the job requirements.")
	case len(missing) > 5:
		suggestions = append(suggestions, "Moderate improvements: focus on adding the top missing keywords to your resume.")
	default:
		suggestions = append(suggestions, "Good match: minor tweaks suggested for optimal alignment.")
	}

	return suggestions
}

func assess(percentage int) string {
	switch {
	case percentage >= 80:
		return "Excellent match"
	case percentage >= 60:
		return "Good match"
	case percentage >= 40:
		return "Needs improvement"
	default:
		return "Major improvements needed"
	}
}
