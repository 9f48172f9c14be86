package services

import (
	"fmt"
	"log"

	"alfredoptarigan/resume-matcher/internal/models"
)

type AnalyzerService interface {
	Analyze(resumeText, jobText string) (*models.Report, error)
}

type analyzerService struct {
	normalizer NormalizerService
	extractor  ExtractorService
	resolver   SynonymResolver
	matcher    MatcherService
	scorer     ScorerService
}

func NewAnalyzerService(
	normalizer NormalizerService,
	extractor ExtractorService,
	resolver SynonymResolver,
	matcher MatcherService,
	scorer ScorerService,
) AnalyzerService {
	return &analyzerService{
		normalizer: normalizer,
		extractor:  extractor,
		resolver:   resolver,
		matcher:    matcher,
		scorer:     scorer,
	}
}

// Analyze runs the full comparison pipeline: normalize both documents,
// extract ranked keywords from the job description, expand them with
// synonyms and categories, match them against the resume and build the
// report. The pipeline is a single synchronous pass with no side effects.
func (a *analyzerService) Analyze(resumeText, jobText string) (*models.Report, error) {
	jobDoc, err := a.normalizer.Normalize(jobText)
	if err != nil {
		return nil, fmt.Errorf("job description: %w", err)
	}

	resumeDoc, err := a.normalizer.Normalize(resumeText)
	if err != nil {
		return nil, fmt.Errorf("resume: %w", err)
	}

	keywords, err := a.extractor.Extract(jobDoc)
	if err != nil {
		return nil, err
	}

	keywords = a.resolver.Annotate(keywords)

	matches := a.matcher.Match(resumeDoc, keywords)
	report := a.scorer.BuildReport(matches)

	log.Printf("🔍 Analyzed %d keywords: %d found, %d missing (%d%%)\n",
		report.TotalKeywords, len(report.Found), len(report.Missing), report.MatchPercentage)

	return report, nil
}
