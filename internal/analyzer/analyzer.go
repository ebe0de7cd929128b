// Copyright FIR-Scan Authors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package analyzer wires preprocessing, extraction, legal mapping and
// validation into one deterministic pipeline over an FIR narrative.
package analyzer

import (
	"time"

	"fir-scan/internal/extraction"
	"fir-scan/internal/legal"
	"fir-scan/internal/observability"
	"fir-scan/internal/preprocessors"
	"fir-scan/internal/validation"
	"fir-scan/internal/version"
)

// Metadata records when and by which build a report was produced.
type Metadata struct {
	Timestamp       string `json:"timestamp" yaml:"timestamp"`
	Version         string `json:"version" yaml:"version"`
	PrimaryLanguage string `json:"language_detected" yaml:"language_detected"`
	IsMixedLanguage bool   `json:"is_mixed_language" yaml:"is_mixed_language"`
}

// Report is the full analysis output for one narrative.
type Report struct {
	Metadata        Metadata                  `json:"analysis_metadata" yaml:"analysis_metadata"`
	LanguageInfo    preprocessors.LanguageMix `json:"language_composition" yaml:"language_composition"`
	TeluguTerms     map[string]string         `json:"telugu_terms_found" yaml:"telugu_terms_found"`
	Extraction      *extraction.Result        `json:"extracted_information" yaml:"extracted_information"`
	Mappings        []legal.Mapping           `json:"legal_mappings" yaml:"legal_mappings"`
	LegalSummary    *legal.Summary            `json:"legal_analysis" yaml:"legal_analysis"`
	Validation      validation.Report         `json:"validation_report" yaml:"validation_report"`
	Recommendations []string                  `json:"recommendations" yaml:"recommendations"`
}

// Options configures an Analyzer.
type Options struct {
	Observer observability.Observer
}

// Analyzer runs the analysis pipeline. Safe for concurrent use.
type Analyzer struct {
	extractor *extraction.Extractor
	mapper    *legal.Mapper
	validator *validation.Validator
	observer  observability.Observer
}

func New(opts Options) *Analyzer {
	obs := opts.Observer
	if obs == nil {
		obs = observability.NoopObserver{}
	}
	return &Analyzer{
		extractor: extraction.NewExtractor(),
		mapper:    legal.NewMapper(),
		validator: validation.NewValidator(),
		observer:  obs,
	}
}

// Analyze runs the full pipeline over one narrative.
func (a *Analyzer) Analyze(text string) *Report {
	processed, mix := a.stage1Preprocess(text)
	result := a.stage2Extract(processed)
	mappings, legalSummary := a.stage3MapLegal(result)
	validationReport := a.stage4Validate(result)

	return &Report{
		Metadata: Metadata{
			Timestamp:       time.Now().Format(time.RFC3339),
			Version:         version.Version,
			PrimaryLanguage: mix.Primary,
			IsMixedLanguage: mix.IsMixed,
		},
		LanguageInfo:    mix,
		TeluguTerms:     preprocessors.ExtractTeluguTerms(text),
		Extraction:      result,
		Mappings:        mappings,
		LegalSummary:    legalSummary,
		Validation:      validationReport,
		Recommendations: recommendations(legalSummary, validationReport),
	}
}

func (a *Analyzer) stage1Preprocess(text string) (string, preprocessors.LanguageMix) {
	start := time.Now()
	a.observer.StageStarted("preprocess")
	processed, mix := preprocessors.Process(text)
	a.observer.StageCompleted("preprocess", time.Since(start))
	return processed, mix
}

func (a *Analyzer) stage2Extract(text string) *extraction.Result {
	start := time.Now()
	a.observer.StageStarted("extract")
	result := a.extractor.Extract(text)
	if len(result.Offences) == 0 {
		a.observer.Warning("no offences recognized in narrative")
	}
	a.observer.StageCompleted("extract", time.Since(start))
	return result
}

func (a *Analyzer) stage3MapLegal(result *extraction.Result) ([]legal.Mapping, *legal.Summary) {
	start := time.Now()
	a.observer.StageStarted("legal-mapping")
	mappings := a.mapper.MapOffences(legal.FromExtraction(result.Offences))
	summary := a.mapper.GenerateSummary(result, mappings)
	a.observer.StageCompleted("legal-mapping", time.Since(start))
	return mappings, summary
}

func (a *Analyzer) stage4Validate(result *extraction.Result) validation.Report {
	start := time.Now()
	a.observer.StageStarted("validate")
	report := a.validator.GenerateReport(result)
	a.observer.StageCompleted("validate", time.Since(start))
	return report
}

// recommendations derives the cross-cutting action items from the legal
// summary and the validation outcome.
func recommendations(summary *legal.Summary, report validation.Report) []string {
	var recs []string
	if report.CompletenessScore < 80 {
		recs = append(recs, "Review FIR text for missing critical information")
	}
	if caseTypeIsCasteAtrocity(summary.CaseType) {
		recs = append(recs,
			"Immediate registration of FIR under SC/ST Atrocities Act",
			"Inform District SP within 24 hours",
			"Appoint Special Public Prosecutor",
		)
	}
	if summary.InvestigationPriority == "highest" {
		recs = append(recs, "Prioritize investigation - high priority case")
	}
	if !summary.BailStatus.Available {
		recs = append(recs, "Non-bailable offences present - immediate arrest required")
	}
	return recs
}

func caseTypeIsCasteAtrocity(caseType string) bool {
	return caseType == "SC/ST Atrocity Case"
}

// AnalyzeNarrative is a convenience wrapper for one-shot use.
func AnalyzeNarrative(text string) *Report {
	return New(Options{}).Analyze(text)
}
