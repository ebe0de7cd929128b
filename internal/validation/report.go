// Copyright FIR-Scan Authors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package validation

import (
	"math"
	"strings"

	"fir-scan/internal/extraction"
)

// Report is the reviewer-facing validation output.
type Report struct {
	IsValid             bool     `json:"is_valid" yaml:"is_valid"`
	CompletenessScore   float64  `json:"completeness_score" yaml:"completeness_score"`
	CriticalErrorsCount int      `json:"critical_errors_count" yaml:"critical_errors_count"`
	SuggestionsCount    int      `json:"suggestions_count" yaml:"suggestions_count"`
	CriticalErrors      []string `json:"critical_errors" yaml:"critical_errors"`
	Suggestions         []string `json:"suggestions" yaml:"suggestions"`
	Recommendations     []string `json:"recommendations" yaml:"recommendations"`
	QualityScore        string   `json:"quality_score" yaml:"quality_score"`
}

// GenerateReport validates the record and wraps the summary with
// recommendations and a quality grade.
func (v *Validator) GenerateReport(result *extraction.Result) Report {
	summary := v.ValidateAll(result)
	return Report{
		IsValid:             summary.IsValid,
		CompletenessScore:   math.Round(summary.CompletenessScore*100) / 100,
		CriticalErrorsCount: len(summary.CriticalErrors),
		SuggestionsCount:    len(summary.Suggestions),
		CriticalErrors:      summary.CriticalErrors,
		Suggestions:         summary.Suggestions,
		Recommendations:     recommendations(summary),
		QualityScore:        QualityGrade(summary.CompletenessScore),
	}
}

func recommendations(summary Summary) []string {
	var recs []string
	if summary.CompletenessScore < 70 {
		recs = append(recs, "Review FIR text for missing information")
	}
	if len(summary.CriticalErrors) > 0 {
		recs = append(recs, "Address critical errors before proceeding")
	}
	joined := strings.ToLower(strings.Join(summary.CriticalErrors, " "))
	if strings.Contains(joined, "complainant") || strings.Contains(joined, "name is empty") {
		recs = append(recs, "Ensure complainant details are complete")
	}
	if strings.Contains(joined, "accused") {
		recs = append(recs, "Verify accused person details")
	}
	if strings.Contains(joined, "incident") || strings.Contains(joined, "date") || strings.Contains(joined, "place") {
		recs = append(recs, "Complete incident details")
	}
	return recs
}

// QualityGrade maps a completeness score to its verbal grade.
func QualityGrade(score float64) string {
	switch {
	case score >= 90:
		return "Excellent"
	case score >= 80:
		return "Good"
	case score >= 70:
		return "Fair"
	case score >= 60:
		return "Poor"
	default:
		return "Very Poor"
	}
}
