// Copyright FIR-Scan Authors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package text

import (
	"strings"
	"testing"

	"fir-scan/internal/analyzer"
	"fir-scan/internal/formatters"
)

const narrative = `On 14th September 2025, at about 8:15 PM, complainant Rajesh Kumar, S/o Venkat Rao,
aged 34 years, Scheduled Caste, occupation: Agricultural labourer, resident of Gollapadu village,
reported that the accused Ramesh Babu, aged about 28, S/o Narayana, resident of Gollapadu,
abused him by caste name near Narsapur Road culvert and snatched his Samsung mobile phone worth ₹15,000.
Local villagers (Suresh) witnessed the incident.`

func TestFormat(t *testing.T) {
	report := analyzer.AnalyzeNarrative(narrative)
	out, err := (&Formatter{}).Format(report, formatters.Options{NoColor: true})
	if err != nil {
		t.Fatalf("Format: %v", err)
	}

	for _, want := range []string{
		"FIR Analysis Report",
		"Case Type: SC/ST Atrocity Case",
		"Complainant: Rajesh Kumar, aged 34",
		"Ramesh Babu, aged 28",
		"SC/ST Atrocities Act, 1989 Section 3(1)(r)",
		"Bail: not available",
		"Recommendations:",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestFormatVerboseIncludesGuidance(t *testing.T) {
	report := analyzer.AnalyzeNarrative(narrative)
	out, err := (&Formatter{}).Format(report, formatters.Options{NoColor: true, Verbose: true})
	if err != nil {
		t.Fatalf("Format: %v", err)
	}
	if !strings.Contains(out, "Investigation Guidance:") {
		t.Errorf("verbose output missing guidance:\n%s", out)
	}
	if !strings.Contains(out, "Inform District SP within 24 hours") {
		t.Errorf("verbose output missing caste atrocity steps:\n%s", out)
	}
}

func TestRegistered(t *testing.T) {
	if _, err := formatters.Get("text"); err != nil {
		t.Errorf("text formatter not registered: %v", err)
	}
}
