// Copyright FIR-Scan Authors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package text renders a human-readable case summary for the terminal.
package text

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"fir-scan/internal/analyzer"
	"fir-scan/internal/formatters"
)

type Formatter struct{}

func init() {
	formatters.Register(&Formatter{})
}

func (f *Formatter) Name() string          { return "text" }
func (f *Formatter) Description() string   { return "Human-readable case summary" }
func (f *Formatter) FileExtension() string { return ".txt" }

func (f *Formatter) Format(report *analyzer.Report, opts formatters.Options) (string, error) {
	if opts.NoColor {
		color.NoColor = true
	}
	header := color.New(color.FgCyan, color.Bold).SprintFunc()
	label := color.New(color.Bold).SprintFunc()
	alert := color.New(color.FgRed).SprintFunc()
	good := color.New(color.FgGreen).SprintFunc()

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n%s\n\n", header("FIR Analysis Report - "+report.Metadata.Timestamp), strings.Repeat("=", 50))

	fmt.Fprintf(&b, "%s %s\n", label("Case Type:"), report.LegalSummary.CaseType)
	fmt.Fprintf(&b, "%s %s\n\n", label("Investigation Priority:"), report.LegalSummary.InvestigationPriority)

	c := report.Extraction.Complainant
	fmt.Fprintf(&b, "%s %s", label("Complainant:"), c.Name)
	if c.Age > 0 {
		fmt.Fprintf(&b, ", aged %d", c.Age)
	}
	fmt.Fprintf(&b, ", %s, %s\n", c.Community, c.Address)

	if len(report.Extraction.Accused) > 0 {
		b.WriteString(label("Accused:") + "\n")
		for _, a := range report.Extraction.Accused {
			fmt.Fprintf(&b, "- %s", a.Name)
			if a.Age > 0 {
				fmt.Fprintf(&b, ", aged %d", a.Age)
			}
			if a.CriminalHistory != "N/A" {
				fmt.Fprintf(&b, " (%s)", a.CriminalHistory)
			}
			b.WriteString("\n")
		}
	}

	inc := report.Extraction.Incident
	fmt.Fprintf(&b, "%s %s at %s, %s\n\n", label("Incident:"), inc.Date, inc.Time, inc.Place)

	if len(report.LegalSummary.Sections) > 0 {
		b.WriteString(label("Applicable Legal Sections:") + "\n")
		for _, s := range report.LegalSummary.Sections {
			bail := "bailable"
			if !s.Bailable {
				bail = alert("non-bailable")
			}
			fmt.Fprintf(&b, "- %s Section %s: %s [%s]\n", s.Act, s.Number, s.Title, bail)
		}
		b.WriteString("\n")
	}

	bailStatus := report.LegalSummary.BailStatus
	if bailStatus.Available {
		fmt.Fprintf(&b, "%s %s\n", label("Bail:"), good("available"))
		if opts.Verbose {
			for _, cond := range bailStatus.Conditions {
				fmt.Fprintf(&b, "  - %s\n", cond)
			}
		}
	} else {
		fmt.Fprintf(&b, "%s %s (%s: sections %s)\n", label("Bail:"), alert("not available"),
			bailStatus.Reason, strings.Join(bailStatus.BlockingSections, ", "))
	}

	p := report.LegalSummary.Punishment
	fmt.Fprintf(&b, "%s up to %d years imprisonment, fine %s (severity: %s)\n\n",
		label("Punishment Exposure:"), p.MaxImprisonmentYears, p.TotalFine, p.OverallSeverity)

	v := report.Validation
	fmt.Fprintf(&b, "%s %.2f%% (%s)\n", label("Completeness:"), v.CompletenessScore, v.QualityScore)
	if v.CriticalErrorsCount > 0 {
		fmt.Fprintf(&b, "%s %d\n", alert("Critical errors:"), v.CriticalErrorsCount)
		if opts.Verbose {
			for _, e := range v.CriticalErrors {
				fmt.Fprintf(&b, "  - %s\n", e)
			}
		}
	}

	if len(report.Recommendations) > 0 {
		b.WriteString("\n" + label("Recommendations:") + "\n")
		for i, rec := range report.Recommendations {
			fmt.Fprintf(&b, "%d. %s\n", i+1, rec)
		}
	}

	if opts.Verbose && len(report.Mappings) > 0 {
		b.WriteString("\n" + label("Investigation Guidance:") + "\n")
		for _, m := range report.Mappings {
			fmt.Fprintf(&b, "%s:\n", m.OffenceType)
			for _, step := range m.InvestigationSteps {
				fmt.Fprintf(&b, "  - %s\n", step)
			}
			fmt.Fprintf(&b, "  Evidence: %s\n", strings.Join(m.EvidenceRequired, "; "))
		}
	}

	return b.String(), nil
}
