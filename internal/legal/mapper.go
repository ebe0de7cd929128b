// Copyright FIR-Scan Authors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package legal maps extracted offences to statutory sections from BNS
// 2023, the SC/ST Atrocities Act 1989, the Arms Act 1959 and the Motor
// Vehicles Act 1988, and derives bail, punishment and procedural
// guidance from the mapped sections.
package legal

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"fir-scan/internal/extraction"
)

// OffenceInput feeds MapOffences. Either Category is already known, or
// Description carries free text that gets categorized first.
type OffenceInput struct {
	Category    string
	Description string
}

// FromExtraction adapts extracted offences, which carry their category.
func FromExtraction(offences []extraction.Offence) []OffenceInput {
	inputs := make([]OffenceInput, 0, len(offences))
	for _, o := range offences {
		inputs = append(inputs, OffenceInput{Category: o.Category, Description: o.Description})
	}
	return inputs
}

// FromDescriptions adapts free-text offence descriptions.
func FromDescriptions(descriptions []string) []OffenceInput {
	inputs := make([]OffenceInput, 0, len(descriptions))
	for _, d := range descriptions {
		inputs = append(inputs, OffenceInput{Description: d})
	}
	return inputs
}

// BailAssessment reports whether bail is open and on what terms.
type BailAssessment struct {
	Available        bool     `json:"bail_available" yaml:"bail_available"`
	Reason           string   `json:"reason,omitempty" yaml:"reason,omitempty"`
	BlockingSections []string `json:"sections,omitempty" yaml:"sections,omitempty"`
	Conditions       []string `json:"conditions,omitempty" yaml:"conditions,omitempty"`
}

// PunishmentSummary aggregates the punishment exposure across sections.
type PunishmentSummary struct {
	MaxImprisonmentYears int    `json:"max_imprisonment_years" yaml:"max_imprisonment_years"`
	TotalFine            string `json:"total_fine" yaml:"total_fine"`
	OverallSeverity      string `json:"overall_severity" yaml:"overall_severity"`
	ConcurrentSentences  string `json:"concurrent_sentences" yaml:"concurrent_sentences"`
}

// Mapper resolves offence categories against the statute catalog. Build
// one with NewMapper; the tables are immutable after construction, so a
// Mapper is safe for concurrent use.
type Mapper struct {
	sections           map[string]Section
	offenceMappings    map[string][]string
	investigationSteps map[string][]string
	evidenceRequired   map[string][]string
	timeLimits         map[string]map[string]string

	imprisonmentRe *regexp.Regexp
	fineRe         *regexp.Regexp
}

func NewMapper() *Mapper {
	return &Mapper{
		sections:           initSectionCatalog(),
		offenceMappings:    initOffenceMappings(),
		investigationSteps: initInvestigationSteps(),
		evidenceRequired:   initEvidenceRequired(),
		timeLimits:         initTimeLimits(),
		imprisonmentRe:     regexp.MustCompile(`(\d+)-?(\d+)?\s*years?`),
		fineRe:             regexp.MustCompile(`₹\s*([\d,]+)`),
	}
}

// MapOffences resolves each input to a Mapping in input order. Inputs
// whose category has no table entry (general_offence included) are
// skipped.
func (m *Mapper) MapOffences(inputs []OffenceInput) []Mapping {
	var mappings []Mapping
	for _, in := range inputs {
		category := in.Category
		if category == "" {
			category = Categorize(in.Description)
		}
		refs, ok := m.offenceMappings[category]
		if !ok {
			continue
		}
		var sections []Section
		for _, ref := range refs {
			if s, ok := m.sections[ref]; ok {
				sections = append(sections, s)
			}
		}
		if len(sections) == 0 {
			continue
		}
		mappings = append(mappings, Mapping{
			OffenceType:        category,
			Sections:           sections,
			InvestigationSteps: m.lookupSteps(category),
			EvidenceRequired:   m.lookupEvidence(category),
			TimeLimits:         m.lookupTimeLimits(category),
		})
	}
	return mappings
}

func (m *Mapper) lookupSteps(category string) []string {
	if steps, ok := m.investigationSteps[category]; ok {
		return steps
	}
	return genericInvestigationSteps()
}

func (m *Mapper) lookupEvidence(category string) []string {
	if evidence, ok := m.evidenceRequired[category]; ok {
		return evidence
	}
	return genericEvidenceRequired()
}

func (m *Mapper) lookupTimeLimits(category string) map[string]string {
	if limits, ok := m.timeLimits[category]; ok {
		return limits
	}
	return genericTimeLimits()
}

// EnhancedPunishment annotates a BNS punishment when the case is a caste
// atrocity, since the SC/ST Act enhances the base offence.
func (m *Mapper) EnhancedPunishment(s Section, casteAtrocity bool) string {
	if casteAtrocity && (s.Act == "BNS 2023" || s.Act == "IPC") {
		return s.Punishment + " (Enhanced under SC/ST Act)"
	}
	return s.Punishment
}

// SuggestBailConditions is driven entirely by bailability: one
// non-bailable section forecloses bail, otherwise the standard condition
// set applies.
func (m *Mapper) SuggestBailConditions(sections []Section) BailAssessment {
	var blocking []string
	for _, s := range sections {
		if !s.Bailable {
			blocking = append(blocking, s.Number)
		}
	}
	if len(blocking) > 0 {
		return BailAssessment{
			Available:        false,
			Reason:           "Non-bailable offences present",
			BlockingSections: blocking,
		}
	}
	return BailAssessment{
		Available: true,
		Conditions: []string{
			"Personal bond of ₹50,000",
			"Two sureties of ₹25,000 each",
			"Not to tamper with evidence",
			"Not to contact witnesses",
			"Regular appearance in court",
		},
	}
}

// CalculateTotalPunishment takes the maximum imprisonment term across
// sections and sums the fines named in punishment text. Overall severity
// is the highest tier present.
func (m *Mapper) CalculateTotalPunishment(sections []Section) PunishmentSummary {
	maxYears := 0
	totalFine := 0
	severityHigh, severityMedium := false, false

	for _, s := range sections {
		if match := m.imprisonmentRe.FindStringSubmatch(s.Punishment); match != nil {
			years, _ := strconv.Atoi(match[1])
			if match[2] != "" {
				years, _ = strconv.Atoi(match[2])
			}
			if years > maxYears {
				maxYears = years
			}
		}
		if match := m.fineRe.FindStringSubmatch(s.Punishment); match != nil {
			amount, _ := strconv.Atoi(strings.ReplaceAll(match[1], ",", ""))
			totalFine += amount
		}
		switch s.Severity {
		case "high":
			severityHigh = true
		case "medium":
			severityMedium = true
		}
	}

	fine := "As per court discretion"
	if totalFine > 0 {
		fine = "₹" + formatThousands(totalFine)
	}
	severity := "low"
	if severityHigh {
		severity = "high"
	} else if severityMedium {
		severity = "medium"
	}
	return PunishmentSummary{
		MaxImprisonmentYears: maxYears,
		TotalFine:            fine,
		OverallSeverity:      severity,
		ConcurrentSentences:  "Sentences may run concurrently as per court discretion",
	}
}

// formatThousands renders an amount with thousands separators, matching
// the catalog's punishment strings.
func formatThousands(n int) string {
	s := fmt.Sprintf("%d", n)
	if len(s) <= 3 {
		return s
	}
	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	return s + "," + strings.Join(parts, ",")
}
