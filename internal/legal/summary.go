// Copyright FIR-Scan Authors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package legal

import (
	"strings"

	"fir-scan/internal/extraction"
)

// Summary is the case-level legal picture assembled from all mappings.
type Summary struct {
	CaseType              string            `json:"case_type" yaml:"case_type"`
	Sections              []Section         `json:"legal_sections" yaml:"legal_sections"`
	TotalSections         int               `json:"total_sections" yaml:"total_sections"`
	BailStatus            BailAssessment    `json:"bail_status" yaml:"bail_status"`
	Punishment            PunishmentSummary `json:"punishment_summary" yaml:"punishment_summary"`
	InvestigationPriority string            `json:"investigation_priority" yaml:"investigation_priority"`
	SpecialProvisions     []string          `json:"special_provisions" yaml:"special_provisions"`
}

// GenerateSummary flattens every mapped section into one case summary
// with bail status, aggregate punishment and investigation priority.
func (m *Mapper) GenerateSummary(result *extraction.Result, mappings []Mapping) *Summary {
	var all []Section
	for _, mapping := range mappings {
		all = append(all, mapping.Sections...)
	}

	s := &Summary{
		CaseType:              determineCaseType(result),
		Sections:              all,
		TotalSections:         len(all),
		BailStatus:            m.SuggestBailConditions(all),
		Punishment:            m.CalculateTotalPunishment(all),
		InvestigationPriority: "high",
	}
	for _, section := range all {
		if strings.Contains(section.Act, "SC/ST") {
			s.SpecialProvisions = append(s.SpecialProvisions, "SC/ST Atrocities Act provisions apply")
			s.InvestigationPriority = "highest"
			break
		}
	}
	for _, section := range all {
		if strings.Contains(section.Act, "Arms") {
			s.SpecialProvisions = append(s.SpecialProvisions, "Arms Act provisions apply")
			break
		}
	}
	return s
}

// determineCaseType classifies the case, preferring the complainant's
// community over offence keywords. The community check is
// case-sensitive: the tokens come from the extractor's fixed lexicon.
func determineCaseType(result *extraction.Result) string {
	if result == nil {
		return "General Criminal Case"
	}
	community := result.Complainant.Community
	if community != "" && community != extraction.NotAvailable {
		if strings.Contains(community, "SC") || strings.Contains(community, "ST") ||
			strings.Contains(community, "Scheduled") {
			return "SC/ST Atrocity Case"
		}
	}

	if len(result.Offences) > 0 {
		var descriptions []string
		for _, o := range result.Offences {
			descriptions = append(descriptions, o.Description)
		}
		text := strings.ToLower(strings.Join(descriptions, " "))
		switch {
		case containsAny(text, "caste", "sc", "st", "scheduled"):
			return "SC/ST Atrocity Case"
		case containsAny(text, "rob", "robbery", "snatch"):
			return "Robbery Case"
		case containsAny(text, "pistol", "gun", "weapon", "firearm"):
			return "Arms Offence Case"
		case containsAny(text, "assault", "hurt", "beat"):
			return "Assault Case"
		}
	}
	return "General Criminal Case"
}

func containsAny(text string, keywords ...string) bool {
	for _, kw := range keywords {
		if containsKeyword(text, kw) {
			return true
		}
	}
	return false
}
