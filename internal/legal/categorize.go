// Copyright FIR-Scan Authors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package legal

import (
	"strings"
	"unicode"
)

// categoryRule pairs an offence category with the keywords that select
// it. Rules are checked in order and the first hit wins, so caste
// indicators outrank everything else.
type categoryRule struct {
	category string
	keywords []string
}

var categoryRules = []categoryRule{
	{"caste_atrocity", []string{"caste", "sc", "st", "scheduled"}},
	{"robbery", []string{"rob", "robbery", "snatch", "theft"}},
	{"assault", []string{"assault", "hurt", "beat", "attack"}},
	{"criminal_intimidation", []string{"threat", "intimidation"}},
	{"arms_offence", []string{"pistol", "gun", "weapon", "firearm"}},
	{"vehicle_offence", []string{"vehicle", "motorbike", "bike"}},
}

// Categorize assigns a free-text offence description to an offence
// category, falling back to general_offence.
func Categorize(description string) string {
	lower := strings.ToLower(description)
	for _, rule := range categoryRules {
		for _, kw := range rule.keywords {
			if containsKeyword(lower, kw) {
				return rule.category
			}
		}
	}
	return "general_offence"
}

// containsKeyword matches long keywords as substrings, which covers
// inflections like "snatched". Two-letter abbreviations ("sc", "st")
// must stand alone as words, otherwise "pistol" reads as a caste
// indicator.
func containsKeyword(lowerText, kw string) bool {
	if len(kw) > 2 {
		return strings.Contains(lowerText, kw)
	}
	for _, word := range strings.FieldsFunc(lowerText, notLetter) {
		if word == kw {
			return true
		}
	}
	return false
}

func notLetter(r rune) bool {
	return !unicode.IsLetter(r)
}
