// Copyright FIR-Scan Authors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package preprocessors prepares raw FIR narratives for extraction:
// plaintext and PDF input, Unicode normalization and bilingual
// English-Telugu handling.
package preprocessors

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

var (
	whitespaceRe = regexp.MustCompile(`\s+`)
	ordinalRe    = regexp.MustCompile(`(\d{1,2})(?:st|nd|rd|th)`)
	timeRe       = regexp.MustCompile(`(\d{1,2}):(\d{2})\s*(AM|PM|am|pm)`)
)

// NormalizeText squeezes whitespace, applies NFKC normalization and
// repairs the pipe-for-I OCR confusion. Digits are left untouched.
func NormalizeText(text string) string {
	text = whitespaceRe.ReplaceAllString(strings.TrimSpace(text), " ")
	text = norm.NFKC.String(text)
	return strings.ReplaceAll(text, "|", "I")
}

// StandardizeFormats strips ordinal suffixes from day numbers and
// normalizes the spacing of clock times, so "14th September" and
// "8:15PM" read uniformly downstream.
func StandardizeFormats(text string) string {
	text = whitespaceRe.ReplaceAllString(strings.TrimSpace(text), " ")
	text = ordinalRe.ReplaceAllString(text, "$1")
	return timeRe.ReplaceAllString(text, "$1:$2 $3")
}

// LanguageMix describes the script composition of a narrative.
type LanguageMix struct {
	TeluguRatio  float64 `json:"telugu_ratio" yaml:"telugu_ratio"`
	EnglishRatio float64 `json:"english_ratio" yaml:"english_ratio"`
	IsMixed      bool    `json:"is_mixed" yaml:"is_mixed"`
	Primary      string  `json:"primary_language" yaml:"primary_language"`
}

// DetectLanguageMix counts runes in the Telugu Unicode block (U+0C00 to
// U+0C7F) against all non-space runes. A narrative is mixed when the
// Telugu share sits strictly between 10% and 90%.
func DetectLanguageMix(text string) LanguageMix {
	telugu, total := 0, 0
	for _, r := range text {
		if unicode.IsSpace(r) {
			continue
		}
		total++
		if r >= 0x0C00 && r <= 0x0C7F {
			telugu++
		}
	}
	ratio := 0.0
	if total > 0 {
		ratio = float64(telugu) / float64(total)
	}
	mix := LanguageMix{
		TeluguRatio:  ratio,
		EnglishRatio: 1 - ratio,
		IsMixed:      ratio > 0.1 && ratio < 0.9,
		Primary:      "english",
	}
	if ratio > 0.5 {
		mix.Primary = "telugu"
	}
	return mix
}

// teluguLegalTerms maps common Telugu legal vocabulary to its English
// equivalent.
var teluguLegalTerms = map[string]string{
	"సంఘటన":        "incident",
	"అభియోగం":      "complaint",
	"అపరాధం":       "offence",
	"ఆరోపణ":        "allegation",
	"సాక్షి":       "witness",
	"అనుమానితుడు":  "accused",
	"అత్యాచారం":    "atrocity",
	"హింస":         "violence",
	"దోపిడీ":       "robbery",
	"చాకిరీ":       "theft",
}

// ExtractTeluguTerms reports which known Telugu legal terms occur in the
// text, keyed by the Telugu term.
func ExtractTeluguTerms(text string) map[string]string {
	found := map[string]string{}
	for telugu, english := range teluguLegalTerms {
		if strings.Contains(text, telugu) {
			found[telugu] = english
		}
	}
	return found
}

// Process runs the full preprocessing pipeline and returns the text the
// extractor should consume alongside the language analysis.
func Process(text string) (string, LanguageMix) {
	normalized := NormalizeText(text)
	return StandardizeFormats(normalized), DetectLanguageMix(normalized)
}
