// Copyright FIR-Scan Authors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package extraction

import "regexp"

// patternLibrary is the fixed catalog of regular expressions and keyword
// lexicons the extractor runs against a narrative. It is built once per
// Extractor and never mutated afterwards, so a single Extractor is safe
// for concurrent use.
//
// Pattern lists are ordered and evaluated first-match-wins. The order is
// load-bearing: test fixtures depend on it, so do not reorder for "better"
// matching.
type patternLibrary struct {
	// Complainant lead-in patterns
	namePatterns       []*regexp.Regexp
	fatherPatterns     []*regexp.Regexp
	occupationPatterns []*regexp.Regexp
	addressPatterns    []*regexp.Regexp

	agePattern *regexp.Regexp

	// Community tokens are matched by case-insensitive substring search,
	// not token boundaries. Short tokens like "SC" can false-positive
	// inside unrelated words; this mirrors the reference behavior.
	communityTokens []string

	// Accused segmentation and per-segment patterns
	accusedSplit           *regexp.Regexp
	accusedNamePatterns    []*regexp.Regexp
	accusedAgePattern      *regexp.Regexp
	accusedFatherPattern   *regexp.Regexp
	relationPatterns       []*regexp.Regexp
	accusedAddressRe       *regexp.Regexp
	criminalHistoryKeyword string

	// Incident patterns
	datePattern   *regexp.Regexp
	timePattern   *regexp.Regexp
	placePatterns []*regexp.Regexp

	// Vehicles: a registration number must be immediately followed by a
	// parenthesized description; anything else is not captured.
	vehiclePattern *regexp.Regexp
	vehicleColors  []string
	vehicleTypes   []vehicleType

	// Weapons, most specific first. Every pattern is scanned over the
	// whole text and all hits appended, so repeated mentions repeat.
	weaponPatterns []*regexp.Regexp

	// Offence categories in fixed resolution order. The first keyword of
	// a category that matches contributes exactly one offence for that
	// category.
	offenceCategories []offenceCategory

	witnessPatterns []*regexp.Regexp

	propertyPhonePattern *regexp.Regexp
	propertyCashPattern  *regexp.Regexp

	injuryPatterns []*regexp.Regexp
	threatPatterns []*regexp.Regexp
	impactKeywords []string
}

// vehicleType maps description keywords to a vehicle type label.
type vehicleType struct {
	keywords []string
	label    string
}

// offenceCategory associates an offence category with its keyword lexicon
// and human-readable label.
type offenceCategory struct {
	category    string
	description string
	severity    string
	keywords    []string
}

func newPatternLibrary() *patternLibrary {
	return &patternLibrary{
		namePatterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)complainant\s+([A-Z][a-z]+\s+[A-Z][a-z]+)`),
			regexp.MustCompile(`(?i)informant\s+([A-Z][a-z]+\s+[A-Z][a-z]+)`),
			regexp.MustCompile(`(?i)reported\s+by\s+([A-Z][a-z]+\s+[A-Z][a-z]+)`),
			regexp.MustCompile(`([A-Z][a-z]+\s+[A-Z][a-z]+),\s*S/o`),
		},
		fatherPatterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)S/o\s+([A-Z][a-z]+\s+[A-Z][a-z]+)`),
			regexp.MustCompile(`(?i)son\s+of\s+([A-Z][a-z]+\s+[A-Z][a-z]+)`),
			regexp.MustCompile(`(?i)father\s+([A-Z][a-z]+\s+[A-Z][a-z]+)`),
		},
		occupationPatterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)occupation:\s*([^,]+)`),
			regexp.MustCompile(`(?i)profession:\s*([^,]+)`),
			regexp.MustCompile(`(?i)working\s+as\s+([^,]+)`),
			regexp.MustCompile(`([A-Z][a-z]+\s+labourer)`),
			regexp.MustCompile(`([A-Z][a-z]+\s+worker)`),
		},
		addressPatterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)resident\s+of\s+([^,]+(?:village|mandal|district|state)[^,]*)`),
			regexp.MustCompile(`(?i)address:\s*([^,]+)`),
			regexp.MustCompile(`(?i)living\s+in\s+([^,]+)`),
		},

		agePattern: regexp.MustCompile(`(?i)\b(?:aged|age)\s*(\d{1,2})\s*(?:years?)?\b`),

		communityTokens: []string{
			"Scheduled Caste",
			"Scheduled Tribe",
			"SC",
			"ST",
			"Backward Class",
			"BC",
			"General",
			"OBC",
		},

		accusedSplit: regexp.MustCompile(`(?i)(?:accused|suspect|perpetrator)`),
		accusedNamePatterns: []*regexp.Regexp{
			regexp.MustCompile(`([A-Z][a-z]+\s+[A-Z][a-z]+)`),
			regexp.MustCompile(`([A-Z][a-z]+),\s*aged`),
		},
		accusedAgePattern:    regexp.MustCompile(`(?i)aged\s+about\s*(\d{1,2})`),
		accusedFatherPattern: regexp.MustCompile(`(?i)S/o\s+([A-Z][a-z]+)`),
		relationPatterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)brother-in-law\s+of\s+([^,.]+)`),
			regexp.MustCompile(`(?i)relative\s+of\s+([^,.]+)`),
			regexp.MustCompile(`(?i)known\s+([^,.]+)`),
		},
		accusedAddressRe:       regexp.MustCompile(`(?i)resident\s+of\s+([^,.]+)`),
		criminalHistoryKeyword: "history-sheeter",

		datePattern: regexp.MustCompile(`(?i)\b(\d{1,2})(?:st|nd|rd|th)?\s+(January|February|March|April|May|June|July|August|September|October|November|December)\s+(\d{4})\b`),
		timePattern: regexp.MustCompile(`\b(\d{1,2}):(\d{2})\s*(AM|PM|am|pm)\b`),
		placePatterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)near\s+([^,.]+(?:road|culvert|bridge|junction)[^,.]*)`),
			regexp.MustCompile(`(?i)at\s+([^,.]+(?:village|mandal|district)[^,.]*)`),
			regexp.MustCompile(`(?i)place:\s*([^,.]+)`),
			regexp.MustCompile(`(?i)location:\s*([^,.]+)`),
		},

		vehiclePattern: regexp.MustCompile(`([A-Z]{2}-\d{2}-[A-Z]{1,2}-\d{4})\s*\(([^)]+)\)`),
		vehicleColors:  []string{"red", "black", "white"},
		vehicleTypes: []vehicleType{
			{keywords: []string{"pulsar"}, label: "Pulsar"},
			{keywords: []string{"splendor"}, label: "Splendor"},
			{keywords: []string{"motorbike", "bike"}, label: "Motorbike"},
		},

		weaponPatterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)(country-made pistol)`),
			regexp.MustCompile(`(?i)(pistol)`),
			regexp.MustCompile(`(?i)(gun)`),
			regexp.MustCompile(`(?i)(knife)`),
			regexp.MustCompile(`(?i)(stick)`),
			regexp.MustCompile(`(?i)(rod)`),
			regexp.MustCompile(`(?i)(weapon)`),
		},

		offenceCategories: []offenceCategory{
			{
				category:    "caste_atrocity",
				description: "Caste abuse",
				severity:    SeverityHigh,
				keywords:    []string{"caste abuse", "caste insult", "caste slur", "caste name", "abused him by caste"},
			},
			{
				category:    "robbery",
				description: "Robbery",
				severity:    SeverityMedium,
				keywords:    []string{"robbery", "dacoity", "theft", "snatch", "stole"},
			},
			{
				category:    "assault",
				description: "Assault causing hurt",
				severity:    SeverityMedium,
				keywords:    []string{"assault", "grievous hurt", "simple hurt", "beat", "attack"},
			},
			{
				category:    "criminal_intimidation",
				description: "Criminal intimidation",
				severity:    SeverityLow,
				keywords:    []string{"threat", "intimidation", "criminal intimidation"},
			},
			{
				category:    "arms_offence",
				description: "Arms offence",
				severity:    SeverityMedium,
				keywords:    []string{"illegal arms", "firearm", "pistol", "gun", "weapon"},
			},
			{
				category:    "rioting",
				description: "Rioting",
				severity:    SeverityLow,
				keywords:    []string{"rioting", "unlawful assembly"},
			},
			{
				category:    "kidnapping",
				description: "Kidnapping",
				severity:    SeverityHigh,
				keywords:    []string{"kidnap", "abduct"},
			},
			{
				category:    "sexual_offence",
				description: "Sexual offence",
				severity:    SeverityHigh,
				keywords:    []string{"rape", "sexual assault", "molestation"},
			},
		},

		witnessPatterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)witnessed\s+by\s+([^,.]+)`),
			regexp.MustCompile(`(?i)\(([^)]+)\)\s*witnessed`),
			regexp.MustCompile(`(?i)witnesses\s+(?:are\s+|were\s+)?([^.]+)`),
			regexp.MustCompile(`(?i)seen\s+by\s+([^,.]+)`),
			regexp.MustCompile(`(?i)observed\s+by\s+([^,.]+)`),
		},

		propertyPhonePattern: regexp.MustCompile(`(?i)(Samsung|iPhone|mobile phone).*?₹\s*([\d,]+)`),
		propertyCashPattern:  regexp.MustCompile(`(?i)₹\s*([\d,]+)\s*cash`),

		injuryPatterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)(bleeding injury)`),
			regexp.MustCompile(`(?i)(cut)`),
			regexp.MustCompile(`(?i)(wound)`),
			regexp.MustCompile(`(?i)(hurt)`),
			regexp.MustCompile(`(?i)(injury)`),
		},
		threatPatterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)(?:threat|threaten)\S*.*?(?:kill|harm|damage|fire)`),
			regexp.MustCompile(`(?i)(?:will|would).*?(?:kill|harm|damage)`),
			regexp.MustCompile(`(?i)(?:set fire|burn)`),
			regexp.MustCompile(`(?i)(?:destroy|damage).*?(?:house|hut|property)`),
		},
		impactKeywords: []string{
			"fear", "afraid", "scared", "terrified", "hospitalized", "injured",
			"bleeding", "hurt", "damage", "loss", "trauma", "shock",
		},
	}
}
