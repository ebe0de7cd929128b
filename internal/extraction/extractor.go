// Copyright FIR-Scan Authors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package extraction pulls structured facts out of free-form FIR
// narratives using an ordered catalog of regular expressions and keyword
// lexicons. Extraction is fully deterministic: the same narrative always
// yields the same Result.
package extraction

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Extractor runs the pattern catalog against narratives. Construct one
// with NewExtractor and reuse it; it holds only compiled patterns and is
// safe for concurrent use.
type Extractor struct {
	patterns *patternLibrary
}

// NewExtractor compiles the pattern catalog and returns a ready Extractor.
func NewExtractor() *Extractor {
	return &Extractor{patterns: newPatternLibrary()}
}

// Extract runs every extraction pass over the narrative and returns a
// populated Result. Unmatched string fields carry the NotAvailable
// sentinel rather than the empty string.
func (e *Extractor) Extract(text string) *Result {
	text = squeezeWhitespace(text)
	return &Result{
		Complainant:  e.extractComplainant(text),
		Accused:      e.extractAccused(text),
		Incident:     e.extractIncident(text),
		Vehicles:     e.extractVehicles(text),
		Weapons:      e.extractWeapons(text),
		Offences:     e.extractOffences(text),
		Witnesses:    e.extractWitnesses(text),
		PropertyLoss: e.extractPropertyLoss(text),
		Injuries:     e.extractInjuries(text),
		Threats:      e.extractThreats(text),
		Impact:       e.extractImpact(text),
	}
}

func (e *Extractor) extractComplainant(text string) Person {
	p := newPerson("")
	if v := firstMatch(e.patterns.namePatterns, text); v != "" {
		p.Name = v
	}
	if v := firstMatch(e.patterns.fatherPatterns, text); v != "" {
		p.FatherName = v
	}
	if v := firstMatch(e.patterns.occupationPatterns, text); v != "" {
		p.Occupation = v
	}
	if v := firstMatch(e.patterns.addressPatterns, text); v != "" {
		p.Address = v
	}
	if m := e.patterns.agePattern.FindStringSubmatch(text); m != nil {
		p.Age, _ = strconv.Atoi(m[1])
	}
	for _, tok := range e.patterns.communityTokens {
		if containsFold(text, tok) {
			p.Community = tok
			break
		}
	}
	return p
}

// extractAccused splits the narrative at every accused/suspect/perpetrator
// mention and mines each trailing segment for one person. A segment with
// no recognizable name contributes nothing.
func (e *Extractor) extractAccused(text string) []Person {
	segments := e.patterns.accusedSplit.Split(text, -1)
	if len(segments) < 2 {
		return nil
	}
	var accused []Person
	for _, seg := range segments[1:] {
		name := firstMatch(e.patterns.accusedNamePatterns, seg)
		if name == "" {
			continue
		}
		p := newPerson(name)
		if m := e.patterns.accusedAgePattern.FindStringSubmatch(seg); m != nil {
			p.Age, _ = strconv.Atoi(m[1])
		}
		if m := e.patterns.accusedFatherPattern.FindStringSubmatch(seg); m != nil {
			p.FatherName = m[1]
		}
		if m := e.patterns.accusedAddressRe.FindStringSubmatch(seg); m != nil {
			p.Address = strings.TrimSpace(m[1])
		}
		if v := firstMatch(e.patterns.relationPatterns, seg); v != "" {
			p.Relation = v
		}
		if v := firstMatch(e.patterns.occupationPatterns, seg); v != "" {
			p.Occupation = v
		}
		if containsFold(seg, e.patterns.criminalHistoryKeyword) {
			p.CriminalHistory = "History-sheeter"
		}
		accused = append(accused, p)
	}
	return accused
}

func (e *Extractor) extractIncident(text string) Incident {
	inc := Incident{Date: NotAvailable, Time: NotAvailable, Place: NotAvailable}
	if m := e.patterns.datePattern.FindStringSubmatch(text); m != nil {
		inc.Date = fmt.Sprintf("%s %s %s", m[1], m[2], m[3])
	}
	if m := e.patterns.timePattern.FindStringSubmatch(text); m != nil {
		inc.Time = fmt.Sprintf("%s:%s %s", m[1], m[2], strings.ToUpper(m[3]))
	}
	if v := firstMatch(e.patterns.placePatterns, text); v != "" {
		inc.Place = v
	}
	return inc
}

func (e *Extractor) extractVehicles(text string) []Vehicle {
	var vehicles []Vehicle
	for _, m := range e.patterns.vehiclePattern.FindAllStringSubmatch(text, -1) {
		v := Vehicle{RegistrationNumber: m[1], Type: NotAvailable, Color: NotAvailable}
		desc := strings.ToLower(m[2])
		for _, color := range e.patterns.vehicleColors {
			if strings.Contains(desc, color) {
				v.Color = capitalize(color)
				break
			}
		}
		for _, vt := range e.patterns.vehicleTypes {
			for _, kw := range vt.keywords {
				if strings.Contains(desc, kw) {
					v.Type = vt.label
					break
				}
			}
			if v.Type != NotAvailable {
				break
			}
		}
		vehicles = append(vehicles, v)
	}
	return vehicles
}

// extractWeapons appends every hit of every weapon pattern, so a mention
// of a country-made pistol also surfaces the bare "pistol" entry. Callers
// that need distinct weapons must deduplicate.
func (e *Extractor) extractWeapons(text string) []Weapon {
	var weapons []Weapon
	for _, re := range e.patterns.weaponPatterns {
		for _, m := range re.FindAllString(text, -1) {
			weapons = append(weapons, Weapon{Kind: strings.ToLower(m)})
		}
	}
	return weapons
}

func (e *Extractor) extractOffences(text string) []Offence {
	var offences []Offence
	for _, cat := range e.patterns.offenceCategories {
		for _, kw := range cat.keywords {
			if containsFold(text, kw) {
				offences = append(offences, Offence{
					Category:    cat.category,
					Description: cat.description,
					Severity:    cat.severity,
				})
				break
			}
		}
	}
	return offences
}

// extractWitnesses tries the lead-in patterns in order and splits the
// first matching clause into individual names.
func (e *Extractor) extractWitnesses(text string) []string {
	for _, re := range e.patterns.witnessPatterns {
		if m := re.FindStringSubmatch(text); m != nil {
			return splitNameList(m[1])
		}
	}
	return nil
}

func (e *Extractor) extractPropertyLoss(text string) []PropertyLoss {
	var losses []PropertyLoss
	if m := e.patterns.propertyPhonePattern.FindStringSubmatch(text); m != nil {
		item := m[1]
		if !containsFold(item, "phone") {
			item += " mobile phone"
		}
		losses = append(losses, PropertyLoss{Item: item, Value: "₹" + m[2]})
	}
	if m := e.patterns.propertyCashPattern.FindStringSubmatch(text); m != nil {
		losses = append(losses, PropertyLoss{Item: "Cash", Value: "₹" + m[1]})
	}
	return losses
}

func (e *Extractor) extractInjuries(text string) []string {
	var injuries []string
	for _, re := range e.patterns.injuryPatterns {
		for _, m := range re.FindAllString(text, -1) {
			injuries = append(injuries, strings.ToLower(m))
		}
	}
	return injuries
}

func (e *Extractor) extractThreats(text string) []string {
	var threats []string
	for _, re := range e.patterns.threatPatterns {
		threats = append(threats, re.FindAllString(text, -1)...)
	}
	return threats
}

func (e *Extractor) extractImpact(text string) string {
	var found []string
	for _, kw := range e.patterns.impactKeywords {
		if containsFold(text, kw) {
			found = append(found, kw)
		}
	}
	if len(found) == 0 {
		return "Impact not clearly specified"
	}
	return "Incident caused: " + strings.Join(found, ", ")
}

func newPerson(name string) Person {
	if name == "" {
		name = NotAvailable
	}
	return Person{
		Name:            name,
		FatherName:      NotAvailable,
		Community:       NotAvailable,
		Occupation:      NotAvailable,
		Address:         NotAvailable,
		Relation:        NotAvailable,
		CriminalHistory: NotAvailable,
	}
}

// firstMatch returns the first capture group of the first pattern that
// matches, trimmed, or "" when nothing matches.
func firstMatch(patterns []*regexp.Regexp, text string) string {
	for _, re := range patterns {
		if m := re.FindStringSubmatch(text); m != nil {
			return strings.TrimSpace(m[1])
		}
	}
	return ""
}

func splitNameList(s string) []string {
	var names []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		part = strings.TrimSpace(strings.TrimPrefix(part, "and "))
		if part != "" {
			names = append(names, part)
		}
	}
	return names
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func containsFold(text, sub string) bool {
	return strings.Contains(strings.ToLower(text), strings.ToLower(sub))
}

func squeezeWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
