// Copyright FIR-Scan Authors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package validation checks extracted FIR facts for completeness and
// format correctness and scores the overall record quality.
package validation

import (
	"fmt"
	"regexp"
	"strings"

	"fir-scan/internal/extraction"
)

// Finding is the validation outcome for one field.
type Finding struct {
	Field       string   `json:"field" yaml:"field"`
	Valid       bool     `json:"is_valid" yaml:"is_valid"`
	Value       string   `json:"value,omitempty" yaml:"value,omitempty"`
	Error       string   `json:"error,omitempty" yaml:"error,omitempty"`
	Suggestions []string `json:"suggestions,omitempty" yaml:"suggestions,omitempty"`
}

// Summary aggregates all findings for one record.
type Summary struct {
	IsValid           bool     `json:"is_valid" yaml:"is_valid"`
	CompletenessScore float64  `json:"completeness_score" yaml:"completeness_score"`
	CriticalErrors    []string `json:"critical_errors" yaml:"critical_errors"`
	Warnings          []string `json:"warnings" yaml:"warnings"`
	Suggestions       []string `json:"suggestions" yaml:"suggestions"`
}

// Validator holds the compiled format rules. Safe for concurrent use.
type Validator struct {
	nameRe       *regexp.Regexp
	datePatterns []*regexp.Regexp
	timeRe       *regexp.Regexp
	amountRe     *regexp.Regexp
	vehicleRe    *regexp.Regexp
	phoneRe      *regexp.Regexp
}

func NewValidator() *Validator {
	return &Validator{
		nameRe: regexp.MustCompile(`^[A-Za-z\s\.]+$`),
		datePatterns: []*regexp.Regexp{
			regexp.MustCompile(`\d{1,2}-\d{1,2}-\d{4}`),
			regexp.MustCompile(`\d{1,2}/\d{1,2}/\d{4}`),
			regexp.MustCompile(`\d{1,2}\s+\w+\s+\d{4}`),
		},
		timeRe:    regexp.MustCompile(`\d{1,2}:\d{2}\s*(AM|PM|am|pm)`),
		amountRe:  regexp.MustCompile(`₹\s*[\d,]+(?:\.\d{2})?`),
		vehicleRe: regexp.MustCompile(`[A-Z]{2}-\d{2}-[A-Z]{1,2}-\d{4}`),
		phoneRe:   regexp.MustCompile(`\b\d{10}\b`),
	}
}

// ValidateAll runs every check over the extraction result and folds the
// findings into a Summary. The completeness score is the share of valid
// findings, 0 when there are none.
func (v *Validator) ValidateAll(result *extraction.Result) Summary {
	var findings []Finding
	findings = append(findings, v.ValidateComplainant(result.Complainant)...)
	findings = append(findings, v.ValidateAccused(result.Accused)...)
	findings = append(findings, v.ValidateIncident(result.Incident)...)
	findings = append(findings, v.ValidateOffences(result.Offences)...)
	findings = append(findings, v.ValidateEvidence(result)...)
	return summarize(findings)
}

func summarize(findings []Finding) Summary {
	valid := 0
	var criticalErrors, suggestions []string
	seen := map[string]bool{}
	for _, f := range findings {
		if f.Valid {
			valid++
		} else if f.Error != "" {
			criticalErrors = append(criticalErrors, f.Error)
		}
		for _, s := range f.Suggestions {
			if !seen[s] {
				seen[s] = true
				suggestions = append(suggestions, s)
			}
		}
	}
	score := 0.0
	if len(findings) > 0 {
		score = float64(valid) / float64(len(findings)) * 100
	}
	return Summary{
		IsValid:           len(criticalErrors) == 0,
		CompletenessScore: score,
		CriticalErrors:    criticalErrors,
		Suggestions:       suggestions,
	}
}

func (v *Validator) ValidateComplainant(c extraction.Person) []Finding {
	return []Finding{
		v.nameFinding("complainant.name", c.Name),
		v.ageFinding("complainant.age", c.Age),
		v.addressFinding("complainant.address", c.Address),
	}
}

func (v *Validator) ValidateAccused(accused []extraction.Person) []Finding {
	if len(accused) == 0 {
		return []Finding{{
			Field:       "accused",
			Valid:       false,
			Error:       "No accused persons identified",
			Suggestions: []string{"Check if accused details are mentioned in FIR"},
		}}
	}
	findings := make([]Finding, 0, len(accused))
	for i, a := range accused {
		field := fmt.Sprintf("accused[%d].name", i)
		if missing(a.Name) {
			findings = append(findings, Finding{
				Field:       field,
				Valid:       false,
				Error:       "Accused name is missing",
				Suggestions: []string{"Extract accused name from FIR text"},
			})
			continue
		}
		findings = append(findings, v.nameFinding(field, a.Name))
	}
	return findings
}

// ValidateIncident always reports on date and place; time is optional
// and only checked when the extractor found one.
func (v *Validator) ValidateIncident(inc extraction.Incident) []Finding {
	findings := []Finding{v.dateFinding("incident.date", inc.Date)}
	if !missing(inc.Time) {
		findings = append(findings, v.timeFinding("incident.time", inc.Time))
	}
	findings = append(findings, v.placeFinding("incident.place", inc.Place))
	return findings
}

func (v *Validator) ValidateOffences(offences []extraction.Offence) []Finding {
	if len(offences) == 0 {
		return []Finding{{
			Field:       "offences",
			Valid:       false,
			Error:       "No offences identified",
			Suggestions: []string{"Review FIR text for offence descriptions"},
		}}
	}
	findings := make([]Finding, 0, len(offences))
	for i, o := range offences {
		field := fmt.Sprintf("offences[%d].type", i)
		if o.Category == "" {
			findings = append(findings, Finding{
				Field:       field,
				Valid:       false,
				Error:       "Offence type is missing",
				Suggestions: []string{"Categorize offence from description"},
			})
			continue
		}
		findings = append(findings, Finding{Field: field, Valid: true, Value: o.Category})
	}
	return findings
}

// ValidateEvidence reports on witnesses and opportunistically checks
// weapons and vehicle numbers when present.
func (v *Validator) ValidateEvidence(result *extraction.Result) []Finding {
	var findings []Finding
	if len(result.Witnesses) == 0 {
		findings = append(findings, Finding{
			Field:       "witnesses",
			Valid:       false,
			Error:       "No witnesses identified",
			Suggestions: []string{"Look for witness names in FIR text"},
		})
	} else {
		findings = append(findings, Finding{
			Field: "witnesses",
			Valid: true,
			Value: strings.Join(result.Witnesses, ", "),
		})
	}
	for i, w := range result.Weapons {
		if w.Kind != "" {
			findings = append(findings, Finding{
				Field: fmt.Sprintf("weapons[%d].type", i),
				Valid: true,
				Value: w.Kind,
			})
		}
	}
	for i, vehicle := range result.Vehicles {
		if missing(vehicle.RegistrationNumber) {
			continue
		}
		findings = append(findings, v.vehicleFinding(fmt.Sprintf("vehicles[%d].number", i), vehicle.RegistrationNumber))
	}
	return findings
}

func (v *Validator) nameFinding(field, name string) Finding {
	f := Finding{Field: field, Value: name}
	trimmed := strings.TrimSpace(name)
	switch {
	case missing(trimmed):
		f.Error = "Name is empty"
		f.Suggestions = []string{"Extract name from FIR text"}
	case len(trimmed) < 2:
		f.Error = "Name too short"
		f.Suggestions = []string{"Check if full name is extracted"}
	case !v.nameRe.MatchString(trimmed):
		f.Error = "Name contains invalid characters"
		f.Suggestions = []string{"Clean name format"}
	default:
		f.Valid = true
	}
	return f
}

func (v *Validator) ageFinding(field string, age int) Finding {
	f := Finding{Field: field, Value: fmt.Sprintf("%d", age)}
	switch {
	case age == 0:
		f.Error = "Age is missing"
		f.Suggestions = []string{"Extract age from FIR text"}
	case age < 0 || age > 120:
		f.Error = "Age out of reasonable range"
		f.Suggestions = []string{"Verify age extraction"}
	default:
		f.Valid = true
	}
	return f
}

func (v *Validator) addressFinding(field, address string) Finding {
	f := Finding{Field: field, Value: address}
	trimmed := strings.TrimSpace(address)
	switch {
	case missing(trimmed):
		f.Error = "Address is missing"
		f.Suggestions = []string{"Extract address from FIR text"}
	case len(trimmed) < 5:
		f.Error = "Address too short"
		f.Suggestions = []string{"Check if complete address is extracted"}
	default:
		f.Valid = true
	}
	return f
}

func (v *Validator) dateFinding(field, date string) Finding {
	f := Finding{Field: field, Value: date}
	if missing(date) {
		f.Error = "Incident date is missing"
		f.Suggestions = []string{"Extract date from FIR text"}
		return f
	}
	for _, re := range v.datePatterns {
		if re.MatchString(date) {
			f.Valid = true
			return f
		}
	}
	f.Error = "Invalid date format"
	f.Suggestions = []string{"Use DD-MM-YYYY or DD/MM/YYYY format"}
	return f
}

func (v *Validator) timeFinding(field, t string) Finding {
	f := Finding{Field: field, Value: t}
	if v.timeRe.MatchString(t) {
		f.Valid = true
		return f
	}
	f.Error = "Invalid time format"
	f.Suggestions = []string{"Use HH:MM AM/PM format"}
	return f
}

func (v *Validator) placeFinding(field, place string) Finding {
	f := Finding{Field: field, Value: place}
	if missing(strings.TrimSpace(place)) {
		f.Error = "Incident place is missing"
		f.Suggestions = []string{"Extract place from FIR text"}
		return f
	}
	f.Valid = true
	return f
}

func (v *Validator) vehicleFinding(field, number string) Finding {
	f := Finding{Field: field, Value: number}
	if v.vehicleRe.MatchString(number) {
		f.Valid = true
		return f
	}
	f.Error = "Invalid vehicle number format"
	f.Suggestions = []string{"Use format: XX-XX-XX-XXXX"}
	return f
}

// ValidateAmount and ValidatePhoneNumber check optional free-form
// fields; an empty value passes.
func (v *Validator) ValidateAmount(amount string) Finding {
	f := Finding{Field: "amount", Value: amount}
	if missing(amount) || v.amountRe.MatchString(amount) {
		f.Valid = true
		return f
	}
	f.Error = "Invalid amount format"
	f.Suggestions = []string{"Use ₹ symbol with number"}
	return f
}

func (v *Validator) ValidatePhoneNumber(phone string) Finding {
	f := Finding{Field: "phone_number", Value: phone}
	if missing(phone) || v.phoneRe.MatchString(phone) {
		f.Valid = true
		return f
	}
	f.Error = "Invalid phone number format"
	f.Suggestions = []string{"Use 10-digit number"}
	return f
}

func missing(s string) bool {
	return s == "" || s == extraction.NotAvailable
}
