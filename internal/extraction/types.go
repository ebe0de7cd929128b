// Copyright FIR-Scan Authors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package extraction

// NotAvailable is the sentinel used for every string field a pattern
// failed to match. Extraction misses are data, not errors.
const NotAvailable = "N/A"

// Severity levels assigned to offence categories.
const (
	SeverityLow    = "low"
	SeverityMedium = "medium"
	SeverityHigh   = "high"
)

// Person represents a person mentioned in the FIR, either the complainant
// or one of the accused. Optional fields hold NotAvailable (or 0 for Age)
// when no pattern matched.
type Person struct {
	Name            string `json:"name" yaml:"name"`
	FatherName      string `json:"father_name,omitempty" yaml:"father_name,omitempty"`
	Age             int    `json:"age,omitempty" yaml:"age,omitempty"` // 0 means not extracted
	Community       string `json:"community,omitempty" yaml:"community,omitempty"`
	Occupation      string `json:"occupation,omitempty" yaml:"occupation,omitempty"`
	Address         string `json:"address,omitempty" yaml:"address,omitempty"`
	Relation        string `json:"relation,omitempty" yaml:"relation,omitempty"`
	CriminalHistory string `json:"criminal_history,omitempty" yaml:"criminal_history,omitempty"`
}

// Vehicle represents a vehicle mentioned in the FIR. Only vehicles whose
// registration number is immediately followed by a parenthesized
// description are captured.
type Vehicle struct {
	RegistrationNumber string `json:"registration_number" yaml:"registration_number"`
	Type               string `json:"type,omitempty" yaml:"type,omitempty"`
	Color              string `json:"color,omitempty" yaml:"color,omitempty"`
}

// Weapon represents a single weapon mention. Repeated mentions of the same
// physical weapon produce repeated entries; no dedup is performed.
type Weapon struct {
	Kind string `json:"kind" yaml:"kind"`
}

// Offence represents one categorized offence. Severity is derived
// deterministically from the category.
type Offence struct {
	Category    string `json:"category" yaml:"category"`
	Description string `json:"description" yaml:"description"`
	Severity    string `json:"severity" yaml:"severity"`
}

// PropertyLoss records one stolen item and its stated value.
type PropertyLoss struct {
	Item  string `json:"item" yaml:"item"`
	Value string `json:"value" yaml:"value"`
}

// Incident holds the date, time, and place of the reported incident.
type Incident struct {
	Date  string `json:"date" yaml:"date"`
	Time  string `json:"time" yaml:"time"`
	Place string `json:"place" yaml:"place"`
}

// Result is the full set of typed records extracted from one narrative.
// A fresh Result is produced per extraction; nothing is shared or reused
// across calls.
type Result struct {
	Complainant  Person         `json:"complainant" yaml:"complainant"`
	Accused      []Person       `json:"accused" yaml:"accused"`
	Incident     Incident       `json:"incident" yaml:"incident"`
	Vehicles     []Vehicle      `json:"vehicles" yaml:"vehicles"`
	Weapons      []Weapon       `json:"weapons" yaml:"weapons"`
	Offences     []Offence      `json:"offences" yaml:"offences"`
	Witnesses    []string       `json:"witnesses" yaml:"witnesses"`
	PropertyLoss []PropertyLoss `json:"property_loss" yaml:"property_loss"`
	Injuries     []string       `json:"injuries" yaml:"injuries"`
	Threats      []string       `json:"threats" yaml:"threats"`
	Impact       string         `json:"impact" yaml:"impact"`
}
