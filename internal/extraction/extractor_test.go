// Copyright FIR-Scan Authors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package extraction

import (
	"reflect"
	"testing"
)

const sampleNarrative = `
On 14th September 2025, at about 8:15 PM, complainant Rajesh Kumar, S/o Venkat Rao,
aged 34 years, Scheduled Caste, occupation: Agricultural labourer, resident of Gollapadu
village, Bhimavaram Mandal, reported that while he was returning from weekly shandy on
his bicycle carrying groceries, he was intercepted near Narsapur Road culvert by a group
of four persons.

The accused are identified as:
Ramesh Babu, aged about 28, S/o Narayana, resident of Gollapadu, known history-sheeter.
Srinivas, aged about 30, brother-in-law of village sarpanch.
Murali Krishna, aged about 32, driver, resident of Mogaltur.
One unknown person, medium build, wearing black shirt.

They came on two motorbikes (Red Pulsar AP-37-BX-4321 and Black Splendor AP-37-CQ-9187)
and obstructed him. Ramesh Babu and Srinivas abused him by caste name, shouting 'Mala lanj…'
in public view. Murali Krishna pointed a country-made pistol and fired one round in the air,
while the unknown person beat him with a stick, causing bleeding injury on his left arm.
They forcibly snatched his Samsung mobile phone worth ₹15,000 and ₹12,500 cash from his pocket.
They further threatened that if he complained to police, they would kill him and set fire to his hut.

Local villagers (Suresh, Koteswara Rao, and Lakshmi) witnessed the incident but ran away in fear.
Rajesh Kumar fell on the ground and was later rescued by passers-by who shifted him to
Bhimavaram Government Hospital. ఈ సంఘటన వలన అతను చాలా భయాందోళనకు గురయ్యాడు.
`

func TestExtractComplainant(t *testing.T) {
	result := NewExtractor().Extract(sampleNarrative)
	c := result.Complainant

	if c.Name != "Rajesh Kumar" {
		t.Errorf("complainant name = %q, want %q", c.Name, "Rajesh Kumar")
	}
	if c.FatherName != "Venkat Rao" {
		t.Errorf("father name = %q, want %q", c.FatherName, "Venkat Rao")
	}
	if c.Age != 34 {
		t.Errorf("age = %d, want 34", c.Age)
	}
	if c.Community != "Scheduled Caste" {
		t.Errorf("community = %q, want %q", c.Community, "Scheduled Caste")
	}
	if c.Occupation != "Agricultural labourer" {
		t.Errorf("occupation = %q, want %q", c.Occupation, "Agricultural labourer")
	}
	if c.Address != "Gollapadu village" {
		t.Errorf("address = %q, want %q", c.Address, "Gollapadu village")
	}
}

func TestExtractAccused(t *testing.T) {
	result := NewExtractor().Extract(sampleNarrative)

	if len(result.Accused) == 0 {
		t.Fatal("no accused extracted")
	}
	first := result.Accused[0]
	if first.Name != "Ramesh Babu" {
		t.Errorf("first accused = %q, want %q", first.Name, "Ramesh Babu")
	}
	if first.Age != 28 {
		t.Errorf("first accused age = %d, want 28", first.Age)
	}
	if first.FatherName != "Narayana" {
		t.Errorf("first accused father = %q, want %q", first.FatherName, "Narayana")
	}
	if first.CriminalHistory != "History-sheeter" {
		t.Errorf("criminal history = %q, want History-sheeter", first.CriminalHistory)
	}
}

func TestExtractAccusedSegmentation(t *testing.T) {
	text := "The accused Vijay Kumar, aged about 25, S/o Rama, resident of Ongole, fled the scene."
	result := NewExtractor().Extract(text)

	if len(result.Accused) != 1 {
		t.Fatalf("accused count = %d, want 1", len(result.Accused))
	}
	a := result.Accused[0]
	if a.Name != "Vijay Kumar" || a.Age != 25 || a.FatherName != "Rama" || a.Address != "Ongole" {
		t.Errorf("unexpected accused: %+v", a)
	}
}

func TestExtractAccusedOccupation(t *testing.T) {
	text := "The accused Ramesh Babu, aged about 28, occupation: Driver, resident of Gollapadu, fled."
	result := NewExtractor().Extract(text)

	if len(result.Accused) != 1 {
		t.Fatalf("accused count = %d, want 1", len(result.Accused))
	}
	a := result.Accused[0]
	if a.Occupation != "Driver" {
		t.Errorf("occupation = %q, want %q", a.Occupation, "Driver")
	}
	if a.Address != "Gollapadu" {
		t.Errorf("address = %q, want %q", a.Address, "Gollapadu")
	}
}

func TestExtractAccusedSegmentationBoundary(t *testing.T) {
	text := "On 5 March 2024 at 10:30 AM, complainant Ravi Teja reported that his motorbike was stolen near Gandhi Road junction."
	result := NewExtractor().Extract(text)

	if len(result.Accused) != 0 {
		t.Errorf("accused = %+v, want none without an accused mention", result.Accused)
	}
}

func TestExtractIncident(t *testing.T) {
	result := NewExtractor().Extract(sampleNarrative)
	inc := result.Incident

	if inc.Date != "14 September 2025" {
		t.Errorf("date = %q, want %q", inc.Date, "14 September 2025")
	}
	if inc.Time != "8:15 PM" {
		t.Errorf("time = %q, want %q", inc.Time, "8:15 PM")
	}
	if !contains(inc.Place, "Narsapur Road culvert") {
		t.Errorf("place = %q, want it to mention Narsapur Road culvert", inc.Place)
	}
}

func TestExtractWitnesses(t *testing.T) {
	result := NewExtractor().Extract(sampleNarrative)

	want := []string{"Suresh", "Koteswara Rao", "Lakshmi"}
	if !reflect.DeepEqual(result.Witnesses, want) {
		t.Errorf("witnesses = %v, want %v", result.Witnesses, want)
	}
}

func TestExtractOffences(t *testing.T) {
	result := NewExtractor().Extract(sampleNarrative)

	got := map[string]string{}
	for _, o := range result.Offences {
		got[o.Category] = o.Severity
	}
	wantSeverity := map[string]string{
		"caste_atrocity":        SeverityHigh,
		"robbery":               SeverityMedium,
		"assault":               SeverityMedium,
		"criminal_intimidation": SeverityLow,
		"arms_offence":          SeverityMedium,
	}
	for cat, sev := range wantSeverity {
		if got[cat] != sev {
			t.Errorf("offence %s severity = %q, want %q", cat, got[cat], sev)
		}
	}
}

func TestExtractWeapons(t *testing.T) {
	result := NewExtractor().Extract(sampleNarrative)

	found := map[string]bool{}
	for _, w := range result.Weapons {
		found[w.Kind] = true
	}
	for _, want := range []string{"country-made pistol", "pistol", "stick"} {
		if !found[want] {
			t.Errorf("weapons %v missing %q", result.Weapons, want)
		}
	}
}

func TestExtractPropertyLoss(t *testing.T) {
	result := NewExtractor().Extract(sampleNarrative)

	if len(result.PropertyLoss) != 2 {
		t.Fatalf("property loss count = %d, want 2", len(result.PropertyLoss))
	}
	phone := result.PropertyLoss[0]
	if phone.Item != "Samsung mobile phone" || phone.Value != "₹15,000" {
		t.Errorf("phone loss = %+v", phone)
	}
	cash := result.PropertyLoss[1]
	if cash.Item != "Cash" || cash.Value != "₹12,500" {
		t.Errorf("cash loss = %+v", cash)
	}
}

func TestExtractThreatsAndImpact(t *testing.T) {
	result := NewExtractor().Extract(sampleNarrative)

	if len(result.Threats) == 0 {
		t.Error("no threats extracted")
	}
	if !contains(result.Impact, "fear") {
		t.Errorf("impact = %q, want it to mention fear", result.Impact)
	}
}

func TestExtractEmptyInput(t *testing.T) {
	result := NewExtractor().Extract("")

	if result.Complainant.Name != NotAvailable {
		t.Errorf("name = %q, want %q", result.Complainant.Name, NotAvailable)
	}
	if result.Complainant.Age != 0 {
		t.Errorf("age = %d, want 0", result.Complainant.Age)
	}
	if len(result.Accused) != 0 || len(result.Offences) != 0 || len(result.Witnesses) != 0 {
		t.Errorf("empty input produced findings: %+v", result)
	}
	if result.Impact != "Impact not clearly specified" {
		t.Errorf("impact = %q, want %q", result.Impact, "Impact not clearly specified")
	}
}

func TestExtractDeterministic(t *testing.T) {
	e := NewExtractor()
	first := e.Extract(sampleNarrative)
	second := e.Extract(sampleNarrative)

	if !reflect.DeepEqual(first, second) {
		t.Error("repeated extraction produced different results")
	}
}

func contains(s, sub string) bool {
	return len(s) >= len(sub) && containsFold(s, sub)
}
