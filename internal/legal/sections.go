// Copyright FIR-Scan Authors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package legal

// Section is one statutory provision a mapped offence can attract.
type Section struct {
	Act         string `json:"act" yaml:"act"`
	Number      string `json:"section" yaml:"section"`
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
	Punishment  string `json:"punishment" yaml:"punishment"`
	Bailable    bool   `json:"bailable" yaml:"bailable"`
	Cognizable  bool   `json:"cognizable" yaml:"cognizable"`
	Severity    string `json:"severity" yaml:"severity"`
}

// Mapping ties an offence category to its sections and the procedural
// duties that follow from it.
type Mapping struct {
	OffenceType        string            `json:"offence_type" yaml:"offence_type"`
	Sections           []Section         `json:"sections" yaml:"sections"`
	InvestigationSteps []string          `json:"investigation_steps" yaml:"investigation_steps"`
	EvidenceRequired   []string          `json:"evidence_required" yaml:"evidence_required"`
	TimeLimits         map[string]string `json:"time_limits" yaml:"time_limits"`
}

// Section references use "<act key>.<section key>" form so the offence
// mapping table stays readable next to the statute catalog.
func initSectionCatalog() map[string]Section {
	return map[string]Section{
		"BNS_2023.309": {
			Act:         "BNS 2023",
			Number:      "309",
			Title:       "Robbery",
			Description: "Theft with use of force or threat of force",
			Punishment:  "Imprisonment for 3-10 years and fine",
			Bailable:    false,
			Cognizable:  true,
			Severity:    "high",
		},
		"BNS_2023.115": {
			Act:         "BNS 2023",
			Number:      "115",
			Title:       "Hurt",
			Description: "Causing bodily pain, disease or infirmity",
			Punishment:  "Imprisonment up to 1 year or fine up to ₹10,000",
			Bailable:    true,
			Cognizable:  true,
			Severity:    "medium",
		},
		"BNS_2023.351": {
			Act:         "BNS 2023",
			Number:      "351",
			Title:       "Criminal Intimidation",
			Description: "Threatening to cause injury to person, property or reputation",
			Punishment:  "Imprisonment up to 2 years or fine or both",
			Bailable:    true,
			Cognizable:  true,
			Severity:    "medium",
		},
		"BNS_2023.113": {
			Act:         "BNS 2023",
			Number:      "113",
			Title:       "Grievous Hurt",
			Description: "Causing grievous hurt with dangerous weapon",
			Punishment:  "Imprisonment for 3-7 years and fine",
			Bailable:    false,
			Cognizable:  true,
			Severity:    "high",
		},
		"BNS_2023.120": {
			Act:         "BNS 2023",
			Number:      "120",
			Title:       "Unlawful Assembly",
			Description: "Assembly of 5 or more persons with common object",
			Punishment:  "Imprisonment up to 6 months or fine or both",
			Bailable:    true,
			Cognizable:  true,
			Severity:    "medium",
		},
		"SC_ST_Atrocities_Act_1989.3_1_r": {
			Act:         "SC/ST Atrocities Act, 1989",
			Number:      "3(1)(r)",
			Title:       "Intentional Insult/Abuse by Caste Name",
			Description: "Intentionally insults or intimidates with intent to humiliate on grounds of caste",
			Punishment:  "Imprisonment for 6 months to 5 years and fine",
			Bailable:    false,
			Cognizable:  true,
			Severity:    "high",
		},
		"SC_ST_Atrocities_Act_1989.3_2_v": {
			Act:         "SC/ST Atrocities Act, 1989",
			Number:      "3(2)(v)",
			Title:       "Offence Committed on Ground of Caste",
			Description: "Commits any offence under IPC/BNS on grounds of caste",
			Punishment:  "Same as IPC/BNS but with enhanced punishment",
			Bailable:    false,
			Cognizable:  true,
			Severity:    "high",
		},
		"Arms_Act_1959.25": {
			Act:         "Arms Act, 1959",
			Number:      "25",
			Title:       "Possession of Illegal Arms",
			Description: "Possession of arms without license",
			Punishment:  "Imprisonment for 1-3 years and fine",
			Bailable:    false,
			Cognizable:  true,
			Severity:    "high",
		},
		"Arms_Act_1959.27": {
			Act:         "Arms Act, 1959",
			Number:      "27",
			Title:       "Use of Firearm in Commission of Offence",
			Description: "Using firearm in commission of any offence",
			Punishment:  "Imprisonment for 3-7 years and fine",
			Bailable:    false,
			Cognizable:  true,
			Severity:    "high",
		},
		"Motor_Vehicles_Act_1988.66": {
			Act:         "Motor Vehicles Act, 1988",
			Number:      "66",
			Title:       "Unauthorized Use of Vehicle",
			Description: "Using vehicle for unlawful purpose",
			Punishment:  "Fine up to ₹5,000 or imprisonment up to 3 months",
			Bailable:    true,
			Cognizable:  false,
			Severity:    "low",
		},
	}
}

func initOffenceMappings() map[string][]string {
	return map[string][]string{
		"caste_atrocity":        {"SC_ST_Atrocities_Act_1989.3_1_r", "SC_ST_Atrocities_Act_1989.3_2_v"},
		"robbery":               {"BNS_2023.309"},
		"assault":               {"BNS_2023.115", "BNS_2023.113"},
		"criminal_intimidation": {"BNS_2023.351"},
		"arms_offence":          {"Arms_Act_1959.25", "Arms_Act_1959.27"},
		"rioting":               {"BNS_2023.120"},
		"vehicle_offence":       {"Motor_Vehicles_Act_1988.66"},
	}
}

func initInvestigationSteps() map[string][]string {
	return map[string][]string{
		"caste_atrocity": {
			"Register FIR immediately",
			"Inform District SP within 24 hours",
			"Conduct spot inspection",
			"Record statements of witnesses",
			"Collect medical evidence",
			"Arrest accused persons",
			"File charge sheet within 60 days",
		},
		"robbery": {
			"Register FIR immediately",
			"Conduct spot inspection",
			"Record statements of witnesses",
			"Collect CCTV footage if available",
			"Arrest accused persons",
			"Recover stolen property",
			"File charge sheet within 90 days",
		},
		"assault": {
			"Register FIR immediately",
			"Get medical examination done",
			"Record statements of witnesses",
			"Arrest accused persons",
			"File charge sheet within 90 days",
		},
		"arms_offence": {
			"Register FIR immediately",
			"Recover weapon used",
			"Get ballistic examination",
			"Arrest accused persons",
			"File charge sheet within 90 days",
		},
	}
}

func initEvidenceRequired() map[string][]string {
	return map[string][]string{
		"caste_atrocity": {
			"Medical certificate",
			"Witness statements",
			"Caste certificate of complainant",
			"Spot inspection report",
			"Photographs of scene",
		},
		"robbery": {
			"Medical certificate",
			"Witness statements",
			"Recovery memo of stolen property",
			"CCTV footage",
			"Vehicle details",
		},
		"assault": {
			"Medical certificate",
			"Witness statements",
			"Weapon used (if any)",
			"Photographs of injuries",
		},
		"arms_offence": {
			"Weapon recovered",
			"Ballistic report",
			"Witness statements",
			"Arms license verification",
		},
	}
}

func initTimeLimits() map[string]map[string]string {
	return map[string]map[string]string{
		"caste_atrocity": {
			"FIR_registration": "Immediately",
			"SP_notification":  "Within 24 hours",
			"Charge_sheet":     "Within 60 days",
			"Trial_completion": "Within 2 years",
		},
		"robbery": {
			"FIR_registration": "Immediately",
			"Charge_sheet":     "Within 90 days",
			"Trial_completion": "Within 2 years",
		},
		"assault": {
			"FIR_registration": "Immediately",
			"Charge_sheet":     "Within 90 days",
			"Trial_completion": "Within 1 year",
		},
	}
}

func genericInvestigationSteps() []string {
	return []string{"Register FIR", "Investigate", "File charge sheet"}
}

func genericEvidenceRequired() []string {
	return []string{"Medical certificate", "Witness statements"}
}

func genericTimeLimits() map[string]string {
	return map[string]string{
		"FIR_registration": "Immediately",
		"Charge_sheet":     "Within 90 days",
	}
}
