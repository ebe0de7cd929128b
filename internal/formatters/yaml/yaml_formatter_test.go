// Copyright FIR-Scan Authors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package yaml

import (
	"testing"

	goyaml "gopkg.in/yaml.v3"

	"fir-scan/internal/analyzer"
	"fir-scan/internal/formatters"
)

func TestFormat(t *testing.T) {
	report := analyzer.AnalyzeNarrative("complainant Rajesh Kumar, aged 34 years, reported a robbery on 14-09-2025.")
	out, err := (&Formatter{}).Format(report, formatters.Options{})
	if err != nil {
		t.Fatalf("Format: %v", err)
	}

	var decoded map[string]interface{}
	if err := goyaml.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("output is not valid YAML: %v", err)
	}
	if _, ok := decoded["legal_analysis"]; !ok {
		t.Errorf("YAML output missing legal_analysis:\n%s", out)
	}
}

func TestRegistered(t *testing.T) {
	if _, err := formatters.Get("yaml"); err != nil {
		t.Errorf("yaml formatter not registered: %v", err)
	}
}
