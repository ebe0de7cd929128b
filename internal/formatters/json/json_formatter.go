// Copyright FIR-Scan Authors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package json renders analysis reports as indented JSON.
package json

import (
	"encoding/json"
	"fmt"

	"fir-scan/internal/analyzer"
	"fir-scan/internal/formatters"
)

type Formatter struct{}

func init() {
	formatters.Register(&Formatter{})
}

func (f *Formatter) Name() string          { return "json" }
func (f *Formatter) Description() string   { return "Machine-readable JSON report" }
func (f *Formatter) FileExtension() string { return ".json" }

func (f *Formatter) Format(report *analyzer.Report, _ formatters.Options) (string, error) {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding report as JSON: %w", err)
	}
	return string(data) + "\n", nil
}
