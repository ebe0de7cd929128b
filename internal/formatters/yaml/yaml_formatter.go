// Copyright FIR-Scan Authors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package yaml renders analysis reports as YAML.
package yaml

import (
	"fmt"

	goyaml "gopkg.in/yaml.v3"

	"fir-scan/internal/analyzer"
	"fir-scan/internal/formatters"
)

type Formatter struct{}

func init() {
	formatters.Register(&Formatter{})
}

func (f *Formatter) Name() string          { return "yaml" }
func (f *Formatter) Description() string   { return "YAML report for config-style tooling" }
func (f *Formatter) FileExtension() string { return ".yaml" }

func (f *Formatter) Format(report *analyzer.Report, _ formatters.Options) (string, error) {
	data, err := goyaml.Marshal(report)
	if err != nil {
		return "", fmt.Errorf("encoding report as YAML: %w", err)
	}
	return string(data), nil
}
