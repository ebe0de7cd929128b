// Copyright FIR-Scan Authors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package formatters

import (
	"testing"

	"fir-scan/internal/analyzer"
)

type fakeFormatter struct{ name string }

func (f *fakeFormatter) Name() string          { return f.name }
func (f *fakeFormatter) Description() string   { return "fake" }
func (f *fakeFormatter) FileExtension() string { return ".fake" }
func (f *fakeFormatter) Format(*analyzer.Report, Options) (string, error) {
	return "fake output", nil
}

func TestRegistry(t *testing.T) {
	Register(&fakeFormatter{name: "fake-b"})
	Register(&fakeFormatter{name: "fake-a"})

	f, err := Get("fake-a")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	out, err := f.Format(nil, Options{})
	if err != nil || out != "fake output" {
		t.Errorf("Format = %q, %v", out, err)
	}

	names := Available()
	posA, posB := -1, -1
	for i, n := range names {
		switch n {
		case "fake-a":
			posA = i
		case "fake-b":
			posB = i
		}
	}
	if posA == -1 || posB == -1 || posA > posB {
		t.Errorf("Available() = %v, want fake-a before fake-b", names)
	}
}

func TestGetUnknown(t *testing.T) {
	if _, err := Get("no-such-format"); err == nil {
		t.Error("expected error for unknown format")
	}
}
