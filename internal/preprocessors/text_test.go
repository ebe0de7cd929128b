// Copyright FIR-Scan Authors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package preprocessors

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNormalizeText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "whitespace squeezed",
			input: "  On   14th\n\nSeptember  2025  ",
			want:  "On 14th September 2025",
		},
		{
			name:  "pipe OCR fix",
			input: "F|R registered",
			want:  "FIR registered",
		},
		{
			name:  "digits untouched",
			input: "worth ₹15,000 and ₹12,500 cash",
			want:  "worth ₹15,000 and ₹12,500 cash",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeText(tt.input); got != tt.want {
				t.Errorf("NormalizeText(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestStandardizeFormats(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"On 14th September 2025", "On 14 September 2025"},
		{"at 8:15PM sharp", "at 8:15 PM sharp"},
		{"on 2nd March at 10:00  am", "on 2 March at 10:00 am"},
	}
	for _, tt := range tests {
		if got := StandardizeFormats(tt.input); got != tt.want {
			t.Errorf("StandardizeFormats(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestDetectLanguageMix(t *testing.T) {
	t.Run("pure english", func(t *testing.T) {
		mix := DetectLanguageMix("The complainant reported a robbery.")
		if mix.TeluguRatio != 0 || mix.IsMixed || mix.Primary != "english" {
			t.Errorf("unexpected mix: %+v", mix)
		}
	})

	t.Run("pure telugu", func(t *testing.T) {
		mix := DetectLanguageMix("ఈ సంఘటన వలన అతను భయాందోళనకు గురయ్యాడు")
		if mix.Primary != "telugu" || mix.IsMixed {
			t.Errorf("unexpected mix: %+v", mix)
		}
	})

	t.Run("mixed narrative", func(t *testing.T) {
		mix := DetectLanguageMix("He was scared. ఈ సంఘటన వలన అతను భయాందోళనకు గురయ్యాడు")
		if !mix.IsMixed {
			t.Errorf("expected mixed, got %+v", mix)
		}
	})

	t.Run("empty", func(t *testing.T) {
		mix := DetectLanguageMix("")
		if mix.TeluguRatio != 0 || mix.Primary != "english" {
			t.Errorf("unexpected mix: %+v", mix)
		}
	})
}

func TestExtractTeluguTerms(t *testing.T) {
	found := ExtractTeluguTerms("ఈ సంఘటన జరిగింది, సాక్షి చూశాడు")
	if found["సంఘటన"] != "incident" {
		t.Errorf("missing incident term: %v", found)
	}
	if found["సాక్షి"] != "witness" {
		t.Errorf("missing witness term: %v", found)
	}
	if len(found) != 2 {
		t.Errorf("found = %v, want exactly 2 terms", found)
	}
}

func TestProcess(t *testing.T) {
	text, mix := Process("On 14th  September 2025 at 8:15PM. ఈ సంఘటన వలన అతను భయాందోళనకు గురయ్యాడు")
	if want := "On 14 September 2025 at 8:15 PM. ఈ సంఘటన వలన అతను భయాందోళనకు గురయ్యాడు"; text != want {
		t.Errorf("Process text = %q, want %q", text, want)
	}
	if !mix.IsMixed {
		t.Errorf("expected mixed language, got %+v", mix)
	}
}

func TestReadNarrativePlaintext(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "fir.txt")
	if err := os.WriteFile(path, []byte("complainant Rajesh Kumar"), 0o644); err != nil {
		t.Fatal(err)
	}

	text, err := ReadNarrative(path)
	if err != nil {
		t.Fatalf("ReadNarrative: %v", err)
	}
	if text != "complainant Rajesh Kumar" {
		t.Errorf("text = %q", text)
	}
}

func TestReadNarrativeMissingFile(t *testing.T) {
	if _, err := ReadNarrative(filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestExtractPDFTextRejectsBrokenFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.pdf")
	if err := os.WriteFile(path, []byte("not a pdf"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := ExtractPDFText(path); err == nil {
		t.Error("expected validation error for broken PDF")
	}
}
