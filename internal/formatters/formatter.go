// Copyright FIR-Scan Authors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package formatters renders analysis reports for output. Formatter
// implementations live in subpackages and register themselves in init,
// so main must blank-import each one it wants available.
package formatters

import (
	"fmt"
	"sort"
	"sync"

	"fir-scan/internal/analyzer"
)

// Options tunes the rendering without changing report content.
type Options struct {
	Verbose bool
	NoColor bool
}

// Formatter renders a report into one output format.
type Formatter interface {
	Name() string
	Description() string
	FileExtension() string
	Format(report *analyzer.Report, opts Options) (string, error)
}

var (
	mu       sync.Mutex
	registry = map[string]Formatter{}
)

// Register adds a formatter under its name. Later registrations with
// the same name win, which lets tests swap in fakes.
func Register(f Formatter) {
	mu.Lock()
	defer mu.Unlock()
	registry[f.Name()] = f
}

// Get returns the named formatter.
func Get(name string) (Formatter, error) {
	mu.Lock()
	defer mu.Unlock()
	f, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown output format %q (available: %v)", name, availableLocked())
	}
	return f, nil
}

// Available lists registered formatter names in sorted order.
func Available() []string {
	mu.Lock()
	defer mu.Unlock()
	return availableLocked()
}

func availableLocked() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
