// Copyright FIR-Scan Authors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package observability provides pipeline progress reporting. Observers
// write to stderr so machine-readable report output on stdout stays
// clean.
package observability

import (
	"fmt"
	"io"
	"os"
	"time"
)

// Observer receives pipeline lifecycle events.
type Observer interface {
	StageStarted(stage string)
	StageCompleted(stage string, elapsed time.Duration)
	Warning(format string, args ...interface{})
}

// NoopObserver discards all events. It is the default.
type NoopObserver struct{}

func (NoopObserver) StageStarted(string)                  {}
func (NoopObserver) StageCompleted(string, time.Duration) {}
func (NoopObserver) Warning(string, ...interface{})       {}

// StandardObserver reports warnings only.
type StandardObserver struct {
	out io.Writer
}

func NewStandardObserver() *StandardObserver {
	return &StandardObserver{out: os.Stderr}
}

func (o *StandardObserver) StageStarted(string)                  {}
func (o *StandardObserver) StageCompleted(string, time.Duration) {}

func (o *StandardObserver) Warning(format string, args ...interface{}) {
	fmt.Fprintf(o.out, "WARNING: "+format+"\n", args...)
}

// DebugObserver traces every stage with timings.
type DebugObserver struct {
	out io.Writer
}

func NewDebugObserver() *DebugObserver {
	return &DebugObserver{out: os.Stderr}
}

// NewDebugObserverWithWriter is for tests.
func NewDebugObserverWithWriter(w io.Writer) *DebugObserver {
	return &DebugObserver{out: w}
}

func (o *DebugObserver) StageStarted(stage string) {
	fmt.Fprintf(o.out, "[DEBUG] %s stage=%s started\n", timestamp(), stage)
}

func (o *DebugObserver) StageCompleted(stage string, elapsed time.Duration) {
	fmt.Fprintf(o.out, "[DEBUG] %s stage=%s completed in %s\n", timestamp(), stage, elapsed)
}

func (o *DebugObserver) Warning(format string, args ...interface{}) {
	fmt.Fprintf(o.out, "[DEBUG] %s WARNING: %s\n", timestamp(), fmt.Sprintf(format, args...))
}

func timestamp() string {
	return time.Now().Format("2006-01-02 15:04:05")
}
