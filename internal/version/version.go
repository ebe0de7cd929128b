// Copyright FIR-Scan Authors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package version holds build metadata, overridable at link time.
package version

var (
	Version   = "1.0.0"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

// String returns the full version line printed by --version.
func String() string {
	return "fir-scan " + Version + " (commit " + GitCommit + ", built " + BuildDate + ")"
}
