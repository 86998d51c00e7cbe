/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package report renders a run's results.
//
// FormatTable prints one section per key with a typo table and a coverage
// table, marking each criticism ✅ at 100%, ⚠️ above 50% and ❌ otherwise.
// FormatJSON and FormatYAML emit the full report for other tools.
package report
