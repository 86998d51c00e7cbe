/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package rebuttal drives a scoring run over review/response pairs.
//
// Reviews and responses are joined by key. Every pair is processed
// concurrently, and within a pair the typo scan runs alongside extraction and
// judging. The first failure cancels all outstanding work and fails the run;
// no partial report is produced.
package rebuttal
