/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package rebuttal

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
)

// ErrPrecondition matches a *PreconditionError with errors.Is.
var ErrPrecondition = errors.New("reviews and responses do not pair up")

// PreconditionError lists the keys present on only one side.
type PreconditionError struct {
	// MissingResponses are review keys without a response.
	MissingResponses []string
	// MissingReviews are response keys without a review.
	MissingReviews []string
}

func (e *PreconditionError) Error() string {
	var parts []string
	if len(e.MissingResponses) > 0 {
		parts = append(parts, fmt.Sprintf("no response for %s", strings.Join(e.MissingResponses, ", ")))
	}
	if len(e.MissingReviews) > 0 {
		parts = append(parts, fmt.Sprintf("no review for %s", strings.Join(e.MissingReviews, ", ")))
	}
	return fmt.Sprintf("%v: %s", ErrPrecondition, strings.Join(parts, "; "))
}

func (e *PreconditionError) Is(target error) bool { return target == ErrPrecondition }

// Pair is one review and the response written to it.
type Pair struct {
	Key      string
	Review   string
	Response string
}

// Pairs joins reviews and responses by key, sorted by key. The key sets must
// be identical.
func Pairs(reviews, responses map[string]string) ([]Pair, error) {
	var perr PreconditionError
	for _, k := range slices.Sorted(maps.Keys(reviews)) {
		if _, ok := responses[k]; !ok {
			perr.MissingResponses = append(perr.MissingResponses, k)
		}
	}
	for _, k := range slices.Sorted(maps.Keys(responses)) {
		if _, ok := reviews[k]; !ok {
			perr.MissingReviews = append(perr.MissingReviews, k)
		}
	}
	if len(perr.MissingResponses) > 0 || len(perr.MissingReviews) > 0 {
		return nil, &perr
	}

	pairs := make([]Pair, 0, len(reviews))
	for _, k := range slices.Sorted(maps.Keys(reviews)) {
		pairs = append(pairs, Pair{Key: k, Review: reviews[k], Response: responses[k]})
	}
	return pairs, nil
}
