/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package rebuttal

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestPairs(t *testing.T) {
	tests := []struct {
		name      string
		reviews   map[string]string
		responses map[string]string
		want      []Pair
		wantErr   *PreconditionError
	}{{
		name:      "matching keys sorted",
		reviews:   map[string]string{"b": "rb", "a": "ra"},
		responses: map[string]string{"a": "sa", "b": "sb"},
		want:      []Pair{{Key: "a", Review: "ra", Response: "sa"}, {Key: "b", Review: "rb", Response: "sb"}},
	}, {
		name:      "empty run",
		reviews:   map[string]string{},
		responses: map[string]string{},
		want:      []Pair{},
	}, {
		name:      "mismatched keys",
		reviews:   map[string]string{"a": "", "b": ""},
		responses: map[string]string{"a": "", "c": ""},
		wantErr:   &PreconditionError{MissingResponses: []string{"b"}, MissingReviews: []string{"c"}},
	}, {
		name:      "responses only",
		reviews:   nil,
		responses: map[string]string{"x": ""},
		wantErr:   &PreconditionError{MissingReviews: []string{"x"}},
	}}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Pairs(tt.reviews, tt.responses)
			if tt.wantErr != nil {
				var perr *PreconditionError
				if !errors.As(err, &perr) {
					t.Fatalf("Pairs(): got = %v, wanted *PreconditionError", err)
				}
				if !errors.Is(err, ErrPrecondition) {
					t.Errorf("errors.Is(ErrPrecondition): got = false, wanted = true")
				}
				if diff := cmp.Diff(tt.wantErr, perr); diff != "" {
					t.Errorf("PreconditionError (-want +got):\n%s", diff)
				}
				return
			}
			if err != nil {
				t.Fatalf("Pairs() = %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Pairs() (-want +got):\n%s", diff)
			}
		})
	}
}

func TestPreconditionErrorMessage(t *testing.T) {
	err := &PreconditionError{MissingResponses: []string{"b"}, MissingReviews: []string{"c", "d"}}
	want := "reviews and responses do not pair up: no response for b; no review for c, d"
	if got := err.Error(); got != want {
		t.Errorf("Error(): got = %q, wanted = %q", got, want)
	}
}
