/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package promptbuilder

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNewPrompt(t *testing.T) {
	tests := []struct {
		name     string
		template string
		want     []string
		wantErr  string
	}{{
		name:     "no bindings",
		template: "plain text",
		want:     nil,
	}, {
		name:     "repeated bindings collapse",
		template: "{{comment}} then {{ response }} then {{comment}}",
		want:     []string{"comment", "response"},
	}, {
		name:     "unclosed",
		template: "{{comment",
		wantErr:  "unclosed binding",
	}, {
		name:     "invalid identifier",
		template: "{{1st}}",
		wantErr:  "invalid binding identifier",
	}}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewPrompt(stringLiteral(tt.template))
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("NewPrompt() error: got = %v, wanted = %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewPrompt() error = %v", err)
			}
			if diff := cmp.Diff(tt.want, p.Placeholders()); diff != "" {
				t.Errorf("Placeholders() (-want +got):\n%s", diff)
			}
		})
	}
}

func TestIsIdentifier(t *testing.T) {
	for in, want := range map[string]bool{
		"comment":   true,
		"source_2":  true,
		"":          false,
		"_private":  false,
		"2nd":       false,
		"has space": false,
		"dash-name": false,
	} {
		if got := isIdentifier(in); got != want {
			t.Errorf("isIdentifier(%q): got = %v, wanted = %v", in, got, want)
		}
	}
}
