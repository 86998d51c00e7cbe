/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package promptbuilder_test

import (
	"strings"
	"testing"

	"chainguard.dev/rebuttal/agents/promptbuilder"
	"github.com/google/go-cmp/cmp"
)

func TestBindTagged(t *testing.T) {
	p := promptbuilder.MustNewPrompt("{{comment}}\n\n{{response}}\n\nDone?")

	p, err := p.BindTagged("comment", "comment", "Missing <b>baseline</b> & ablation")
	if err != nil {
		t.Fatalf("BindTagged() error = %v", err)
	}
	p, err = p.BindTagged("response", "response", "Line one\nLine two {{comment}}")
	if err != nil {
		t.Fatalf("BindTagged() error = %v", err)
	}

	got, err := p.Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	want := "<comment>\nMissing &lt;b&gt;baseline&lt;/b&gt; &amp; ablation\n</comment>\n\n" +
		"<response>\nLine one\nLine two {{comment}}\n</response>\n\nDone?"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Build() (-want +got):\n%s", diff)
	}
}

func TestBindErrors(t *testing.T) {
	p := promptbuilder.MustNewPrompt("{{review}}")

	if _, err := p.BindTagged("missing", "review", "x"); err == nil {
		t.Error("binding unknown placeholder: got = nil, wanted = error")
	}
	if _, err := p.BindTagged("review", "bad tag", "x"); err == nil {
		t.Error("binding invalid tag: got = nil, wanted = error")
	}

	bound, err := p.BindTagged("review", "review", "x")
	if err != nil {
		t.Fatalf("BindTagged() error = %v", err)
	}
	if _, err := bound.BindStringLiteral("review", "again"); err == nil {
		t.Error("double bind: got = nil, wanted = error")
	}

	if _, err := p.Build(); err == nil || !strings.Contains(err.Error(), "unbound placeholder: review") {
		t.Errorf("Build() of the unbound original: got = %v, wanted unbound placeholder error", err)
	}
}

func TestPromptIsImmutable(t *testing.T) {
	base := promptbuilder.MustNewPrompt("Hello {{name}}")

	a, err := base.BindStringLiteral("name", "reviewer")
	if err != nil {
		t.Fatalf("BindStringLiteral() error = %v", err)
	}
	b, err := base.BindStringLiteral("name", "author")
	if err != nil {
		t.Fatalf("BindStringLiteral() error = %v", err)
	}

	for _, tc := range []struct {
		p    *promptbuilder.Prompt
		want string
	}{{a, "Hello reviewer"}, {b, "Hello author"}} {
		got, err := tc.p.Build()
		if err != nil {
			t.Fatalf("Build() error = %v", err)
		}
		if got != tc.want {
			t.Errorf("Build(): got = %q, wanted = %q", got, tc.want)
		}
	}
}

func TestMustNewPromptPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustNewPrompt() with malformed template: got = no panic, wanted = panic")
		}
	}()
	promptbuilder.MustNewPrompt("{{oops")
}
