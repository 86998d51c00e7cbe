/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package promptbuilder

import (
	"fmt"
	"strings"
)

// binding produces the text substituted for one placeholder.
type binding interface {
	value() (string, error)
}

type unboundBinding struct {
	name string
}

func (u *unboundBinding) value() (string, error) {
	return "", fmt.Errorf("unbound placeholder: %s", u.name)
}

type literalBinding struct {
	val string
}

func (l *literalBinding) value() (string, error) {
	return l.val, nil
}

// markupEscaper escapes the characters that could open or close a tag.
// Newlines and quotes are kept so multi-line reviews stay readable.
var markupEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

// taggedBinding wraps text in a <tag> block on its own lines.
type taggedBinding struct {
	tag  string
	text string
}

func (t *taggedBinding) value() (string, error) {
	return fmt.Sprintf("<%s>\n%s\n</%s>", t.tag, markupEscaper.Replace(t.text), t.tag), nil
}

func existsAndUnbound(bindings map[string]binding, name string) error {
	b, ok := bindings[name]
	if !ok {
		return fmt.Errorf("binding %q not found in template", name)
	}
	if _, unbound := b.(*unboundBinding); !unbound {
		return fmt.Errorf("binding %q already bound", name)
	}
	return nil
}
