/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package schema derives the JSON schemas that declare an oracle task's output shape.
package schema

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
)

// Generator wraps jsonschema.Reflector with the settings structured output needs:
// inline definitions, closed objects, and every non-omitempty field required.
type Generator struct {
	reflector jsonschema.Reflector
}

// NewGenerator constructs a generator for output shapes.
func NewGenerator() *Generator {
	return &Generator{
		reflector: jsonschema.Reflector{
			ExpandedStruct:            true,
			AllowAdditionalProperties: false,
			DoNotReference:            true,
		},
	}
}

// Reflect returns the JSON schema for v.
func (g *Generator) Reflect(v any) *jsonschema.Schema {
	s := g.reflector.Reflect(v)
	// Providers that accept a schema reject the meta-schema keywords.
	s.Version = ""
	s.ID = ""
	return s
}

// Reflect derives the schema for v using a default generator.
func Reflect(v any) *jsonschema.Schema {
	return NewGenerator().Reflect(v)
}

// ReflectType reflects the zero value of T.
func ReflectType[T any]() *jsonschema.Schema {
	var zero T
	return Reflect(&zero)
}

// Indent renders s as indented JSON for inclusion in a prompt.
func Indent(s *jsonschema.Schema) (string, error) {
	b, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshaling schema: %w", err)
	}
	return string(b), nil
}
