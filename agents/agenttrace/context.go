/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package agenttrace

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
)

// RunContext labels the oracle calls issued on behalf of one run and pair.
type RunContext struct {
	RunID   string `json:"run_id,omitempty"`
	PairKey string `json:"pair_key,omitempty"`
}

// EnrichAttributes appends the bounded run labels to baseAttrs for metrics.
//
// RunID is deliberately left out: every invocation creates a new one. It is
// still set on spans, where cardinality does not matter.
func (r RunContext) EnrichAttributes(baseAttrs []attribute.KeyValue) []attribute.KeyValue {
	attrs := make([]attribute.KeyValue, len(baseAttrs), len(baseAttrs)+1)
	copy(attrs, baseAttrs)
	if r.PairKey != "" {
		attrs = append(attrs, attribute.String("pair", r.PairKey))
	}
	return attrs
}

type runContextKey struct{}

// WithRunContext attaches rc to ctx.
func WithRunContext(ctx context.Context, rc RunContext) context.Context {
	return context.WithValue(ctx, runContextKey{}, rc)
}

// GetRunContext returns the RunContext on ctx, or the zero value.
func GetRunContext(ctx context.Context) RunContext {
	rc, _ := ctx.Value(runContextKey{}).(RunContext)
	return rc
}

// Enricher adapts GetRunContext to the metrics attribute enricher signature.
func Enricher(ctx context.Context, baseAttrs []attribute.KeyValue) []attribute.KeyValue {
	return GetRunContext(ctx).EnrichAttributes(baseAttrs)
}
