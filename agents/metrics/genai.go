/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package metrics

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

// GenAI provides OpenTelemetry metrics for oracle calls. Instruments that
// fail to initialize are replaced with no-ops.
type GenAI struct {
	promptTokens     metric.Int64Counter
	completionTokens metric.Int64Counter
	calls            metric.Int64Counter
	retries          metric.Int64Counter
	judgments        metric.Int64Counter
	attrEnricher     AttributeEnricher
}

// NewGenAI creates the instruments on the global meter provider under meterName.
func NewGenAI(meterName string) *GenAI {
	meter := otel.Meter(meterName, metric.WithInstrumentationVersion("1.0.0"))

	counter := func(name, desc, unit string) metric.Int64Counter {
		c, err := meter.Int64Counter(name, metric.WithDescription(desc), metric.WithUnit(unit))
		if err != nil {
			slog.Warn("Failed to create counter, metrics will be disabled", "error", err, "meter", meterName, "counter", name)
			return noop.Int64Counter{}
		}
		return c
	}

	return &GenAI{
		promptTokens:     counter("genai.token.prompt", "The number of prompt tokens used", "{tokens}"),
		completionTokens: counter("genai.token.completion", "The number of completion tokens used", "{tokens}"),
		calls:            counter("genai.oracle.calls", "The number of oracle calls by task and outcome", "{calls}"),
		retries:          counter("genai.oracle.retries", "The number of retried oracle calls", "{calls}"),
		judgments:        counter("rebuttal.judgments", "The number of judge verdicts by outcome", "{verdicts}"),
	}
}

// SetAttributeEnricher sets the enricher applied before every recording.
func (m *GenAI) SetAttributeEnricher(enricher AttributeEnricher) {
	m.attrEnricher = enricher
}

func (m *GenAI) attrs(ctx context.Context, base []attribute.KeyValue, extra []attribute.KeyValue) metric.MeasurementOption {
	if m.attrEnricher != nil {
		base = m.attrEnricher(ctx, base)
	}
	return metric.WithAttributes(append(base, extra...)...)
}

// RecordTokens records prompt and completion token usage for model.
func (m *GenAI) RecordTokens(ctx context.Context, model string, promptTokens, completionTokens int64, attrs ...attribute.KeyValue) {
	opt := m.attrs(ctx, []attribute.KeyValue{attribute.String("model", model)}, attrs)
	m.promptTokens.Add(ctx, promptTokens, opt)
	m.completionTokens.Add(ctx, completionTokens, opt)
}

// RecordCall records the final outcome of one task invocation.
func (m *GenAI) RecordCall(ctx context.Context, task string, err error, attrs ...attribute.KeyValue) {
	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	m.calls.Add(ctx, 1, m.attrs(ctx, []attribute.KeyValue{
		attribute.String("task", task),
		attribute.String("outcome", outcome),
	}, attrs))
}

// RecordRetry records one retried attempt of task.
func (m *GenAI) RecordRetry(ctx context.Context, task string, attrs ...attribute.KeyValue) {
	m.retries.Add(ctx, 1, m.attrs(ctx, []attribute.KeyValue{attribute.String("task", task)}, attrs))
}

// RecordJudgment records one judge verdict.
func (m *GenAI) RecordJudgment(ctx context.Context, addressed bool, attrs ...attribute.KeyValue) {
	m.judgments.Add(ctx, 1, m.attrs(ctx, []attribute.KeyValue{attribute.Bool("addressed", addressed)}, attrs))
}
