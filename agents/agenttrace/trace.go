/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package agenttrace

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	oteltrace "go.opentelemetry.io/otel/trace"
)

// Trace covers one task invocation, including all of its retry attempts.
type Trace struct {
	ID           string     `json:"id"`
	Task         string     `json:"task"`
	Prompt       string     `json:"prompt"`
	RunContext   RunContext `json:"run_context,omitempty"`
	Model        string     `json:"model,omitempty"`
	Attempts     int        `json:"attempts"`
	InputTokens  int64      `json:"input_tokens"`
	OutputTokens int64      `json:"output_tokens"`
	Reply        string     `json:"reply,omitempty"`
	Error        error      `json:"error,omitempty"`
	StartTime    time.Time  `json:"start_time"`
	EndTime      time.Time  `json:"end_time"`

	tracer Tracer
	mu     sync.Mutex
	span   oteltrace.Span
}

// StartTrace opens a trace and its span, reporting to the tracer on ctx.
// The returned context carries the span.
func StartTrace(ctx context.Context, task, prompt string) (context.Context, *Trace) {
	rc := GetRunContext(ctx)

	tr := otel.Tracer("chainguard.rebuttal.agenttrace",
		oteltrace.WithInstrumentationVersion("1.0.0"))

	attrs := []attribute.KeyValue{
		attribute.String("oracle.task", task),
		attribute.Int("oracle.prompt_length", len(prompt)),
	}
	if rc.RunID != "" {
		attrs = append(attrs, attribute.String("run_id", rc.RunID))
	}
	if rc.PairKey != "" {
		attrs = append(attrs, attribute.String("pair", rc.PairKey))
	}
	ctx, span := tr.Start(ctx, "oracle.call", oteltrace.WithAttributes(attrs...))

	return ctx, &Trace{
		ID:         generateTraceID(),
		Task:       task,
		Prompt:     prompt,
		RunContext: rc,
		StartTime:  time.Now(),
		tracer:     TracerFromContext(ctx),
		span:       span,
	}
}

// RecordAttempt notes that one more call was issued.
func (t *Trace) RecordAttempt() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.Attempts++
}

// RecordTokenUsage accumulates token usage across attempts and mirrors it on the span.
func (t *Trace) RecordTokenUsage(model string, inputTokens, outputTokens int64) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.Model = model
	t.InputTokens += inputTokens
	t.OutputTokens += outputTokens
	if t.span != nil {
		t.span.SetAttributes(
			attribute.String("model", model),
			attribute.Int64("tokens.input", t.InputTokens),
			attribute.Int64("tokens.output", t.OutputTokens),
		)
	}
}

// RecordReply keeps the raw text of the latest reply.
func (t *Trace) RecordReply(reply string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.Reply = reply
}

// Complete ends the span and hands the trace to its tracer.
func (t *Trace) Complete(err error) {
	t.mu.Lock()
	t.Error = err
	t.EndTime = time.Now()
	span := t.span
	t.mu.Unlock()

	if span != nil {
		span.SetAttributes(attribute.Int("oracle.attempts", t.Attempts))
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		} else {
			span.SetStatus(codes.Ok, "")
		}
		span.End()
	}

	if t.tracer != nil {
		t.tracer.RecordTrace(t)
	}
}

// Duration is the elapsed time, up to now if the trace is still open.
func (t *Trace) Duration() time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.EndTime.IsZero() {
		return time.Since(t.StartTime)
	}
	return t.EndTime.Sub(t.StartTime)
}

// String renders the trace for logs, truncating long text.
func (t *Trace) String() string {
	d := t.Duration()

	t.mu.Lock()
	defer t.mu.Unlock()

	var sb strings.Builder
	fmt.Fprintf(&sb, "=== Trace %s (%s) ===\n", t.ID, t.Task)
	if t.RunContext.PairKey != "" {
		fmt.Fprintf(&sb, "Pair: %s\n", t.RunContext.PairKey)
	}
	fmt.Fprintf(&sb, "Prompt: %q\n", truncate(t.Prompt, 200))
	fmt.Fprintf(&sb, "Duration: %v, attempts: %d\n", d, t.Attempts)
	if t.Model != "" {
		fmt.Fprintf(&sb, "Model: %s (tokens in=%d out=%d)\n", t.Model, t.InputTokens, t.OutputTokens)
	}
	if t.Error != nil {
		fmt.Fprintf(&sb, "Error: %v\n", t.Error)
	} else {
		fmt.Fprintf(&sb, "Reply: %s\n", truncate(t.Reply, 500))
	}
	return sb.String()
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-3] + "..."
}

// generateTraceID returns YYYYMMDD-HHMMSS-RRRRRRRR with a random hex suffix.
func generateTraceID() string {
	b := make([]byte, 4)
	if _, err := rand.Read(b); err != nil {
		return time.Now().Format("20060102-150405.000000")
	}
	return fmt.Sprintf("%s-%s", time.Now().Format("20060102-150405"), hex.EncodeToString(b))
}
