/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package agenttrace

import (
	"context"

	"github.com/chainguard-dev/clog"
)

// Tracer receives completed traces.
type Tracer interface {
	RecordTrace(trace *Trace)
}

// Callback is invoked with each completed trace.
type Callback func(*Trace)

type byCodeTracer struct {
	callbacks []Callback
}

// ByCode returns a Tracer that calls each callback, in order, for every trace.
func ByCode(callbacks ...Callback) Tracer {
	return &byCodeTracer{callbacks: callbacks}
}

func (b *byCodeTracer) RecordTrace(trace *Trace) {
	for _, cb := range b.callbacks {
		if cb != nil {
			cb(trace)
		}
	}
}

type tracerKey struct{}

// WithTracer attaches tracer to ctx.
func WithTracer(ctx context.Context, tracer Tracer) context.Context {
	return context.WithValue(ctx, tracerKey{}, tracer)
}

// TracerFromContext returns the tracer on ctx, or one that logs with clog.
func TracerFromContext(ctx context.Context) Tracer {
	if t, ok := ctx.Value(tracerKey{}).(Tracer); ok {
		return t
	}
	return NewDefaultTracer(ctx)
}

// NewDefaultTracer logs each trace at debug level.
func NewDefaultTracer(ctx context.Context) Tracer {
	logger := clog.FromContext(ctx)
	return ByCode(func(trace *Trace) {
		logger.With(
			"trace_id", trace.ID,
			"task", trace.Task,
			"model", trace.Model,
			"attempts", trace.Attempts,
			"duration_ms", trace.Duration().Milliseconds(),
		).Debug("Oracle trace completed", "trace", trace.String())
	})
}
