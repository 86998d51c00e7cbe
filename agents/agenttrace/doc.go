/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

/*
Package agenttrace records one Trace per oracle call.

A Trace covers every attempt the retry wrapper makes for a single task
invocation: the rendered prompt, the model that answered, token usage, the raw
reply and the final error. Each trace is also an OpenTelemetry span named
"oracle.call", so a run exported to a tracing backend shows the fan-out of
judgments under each review/response pair.

Run-level labels travel on the context:

	ctx = agenttrace.WithRunContext(ctx, agenttrace.RunContext{
		RunID:   runID,
		PairKey: "paper-42-reviewer-2",
	})

Completed traces go to the Tracer on the context, or to a default tracer that
logs them at debug level with clog:

	ctx = agenttrace.WithTracer(ctx, agenttrace.ByCode(func(tr *agenttrace.Trace) {
		fmt.Println(tr.Task, tr.Duration())
	}))
*/
package agenttrace
