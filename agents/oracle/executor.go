/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package oracle

import (
	"context"
	"errors"
	"fmt"

	"chainguard.dev/rebuttal/agents/agenttrace"
	"chainguard.dev/rebuttal/agents/executor/retry"
	"chainguard.dev/rebuttal/agents/metrics"
	"chainguard.dev/rebuttal/agents/promptbuilder"
	"chainguard.dev/rebuttal/agents/result"
	"chainguard.dev/rebuttal/agents/schema"
	"github.com/chainguard-dev/clog"
)

// SystemBinder is implemented by requests whose system prompt has
// placeholders of its own.
type SystemBinder interface {
	BindSystem(system *promptbuilder.Prompt) (*promptbuilder.Prompt, error)
}

// Executor runs one task against a Client and decodes the reply into Resp.
type Executor[Req promptbuilder.Bindable, Resp any] struct {
	client       Client
	task         string
	system       *promptbuilder.Prompt
	prompt       *promptbuilder.Prompt
	shape        Shape
	retryConfig  retry.RetryConfig
	genaiMetrics *metrics.GenAI
}

// NewExecutor creates an Executor for task. The declared output shape is the
// JSON schema of Resp.
func NewExecutor[Req promptbuilder.Bindable, Resp any](
	client Client,
	task string,
	system, prompt *promptbuilder.Prompt,
	opts ...Option[Req, Resp],
) (*Executor[Req, Resp], error) {
	switch {
	case client == nil:
		return nil, errors.New("client cannot be nil")
	case task == "":
		return nil, errors.New("task name cannot be empty")
	case system == nil:
		return nil, errors.New("system prompt cannot be nil")
	case prompt == nil:
		return nil, errors.New("prompt cannot be nil")
	}

	e := &Executor[Req, Resp]{
		client: client,
		task:   task,
		system: system,
		prompt: prompt,
		shape: Shape{
			Name:   task,
			Schema: schema.ReflectType[Resp](),
		},
		retryConfig:  retry.DefaultRetryConfig(),
		genaiMetrics: metrics.NewGenAI("chainguard.rebuttal"),
	}
	e.genaiMetrics.SetAttributeEnricher(agenttrace.Enricher)

	for _, opt := range opts {
		if err := opt(e); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}
	return e, nil
}

// Render binds req into the executor's prompts without calling the model.
func (e *Executor[Req, Resp]) Render(req Req) (*Request, error) {
	bound, err := req.Bind(e.prompt)
	if err != nil {
		return nil, fmt.Errorf("failed to bind request to prompt: %w", err)
	}
	prompt, err := bound.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build prompt: %w", err)
	}

	system := e.system
	if sb, ok := any(req).(SystemBinder); ok {
		if system, err = sb.BindSystem(system); err != nil {
			return nil, fmt.Errorf("failed to bind request to system prompt: %w", err)
		}
	}
	sys, err := system.Build()
	if err != nil {
		return nil, fmt.Errorf("building system prompt: %w", err)
	}

	out := &Request{
		Task:   e.task,
		System: sys,
		Prompt: prompt,
		Shape:  e.shape,
	}
	if a, ok := any(req).(Attachable); ok {
		out.Attachments = a.Attachments()
	}
	return out, nil
}

// Execute renders req, calls the client with retries, and decodes the reply.
func (e *Executor[Req, Resp]) Execute(ctx context.Context, req Req) (response Resp, err error) {
	r, err := e.Render(req)
	if err != nil {
		return response, err
	}

	ctx, trace := agenttrace.StartTrace(ctx, e.task, r.Prompt)
	defer func() {
		e.genaiMetrics.RecordCall(ctx, e.task, err)
		trace.Complete(err)
	}()

	clog.FromContext(ctx).With("task", e.task, "prompt_length", len(r.Prompt), "attachments", len(r.Attachments)).
		Debug("Starting oracle call")

	attempt := 0
	return retry.RetryWithBackoff(ctx, e.retryConfig, e.task, IsRetryable, func() (Resp, error) {
		var zero Resp
		if attempt > 0 {
			e.genaiMetrics.RecordRetry(ctx, e.task)
		}
		attempt++
		trace.RecordAttempt()

		reply, err := e.client.Complete(ctx, r)
		if err != nil {
			return zero, &Error{Task: e.task, Err: err}
		}
		if reply.InputTokens > 0 || reply.OutputTokens > 0 {
			e.genaiMetrics.RecordTokens(ctx, reply.Model, reply.InputTokens, reply.OutputTokens)
			trace.RecordTokenUsage(reply.Model, reply.InputTokens, reply.OutputTokens)
		}
		trace.RecordReply(reply.Text)

		out, err := result.Extract[Resp](reply.Text)
		if err != nil {
			return zero, &Error{Task: e.task, Err: fmt.Errorf("%w: %w", ErrMissingStructuredResult, err)}
		}
		return out, nil
	})
}
