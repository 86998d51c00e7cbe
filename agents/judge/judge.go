/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package judge

import (
	"context"
	"errors"
	"fmt"

	"chainguard.dev/rebuttal/agents/agenttrace"
	"chainguard.dev/rebuttal/agents/executor/retry"
	"chainguard.dev/rebuttal/agents/metrics"
	"chainguard.dev/rebuttal/agents/oracle"
	"chainguard.dev/rebuttal/agents/promptbuilder"
)

// Task is the oracle task name used for each trial.
const Task = "check_criticism"

// verdict is the wire shape. Addressed is a pointer so a missing field is
// told apart from false.
type verdict struct {
	Reasoning string `json:"reasoning" jsonschema:"description=Short justification of the verdict"`
	Addressed *bool  `json:"comment_is_fully_addressed" jsonschema:"description=True only if the response fully addresses the comment"`
}

func (v verdict) Validate() error {
	if v.Addressed == nil {
		return errors.New("comment_is_fully_addressed field is missing")
	}
	return nil
}

// binding adapts Request to the prompt templates.
type binding struct {
	*Request
}

func (b binding) Bind(p *promptbuilder.Prompt) (*promptbuilder.Prompt, error) {
	p, err := p.BindTagged("comment", "comment", b.Criticism)
	if err != nil {
		return nil, err
	}
	return p.BindTagged("response", "response", b.Response)
}

func (b binding) BindSystem(p *promptbuilder.Prompt) (*promptbuilder.Prompt, error) {
	if b.Source != nil {
		return p.BindStringLiteral("materials", "- Full paper as pdf file\n")
	}
	return p.BindStringLiteral("materials", "")
}

func (b binding) Attachments() []oracle.Attachment {
	if b.Source == nil {
		return nil
	}
	return []oracle.Attachment{*b.Source}
}

// Option configures the judge's executor.
type Option = oracle.Option[binding, verdict]

// WithRetryConfig overrides the retry policy for each trial.
func WithRetryConfig(cfg retry.RetryConfig) Option {
	return oracle.WithRetryConfig[binding, verdict](cfg)
}

type judge struct {
	exec         *oracle.Executor[binding, verdict]
	genaiMetrics *metrics.GenAI
}

var _ Interface = (*judge)(nil)

// New creates a judge that calls client.
func New(client oracle.Client, opts ...Option) (Interface, error) {
	exec, err := oracle.NewExecutor[binding, verdict](client, Task, systemPrompt, userPrompt, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating %s executor: %w", Task, err)
	}
	m := metrics.NewGenAI("chainguard.rebuttal")
	m.SetAttributeEnricher(agenttrace.Enricher)
	return &judge{exec: exec, genaiMetrics: m}, nil
}

// Judge implements Interface.
func (j *judge) Judge(ctx context.Context, request *Request) (*Judgement, error) {
	if err := request.Validate(); err != nil {
		return nil, fmt.Errorf("invalid judge request: %w", err)
	}
	v, err := j.exec.Execute(ctx, binding{Request: request})
	if err != nil {
		return nil, fmt.Errorf("judging criticism: %w", err)
	}
	j.genaiMetrics.RecordJudgment(ctx, *v.Addressed)
	return &Judgement{Reasoning: v.Reasoning, FullyAddressed: *v.Addressed}, nil
}
