/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package critique turns a free-text review into a list of individual
// criticisms with one oracle call.
package critique

import (
	"context"
	"errors"
	"fmt"

	"chainguard.dev/rebuttal/agents/executor/retry"
	"chainguard.dev/rebuttal/agents/oracle"
	"chainguard.dev/rebuttal/agents/promptbuilder"
	"github.com/chainguard-dev/clog"
)

// Task is the oracle task name used for extraction.
const Task = "extract_criticisms"

var (
	systemPrompt = promptbuilder.MustNewPrompt(`You are a research assistant helping authors respond to peer review.
Read the review and produce a comprehensive list of all questions, weaknesses, limitations, and all other criticism raised by the reviewer.
Each entry should be one self-contained comment, phrased as close to the reviewer's own words as possible.
Do not merge separate points and do not include praise or summaries of the paper.
If the review contains no criticism, return an empty list.`)

	userPrompt = promptbuilder.MustNewPrompt(`Extract every criticism from the following review.

{{review}}`)
)

// Comments is the structured answer of the extraction task.
type Comments struct {
	Comments []string `json:"comments" jsonschema:"description=Every question, weakness, limitation or other criticism raised in the review"`
}

// Validate rejects replies without a comments field. An empty list is valid.
func (c Comments) Validate() error {
	if c.Comments == nil {
		return errors.New("comments field is missing")
	}
	return nil
}

type request struct {
	review string
}

func (r *request) Bind(p *promptbuilder.Prompt) (*promptbuilder.Prompt, error) {
	return p.BindTagged("review", "review", r.review)
}

// Extractor pulls criticisms out of reviews.
type Extractor struct {
	exec *oracle.Executor[*request, Comments]
}

// Option configures the Extractor's executor.
type Option = oracle.Option[*request, Comments]

// WithRetryConfig overrides the retry policy for extraction calls.
func WithRetryConfig(cfg retry.RetryConfig) Option {
	return oracle.WithRetryConfig[*request, Comments](cfg)
}

// New creates an Extractor that calls client.
func New(client oracle.Client, opts ...Option) (*Extractor, error) {
	exec, err := oracle.NewExecutor[*request, Comments](client, Task, systemPrompt, userPrompt, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating %s executor: %w", Task, err)
	}
	return &Extractor{exec: exec}, nil
}

// Extract returns the criticisms in review, in the order the model listed
// them. Duplicates are kept.
func (e *Extractor) Extract(ctx context.Context, review string) ([]string, error) {
	out, err := e.exec.Execute(ctx, &request{review: review})
	if err != nil {
		return nil, fmt.Errorf("extracting criticisms: %w", err)
	}
	clog.FromContext(ctx).With("count", len(out.Comments)).Info("Extracted criticisms")
	return out.Comments, nil
}
