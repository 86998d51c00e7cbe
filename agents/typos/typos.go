/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package typos scans a response document for spelling and grammar defects.
package typos

import (
	"context"
	"errors"
	"fmt"

	"chainguard.dev/rebuttal/agents/executor/retry"
	"chainguard.dev/rebuttal/agents/oracle"
	"chainguard.dev/rebuttal/agents/promptbuilder"
	"github.com/chainguard-dev/clog"
)

// Task is the oracle task name used for typo scanning.
const Task = "find_typos"

var (
	systemPrompt = promptbuilder.MustNewPrompt(`You are a meticulous copy editor.
Find every spelling mistake, typo and grammatical error in the text you are given.
Quote the smallest excerpt that contains each defect exactly as it appears, and describe the problem and its fix in one short sentence.
Ignore style preferences, LaTeX markup and technical terms that are spelled correctly.
If the text has no defects, return an empty list.`)

	userPrompt = promptbuilder.MustNewPrompt(`Find the typos in the following response.

{{response}}`)
)

// Typo is one defect found in a response.
type Typo struct {
	Excerpt     string `json:"excerpt" yaml:"excerpt" jsonschema:"description=The text containing the defect, quoted verbatim"`
	Description string `json:"description" yaml:"description" jsonschema:"description=What is wrong and how to fix it"`
}

// Findings is the structured answer of the typo task.
type Findings struct {
	Typos []Typo `json:"typos"`
}

// Validate rejects replies without a typos field.
func (f Findings) Validate() error {
	if f.Typos == nil {
		return errors.New("typos field is missing")
	}
	for i, t := range f.Typos {
		if t.Excerpt == "" {
			return fmt.Errorf("typo %d has no excerpt", i)
		}
	}
	return nil
}

type request struct {
	response string
}

func (r *request) Bind(p *promptbuilder.Prompt) (*promptbuilder.Prompt, error) {
	return p.BindTagged("response", "response", r.response)
}

// Option configures the Scanner's executor.
type Option = oracle.Option[*request, Findings]

// WithRetryConfig overrides the retry policy for typo scans.
func WithRetryConfig(cfg retry.RetryConfig) Option {
	return oracle.WithRetryConfig[*request, Findings](cfg)
}

// Scanner finds typos with one oracle call per document.
type Scanner struct {
	exec *oracle.Executor[*request, Findings]
}

// New creates a Scanner that calls client.
func New(client oracle.Client, opts ...Option) (*Scanner, error) {
	exec, err := oracle.NewExecutor[*request, Findings](client, Task, systemPrompt, userPrompt, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating %s executor: %w", Task, err)
	}
	return &Scanner{exec: exec}, nil
}

// Scan returns the defects found in response. The list may be empty.
func (s *Scanner) Scan(ctx context.Context, response string) ([]Typo, error) {
	out, err := s.exec.Execute(ctx, &request{response: response})
	if err != nil {
		return nil, fmt.Errorf("scanning for typos: %w", err)
	}
	clog.FromContext(ctx).With("count", len(out.Typos)).Info("Scanned response for typos")
	return out.Typos, nil
}
