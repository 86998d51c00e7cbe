/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package judge

import (
	"context"
	"errors"
	"fmt"

	"chainguard.dev/rebuttal/agents/oracle"
)

// Request is one criticism to check against one response.
type Request struct {
	Criticism string `json:"criticism"`
	Response  string `json:"response"`

	// Source is the paper the review and response discuss. nil judges from
	// the text alone.
	Source *oracle.Attachment `json:"-"`
}

// Validate rejects requests that cannot be judged. Empty criticism or
// response text is still judged: an empty response addresses nothing.
func (r *Request) Validate() error {
	if r == nil {
		return errors.New("request cannot be nil")
	}
	return nil
}

// Judgement is the outcome of one trial.
type Judgement struct {
	Reasoning      string `json:"reasoning"`
	FullyAddressed bool   `json:"comment_is_fully_addressed"`
}

// String renders the judgement for logs.
func (j *Judgement) String() string {
	mark := "not addressed"
	if j.FullyAddressed {
		mark = "addressed"
	}
	if j.Reasoning == "" {
		return mark
	}
	return fmt.Sprintf("%s - %s", mark, j.Reasoning)
}

// Interface defines the contract for judge implementations.
type Interface interface {
	// Judge runs one independent trial for request.
	Judge(ctx context.Context, request *Request) (*Judgement, error)
}
