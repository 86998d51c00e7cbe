/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package googleexecutor

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"chainguard.dev/rebuttal/agents/oracle"
	"google.golang.org/genai"
)

// DefaultModel is used when no model is configured.
const DefaultModel = "gemini-2.5-flash"

type executor struct {
	client          *genai.Client
	model           string
	temperature     float32
	maxOutputTokens int32
	thinkingBudget  *int32
}

var _ oracle.Client = (*executor)(nil)

// New returns an oracle.Client backed by client.
func New(client *genai.Client, opts ...Option) (oracle.Client, error) {
	if client == nil {
		return nil, errors.New("client cannot be nil")
	}
	e := &executor{
		client:          client,
		model:           DefaultModel,
		temperature:     0.1,
		maxOutputTokens: 8192,
	}
	for _, opt := range opts {
		if err := opt(e); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}
	return e, nil
}

func (e *executor) config(req *oracle.Request) (*genai.GenerateContentConfig, error) {
	config := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(e.temperature),
		MaxOutputTokens: e.maxOutputTokens,
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: req.System}},
		},
	}
	if req.Shape.Schema != nil {
		s, err := convertSchema(req.Shape.Schema)
		if err != nil {
			return nil, fmt.Errorf("converting output shape %s: %w", req.Shape.Name, err)
		}
		config.ResponseMIMEType = "application/json"
		config.ResponseSchema = s
	}
	if e.thinkingBudget != nil {
		config.ThinkingConfig = &genai.ThinkingConfig{ThinkingBudget: e.thinkingBudget}
	}
	return config, nil
}

// Complete implements oracle.Client.
func (e *executor) Complete(ctx context.Context, req *oracle.Request) (*oracle.Reply, error) {
	config, err := e.config(req)
	if err != nil {
		return nil, err
	}

	parts := make([]*genai.Part, 0, len(req.Attachments)+1)
	for _, a := range req.Attachments {
		parts = append(parts, &genai.Part{InlineData: &genai.Blob{
			DisplayName: a.Filename,
			MIMEType:    a.MIMEType,
			Data:        a.Data,
		}})
	}
	parts = append(parts, &genai.Part{Text: req.Prompt})

	resp, err := e.client.Models.GenerateContent(ctx, e.model, []*genai.Content{{
		Role:  genai.RoleUser,
		Parts: parts,
	}}, config)
	if err != nil {
		return nil, fmt.Errorf("generate content: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, errors.New("no candidates in Gemini response")
	}

	var text strings.Builder
	for _, p := range resp.Candidates[0].Content.Parts {
		if p.Text != "" && !p.Thought {
			text.WriteString(p.Text)
		}
	}
	if text.Len() == 0 {
		return nil, fmt.Errorf("no text in Gemini response (finish reason %s)", resp.Candidates[0].FinishReason)
	}

	reply := &oracle.Reply{Text: text.String(), Model: e.model}
	if resp.UsageMetadata != nil {
		reply.InputTokens = int64(resp.UsageMetadata.PromptTokenCount)
		reply.OutputTokens = int64(resp.UsageMetadata.CandidatesTokenCount)
	}
	return reply, nil
}
