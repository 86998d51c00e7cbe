/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package claudeexecutor

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"chainguard.dev/rebuttal/agents/oracle"
	"chainguard.dev/rebuttal/agents/schema"
	"github.com/anthropics/anthropic-sdk-go"
)

// DefaultModel is used when no model is configured.
const DefaultModel = "claude-sonnet-4-5@20250929"

type executor struct {
	client               anthropic.Client
	model                string
	maxTokens            int64
	temperature          float64
	thinkingBudgetTokens *int64 // nil = disabled
}

var _ oracle.Client = (*executor)(nil)

// New returns an oracle.Client backed by client.
func New(client anthropic.Client, opts ...Option) (oracle.Client, error) {
	e := &executor{
		client:      client,
		model:       DefaultModel,
		maxTokens:   8192,
		temperature: 0.1,
	}
	for _, opt := range opts {
		if err := opt(e); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}
	return e, nil
}

// systemPrompt appends the output shape to the task's system instruction.
func systemPrompt(req *oracle.Request) (string, error) {
	if req.Shape.Schema == nil {
		return req.System, nil
	}
	js, err := schema.Indent(req.Shape.Schema)
	if err != nil {
		return "", fmt.Errorf("rendering output schema: %w", err)
	}
	var sb strings.Builder
	sb.WriteString(req.System)
	sb.WriteString("\n\nRespond with a single JSON object and nothing else")
	if req.Shape.Description != "" {
		fmt.Fprintf(&sb, " (%s)", req.Shape.Description)
	}
	sb.WriteString(". It must match this JSON schema:\n")
	sb.WriteString(js)
	return sb.String(), nil
}

func attachmentBlock(a oracle.Attachment) anthropic.ContentBlockParamUnion {
	switch {
	case a.IsPDF():
		blk := anthropic.NewDocumentBlock(anthropic.Base64PDFSourceParam{Data: a.Base64()})
		if a.Filename != "" {
			blk.OfDocument.Title = anthropic.String(a.Filename)
		}
		return blk
	case strings.HasPrefix(a.MIMEType, "image/"):
		return anthropic.NewImageBlockBase64(a.MIMEType, a.Base64())
	default:
		blk := anthropic.NewDocumentBlock(anthropic.PlainTextSourceParam{Data: string(a.Data)})
		if a.Filename != "" {
			blk.OfDocument.Title = anthropic.String(a.Filename)
		}
		return blk
	}
}

// Complete implements oracle.Client.
func (e *executor) Complete(ctx context.Context, req *oracle.Request) (*oracle.Reply, error) {
	system, err := systemPrompt(req)
	if err != nil {
		return nil, err
	}

	content := make([]anthropic.ContentBlockParamUnion, 0, len(req.Attachments)+1)
	for _, a := range req.Attachments {
		content = append(content, attachmentBlock(a))
	}
	content = append(content, anthropic.NewTextBlock(req.Prompt))

	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(e.model),
		MaxTokens: e.maxTokens,
		System:    []anthropic.TextBlockParam{{Text: system}},
		Messages: []anthropic.MessageParam{{
			Role:    anthropic.MessageParamRoleUser,
			Content: content,
		}},
		Temperature: anthropic.Float(e.temperature),
	}
	// Temperature must be 1.0 when thinking is enabled.
	if e.thinkingBudgetTokens != nil {
		params.Temperature = anthropic.Float(1.0)
		params.Thinking = anthropic.ThinkingConfigParamUnion{
			OfEnabled: &anthropic.ThinkingConfigEnabledParam{
				BudgetTokens: *e.thinkingBudgetTokens,
			},
		}
	}

	message, err := e.client.Messages.New(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("claude message: %w", err)
	}

	var text strings.Builder
	for _, block := range message.Content {
		if block.Type == "text" {
			text.WriteString(block.Text)
		}
	}
	if text.Len() == 0 {
		return nil, errors.New("no text content in Claude's response")
	}

	model := string(message.Model)
	if model == "" {
		model = e.model
	}
	return &oracle.Reply{
		Text:         text.String(),
		Model:        model,
		InputTokens:  message.Usage.InputTokens,
		OutputTokens: message.Usage.OutputTokens,
	}, nil
}
