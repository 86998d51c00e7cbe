/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package openaiexecutor

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"chainguard.dev/rebuttal/agents/oracle"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/shared"
)

// DefaultModel is used when no model is configured.
const DefaultModel = "gpt-4.1"

type executor struct {
	client          openai.Client
	model           string
	reasoningEffort string
	temperature     *float64
	maxTokens       int64
}

var _ oracle.Client = (*executor)(nil)

// New returns an oracle.Client backed by client.
func New(client openai.Client, opts ...Option) (oracle.Client, error) {
	e := &executor{
		client: client,
		model:  DefaultModel,
	}
	for _, opt := range opts {
		if err := opt(e); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}
	return e, nil
}

// isReasoningModel matches the o-series and gpt-5 families.
func isReasoningModel(model string) bool {
	return strings.HasPrefix(model, "o") || strings.HasPrefix(model, "gpt-5")
}

func (e *executor) params(req *oracle.Request) openai.ChatCompletionNewParams {
	parts := []openai.ChatCompletionContentPartUnionParam{openai.TextContentPart(req.Prompt)}
	for _, a := range req.Attachments {
		if strings.HasPrefix(a.MIMEType, "image/") {
			parts = append(parts, openai.ImageContentPart(openai.ChatCompletionContentPartImageImageURLParam{
				URL: a.DataURL(),
			}))
			continue
		}
		parts = append(parts, openai.FileContentPart(openai.ChatCompletionContentPartFileFileParam{
			Filename: openai.String(a.Filename),
			FileData: openai.String(a.DataURL()),
		}))
	}

	params := openai.ChatCompletionNewParams{
		Model: shared.ChatModel(e.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(req.System),
			openai.UserMessage(parts),
		},
	}

	if req.Shape.Schema != nil {
		js := shared.ResponseFormatJSONSchemaJSONSchemaParam{
			Name:   req.Shape.Name,
			Schema: req.Shape.Schema,
			Strict: openai.Bool(true),
		}
		if req.Shape.Description != "" {
			js.Description = openai.String(req.Shape.Description)
		}
		params.ResponseFormat = openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONSchema: &shared.ResponseFormatJSONSchemaParam{JSONSchema: js},
		}
	}

	if isReasoningModel(e.model) {
		if e.reasoningEffort != "" {
			params.ReasoningEffort = shared.ReasoningEffort(e.reasoningEffort)
		}
	} else if e.temperature != nil {
		params.Temperature = openai.Float(*e.temperature)
	}
	if e.maxTokens > 0 {
		params.MaxCompletionTokens = openai.Int(e.maxTokens)
	}
	return params
}

// Complete implements oracle.Client.
func (e *executor) Complete(ctx context.Context, req *oracle.Request) (*oracle.Reply, error) {
	resp, err := e.client.Chat.Completions.New(ctx, e.params(req))
	if err != nil {
		return nil, fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, errors.New("no choices in OpenAI response")
	}
	msg := resp.Choices[0].Message
	if msg.Refusal != "" {
		return nil, fmt.Errorf("model refused: %s", msg.Refusal)
	}

	model := resp.Model
	if model == "" {
		model = e.model
	}
	return &oracle.Reply{
		Text:         msg.Content,
		Model:        model,
		InputTokens:  resp.Usage.PromptTokens,
		OutputTokens: resp.Usage.CompletionTokens,
	}, nil
}
