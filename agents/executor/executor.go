/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package executor picks an oracle.Client implementation from a model name.
package executor

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"chainguard.dev/rebuttal/agents/executor/claudeexecutor"
	"chainguard.dev/rebuttal/agents/executor/googleexecutor"
	"chainguard.dev/rebuttal/agents/executor/openaiexecutor"
	"chainguard.dev/rebuttal/agents/oracle"
	"github.com/anthropics/anthropic-sdk-go"
	anthropicoption "github.com/anthropics/anthropic-sdk-go/option"
	"github.com/anthropics/anthropic-sdk-go/vertex"
	"github.com/openai/openai-go"
	openaioption "github.com/openai/openai-go/option"
	"google.golang.org/genai"
)

// Provider identifies the SDK that serves a model.
type Provider string

const (
	ProviderOpenAI Provider = "openai"
	ProviderClaude Provider = "claude"
	ProviderGemini Provider = "gemini"
)

// Config selects and configures a provider.
type Config struct {
	// Model is the model name. claude-* models go to Anthropic, gemini-*
	// models to Gemini, and everything else to OpenAI.
	Model string

	// ReasoningEffort applies to OpenAI reasoning models.
	ReasoningEffort string

	// ProjectID and Region route claude-* and gemini-* models through Vertex
	// AI. Without a project, the providers use their API keys from the
	// environment.
	ProjectID string
	Region    string
}

// ProviderFor returns the provider that serves model.
func ProviderFor(model string) Provider {
	m := strings.ToLower(model)
	switch {
	case strings.HasPrefix(m, "claude-"):
		return ProviderClaude
	case strings.HasPrefix(m, "gemini-"):
		return ProviderGemini
	default:
		return ProviderOpenAI
	}
}

// New creates an oracle.Client for cfg.Model. SDK-level retries are disabled.
func New(ctx context.Context, cfg Config) (oracle.Client, error) {
	if cfg.Model == "" {
		return nil, errors.New("model cannot be empty")
	}

	switch ProviderFor(cfg.Model) {
	case ProviderClaude:
		opts := []anthropicoption.RequestOption{anthropicoption.WithMaxRetries(0)}
		if cfg.ProjectID != "" {
			opts = append(opts, vertex.WithGoogleAuth(ctx, cfg.Region, cfg.ProjectID))
		}
		return claudeexecutor.New(anthropic.NewClient(opts...), claudeexecutor.WithModel(cfg.Model))

	case ProviderGemini:
		gc := &genai.ClientConfig{Backend: genai.BackendGeminiAPI}
		if cfg.ProjectID != "" {
			gc = &genai.ClientConfig{
				Project:  cfg.ProjectID,
				Location: cfg.Region,
				Backend:  genai.BackendVertexAI,
			}
		}
		client, err := genai.NewClient(ctx, gc)
		if err != nil {
			return nil, fmt.Errorf("creating genai client: %w", err)
		}
		return googleexecutor.New(client, googleexecutor.WithModel(cfg.Model))

	default:
		client := openai.NewClient(openaioption.WithMaxRetries(0))
		return openaiexecutor.New(client,
			openaiexecutor.WithModel(cfg.Model),
			openaiexecutor.WithReasoningEffort(cfg.ReasoningEffort))
	}
}
