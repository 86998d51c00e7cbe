/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package openaiexecutor

import (
	"fmt"
)

// Option configures the executor.
type Option func(*executor) error

// WithModel sets the model name.
func WithModel(model string) Option {
	return func(e *executor) error {
		if model == "" {
			return fmt.Errorf("model cannot be empty")
		}
		e.model = model
		return nil
	}
}

// WithReasoningEffort sets the effort for reasoning models (low, medium, high).
// It is ignored for other models.
func WithReasoningEffort(effort string) Option {
	return func(e *executor) error {
		switch effort {
		case "", "minimal", "low", "medium", "high":
			e.reasoningEffort = effort
			return nil
		default:
			return fmt.Errorf("unknown reasoning effort %q", effort)
		}
	}
}

// WithTemperature sets the sampling temperature (0.0 to 2.0). Reasoning
// models do not accept a temperature, so it is not sent to them.
func WithTemperature(temp float64) Option {
	return func(e *executor) error {
		if temp < 0.0 || temp > 2.0 {
			return fmt.Errorf("temperature must be between 0.0 and 2.0, got %f", temp)
		}
		e.temperature = &temp
		return nil
	}
}

// WithMaxTokens caps completion tokens, reasoning included.
func WithMaxTokens(tokens int64) Option {
	return func(e *executor) error {
		if tokens <= 0 {
			return fmt.Errorf("max tokens must be positive, got %d", tokens)
		}
		e.maxTokens = tokens
		return nil
	}
}
