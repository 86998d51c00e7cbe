/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package googleexecutor

import (
	"fmt"
	"strings"
)

// Option configures the executor.
type Option func(*executor) error

// WithModel sets the model to use.
func WithModel(model string) Option {
	return func(e *executor) error {
		if !strings.HasPrefix(model, "gemini-") {
			return fmt.Errorf("model %q does not appear to be a Gemini model (expected gemini-* format)", model)
		}
		e.model = model
		return nil
	}
}

// WithTemperature sets the temperature (0.0 to 2.0).
func WithTemperature(temperature float32) Option {
	return func(e *executor) error {
		if temperature < 0.0 || temperature > 2.0 {
			return fmt.Errorf("temperature must be between 0.0 and 2.0, got %f", temperature)
		}
		e.temperature = temperature
		return nil
	}
}

// WithMaxOutputTokens sets the maximum number of output tokens.
func WithMaxOutputTokens(tokens int32) Option {
	return func(e *executor) error {
		if tokens <= 0 {
			return fmt.Errorf("max output tokens must be positive, got %d", tokens)
		}
		e.maxOutputTokens = tokens
		return nil
	}
}

// WithThinking sets the thinking token budget.
func WithThinking(budget int32) Option {
	return func(e *executor) error {
		if budget < 0 {
			return fmt.Errorf("thinking budget must be non-negative, got %d", budget)
		}
		e.thinkingBudget = &budget
		return nil
	}
}
