/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package oracle

import (
	"fmt"

	"chainguard.dev/rebuttal/agents/executor/retry"
	"chainguard.dev/rebuttal/agents/metrics"
	"chainguard.dev/rebuttal/agents/promptbuilder"
)

// Option configures an Executor.
type Option[Req promptbuilder.Bindable, Resp any] func(*Executor[Req, Resp]) error

// WithRetryConfig overrides the default retry policy.
func WithRetryConfig[Req promptbuilder.Bindable, Resp any](cfg retry.RetryConfig) Option[Req, Resp] {
	return func(e *Executor[Req, Resp]) error {
		if err := cfg.Validate(); err != nil {
			return err
		}
		e.retryConfig = cfg
		return nil
	}
}

// WithShapeDescription sets the description sent with the output shape.
func WithShapeDescription[Req promptbuilder.Bindable, Resp any](desc string) Option[Req, Resp] {
	return func(e *Executor[Req, Resp]) error {
		e.shape.Description = desc
		return nil
	}
}

// WithAttributeEnricher adds contextual attributes to every metric recorded
// by the executor.
func WithAttributeEnricher[Req promptbuilder.Bindable, Resp any](enricher metrics.AttributeEnricher) Option[Req, Resp] {
	return func(e *Executor[Req, Resp]) error {
		if enricher == nil {
			return fmt.Errorf("attribute enricher cannot be nil")
		}
		e.genaiMetrics.SetAttributeEnricher(enricher)
		return nil
	}
}
