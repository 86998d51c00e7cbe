/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package consensus scores how well a response addresses each criticism of
// a review by sampling the judge n times per criticism.
package consensus

import (
	"context"
	"errors"
	"fmt"

	"chainguard.dev/rebuttal/agents/judge"
	"chainguard.dev/rebuttal/agents/oracle"
	"github.com/chainguard-dev/clog"
	"golang.org/x/sync/errgroup"
)

// DefaultTrials is the number of judge samples per criticism.
const DefaultTrials = 16

// Extractor turns a review into criticisms.
type Extractor interface {
	Extract(ctx context.Context, review string) ([]string, error)
}

// Score is the consensus for one distinct criticism.
type Score struct {
	Criticism string  `json:"criticism" yaml:"criticism"`
	Addressed int     `json:"addressed" yaml:"addressed"`
	Trials    int     `json:"trials" yaml:"trials"`
	Percent   float64 `json:"percent" yaml:"percent"`
}

// Scores are ordered by the first appearance of each criticism.
type Scores []Score

// Map returns criticism -> percentage.
func (s Scores) Map() map[string]float64 {
	m := make(map[string]float64, len(s))
	for _, sc := range s {
		m[sc.Criticism] = sc.Percent
	}
	return m
}

// Tally reduces paired (criticism, verdict) trial results from n trials.
// Entries with equal criticism text are pooled into one Score, and every
// Score's Percent is 100 * trues / n, a multiple of 100/n. A text extracted
// k times pools k*n verdicts against the same divisor.
func Tally(criticisms []string, verdicts []bool, n int) Scores {
	index := make(map[string]int, len(criticisms))
	out := Scores{}
	for i, c := range criticisms {
		pos, ok := index[c]
		if !ok {
			pos = len(out)
			index[c] = pos
			out = append(out, Score{Criticism: c, Trials: n})
		}
		if i < len(verdicts) && verdicts[i] {
			out[pos].Addressed++
		}
	}
	if n < 1 {
		return out
	}
	for i := range out {
		out[i].Percent = 100 * float64(out[i].Addressed) / float64(n)
	}
	return out
}

// Scorer runs extraction and the judge fan-out for one review/response pair.
type Scorer struct {
	extractor    Extractor
	judge        judge.Interface
	trials       int
	concurrency  int
	logRationale bool
}

// Option configures a Scorer.
type Option func(*Scorer) error

// WithTrials sets n, the number of judge samples per criticism.
func WithTrials(n int) Option {
	return func(s *Scorer) error {
		if n < 1 {
			return fmt.Errorf("trials must be at least 1, got %d", n)
		}
		s.trials = n
		return nil
	}
}

// WithConcurrency bounds the number of judge calls in flight for one pair.
// 0 means unbounded.
func WithConcurrency(limit int) Option {
	return func(s *Scorer) error {
		if limit < 0 {
			return fmt.Errorf("concurrency cannot be negative, got %d", limit)
		}
		s.concurrency = limit
		return nil
	}
}

// WithRationaleLogging logs every judgement's reasoning at debug level.
func WithRationaleLogging() Option {
	return func(s *Scorer) error {
		s.logRationale = true
		return nil
	}
}

// New creates a Scorer.
func New(extractor Extractor, j judge.Interface, opts ...Option) (*Scorer, error) {
	if extractor == nil {
		return nil, errors.New("extractor cannot be nil")
	}
	if j == nil {
		return nil, errors.New("judge cannot be nil")
	}
	s := &Scorer{
		extractor: extractor,
		judge:     j,
		trials:    DefaultTrials,
	}
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}
	return s, nil
}

// Trials returns n.
func (s *Scorer) Trials() int { return s.trials }

// Score extracts the criticisms in review and judges each of them n times
// against response. Any failure fails the whole call.
func (s *Scorer) Score(ctx context.Context, review, response string, source *oracle.Attachment) (Scores, error) {
	log := clog.FromContext(ctx)

	criticisms, err := s.extractor.Extract(ctx, review)
	if err != nil {
		return nil, err
	}
	if len(criticisms) == 0 {
		log.Info("No criticisms extracted, nothing to judge")
		return Scores{}, nil
	}

	// Task i judges criticisms[i % len] so every criticism gets n samples.
	total := s.trials * len(criticisms)
	tasks := make([]string, total)
	for i := range tasks {
		tasks[i] = criticisms[i%len(criticisms)]
	}
	verdicts := make([]bool, total)

	log.With("criticisms", len(criticisms), "trials", s.trials, "calls", total).Info("Judging criticisms")

	eg, egCtx := errgroup.WithContext(ctx)
	if s.concurrency > 0 {
		eg.SetLimit(s.concurrency)
	}
	for i, c := range tasks {
		eg.Go(func() error {
			j, err := s.judge.Judge(egCtx, &judge.Request{
				Criticism: c,
				Response:  response,
				Source:    source,
			})
			if err != nil {
				return err
			}
			verdicts[i] = j.FullyAddressed
			if s.logRationale {
				clog.FromContext(egCtx).With("criticism", c, "trial", i/len(criticisms)).
					Debug("Judgement", "verdict", j.String())
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, fmt.Errorf("judging criticisms: %w", err)
	}

	return Tally(tasks, verdicts, s.trials), nil
}
