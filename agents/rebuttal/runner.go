/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package rebuttal

import (
	"context"
	"errors"
	"fmt"
	"time"

	"chainguard.dev/rebuttal/agents/agenttrace"
	"chainguard.dev/rebuttal/agents/consensus"
	"chainguard.dev/rebuttal/agents/oracle"
	"chainguard.dev/rebuttal/agents/typos"
	"github.com/chainguard-dev/clog"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// TypoScanner finds defects in a response.
type TypoScanner interface {
	Scan(ctx context.Context, response string) ([]typos.Typo, error)
}

// Scorer produces consensus scores for one pair.
type Scorer interface {
	Score(ctx context.Context, review, response string, source *oracle.Attachment) (consensus.Scores, error)
	Trials() int
}

// Result is the outcome for one key.
type Result struct {
	Key    string           `json:"key" yaml:"key"`
	Typos  []typos.Typo     `json:"typos" yaml:"typos"`
	Scores consensus.Scores `json:"scores" yaml:"scores"`
}

// Report is the outcome of a run, with results sorted by key.
type Report struct {
	RunID    string        `json:"run_id" yaml:"run_id"`
	Trials   int           `json:"trials" yaml:"trials"`
	Duration time.Duration `json:"duration" yaml:"duration"`
	Results  []*Result     `json:"results" yaml:"results"`
}

// Runner scores every pair of a run.
type Runner struct {
	scanner TypoScanner
	scorer  Scorer
	newID   func() string
}

// New creates a Runner.
func New(scanner TypoScanner, scorer Scorer) (*Runner, error) {
	if scanner == nil {
		return nil, errors.New("typo scanner cannot be nil")
	}
	if scorer == nil {
		return nil, errors.New("scorer cannot be nil")
	}
	return &Runner{scanner: scanner, scorer: scorer, newID: uuid.NewString}, nil
}

// Run pairs reviews with responses and scores every pair. source is the
// optional paper shared by all judgments.
func (r *Runner) Run(ctx context.Context, reviews, responses map[string]string, source *oracle.Attachment) (*Report, error) {
	pairs, err := Pairs(reviews, responses)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	report := &Report{
		RunID:   r.newID(),
		Trials:  r.scorer.Trials(),
		Results: make([]*Result, len(pairs)),
	}
	log := clog.FromContext(ctx).With("run_id", report.RunID)
	log.With("pairs", len(pairs), "trials", report.Trials, "with_source", source != nil).Info("Starting run")

	eg, egCtx := errgroup.WithContext(ctx)
	for i, p := range pairs {
		eg.Go(func() error {
			pctx := agenttrace.WithRunContext(egCtx, agenttrace.RunContext{RunID: report.RunID, PairKey: p.Key})
			pctx = clog.WithLogger(pctx, log.With("pair", p.Key))

			res, err := r.runPair(pctx, p, source)
			if err != nil {
				return fmt.Errorf("pair %s: %w", p.Key, err)
			}
			report.Results[i] = res
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	report.Duration = time.Since(start)
	log.With("duration", report.Duration).Info("Run complete")
	return report, nil
}

// runPair scans for typos and scores criticisms concurrently.
func (r *Runner) runPair(ctx context.Context, p Pair, source *oracle.Attachment) (*Result, error) {
	res := &Result{Key: p.Key}

	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		found, err := r.scanner.Scan(egCtx, p.Response)
		if err != nil {
			return err
		}
		res.Typos = found
		return nil
	})
	eg.Go(func() error {
		scores, err := r.scorer.Score(egCtx, p.Review, p.Response, source)
		if err != nil {
			return err
		}
		res.Scores = scores
		return nil
	})
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return res, nil
}
