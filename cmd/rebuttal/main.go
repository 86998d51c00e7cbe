/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package main scores how well author responses address the criticisms in
// their reviews.
//
// Reviews and responses are read from two directories and paired by file
// name without extension. Each criticism is judged TRIALS times and reported
// as the percentage of trials that found it fully addressed.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"chainguard.dev/rebuttal/agents/consensus"
	"chainguard.dev/rebuttal/agents/critique"
	"chainguard.dev/rebuttal/agents/executor"
	"chainguard.dev/rebuttal/agents/inputs"
	"chainguard.dev/rebuttal/agents/judge"
	"chainguard.dev/rebuttal/agents/metrics"
	"chainguard.dev/rebuttal/agents/rebuttal"
	"chainguard.dev/rebuttal/agents/report"
	"chainguard.dev/rebuttal/agents/typos"
	"github.com/chainguard-dev/clog"
	"github.com/sethvargo/go-envconfig"
)

type config struct {
	ReviewsDir   string `env:"REVIEWS_DIR,default=reviews"`
	ResponsesDir string `env:"RESPONSES_DIR,default=responses"`
	PaperPath    string `env:"PAPER_PATH"`

	Trials         int `env:"TRIALS,default=16"`
	MaxConcurrency int `env:"MAX_CONCURRENCY,default=0"`

	ExtractModel    string `env:"EXTRACT_MODEL,default=gpt-4.1"`
	TypoModel       string `env:"TYPO_MODEL,default=gpt-4.1"`
	JudgeModel      string `env:"JUDGE_MODEL,default=o4-mini"`
	ReasoningEffort string `env:"REASONING_EFFORT,default=high"`

	// Vertex AI settings for claude-* and gemini-* models.
	ProjectID string `env:"PROJECT_ID"`
	Region    string `env:"REGION,default=us-east5"`

	Output      string     `env:"OUTPUT,default=table"`
	MetricsFile string     `env:"METRICS_FILE"`
	LogLevel    slog.Level `env:"LOG_LEVEL,default=info"`
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	var cfg config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		clog.FatalContextf(ctx, "processing config: %v", err)
	}

	logger := clog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))
	ctx = clog.WithLogger(ctx, logger)

	if err := run(ctx, cfg, os.Stdout); err != nil {
		if ctx.Err() != nil {
			fmt.Println("Interrupted by user.")
			cancel()
			os.Exit(130)
		}
		clog.FatalContextf(ctx, "%v", err)
	}
}

func run(ctx context.Context, cfg config, stdout io.Writer) (err error) {
	format, err := report.ParseFormat(cfg.Output)
	if err != nil {
		return err
	}

	if cfg.MetricsFile != "" {
		tf, terr := metrics.NewTextfile()
		if terr != nil {
			return terr
		}
		defer func() {
			err = errors.Join(err, tf.Write(cfg.MetricsFile), tf.Shutdown(context.WithoutCancel(ctx)))
		}()
	}

	reviews, err := inputs.LoadDir(cfg.ReviewsDir)
	if err != nil {
		return fmt.Errorf("loading reviews: %w", err)
	}
	responses, err := inputs.LoadDir(cfg.ResponsesDir)
	if err != nil {
		return fmt.Errorf("loading responses: %w", err)
	}
	// Fail on unpaired keys before any client is built.
	if _, err := rebuttal.Pairs(reviews, responses); err != nil {
		return err
	}
	source, err := inputs.LoadAttachment(cfg.PaperPath)
	if err != nil {
		return err
	}

	runner, err := newRunner(ctx, cfg)
	if err != nil {
		return err
	}

	rep, err := runner.Run(ctx, reviews, responses, source)
	if err != nil {
		return err
	}
	return report.Write(stdout, format, rep)
}

func newRunner(ctx context.Context, cfg config) (*rebuttal.Runner, error) {
	client := func(model string) executor.Config {
		return executor.Config{
			Model:           model,
			ReasoningEffort: cfg.ReasoningEffort,
			ProjectID:       cfg.ProjectID,
			Region:          cfg.Region,
		}
	}

	extractClient, err := executor.New(ctx, client(cfg.ExtractModel))
	if err != nil {
		return nil, fmt.Errorf("creating extraction client: %w", err)
	}
	typoClient, err := executor.New(ctx, client(cfg.TypoModel))
	if err != nil {
		return nil, fmt.Errorf("creating typo client: %w", err)
	}
	judgeClient, err := executor.New(ctx, client(cfg.JudgeModel))
	if err != nil {
		return nil, fmt.Errorf("creating judge client: %w", err)
	}

	extractor, err := critique.New(extractClient)
	if err != nil {
		return nil, err
	}
	scanner, err := typos.New(typoClient)
	if err != nil {
		return nil, err
	}
	j, err := judge.New(judgeClient)
	if err != nil {
		return nil, err
	}

	opts := []consensus.Option{
		consensus.WithTrials(cfg.Trials),
		consensus.WithConcurrency(cfg.MaxConcurrency),
	}
	if cfg.LogLevel <= slog.LevelDebug {
		opts = append(opts, consensus.WithRationaleLogging())
	}
	scorer, err := consensus.New(extractor, j, opts...)
	if err != nil {
		return nil, err
	}

	clog.InfoContextf(ctx, "Models: extract=%s typos=%s judge=%s, trials=%d", cfg.ExtractModel, cfg.TypoModel, cfg.JudgeModel, cfg.Trials)
	return rebuttal.New(scanner, scorer)
}
