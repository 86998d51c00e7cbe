/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package main

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"chainguard.dev/rebuttal/agents/rebuttal"
	"github.com/google/go-cmp/cmp"
	"github.com/sethvargo/go-envconfig"
)

func TestConfigDefaults(t *testing.T) {
	var cfg config
	if err := envconfig.ProcessWith(context.Background(), &envconfig.Config{
		Target:   &cfg,
		Lookuper: envconfig.MapLookuper(map[string]string{}),
	}); err != nil {
		t.Fatalf("ProcessWith() = %v", err)
	}
	want := config{
		ReviewsDir:      "reviews",
		ResponsesDir:    "responses",
		Trials:          16,
		ExtractModel:    "gpt-4.1",
		TypoModel:       "gpt-4.1",
		JudgeModel:      "o4-mini",
		ReasoningEffort: "high",
		Region:          "us-east5",
		Output:          "table",
		LogLevel:        slog.LevelInfo,
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("config (-want +got):\n%s", diff)
	}
}

func TestConfigOverrides(t *testing.T) {
	var cfg config
	if err := envconfig.ProcessWith(context.Background(), &envconfig.Config{
		Target: &cfg,
		Lookuper: envconfig.MapLookuper(map[string]string{
			"TRIALS":      "4",
			"JUDGE_MODEL": "claude-sonnet-4-5",
			"LOG_LEVEL":   "debug",
			"OUTPUT":      "json",
		}),
	}); err != nil {
		t.Fatalf("ProcessWith() = %v", err)
	}
	if cfg.Trials != 4 || cfg.JudgeModel != "claude-sonnet-4-5" || cfg.LogLevel != slog.LevelDebug || cfg.Output != "json" {
		t.Errorf("config: got = %+v", cfg)
	}
}

func TestRunPreconditionBeforeClients(t *testing.T) {
	dir := t.TempDir()
	reviews := filepath.Join(dir, "reviews")
	responses := filepath.Join(dir, "responses")
	for _, d := range []string{reviews, responses} {
		if err := os.Mkdir(d, 0o700); err != nil {
			t.Fatal(err)
		}
	}
	for name, d := range map[string]string{"a.txt": reviews, "b.txt": reviews} {
		if err := os.WriteFile(filepath.Join(d, name), []byte("review"), 0o600); err != nil {
			t.Fatal(err)
		}
	}
	for _, name := range []string{"a.txt", "c.txt"} {
		if err := os.WriteFile(filepath.Join(responses, name), []byte("response"), 0o600); err != nil {
			t.Fatal(err)
		}
	}

	cfg := config{
		ReviewsDir:   reviews,
		ResponsesDir: responses,
		Trials:       1,
		Output:       "table",
		// An empty model would fail client construction, so reaching it
		// would surface a different error.
	}
	var out bytes.Buffer
	err := run(context.Background(), cfg, &out)
	if !errors.Is(err, rebuttal.ErrPrecondition) {
		t.Fatalf("run(): got = %v, wanted = ErrPrecondition", err)
	}
	if out.Len() != 0 {
		t.Errorf("stdout: got = %q, wanted empty", out.String())
	}
}

func TestRunBadOutput(t *testing.T) {
	if err := run(context.Background(), config{Output: "csv"}, &bytes.Buffer{}); err == nil {
		t.Error("run(csv): got = nil, wanted error")
	}
}
