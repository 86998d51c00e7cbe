/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package report_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"chainguard.dev/rebuttal/agents/consensus"
	"chainguard.dev/rebuttal/agents/rebuttal"
	"chainguard.dev/rebuttal/agents/report"
	"chainguard.dev/rebuttal/agents/typos"
	"gopkg.in/yaml.v3"
)

func sample() *rebuttal.Report {
	return &rebuttal.Report{
		RunID:  "run-1",
		Trials: 4,
		Results: []*rebuttal.Result{{
			Key:   "paper-a",
			Typos: []typos.Typo{{Excerpt: "teh baseline", Description: "teh -> the"}},
			Scores: consensus.Scores{
				{Criticism: "missing baseline", Addressed: 3, Trials: 4, Percent: 75},
				{Criticism: "no ablation", Addressed: 0, Trials: 4, Percent: 0},
				{Criticism: "unclear notation", Addressed: 4, Trials: 4, Percent: 100},
			},
		}, {
			Key:    "paper-b",
			Typos:  []typos.Typo{},
			Scores: consensus.Scores{},
		}},
	}
}

func TestIcon(t *testing.T) {
	tests := []struct {
		percent float64
		want    string
	}{
		{percent: 100, want: "✅"},
		{percent: 93.75, want: "⚠️"},
		{percent: 50.5, want: "⚠️"},
		{percent: 50, want: "❌"},
		{percent: 0, want: "❌"},
	}
	for _, tt := range tests {
		if got := report.Icon(tt.percent); got != tt.want {
			t.Errorf("Icon(%v): got = %q, wanted = %q", tt.percent, got, tt.want)
		}
	}
}

func TestPercent(t *testing.T) {
	for in, want := range map[float64]string{75: "75%", 6.25: "6.25%", 0: "0%", 100: "100%"} {
		if got := report.Percent(in); got != want {
			t.Errorf("Percent(%v): got = %q, wanted = %q", in, got, want)
		}
	}
}

func TestParseFormat(t *testing.T) {
	for _, ok := range []string{"table", "json", "yaml"} {
		if _, err := report.ParseFormat(ok); err != nil {
			t.Errorf("ParseFormat(%q) = %v", ok, err)
		}
	}
	if _, err := report.ParseFormat("csv"); err == nil {
		t.Error("ParseFormat(csv): got = nil, wanted error")
	}
}

func TestWriteTable(t *testing.T) {
	var buf bytes.Buffer
	if err := report.Write(&buf, report.FormatTable, sample()); err != nil {
		t.Fatalf("Write() = %v", err)
	}
	out := buf.String()
	t.Logf("table:\n%s", out)

	for _, want := range []string{
		"## paper-a",
		"teh baseline",
		"missing baseline",
		"75%",
		"✅",
		"⚠️",
		"❌",
		"Addressed (n=4)",
		"## paper-b",
		"No typos found.",
		"No criticisms found.",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("table missing %q", want)
		}
	}
	if strings.Index(out, "paper-a") > strings.Index(out, "paper-b") {
		t.Error("sections out of key order")
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := report.Write(&buf, report.FormatJSON, sample()); err != nil {
		t.Fatalf("Write() = %v", err)
	}
	var got struct {
		RunID   string `json:"run_id"`
		Results []struct {
			Key    string `json:"key"`
			Scores []struct {
				Criticism string  `json:"criticism"`
				Percent   float64 `json:"percent"`
			} `json:"scores"`
		} `json:"results"`
	}
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("Unmarshal() = %v", err)
	}
	if got.RunID != "run-1" || len(got.Results) != 2 || got.Results[0].Scores[0].Percent != 75 {
		t.Errorf("JSON: got = %+v", got)
	}
}

func TestWriteYAML(t *testing.T) {
	var buf bytes.Buffer
	if err := report.Write(&buf, report.FormatYAML, sample()); err != nil {
		t.Fatalf("Write() = %v", err)
	}
	var got map[string]any
	if err := yaml.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("Unmarshal() = %v", err)
	}
	if got["run_id"] != "run-1" || got["trials"] != 4 {
		t.Errorf("YAML: got = %v", got)
	}
	if !strings.Contains(buf.String(), "criticism: missing baseline") {
		t.Errorf("YAML missing criticism:\n%s", buf.String())
	}
}
