/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package report

import (
	"fmt"
	"io"

	"chainguard.dev/rebuttal/agents/rebuttal"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"
)

// createStandardTable creates a markdown-style table with left-aligned cells.
func createStandardTable(headers []string, w io.Writer) *tablewriter.Table {
	cfg := tablewriter.Config{
		Header: tw.CellConfig{
			Alignment:  tw.CellAlignment{Global: tw.AlignLeft},
			Formatting: tw.CellFormatting{AutoFormat: tw.Off},
		},
		Row: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignLeft},
		},
		MaxWidth: 120,
		Behavior: tw.Behavior{TrimSpace: tw.On},
	}
	return tablewriter.NewTable(w,
		tablewriter.WithConfig(cfg),
		tablewriter.WithHeader(headers),
		tablewriter.WithRenderer(renderer.NewBlueprint()),
		tablewriter.WithRendition(tw.Rendition{
			Symbols: tw.NewSymbols(tw.StyleMarkdown),
			Borders: tw.Border{
				Left:   tw.On,
				Top:    tw.Off,
				Right:  tw.On,
				Bottom: tw.Off,
			},
		}),
		tablewriter.WithRowAutoWrap(tw.WrapNormal),
	)
}

// WriteTable prints one section per key.
func WriteTable(w io.Writer, r *rebuttal.Report) error {
	for i, res := range r.Results {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "## %s\n\n", res.Key); err != nil {
			return err
		}

		if len(res.Typos) == 0 {
			if _, err := fmt.Fprintln(w, "No typos found."); err != nil {
				return err
			}
		} else {
			table := createStandardTable([]string{"Excerpt", "Issue"}, w)
			for _, t := range res.Typos {
				if err := table.Append([]string{t.Excerpt, t.Description}); err != nil {
					return err
				}
			}
			if err := table.Render(); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}

		if len(res.Scores) == 0 {
			if _, err := fmt.Fprintln(w, "No criticisms found."); err != nil {
				return err
			}
			continue
		}
		table := createStandardTable([]string{"", "Criticism", fmt.Sprintf("Addressed (n=%d)", r.Trials)}, w)
		for _, s := range res.Scores {
			if err := table.Append([]string{Icon(s.Percent), s.Criticism, Percent(s.Percent)}); err != nil {
				return err
			}
		}
		if err := table.Render(); err != nil {
			return err
		}
	}
	return nil
}
