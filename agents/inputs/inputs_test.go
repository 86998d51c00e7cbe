/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package inputs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func write(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte(content), 0o600); err != nil {
		t.Fatalf("WriteFile() = %v", err)
	}
	return p
}

func TestKey(t *testing.T) {
	tests := map[string]string{
		"paper-42.txt":         "paper-42",
		"dir/reviewer.2.md":    "reviewer.2",
		"noext":                "noext",
		"/abs/path/review.TXT": "review",
	}
	for in, want := range tests {
		if got := Key(in); got != want {
			t.Errorf("Key(%q): got = %q, wanted = %q", in, got, want)
		}
	}
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	write(t, dir, "a.txt", "review a")
	write(t, dir, "b.md", "review b\nline 2")
	write(t, dir, ".DS_Store", "junk")
	if err := os.Mkdir(filepath.Join(dir, "sub"), 0o700); err != nil {
		t.Fatal(err)
	}

	got, err := LoadDir(dir)
	if err != nil {
		t.Fatalf("LoadDir() = %v", err)
	}
	want := map[string]string{"a": "review a", "b": "review b\nline 2"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("LoadDir() (-want +got):\n%s", diff)
	}
}

func TestLoadDirErrors(t *testing.T) {
	if _, err := LoadDir(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Error("LoadDir(missing): got = nil, wanted error")
	}

	dir := t.TempDir()
	write(t, dir, "a.txt", "1")
	write(t, dir, "a.md", "2")
	if _, err := LoadDir(dir); err == nil {
		t.Error("LoadDir(duplicate keys): got = nil, wanted error")
	}
}

func TestLoadAttachment(t *testing.T) {
	dir := t.TempDir()

	got, err := LoadAttachment("")
	if err != nil || got != nil {
		t.Errorf("LoadAttachment(\"\"): got = (%v, %v), wanted = (nil, nil)", got, err)
	}

	pdf := write(t, dir, "paper.pdf", "%PDF-1.7\n")
	got, err = LoadAttachment(pdf)
	if err != nil {
		t.Fatalf("LoadAttachment() = %v", err)
	}
	if got.Filename != "paper.pdf" || got.MIMEType != "application/pdf" || string(got.Data) != "%PDF-1.7\n" {
		t.Errorf("LoadAttachment(): got = %+v", got)
	}

	sniffed := write(t, dir, "paper.unknownext", "%PDF-1.7\n")
	got, err = LoadAttachment(sniffed)
	if err != nil {
		t.Fatalf("LoadAttachment() = %v", err)
	}
	if got.MIMEType != "application/pdf" {
		t.Errorf("sniffed MIMEType: got = %q, wanted = application/pdf", got.MIMEType)
	}

	if _, err := LoadAttachment(filepath.Join(dir, "nope.pdf")); err == nil {
		t.Error("LoadAttachment(missing): got = nil, wanted error")
	}
}
