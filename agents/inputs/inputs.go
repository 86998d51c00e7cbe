/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package inputs loads the documents of a run from disk.
package inputs

import (
	"fmt"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"chainguard.dev/rebuttal/agents/oracle"
)

// Key returns the pairing key for a file: its base name without extension.
func Key(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// LoadDir reads every regular, non-hidden file in dir, keyed by Key. Two
// files with the same key are an error.
func LoadDir(dir string) (map[string]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", dir, err)
	}

	docs := make(map[string]string, len(entries))
	origin := make(map[string]string, len(entries))
	for _, e := range entries {
		if !e.Type().IsRegular() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		k := Key(e.Name())
		if prev, ok := origin[k]; ok {
			return nil, fmt.Errorf("%s: %s and %s share the key %q", dir, prev, e.Name(), k)
		}
		raw, err := os.ReadFile(filepath.Join(dir, e.Name()))
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", e.Name(), err)
		}
		docs[k] = string(raw)
		origin[k] = e.Name()
	}
	return docs, nil
}

// LoadAttachment reads the source document at path. An empty path means no
// source and returns nil.
func LoadAttachment(path string) (*oracle.Attachment, error) {
	if path == "" {
		return nil, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading source document: %w", err)
	}
	return &oracle.Attachment{
		Filename: filepath.Base(path),
		MIMEType: mimeType(path, raw),
		Data:     raw,
	}, nil
}

func mimeType(path string, data []byte) string {
	if t := mime.TypeByExtension(strings.ToLower(filepath.Ext(path))); t != "" {
		if mt, _, err := mime.ParseMediaType(t); err == nil {
			return mt
		}
	}
	mt, _, _ := mime.ParseMediaType(http.DetectContentType(data))
	return mt
}
