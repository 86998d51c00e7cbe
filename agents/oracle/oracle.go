/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package oracle

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/invopop/jsonschema"
)

// Client sends a single request to a language model.
type Client interface {
	Complete(ctx context.Context, req *Request) (*Reply, error)
}

// Request is one role-tagged exchange with the model.
type Request struct {
	// Task names the operation for logs, traces and errors.
	Task string

	System      string
	Prompt      string
	Attachments []Attachment
	Shape       Shape
}

// Shape is the structured output the model is asked to produce.
type Shape struct {
	Name        string
	Description string
	Schema      *jsonschema.Schema
}

// Reply is the model's raw answer.
type Reply struct {
	Text         string
	Model        string
	InputTokens  int64
	OutputTokens int64
}

// Attachment is a binary document sent alongside the prompt.
type Attachment struct {
	Filename string
	MIMEType string
	Data     []byte
}

// IsPDF reports whether the attachment is a PDF document.
func (a Attachment) IsPDF() bool {
	return strings.EqualFold(a.MIMEType, "application/pdf")
}

// Base64 returns the standard base64 encoding of Data.
func (a Attachment) Base64() string {
	return base64.StdEncoding.EncodeToString(a.Data)
}

// DataURL returns the attachment as a data: URL.
func (a Attachment) DataURL() string {
	return fmt.Sprintf("data:%s;base64,%s", a.MIMEType, a.Base64())
}

// Attachable is implemented by task requests that carry attachments.
type Attachable interface {
	Attachments() []Attachment
}
