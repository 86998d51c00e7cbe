/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package claudeexecutor

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"chainguard.dev/rebuttal/agents/oracle"
	"chainguard.dev/rebuttal/agents/schema"
	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

type typoList struct {
	Typos []struct {
		Excerpt     string `json:"excerpt"`
		Description string `json:"description"`
	} `json:"typos"`
}

func newTestServer(t *testing.T, status int, body string, got *map[string]any) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		if got != nil {
			if err := json.Unmarshal(raw, got); err != nil {
				t.Errorf("request body: %v", err)
			}
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newClient(srv *httptest.Server) anthropic.Client {
	return anthropic.NewClient(
		option.WithBaseURL(srv.URL),
		option.WithAPIKey("test"),
		option.WithMaxRetries(0),
	)
}

const message = `{
  "id": "msg_1",
  "type": "message",
  "role": "assistant",
  "model": "claude-sonnet-4-5",
  "content": [{"type": "text", "text": "{\"typos\": []}"}],
  "stop_reason": "end_turn",
  "usage": {"input_tokens": 42, "output_tokens": 7}
}`

func TestComplete(t *testing.T) {
	var body map[string]any
	srv := newTestServer(t, http.StatusOK, message, &body)

	exec, err := New(newClient(srv))
	if err != nil {
		t.Fatalf("New() = %v", err)
	}
	reply, err := exec.Complete(context.Background(), &oracle.Request{
		Task:   "find_typos",
		System: "Find typos.",
		Prompt: "<response>\nteh\n</response>",
		Attachments: []oracle.Attachment{
			{Filename: "paper.pdf", MIMEType: "application/pdf", Data: []byte("%PDF")},
			{Filename: "notes.txt", MIMEType: "text/plain", Data: []byte("notes")},
		},
		Shape: oracle.Shape{Name: "find_typos", Schema: schema.ReflectType[typoList]()},
	})
	if err != nil {
		t.Fatalf("Complete() = %v", err)
	}
	if reply.Text != `{"typos": []}` || reply.InputTokens != 42 || reply.OutputTokens != 7 {
		t.Errorf("reply: got = %+v", reply)
	}
	if reply.Model != "claude-sonnet-4-5" {
		t.Errorf("Model: got = %q, wanted = claude-sonnet-4-5", reply.Model)
	}

	sys, _ := body["system"].([]any)
	if len(sys) != 1 {
		t.Fatalf("system blocks: got = %d, wanted = 1", len(sys))
	}
	sysText, _ := sys[0].(map[string]any)["text"].(string)
	if !strings.HasPrefix(sysText, "Find typos.") || !strings.Contains(sysText, `"typos"`) {
		t.Errorf("system: got = %q, wanted instruction plus schema", sysText)
	}

	msgs, _ := body["messages"].([]any)
	content, _ := msgs[0].(map[string]any)["content"].([]any)
	if len(content) != 3 {
		t.Fatalf("content blocks: got = %d, wanted = 3", len(content))
	}
	wantTypes := []string{"document", "document", "text"}
	for i, c := range content {
		if got := c.(map[string]any)["type"]; got != wantTypes[i] {
			t.Errorf("block %d type: got = %v, wanted = %s", i, got, wantTypes[i])
		}
	}
	pdf, _ := content[0].(map[string]any)["source"].(map[string]any)
	if pdf["type"] != "base64" || pdf["data"] != "JVBERg==" {
		t.Errorf("pdf source: got = %v", pdf)
	}
	if got := body["temperature"]; got != 0.1 {
		t.Errorf("temperature: got = %v, wanted = 0.1", got)
	}
}

func TestCompleteThinking(t *testing.T) {
	var body map[string]any
	srv := newTestServer(t, http.StatusOK, message, &body)

	exec, err := New(newClient(srv), WithMaxTokens(16000), WithThinking(4096))
	if err != nil {
		t.Fatalf("New() = %v", err)
	}
	if _, err := exec.Complete(context.Background(), &oracle.Request{System: "s", Prompt: "p"}); err != nil {
		t.Fatalf("Complete() = %v", err)
	}
	if got := body["temperature"]; got != 1.0 {
		t.Errorf("temperature: got = %v, wanted = 1", got)
	}
	thinking, _ := body["thinking"].(map[string]any)
	if thinking["budget_tokens"] != float64(4096) {
		t.Errorf("thinking: got = %v, wanted budget 4096", thinking)
	}
}

func TestCompleteErrors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{name: "overloaded", status: 529, body: `{"type":"error","error":{"type":"overloaded_error","message":"Overloaded"}}`},
		{name: "rate limited", status: http.StatusTooManyRequests, body: `{"type":"error","error":{"type":"rate_limit_error","message":"slow"}}`},
		{name: "no text", status: http.StatusOK, body: `{"id":"m","type":"message","role":"assistant","model":"claude-sonnet-4-5","content":[],"usage":{"input_tokens":1,"output_tokens":0}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newTestServer(t, tt.status, tt.body, nil)
			exec, err := New(newClient(srv))
			if err != nil {
				t.Fatalf("New() = %v", err)
			}
			if _, err := exec.Complete(context.Background(), &oracle.Request{System: "s", Prompt: "p"}); err == nil {
				t.Error("Complete(): got = nil, wanted error")
			}
		})
	}
}

func TestOptions(t *testing.T) {
	tests := []struct {
		name    string
		opts    []Option
		wantErr bool
	}{
		{name: "model", opts: []Option{WithModel("claude-opus-4-1@20250805")}},
		{name: "not claude", opts: []Option{WithModel("gpt-4.1")}, wantErr: true},
		{name: "max tokens", opts: []Option{WithMaxTokens(32000)}},
		{name: "too many tokens", opts: []Option{WithMaxTokens(128000)}, wantErr: true},
		{name: "temperature", opts: []Option{WithTemperature(0.7)}},
		{name: "bad temperature", opts: []Option{WithTemperature(1.5)}, wantErr: true},
		{name: "thinking too small", opts: []Option{WithThinking(512)}, wantErr: true},
		{name: "thinking above max", opts: []Option{WithMaxTokens(2048), WithThinking(4096)}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(anthropic.NewClient(option.WithAPIKey("test")), tt.opts...)
			if (err != nil) != tt.wantErr {
				t.Errorf("New(): got = %v, wantErr = %v", err, tt.wantErr)
			}
		})
	}
}
