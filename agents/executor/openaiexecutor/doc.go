/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

/*
Package openaiexecutor implements oracle.Client on the OpenAI Chat Completions API.

Requests are sent with a strict json_schema response format built from the
task's declared shape. Attachments travel as base64 file content parts:

	client := openai.NewClient(option.WithMaxRetries(0))
	exec, err := openaiexecutor.New(client,
		openaiexecutor.WithModel("o4-mini"),
		openaiexecutor.WithReasoningEffort("high"),
	)

The SDK's own retries should stay disabled; agents/oracle retries every
failed call itself.
*/
package openaiexecutor
