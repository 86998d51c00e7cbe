/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

/*
Package claudeexecutor implements oracle.Client on the Anthropic Messages API.

The client may talk to the Anthropic API directly or to Claude on Vertex AI:

	client := anthropic.NewClient(
	    vertex.WithGoogleAuth(ctx, region, projectID),
	    option.WithMaxRetries(0),
	)
	exec, err := claudeexecutor.New(client, claudeexecutor.WithModel("claude-sonnet-4-5@20250929"))

Claude has no response-format parameter here, so the declared output shape is
appended to the system prompt as a JSON schema. PDF attachments are sent as
base64 document blocks, images as image blocks, and anything else as a
plain-text document.
*/
package claudeexecutor
