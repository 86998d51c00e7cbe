/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package googleexecutor implements oracle.Client on Gemini through the
// google.golang.org/genai SDK.
//
// The declared output shape is converted to a genai.Schema and sent with an
// application/json response MIME type; attachments are sent as inline blobs.
//
//	client, err := genai.NewClient(ctx, &genai.ClientConfig{
//		Project:  projectID,
//		Location: region,
//		Backend:  genai.BackendVertexAI,
//	})
//	exec, err := googleexecutor.New(client, googleexecutor.WithModel("gemini-2.5-pro"))
package googleexecutor
