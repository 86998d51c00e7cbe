/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

/*
Package oracle defines the boundary between scoring tasks and a language model.

A Client sends one role-tagged Request (system instruction, user prompt,
optional binary attachments, declared output shape) and returns the model's
raw Reply. Provider implementations live under agents/executor.

Executor is the typed task wrapper built on top of a Client. Each task
(extracting criticisms, scanning for typos, judging one criticism) owns one
Executor with a fixed system prompt, a user prompt template, and a response
type whose JSON schema becomes the declared shape:

	type verdict struct {
		Reasoning string `json:"reasoning"`
		Addressed *bool  `json:"comment_is_fully_addressed"`
	}

	exec, err := oracle.NewExecutor[*judgeRequest, verdict](client, "check_criticism", system, prompt)
	...
	v, err := exec.Execute(ctx, req)

Execute retries every failed call, including replies that cannot be decoded
into the response type, through agents/executor/retry.
*/
package oracle
