/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package judge decides whether a response fully addresses one criticism.
//
// Each call to Judge is one independent trial: one oracle call, retried on
// failure, with no memoization and no state shared between calls. The judge
// sees the criticism and the response inside <comment> and <response> blocks,
// and optionally the paper itself as an attachment.
//
//	j, err := judge.New(client)
//	if err != nil {
//		return err
//	}
//	verdict, err := j.Judge(ctx, &judge.Request{
//		Criticism: "The evaluation lacks a strong baseline.",
//		Response:  rebuttalText,
//		Source:    paper,
//	})
//
// Callers aggregate only Judgement.FullyAddressed; Reasoning is kept for logs.
package judge
