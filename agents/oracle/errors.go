/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package oracle

import (
	"errors"
	"fmt"
)

// ErrMissingStructuredResult means the reply was empty, was not decodable
// into the task's response type, or lacked a required field.
var ErrMissingStructuredResult = errors.New("missing structured result")

// Error is a failed oracle call. It covers transport failures, rate
// limiting, refusals, and unusable replies.
type Error struct {
	Task string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("oracle %s: %v", e.Task, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// IsRetryable reports whether err is an oracle failure. Every oracle failure
// is retried.
func IsRetryable(err error) bool {
	var oe *Error
	return errors.As(err, &oe)
}
