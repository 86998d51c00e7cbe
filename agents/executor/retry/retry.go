/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package retry wraps a single oracle call with bounded exponential backoff.
package retry

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/chainguard-dev/clog"
)

// ErrRetriesExhausted matches every *RetriesExhaustedError via errors.Is.
var ErrRetriesExhausted = errors.New("retries exhausted")

// RetriesExhaustedError reports that every attempt of an operation failed.
type RetriesExhaustedError struct {
	// Operation names the task, e.g. "check_criticism".
	Operation string
	// Attempts is the number of calls made, including the first.
	Attempts int
	// Err is the failure of the final attempt.
	Err error
}

func (e *RetriesExhaustedError) Error() string {
	return fmt.Sprintf("%s failed after %d retries: %v", e.Operation, e.Attempts-1, e.Err)
}

// Unwrap returns the last failure.
func (e *RetriesExhaustedError) Unwrap() error { return e.Err }

// Is makes errors.Is(err, ErrRetriesExhausted) hold.
func (e *RetriesExhaustedError) Is(target error) bool { return target == ErrRetriesExhausted }

// WaitFunc blocks for d or until ctx is done.
type WaitFunc func(ctx context.Context, d time.Duration) error

// RetryConfig configures retry behavior for oracle calls.
type RetryConfig struct {
	// MaxRetries is the number of retries after the first attempt (default: 3,
	// so four attempts in total). 0 means do not retry at all.
	MaxRetries int
	// BaseBackoff is the wait after the first failure; it doubles per attempt (default: 1s).
	BaseBackoff time.Duration
	// MaxBackoff caps a single wait. 0 means uncapped (default).
	MaxBackoff time.Duration
	// MaxJitter is the maximum random jitter added to each wait (default: 0).
	MaxJitter time.Duration
	// Wait performs the backoff. nil uses a timer that honors ctx.
	Wait WaitFunc
}

// Validate checks that the retry configuration has valid values.
func (c RetryConfig) Validate() error {
	if c.MaxRetries < 0 {
		return errors.New("max retries cannot be negative")
	}
	if c.BaseBackoff < 0 {
		return errors.New("base backoff cannot be negative")
	}
	if c.MaxBackoff < 0 {
		return errors.New("max backoff cannot be negative")
	}
	if c.MaxJitter < 0 {
		return errors.New("max jitter cannot be negative")
	}
	return nil
}

// DefaultRetryConfig waits 1s, 2s and 4s between four attempts.
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxRetries:  3,
		BaseBackoff: time.Second,
	}
}

// Backoff returns the wait after the failed attempt with the given index,
// BaseBackoff * 2^attempt capped at MaxBackoff, without jitter.
func (c RetryConfig) Backoff(attempt int) time.Duration {
	d := c.BaseBackoff << attempt
	if c.MaxBackoff > 0 {
		d = min(d, c.MaxBackoff)
	}
	return d
}

// RetryWithBackoff calls fn until it succeeds, it returns an error that
// isRetryable rejects, ctx is done, or MaxRetries+1 attempts have failed. There
// is no wait after the final attempt. Exhaustion returns a *RetriesExhaustedError.
func RetryWithBackoff[T any](ctx context.Context, cfg RetryConfig, operation string, isRetryable func(error) bool, fn func() (T, error)) (T, error) {
	wait := cfg.Wait
	if wait == nil {
		wait = sleep
	}

	var result T
	var lastErr error
	for attempt := 0; attempt <= cfg.MaxRetries; attempt++ {
		result, lastErr = fn()
		if lastErr == nil {
			return result, nil
		}
		if ctx.Err() != nil {
			return result, ctx.Err()
		}
		if !isRetryable(lastErr) {
			return result, lastErr
		}
		if attempt >= cfg.MaxRetries {
			break
		}

		backoff := cfg.Backoff(attempt) + jitter(cfg.MaxJitter)

		clog.FromContext(ctx).With("operation", operation).
			With("attempt", attempt+1).
			With("max_retries", cfg.MaxRetries).
			With("backoff", backoff).
			With("error", lastErr.Error()).
			Warn("Oracle call failed, retrying")

		if err := wait(ctx, backoff); err != nil {
			return result, err
		}
	}

	return result, &RetriesExhaustedError{
		Operation: operation,
		Attempts:  cfg.MaxRetries + 1,
		Err:       lastErr,
	}
}

func jitter(maxJitter time.Duration) time.Duration {
	if maxJitter <= 0 {
		return 0
	}
	n, err := rand.Int(rand.Reader, big.NewInt(int64(maxJitter)))
	if err != nil {
		return 0
	}
	return time.Duration(n.Int64())
}

func sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
