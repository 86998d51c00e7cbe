/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package promptbuilder

// Bindable is implemented by task requests. The oracle executor hands the
// task's template to Bind and sends whatever Bind returns.
type Bindable interface {
	Bind(prompt *Prompt) (*Prompt, error)
}

// Noop passes the prompt through unchanged.
type Noop struct{}

// Bind implements Bindable.
func (Noop) Bind(prompt *Prompt) (*Prompt, error) {
	return prompt, nil
}
