/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

/*
Package result turns the text an oracle returns into a typed value.

Providers that enforce a JSON schema return bare JSON, while providers that
are only instructed to return JSON frequently wrap it in a fenced code block or
surround it with prose. ExtractJSON normalizes all of these, and Extract
decodes the result and runs the type's own Validate method when it has one:

	type comments struct {
		Comments []string `json:"comments"`
	}

	func (c *comments) Validate() error {
		if c.Comments == nil {
			return errors.New(`missing required field "comments"`)
		}
		return nil
	}

	got, err := result.Extract[*comments](reply)

An empty reply yields ErrEmpty; a reply that decodes but fails validation
yields an error wrapping ErrInvalid. Callers map both onto their own
"missing structured result" condition.
*/
package result
