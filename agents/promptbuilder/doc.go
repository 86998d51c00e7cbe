/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

/*
Package promptbuilder builds oracle prompts from developer-owned templates.

Templates are string literals with {{name}} placeholders. Reviewer and author
text never reaches a template directly: it is bound through an encoder
(XML character data) so a review that happens to contain "{{criticism}}" or a
closing tag cannot rewrite the prompt around it. Binding is single pass, and
every bind returns a new Prompt, so a package-level template can be shared by
any number of concurrent judgments.

	var checkPrompt = promptbuilder.MustNewPrompt(`{{comment}}

	{{response}}

	Does the response fully address the comment?`)

	p, err := checkPrompt.BindTagged("comment", "comment", criticism)
	if err != nil {
		return err
	}
	p, err = p.BindTagged("response", "response", response)
	if err != nil {
		return err
	}
	text, err := p.Build()
*/
package promptbuilder
