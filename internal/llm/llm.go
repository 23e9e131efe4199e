// Package llm wraps the OpenAI-compatible chat API used for answer
// synthesis. The rest of the module only sees the Oracle interface, so
// tests can substitute a canned completion.
package llm

import "context"

// Oracle produces a completion from a system and a user prompt.
type Oracle interface {
	Complete(ctx context.Context, system, user string) (string, error)
}
