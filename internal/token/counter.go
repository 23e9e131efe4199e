// Package token provides language-model token counting for chunk sizing.
package token

// Counter counts the number of LLM tokens in a text. Counts are a cost
// bound for chunk sizing, not an exact billing figure.
type Counter interface {
	Count(text string) int
}
