// Package tokenizer provides request-line tokenization using Shape's tokenizer framework.
package tokenizer

// Token type constants for the request line.
// The request line is a run of text fields separated by single spaces.
const (
	TokenSP   = "SP"   // single space separator
	TokenText = "Text" // method, target, version or any extra field
)
