package tokenizer

import (
	"github.com/shapestone/shape-core/pkg/tokenizer"
)

// NewTokenizer creates a tokenizer for a single request line.
// Matchers are tried in order:
// 1. SP (space separator)
// 2. Text (everything up to the next space)
//
// Spaces are significant, so the default whitespace skipper is not used.
// Line endings are not matched: callers cut the line at CRLF first, and a
// bare CR or LF inside the line is ordinary text.
func NewTokenizer() tokenizer.Tokenizer {
	return tokenizer.NewTokenizerWithoutWhitespace(
		SPMatcher(),
		TextMatcher(),
	)
}

// NewTokenizerWithStream creates a request-line tokenizer using a pre-configured stream.
func NewTokenizerWithStream(stream tokenizer.Stream) tokenizer.Tokenizer {
	tok := NewTokenizer()
	tok.InitializeFromStream(stream)
	return tok
}

// SPMatcher matches a single space character.
func SPMatcher() tokenizer.Matcher {
	return func(stream tokenizer.Stream) *tokenizer.Token {
		r, ok := stream.PeekChar()
		if !ok {
			return nil
		}
		if r == ' ' {
			stream.NextChar()
			return tokenizer.NewToken(TokenSP, []rune{' '})
		}
		return nil
	}
}

// TextMatcher matches any sequence of characters until SP or EOS.
func TextMatcher() tokenizer.Matcher {
	return func(stream tokenizer.Stream) *tokenizer.Token {
		var value []rune

		for {
			r, ok := stream.PeekChar()
			if !ok || r == ' ' {
				break
			}
			stream.NextChar()
			value = append(value, r)
		}

		if len(value) == 0 {
			return nil
		}

		return tokenizer.NewToken(TokenText, value)
	}
}

// Fields tokenizes line and returns its space-separated fields.
// Every SP token closes a field, so adjacent spaces yield empty fields
// and the result always holds at least one element.
func Fields(line string) []string {
	tok := NewTokenizer()
	tok.Initialize(line)
	tokens, _ := tok.Tokenize()

	fields := []string{""}
	for _, t := range tokens {
		switch t.Kind() {
		case TokenSP:
			fields = append(fields, "")
		default:
			fields[len(fields)-1] += t.ValueString()
		}
	}
	return fields
}
