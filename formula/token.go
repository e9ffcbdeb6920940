package formula

import (
	"fmt"
	"strings"
)

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokNumber
	tokWord   // unit abbreviation, counter reference or field name
	tokQuoted // date or time literal, quotes stripped
	tokPlus
	tokMinus
	tokStar
	tokSlash
	tokLParen
	tokRParen
)

// token carries the byte offset and width of its source span; diagnostics
// reuse them for the caret marker under the offending operand.
type token struct {
	kind  tokenKind
	text  string
	pos   int
	width int
}

func (t token) String() string {
	if t.kind == tokEOF {
		return "end of formula"
	}
	return fmt.Sprintf("%q", t.text)
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isWordStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isWordPart(c byte) bool { return isWordStart(c) || isDigit(c) }

// lex tokenizes a formula string. Numbers and word tokens may abut with no
// separating space (22kwh, 8counter); the split point is the first non-digit,
// non-dot byte.
func lex(input string) ([]token, error) {
	var tokens []token
	i := 0
	for i < len(input) {
		c := input[i]

		if c == ' ' || c == '\t' {
			i++
			continue
		}

		switch c {
		case '+', '-', '*', '/', '(', ')':
			kind := map[byte]tokenKind{
				'+': tokPlus, '-': tokMinus, '*': tokStar,
				'/': tokSlash, '(': tokLParen, ')': tokRParen,
			}[c]
			tokens = append(tokens, token{kind, string(c), i, 1})
			i++
			continue
		}

		if isDigit(c) {
			start := i
			for i < len(input) && (isDigit(input[i]) || input[i] == '.') {
				i++
			}
			text := input[start:i]
			if strings.Count(text, ".") > 1 {
				return nil, fmt.Errorf("%w: malformed number %q at offset %d", ErrParse, text, start)
			}
			tokens = append(tokens, token{tokNumber, text, start, i - start})
			continue
		}

		if isWordStart(c) {
			start := i
			for i < len(input) && isWordPart(input[i]) {
				i++
			}
			tokens = append(tokens, token{tokWord, input[start:i], start, i - start})
			continue
		}

		if c == '\'' {
			start := i
			end := strings.IndexByte(input[i+1:], '\'')
			if end < 0 {
				return nil, fmt.Errorf("%w: unterminated quote at offset %d", ErrParse, i)
			}
			i += end + 2
			tokens = append(tokens, token{tokQuoted, input[start+1 : i-1], start, i - start})
			continue
		}

		return nil, fmt.Errorf("%w: unexpected character %q at offset %d", ErrParse, c, i)
	}
	tokens = append(tokens, token{tokEOF, "", len(input), 0})
	return tokens, nil
}
