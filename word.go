package chunkopt

import (
	"strings"
	"unicode"

	"github.com/clipperhouse/uax29/v2/words"
)

// Token is a word-level diff element. Start and End are byte offsets of Text
// in the source text.
type Token struct {
	Text       string
	Start, End int
	Newline    bool
}

// Tokenize splits text into tokens on UAX #29 word boundaries. Whitespace is
// dropped except for line breaks, which become Newline tokens.
func Tokenize(text string) []Token {
	var tokens []Token

	iter := words.FromString(text)
	for iter.Next() {
		seg := iter.Value()
		switch {
		case strings.ContainsRune(seg, '\n'):
			tokens = append(tokens, Token{Text: seg, Start: iter.Start(), End: iter.End(), Newline: true})
		case isSpace(seg):
			continue
		default:
			tokens = append(tokens, Token{Text: seg, Start: iter.Start(), End: iter.End()})
		}
	}

	return tokens
}

// TokenEqual reports whether x and y are the same word. All line breaks are
// equal to each other.
func TokenEqual(x, y Token) bool {
	if x.Newline || y.Newline {
		return x.Newline == y.Newline
	}
	return x.Text == y.Text
}

func tokenKey(t Token) string {
	if t.Newline {
		return "\n"
	}
	return t.Text
}

type wordPolicy struct {
	tokensA, tokensB []Token
	textA, textB     string
}

// NewWordPolicy returns a policy that moves boundaries onto whitespace
// between tokens. It keeps chunks to a minimum and, among equal choices,
// touches as few whitespace-delimited runs as possible, so that
// "1.0.123 1.0.155" vs "1.0.123 1.0.134 1.0.155" reports "1.0.134 " as
// inserted rather than "134 1.0.1".
func NewWordPolicy(tokensA, tokensB []Token, textA, textB string) ShiftPolicy {
	return &wordPolicy{tokensA: tokensA, tokensB: tokensB, textA: textA, textB: textB}
}

func (p *wordPolicy) Shift(touch Side, equalForward, equalBackward int, _, range2 Range) int {
	tokens := Select(touch, p.tokensA, p.tokensB)
	text := Select(touch, p.textA, p.textB)
	start := touch.Start(range2)

	if separated(text, tokens[start-1], tokens[start]) {
		return 0
	}

	// [X]A Y[A ZA] -> [XA] YA [ZA]
	for i := 0; i < equalForward; i++ {
		if separated(text, tokens[start+i], tokens[start+i+1]) {
			return i + 1
		}
	}

	// [AX A]Y A[Z] -> [AX] AY [AZ]
	for i := 0; i < equalBackward; i++ {
		if separated(text, tokens[start-i-2], tokens[start-i-1]) {
			return -(i + 1)
		}
	}

	return 0
}

// separated reports whether a line break or whitespace lies between t1 and t2.
func separated(text string, t1, t2 Token) bool {
	if t1.Newline || t2.Newline {
		return true
	}
	if t1.End >= t2.Start {
		return false
	}
	return strings.IndexFunc(text[t1.End:t2.Start], unicode.IsSpace) >= 0
}

func isSpace(s string) bool {
	return strings.TrimFunc(s, unicode.IsSpace) == ""
}
