package calculator

import (
	"strconv"
	"strings"
)

// punctKinds maps the single-character operator and punctuation tokens to
// their kinds. These are tried before any other matcher.
var punctKinds = map[byte]Kind{
	'+': KindPlus,
	'-': KindMinus,
	'*': KindAsterisk,
	'/': KindSlash,
	'(': KindLParen,
	')': KindRParen,
	',': KindComma,
}

// funcNames is the fixed set of built-in function names, in match priority
// order. Matching is a case-insensitive prefix test; the emitted token keeps
// the original-case text.
var funcNames = [...]string{"sq", "if", "type"}

// tokenize scans src into tokens. Whitespace (space and tab only) is
// consumed after each token, never before one, so leading whitespace is a
// LexError just as any other unmatched character is.
func tokenize(src string) ([]token, error) {
	if src == "" {
		return nil, &EmptyInputError{}
	}
	var toks []token
	i := 0
	for i < len(src) {
		if kind, ok := punctKinds[src[i]]; ok {
			toks = append(toks, punctToken(kind, src[i]))
			i = skipBlank(src, i+1)
			continue
		}
		if src[i] == '"' || src[i] == '\'' {
			s, n, err := scanString(src, i)
			if err != nil {
				return nil, err
			}
			if n > 0 {
				toks = append(toks, stringToken(s))
				i = skipBlank(src, i+n)
				continue
			}
			// Unterminated string: not an error by itself. Fall through to
			// the remaining matchers, which cannot match a quote, so this
			// position reports a LexError below.
		}
		if name, n := matchFunc(src[i:]); n > 0 {
			toks = append(toks, funcToken(name))
			i = skipBlank(src, i+n)
			continue
		}
		if lit, isFloat := matchNumber(src[i:]); lit != "" {
			tok, err := numberToken(lit, isFloat)
			if err != nil {
				return nil, &LexError{Input: src, Offset: i}
			}
			toks = append(toks, tok)
			i = skipBlank(src, i+len(lit))
			continue
		}
		return nil, &LexError{Input: src, Offset: i}
	}
	return toks, nil
}

// skipBlank advances past a run of spaces and tabs. Newlines are not
// whitespace here.
func skipBlank(src string, i int) int {
	for i < len(src) && (src[i] == ' ' || src[i] == '\t') {
		i++
	}
	return i
}

// scanString scans a quoted string starting at src[i], expanding backslash
// escapes. It returns the expanded text and the number of source bytes
// consumed, including both quotes. An unterminated string returns n == 0
// and no error, so the caller can fall through to other matchers. An
// unrecognized escape is fatal.
func scanString(src string, i int) (s string, n int, err error) {
	quote := src[i]
	var buf strings.Builder
	j := i + 1
	for j < len(src) {
		c := src[j]
		switch c {
		case quote:
			return buf.String(), j + 1 - i, nil
		case '\\':
			if j+1 >= len(src) {
				// A trailing backslash cannot be an escape; the string is
				// unterminated.
				return "", 0, nil
			}
			e := src[j+1]
			switch e {
			case '\\':
				buf.WriteByte('\\')
			case 'n':
				buf.WriteByte('\n')
			case 't':
				buf.WriteByte('\t')
			case '"':
				buf.WriteByte('"')
			case '\'':
				buf.WriteByte('\'')
			default:
				return "", 0, &EscapeError{Input: src, Offset: j + 1, Char: e}
			}
			j += 2
		default:
			buf.WriteByte(c)
			j++
		}
	}
	return "", 0, nil
}

// matchFunc matches a built-in function name prefix, case-insensitively,
// returning the original-case text and its length.
func matchFunc(rem string) (string, int) {
	for _, name := range funcNames {
		if len(rem) >= len(name) && strings.EqualFold(rem[:len(name)], name) {
			return rem[:len(name)], len(name)
		}
	}
	return "", 0
}

// matchNumber matches a float (digits, a dot, then optional digits; "1." is
// legal) or, failing that, a plain integer. It returns the matched literal
// and whether it is a float; an empty literal means no match.
func matchNumber(rem string) (lit string, isFloat bool) {
	n := 0
	for n < len(rem) && isDigit(rem[n]) {
		n++
	}
	if n == 0 {
		return "", false
	}
	if n < len(rem) && rem[n] == '.' {
		n++
		for n < len(rem) && isDigit(rem[n]) {
			n++
		}
		return rem[:n], true
	}
	return rem[:n], false
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

// numberToken parses a matched numeric literal. Digit runs only fail to
// parse when they overflow the 64-bit data model; the caller reports that
// position as unmatchable.
func numberToken(lit string, isFloat bool) (token, error) {
	if isFloat {
		x, err := strconv.ParseFloat(lit, 64)
		if err != nil {
			return token{}, err
		}
		return floatToken(x), nil
	}
	n, err := strconv.ParseInt(lit, 10, 64)
	if err != nil {
		return token{}, err
	}
	return integerToken(n), nil
}

// EmptyInputError indicates tokenize was called with no text.
type EmptyInputError struct{}

func (err *EmptyInputError) Error() string {
	return "empty input"
}

// LexError indicates that no matcher advanced at some position of the
// input. It implements InputError.
type LexError struct {
	// Input is the full original input.
	Input string
	// Offset is the 0-based byte offset of the unmatched character.
	Offset int
}

func (err *LexError) Error() string {
	return "unknown sequence at offset " + strconv.Itoa(err.Offset) + ":\n" +
		err.Input + "\n" + strings.Repeat(" ", err.Offset) + "^"
}

func (err *LexError) Pos() int {
	return err.Offset
}

// EscapeError indicates an unrecognized backslash escape inside a string
// literal. It implements InputError.
type EscapeError struct {
	// Input is the full original input.
	Input string
	// Offset is the 0-based byte offset of the character following the
	// backslash.
	Offset int
	// Char is the unrecognized escape character.
	Char byte
}

func (err *EscapeError) Error() string {
	return "unrecognized escape sequence \\" + string(err.Char) +
		" at offset " + strconv.Itoa(err.Offset)
}

func (err *EscapeError) Pos() int {
	return err.Offset
}
