package calculator

import "strconv"

// Kind classifies a token. Every token's payload type is determined by its
// kind: Integer carries an int64, Float a float64, String and Func carry
// text, and operator and punctuation kinds carry the matched character.
type Kind int

const (
	KindNone Kind = iota
	// KindInteger is an integer literal.
	KindInteger
	// KindFloat is a floating-point literal.
	KindFloat
	// KindString is a string literal.
	KindString
	// KindPlus, KindMinus, KindAsterisk, and KindSlash are the binary
	// arithmetic operators.
	KindPlus
	KindMinus
	KindAsterisk
	KindSlash
	// KindLParen and KindRParen group subexpressions and delimit function
	// argument lists.
	KindLParen
	KindRParen
	// KindFunc is a built-in function name.
	KindFunc
	// KindComma separates function arguments.
	KindComma
)

var kindNames = [...]string{
	KindNone:     "None",
	KindInteger:  "Integer",
	KindFloat:    "Float",
	KindString:   "String",
	KindPlus:     "Plus",
	KindMinus:    "Minus",
	KindAsterisk: "Asterisk",
	KindSlash:    "Slash",
	KindLParen:   "LParen",
	KindRParen:   "RParen",
	KindFunc:     "Func",
	KindComma:    "Comma",
}

// String returns the kind's name. The type builtin reports these names to
// the user, so they are part of the package's behavior, not just its
// diagnostics.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
	return kindNames[k]
}

// token is a tagged value. kind selects which payload field is meaningful;
// the constructors below are the only places that pairing is established.
type token struct {
	kind Kind
	num  int64
	real float64
	text string
}

func integerToken(n int64) token {
	return token{kind: KindInteger, num: n}
}

func floatToken(x float64) token {
	return token{kind: KindFloat, real: x}
}

func stringToken(s string) token {
	return token{kind: KindString, text: s}
}

// funcToken carries the function name in the case it was written.
func funcToken(name string) token {
	return token{kind: KindFunc, text: name}
}

func punctToken(kind Kind, c byte) token {
	return token{kind: kind, text: string(c)}
}

// numeric reports whether the token can participate in arithmetic.
func (t token) numeric() bool {
	return t.kind == KindInteger || t.kind == KindFloat
}

// asFloat returns the numeric payload widened to float64. Only meaningful
// for numeric tokens.
func (t token) asFloat() float64 {
	if t.kind == KindFloat {
		return t.real
	}
	return float64(t.num)
}

func (t token) String() string {
	switch t.kind {
	case KindInteger:
		return t.kind.String() + ":" + strconv.FormatInt(t.num, 10)
	case KindFloat:
		return t.kind.String() + ":" + strconv.FormatFloat(t.real, 'g', -1, 64)
	default:
		return t.kind.String() + ":" + t.text
	}
}

// opPrec orders the operator-class kinds; higher binds tighter. LParen is a
// ceiling: it is pushed with the highest precedence but only ever removed by
// its matching RParen, never by a precedence comparison.
var opPrec = map[Kind]int{
	KindComma:    0,
	KindPlus:     1,
	KindMinus:    1,
	KindAsterisk: 2,
	KindSlash:    2,
	KindFunc:     3,
	KindLParen:   4,
}
