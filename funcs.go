package calculator

import (
	"strconv"
	"strings"
)

// builtin is the closed set of functions the evaluator can dispatch.
// Names recognized by the lexer map onto it, so dispatch is a match on a
// variant rather than open-ended string comparison.
type builtin int

const (
	builtinSq builtin = iota
	builtinIf
	builtinType
)

var builtins = map[string]builtin{
	"sq":   builtinSq,
	"if":   builtinIf,
	"type": builtinType,
}

// callBuiltin applies a Func token to the value stack and returns the
// updated stack. Arguments were pushed left to right, so they pop in
// reverse.
func callBuiltin(t token, stack []token) ([]token, error) {
	fn, ok := builtins[strings.ToLower(t.text)]
	if !ok {
		return nil, &UnknownFunctionError{Name: t.text}
	}
	switch fn {
	case builtinSq:
		if len(stack) < 1 {
			return nil, &ArgumentError{Func: t.text, Need: 1, Have: len(stack)}
		}
		a := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		r, err := arith(KindAsterisk, a, a)
		if err != nil {
			return nil, err
		}
		return append(stack, r), nil
	case builtinIf:
		if len(stack) < 3 {
			return nil, &ArgumentError{Func: t.text, Need: 3, Have: len(stack)}
		}
		falseVal := stack[len(stack)-1]
		trueVal := stack[len(stack)-2]
		cond := stack[len(stack)-3]
		stack = stack[:len(stack)-3]
		if !cond.numeric() {
			return nil, &OperandError{Op: "if condition", Kind: cond.kind}
		}
		// The chosen branch keeps its own type; there is no promotion
		// between branches.
		if cond.asFloat() != 0 {
			return append(stack, trueVal), nil
		}
		return append(stack, falseVal), nil
	case builtinType:
		if len(stack) < 1 {
			return nil, &ArgumentError{Func: t.text, Need: 1, Have: len(stack)}
		}
		a := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		return append(stack, stringToken(a.kind.String())), nil
	}
	panic("calculator: unreachable builtin " + strconv.Itoa(int(fn)))
}

// ArgumentError indicates a built-in function was invoked with fewer
// operands on the stack than it requires.
type ArgumentError struct {
	// Func is the function name as written.
	Func string
	// Need and Have are the required and available operand counts.
	Need, Have int
}

func (err *ArgumentError) Error() string {
	return "not enough arguments for " + err.Func + ": need " +
		strconv.Itoa(err.Need) + ", have " + strconv.Itoa(err.Have)
}

// UnknownFunctionError indicates a Func token whose name matches no
// builtin. The lexer only emits recognized names, so this arises from token
// streams built by hand.
type UnknownFunctionError struct {
	// Name is the function name as written.
	Name string
}

func (err *UnknownFunctionError) Error() string {
	return "cannot evaluate unknown function: " + strconv.Quote(err.Name)
}
