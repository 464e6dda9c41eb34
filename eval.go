package calculator

import "strconv"

// evaluate executes a postfix token stream against a value stack. Literals
// push; operators and functions pop their operands and push their result.
// Exactly one value must remain at the end.
func evaluate(postfix []token) (token, error) {
	var stack []token
	for _, t := range postfix {
		switch t.kind {
		case KindInteger, KindFloat, KindString:
			stack = append(stack, t)
		case KindPlus, KindMinus, KindAsterisk, KindSlash:
			if len(stack) < 2 {
				return token{}, &MalformedExpressionError{Op: t.text, Count: len(stack)}
			}
			b := stack[len(stack)-1]
			a := stack[len(stack)-2]
			stack = stack[:len(stack)-2]
			r, err := arith(t.kind, a, b)
			if err != nil {
				return token{}, err
			}
			stack = append(stack, r)
		case KindFunc:
			var err error
			stack, err = callBuiltin(t, stack)
			if err != nil {
				return token{}, err
			}
		default:
			return token{}, &UnknownTokenError{tok: t}
		}
	}
	if len(stack) != 1 {
		return token{}, &MalformedExpressionError{Count: len(stack)}
	}
	return stack[0], nil
}

// arith applies a binary arithmetic operator with numeric promotion: two
// integers stay integral, any float operand promotes the result to float,
// and division is always true division, so it always yields a float.
func arith(op Kind, a, b token) (token, error) {
	if !a.numeric() {
		return token{}, &OperandError{Op: op.String(), Kind: a.kind}
	}
	if !b.numeric() {
		return token{}, &OperandError{Op: op.String(), Kind: b.kind}
	}
	if op == KindSlash {
		return floatToken(a.asFloat() / b.asFloat()), nil
	}
	if a.kind == KindFloat || b.kind == KindFloat {
		x, y := a.asFloat(), b.asFloat()
		switch op {
		case KindPlus:
			return floatToken(x + y), nil
		case KindMinus:
			return floatToken(x - y), nil
		case KindAsterisk:
			return floatToken(x * y), nil
		}
	}
	switch op {
	case KindPlus:
		return integerToken(a.num + b.num), nil
	case KindMinus:
		return integerToken(a.num - b.num), nil
	case KindAsterisk:
		return integerToken(a.num * b.num), nil
	}
	panic("calculator: arith on non-arithmetic kind " + op.String())
}

// Calculate evaluates an expression and returns its result. When the
// expression fails the structural pre-check (unbalanced brackets), the
// result and the error are both nil: the input is user-correctable and
// there is simply no result. Every other failure returns a typed error.
func Calculate(src string) (*Result, error) {
	toks, err := tokenize(src)
	if err != nil {
		return nil, err
	}
	if !validate(toks) {
		return nil, nil
	}
	postfix, err := parse(toks)
	if err != nil {
		return nil, err
	}
	tok, err := evaluate(postfix)
	if err != nil {
		return nil, err
	}
	return &Result{tok: tok}, nil
}

// Result is the final value of an evaluated expression: an integer, a
// float, or a string, reported by Kind.
type Result struct {
	tok token
}

// Kind returns the kind of the result value.
func (r *Result) Kind() Kind {
	return r.tok.kind
}

// Int returns the integer payload. Meaningful only when Kind is
// KindInteger.
func (r *Result) Int() int64 {
	return r.tok.num
}

// Float returns the float payload. Meaningful only when Kind is KindFloat.
func (r *Result) Float() float64 {
	return r.tok.real
}

// Text returns the string payload. Meaningful only when Kind is KindString.
func (r *Result) Text() string {
	return r.tok.text
}

// Value returns the unwrapped scalar: int64, float64, or string.
func (r *Result) Value() any {
	switch r.tok.kind {
	case KindInteger:
		return r.tok.num
	case KindFloat:
		return r.tok.real
	default:
		return r.tok.text
	}
}

// String formats the result for display.
func (r *Result) String() string {
	switch r.tok.kind {
	case KindInteger:
		return strconv.FormatInt(r.tok.num, 10)
	case KindFloat:
		return strconv.FormatFloat(r.tok.real, 'g', -1, 64)
	default:
		return r.tok.text
	}
}

// UnknownTokenError indicates a token kind the evaluator does not
// recognize. Like UnparsableTokenError, it is a stage contract mismatch.
type UnknownTokenError struct {
	tok token
}

func (err *UnknownTokenError) Error() string {
	return "cannot evaluate unknown token: " + err.tok.String()
}

// MalformedExpressionError indicates evaluation could not consume the
// postfix stream cleanly: either an operator had too few operands, or a
// count other than exactly one value remained at the end (for example "1 2"
// with no operator between the literals).
type MalformedExpressionError struct {
	// Op is the operator that was starved of operands, if any.
	Op string
	// Count is the number of values on the stack at the point of failure.
	Count int
}

func (err *MalformedExpressionError) Error() string {
	if err.Op != "" {
		return "malformed expression: operator " + err.Op + " has " +
			strconv.Itoa(err.Count) + " of 2 operands"
	}
	return "malformed expression: " + strconv.Itoa(err.Count) +
		" values remain after evaluation"
}

// OperandError indicates arithmetic, or the condition of the if builtin,
// was given a non-numeric operand.
type OperandError struct {
	// Op names the operation that rejected the operand.
	Op string
	// Kind is the kind of the rejected operand.
	Kind Kind
}

func (err *OperandError) Error() string {
	return err.Op + " requires a numeric operand, got " + err.Kind.String()
}
