package calculator

// parse rearranges an infix token stream into postfix (reverse Polish)
// order using the shunting-yard algorithm. Literals pass straight to the
// output; operator-class tokens wait on a stack until a tighter-binding
// token or the end of input flushes them. LParen and Comma act as barriers:
// nothing pops past them by precedence, so grouped subexpressions and
// function arguments stay intact until their closing bracket.
func parse(toks []token) ([]token, error) {
	var ops []token
	out := make([]token, 0, len(toks))
	for _, t := range toks {
		switch t.kind {
		case KindInteger, KindFloat, KindString:
			out = append(out, t)
		case KindPlus, KindMinus, KindAsterisk, KindSlash, KindComma, KindFunc, KindLParen:
			// Equal precedence pops, which makes operators left-associative.
			for len(ops) > 0 {
				top := ops[len(ops)-1]
				if top.kind == KindLParen || top.kind == KindComma || opPrec[top.kind] < opPrec[t.kind] {
					break
				}
				out = append(out, top)
				ops = ops[:len(ops)-1]
			}
			ops = append(ops, t)
		case KindRParen:
			for {
				if len(ops) == 0 {
					return nil, &BracketError{}
				}
				top := ops[len(ops)-1]
				if top.kind == KindLParen {
					break
				}
				ops = ops[:len(ops)-1]
				// Commas only separated arguments; they have no postfix
				// representation.
				if top.kind != KindComma {
					out = append(out, top)
				}
			}
			ops = ops[:len(ops)-1]
			// A function directly before the bracket owns it as a call, so
			// the function lands after all its arguments.
			if len(ops) > 0 && ops[len(ops)-1].kind == KindFunc {
				out = append(out, ops[len(ops)-1])
				ops = ops[:len(ops)-1]
			}
		default:
			return nil, &UnparsableTokenError{tok: t}
		}
	}
	for len(ops) > 0 {
		out = append(out, ops[len(ops)-1])
		ops = ops[:len(ops)-1]
	}
	return out, nil
}

// BracketError indicates a close bracket with no matching open bracket on
// the operator stack. The validator catches this for the composed pipeline;
// parse still refuses to proceed when driven directly.
type BracketError struct{}

func (err *BracketError) Error() string {
	return "close bracket ) with no open bracket"
}

// UnparsableTokenError indicates a token kind the parser does not
// recognize. It is a contract mismatch between lexer and parser, not a user
// error.
type UnparsableTokenError struct {
	tok token
}

func (err *UnparsableTokenError) Error() string {
	return "unparsable token: " + err.tok.String()
}
