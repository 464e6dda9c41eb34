package calculator

// validate performs the structural pre-check on a token stream: brackets
// must balance, with no closing bracket before its opener. It is a guard,
// not a grammar check; balanced but otherwise malformed streams pass here
// and fail later in parse or evaluate.
func validate(toks []token) bool {
	depth := 0
	for _, t := range toks {
		switch t.kind {
		case KindLParen:
			depth++
		case KindRParen:
			depth--
			if depth < 0 {
				return false
			}
		}
	}
	return depth == 0
}
