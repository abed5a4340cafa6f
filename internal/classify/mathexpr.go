package classify

// The recognizer only checks the shape of an infix expression. Nothing is
// evaluated, so inputs such as "1/0" are still math.

type exprKind int

const (
	exprOperand exprKind = iota
	exprOperator
	exprOpen
	exprClose
)

type exprToken struct {
	kind exprKind
	text string
}

func isDigit(c byte) bool  { return c >= '0' && c <= '9' }
func isLetter(c byte) bool { return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') }

// lexExpression splits s into operands, operators and parentheses. An
// operand is either a decimal number or a single letter with optional
// digit runs on both sides ("2x", "x2").
func lexExpression(s string) ([]exprToken, bool) {
	var toks []exprToken
	for i := 0; i < len(s); {
		c := s[i]
		switch {
		case isDigit(c) || isLetter(c) || c == '.':
			start := i
			for i < len(s) && isDigit(s[i]) {
				i++
			}
			if i < len(s) && isLetter(s[i]) {
				i++
				for i < len(s) && isDigit(s[i]) {
					i++
				}
			} else if i < len(s) && s[i] == '.' {
				i++
				frac := i
				for i < len(s) && isDigit(s[i]) {
					i++
				}
				if frac == i && frac-1 == start {
					return nil, false
				}
			}
			if i == start {
				return nil, false
			}
			// "ab" or "x.5" have no operator between operands
			if i < len(s) && (isLetter(s[i]) || s[i] == '.') {
				return nil, false
			}
			toks = append(toks, exprToken{kind: exprOperand, text: s[start:i]})
		case c == '*' && i+1 < len(s) && s[i+1] == '*':
			toks = append(toks, exprToken{kind: exprOperator, text: "**"})
			i += 2
		case c == '+' || c == '-' || c == '*' || c == '/' || c == '^' || c == '=' || c == '_':
			toks = append(toks, exprToken{kind: exprOperator, text: s[i : i+1]})
			i++
		case c == '(':
			toks = append(toks, exprToken{kind: exprOpen, text: "("})
			i++
		case c == ')':
			toks = append(toks, exprToken{kind: exprClose, text: ")"})
			i++
		default:
			return nil, false
		}
	}
	return toks, len(toks) > 0
}

type exprParser struct {
	toks []exprToken
	pos  int
}

func (p *exprParser) peek() (exprToken, bool) {
	if p.pos >= len(p.toks) {
		return exprToken{}, false
	}
	return p.toks[p.pos], true
}

// expr := unary (binop unary)*
func (p *exprParser) expr() bool {
	if !p.unary() {
		return false
	}
	for {
		t, ok := p.peek()
		if !ok || t.kind != exprOperator {
			return true
		}
		p.pos++
		if !p.unary() {
			return false
		}
	}
}

// unary := ('+' | '-')* primary
func (p *exprParser) unary() bool {
	for {
		t, ok := p.peek()
		if !ok {
			return false
		}
		if t.kind == exprOperator && (t.text == "+" || t.text == "-") {
			p.pos++
			continue
		}
		return p.primary()
	}
}

// primary := operand | '(' expr ')'
func (p *exprParser) primary() bool {
	t, ok := p.peek()
	if !ok {
		return false
	}
	switch t.kind {
	case exprOperand:
		p.pos++
		return true
	case exprOpen:
		p.pos++
		if !p.expr() {
			return false
		}
		t, ok = p.peek()
		if !ok || t.kind != exprClose {
			return false
		}
		p.pos++
		return true
	}
	return false
}

// IsMathExpression reports whether s is a well-formed arithmetic
// expression over numbers, single-letter identifiers, the operators
// + - * / ^ = _ ** and parentheses.
func IsMathExpression(s string) bool {
	toks, ok := lexExpression(s)
	if !ok {
		return false
	}
	p := &exprParser{toks: toks}
	return p.expr() && p.pos == len(p.toks)
}
