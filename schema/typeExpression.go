package schema

import (
	"fmt"
	"strings"
)

// typeExpression is the syntax tree of a type expression such as Map<Symbol, Vec<u32>> or (u32, bool)
type typeExpression struct {
	name    string
	args    []*typeExpression
	isTuple bool
}

func (expr *typeExpression) String() string {
	if expr.isTuple {
		return "(" + joinExpressions(expr.args) + ")"
	}
	if len(expr.args) == 0 {
		return expr.name
	}

	return expr.name + "<" + joinExpressions(expr.args) + ">"
}

func joinExpressions(expressions []*typeExpression) string {
	parts := make([]string, len(expressions))
	for i, expr := range expressions {
		parts[i] = expr.String()
	}

	return strings.Join(parts, ", ")
}

type expressionParser struct {
	input string
	pos   int
}

func parseTypeExpression(input string) (*typeExpression, error) {
	p := &expressionParser{input: input}

	expr, err := p.parseExpression()
	if err != nil {
		return nil, fmt.Errorf("%w %q: %s", ErrInvalidTypeExpression, input, err.Error())
	}

	p.skipSpaces()
	if !p.atEnd() {
		return nil, fmt.Errorf("%w %q: unexpected %q at offset %d", ErrInvalidTypeExpression, input, p.input[p.pos], p.pos)
	}

	return expr, nil
}

func (p *expressionParser) parseExpression() (*typeExpression, error) {
	p.skipSpaces()
	if p.atEnd() {
		return nil, fmt.Errorf("unexpected end of expression")
	}

	if p.input[p.pos] == '(' {
		p.pos++
		items, err := p.parseList(')')
		if err != nil {
			return nil, err
		}

		return &typeExpression{isTuple: true, args: items}, nil
	}

	name := p.parseIdentifier()
	if len(name) == 0 {
		return nil, fmt.Errorf("unexpected %q at offset %d", p.input[p.pos], p.pos)
	}

	expr := &typeExpression{name: name}
	p.skipSpaces()
	if !p.atEnd() && p.input[p.pos] == '<' {
		p.pos++
		args, err := p.parseList('>')
		if err != nil {
			return nil, err
		}
		if len(args) == 0 {
			return nil, fmt.Errorf("%s has no type arguments", name)
		}

		expr.args = args
	}

	return expr, nil
}

func (p *expressionParser) parseList(closing byte) ([]*typeExpression, error) {
	items := make([]*typeExpression, 0)

	p.skipSpaces()
	if !p.atEnd() && p.input[p.pos] == closing {
		p.pos++
		return items, nil
	}

	for {
		item, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		items = append(items, item)

		p.skipSpaces()
		if p.atEnd() {
			return nil, fmt.Errorf("missing %q", closing)
		}

		switch p.input[p.pos] {
		case ',':
			p.pos++
		case closing:
			p.pos++
			return items, nil
		default:
			return nil, fmt.Errorf("unexpected %q at offset %d", p.input[p.pos], p.pos)
		}
	}
}

func (p *expressionParser) parseIdentifier() string {
	start := p.pos
	for !p.atEnd() && isIdentifierCharacter(p.input[p.pos]) {
		p.pos++
	}

	return p.input[start:p.pos]
}

func (p *expressionParser) skipSpaces() {
	for !p.atEnd() && (p.input[p.pos] == ' ' || p.input[p.pos] == '\t') {
		p.pos++
	}
}

func (p *expressionParser) atEnd() bool {
	return p.pos >= len(p.input)
}

func isIdentifierCharacter(ch byte) bool {
	return ch == '_' ||
		(ch >= 'a' && ch <= 'z') ||
		(ch >= 'A' && ch <= 'Z') ||
		(ch >= '0' && ch <= '9')
}
