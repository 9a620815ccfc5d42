package calc

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"text/scanner"
	"unicode"
)

var ErrSyntax = errors.New("syntax error")

type node interface{}

type (
	numberNode float64
	identNode  string
	listNode   []node
	callNode   struct {
		name string
		args []node
	}
	namedNode struct {
		key string
		val node
	}
	negNode    struct{ x node }
	binaryNode struct {
		op   Op
		l, r node
	}
	assignNode struct {
		name string
		x    node
	}
)

type token struct {
	kind rune // scanner token class or the operator rune; '≡' for ==
	text string
	pos  scanner.Position
}

const tokEq = '≡'

type parser struct {
	s   scanner.Scanner
	tok token
}

func isIdentRune(ch rune, i int) bool {
	return ch == '_' || unicode.IsLetter(ch) ||
		(i > 0 && (unicode.IsDigit(ch) || ch == '!' || ch == '?'))
}

// parse reads one statement: name = expr, or expr.
func parse(line string) (node, error) {
	p := &parser{}
	p.s.Init(strings.NewReader(line))
	p.s.Mode = scanner.ScanIdents | scanner.ScanFloats | scanner.ScanInts
	p.s.IsIdentRune = isIdentRune
	var scanErr error
	p.s.Error = func(s *scanner.Scanner, msg string) {
		scanErr = fmt.Errorf("%w at %s: %s", ErrSyntax, s.Pos(), msg)
	}
	p.next()

	stmt, err := p.statement()
	if scanErr != nil {
		return nil, scanErr
	}
	if err != nil {
		return nil, err
	}
	if p.tok.kind != scanner.EOF {
		return nil, p.errorf("unexpected %q", p.tok.text)
	}
	return stmt, nil
}

func (p *parser) next() {
	kind := p.s.Scan()
	text := p.s.TokenText()
	if kind == '=' && p.s.Peek() == '=' {
		p.s.Next()
		kind, text = tokEq, "=="
	}
	p.tok = token{kind: kind, text: text, pos: p.s.Position}
}

func (p *parser) errorf(format string, args ...any) error {
	return fmt.Errorf("%w at column %d: %s", ErrSyntax, p.tok.pos.Column, fmt.Sprintf(format, args...))
}

func (p *parser) expect(kind rune) error {
	if p.tok.kind != kind {
		if p.tok.kind == scanner.EOF {
			return p.errorf("expected %q, got end of input", string(kind))
		}
		return p.errorf("expected %q, got %q", string(kind), p.tok.text)
	}
	p.next()
	return nil
}

func (p *parser) statement() (node, error) {
	if p.tok.kind != scanner.Ident {
		return p.expr()
	}
	name := p.tok.text
	p.next()
	if p.tok.kind == '=' {
		p.next()
		x, err := p.expr()
		if err != nil {
			return nil, err
		}
		return assignNode{name: name, x: x}, nil
	}
	first, err := p.identTail(name)
	if err != nil {
		return nil, err
	}
	return p.exprFrom(first)
}

func (p *parser) expr() (node, error) {
	l, err := p.sum()
	if err != nil {
		return nil, err
	}
	return p.compare(l)
}

// exprFrom continues an expression whose first operand was already consumed.
func (p *parser) exprFrom(first node) (node, error) {
	l, err := p.termFrom(first)
	if err != nil {
		return nil, err
	}
	l, err = p.sumFrom(l)
	if err != nil {
		return nil, err
	}
	return p.compare(l)
}

func (p *parser) compare(l node) (node, error) {
	if p.tok.kind != tokEq {
		return l, nil
	}
	p.next()
	r, err := p.sum()
	if err != nil {
		return nil, err
	}
	return binaryNode{op: OpEq, l: l, r: r}, nil
}

func (p *parser) sum() (node, error) {
	l, err := p.term()
	if err != nil {
		return nil, err
	}
	return p.sumFrom(l)
}

func (p *parser) sumFrom(l node) (node, error) {
	for p.tok.kind == '+' || p.tok.kind == '-' {
		op := Op(p.tok.text)
		p.next()
		r, err := p.term()
		if err != nil {
			return nil, err
		}
		l = binaryNode{op: op, l: l, r: r}
	}
	return l, nil
}

func (p *parser) term() (node, error) {
	l, err := p.unary()
	if err != nil {
		return nil, err
	}
	return p.termFrom(l)
}

func (p *parser) termFrom(l node) (node, error) {
	for p.tok.kind == '*' || p.tok.kind == '/' {
		op := Op(p.tok.text)
		p.next()
		r, err := p.unary()
		if err != nil {
			return nil, err
		}
		l = binaryNode{op: op, l: l, r: r}
	}
	return l, nil
}

func (p *parser) unary() (node, error) {
	if p.tok.kind == '-' {
		p.next()
		x, err := p.unary()
		if err != nil {
			return nil, err
		}
		return negNode{x: x}, nil
	}
	return p.primary()
}

func (p *parser) primary() (node, error) {
	switch p.tok.kind {
	case scanner.Int, scanner.Float:
		f, err := strconv.ParseFloat(p.tok.text, 64)
		if err != nil {
			return nil, p.errorf("bad number %q", p.tok.text)
		}
		p.next()
		return numberNode(f), nil
	case scanner.Ident:
		name := p.tok.text
		p.next()
		return p.identTail(name)
	case '[':
		p.next()
		items, err := p.args(']')
		if err != nil {
			return nil, err
		}
		return listNode(items), nil
	case '(':
		p.next()
		x, err := p.expr()
		if err != nil {
			return nil, err
		}
		if err := p.expect(')'); err != nil {
			return nil, err
		}
		return x, nil
	case scanner.EOF:
		return nil, p.errorf("unexpected end of input")
	}
	return nil, p.errorf("unexpected %q", p.tok.text)
}

// args parses a comma separated argument list up to the closing rune.
// Arguments of the form key=expr become named arguments.
func (p *parser) args(closing rune) ([]node, error) {
	var args []node
	if p.tok.kind == closing {
		p.next()
		return args, nil
	}
	for {
		arg, err := p.arg()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		if p.tok.kind == ',' {
			p.next()
			continue
		}
		if err := p.expect(closing); err != nil {
			return nil, err
		}
		return args, nil
	}
}

func (p *parser) arg() (node, error) {
	if p.tok.kind != scanner.Ident {
		return p.expr()
	}
	name := p.tok.text
	p.next()
	if p.tok.kind == '=' {
		p.next()
		val, err := p.expr()
		if err != nil {
			return nil, err
		}
		return namedNode{key: name, val: val}, nil
	}
	first, err := p.identTail(name)
	if err != nil {
		return nil, err
	}
	return p.exprFrom(first)
}

// identTail finishes a primary that started with an identifier already
// consumed: a call if an argument list follows, a plain name otherwise.
func (p *parser) identTail(name string) (node, error) {
	if p.tok.kind != '(' {
		return identNode(name), nil
	}
	p.next()
	args, err := p.args(')')
	if err != nil {
		return nil, err
	}
	return callNode{name: name, args: args}, nil
}
