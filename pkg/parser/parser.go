// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package parser

import (
	"fmt"
	"strconv"

	"github.com/andreabedini/souffle/pkg/ast"
	"github.com/andreabedini/souffle/pkg/util/source"
)

// Parse tokenises and parses a given source file, adding all declarations,
// directives and clauses encountered to a given program.  Parsing stops at
// the first syntax error.
func Parse(srcfile *source.File, program *ast.Program) *source.SyntaxError {
	lexer := source.NewLexer(srcfile.Contents(), newScanner())
	tokens := lexer.Collect()
	// A stuck lexer indicates an unexpected character.
	if lexer.Remaining() > 0 {
		span := source.NewSpan(lexer.Index(), lexer.Index()+1)
		return srcfile.SyntaxError(span, "unexpected character")
	}
	// Strip whitespace and comments, which carry no syntactic weight.
	var filtered []source.Token
	//
	for _, tok := range tokens {
		if tok.Kind != WHITESPACE && tok.Kind != COMMENT {
			filtered = append(filtered, tok)
		}
	}
	//
	parser := &Parser{srcfile, filtered, 0, program}
	//
	return parser.parseProgram()
}

// ParseString parses a self-contained program from a given string.  This is
// primarily a convenience for tests.
func ParseString(input string) (*ast.Program, *source.SyntaxError) {
	var (
		program = ast.NewProgram()
		srcfile = source.NewSourceFile("", []byte(input))
	)
	//
	if err := Parse(srcfile, program); err != nil {
		return nil, err
	}
	//
	return program, nil
}

// Parser is a recursive-descent parser over the Datalog token stream.  The
// token stream always terminates with an END_OF token, which simplifies
// lookahead at the end of input.
type Parser struct {
	srcfile *source.File
	tokens  []source.Token
	index   int
	program *ast.Program
}

func (p *Parser) parseProgram() *source.SyntaxError {
	for !p.matches(END_OF) {
		var err *source.SyntaxError
		//
		switch p.peek().Kind {
		case DECL:
			err = p.parseDecl()
		case INPUT, OUTPUT, PRINTSIZE:
			err = p.parseDirective()
		default:
			err = p.parseClause()
		}
		//
		if err != nil {
			return err
		}
	}
	//
	return nil
}

// parseDecl parses a relation declaration, such as ".decl edge(x:number,
// y:number)".
func (p *Parser) parseDecl() *source.SyntaxError {
	// Consume ".decl" keyword.
	p.next()
	//
	nameTok := p.peek()
	//
	name, err := p.parseQualifiedName()
	if err != nil {
		return err
	}
	//
	if p.program.Relation(name) != nil {
		return p.errorAt(nameTok, fmt.Sprintf("relation %s already declared", name.String()))
	}
	//
	if _, err := p.expect(LPAREN, "("); err != nil {
		return err
	}
	//
	var attributes []ast.Attribute
	//
	for !p.matches(RPAREN) {
		if len(attributes) > 0 {
			if _, err := p.expect(COMMA, ","); err != nil {
				return err
			}
		}
		//
		attr, err := p.parseAttribute()
		if err != nil {
			return err
		}
		//
		attributes = append(attributes, attr)
	}
	// Consume ")".
	p.next()
	//
	p.program.AddRelation(ast.NewRelation(name, attributes...))
	//
	return nil
}

// parseAttribute parses a single relation attribute, such as "x:number".
func (p *Parser) parseAttribute() (ast.Attribute, *source.SyntaxError) {
	var attribute ast.Attribute
	//
	nameTok, err := p.expect(IDENTIFIER, "attribute name")
	if err != nil {
		return attribute, err
	}
	//
	if _, err := p.expect(COLON, ":"); err != nil {
		return attribute, err
	}
	//
	typeTok, err := p.expect(IDENTIFIER, "attribute type")
	if err != nil {
		return attribute, err
	}
	//
	attribute.Name = p.text(nameTok)
	//
	switch p.text(typeTok) {
	case "symbol":
		attribute.Type = ast.SymbolType
	case "number":
		attribute.Type = ast.NumberType
	case "unsigned":
		attribute.Type = ast.UnsignedType
	case "float":
		attribute.Type = ast.FloatType
	default:
		return attribute, p.errorAt(typeTok, fmt.Sprintf("unknown attribute type %q", p.text(typeTok)))
	}
	//
	return attribute, nil
}

// parseDirective parses an I/O directive, such as ".output path".
func (p *Parser) parseDirective() *source.SyntaxError {
	var kind ast.DirectiveKind
	//
	switch p.next().Kind {
	case INPUT:
		kind = ast.InputDirective
	case OUTPUT:
		kind = ast.OutputDirective
	case PRINTSIZE:
		kind = ast.PrintSizeDirective
	}
	//
	nameTok := p.peek()
	//
	name, err := p.parseQualifiedName()
	if err != nil {
		return err
	}
	//
	if p.program.Relation(name) == nil {
		return p.errorAt(nameTok, fmt.Sprintf("unknown relation %s", name.String()))
	}
	//
	p.program.AddDirective(ast.NewDirective(kind, name))
	//
	return nil
}

// parseClause parses a fact "a(1)." or a rule "a(X) :- b(X), c(X)."
func (p *Parser) parseClause() *source.SyntaxError {
	head, err := p.parseAtom()
	if err != nil {
		return err
	}
	//
	clause := ast.NewClause(head)
	//
	if p.matches(IF) {
		// Consume ":-".
		p.next()
		//
		for {
			lit, err := p.parseLiteral()
			if err != nil {
				return err
			}
			//
			clause.Body = append(clause.Body, lit)
			//
			if !p.matches(COMMA) {
				break
			}
			// Consume ",".
			p.next()
		}
	}
	//
	if _, err := p.expect(DOT, "."); err != nil {
		return err
	}
	//
	p.program.AddClause(clause)
	//
	return nil
}

// parseLiteral parses a single body literal: an atom, a negated atom, or a
// binary constraint.
func (p *Parser) parseLiteral() (ast.Literal, *source.SyntaxError) {
	switch {
	case p.matches(BANG):
		// Consume "!".
		p.next()
		//
		atom, err := p.parseAtom()
		if err != nil {
			return nil, err
		}
		//
		return &ast.Negation{Atom: atom}, nil
	case p.atomAhead():
		return p.parseAtom()
	default:
		return p.parseConstraint()
	}
}

// atomAhead determines whether the upcoming tokens form an atom (a qualified
// name followed by an opening parenthesis), as opposed to the left-hand side
// of a constraint.
func (p *Parser) atomAhead() bool {
	i := p.index
	//
	if p.tokens[i].Kind != IDENTIFIER {
		return false
	}
	//
	i++
	//
	for i+1 < len(p.tokens) && p.tokens[i].Kind == DOT && p.tokens[i+1].Kind == IDENTIFIER {
		i += 2
	}
	//
	return i < len(p.tokens) && p.tokens[i].Kind == LPAREN
}

// parseConstraint parses a binary constraint, such as "X < 3".
func (p *Parser) parseConstraint() (ast.Literal, *source.SyntaxError) {
	lhs, err := p.parseArgument()
	if err != nil {
		return nil, err
	}
	//
	var op ast.ConstraintOp
	//
	opTok := p.next()
	//
	switch opTok.Kind {
	case EQUALS:
		op = ast.EQ
	case NOT_EQUALS:
		op = ast.NEQ
	case LESS_THAN:
		op = ast.LT
	case LESS_EQUALS:
		op = ast.LEQ
	case GREATER_THAN:
		op = ast.GT
	case GREATER_EQUALS:
		op = ast.GEQ
	default:
		return nil, p.errorAt(opTok, "expected constraint operator")
	}
	//
	rhs, err := p.parseArgument()
	if err != nil {
		return nil, err
	}
	//
	return &ast.BinaryConstraint{Op: op, Lhs: lhs, Rhs: rhs}, nil
}

// parseAtom parses an atom, such as "edge(X, Y)".
func (p *Parser) parseAtom() (*ast.Atom, *source.SyntaxError) {
	name, err := p.parseQualifiedName()
	if err != nil {
		return nil, err
	}
	//
	if _, err := p.expect(LPAREN, "("); err != nil {
		return nil, err
	}
	//
	var args []ast.Argument
	//
	for !p.matches(RPAREN) {
		if len(args) > 0 {
			if _, err := p.expect(COMMA, ","); err != nil {
				return nil, err
			}
		}
		//
		arg, err := p.parseArgument()
		if err != nil {
			return nil, err
		}
		//
		args = append(args, arg)
	}
	// Consume ")".
	p.next()
	//
	return ast.NewAtom(name, args...), nil
}

// parseArgument parses a single atom argument: a variable, the anonymous
// variable, or a constant.
func (p *Parser) parseArgument() (ast.Argument, *source.SyntaxError) {
	tok := p.peek()
	//
	switch tok.Kind {
	case IDENTIFIER:
		p.next()
		//
		if text := p.text(tok); text != "nil" {
			return ast.NewVariable(text), nil
		}
		//
		return &ast.NilConstant{}, nil
	case UNDERSCORE:
		p.next()
		return &ast.UnnamedVariable{}, nil
	case NUMBER:
		p.next()
		return p.numericConstant(tok, false)
	case MINUS:
		p.next()
		//
		numTok, err := p.expect(NUMBER, "number")
		if err != nil {
			return nil, err
		}
		//
		return p.numericConstant(numTok, true)
	case STRING:
		p.next()
		// Strip enclosing quotes.
		text := p.text(tok)
		//
		return ast.NewStringConstant(text[1 : len(text)-1]), nil
	default:
		return nil, p.errorAt(tok, "expected argument")
	}
}

// numericConstant converts a NUMBER token into a numeric constant, applying a
// sign where necessary.
func (p *Parser) numericConstant(tok source.Token, negative bool) (ast.Argument, *source.SyntaxError) {
	value, err := strconv.ParseInt(p.text(tok), 10, 64)
	if err != nil {
		return nil, p.errorAt(tok, "invalid numeric constant")
	}
	//
	if negative {
		value = -value
	}
	//
	return ast.NewNumericConstant(value), nil
}

// parseQualifiedName parses a dotted relation name, such as "graph.edge".  A
// dot is only consumed when immediately followed by an identifier, since a
// bare dot terminates the enclosing clause.
func (p *Parser) parseQualifiedName() (ast.QualifiedName, *source.SyntaxError) {
	tok, err := p.expect(IDENTIFIER, "identifier")
	if err != nil {
		return ast.QualifiedName{}, err
	}
	//
	name := ast.NewQualifiedName(p.text(tok))
	//
	for p.matches(DOT) && p.peekAt(1).Kind == IDENTIFIER {
		// Consume ".".
		p.next()
		// Consume identifier.
		tok = p.next()
		name = name.Extend(p.text(tok))
	}
	//
	return name, nil
}

// ============================================================================
// Helpers
// ============================================================================

// peek returns the upcoming token without advancing.
func (p *Parser) peek() source.Token {
	return p.tokens[p.index]
}

// peekAt returns the token a given distance ahead without advancing, or the
// terminating END_OF token where the stream is shorter.
func (p *Parser) peekAt(n int) source.Token {
	if i := p.index + n; i < len(p.tokens) {
		return p.tokens[i]
	}
	//
	return p.tokens[len(p.tokens)-1]
}

// matches checks whether the upcoming token has a given kind.
func (p *Parser) matches(kind uint) bool {
	return p.peek().Kind == kind
}

// next returns the upcoming token and advances past it.  The terminating
// END_OF token is never advanced past.
func (p *Parser) next() source.Token {
	tok := p.tokens[p.index]
	//
	if tok.Kind != END_OF {
		p.index++
	}
	//
	return tok
}

// expect consumes a token of a given kind, or reports what was expected.
func (p *Parser) expect(kind uint, expected string) (source.Token, *source.SyntaxError) {
	tok := p.peek()
	//
	if tok.Kind != kind {
		return tok, p.errorAt(tok, fmt.Sprintf("expected %q", expected))
	}
	//
	return p.next(), nil
}

// text extracts the source text covered by a given token.
func (p *Parser) text(tok source.Token) string {
	return string(p.srcfile.Contents()[tok.Span.Start():tok.Span.End()])
}

// errorAt constructs a syntax error anchored at a given token.
func (p *Parser) errorAt(tok source.Token, msg string) *source.SyntaxError {
	return p.srcfile.SyntaxError(tok.Span, msg)
}
