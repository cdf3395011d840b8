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
	"unicode"

	"github.com/andreabedini/souffle/pkg/util"
	"github.com/andreabedini/souffle/pkg/util/source"
)

// The token alphabet of the Datalog surface syntax.
const (
	// END_OF signals the end of the token stream.
	END_OF uint = iota
	// WHITESPACE of any kind (space, tab, newline).
	WHITESPACE
	// COMMENT is a line ("//") or block ("/* */") comment.
	COMMENT
	// IDENTIFIER is a name, such as "edge" or "X".
	IDENTIFIER
	// NUMBER is an unsigned integer literal.
	NUMBER
	// STRING is a double-quoted string literal.
	STRING
	// DECL is the ".decl" keyword.
	DECL
	// INPUT is the ".input" keyword.
	INPUT
	// OUTPUT is the ".output" keyword.
	OUTPUT
	// PRINTSIZE is the ".printsize" keyword.
	PRINTSIZE
	// IF is the rule connective ":-".
	IF
	// LPAREN is "(".
	LPAREN
	// RPAREN is ")".
	RPAREN
	// COMMA is ",".
	COMMA
	// DOT is ".", terminating a clause or separating name segments.
	DOT
	// COLON is ":", separating attribute names from types.
	COLON
	// BANG is "!", negating an atom.
	BANG
	// UNDERSCORE is the anonymous variable "_".
	UNDERSCORE
	// MINUS is "-", signing a numeric constant.
	MINUS
	// EQUALS is the constraint operator "=".
	EQUALS
	// NOT_EQUALS is the constraint operator "!=".
	NOT_EQUALS
	// LESS_THAN is the constraint operator "<".
	LESS_THAN
	// LESS_EQUALS is the constraint operator "<=".
	LESS_EQUALS
	// GREATER_THAN is the constraint operator ">".
	GREATER_THAN
	// GREATER_EQUALS is the constraint operator ">=".
	GREATER_EQUALS
)

// newScanner assembles the scanner for the Datalog token alphabet.  Ordering
// matters: multi-character tokens must be tried before their one-character
// prefixes, and keywords before the bare ".".
func newScanner() source.Scanner[rune] {
	return source.Or(
		source.Many(WHITESPACE, ' ', '\t', '\r', '\n'),
		source.ScannerFunc[rune](scanLineComment),
		source.ScannerFunc[rune](scanBlockComment),
		source.Word(DECL, []rune(".decl")...),
		source.Word(INPUT, []rune(".input")...),
		source.Word(OUTPUT, []rune(".output")...),
		source.Word(PRINTSIZE, []rune(".printsize")...),
		source.Word(IF, ':', '-'),
		source.Word(NOT_EQUALS, '!', '='),
		source.Word(LESS_EQUALS, '<', '='),
		source.Word(GREATER_EQUALS, '>', '='),
		source.One(LPAREN, '('),
		source.One(RPAREN, ')'),
		source.One(COMMA, ','),
		source.One(DOT, '.'),
		source.One(COLON, ':'),
		source.One(BANG, '!'),
		source.One(UNDERSCORE, '_'),
		source.One(MINUS, '-'),
		source.One(EQUALS, '='),
		source.One(LESS_THAN, '<'),
		source.One(GREATER_THAN, '>'),
		source.ManyWith(NUMBER, '0', '9'),
		source.ScannerFunc[rune](scanString),
		source.ScannerFunc[rune](scanIdentifier),
		source.Eof[rune](END_OF),
	)
}

// scanIdentifier matches a letter followed by any sequence of letters, digits
// and underscores.
func scanIdentifier(items []rune) util.Option[source.Token] {
	if len(items) == 0 || !unicode.IsLetter(items[0]) {
		return util.None[source.Token]()
	}
	//
	i := 1
	for i < len(items) && (unicode.IsLetter(items[i]) || unicode.IsDigit(items[i]) || items[i] == '_') {
		i++
	}
	//
	return util.Some(source.Token{Kind: IDENTIFIER, Span: source.NewSpan(0, i)})
}

// scanString matches a double-quoted string literal (without escapes, which
// the surface syntax does not support).  An unterminated string matches
// nothing, leaving the lexer stuck at the opening quote where the parser
// reports the error.
func scanString(items []rune) util.Option[source.Token] {
	if len(items) == 0 || items[0] != '"' {
		return util.None[source.Token]()
	}
	//
	for i := 1; i < len(items); i++ {
		switch items[i] {
		case '"':
			return util.Some(source.Token{Kind: STRING, Span: source.NewSpan(0, i+1)})
		case '\n':
			return util.None[source.Token]()
		}
	}
	//
	return util.None[source.Token]()
}

// scanLineComment matches "//" up to (but excluding) the end of the line.
func scanLineComment(items []rune) util.Option[source.Token] {
	if len(items) < 2 || items[0] != '/' || items[1] != '/' {
		return util.None[source.Token]()
	}
	//
	i := 2
	for i < len(items) && items[i] != '\n' {
		i++
	}
	//
	return util.Some(source.Token{Kind: COMMENT, Span: source.NewSpan(0, i)})
}

// scanBlockComment matches "/*" through to the closing "*/".  An unterminated
// comment matches nothing.
func scanBlockComment(items []rune) util.Option[source.Token] {
	if len(items) < 2 || items[0] != '/' || items[1] != '*' {
		return util.None[source.Token]()
	}
	//
	for i := 3; i < len(items); i++ {
		if items[i-1] == '*' && items[i] == '/' {
			return util.Some(source.Token{Kind: COMMENT, Span: source.NewSpan(0, i+1)})
		}
	}
	//
	return util.None[source.Token]()
}
