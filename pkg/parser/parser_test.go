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
	"strings"
	"testing"

	"github.com/andreabedini/souffle/pkg/ast"
)

func Test_Parser_01(t *testing.T) {
	// Declarations, directives and rules round-trip through the canonical
	// textual form.
	input := `.decl edge(x:number, y:number)
.decl path(x:number, y:number)
.input edge
.output path
path(X, Y) :- edge(X, Y).
path(X, Z) :- path(X, Y), edge(Y, Z).
`
	checkRoundTrip(t, input)
}

func Test_Parser_02(t *testing.T) {
	// Facts with every kind of constant.
	checkRoundTrip(t, ".decl a(x:number, y:symbol, z:symbol)\na(1, \"abc\", nil).\na(-2, \"\", nil).\n")
}

func Test_Parser_03(t *testing.T) {
	// Dotted relation names.
	checkRoundTrip(t, ".decl graph.edge(x:number, y:number)\ngraph.edge(1, 2).\n")
}

func Test_Parser_04(t *testing.T) {
	// Negation and anonymous variables.
	checkRoundTrip(t, ".decl a(x:number)\n.decl b(x:number, y:number)\na(X) :- b(X, _), !a(X).\n")
}

func Test_Parser_05(t *testing.T) {
	// Binary constraints in all forms.
	checkRoundTrip(t,
		".decl a(x:number)\n.decl b(x:number)\na(X) :- b(X), X < 3, X > 0, X <= 9, X >= 1, X != 5, X = X.\n")
}

func Test_Parser_06(t *testing.T) {
	// Comments and irregular whitespace are discarded.
	input := `
// a line comment
.decl a(x:number)   // trailing
/* a block
   comment */
a( 1 ).
`
	program := checkParses(t, input)
	//
	if len(program.Clauses()) != 1 || len(program.Relations()) != 1 {
		t.Errorf("unexpected program: %s", program.String())
	}
}

func Test_Parser_07(t *testing.T) {
	// All attribute types are understood.
	checkRoundTrip(t, ".decl a(w:symbol, x:number, y:unsigned, z:float)\n")
}

func Test_Parser_08(t *testing.T) {
	// Zero-arity atoms.
	checkRoundTrip(t, ".decl a()\n.decl b()\na() :- b().\n")
}

// ===================================================================
// Errors
// ===================================================================

func Test_ParserErr_01(t *testing.T) {
	checkSyntaxError(t, ".decl a(x:number", "expected")
}

func Test_ParserErr_02(t *testing.T) {
	checkSyntaxError(t, ".decl a(x:matrix)", "unknown attribute type")
}

func Test_ParserErr_03(t *testing.T) {
	checkSyntaxError(t, ".decl a(x:number)\n.decl a(x:number)", "already declared")
}

func Test_ParserErr_04(t *testing.T) {
	checkSyntaxError(t, ".output nowhere", "unknown relation")
}

func Test_ParserErr_05(t *testing.T) {
	checkSyntaxError(t, "a(X) :- .", "argument")
}

func Test_ParserErr_06(t *testing.T) {
	checkSyntaxError(t, "a(X) :- b(X)", "expected")
}

func Test_ParserErr_07(t *testing.T) {
	// Unexpected character stalls the lexer.
	checkSyntaxError(t, "a(X) :- b(X) ; c(X).", "unexpected character")
}

func Test_ParserErr_08(t *testing.T) {
	// Unterminated string.
	checkSyntaxError(t, "a(\"abc).", "unexpected character")
}

func Test_ParserErr_09(t *testing.T) {
	// Out-of-range numeric constant.
	checkSyntaxError(t, "a(99999999999999999999).", "invalid numeric constant")
}

// ===================================================================
// Test Helpers
// ===================================================================

// checkParses parses a given string, failing the test on error.
func checkParses(t *testing.T, input string) *ast.Program {
	program, err := ParseString(input)
	if err != nil {
		t.Fatalf("parsing %q: %s", input, err.Error())
	}
	//
	return program
}

// checkRoundTrip requires that a canonical program parses and prints back
// exactly as given.
func checkRoundTrip(t *testing.T, input string) {
	program := checkParses(t, input)
	//
	if actual := program.String(); actual != input {
		t.Errorf("round trip failed:\nexpected: %q\nactual:   %q", input, actual)
	}
}

// checkSyntaxError requires parsing to fail with a message containing a given
// fragment.
func checkSyntaxError(t *testing.T, input string, fragment string) {
	_, err := ParseString(input)
	//
	if err == nil {
		t.Fatalf("expected syntax error parsing %q", input)
	}
	//
	if !strings.Contains(err.Message(), fragment) {
		t.Errorf("expected error mentioning %q, got %q", fragment, err.Message())
	}
}
