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
package transform

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/andreabedini/souffle/pkg/ast"
	"github.com/andreabedini/souffle/pkg/parser"
)

func Test_Minimise_01(t *testing.T) {
	// Duplicate body literals are removed, keeping first occurrences.
	input := `
.decl a(x:number)
.decl b(x:number)
.decl c(x:number, y:number)
a(X) :- b(X), c(X,Y), b(X).
`
	expected := `.decl a(x:number)
.decl b(x:number)
.decl c(x:number, y:number)
a(X) :- b(X), c(X, Y).
`
	checkMinimise(t, input, expected)
}

func Test_Minimise_02(t *testing.T) {
	// Tautological clauses are deleted.
	input := `
.decl a(x:number)
.decl b(x:number)
a(X) :- a(X), b(X).
a(X) :- b(X).
`
	expected := `.decl a(x:number)
.decl b(x:number)
a(X) :- b(X).
`
	checkMinimise(t, input, expected)
}

func Test_Minimise_03(t *testing.T) {
	// Locally-equivalent clauses collapse to their first representative.
	input := `
.decl a(x:number)
.decl b(x:number, y:number)
.decl c(x:number)
a(X) :- b(X,Y), c(Y).
a(P) :- b(P,Q), c(Q).
a(X) :- c(X).
`
	expected := `.decl a(x:number)
.decl b(x:number, y:number)
.decl c(x:number)
a(X) :- b(X, Y), c(Y).
a(X) :- c(X).
`
	checkMinimise(t, input, expected)
}

func Test_Minimise_04(t *testing.T) {
	// Local equivalence tolerates body permutation.
	input := `
.decl a(x:number)
.decl b(x:number, y:number)
.decl c(x:number)
a(X) :- b(X,Y), c(Y).
a(P) :- c(Q), b(P,Q).
`
	expected := `.decl a(x:number)
.decl b(x:number, y:number)
.decl c(x:number)
a(X) :- b(X, Y), c(Y).
`
	checkMinimise(t, input, expected)
}

func Test_Minimise_05(t *testing.T) {
	// Redundant singleton relations are merged, with every reference to the
	// removed relation rewritten to the surviving one.
	input := `
.decl a(x:number)
.decl b(x:number, y:number)
.decl c(x:number)
.decl r1(x:number)
.decl r2(x:number)
.decl out(x:number)
.output out
r1(X) :- b(X,Y), c(Y).
r2(P) :- c(Q), b(P,Q).
out(X) :- r2(X), a(X).
`
	expected := `.decl a(x:number)
.decl b(x:number, y:number)
.decl c(x:number)
.decl r1(x:number)
.decl out(x:number)
.output out
r1(X) :- b(X, Y), c(Y).
out(X) :- r1(X), a(X).
`
	checkMinimise(t, input, expected)
}

func Test_Minimise_06(t *testing.T) {
	// I/O relations are never merged, even when equivalent.
	input := `
.decl b(x:number)
.decl r1(x:number)
.decl r2(x:number)
.output r1
.output r2
r1(X) :- b(X).
r2(X) :- b(X).
`
	checkMinimise(t, input, programOf(t, input).String())
}

func Test_Minimise_07(t *testing.T) {
	// A chain of three equivalent singletons all map to the earliest.
	input := `
.decl b(x:number)
.decl r1(x:number)
.decl r2(x:number)
.decl r3(x:number)
.decl out(x:number, y:number, z:number)
.output out
r1(X) :- b(X).
r2(X) :- b(X).
r3(X) :- b(X).
out(X, Y, Z) :- r1(X), r2(Y), r3(Z).
`
	expected := `.decl b(x:number)
.decl r1(x:number)
.decl out(x:number, y:number, z:number)
.output out
r1(X) :- b(X).
out(X, Y, Z) :- r1(X), r1(Y), r1(Z).
`
	checkMinimise(t, input, expected)
}

func Test_Minimise_08(t *testing.T) {
	// Merging singletons can expose duplicate body literals, which the fixed
	// point then removes.
	input := `
.decl a(x:number)
.decl r1(x:number)
.decl r2(x:number)
.decl out(x:number)
.output out
r1(X) :- a(X).
r2(X) :- a(X).
out(X) :- r1(X), r2(X).
`
	expected := `.decl a(x:number)
.decl r1(x:number)
.decl out(x:number)
.output out
r1(X) :- a(X).
out(X) :- r1(X).
`
	checkMinimise(t, input, expected)
}

func Test_Minimise_09(t *testing.T) {
	// Clauses outside the supported fragment are left untouched.
	input := `
.decl a(x:number)
.decl b(x:number)
a(X) :- b(X), X < 3.
a(X) :- b(X), X < 3.
a(X) :- b(X), !a(X).
`
	checkMinimise(t, input, programOf(t, input).String())
}

func Test_Minimise_10(t *testing.T) {
	// Facts of equivalent singleton relations also merge.
	input := `
.decl r1(x:number, y:symbol)
.decl r2(x:number, y:symbol)
.decl out(x:number)
.output out
r1(1, "x").
r2(1, "x").
out(X) :- r2(X, Y).
`
	expected := `.decl r1(x:number, y:symbol)
.decl out(x:number)
.output out
r1(1, "x").
out(X) :- r1(X, Y).
`
	checkMinimise(t, input, expected)
}

// ===================================================================
// Properties
// ===================================================================

func Test_Minimise_20(t *testing.T) {
	// Idempotence: a second application changes nothing.
	inputs := []string{
		".decl a(x:number)\n.decl b(x:number)\na(X) :- b(X), b(X).\n",
		".decl a(x:number)\na(X) :- a(X).\n",
		".decl a(x:number)\n.decl b(x:number)\n.decl c(x:number)\n.decl o(x:number)\n.output o\n" +
			"b(X) :- a(X).\nc(X) :- a(X).\no(X) :- b(X), c(X).\n",
	}
	//
	for _, input := range inputs {
		program := programOf(t, input)
		Minimise(program)
		//
		if Minimise(program) {
			t.Errorf("minimisation of %q is not idempotent", input)
		}
	}
}

func Test_Minimise_21(t *testing.T) {
	// Monotonicity: clause and relation counts never grow.
	inputs := []string{
		".decl a(x:number)\n.decl b(x:number)\na(X) :- b(X).\n",
		".decl a(x:number)\n.decl b(x:number)\na(X) :- b(X), b(X).\na(Y) :- b(Y).\n",
	}
	//
	for _, input := range inputs {
		var (
			program    = programOf(t, input)
			nclauses   = len(program.Clauses())
			nrelations = len(program.Relations())
		)
		//
		Minimise(program)
		//
		if len(program.Clauses()) > nclauses {
			t.Errorf("minimisation of %q grew the clause count", input)
		}
		//
		if len(program.Relations()) > nrelations {
			t.Errorf("minimisation of %q grew the relation count", input)
		}
	}
}

// ===================================================================
// Test Helpers
// ===================================================================

// checkMinimise parses a program, minimises it to a fixed point, and
// compares the result against an expected rendition.
func checkMinimise(t *testing.T, input string, expected string) {
	program := programOf(t, input)
	//
	Minimise(program)
	//
	if diff := cmp.Diff(expected, program.String()); diff != "" {
		t.Errorf("unexpected minimisation (-expected +actual):\n%s", diff)
	}
}

// programOf parses a program from a given string.
func programOf(t *testing.T, input string) *ast.Program {
	program, err := parser.ParseString(input)
	if err != nil {
		t.Fatalf("parsing program: %s", err.Error())
	}
	//
	return program
}
