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
	"fmt"

	"github.com/andreabedini/souffle/pkg/ast"
	"github.com/andreabedini/souffle/pkg/util"
)

// BijectivelyEquivalent determines whether two clauses compute the same set
// of tuples, by checking for a permutation of body atoms together with a
// bijective renaming of variables under which both clauses are structurally
// identical.  Constants are compared by value.  The names of the two head
// atoms are deliberately NOT compared: clauses of differently-named relations
// can be equivalent, which is what singleton-relation reduction relies on.
//
// The check is restricted to supported clauses (see isSupported); anything
// outside that fragment is conservatively reported as non-equivalent, even to
// itself.  Within the fragment the check is sound but not complete: clauses
// which compute the same tuples without being identical up to body order and
// variable renaming (e.g. one with a repeated body atom) are reported as
// non-equivalent.
func BijectivelyEquivalent(left *ast.Clause, right *ast.Clause) bool {
	// Only decide equivalence within the supported fragment.
	if !isSupported(left) || !isSupported(right) {
		return false
	}
	// Clauses must be the same length to be equal.
	if len(left.Body) != len(right.Body) {
		return false
	}
	// Head atoms must have the same arity.
	if left.Head.Arity() != right.Head.Arity() {
		return false
	}
	// Clauses must have the same number of distinct variables.
	if len(ast.DistinctVariables(left)) != len(ast.DistinctVariables(right)) {
		return false
	}
	// Set up the n x n compatibility matrix, where n is the number of atoms
	// in the clause, including the head atom.
	var (
		n      = len(left.Body) + 1
		matrix = make([][]uint, n)
	)
	//
	for i := range matrix {
		matrix[i] = make([]uint, n)
	}
	// The head can only map to the head.
	matrix[0][0] = 1
	// A body atom can only map to a body atom of the same relation.
	for i := 1; i < n; i++ {
		for j := 1; j < n; j++ {
			if bodyAtom(left, i-1).Name.Equals(bodyAtom(right, j-1).Name) {
				matrix[i][j] = 1
			}
		}
	}
	// Check whether any valid permutation admits a variable mapping.
	for _, perm := range util.ValidPermutations(matrix) {
		if validMapping(left, right, perm) {
			return true
		}
	}
	//
	return false
}

// isSupported determines whether a clause falls within the fragment for which
// bijective equivalence is decided: every body literal is an atom (no
// negations or constraints) and every argument is a named variable or a
// constant.
func isSupported(clause *ast.Clause) bool {
	for _, lit := range clause.Body {
		if _, ok := lit.(*ast.Atom); !ok {
			return false
		}
	}
	//
	supported := true
	//
	ast.VisitArguments(clause, func(arg ast.Argument) {
		switch arg.(type) {
		case *ast.Variable, *ast.StringConstant, *ast.NumericConstant, *ast.NilConstant:
			// primitive argument
		default:
			supported = false
		}
	})
	//
	return supported
}

// validMapping determines whether a consistent variable renaming exists which
// witnesses equivalence of the two clauses under a given permutation of
// atoms.  The permutation covers the full clause: perm[0] == 0 places the
// head, and perm[i] == j (for i >= 1) places body atom i-1 at body position
// j-1.
func validMapping(left *ast.Clause, right *ast.Clause, perm []uint) bool {
	// Deduce the body atom permutation from the full clause permutation.
	bodyPerm := make([]uint, len(perm)-1)
	for i, j := range perm[1:] {
		bodyPerm[i] = j - 1
	}
	// The permutation states where each atom ends up, whilst ReorderBody
	// expects to know which atom each position receives.  Invert once.
	inverse := make([]uint, len(bodyPerm))
	for i, j := range bodyPerm {
		inverse[j] = uint(i)
	}
	//
	reordered := left.Clone()
	reordered.ReorderBody(inverse)
	// Build up the variable renaming, left name to right name.  Functional
	// consistency on the left combined with the distinct-variable-count gate
	// makes the mapping a bijection.
	mapping := make(map[string]string)
	//
	for k := 0; k <= len(right.Body); k++ {
		var (
			lhs = atomAt(reordered, k)
			rhs = atomAt(right, k)
		)
		// Same-relation atoms always agree on arity for well-formed input,
		// but the head pair need not.
		if len(lhs.Args) != len(rhs.Args) {
			return false
		}
		// Match arguments positionally.
		for j := range lhs.Args {
			switch l := lhs.Args[j].(type) {
			case *ast.Variable:
				r, ok := rhs.Args[j].(*ast.Variable)
				if !ok {
					return false
				}
				//
				if name, bound := mapping[l.Name]; !bound {
					mapping[l.Name] = r.Name
				} else if name != r.Name {
					// Mapping is inconsistent under this permutation.
					return false
				}
			case *ast.StringConstant:
				r, ok := rhs.Args[j].(*ast.StringConstant)
				if !ok || l.Value != r.Value {
					return false
				}
			case *ast.NumericConstant:
				r, ok := rhs.Args[j].(*ast.NumericConstant)
				if !ok || l.Value != r.Value {
					return false
				}
			case *ast.NilConstant:
				if _, ok := rhs.Args[j].(*ast.NilConstant); !ok {
					return false
				}
			default:
				// Unsupported argument kinds cannot reach this point.
				return false
			}
		}
	}
	//
	return true
}

// atomAt returns the atom at a given position within a supported clause,
// where position 0 is the head and position i (for i >= 1) is body literal
// i-1.
func atomAt(clause *ast.Clause, index int) *ast.Atom {
	if index == 0 {
		return clause.Head
	}
	//
	return bodyAtom(clause, index-1)
}

// bodyAtom returns the body literal at a given position as an atom.  Callers
// must have established that the clause is supported.
func bodyAtom(clause *ast.Clause, index int) *ast.Atom {
	atom, ok := clause.Body[index].(*ast.Atom)
	if !ok {
		panic(fmt.Sprintf("expected atom, got %T", clause.Body[index]))
	}
	//
	return atom
}
