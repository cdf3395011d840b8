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
	"github.com/bits-and-blooms/bitset"
	log "github.com/sirupsen/logrus"

	"github.com/andreabedini/souffle/pkg/ast"
	"github.com/andreabedini/souffle/pkg/ast/analysis"
)

// MinimiseProgram rewrites a program into a semantically equivalent but
// smaller one, by removing four kinds of textual redundancy: repeated body
// literals, clauses satisfied only when already satisfied, clauses which
// recompute another clause of the same relation, and singleton relations
// which recompute another singleton relation.  The multiset of tuples
// derivable for every surviving relation is unchanged.
type MinimiseProgram struct{}

// Name of this transformer.
func (t *MinimiseProgram) Name() string {
	return "MinimiseProgram"
}

// Transform implementation for the Transformer interface.
func (t *MinimiseProgram) Transform(program *ast.Program) bool {
	changed := reduceClauseBodies(program)
	changed = removeRedundantClauses(program) || changed
	changed = reduceLocallyEquivalentClauses(program) || changed
	changed = reduceSingletonRelations(program) || changed
	//
	return changed
}

// reduceClauseBodies removes repeated literals within each clause body,
// keeping the first occurrence of every literal.  Returns true iff the
// program has changed.
func reduceClauseBodies(program *ast.Program) bool {
	changed := false
	//
	for _, clause := range program.Clauses() {
		duplicates := bitset.New(uint(len(clause.Body)))
		// A position is redundant if an earlier position holds an equal
		// literal.
		for i, lit := range clause.Body {
			for j := 0; j < i; j++ {
				if ast.LiteralsEqual(lit, clause.Body[j]) {
					duplicates.Set(uint(i))
					break
				}
			}
		}
		//
		if duplicates.Any() {
			// Build a replacement clause restricted to the non-duplicate
			// positions, preserving their order.
			minimised := ast.NewClause(clause.Head.Clone())
			//
			for i, lit := range clause.Body {
				if !duplicates.Test(uint(i)) {
					minimised.Body = append(minimised.Body, lit.CloneLiteral())
				}
			}
			//
			program.ReplaceClause(clause, minimised)
			//
			changed = true
		}
	}
	//
	if changed {
		log.Debug("minimisation removed duplicate body literals")
	}
	//
	return changed
}

// removeRedundantClauses deletes clauses which are only satisfied if they are
// already satisfied, i.e. whose head also occurs as a body literal.  Returns
// true iff the program has changed.
func removeRedundantClauses(program *ast.Program) bool {
	var redundant []*ast.Clause
	//
	for _, clause := range program.Clauses() {
		for _, lit := range clause.Body {
			if ast.LiteralsEqual(clause.Head, lit) {
				redundant = append(redundant, clause)
				break
			}
		}
	}
	//
	for _, clause := range redundant {
		log.Debug("minimisation removed tautological clause \"", clause.String(), "\"")
		program.RemoveClause(clause)
	}
	//
	return len(redundant) > 0
}

// reduceLocallyEquivalentClauses removes locally-redundant clauses.  A clause
// is locally redundant if another clause within the same relation computes
// the same set of tuples.  Returns true iff the program has changed.
func reduceLocallyEquivalentClauses(program *ast.Program) bool {
	var clausesToDelete []*ast.Clause
	// Split each relation's clauses into equivalence classes, keeping the
	// first member of each class as its representative.
	for _, rel := range program.Relations() {
		var equivalenceClasses [][]*ast.Clause
		//
		for _, clause := range program.ClausesOf(rel.Name) {
			added := false
			//
			for i, eqClass := range equivalenceClasses {
				representative := eqClass[0]
				//
				if BijectivelyEquivalent(representative, clause) {
					// Clause belongs to an existing equivalence class, so
					// only its representative is kept.
					equivalenceClasses[i] = append(eqClass, clause)
					clausesToDelete = append(clausesToDelete, clause)
					added = true
					//
					break
				}
			}
			//
			if !added {
				equivalenceClasses = append(equivalenceClasses, []*ast.Clause{clause})
			}
		}
	}
	//
	for _, clause := range clausesToDelete {
		log.Debug("minimisation removed locally-equivalent clause \"", clause.String(), "\"")
		program.RemoveClause(clause)
	}
	//
	return len(clausesToDelete) > 0
}

// reduceSingletonRelations removes redundant singleton relations.  A
// singleton relation (one with a single defining clause, not participating in
// I/O) is redundant if another singleton relation computes the same set of
// tuples; every reference to a redundant relation is rewritten to its
// canonical equivalent.  Returns true iff the program has changed.
func reduceSingletonRelations(program *ast.Program) bool {
	iotypes := analysis.NewIOTypes(program)
	// Find all singleton relations to consider, in declaration order.
	var singletonClauses []*ast.Clause
	//
	for _, rel := range program.Relations() {
		if clauses := program.ClausesOf(rel.Name); !iotypes.IsIO(rel.Name) && len(clauses) == 1 {
			singletonClauses = append(singletonClauses, clauses[0])
		}
	}
	// Keep track of clauses found to be redundant, along with the canonical
	// relation standing in for each redundant relation.
	var (
		redundant = make(map[*ast.Clause]bool)
		canonical = make(map[string]ast.QualifiedName)
	)
	// Check pairwise equivalence of each singleton relation.  Skipping
	// already-redundant representatives routes every member of an
	// equivalence class directly to its earliest relation.
	for i, first := range singletonClauses {
		if redundant[first] {
			continue
		}
		//
		for _, second := range singletonClauses[i+1:] {
			// The equivalence check ignores the head relation names.
			if BijectivelyEquivalent(first, second) {
				redundant[second] = true
				canonical[second.Head.Name.String()] = first.Head.Name
			}
		}
	}
	// Remove redundant relation definitions.
	for _, clause := range singletonClauses {
		if redundant[clause] {
			name := clause.Head.Name
			//
			if program.Relation(name) == nil {
				panic("relation does not exist in program")
			}
			//
			log.Debug("minimisation removed singleton relation \"", name.String(), "\"")
			program.RemoveClause(clause)
			program.RemoveRelation(name)
		}
	}
	// Replace each redundant relation appearance with its canonical name.
	program.Apply(ast.MapperFunc(func(node ast.Node) ast.Node {
		if atom, ok := node.(*ast.Atom); ok {
			if name, ok := canonical[atom.Name.String()]; ok {
				natom := atom.Clone()
				natom.Name = name
				//
				return natom
			}
		}
		//
		return node
	}))
	// Program was changed iff a relation was replaced.
	return len(canonical) > 0
}
