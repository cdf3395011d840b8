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
package ast

import (
	"strings"
)

// Program owns an ordered set of relation declarations, an ordered set of
// clauses and an ordered set of I/O directives.  All iteration over a program
// follows declaration order, which keeps every downstream transformation
// deterministic.
type Program struct {
	relations  []*Relation
	clauses    []*Clause
	directives []*Directive
}

// NewProgram constructs an empty program.
func NewProgram() *Program {
	return &Program{}
}

// Relations returns the relations of this program in declaration order.
func (p *Program) Relations() []*Relation {
	return p.relations
}

// Clauses returns the clauses of this program in declaration order.
func (p *Program) Clauses() []*Clause {
	return p.clauses
}

// Directives returns the I/O directives of this program in declaration order.
func (p *Program) Directives() []*Directive {
	return p.directives
}

// Relation returns the relation declared under a given name, or nil if no
// such relation exists.
func (p *Program) Relation(name QualifiedName) *Relation {
	for _, rel := range p.relations {
		if rel.Name.Equals(name) {
			return rel
		}
	}
	//
	return nil
}

// ClausesOf returns all clauses whose head refers to a given relation, in
// declaration order.
func (p *Program) ClausesOf(name QualifiedName) []*Clause {
	var clauses []*Clause
	//
	for _, clause := range p.clauses {
		if clause.Head.Name.Equals(name) {
			clauses = append(clauses, clause)
		}
	}
	//
	return clauses
}

// AddRelation declares a new relation within this program.  Declaring the
// same name twice is a caller bug.
func (p *Program) AddRelation(rel *Relation) {
	if p.Relation(rel.Name) != nil {
		panic("relation already declared")
	}
	//
	p.relations = append(p.relations, rel)
}

// AddClause appends a clause to this program.
func (p *Program) AddClause(clause *Clause) {
	p.clauses = append(p.clauses, clause)
}

// AddDirective appends an I/O directive to this program.
func (p *Program) AddDirective(directive *Directive) {
	p.directives = append(p.directives, directive)
}

// RemoveClause removes a given clause (identified by pointer identity) from
// this program, returning true if it was present.
func (p *Program) RemoveClause(clause *Clause) bool {
	for i, c := range p.clauses {
		if c == clause {
			p.clauses = append(p.clauses[:i], p.clauses[i+1:]...)
			return true
		}
	}
	//
	return false
}

// ReplaceClause substitutes one clause for another, preserving its position
// within the program.  Returns true if the old clause was present.
func (p *Program) ReplaceClause(oldClause *Clause, newClause *Clause) bool {
	for i, c := range p.clauses {
		if c == oldClause {
			p.clauses[i] = newClause
			return true
		}
	}
	//
	return false
}

// RemoveRelation removes the relation declared under a given name, returning
// true if it was present.  Clauses of the relation are not removed; callers
// must do that separately (and first).
func (p *Program) RemoveRelation(name QualifiedName) bool {
	for i, rel := range p.relations {
		if rel.Name.Equals(name) {
			p.relations = append(p.relations[:i], p.relations[i+1:]...)
			return true
		}
	}
	//
	return false
}

// Return a string representation of this program in concrete syntax, with
// declarations first, then directives, then clauses.
func (p *Program) String() string {
	var builder strings.Builder
	//
	for _, rel := range p.relations {
		builder.WriteString(rel.String())
		builder.WriteString("\n")
	}
	//
	for _, directive := range p.directives {
		builder.WriteString(directive.String())
		builder.WriteString("\n")
	}
	//
	for _, clause := range p.clauses {
		builder.WriteString(clause.String())
		builder.WriteString("\n")
	}
	//
	return builder.String()
}
