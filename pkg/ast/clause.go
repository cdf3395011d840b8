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

	"github.com/bits-and-blooms/bitset"
)

// Clause is a rule "head :- body." consisting of a head atom and an ordered
// sequence of body literals.  A clause with an empty body is a fact.
type Clause struct {
	Head *Atom
	Body []Literal
}

// NewClause constructs a clause for a given head and body.
func NewClause(head *Atom, body ...Literal) *Clause {
	return &Clause{head, body}
}

// IsFact determines whether this clause has an empty body.
func (p *Clause) IsFact() bool {
	return len(p.Body) == 0
}

// Clone produces a deep copy of this clause.
func (p *Clause) Clone() *Clause {
	body := make([]Literal, len(p.Body))
	for i, lit := range p.Body {
		body[i] = lit.CloneLiteral()
	}
	//
	return &Clause{p.Head.Clone(), body}
}

// ReorderBody reorders the body of this clause in place, such that position i
// afterwards holds the literal previously at position perm[i].  The given
// permutation must be a valid permutation of {0..n-1} where n is the body
// length.
func (p *Clause) ReorderBody(perm []uint) {
	if len(perm) != len(p.Body) {
		panic("invalid permutation length")
	}
	// Sanity check the permutation whilst reordering.
	var (
		seen = bitset.New(uint(len(perm)))
		body = make([]Literal, len(p.Body))
	)
	//
	for i, j := range perm {
		if seen.Test(j) {
			panic("invalid permutation")
		}
		//
		seen.Set(j)
		body[i] = p.Body[j]
	}
	//
	p.Body = body
}

// Return a string representation of this clause in concrete syntax, such as
// "a(X) :- b(X, Y), c(Y)." or (for facts) "a(1)."
func (p *Clause) String() string {
	var builder strings.Builder
	//
	builder.WriteString(p.Head.String())
	//
	for i, lit := range p.Body {
		if i == 0 {
			builder.WriteString(" :- ")
		} else {
			builder.WriteString(", ")
		}
		//
		builder.WriteString(lit.String())
	}
	//
	builder.WriteString(".")
	//
	return builder.String()
}
