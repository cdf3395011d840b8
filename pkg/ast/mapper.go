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
	"fmt"
)

// Mapper maps an AST node to a replacement node, returning its argument
// unchanged where no replacement applies.  Mappers are applied bottom-up: by
// the time a node is mapped, all of its children have been.  A mapper must
// replace a node with one of the same variant class (an atom stays an atom,
// an argument stays an argument).
type Mapper interface {
	Map(Node) Node
}

// MapperFunc adapts an ordinary function into a Mapper.
type MapperFunc func(Node) Node

// Map implementation for the Mapper interface.
func (fn MapperFunc) Map(node Node) Node {
	return fn(node)
}

// Apply rewrites every clause of this program bottom-up using a given mapper.
func (p *Program) Apply(mapper Mapper) {
	for i, clause := range p.clauses {
		p.clauses[i] = applyClause(mapper, clause)
	}
}

func applyClause(mapper Mapper, clause *Clause) *Clause {
	clause.Head = applyAtom(mapper, clause.Head)
	//
	for i, lit := range clause.Body {
		clause.Body[i] = applyLiteral(mapper, lit)
	}
	//
	node := mapper.Map(clause)
	//
	nclause, ok := node.(*Clause)
	if !ok {
		panic(fmt.Sprintf("mapper replaced clause with %T", node))
	}
	//
	return nclause
}

func applyLiteral(mapper Mapper, lit Literal) Literal {
	switch t := lit.(type) {
	case *Atom:
		return applyAtom(mapper, t)
	case *Negation:
		t.Atom = applyAtom(mapper, t.Atom)
	case *BinaryConstraint:
		t.Lhs = applyArgument(mapper, t.Lhs)
		t.Rhs = applyArgument(mapper, t.Rhs)
	default:
		panic(fmt.Sprintf("unknown literal %T", lit))
	}
	//
	node := mapper.Map(lit)
	//
	nlit, ok := node.(Literal)
	if !ok {
		panic(fmt.Sprintf("mapper replaced literal with %T", node))
	}
	//
	return nlit
}

func applyAtom(mapper Mapper, atom *Atom) *Atom {
	for i, arg := range atom.Args {
		atom.Args[i] = applyArgument(mapper, arg)
	}
	//
	node := mapper.Map(atom)
	//
	natom, ok := node.(*Atom)
	if !ok {
		panic(fmt.Sprintf("mapper replaced atom with %T", node))
	}
	//
	return natom
}

func applyArgument(mapper Mapper, arg Argument) Argument {
	node := mapper.Map(arg)
	//
	narg, ok := node.(Argument)
	if !ok {
		panic(fmt.Sprintf("mapper replaced argument with %T", node))
	}
	//
	return narg
}
