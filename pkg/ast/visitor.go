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

// VisitArguments invokes a given callback on every argument occurring within
// a given node, in depth-first order.
func VisitArguments(node Node, fn func(Argument)) {
	visitDepthFirst(node, func(n Node) {
		if arg, ok := n.(Argument); ok {
			fn(arg)
		}
	})
}

// VisitVariables invokes a given callback on every named variable occurring
// within a given node, in depth-first order.
func VisitVariables(node Node, fn func(*Variable)) {
	visitDepthFirst(node, func(n Node) {
		if v, ok := n.(*Variable); ok {
			fn(v)
		}
	})
}

// DistinctVariables returns the set of distinct variable names occurring
// within a given node.
func DistinctVariables(node Node) map[string]bool {
	names := make(map[string]bool)
	//
	VisitVariables(node, func(v *Variable) {
		names[v.Name] = true
	})
	//
	return names
}

// visitDepthFirst walks a given node and all of its descendants, invoking the
// callback on each (parent before children).
func visitDepthFirst(node Node, fn func(Node)) {
	fn(node)
	//
	switch t := node.(type) {
	case *Program:
		for _, clause := range t.clauses {
			visitDepthFirst(clause, fn)
		}
	case *Clause:
		visitDepthFirst(t.Head, fn)
		//
		for _, lit := range t.Body {
			visitDepthFirst(lit, fn)
		}
	case *Atom:
		for _, arg := range t.Args {
			visitDepthFirst(arg, fn)
		}
	case *Negation:
		visitDepthFirst(t.Atom, fn)
	case *BinaryConstraint:
		visitDepthFirst(t.Lhs, fn)
		visitDepthFirst(t.Rhs, fn)
	case *Variable, *UnnamedVariable, *StringConstant, *NumericConstant, *NilConstant:
		// leaf
	default:
		panic(fmt.Sprintf("unknown node %T", node))
	}
}
