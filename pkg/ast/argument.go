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
	"strconv"
)

// Argument represents a term occurring in an atom's argument list.  Arguments
// form a closed set of variants which are distinguished by type switching,
// mirroring the closed grammar of the surface language.
type Argument interface {
	Node
	// CloneArgument produces a deep copy of this argument.
	CloneArgument() Argument
	isArgument()
}

// ============================================================================
// Variable
// ============================================================================

// Variable is a named variable, such as X in a(X).
type Variable struct {
	Name string
}

// NewVariable constructs a variable with a given name.
func NewVariable(name string) *Variable {
	return &Variable{name}
}

// CloneArgument produces a deep copy of this variable.
func (p *Variable) CloneArgument() Argument {
	return &Variable{p.Name}
}

func (p *Variable) String() string {
	return p.Name
}

func (p *Variable) isArgument() {}

// ============================================================================
// UnnamedVariable
// ============================================================================

// UnnamedVariable is the anonymous variable "_", each occurrence of which is
// distinct from every other.
type UnnamedVariable struct{}

// CloneArgument produces a deep copy of this variable.
func (p *UnnamedVariable) CloneArgument() Argument {
	return &UnnamedVariable{}
}

func (p *UnnamedVariable) String() string {
	return "_"
}

func (p *UnnamedVariable) isArgument() {}

// ============================================================================
// StringConstant
// ============================================================================

// StringConstant is a symbol constant, such as "abc".
type StringConstant struct {
	Value string
}

// NewStringConstant constructs a string constant with a given value.
func NewStringConstant(value string) *StringConstant {
	return &StringConstant{value}
}

// CloneArgument produces a deep copy of this constant.
func (p *StringConstant) CloneArgument() Argument {
	return &StringConstant{p.Value}
}

func (p *StringConstant) String() string {
	return fmt.Sprintf("%q", p.Value)
}

func (p *StringConstant) isArgument() {}

// ============================================================================
// NumericConstant
// ============================================================================

// NumericConstant is a number constant, such as 123.
type NumericConstant struct {
	Value int64
}

// NewNumericConstant constructs a numeric constant with a given value.
func NewNumericConstant(value int64) *NumericConstant {
	return &NumericConstant{value}
}

// CloneArgument produces a deep copy of this constant.
func (p *NumericConstant) CloneArgument() Argument {
	return &NumericConstant{p.Value}
}

func (p *NumericConstant) String() string {
	return strconv.FormatInt(p.Value, 10)
}

func (p *NumericConstant) isArgument() {}

// ============================================================================
// NilConstant
// ============================================================================

// NilConstant is the record constant nil.
type NilConstant struct{}

// CloneArgument produces a deep copy of this constant.
func (p *NilConstant) CloneArgument() Argument {
	return &NilConstant{}
}

func (p *NilConstant) String() string {
	return "nil"
}

func (p *NilConstant) isArgument() {}

// ============================================================================
// Equality
// ============================================================================

// ArgumentsEqual implements structural equality over arguments.  Constants are
// compared by value; variables by name.  Unnamed variables are never equal,
// since each occurrence stands for a distinct variable.
func ArgumentsEqual(left Argument, right Argument) bool {
	switch l := left.(type) {
	case *Variable:
		r, ok := right.(*Variable)
		return ok && l.Name == r.Name
	case *StringConstant:
		r, ok := right.(*StringConstant)
		return ok && l.Value == r.Value
	case *NumericConstant:
		r, ok := right.(*NumericConstant)
		return ok && l.Value == r.Value
	case *NilConstant:
		_, ok := right.(*NilConstant)
		return ok
	case *UnnamedVariable:
		return false
	default:
		panic(fmt.Sprintf("unknown argument %T", left))
	}
}
