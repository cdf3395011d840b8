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
	"strings"
)

// AttributeType identifies the primitive type of a relation attribute.
type AttributeType uint

// The available primitive types.
const (
	SymbolType AttributeType = iota
	NumberType
	UnsignedType
	FloatType
)

func (t AttributeType) String() string {
	switch t {
	case SymbolType:
		return "symbol"
	case NumberType:
		return "number"
	case UnsignedType:
		return "unsigned"
	case FloatType:
		return "float"
	default:
		panic(fmt.Sprintf("unknown attribute type %d", t))
	}
}

// Attribute is a single named column of a relation.
type Attribute struct {
	Name string
	Type AttributeType
}

func (p Attribute) String() string {
	return fmt.Sprintf("%s:%s", p.Name, p.Type.String())
}

// Relation is a declared relation, with a qualified name and a fixed arity
// determined by its attributes.
type Relation struct {
	Name       QualifiedName
	Attributes []Attribute
}

// NewRelation constructs a relation for a given name and set of attributes.
func NewRelation(name QualifiedName, attributes ...Attribute) *Relation {
	return &Relation{name, attributes}
}

// Arity returns the number of attributes of this relation.
func (p *Relation) Arity() uint {
	return uint(len(p.Attributes))
}

// Return a string representation of this relation declaration, such as
// ".decl edge(x:number, y:number)".
func (p *Relation) String() string {
	var builder strings.Builder
	//
	builder.WriteString(".decl ")
	builder.WriteString(p.Name.String())
	builder.WriteString("(")
	//
	for i, attr := range p.Attributes {
		if i != 0 {
			builder.WriteString(", ")
		}
		//
		builder.WriteString(attr.String())
	}
	//
	builder.WriteString(")")
	//
	return builder.String()
}

// ============================================================================
// Directives
// ============================================================================

// DirectiveKind identifies the kind of an I/O directive.
type DirectiveKind uint

// The available I/O directives.
const (
	// InputDirective marks a relation as read from an external source.
	InputDirective DirectiveKind = iota
	// OutputDirective marks a relation as written to an external sink.
	OutputDirective
	// PrintSizeDirective marks a relation as having its size reported.
	PrintSizeDirective
)

func (k DirectiveKind) String() string {
	switch k {
	case InputDirective:
		return ".input"
	case OutputDirective:
		return ".output"
	case PrintSizeDirective:
		return ".printsize"
	default:
		panic(fmt.Sprintf("unknown directive kind %d", k))
	}
}

// Directive associates an I/O behaviour with a relation.
type Directive struct {
	Kind DirectiveKind
	Name QualifiedName
}

// NewDirective constructs a directive of a given kind for a given relation.
func NewDirective(kind DirectiveKind, name QualifiedName) *Directive {
	return &Directive{kind, name}
}

func (p *Directive) String() string {
	return fmt.Sprintf("%s %s", p.Kind.String(), p.Name.String())
}
