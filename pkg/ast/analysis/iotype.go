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
package analysis

import (
	"github.com/andreabedini/souffle/pkg/ast"
)

// IOTypes classifies the relations of a program according to its I/O
// directives.  Relations participating in I/O form part of the program's
// external contract and must survive any transformation that removes or
// renames relations.
type IOTypes struct {
	inputs     map[string]bool
	outputs    map[string]bool
	printsizes map[string]bool
}

// NewIOTypes computes the I/O classification of a given program.
func NewIOTypes(program *ast.Program) *IOTypes {
	iotypes := &IOTypes{
		inputs:     make(map[string]bool),
		outputs:    make(map[string]bool),
		printsizes: make(map[string]bool),
	}
	//
	for _, directive := range program.Directives() {
		key := directive.Name.String()
		//
		switch directive.Kind {
		case ast.InputDirective:
			iotypes.inputs[key] = true
		case ast.OutputDirective:
			iotypes.outputs[key] = true
		case ast.PrintSizeDirective:
			iotypes.printsizes[key] = true
		}
	}
	//
	return iotypes
}

// IsInput determines whether a given relation is read from an external
// source.
func (p *IOTypes) IsInput(name ast.QualifiedName) bool {
	return p.inputs[name.String()]
}

// IsOutput determines whether a given relation is written to an external
// sink.
func (p *IOTypes) IsOutput(name ast.QualifiedName) bool {
	return p.outputs[name.String()]
}

// IsPrintSize determines whether a given relation has its size reported.
func (p *IOTypes) IsPrintSize(name ast.QualifiedName) bool {
	return p.printsizes[name.String()]
}

// IsIO determines whether a given relation participates in I/O in any way.
func (p *IOTypes) IsIO(name ast.QualifiedName) bool {
	return p.IsInput(name) || p.IsOutput(name) || p.IsPrintSize(name)
}
