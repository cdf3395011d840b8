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
	"testing"

	"github.com/andreabedini/souffle/pkg/ast"
	"github.com/andreabedini/souffle/pkg/parser"
)

func Test_IOTypes_01(t *testing.T) {
	input := `
.decl a(x:number)
.decl b(x:number)
.decl c(x:number)
.decl d(x:number)
.input a
.output b
.printsize c
`
	program, err := parser.ParseString(input)
	if err != nil {
		t.Fatalf("parsing program: %s", err.Error())
	}
	//
	iotypes := NewIOTypes(program)
	//
	checkIO(t, iotypes, "a", true, false, false)
	checkIO(t, iotypes, "b", false, true, false)
	checkIO(t, iotypes, "c", false, false, true)
	checkIO(t, iotypes, "d", false, false, false)
}

func Test_IOTypes_02(t *testing.T) {
	// A relation can participate in I/O in several ways at once.
	input := `
.decl a(x:number)
.input a
.output a
`
	program, err := parser.ParseString(input)
	if err != nil {
		t.Fatalf("parsing program: %s", err.Error())
	}
	//
	iotypes := NewIOTypes(program)
	//
	checkIO(t, iotypes, "a", true, true, false)
}

// ===================================================================
// Test Helpers
// ===================================================================

func checkIO(t *testing.T, iotypes *IOTypes, name string, input bool, output bool, printsize bool) {
	qname := ast.ParseQualifiedName(name)
	//
	if iotypes.IsInput(qname) != input {
		t.Errorf("unexpected input classification for %s", name)
	}
	//
	if iotypes.IsOutput(qname) != output {
		t.Errorf("unexpected output classification for %s", name)
	}
	//
	if iotypes.IsPrintSize(qname) != printsize {
		t.Errorf("unexpected printsize classification for %s", name)
	}
	//
	if expected := input || output || printsize; iotypes.IsIO(qname) != expected {
		t.Errorf("unexpected I/O classification for %s", name)
	}
}
