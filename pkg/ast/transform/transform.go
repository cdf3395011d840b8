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

	log "github.com/sirupsen/logrus"

	"github.com/andreabedini/souffle/pkg/ast"
)

// Transformer rewrites a program in place, reporting whether anything
// changed.  Transformers are the unit of composition for the pass pipeline;
// each must leave the program semantically equivalent to what it was given.
type Transformer interface {
	// Name identifies this transformer, for logging.
	Name() string
	// Transform applies this transformer to a given program, returning true
	// iff the program was changed.
	Transform(*ast.Program) bool
}

// FixedPoint repeatedly applies a transformer until it reports no further
// change.  Termination relies on the underlying transformer making monotonic
// progress (as minimisation does: clause and relation counts only ever
// shrink).
type FixedPoint struct {
	transformer Transformer
}

// NewFixedPoint wraps a given transformer to run until quiescence.
func NewFixedPoint(transformer Transformer) *FixedPoint {
	return &FixedPoint{transformer}
}

// Name of this transformer.
func (p *FixedPoint) Name() string {
	return fmt.Sprintf("FixedPoint(%s)", p.transformer.Name())
}

// Transform implementation for the Transformer interface.
func (p *FixedPoint) Transform(program *ast.Program) bool {
	changed := false
	//
	for iteration := 1; p.transformer.Transform(program); iteration++ {
		log.Debug(p.transformer.Name(), " changed the program (iteration ", iteration, ")")
		changed = true
	}
	//
	return changed
}

// Minimise applies program minimisation until quiescence, returning true iff
// the program was changed.  Running to a fixed point is what makes this
// idempotent: merging singleton relations can introduce fresh duplicate body
// literals, which a single round would leave behind.  Applying Minimise twice
// in a row, the second application returns false.
func Minimise(program *ast.Program) bool {
	minimiser := NewFixedPoint(&MinimiseProgram{})
	return minimiser.Transform(program)
}
