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
	"slices"
	"strings"
)

// QualifiedName uniquely identifies a relation within a program as a dotted
// path of identifiers (e.g. "graph.edge").  Qualified names have value
// semantics and are never mutated once constructed.
type QualifiedName struct {
	// Segments in the name.
	segments []string
}

// NewQualifiedName constructs a qualified name from one or more segments.
func NewQualifiedName(segments ...string) QualifiedName {
	if len(segments) == 0 {
		panic("qualified name requires at least one segment")
	}
	//
	return QualifiedName{slices.Clone(segments)}
}

// ParseQualifiedName parses a dotted string (e.g. "graph.edge") into a
// qualified name.
func ParseQualifiedName(name string) QualifiedName {
	return QualifiedName{strings.Split(name, ".")}
}

// Depth returns the number of segments in this name.
func (p QualifiedName) Depth() uint {
	return uint(len(p.segments))
}

// Head returns the first (i.e. outermost) segment in this name.
func (p QualifiedName) Head() string {
	return p.segments[0]
}

// Tail returns the last (i.e. innermost) segment in this name.
func (p QualifiedName) Tail() string {
	n := len(p.segments) - 1
	return p.segments[n]
}

// Get returns the nth segment of this name.
func (p QualifiedName) Get(nth uint) string {
	return p.segments[nth]
}

// Extend returns this name extended with a new innermost segment.
func (p QualifiedName) Extend(tail string) QualifiedName {
	nsegments := make([]string, 0, len(p.segments)+1)
	nsegments = append(nsegments, p.segments...)
	nsegments = append(nsegments, tail)
	//
	return QualifiedName{nsegments}
}

// Equals determines whether two qualified names are the same.
func (p QualifiedName) Equals(other QualifiedName) bool {
	return slices.Equal(p.segments, other.segments)
}

// Compare implements a total lexicographic ordering over qualified names,
// which gives deterministic iteration wherever names must be sorted.
func (p QualifiedName) Compare(other QualifiedName) int {
	return slices.Compare(p.segments, other.segments)
}

// Return a string representation of this name, with segments separated by
// dots.  The representation is canonical: two names are equal iff their
// strings are, hence it doubles as a map key.
func (p QualifiedName) String() string {
	return strings.Join(p.segments, ".")
}
