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
package util

import (
	"slices"

	"github.com/bits-and-blooms/bitset"
)

// ValidPermutations extracts every valid permutation from a given 0/1 matrix
// of valid moves.  A permutation p of {0..n-1} is valid iff matrix[i][p[i]] is
// non-zero for every row i, where n is the order of the matrix.  Permutations
// are produced in lexicographic order of their column choices, hence the
// output is deterministic for a given matrix.  The worst case (a matrix of all
// ones) yields n! permutations, so callers are responsible for keeping n
// small.
func ValidPermutations(matrix [][]uint) [][]uint {
	var (
		n = len(matrix)
		// For each row, the columns into which that row may move.
		moves = make([][]uint, n)
	)
	//
	for i, row := range matrix {
		for j, ok := range row {
			if ok != 0 {
				moves[i] = append(moves[i], uint(j))
			}
		}
	}
	// Search for complete permutations, DFS style.
	var (
		permutations [][]uint
		current      = make([]uint, 0, n)
		seen         = bitset.New(uint(n))
	)
	//
	var expand func(row int)
	//
	expand = func(row int) {
		if row == n {
			permutations = append(permutations, slices.Clone(current))
			return
		}
		//
		for _, col := range moves[row] {
			if seen.Test(col) {
				// Column already taken by an earlier row.
				continue
			}
			//
			seen.Set(col)
			current = append(current, col)
			expand(row + 1)
			current = current[:len(current)-1]
			seen.Clear(col)
		}
	}
	//
	expand(0)
	//
	return permutations
}
