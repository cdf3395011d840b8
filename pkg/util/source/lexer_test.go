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
package source

import (
	"testing"
)

const (
	TEST_EOF uint = iota
	TEST_WHITESPACE
	TEST_WORD
	TEST_DIGITS
	TEST_ARROW
	TEST_LBRACE
)

func testScanner() Scanner[rune] {
	return Or(
		Many(TEST_WHITESPACE, ' ', '\t'),
		Word(TEST_ARROW, ':', '-'),
		One(TEST_LBRACE, '('),
		ManyWith(TEST_DIGITS, '0', '9'),
		ManyWith(TEST_WORD, 'a', 'z'),
		Eof[rune](TEST_EOF),
	)
}

func Test_Lexer_01(t *testing.T) {
	checkTokens(t, "abc 12 :-(", TEST_WORD, TEST_WHITESPACE, TEST_DIGITS, TEST_WHITESPACE,
		TEST_ARROW, TEST_LBRACE, TEST_EOF)
}

func Test_Lexer_02(t *testing.T) {
	// Empty input yields just the end-of-file marker.
	checkTokens(t, "", TEST_EOF)
}

func Test_Lexer_03(t *testing.T) {
	// An unscannable character stalls the lexer, leaving input behind.
	lexer := NewLexer([]rune("abc?def"), testScanner())
	lexer.Collect()
	//
	if lexer.Remaining() == 0 {
		t.Errorf("expected lexer to stall on unexpected character")
	}
	//
	if lexer.Index() != 3 {
		t.Errorf("expected lexer stalled at index 3, got %d", lexer.Index())
	}
}

func Test_Lexer_04(t *testing.T) {
	// Token spans index the original input.
	lexer := NewLexer([]rune("ab 12"), testScanner())
	tokens := lexer.Collect()
	//
	if len(tokens) != 4 {
		t.Fatalf("expected 4 tokens, got %d", len(tokens))
	}
	//
	if tokens[2].Span.Start() != 3 || tokens[2].Span.End() != 5 {
		t.Errorf("unexpected span %d..%d", tokens[2].Span.Start(), tokens[2].Span.End())
	}
}

// ===================================================================
// Test Helpers
// ===================================================================

func checkTokens(t *testing.T, input string, expected ...uint) {
	lexer := NewLexer([]rune(input), testScanner())
	tokens := lexer.Collect()
	//
	if lexer.Remaining() > 0 {
		t.Fatalf("lexer stalled at index %d", lexer.Index())
	}
	//
	if len(tokens) != len(expected) {
		t.Fatalf("expected %d tokens, got %d", len(expected), len(tokens))
	}
	//
	for i, kind := range expected {
		if tokens[i].Kind != kind {
			t.Errorf("token %d: expected kind %d, got %d", i, kind, tokens[i].Kind)
		}
	}
}
