// sodoku-solver - a Sudoku rules engine and solving service.
// Copyright (C) 2025 the sodoku-solver authors.
// Licensed under the MIT license.  See the LICENSE file for details.

package puzzle

import (
	"testing"
)

type errorTestcase struct {
	err      Error
	expected string
}

func TestErrorMessages(t *testing.T) {
	tcs := []errorTestcase{
		{
			sizeError(80),
			"Invalid argument: Size (80): Must be exactly 81",
		},
		{
			valueError(10, 40),
			"Invalid argument: Value (10): Cell 40 must hold a value between 0 and 9",
		},
		{
			Error{
				Scope:     RequestScope,
				Attribute: DecodeAttribute,
				Condition: GeneralCondition,
				Values:    ErrorData{"body", "unexpected EOF"},
			},
			"Invalid request: JSON Decode error (body): unexpected EOF",
		},
		{
			Error{
				Scope:     InternalScope,
				Attribute: EncodeAttribute,
				Condition: GeneralCondition,
				Values:    ErrorData{"response", "cycle detected"},
			},
			"Internal logic error: JSON Encode error (response): cycle detected",
		},
		{
			Error{},
			"Unknown error: <Unknown attribute> (<unknown>): Supplemental data is []",
		},
		{
			Error{Message: "canned message wins"},
			"canned message wins",
		},
	}
	for i, tc := range tcs {
		if got := tc.err.Error(); got != tc.expected {
			t.Errorf("TestErrorMessages case %d: message %q (expected %q)",
				i+1, got, tc.expected)
		}
	}
}

func TestErrorIsError(t *testing.T) {
	var err error = sizeError(0)
	if err.Error() == "" {
		t.Errorf("TestErrorIsError: empty message")
	}
}
