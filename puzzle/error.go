// sodoku-solver - a Sudoku rules engine and solving service.
// Copyright (C) 2025 the sodoku-solver authors.
// Licensed under the MIT license.  See the LICENSE file for details.

package puzzle

import (
	"fmt"
)

/*

Errors

*/

// An Error describes a problem with a grid argument or a
// requested operation.  It can produce an error message in
// English, but its main function is to support localized error
// messaging by clients: it tells the client "this thing failed
// to meet this condition" and provides supplemental details
// about the thing and the condition.
type Error struct {
	Scope     ErrorScope     `json:"scope"`
	Attribute ErrorAttribute `json:"attribute,omitempty"`
	Condition ErrorCondition `json:"condition,omitempty"`
	Values    ErrorData      `json:"values,omitempty"`
	Message   string         `json:"message,omitempty"` // custom message
}

// An ErrorScope explains what type of thing the error is
// referring to.
type ErrorScope int

// Constants for the various error scopes.
const (
	UnknownScope ErrorScope = iota
	RequestScope
	ArgumentScope
	GridScope
	InternalScope
	MaxScope
)

// An ErrorAttribute names the attribute that has a problem.
type ErrorAttribute int

// Constants for the various attribute codes.
const (
	UnknownAttribute ErrorAttribute = iota
	DecodeAttribute
	EncodeAttribute
	SizeAttribute
	ValueAttribute
	IndexAttribute
	MaxAttribute
)

// The ErrorCondition is the predicate that the attribute failed
// to satisfy.
type ErrorCondition int

// Constants for the various error conditions.
const (
	UnknownCondition ErrorCondition = iota
	GeneralCondition
	WrongSizeCondition
	OutOfRangeCondition
	MaxCondition
)

// The ErrorData provides details about the thing that failed to
// meet the predicate (such as the value of an attribute) as well
// as the predicate itself (such as the required size).
//
// Every item in the slice of ErrorData is required to be
// JSON-serializable, so it can be returned to web clients.
type ErrorData []interface{}

// Return an error string from an Error.  If the Error has a
// pre-canned message, this will use it, otherwise it will
// produce an appropriate (English, non-localized) message.
func (e Error) Error() string {
	es := e.Message
	if len(es) > 0 {
		return es
	}
	values := e.Values
	nextVal := func() interface{} {
		if len(values) == 0 {
			return "<unknown>"
		}
		val := values[0]
		values = values[1:]
		return val
	}
	switch e.Scope {
	case RequestScope:
		es = "Invalid request: "
	case ArgumentScope:
		es = "Invalid argument: "
	case GridScope:
		es = "Invalid grid: "
	case InternalScope:
		es = "Internal logic error: "
	default:
		es = "Unknown error: "
	}
	switch e.Attribute {
	case DecodeAttribute:
		es += "JSON Decode error"
	case EncodeAttribute:
		es += "JSON Encode error"
	case SizeAttribute:
		es += "Size"
	case ValueAttribute:
		es += "Value"
	case IndexAttribute:
		es += "Index"
	default:
		es += "<Unknown attribute>"
	}
	es += " (" + fmt.Sprint(nextVal()) + "): "
	switch e.Condition {
	case GeneralCondition:
		es += fmt.Sprint(nextVal())
	case WrongSizeCondition:
		es += fmt.Sprintf("Must be exactly %v", nextVal())
	case OutOfRangeCondition:
		es += fmt.Sprintf("Cell %v must hold a value between %v and %v",
			nextVal(), nextVal(), nextVal())
	default:
		es += fmt.Sprintf("Supplemental data is %v", values)
	}
	return es
}

// sizeError reports a value slice that isn't exactly one grid's
// worth of cells.
func sizeError(got int) Error {
	return Error{
		Scope:     ArgumentScope,
		Attribute: SizeAttribute,
		Condition: WrongSizeCondition,
		Values:    ErrorData{got, CellCount},
	}
}

// valueError reports a cell value outside [0,9] at the given
// reading-order index.
func valueError(val, index int) Error {
	return Error{
		Scope:     ArgumentScope,
		Attribute: ValueAttribute,
		Condition: OutOfRangeCondition,
		Values:    ErrorData{val, index, 0, SideLen},
	}
}
