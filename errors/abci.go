package errors

import (
	"fmt"
	"reflect"
)

const (
	// SuccessABCICode is the code of a response without an error.
	SuccessABCICode = 0

	// Errors without a registered root, and recovered panics, share this
	// code and a generic log so that no internals leak to clients.
	internalABCICode uint32 = 1
	internalABCILog         = "internal error"
)

// ABCIInfo returns the code and log of an ABCI response for err. Internal
// errors and panics are reported with code 1 and a generic log unless debug
// is set, in which case the full error with its stack trace is logged.
func ABCIInfo(err error, debug bool) (uint32, string) {
	if errIsNil(err) {
		return SuccessABCICode, ""
	}
	code := abciCode(err)
	if ErrPanic.Is(err) {
		code = internalABCICode
	}
	switch {
	case debug:
		return code, fmt.Sprintf("%+v", err)
	case code == internalABCICode:
		return code, internalABCILog
	default:
		return code, err.Error()
	}
}

type coder interface {
	ABCICode() uint32
}

// abciCode returns the code of the first error in the chain that has one.
func abciCode(err error) uint32 {
	if errIsNil(err) {
		return SuccessABCICode
	}
	for {
		if c, ok := err.(coder); ok {
			return c.ABCICode()
		}
		c, ok := err.(causer)
		if !ok {
			return internalABCICode
		}
		err = c.Cause()
	}
}

// errIsNil also catches typed nil pointers stored in the interface.
func errIsNil(err error) bool {
	if err == nil {
		return true
	}
	if v := reflect.ValueOf(err); v.Kind() == reflect.Ptr {
		return v.IsNil()
	}
	return false
}

// FromABCI rebuilds the error of a node response. The result wraps the
// registered root error with the same code, so Is checks work in a client.
// Internal and unknown codes become ErrHuman.
func FromABCI(code uint32, log string) error {
	if code == SuccessABCICode {
		return nil
	}
	kind, ok := usedCodes[code]
	if !ok || kind == nil {
		return &abciError{kind: ErrHuman, log: fmt.Sprintf("code %d: %s", code, log)}
	}
	return &abciError{kind: kind, log: log}
}

// abciError keeps the node log as is. That log already ends with the
// description of the root error.
type abciError struct {
	kind *Error
	log  string
}

func (e *abciError) Error() string {
	if e.log == "" {
		return e.kind.desc
	}
	return e.log
}

func (e *abciError) Cause() error {
	return e.kind
}
