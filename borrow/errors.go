package borrow

import (
	"errors"
	"fmt"
)

var (
	// ErrNoValue signals that an address does not designate a stored value.
	ErrNoValue = errors.New("no value")
	// ErrSameValue signals that an address designates a slot already claimed
	// by an earlier address of the same call.
	ErrSameValue = errors.New("same value")
)

// An AddrError is the error stored in a Result when its address could not be
// borrowed. Err is either ErrNoValue or ErrSameValue.
type AddrError struct {
	Pos  int // 0-based position of the address in the call
	Addr any
	Err  error
}

func (e *AddrError) Error() string {
	return fmt.Sprintf("address #%d (%v): %s", e.Pos+1, e.Addr, e.Err)
}

func (e *AddrError) Unwrap() error { return e.Err }
