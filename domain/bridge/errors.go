package bridge

import (
	"errors"
	"fmt"
)

var (
	// ErrIllegalCall matches every legality error returned by Evaluate.
	ErrIllegalCall = errors.New("illegal call")
	// ErrUnsupportedCall is returned for a call of no known kind, which only
	// the zero Call can be.
	ErrUnsupportedCall = errors.New("candidate should be a bid, double, redouble or pass")
	// ErrContractIntegrity is returned when a contract would be doubled and
	// redoubled at the same time.
	ErrContractIntegrity = errors.New("contract should not be both doubled and redoubled")
)

// FormatError reports a token or value that does not describe a call.
type FormatError struct {
	Token  string
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("%q did not compute as a call: %s", e.Token, e.Reason)
}

// LookupError reports an unknown strain abbreviation.
type LookupError struct {
	Abbrev string
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("%q is not a known strain abbreviation", e.Abbrev)
}

// InsufficientBidError is returned when a bid does not supersede the last
// bid of the auction.
type InsufficientBidError struct {
	Candidate Bid
	Blocking  Bid
}

func (e *InsufficientBidError) Error() string {
	return fmt.Sprintf("%s does not supersede %s", e.Candidate, e.Blocking)
}

func (e *InsufficientBidError) Is(target error) bool {
	return target == ErrIllegalCall
}

// IllegalDoubleError is returned for a double or redouble that the auction
// does not allow.
type IllegalDoubleError struct {
	Call   Call
	Reason string
}

func (e *IllegalDoubleError) Error() string {
	return fmt.Sprintf("illegal %s: %s", e.Call, e.Reason)
}

func (e *IllegalDoubleError) Is(target error) bool {
	return target == ErrIllegalCall
}
