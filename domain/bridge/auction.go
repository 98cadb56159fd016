package bridge

// Outcome is the result of a legal call. Terminal is set when the call ends
// the auction, in which case Contract holds the result (possibly NoContract).
type Outcome struct {
	Terminal bool
	Contract Contract
}

var accepted = Outcome{}

// LastBid finds the most recent bid of an auction. ok is false when nobody
// has bid yet.
func LastBid(auction []Call) (idx int, bid Bid, ok bool) {
	for i := len(auction) - 1; i >= 0; i-- {
		if b, isBid := auction[i].Bid(); isBid {
			return i, b, true
		}
	}
	return -1, Bid{}, false
}

// Evaluate decides whether candidate is a legal call after history, an
// auction dealt by dealer. history is assumed to be a legal sequence, as
// produced by earlier accepted calls; it is neither checked nor modified.
//
// A nil error with Outcome.Terminal unset means the call is legal and the
// auction goes on. Illegal calls yield an *InsufficientBidError or an
// *IllegalDoubleError, both matching ErrIllegalCall.
func Evaluate(history []Call, dealer Seat, candidate Call) (Outcome, error) {
	switch candidate.kind {
	case KindPass:
		return evaluatePass(history, dealer)
	case KindDouble:
		return accepted, evaluateDouble(history)
	case KindRedouble:
		return accepted, evaluateRedouble(history)
	case KindBid:
		return accepted, evaluateBid(history, candidate.bid)
	}
	return accepted, ErrUnsupportedCall
}

// evaluatePass is always legal. The pass ends the auction when it follows
// two passes and at least three calls have been made.
func evaluatePass(history []Call, dealer Seat) (Outcome, error) {
	n := len(history)
	if n < 3 || !history[n-1].IsPass() || !history[n-2].IsPass() {
		return accepted, nil
	}
	idx, last, ok := LastBid(history)
	if !ok {
		return Outcome{Terminal: true, Contract: NoContract}, nil
	}

	// The declarer is the first player of the winning partnership to name
	// the final strain; partnerships alternate with the call index.
	first := idx
	for i := idx % 2; i < idx; i += 2 {
		if b, isBid := history[i].Bid(); isBid && b.strain == last.strain {
			first = i
			break
		}
	}

	var doubled, redoubled bool
	for _, c := range history[idx+1:] {
		switch c.kind {
		case KindRedouble:
			redoubled = true
		case KindDouble:
			doubled = true
		}
	}
	doubled = doubled && !redoubled

	contract, err := NewContract(&last, SeatOf(first, dealer), doubled, redoubled)
	if err != nil {
		return accepted, err
	}
	return Outcome{Terminal: true, Contract: contract}, nil
}

func evaluateDouble(history []Call) error {
	idx, _, ok := LastBid(history)
	if !ok {
		return &IllegalDoubleError{Call: DoubleCall(), Reason: "there must be a bid before you can double"}
	}
	if idx%2 == len(history)%2 {
		return &IllegalDoubleError{Call: DoubleCall(), Reason: "you may not double your partner's bid"}
	}
	for _, c := range history[idx+1:] {
		if !c.IsPass() {
			return &IllegalDoubleError{Call: DoubleCall(), Reason: "there may be no intervening non-pass calls"}
		}
	}
	return nil
}

// evaluateRedouble accepts exactly two shapes: a redouble straight after a
// double, and a redouble after double, pass, pass.
func evaluateRedouble(history []Call) error {
	idx, _, ok := LastBid(history)
	if !ok {
		return &IllegalDoubleError{Call: RedoubleCall(), Reason: "there must be a bid and a double before you may redouble"}
	}
	n := len(history)
	if history[n-1].IsDouble() {
		return nil
	}
	if idx < n-3 && history[n-3].IsDouble() && history[n-2].IsPass() && history[n-1].IsPass() {
		return nil
	}
	return &IllegalDoubleError{Call: RedoubleCall(), Reason: "you may only redouble your opponent's double"}
}

func evaluateBid(history []Call, candidate Bid) error {
	_, last, ok := LastBid(history)
	if !ok || last.Less(candidate) {
		return nil
	}
	return &InsufficientBidError{Candidate: candidate, Blocking: last}
}
