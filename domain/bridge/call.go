package bridge

import (
	"regexp"
	"strconv"
	"strings"
)

// CallKind tells the four kinds of call apart.
type CallKind uint8

const (
	kindNone CallKind = iota
	KindPass
	KindDouble
	KindRedouble
	KindBid
)

func (k CallKind) String() string {
	switch k {
	case KindPass:
		return "pass"
	case KindDouble:
		return "double"
	case KindRedouble:
		return "redouble"
	case KindBid:
		return "bid"
	default:
		return "unknown call"
	}
}

// Call is one action in an auction. Its kind can only be set by the
// constructors of this package, so a Call is always one of the four kinds
// (or the zero value, which Evaluate rejects).
type Call struct {
	kind CallKind
	bid  Bid
}

func PassCall() Call {
	return Call{kind: KindPass}
}

func DoubleCall() Call {
	return Call{kind: KindDouble}
}

func RedoubleCall() Call {
	return Call{kind: KindRedouble}
}

func BidCall(b Bid) Call {
	return Call{kind: KindBid, bid: b}
}

func (c Call) Kind() CallKind {
	return c.kind
}

func (c Call) IsPass() bool {
	return c.kind == KindPass
}

func (c Call) IsDouble() bool {
	return c.kind == KindDouble
}

func (c Call) IsRedouble() bool {
	return c.kind == KindRedouble
}

// Bid returns the bid carried by the call; ok is false for non-bids.
func (c Call) Bid() (b Bid, ok bool) {
	return c.bid, c.kind == KindBid
}

// String returns the canonical token: "-", "X", "XX" or a bid like "1NT".
func (c Call) String() string {
	switch c.kind {
	case KindPass:
		return "-"
	case KindDouble:
		return "X"
	case KindRedouble:
		return "XX"
	case KindBid:
		return c.bid.String()
	default:
		return "?"
	}
}

// MarshalText encodes the call as its canonical token.
func (c Call) MarshalText() ([]byte, error) {
	if c.kind == kindNone {
		return nil, ErrUnsupportedCall
	}
	return []byte(c.String()), nil
}

// UnmarshalText decodes any token accepted by ParseCall.
func (c *Call) UnmarshalText(text []byte) error {
	parsed, err := ParseCall(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

var bidToken = regexp.MustCompile(`^([0-9])(.*)$`)

// ParseCall builds a Call from a short, case-insensitive token:
//   - pass: "pass", "p" or "-"
//   - double: "x"
//   - redouble: "xx"
//   - bid: a level 1-7 followed by c, d, h, s, n or nt, e.g. "1H", "3nt"
func ParseCall(token string) (Call, error) {
	s := strings.ToLower(token)
	switch s {
	case "pass", "p", "-":
		return PassCall(), nil
	case "x":
		return DoubleCall(), nil
	case "xx":
		return RedoubleCall(), nil
	}

	m := bidToken.FindStringSubmatch(s)
	if m == nil {
		return Call{}, &FormatError{Token: token, Reason: "unmatched grammar"}
	}
	level, _ := strconv.Atoi(m[1])
	if level < MinLevel || level > MaxLevel {
		return Call{}, &FormatError{Token: token, Reason: "invalid level"}
	}
	switch m[2] {
	case "c", "d", "h", "s", "n", "nt":
	default:
		return Call{}, &FormatError{Token: token, Reason: "unrecognized strain"}
	}
	strain, err := ParseStrain(m[2])
	if err != nil {
		return Call{}, &FormatError{Token: token, Reason: "unrecognized strain"}
	}
	return BidCall(Bid{level: level, strain: strain}), nil
}

// MustParseCalls parses a whitespace separated list of tokens and panics on
// the first invalid one. Intended for tests and fixed auctions.
func MustParseCalls(tokens string) []Call {
	fields := strings.Fields(tokens)
	calls := make([]Call, 0, len(fields))
	for _, f := range fields {
		c, err := ParseCall(f)
		if err != nil {
			panic(err)
		}
		calls = append(calls, c)
	}
	return calls
}
