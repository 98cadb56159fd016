package bridge

import (
	"fmt"
	"strconv"
)

// Level bounds of a bid.
const (
	MinLevel = 1
	MaxLevel = 7
)

// Bid is a contract offer: a level from 1 to 7 and a strain.
type Bid struct {
	level  int
	strain Strain
}

// NewBid validates level and strain.
func NewBid(level int, strain Strain) (Bid, error) {
	if level < MinLevel || level > MaxLevel {
		return Bid{}, &FormatError{Token: strconv.Itoa(level), Reason: "invalid level"}
	}
	if !strain.valid() {
		return Bid{}, &FormatError{Token: fmt.Sprint(uint8(strain)), Reason: "unrecognized strain"}
	}
	return Bid{level: level, strain: strain}, nil
}

// MustBid is like NewBid but panics on invalid input.
func MustBid(level int, strain Strain) Bid {
	b, err := NewBid(level, strain)
	if err != nil {
		panic(err)
	}
	return b
}

func (b Bid) Level() int {
	return b.level
}

func (b Bid) Strain() Strain {
	return b.strain
}

// Compare orders bids by level, then by strain.
func (b Bid) Compare(o Bid) int {
	switch {
	case b.level < o.level:
		return -1
	case b.level > o.level:
		return 1
	}
	return b.strain.Compare(o.strain)
}

// Less reports whether b is lower than o.
func (b Bid) Less(o Bid) bool {
	return b.Compare(o) < 0
}

// String returns the short form, e.g. "4S" or "3NT".
func (b Bid) String() string {
	return strconv.Itoa(b.level) + b.strain.Abbrev()
}
