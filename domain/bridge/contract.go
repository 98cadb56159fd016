package bridge

import "strconv"

// Contract is the outcome of a finished auction. The zero value is
// NoContract, the result of an auction passed out without a bid.
type Contract struct {
	level     int
	strain    Strain
	declarer  Seat
	doubled   bool
	redoubled bool
}

// NoContract is the result of four passes.
var NoContract = Contract{}

// NewContract builds a contract from the final bid. A nil bid yields
// NoContract. A contract cannot be doubled and redoubled at once.
func NewContract(bid *Bid, declarer Seat, doubled, redoubled bool) (Contract, error) {
	if bid == nil {
		return NoContract, nil
	}
	if doubled && redoubled {
		return Contract{}, ErrContractIntegrity
	}
	return Contract{
		level:     bid.level,
		strain:    bid.strain,
		declarer:  declarer,
		doubled:   doubled,
		redoubled: redoubled,
	}, nil
}

// IsNoContract reports whether the auction was passed out.
func (c Contract) IsNoContract() bool {
	return c.level == 0
}

// Level is 0 for NoContract, 1..7 otherwise.
func (c Contract) Level() int {
	return c.level
}

func (c Contract) Strain() Strain {
	return c.strain
}

// Declarer is meaningless for NoContract.
func (c Contract) Declarer() Seat {
	return c.declarer
}

func (c Contract) Doubled() bool {
	return c.doubled
}

func (c Contract) Redoubled() bool {
	return c.redoubled
}

// Bid returns the final bid; ok is false for NoContract.
func (c Contract) Bid() (b Bid, ok bool) {
	if c.IsNoContract() {
		return Bid{}, false
	}
	return Bid{level: c.level, strain: c.strain}, true
}

// Trump returns the trump strain, or nil when the contract is in no-trump
// or there is no contract.
func (c Contract) Trump() *Strain {
	if c.IsNoContract() || c.strain == NoTrump {
		return nil
	}
	s := c.strain
	return &s
}

// String returns e.g. "4S", "3NTX", "2HXX" or "No contract.".
func (c Contract) String() string {
	if c.IsNoContract() {
		return "No contract."
	}
	d := ""
	switch {
	case c.doubled:
		d = "X"
	case c.redoubled:
		d = "XX"
	}
	return strconv.Itoa(c.level) + c.strain.Abbrev() + d
}
