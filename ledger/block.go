package ledger

import "github.com/luca-patrignani/contract-bridge/domain/bridge"

// Block records one call of the auction. The genesis block (index 0)
// carries no call; its Seat is the dealer.
type Block struct {
	Index     int          `json:"index"`
	Timestamp int64        `json:"timestamp"`
	PrevHash  string       `json:"prev_hash"`
	Hash      string       `json:"hash"`
	Call      *bridge.Call `json:"call,omitempty"`
	Seat      bridge.Seat  `json:"seat"`
}
