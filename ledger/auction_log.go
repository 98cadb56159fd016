package ledger

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/luca-patrignani/contract-bridge/domain/bridge"
)

// AuctionLog is the hash-chained record of an auction's calls.
type AuctionLog struct {
	mu     sync.RWMutex
	dealer bridge.Seat
	blocks []Block
}

// NewAuctionLog creates a log with an initialized genesis block.
// The genesis block has index 0, previous hash "0" and no call.
func NewAuctionLog(dealer bridge.Seat) *AuctionLog {
	l := &AuctionLog{dealer: dealer}
	genesis := Block{
		Index:     0,
		Timestamp: time.Now().Unix(),
		PrevHash:  "0",
		Seat:      dealer,
	}
	genesis.Hash = calculateHash(genesis)
	l.blocks = []Block{genesis}
	return l
}

// Dealer returns the seat that made the first call.
func (l *AuctionLog) Dealer() bridge.Seat {
	return l.dealer
}

// Append records call as the next call of the auction and returns its
// block. The call must already have been accepted by bridge.Evaluate.
func (l *AuctionLog) Append(call bridge.Call) (Block, error) {
	if _, err := call.MarshalText(); err != nil {
		return Block{}, fmt.Errorf("cannot record call: %w", err)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	latest := l.blocks[len(l.blocks)-1]
	newBlock := Block{
		Index:     latest.Index + 1,
		Timestamp: time.Now().Unix(),
		PrevHash:  latest.Hash,
		Call:      &call,
		Seat:      bridge.SeatOf(latest.Index, l.dealer),
	}
	newBlock.Hash = calculateHash(newBlock)

	if err := validateBlock(newBlock, latest); err != nil {
		return Block{}, fmt.Errorf("invalid block: %w", err)
	}
	l.blocks = append(l.blocks, newBlock)
	return newBlock, nil
}

// Calls returns a copy of the recorded calls, oldest first.
func (l *AuctionLog) Calls() []bridge.Call {
	l.mu.RLock()
	defer l.mu.RUnlock()

	calls := make([]bridge.Call, 0, len(l.blocks)-1)
	for _, b := range l.blocks[1:] {
		calls = append(calls, *b.Call)
	}
	return calls
}

// Len returns the number of recorded calls.
func (l *AuctionLog) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.blocks) - 1
}

// Latest returns the most recently added block.
func (l *AuctionLog) Latest() Block {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.blocks[len(l.blocks)-1]
}

// GetByIndex retrieves a block by its index in the chain; index 0 is the
// genesis block and index i+1 holds call i.
func (l *AuctionLog) GetByIndex(index int) (Block, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if index < 0 || index >= len(l.blocks) {
		return Block{}, fmt.Errorf("index %d out of range", index)
	}
	return l.blocks[index], nil
}

// Verify checks the hash chain and replays every call through the auction
// evaluator: each must have been legal, and none may follow the call that
// ended the auction.
func (l *AuctionLog) Verify() error {
	l.mu.RLock()
	defer l.mu.RUnlock()

	genesis := l.blocks[0]
	if genesis.PrevHash != "0" || genesis.Call != nil || genesis.Hash != calculateHash(genesis) {
		return fmt.Errorf("invalid genesis block")
	}
	for i := 1; i < len(l.blocks); i++ {
		if err := validateBlock(l.blocks[i], l.blocks[i-1]); err != nil {
			return fmt.Errorf("block %d invalid: %w", i, err)
		}
	}

	history := make([]bridge.Call, 0, len(l.blocks)-1)
	for i, b := range l.blocks[1:] {
		out, err := bridge.Evaluate(history, l.dealer, *b.Call)
		if err != nil {
			return fmt.Errorf("call %d (%s): %w", i, b.Call, err)
		}
		if out.Terminal && i != len(l.blocks)-2 {
			return fmt.Errorf("call %d (%s) ended the auction but %d calls follow", i, b.Call, len(l.blocks)-2-i)
		}
		history = append(history, *b.Call)
	}
	return nil
}

// validateBlock verifies that a block is valid relative to the previous
// block: index continuity, previous hash linkage, seat rotation and the
// block's own hash.
func validateBlock(current, previous Block) error {
	if current.Index != previous.Index+1 {
		return fmt.Errorf("invalid index: expected %d, got %d", previous.Index+1, current.Index)
	}
	if current.PrevHash != previous.Hash {
		return fmt.Errorf("invalid prev hash: expected %s, got %s", previous.Hash, current.PrevHash)
	}
	if current.Call == nil {
		return fmt.Errorf("block carries no call")
	}
	wantSeat := previous.Seat.Next()
	if previous.Index == 0 {
		wantSeat = previous.Seat
	}
	if current.Seat != wantSeat {
		return fmt.Errorf("invalid seat: expected %s, got %s", wantSeat, current.Seat)
	}
	expectedHash := calculateHash(current)
	if current.Hash != expectedHash {
		return fmt.Errorf("invalid hash: expected %s, got %s", expectedHash, current.Hash)
	}
	return nil
}

// calculateHash computes the SHA256 hash of a block over its index,
// timestamp, previous hash, call and seat.
func calculateHash(block Block) string {
	callBytes, _ := json.Marshal(block.Call)
	data := fmt.Sprintf("%d%d%s%s%d",
		block.Index,
		block.Timestamp,
		block.PrevHash,
		string(callBytes),
		int(block.Seat),
	)
	hash := sha256.Sum256([]byte(data))
	return hex.EncodeToString(hash[:])
}
