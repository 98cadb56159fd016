// Package ledger implements the append-only log of an auction.
//
// # Core Components
//
// AuctionLog: the calls of one auction in order, each recorded in a Block
// hash-chained to the previous one for tamper detection.
//
// Block: one recorded call with the seat that made it and the links to the
// previous block.
//
// # Ownership
//
// The log has a single writer, the session controller, which appends a
// call only after the auction evaluator accepted it. Readers may take
// snapshots with Calls at any time. Verify walks the hash chain and replays
// every call through the evaluator to audit the whole auction.
package ledger
