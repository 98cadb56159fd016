// Package bridge implements the rules of the contract-bridge auction and
// the resolution of a single trick.
//
// # Core Types
//
// Strain: a bid's denomination, Clubs through NoTrump, totally ordered.
//
// Bid: a level from 1 to 7 and a strain, ordered by level then strain.
//
// Call: one of Pass, Double, Redouble or a Bid. The set of kinds is closed;
// calls are built through PassCall, DoubleCall, RedoubleCall, BidCall or
// ParseCall.
//
// Contract: the outcome of a finished auction, or NoContract when all four
// players passed.
//
// # Evaluation
//
// Evaluate checks a candidate call against the auction so far and reports
// whether it is legal and whether it ends the auction. EvaluateTrick picks
// the winner of one four-card trick. Both are pure functions: they keep no
// state between calls and never modify their inputs, so independent
// auctions and tricks may be evaluated concurrently.
//
// # Seats
//
// Seats are numbered 0 to 3 and all seat arithmetic is modulo 4. The call
// at index i of an auction was made from seat (dealer + i) mod 4.
package bridge
