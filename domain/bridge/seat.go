package bridge

import "fmt"

// Players is the number of seats at a bridge table.
const Players = 4

// Seat identifies a player at the table, 0..3.
type Seat int

// SeatOf returns the seat that made the call at index i of an auction dealt
// by dealer. The result is always in 0..3.
func SeatOf(i int, dealer Seat) Seat {
	return mod(i + int(dealer))
}

func mod(n int) Seat {
	return Seat((n%Players + Players) % Players)
}

// Valid reports whether s is one of the four seats.
func (s Seat) Valid() bool {
	return s >= 0 && s < Players
}

// Next returns the seat to the left of s.
func (s Seat) Next() Seat {
	return mod(int(s) + 1)
}

// Partner returns the seat opposite s.
func (s Seat) Partner() Seat {
	return mod(int(s) + 2)
}

func (s Seat) String() string {
	return fmt.Sprintf("seat %d", int(s))
}
