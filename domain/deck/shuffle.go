package deck

import (
	"crypto/cipher"
	"encoding/binary"
	"math/rand/v2"

	"go.dedis.ch/kyber/v4/suites"
)

var suite suites.Suite = suites.MustFind("Ed25519")

// streamSource adapts a kyber random stream to a math/rand source.
type streamSource struct {
	stream cipher.Stream
}

func (s streamSource) Uint64() uint64 {
	var buf [8]byte
	s.stream.XORKeyStream(buf[:], buf[:])
	return binary.LittleEndian.Uint64(buf[:])
}

// NewRandom returns a generator drawing from the Ed25519 suite's random
// stream. The result is not safe for concurrent use.
func NewRandom() *rand.Rand {
	return rand.New(streamSource{stream: suite.RandomStream()})
}

// Shuffle permutes the remaining cards in place. A nil generator falls back
// to NewRandom.
func (d *Deck) Shuffle(r *rand.Rand) {
	if r == nil {
		r = NewRandom()
	}
	r.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
}
