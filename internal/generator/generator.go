// Package generator produces batches of distinct random codes over a configurable alphabet.
package generator

import (
	"errors"
	"fmt"
	"math/bits"
	"math/rand/v2"
)

var (
	ErrEmptyAlphabet    = errors.New("at least one character class must be enabled")
	ErrInvalidLength    = errors.New("code length must be greater than 0")
	ErrInvalidCount     = errors.New("code count must not be negative")
	ErrCapacityExceeded = errors.New("requested count exceeds the number of distinct codes")
)

// Options configures the alphabet and length of generated codes
type Options struct {
	Length       int
	Lowercase    bool
	Uppercase    bool
	Digits       bool
	Hex          bool // 0-9a-f, overrides the class flags
	HexUppercase bool // use A-F instead of a-f in hex mode
	Seed         *uint64
}

// Generator draws codes from its own random stream.
// A Generator is not safe for concurrent use.
type Generator struct {
	length   int
	alphabet string
	rng      *rand.Rand
}

// New validates opts and returns a Generator ready to draw codes
func New(opts Options) (*Generator, error) {
	if opts.Length <= 0 {
		return nil, ErrInvalidLength
	}

	alphabet := buildAlphabet(opts)
	if alphabet == "" {
		return nil, ErrEmptyAlphabet
	}

	return &Generator{
		length:   opts.Length,
		alphabet: alphabet,
		rng:      newRand(opts.Seed),
	}, nil
}

func newRand(seed *uint64) *rand.Rand {
	if seed != nil {
		return rand.New(rand.NewPCG(*seed, *seed))
	}
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

// Alphabet returns the characters codes are drawn from
func (g *Generator) Alphabet() string {
	return g.alphabet
}

// Length returns the configured code length
func (g *Generator) Length() int {
	return g.length
}

// GenerateOne draws a single code. Repeated calls may return the same value.
func (g *Generator) GenerateOne() string {
	buf := make([]byte, g.length)
	for i := range buf {
		buf[i] = g.alphabet[g.rng.IntN(len(g.alphabet))]
	}
	return string(buf)
}

// GenerateMany returns count distinct codes in the order they were first drawn.
//
// Candidates are drawn with GenerateOne and rejected when already accepted.
// Without a bound this loop never ends once count exceeds len(alphabet)^length,
// so such requests fail with ErrCapacityExceeded before any draw happens.
// Close to the bound the loop is slow (coupon collector), but it terminates.
func (g *Generator) GenerateMany(count int) ([]string, error) {
	if count < 0 {
		return nil, ErrInvalidCount
	}
	if !g.canHold(uint64(count)) {
		return nil, fmt.Errorf("%w: %d codes of length %d over %d characters",
			ErrCapacityExceeded, count, g.length, len(g.alphabet))
	}

	set := newCodeSet(count)
	for set.Size() < count {
		set.Add(g.GenerateOne())
	}
	return set.Codes(), nil
}

// canHold reports whether len(alphabet)^length >= count.
func (g *Generator) canHold(count uint64) bool {
	size := uint64(len(g.alphabet))
	space := uint64(1)
	for i := 0; i < g.length; i++ {
		if space >= count {
			return true
		}
		hi, lo := bits.Mul64(space, size)
		if hi != 0 {
			return true
		}
		space = lo
	}
	return space >= count
}
