// Package rng provides the uniform random sources used by the simulation.
// Every random decision in the step engine goes through a Source, so runs can
// be made deterministic by substituting a seeded generator.
package rng

import (
	"fmt"
	"math/rand/v2"
	"strings"
)

// Source yields uniform floats in [0, 1).
type Source interface {
	Float64() float64
}

// NewDefault returns a non-deterministic source seeded from the runtime.
func NewDefault() Source {
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

// NewSeeded returns a deterministic PCG source for the given seed.
func NewSeeded(seed int64) Source {
	return rand.New(rand.NewPCG(uint64(seed), 0))
}

// Generator names accepted by New.
const (
	KindPCG      = "pcg"
	KindXorshift = "xorshift"
	KindLehmer   = "lehmer"
)

// New returns the named generator. A zero seed gives a non-deterministic
// PCG source or a time-free default seed for the others.
func New(kind string, seed int64) (Source, error) {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "", KindPCG:
		if seed == 0 {
			return NewDefault(), nil
		}
		return NewSeeded(seed), nil
	case KindXorshift:
		return NewXorshift(uint32(seed)), nil
	case KindLehmer:
		return NewLehmer(uint64(seed)), nil
	default:
		return nil, fmt.Errorf("unknown generator %q", kind)
	}
}

// Pick returns floor(src.Float64() * n), the uniform index into a list of
// length n. It returns 0 when n <= 0.
func Pick(src Source, n int) int {
	if n <= 0 {
		return 0
	}
	i := int(src.Float64() * float64(n))
	if i >= n {
		// guards sources that return exactly 1.0
		i = n - 1
	}
	return i
}

// Coin returns 0 or 1 with equal probability.
func Coin(src Source) int {
	return Pick(src, 2)
}
