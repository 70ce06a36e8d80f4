package rng

// Xorshift is a 32-bit xorshift generator (shifts 13, 17, 5). The state is
// signed, so the right shift copies the sign bit.
type Xorshift struct {
	state int32
}

// NewXorshift creates a xorshift source. A zero seed would lock the
// generator at zero, so it is replaced with a fixed non-zero constant.
func NewXorshift(seed uint32) *Xorshift {
	if seed == 0 {
		seed = 0x9E3779B9
	}
	return &Xorshift{state: int32(seed)}
}

// Float64 returns the next value in [0, 1).
func (x *Xorshift) Float64() float64 {
	s := x.state
	s ^= s << 13
	s ^= s >> 17
	s ^= s << 5
	x.state = s
	return float64(uint32(s)) / 4294967296.0
}

// Lehmer is a multiplicative congruential generator with modulus 2^35-31
// and multiplier 185852.
type Lehmer struct {
	state uint64
}

const (
	lehmerModulus    = 1<<35 - 31
	lehmerMultiplier = 185852
)

// NewLehmer creates a Lehmer source. Seeds congruent to zero are replaced
// with 1 so the sequence does not collapse.
func NewLehmer(seed uint64) *Lehmer {
	s := seed % lehmerModulus
	if s == 0 {
		s = 1
	}
	return &Lehmer{state: s}
}

// Float64 returns the next value in (0, 1).
func (l *Lehmer) Float64() float64 {
	// state < 2^35 and multiplier < 2^18, so the product fits in 53 bits
	l.state = (l.state * lehmerMultiplier) % lehmerModulus
	return float64(l.state) / lehmerModulus
}

// Scripted replays a fixed list of values, cycling when exhausted.
// Tests use it to force particular choices in the step engine.
type Scripted struct {
	Values []float64
	next   int
}

// NewScripted creates a scripted source.
func NewScripted(values ...float64) *Scripted {
	return &Scripted{Values: values}
}

// Float64 returns the next scripted value, or 0 when none were given.
func (s *Scripted) Float64() float64 {
	if len(s.Values) == 0 {
		return 0
	}
	v := s.Values[s.next%len(s.Values)]
	s.next++
	return v
}

// Calls reports how many values have been consumed.
func (s *Scripted) Calls() int {
	return s.next
}
