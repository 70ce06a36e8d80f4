package components

// Life tracks a creature's age and the age at which it may reproduce.
// Maturity is fixed at creation and inherited by offspring.
type Life struct {
	Age      int `inspect:"label"`
	Maturity int `inspect:"label"`
}

// Hunger is carried only by sharks. Timer counts ticks since the last meal;
// the shark starves once Timer reaches Limit.
type Hunger struct {
	Timer int `inspect:"bar,max:Limit,warn:high"`
	Limit int `inspect:"label"`
}

// IncrementAge advances the creature's age by one tick.
func IncrementAge(l *Life) {
	l.Age++
}

// CanReproduce reports whether the creature has reached maturity.
func CanReproduce(l *Life) bool {
	return l.Age >= l.Maturity
}

// ResetAge sets the age to the coin value (0 or 1) drawn by the caller.
// Newborns start the same way.
func ResetAge(l *Life, coin int) {
	l.Age = coin
}

// IncrementHunger advances the starvation timer.
func IncrementHunger(h *Hunger) {
	h.Timer++
}

// Feed resets the starvation timer.
func Feed(h *Hunger) {
	h.Timer = 0
}

// IsStarving reports whether the shark has gone too long without food.
func IsStarving(h *Hunger) bool {
	return h.Timer >= h.Limit
}
