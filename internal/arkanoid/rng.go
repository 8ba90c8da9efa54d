package arkanoid

// SimpleRNG is a simple deterministic random number generator (LCG).
// Used instead of math/rand to guarantee identical sequences across
// platforms for replay and determinism tests.
type SimpleRNG struct {
	state uint64
}

// NewSimpleRNG creates a new RNG with the given seed.
func NewSimpleRNG(seed int64) *SimpleRNG {
	return &SimpleRNG{state: uint64(seed)}
}

// Next returns the next random uint64.
func (r *SimpleRNG) Next() uint64 {
	r.state = r.state*6364136223846793005 + 1442695040888963407
	return r.state
}

// Intn returns a random int in [0, n).
func (r *SimpleRNG) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n))
}

// Float64 returns a random float64 in [0.0, 1.0).
func (r *SimpleRNG) Float64() float64 {
	return float64(r.Next()%1000000) / 1000000.0
}

// Jitter returns a random float64 in [-amount, amount).
func (r *SimpleRNG) Jitter(amount float64) float64 {
	return (r.Float64()*2 - 1) * amount
}

// State returns the internal state for snapshots.
func (r *SimpleRNG) State() uint64 {
	return r.state
}

// SetState restores the internal state from a snapshot.
func (r *SimpleRNG) SetState(s uint64) {
	r.state = s
}
