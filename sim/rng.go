package sim

import (
	"hash/fnv"
	"math/rand"
)

// === SimulationKey ===

// SimulationKey uniquely identifies a reproducible bout.
// Two bouts with the same SimulationKey and identical configuration
// MUST produce bit-for-bit identical play-by-play records.
type SimulationKey int64

// NewSimulationKey creates a SimulationKey from a seed value.
func NewSimulationKey(seed int64) SimulationKey {
	return SimulationKey(seed)
}

// === Subsystem Constants ===

const (
	// SubsystemRoster is the RNG subsystem for team, skater and official generation.
	// Uses master seed directly so a seed always yields the same rosters.
	SubsystemRoster = "roster"

	// SubsystemEngine is the RNG subsystem consumed by the match, jam, activity
	// and fielding logic. Its draw order is part of the simulation semantics.
	SubsystemEngine = "engine"

	// SubsystemPenaltyCodes picks the infraction code attached to each penalty.
	// Kept apart from SubsystemEngine so codes never perturb the engine stream.
	SubsystemPenaltyCodes = "penalty_codes"

	// SubsystemIDs feeds uuid generation for play-by-play records and rosters.
	SubsystemIDs = "ids"
)

// === PartitionedRNG ===

// PartitionedRNG provides deterministic, isolated RNG instances per subsystem.
//
// Derivation formula:
//   - For SubsystemRoster: uses masterSeed directly
//   - For all other subsystems: masterSeed XOR fnv1a64(subsystemName)
//
// Thread-safety: NOT thread-safe. Must be called from single goroutine.
type PartitionedRNG struct {
	key        SimulationKey
	subsystems map[string]*rand.Rand
}

// NewPartitionedRNG creates a PartitionedRNG from a SimulationKey.
func NewPartitionedRNG(key SimulationKey) *PartitionedRNG {
	return &PartitionedRNG{
		key:        key,
		subsystems: make(map[string]*rand.Rand),
	}
}

// ForSubsystem returns a deterministically-seeded RNG for the named subsystem.
// The same subsystem name always returns the same *rand.Rand instance (cached).
// Never returns nil.
func (p *PartitionedRNG) ForSubsystem(name string) *rand.Rand {
	if rng, ok := p.subsystems[name]; ok {
		return rng
	}

	var derivedSeed int64
	if name == SubsystemRoster {
		derivedSeed = int64(p.key)
	} else {
		derivedSeed = int64(p.key) ^ fnv1a64(name)
	}

	rng := rand.New(rand.NewSource(derivedSeed))
	p.subsystems[name] = rng
	return rng
}

// StreamFor wraps the named subsystem RNG as a Stream.
func (p *PartitionedRNG) StreamFor(name string) Stream {
	return NewRandStream(p.ForSubsystem(name))
}

// Key returns the SimulationKey used to create this PartitionedRNG.
func (p *PartitionedRNG) Key() SimulationKey {
	return p.key
}

// fnv1a64 computes a 64-bit FNV-1a hash of the input string.
func fnv1a64(s string) int64 {
	h := fnv.New64a()
	h.Write([]byte(s))
	return int64(h.Sum64())
}

// === Stream ===

// Stream is the random source the engine draws from. Every method consumes
// exactly one value from the underlying sequence, so replacing a Stream with a
// scripted one in tests keeps the rest of the sequence aligned.
type Stream interface {
	// Float64Range returns a uniform value in [lo, hi).
	Float64Range(lo, hi float64) float64
	// IntN returns a uniform int in [0, n). n must be > 0.
	IntN(n int) int
	// Bool returns true with probability p.
	Bool(p float64) bool
}

// RandStream adapts *rand.Rand to Stream.
type RandStream struct {
	r *rand.Rand
}

// NewRandStream wraps r.
func NewRandStream(r *rand.Rand) *RandStream {
	return &RandStream{r: r}
}

func (s *RandStream) Float64Range(lo, hi float64) float64 {
	return lo + s.r.Float64()*(hi-lo)
}

func (s *RandStream) IntN(n int) int {
	return s.r.Intn(n)
}

func (s *RandStream) Bool(p float64) bool {
	return s.r.Float64() < p
}
