package testutil

// ScriptedStream replays queued draws and falls back to fixed answers when a
// queue runs dry. It satisfies sim.Stream.
//
// The fallbacks describe an uneventful bout: ranges resolve to their lower
// bound, IntN to 0 and Bool to false.
type ScriptedStream struct {
	Floats []float64
	Ints   []int
	Bools  []bool

	// Draws counts every call, scripted or not.
	Draws int
}

// Float64Range returns the next scripted float, or lo.
func (s *ScriptedStream) Float64Range(lo, hi float64) float64 {
	s.Draws++
	if len(s.Floats) == 0 {
		return lo
	}
	v := s.Floats[0]
	s.Floats = s.Floats[1:]
	return v
}

// IntN returns the next scripted int, clamped into [0, n).
func (s *ScriptedStream) IntN(n int) int {
	s.Draws++
	if len(s.Ints) == 0 {
		return 0
	}
	v := s.Ints[0]
	s.Ints = s.Ints[1:]
	if v >= n {
		v = n - 1
	}
	if v < 0 {
		v = 0
	}
	return v
}

// Bool returns the next scripted bool, or false.
func (s *ScriptedStream) Bool(p float64) bool {
	s.Draws++
	if len(s.Bools) == 0 {
		return false
	}
	v := s.Bools[0]
	s.Bools = s.Bools[1:]
	return v
}
