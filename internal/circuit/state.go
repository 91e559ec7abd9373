package circuit

// State holds the signal of every network for the tick in progress and a
// snapshot of the tick before it.
type State struct {
	cur  []bool
	prev []bool
}

// NewState allocates state for ids 0..n-1, all LOW.
func NewState(n int) *State {
	if n < 1 {
		n = 1
	}
	return &State{cur: make([]bool, n), prev: make([]bool, n)}
}

// High reports the current signal of id. Unknown ids are LOW.
func (s *State) High(id NetworkID) bool {
	if int(id) >= len(s.cur) {
		return false
	}
	return s.cur[id]
}

// Set forces the current signal of id. It reports false for unknown ids and
// for NoNetwork.
func (s *State) Set(id NetworkID, high bool) bool {
	if id == NoNetwork || int(id) >= len(s.cur) {
		return false
	}
	s.cur[id] = high
	return true
}

// Current exposes the signal of every id after the last tick.
func (s *State) Current() []bool { return s.cur }

// Previous exposes the snapshot the last tick was evaluated against.
func (s *State) Previous() []bool { return s.prev }

// Fill sets every current signal to high.
func (s *State) Fill(high bool) {
	for i := range s.cur {
		s.cur[i] = high
	}
}

// Tick advances the state by one step. Every gate whose input was LOW drives
// its output HIGH, and the output is written into the snapshot as well so
// gates evaluated later in the same tick already see it.
func (s *State) Tick(gates []Gate) {
	copy(s.prev, s.cur)
	for i := range s.cur {
		s.cur[i] = false
	}
	for _, g := range gates {
		if !s.prev[g.In] {
			s.cur[g.Out] = true
			s.prev[g.Out] = true
		}
	}
}
