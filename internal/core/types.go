package core

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Square reports whether the size describes a non-empty square grid.
func (s Size) Square() bool { return s.W > 0 && s.W == s.H }
