package talent

// Shortlists maps a shortlist name to 1-based candidate positions. Positions
// reference the candidate collection as it was at save time and are validated
// only when resolved.
type Shortlists map[string][]int

func (s Shortlists) Indices(name string) ([]int, bool) {
	indices, ok := s[name]
	return indices, ok
}

// Set overwrites the named shortlist verbatim.
func (s Shortlists) Set(name string, indices []int) {
	s[name] = indices
}
