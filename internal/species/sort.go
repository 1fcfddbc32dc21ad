package species

// sortByCell rearranges the population so particles of the same cell are
// contiguous in ascending cell order, with a counting sort over the NX
// cells. Every cell index must already be inside the box, which the
// boundary pass guarantees.
func (s *Species) sortByCell() {
	np := len(s.parts)
	if cap(s.sortIdx) < np {
		s.sortIdx = make([]int, np)
		s.sortTmp = make([]Particle, np)
	}
	idx := s.sortIdx[:np]
	tmp := s.sortTmp[:np]

	count := make([]int, s.NX)
	for i := range s.parts {
		count[s.parts[i].IX]++
	}
	pos := 0
	for c, n := range count {
		count[c] = pos
		pos += n
	}
	for i := range s.parts {
		c := s.parts[i].IX
		idx[i] = count[c]
		count[c]++
	}

	for i := range s.parts {
		tmp[idx[i]] = s.parts[i]
	}
	copy(s.parts, tmp)
}
