package species

// processBoundaries restores the population after a push: open and
// moving-window runs drop every particle outside [0, NX), with the window
// shift applied first; periodic runs wrap cell indices around the box.
func (s *Species) processBoundaries() {
	if s.MovingWindow || s.Boundary == Open {
		if s.MovingWindow {
			s.moveWindow()
		}
		i := 0
		for i < len(s.parts) {
			if ix := s.parts[i].IX; ix < 0 || ix >= s.NX {
				// the swapped-in particle is examined on the next pass
				s.Remove(i)
				continue
			}
			i++
		}
		return
	}

	for i := range s.parts {
		if s.parts[i].IX < 0 {
			s.parts[i].IX += s.NX
		} else if s.parts[i].IX >= s.NX {
			s.parts[i].IX -= s.NX
		}
	}
}

// moveWindow shifts the population one cell left once the window has moved
// a full cell since the last shift. Particles pushed below cell 0 fall to
// the absorbing scan that follows.
func (s *Species) moveWindow() {
	if float64(s.Iter)*s.DT > s.DX*float64(s.NMove+1) {
		for i := range s.parts {
			s.parts[i].IX--
		}
		s.NMove++
	}
}
