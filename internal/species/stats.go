package species

// Stats accumulates push throughput over a run. The driver owns one Stats
// value and passes it to every Advance call it wants accounted, so separate
// runs in one process never share counters.
type Stats struct {
	Pushes  uint64
	Seconds float64
}

// Add records np pushed particles taking dt seconds.
func (st *Stats) Add(np int, dt float64) {
	st.Pushes += uint64(np)
	st.Seconds += dt
}

// PushRate returns the average particle pushes per second, or 0 before any
// timed work.
func (st *Stats) PushRate() float64 {
	if st.Seconds <= 0 {
		return 0
	}
	return float64(st.Pushes) / st.Seconds
}
