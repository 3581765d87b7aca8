package core

import "time"

// DefaultStepDuration is how long a one-cell translation takes.
const DefaultStepDuration = 150 * time.Millisecond

// Motion is the Idle -> Translating -> Idle state machine shared by the
// player and entities. A translation always covers exactly one cell and
// cannot be interrupted or redirected.
type Motion struct {
	dir      Direction
	elapsed  time.Duration
	duration time.Duration
	busy     bool
}

// SetDuration changes the translation time used by future Start calls.
func (m *Motion) SetDuration(d time.Duration) {
	if d > 0 {
		m.duration = d
	}
}

// Duration returns the translation time.
func (m *Motion) Duration() time.Duration {
	if m.duration <= 0 {
		return DefaultStepDuration
	}
	return m.duration
}

// Start begins a translation toward dir. It reports false when a
// translation is already in flight.
func (m *Motion) Start(dir Direction) bool {
	if m.busy {
		return false
	}
	m.dir = dir
	m.elapsed = 0
	m.busy = true
	return true
}

// Update advances an in-flight translation by elapsed.
func (m *Motion) Update(elapsed time.Duration) {
	if !m.busy {
		return
	}
	m.elapsed += elapsed
	if m.elapsed >= m.Duration() {
		m.elapsed = 0
		m.busy = false
	}
}

// Busy reports whether a translation is in flight.
func (m *Motion) Busy() bool {
	return m.busy
}

// Progress returns translation progress in [0, 1]; 1 when idle.
func (m *Motion) Progress() float64 {
	if !m.busy {
		return 1
	}
	return float64(m.elapsed) / float64(m.Duration())
}

// Offset returns the pixel offset of the drawn position relative to the
// destination cell. It is (0, 0) when idle.
func (m *Motion) Offset() (int, int) {
	if !m.busy {
		return 0, 0
	}
	dx, dy := m.dir.Delta()
	remaining := 1 - m.Progress()
	return int(-float64(dx*CellSize) * remaining), int(-float64(dy*CellSize) * remaining)
}
