package game

import (
	"log"
	"sync"
)

// Match owns the single live game: its state, its player sessions and the
// generator used for obstacles. Every read and write goes through mu.
type Match struct {
	mu       sync.Mutex
	state    State
	sessions *SessionRegistry
	rng      Intner
	ticks    uint64
}

// NewMatch creates a match in its initial state.
func NewMatch(rng Intner) *Match {
	return &Match{
		state:    InitialState(rng),
		sessions: NewSessionRegistry(),
		rng:      rng,
	}
}

// Join assigns a slot to connID or returns ErrGameFull.
func (m *Match) Join(connID string) (Slot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	slot, err := m.sessions.Join(connID)
	if err != nil {
		log.Printf("[MATCH] connection %s rejected: %v", connID, err)
		return "", err
	}
	log.Printf("[MATCH] connection %s assigned as %s", connID, slot)
	return slot, nil
}

// Leave releases the slot held by connID, if any.
func (m *Match) Leave(connID string) (Slot, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	slot, ok := m.sessions.Leave(connID)
	if ok {
		log.Printf("[MATCH] connection %s (%s) left", connID, slot)
	}
	return slot, ok
}

func (m *Match) SlotOf(connID string) (Slot, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sessions.SlotOf(connID)
}

// Occupied returns the slots currently held by a connection.
func (m *Match) Occupied() []Slot {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sessions.Occupied()
}

// MovePaddle sets the paddle of the caller's slot. The position is not range
// checked. Returns ErrNoSlot when connID holds no slot.
func (m *Match) MovePaddle(connID string, position float64) (State, Slot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	slot, ok := m.sessions.SlotOf(connID)
	if !ok {
		return State{}, "", ErrNoSlot
	}
	m.state.Paddles.Set(slot, position)
	return m.state.Clone(), slot, nil
}

// Restart resets paddles, ball, scores and obstacles. Sessions are kept.
func (m *Match) Restart() State {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.state = InitialState(m.rng)
	log.Printf("[MATCH] game restarted")
	return m.state.Clone()
}

// Step runs one physics tick and returns the resulting snapshot.
func (m *Match) Step() (State, TickResult) {
	m.mu.Lock()
	defer m.mu.Unlock()

	res := Tick(&m.state, m.rng)
	m.ticks++
	return m.state.Clone(), res
}

// Snapshot returns a copy of the current state.
func (m *Match) Snapshot() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state.Clone()
}

// Ticks returns the number of physics steps run so far.
func (m *Match) Ticks() uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.ticks
}

