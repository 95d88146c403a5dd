package game

import "errors"

var (
	// ErrGameFull is returned when both slots are taken.
	ErrGameFull = errors.New("game is full")
	// ErrNoSlot is returned for actions from a connection without a slot.
	ErrNoSlot = errors.New("connection has no player slot")
)

// SessionRegistry maps connection ids to player slots. It holds at most one
// connection per slot. It is not safe for concurrent use; Match guards it.
type SessionRegistry struct {
	bySlot map[Slot]string
	byConn map[string]Slot
}

func NewSessionRegistry() *SessionRegistry {
	return &SessionRegistry{
		bySlot: make(map[Slot]string, len(Slots)),
		byConn: make(map[string]Slot, len(Slots)),
	}
}

// Join assigns the first free slot, player1 first. A connection that already
// holds a slot gets the same slot back.
func (r *SessionRegistry) Join(connID string) (Slot, error) {
	if slot, ok := r.byConn[connID]; ok {
		return slot, nil
	}
	for _, slot := range Slots {
		if _, taken := r.bySlot[slot]; taken {
			continue
		}
		r.bySlot[slot] = connID
		r.byConn[connID] = slot
		return slot, nil
	}
	return "", ErrGameFull
}

// Leave frees the slot held by connID. It is a no-op for unknown connections.
func (r *SessionRegistry) Leave(connID string) (Slot, bool) {
	slot, ok := r.byConn[connID]
	if !ok {
		return "", false
	}
	delete(r.byConn, connID)
	delete(r.bySlot, slot)
	return slot, true
}

func (r *SessionRegistry) SlotOf(connID string) (Slot, bool) {
	slot, ok := r.byConn[connID]
	return slot, ok
}

// Holder returns the connection id occupying slot.
func (r *SessionRegistry) Holder(slot Slot) (string, bool) {
	id, ok := r.bySlot[slot]
	return id, ok
}

func (r *SessionRegistry) Len() int {
	return len(r.byConn)
}

// Occupied returns the taken slots in preference order.
func (r *SessionRegistry) Occupied() []Slot {
	out := make([]Slot, 0, len(Slots))
	for _, slot := range Slots {
		if _, ok := r.bySlot[slot]; ok {
			out = append(out, slot)
		}
	}
	return out
}
