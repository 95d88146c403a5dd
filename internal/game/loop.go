package game

import (
	"context"
	"log"
	"runtime/debug"
	"time"
)

// TickFunc receives the snapshot produced by each tick, typically to broadcast it.
type TickFunc func(snapshot State, result TickResult)

// Run drives the match at a fixed interval until ctx is cancelled.
// A panic in one iteration is logged and the loop keeps going.
func (m *Match) Run(ctx context.Context, interval time.Duration, onTick TickFunc) {
	if interval <= 0 {
		interval = DefaultTickInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	log.Printf("[LOOP] game loop started (interval=%v)", interval)

	for {
		select {
		case <-ctx.Done():
			log.Println("[LOOP] game loop stopping")
			return
		case <-ticker.C:
			m.runTick(onTick)
		}
	}
}

func (m *Match) runTick(onTick TickFunc) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[LOOP] tick panicked: %v\n%s", r, debug.Stack())
		}
	}()

	snapshot, res := m.Step()
	if onTick != nil {
		onTick(snapshot, res)
	}
}
