package game

import "math"

// side tags which paddle, if any, is examined during a tick.
// Left and right are mutually exclusive: a ball at x <= LeftPaddleX is never
// checked against the right paddle in the same tick.
type side int

const (
	sideNone side = iota
	sideLeft
	sideRight
)

func paddleSide(x float64) side {
	switch {
	case x <= LeftPaddleX:
		return sideLeft
	case x >= RightPaddleX:
		return sideRight
	default:
		return sideNone
	}
}

func (sd side) slot() Slot {
	if sd == sideRight {
		return SlotPlayer2
	}
	return SlotPlayer1
}

// TickResult describes what happened during one physics step.
type TickResult struct {
	WallBounce   bool
	PaddleHit    Slot // empty when no paddle was hit
	ObstacleHits int
	Scored       Slot // slot that won the point, empty otherwise
}

// Tick advances the state by one step. Steps run in a fixed order:
// move, wall bounce, paddle, obstacles, scoring.
func Tick(s *State, rng Intner) TickResult {
	var res TickResult
	b := &s.Ball

	b.X += b.DX
	b.Y += b.DY

	if b.Y <= FieldMin || b.Y >= FieldMax {
		b.DY = -b.DY
		res.WallBounce = true
	}

	if sd := paddleSide(b.X); sd != sideNone {
		slot := sd.slot()
		paddleY := s.Paddles.Get(slot)
		if b.Y >= paddleY-PaddleHalfHeight && b.Y <= paddleY+PaddleHalfHeight {
			b.DX = -b.DX
			adjustAngle(b, paddleY)
			res.PaddleHit = slot
		}
	}

	// Each overlapping obstacle flips independently, so two overlaps cancel.
	for _, o := range s.Obstacles {
		if o.Contains(b.X, b.Y) {
			b.DX = -b.DX
			b.DY = -b.DY
			res.ObstacleHits++
		}
	}

	switch {
	case b.X <= FieldMin:
		res.Scored = SlotPlayer2
	case b.X >= FieldMax:
		res.Scored = SlotPlayer1
	}
	if res.Scored != "" {
		s.Scores.award(res.Scored)
		s.resetRound(rng)
	}

	return res
}

// adjustAngle steers the ball by how far from the paddle center it was hit.
func adjustAngle(b *Ball, paddleY float64) {
	offset := b.Y - paddleY
	b.DY += offset * AngleFactor
	b.DY = math.Max(-MaxBallDY, math.Min(b.DY, MaxBallDY))
}
