package game

// Slot is one of the two fixed player identities a connection can hold.
type Slot string

const (
	SlotPlayer1 Slot = "player1"
	SlotPlayer2 Slot = "player2"
)

// Slots lists the assignable slots in preference order.
var Slots = [...]Slot{SlotPlayer1, SlotPlayer2}

func (s Slot) Valid() bool {
	return s == SlotPlayer1 || s == SlotPlayer2
}

// Opponent returns the other slot.
func (s Slot) Opponent() Slot {
	if s == SlotPlayer1 {
		return SlotPlayer2
	}
	return SlotPlayer1
}

// Ball holds the position and per-tick velocity of the ball.
type Ball struct {
	X  float64 `json:"x"`
	Y  float64 `json:"y"`
	DX float64 `json:"dx"`
	DY float64 `json:"dy"`
}

// Paddles holds the vertical center of each paddle. Values are not clamped.
type Paddles struct {
	Player1 float64 `json:"player1"`
	Player2 float64 `json:"player2"`
}

func (p Paddles) Get(slot Slot) float64 {
	if slot == SlotPlayer2 {
		return p.Player2
	}
	return p.Player1
}

// Set moves the paddle of slot and reports whether slot was valid.
func (p *Paddles) Set(slot Slot, y float64) bool {
	switch slot {
	case SlotPlayer1:
		p.Player1 = y
	case SlotPlayer2:
		p.Player2 = y
	default:
		return false
	}
	return true
}

// Obstacle is an axis-aligned square with its top-left corner at X,Y.
type Obstacle struct {
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	Size float64 `json:"size"`
}

// Contains reports whether the point lies inside the obstacle, edges included.
func (o Obstacle) Contains(x, y float64) bool {
	return x >= o.X && x <= o.X+o.Size && y >= o.Y && y <= o.Y+o.Size
}

type Scores struct {
	Player1 int `json:"player1"`
	Player2 int `json:"player2"`
}

func (s Scores) Get(slot Slot) int {
	if slot == SlotPlayer2 {
		return s.Player2
	}
	return s.Player1
}

func (s *Scores) award(slot Slot) {
	switch slot {
	case SlotPlayer1:
		s.Player1++
	case SlotPlayer2:
		s.Player2++
	}
}

// State is the full authoritative game state. It is also the wire snapshot.
type State struct {
	Paddles   Paddles    `json:"paddles"`
	Ball      Ball       `json:"ball"`
	Obstacles []Obstacle `json:"obstacles"`
	Scores    Scores     `json:"scores"`
}

// ResetBall returns the ball at the center moving down-right.
func ResetBall() Ball {
	return Ball{X: Center, Y: Center, DX: 1, DY: 1}
}

// InitialState returns a fresh match state with newly generated obstacles.
func InitialState(rng Intner) State {
	return State{
		Paddles:   Paddles{Player1: Center, Player2: Center},
		Ball:      ResetBall(),
		Obstacles: GenerateObstacles(rng),
		Scores:    Scores{},
	}
}

// Clone returns a deep copy that shares no memory with s.
func (s State) Clone() State {
	out := s
	out.Obstacles = make([]Obstacle, len(s.Obstacles))
	copy(out.Obstacles, s.Obstacles)
	return out
}

// resetRound puts the ball back in the center and regenerates obstacles.
func (s *State) resetRound(rng Intner) {
	s.Ball = ResetBall()
	s.Obstacles = GenerateObstacles(rng)
}
