package game

import (
	"math"
	"time"

	"golang.org/x/exp/rand"
)

// Intner is the subset of *rand.Rand used for obstacle placement.
type Intner interface {
	Intn(n int) int
}

// fallbackObstacles are used when sampling keeps landing near the center.
// Both satisfy the clearance rule.
var fallbackObstacles = [ObstacleCount]Obstacle{
	{X: 25, Y: 25, Size: ObstacleSize},
	{X: 70, Y: 70, Size: ObstacleSize},
}

// NewRand returns a PCG-backed generator. A zero seed picks one from the clock.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(uint64(seed)))
}

// GenerateObstacles places ObstacleCount obstacles away from the ball reset point.
func GenerateObstacles(rng Intner) []Obstacle {
	obstacles := make([]Obstacle, 0, ObstacleCount)
	for i := 0; i < ObstacleCount; i++ {
		obstacles = append(obstacles, sampleObstacle(rng, i))
	}
	return obstacles
}

func sampleObstacle(rng Intner, idx int) Obstacle {
	span := ObstacleMax - ObstacleMin + 1
	for attempt := 0; attempt < MaxObstacleAttempts; attempt++ {
		x := float64(ObstacleMin + rng.Intn(span))
		y := float64(ObstacleMin + rng.Intn(span))
		if clearOfCenter(x, y) {
			return Obstacle{X: x, Y: y, Size: ObstacleSize}
		}
	}
	return fallbackObstacles[idx%ObstacleCount]
}

// clearOfCenter is the placement rule: |x-50| > 10 and |y-50| > 10.
func clearOfCenter(x, y float64) bool {
	return math.Abs(x-Center) > ObstacleClearance && math.Abs(y-Center) > ObstacleClearance
}
