package game

import "time"

// Field geometry, expressed in percent of the playing field.
const (
	FieldMin = 0.0
	FieldMax = 100.0
	Center   = 50.0

	LeftPaddleX      = 5.0
	RightPaddleX     = 95.0
	PaddleHalfHeight = 10.0

	MaxBallDY   = 2.0
	AngleFactor = 0.1

	ObstacleCount       = 2
	ObstacleSize        = 5.0
	ObstacleMin         = 10 // inclusive
	ObstacleMax         = 90 // inclusive
	ObstacleClearance   = 10.0
	MaxObstacleAttempts = 100

	DefaultTickInterval = 50 * time.Millisecond
)
