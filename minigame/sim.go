// Package minigame is a terminal brick-breaker, a self-contained sibling of
// the presentation. The simulation is pure and deterministic under a seed;
// the terminal front-end and sound effects live in separate files so the
// core can be tested headless.
package minigame

import (
	"math/rand"
)

// Event is a notable state change produced by one simulation step.
type Event int

const (
	EventWallHit Event = iota
	EventPaddleHit
	EventBrickHit
	EventBallLost
	EventLevelClear
	EventGameOver
)

// Input is the player intent applied to one step.
type Input struct {
	// PaddleDir is -1 (left), 0 (hold), or 1 (right).
	PaddleDir int

	// Launch releases the ball if it is resting on the paddle.
	Launch bool
}

const (
	brickRows   = 5
	paddleSpeed = 30.0
	ballSpeed   = 18.0

	pointsPerBrick = 10
	startingLives  = 3
)

// Sim is the brick-breaker simulation on a character grid. Coordinates are
// float64 internally; the front-end rounds for display.
type Sim struct {
	width  int
	height int

	paddleX     float64
	paddleWidth int

	ballX, ballY   float64
	ballVX, ballVY float64
	ballHeld       bool

	// bricks is indexed [row][col]; true means present.
	bricks     [][]bool
	brickCount int

	score int
	lives int
	over  bool

	rng *rand.Rand
}

// NewSim creates a simulation on a width x height grid with a seeded brick
// layout.
//
// Parameters:
//   - width: the grid width in cells (minimum 20)
//   - height: the grid height in cells (minimum 12)
//   - seed: the layout seed
//
// Returns:
//   - *Sim: the simulation, ball held on the paddle
func NewSim(width, height int, seed int64) *Sim {
	if width < 20 {
		width = 20
	}
	if height < 12 {
		height = 12
	}

	s := &Sim{
		width:       width,
		height:      height,
		paddleWidth: width / 8,
		lives:       startingLives,
		rng:         rand.New(rand.NewSource(seed)),
	}
	if s.paddleWidth < 3 {
		s.paddleWidth = 3
	}
	s.paddleX = float64(width-s.paddleWidth) / 2

	s.bricks = make([][]bool, brickRows)
	for row := range s.bricks {
		s.bricks[row] = make([]bool, width)
		for col := 0; col < width; col++ {
			// Sparse seeded layout, denser near the top.
			if s.rng.Float64() < 0.9-float64(row)*0.1 {
				s.bricks[row][col] = true
				s.brickCount++
			}
		}
	}

	s.resetBall()
	return s
}

// resetBall parks the ball on the paddle center awaiting launch.
func (s *Sim) resetBall() {
	s.ballHeld = true
	s.ballX = s.paddleX + float64(s.paddleWidth)/2
	s.ballY = float64(s.height - 2)
	s.ballVX = 0
	s.ballVY = 0
}

// Step advances the simulation by dt seconds under the given input.
//
// Parameters:
//   - dt: the time step in seconds
//   - in: the player input for this step
//
// Returns:
//   - []Event: the events produced, in occurrence order
func (s *Sim) Step(dt float64, in Input) []Event {
	if s.over || dt <= 0 {
		return nil
	}

	var events []Event

	s.paddleX += float64(in.PaddleDir) * paddleSpeed * dt
	maxX := float64(s.width - s.paddleWidth)
	if s.paddleX < 0 {
		s.paddleX = 0
	}
	if s.paddleX > maxX {
		s.paddleX = maxX
	}

	if s.ballHeld {
		s.ballX = s.paddleX + float64(s.paddleWidth)/2
		if in.Launch {
			s.ballHeld = false
			// Launch angle varies with the seed so restarts differ.
			s.ballVX = (s.rng.Float64() - 0.5) * ballSpeed
			s.ballVY = -ballSpeed
		}
		return events
	}

	s.ballX += s.ballVX * dt
	s.ballY += s.ballVY * dt

	// Side and top walls reflect.
	if s.ballX < 0 {
		s.ballX = -s.ballX
		s.ballVX = -s.ballVX
		events = append(events, EventWallHit)
	}
	if s.ballX > float64(s.width-1) {
		s.ballX = 2*float64(s.width-1) - s.ballX
		s.ballVX = -s.ballVX
		events = append(events, EventWallHit)
	}
	if s.ballY < 0 {
		s.ballY = -s.ballY
		s.ballVY = -s.ballVY
		events = append(events, EventWallHit)
	}

	// Brick collision at the ball's cell.
	row, col := int(s.ballY), int(s.ballX)
	if row >= 0 && row < brickRows && col >= 0 && col < s.width && s.bricks[row][col] {
		s.bricks[row][col] = false
		s.brickCount--
		s.score += pointsPerBrick
		s.ballVY = -s.ballVY
		events = append(events, EventBrickHit)
		if s.brickCount == 0 {
			s.over = true
			events = append(events, EventLevelClear)
			return events
		}
	}

	// Paddle bounce: reflect upward, angle skewed by where the ball lands.
	paddleY := float64(s.height - 1)
	if s.ballVY > 0 && s.ballY >= paddleY-1 {
		if s.ballX >= s.paddleX && s.ballX <= s.paddleX+float64(s.paddleWidth) {
			offset := (s.ballX - s.paddleX - float64(s.paddleWidth)/2) / (float64(s.paddleWidth) / 2)
			s.ballVX = offset * ballSpeed
			s.ballVY = -s.ballVY
			s.ballY = paddleY - 1
			events = append(events, EventPaddleHit)
		} else if s.ballY >= float64(s.height) {
			s.lives--
			events = append(events, EventBallLost)
			if s.lives <= 0 {
				s.over = true
				events = append(events, EventGameOver)
				return events
			}
			s.resetBall()
		}
	}

	return events
}

// Score returns the current score.
func (s *Sim) Score() int { return s.score }

// Lives returns the remaining lives.
func (s *Sim) Lives() int { return s.lives }

// Over reports whether the game has ended (cleared or out of lives).
func (s *Sim) Over() bool { return s.over }

// BrickCount returns the number of bricks still standing.
func (s *Sim) BrickCount() int { return s.brickCount }

// Paddle returns the paddle's left cell and width.
func (s *Sim) Paddle() (x, width int) {
	return int(s.paddleX), s.paddleWidth
}

// Ball returns the ball's cell position.
func (s *Sim) Ball() (x, y int) {
	return int(s.ballX), int(s.ballY)
}

// BallHeld reports whether the ball is resting on the paddle.
func (s *Sim) BallHeld() bool { return s.ballHeld }

// Brick reports whether a brick is present at the given cell.
//
// Parameters:
//   - row: the brick row
//   - col: the column
//
// Returns:
//   - bool: true if a brick is present
func (s *Sim) Brick(row, col int) bool {
	if row < 0 || row >= brickRows || col < 0 || col >= s.width {
		return false
	}
	return s.bricks[row][col]
}

// Size returns the grid dimensions.
func (s *Sim) Size() (width, height int) {
	return s.width, s.height
}
