package minigame

import "testing"

func TestSeededLayoutDeterministic(t *testing.T) {
	a := NewSim(40, 20, 77)
	b := NewSim(40, 20, 77)

	if a.BrickCount() != b.BrickCount() {
		t.Fatalf("brick counts differ: %d vs %d", a.BrickCount(), b.BrickCount())
	}
	for row := 0; row < brickRows; row++ {
		for col := 0; col < 40; col++ {
			if a.Brick(row, col) != b.Brick(row, col) {
				t.Fatalf("layouts diverge at (%d, %d)", row, col)
			}
		}
	}

	c := NewSim(40, 20, 78)
	same := true
	for row := 0; row < brickRows && same; row++ {
		for col := 0; col < 40; col++ {
			if a.Brick(row, col) != c.Brick(row, col) {
				same = false
				break
			}
		}
	}
	if same {
		t.Error("different seeds produced identical layouts")
	}
}

func TestPaddleClampsToGrid(t *testing.T) {
	s := NewSim(40, 20, 1)

	for i := 0; i < 200; i++ {
		s.Step(0.016, Input{PaddleDir: -1})
	}
	if x, _ := s.Paddle(); x != 0 {
		t.Errorf("expected paddle clamped at 0, got %d", x)
	}

	for i := 0; i < 400; i++ {
		s.Step(0.016, Input{PaddleDir: 1})
	}
	x, w := s.Paddle()
	if x+w > 40 {
		t.Errorf("paddle extends past the grid: x=%d width=%d", x, w)
	}
}

func TestBallHeldUntilLaunch(t *testing.T) {
	s := NewSim(40, 20, 3)

	for i := 0; i < 10; i++ {
		s.Step(0.016, Input{})
	}
	if !s.BallHeld() {
		t.Fatal("ball released without a launch")
	}

	s.Step(0.016, Input{Launch: true})
	if s.BallHeld() {
		t.Fatal("ball still held after launch")
	}
}

func TestBallFollowsPaddleWhileHeld(t *testing.T) {
	s := NewSim(40, 20, 3)

	s.Step(0.5, Input{PaddleDir: 1})
	px, pw := s.Paddle()
	bx, _ := s.Ball()
	center := px + pw/2
	if bx < center-1 || bx > center+1 {
		t.Errorf("ball at %d, paddle center at %d", bx, center)
	}
}

func TestBrickHitScoresAndClears(t *testing.T) {
	s := NewSim(40, 20, 9)
	before := s.BrickCount()

	s.Step(0.016, Input{Launch: true})
	var hit bool
	for i := 0; i < 5000 && !s.Over(); i++ {
		// Track the ball so it never drains; every bounce eventually
		// reaches the brick field.
		bx, _ := s.Ball()
		px, pw := s.Paddle()
		dir := 0
		if bx < px+pw/2 {
			dir = -1
		} else if bx > px+pw/2 {
			dir = 1
		}
		for _, ev := range s.Step(0.016, Input{PaddleDir: dir}) {
			if ev == EventBrickHit {
				hit = true
			}
		}
		if hit {
			break
		}
	}

	if !hit {
		t.Fatal("ball never hit a brick")
	}
	if s.BrickCount() != before-1 {
		t.Errorf("expected %d bricks, got %d", before-1, s.BrickCount())
	}
	if s.Score() != pointsPerBrick {
		t.Errorf("expected score %d, got %d", pointsPerBrick, s.Score())
	}
}

func TestBallLostCostsLife(t *testing.T) {
	s := NewSim(40, 20, 5)
	s.Step(0.016, Input{Launch: true})

	lost := false
	for i := 0; i < 20000 && !lost && !s.Over(); i++ {
		// Park the paddle at the left edge so the ball eventually drains.
		for _, ev := range s.Step(0.016, Input{PaddleDir: -1}) {
			if ev == EventBallLost {
				lost = true
			}
		}
	}

	if !lost {
		t.Fatal("ball never drained")
	}
	if s.Lives() != startingLives-1 {
		t.Errorf("expected %d lives, got %d", startingLives-1, s.Lives())
	}
	if !s.BallHeld() {
		t.Error("ball not reset to the paddle after a drain")
	}
}

func TestStepIgnoredWhenOver(t *testing.T) {
	s := NewSim(40, 20, 5)
	s.over = true

	if events := s.Step(0.016, Input{PaddleDir: 1}); events != nil {
		t.Errorf("expected no events after game over, got %v", events)
	}
}
