package minigame

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
)

// Game is the tcell front-end over the simulation.
type Game struct {
	screen tcell.Screen
	sim    *Sim
	sounds *soundBank

	input Input
}

// NewGame creates the terminal game sized to the current screen, with a
// seeded brick layout.
//
// Parameters:
//   - seed: the layout seed
//
// Returns:
//   - *Game: the game ready to Run
//   - error: error if the terminal screen cannot be initialized
func NewGame(seed int64) (*Game, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}

	width, height := screen.Size()
	return &Game{
		screen: screen,
		sim:    NewSim(width, height-1, seed),
		sounds: newSoundBank(),
	}, nil
}

// Run drives the game loop at ~60 FPS until the game ends or the player
// quits with Escape or 'q'. Blocks the calling goroutine.
func (g *Game) Run() {
	defer g.cleanup()

	ticker := time.NewTicker(16 * time.Millisecond)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			eventChan <- g.screen.PollEvent()
		}
	}()

	last := time.Now()
	for {
		select {
		case ev := <-eventChan:
			if !g.handleInput(ev) {
				return
			}

		case <-ticker.C:
			now := time.Now()
			dt := now.Sub(last).Seconds()
			last = now

			events := g.sim.Step(dt, g.input)
			g.input.Launch = false
			for _, ev := range events {
				g.sounds.play(ev)
			}
			g.draw()

			if g.sim.Over() {
				// Leave the final board up for a beat before exiting.
				time.Sleep(1500 * time.Millisecond)
				return
			}
		}
	}
}

func (g *Game) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape:
			return false
		case tcell.KeyLeft:
			g.input.PaddleDir = -1
		case tcell.KeyRight:
			g.input.PaddleDir = 1
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return false
			case 'h':
				g.input.PaddleDir = -1
			case 'l':
				g.input.PaddleDir = 1
			case ' ':
				g.input.Launch = true
				g.input.PaddleDir = 0
			}
		}
	case *tcell.EventResize:
		g.screen.Sync()
	}
	return true
}

func (g *Game) draw() {
	g.screen.Clear()

	width, height := g.sim.Size()

	brickStyle := tcell.StyleDefault.Foreground(tcell.ColorRed)
	for row := 0; row < brickRows; row++ {
		for col := 0; col < width; col++ {
			if g.sim.Brick(row, col) {
				g.screen.SetContent(col, row, '█', nil, brickStyle)
			}
		}
	}

	paddleX, paddleWidth := g.sim.Paddle()
	paddleStyle := tcell.StyleDefault.Foreground(tcell.ColorGreen)
	for i := 0; i < paddleWidth; i++ {
		g.screen.SetContent(paddleX+i, height-1, '=', nil, paddleStyle)
	}

	ballX, ballY := g.sim.Ball()
	g.screen.SetContent(ballX, ballY, '●', nil, tcell.StyleDefault.Foreground(tcell.ColorYellow))

	status := fmt.Sprintf(" Score: %d  Lives: %d  Bricks: %d ", g.sim.Score(), g.sim.Lives(), g.sim.BrickCount())
	statusStyle := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	for i, r := range status {
		g.screen.SetContent(i, height, r, nil, statusStyle)
	}

	g.screen.Show()
}

func (g *Game) cleanup() {
	g.sounds.close()
	g.screen.Fini()
}
