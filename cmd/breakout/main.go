// Command breakout runs the terminal brick-breaker standalone.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/satset19/porto-with-glm/minigame"
)

func main() {
	seed := flag.Int64("seed", 0, "brick layout seed (0 = time-based)")
	flag.Parse()

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	game, err := minigame.NewGame(*seed)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	game.Run()
}
