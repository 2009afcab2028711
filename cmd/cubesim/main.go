// cubesim - CLI for scrambling, turning and timing a simulated 3x3x3 cube.
package main

import (
	"github.com/SeamusWaldron/cubesim/internal/cli"
)

func main() {
	cli.Execute()
}
