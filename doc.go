// Package cubesim provides the state and move engine of a 3x3x3 twisty
// puzzle. It tracks the 26 visible pieces by grid position and quaternion
// orientation, applies quarter-turn slice moves, scrambles, records user
// moves and plays back their inverse.
//
// # Features
//
//   - Quarter turns of any of the nine slices, with standard notation
//   - Exact integer positions after every move
//   - Seeded or random scrambles
//   - Move history and inverse solution playback
//   - Sticker (facelet) view and layer-by-layer progress
//   - A move mutex for renderers that animate each turn
//
// # Quick Start
//
//	engine := cubesim.NewEngine()
//
//	// Apply moves using predefined constants
//	engine.ApplyMoves(cubesim.R, cubesim.U, cubesim.RPrime, cubesim.UPrime)
//
//	// Or from notation
//	moves, err := cubesim.ParseMoves("F B2 L' D")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	engine.ApplyMoves(moves...)
//
//	fmt.Println("Solved:", engine.IsSolved())
//	fmt.Println("Phase:", engine.Phase())
//
// # Animated Moves
//
// A renderer that animates turns takes the move mutex with BeginMove and
// releases it when the animation ends:
//
//	if err := engine.BeginMove(cubesim.R); errors.Is(err, cubesim.ErrRotating) {
//	    return // previous turn still animating
//	}
//	ids := engine.CubiesOnFace(cubesim.AxisX, 1)
//	// ... animate ids ...
//	engine.SetRotating(false)
//
// # Solving Phases
//
// Progress is reported by horizontal layer of the pieces' home positions:
//
//   - PhaseScrambled: Bottom layer not complete
//   - PhaseBottomLayer: Bottom layer complete
//   - PhaseMiddleLayer: Bottom and middle layers complete
//   - PhaseSolved: Cube is solved
//
// The Tracker type builds a timed session on top of an Engine.
package cubesim
