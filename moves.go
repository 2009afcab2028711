package cubesim

// Predefined moves for convenience.
// Use these instead of constructing Move structs manually.
//
// Example:
//
//	engine.ApplyMoves(cubesim.R, cubesim.U, cubesim.RPrime, cubesim.UPrime)
var (
	// Right face moves
	R      = Move{Axis: AxisX, Slice: 1, Direction: Clockwise}        // Right clockwise
	RPrime = Move{Axis: AxisX, Slice: 1, Direction: CounterClockwise} // Right counter-clockwise

	// Left face moves
	L      = Move{Axis: AxisX, Slice: -1, Direction: CounterClockwise} // Left clockwise
	LPrime = Move{Axis: AxisX, Slice: -1, Direction: Clockwise}        // Left counter-clockwise

	// Middle slice moves (follow L)
	M      = Move{Axis: AxisX, Slice: 0, Direction: CounterClockwise}
	MPrime = Move{Axis: AxisX, Slice: 0, Direction: Clockwise}

	// Up face moves
	U      = Move{Axis: AxisY, Slice: 1, Direction: Clockwise}        // Up clockwise
	UPrime = Move{Axis: AxisY, Slice: 1, Direction: CounterClockwise} // Up counter-clockwise

	// Down face moves
	D      = Move{Axis: AxisY, Slice: -1, Direction: CounterClockwise} // Down clockwise
	DPrime = Move{Axis: AxisY, Slice: -1, Direction: Clockwise}        // Down counter-clockwise

	// Equator slice moves (follow D)
	E      = Move{Axis: AxisY, Slice: 0, Direction: CounterClockwise}
	EPrime = Move{Axis: AxisY, Slice: 0, Direction: Clockwise}

	// Front face moves
	F      = Move{Axis: AxisZ, Slice: 1, Direction: Clockwise}        // Front clockwise
	FPrime = Move{Axis: AxisZ, Slice: 1, Direction: CounterClockwise} // Front counter-clockwise

	// Back face moves
	B      = Move{Axis: AxisZ, Slice: -1, Direction: CounterClockwise} // Back clockwise
	BPrime = Move{Axis: AxisZ, Slice: -1, Direction: Clockwise}        // Back counter-clockwise

	// Standing slice moves (follow F)
	S      = Move{Axis: AxisZ, Slice: 0, Direction: Clockwise}
	SPrime = Move{Axis: AxisZ, Slice: 0, Direction: CounterClockwise}
)

// AllMoves lists every quarter turn in the move domain.
var AllMoves = []Move{
	R, RPrime, L, LPrime, M, MPrime,
	U, UPrime, D, DPrime, E, EPrime,
	F, FPrime, B, BPrime, S, SPrime,
}

// Sexy move: R U R' U' - one of the most common algorithms
var SexyMove = []Move{R, U, RPrime, UPrime}

// Inverse sexy move: U R U' R'
var InverseSexyMove = []Move{U, R, UPrime, RPrime}

// T-perm algorithm with R2 written as two quarter turns
var TPerm = []Move{R, U, RPrime, UPrime, RPrime, F, R, R, UPrime, RPrime, UPrime, R, U, RPrime, FPrime}
