package universe

//Kind selects the neighborhood shape
type Kind int

const (
	//Moore is the full square around a cell
	Moore Kind = iota
	//VonNeumann keeps only the center row and column of the square
	VonNeumann
)

//Window is a square matrix of cell states cut out of the grid around a
//center cell. For a window of depth d around (x, y), Window[i][j] holds
//the state of the grid position (x-d+i, y-d+j). Positions falling outside
//a hard-edged universe hold OutOfBounds.
type Window [][]Cell

//Neighborhood returns the window of the given depth around the cell at
//x, y. The center coordinate itself must lie on the grid, otherwise a
//BoundsError is returned. A negative depth is treated as zero, which
//yields the 1x1 window holding just the cell's own state.
//
//In a toroidal universe the window edges wrap around, so the window never
//contains OutOfBounds markers. The wrapping corrects each coordinate by a
//single dimension only, so the depth must stay below the universe
//dimensions.
//
//The call only reads the grid: asking for the same window twice yields
//the same result.
func (u *Universe) Neighborhood(x int, y int, depth int, kind Kind) (Window, error) {
	if err := u.checkBounds(x, y); err != nil {
		return nil, err
	}
	if depth < 0 {
		depth = 0
	}
	nh := u.window(x, y, depth)
	if kind == VonNeumann {
		maskVonNeumann(nh)
	}
	return nh, nil
}

//CountLive counts the alive cells in a window, excluding the window's own
//center so the count can serve directly as the number of alive neighbors.
//OutOfBounds markers never contribute. A nil window counts the whole
//universe instead, with no center correction.
func (u *Universe) CountLive(nh Window) int {
	if nh == nil {
		return u.Population()
	}
	if len(nh) == 0 {
		return 0
	}
	count := 0
	for i := range nh {
		for j := range nh[i] {
			if nh[i][j] == Alive {
				count++
			}
		}
	}
	mid := middle(len(nh))
	if nh[mid][mid] == Alive {
		count--
	}
	return count
}

//window cuts the square of side 2*depth+1 around x, y out of the grid
func (u *Universe) window(x int, y int, depth int) Window {
	side := 2*depth + 1
	nh := Window(newGrid(side, side))
	for i := 0; i < side; i++ {
		rawX := x - depth + i
		actualX := u.translate(rawX, u.width)
		if !inRange(actualX, u.width) {
			//the whole column lies beyond a hard edge
			for j := 0; j < side; j++ {
				nh[i][j] = OutOfBounds
			}
			continue
		}
		for j := 0; j < side; j++ {
			rawY := y - depth + j
			actualY := u.translate(rawY, u.height)
			if !inRange(actualY, u.height) {
				nh[i][j] = OutOfBounds
				continue
			}
			nh[i][j] = u.grid[actualX][actualY]
		}
	}
	return nh
}

//maskVonNeumann reduces a Moore window to the von Neumann shape by marking
//every position sharing neither the center row nor the center column as
//OutOfBounds
func maskVonNeumann(nh Window) {
	mid := middle(len(nh))
	for i := range nh {
		for j := range nh[i] {
			if i != mid && j != mid {
				nh[i][j] = OutOfBounds
			}
		}
	}
}

//translate maps coord into [0, dimension) by folding it over the edge when
//the universe is toroidal; with hard edges it returns coord unchanged.
//A coordinate is corrected by one dimension at most.
func (u *Universe) translate(coord int, dimension int) int {
	if !u.boundary {
		return coord
	}
	if coord < 0 {
		return dimension + coord
	}
	if coord > dimension-1 {
		return coord - dimension
	}
	return coord
}

//inRange reports whether coord lies inside [0, dimension)
func inRange(coord int, dimension int) bool {
	return coord >= 0 && coord < dimension
}

//middle returns the index of the central element for a window side
func middle(side int) int {
	return (side - 1) / 2
}
