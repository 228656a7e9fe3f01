package universe

import (
	"fmt"
	"io"
	"os"
)

//Cell is the state of a single grid position.
//The grid itself stores only Dead or Alive. OutOfBounds is a transient
//marker which appears in neighborhood windows of a hard-edged universe and
//never survives a write: Set stores any state other than Dead as Alive.
type Cell int8

const (
	Dead        Cell = 0
	Alive       Cell = 1
	OutOfBounds Cell = -1
)

//Options represents the Universe's configurable options.
//Width and Height are fixed at construction, the rest can be changed
//between runs through the setters or Configure.
type Options struct {
	Width    int
	Height   int       //0 makes the universe square: Height = Width
	Cycles   int       //number of generations a Run simulates
	Boundary bool      //true folds the universe into a torus
	Quiet    bool      //suppresses the per-cycle narration
	Output   io.Writer //narration target, nil means os.Stdout
}

//default options
const (
	DefWidth  = 40
	DefCycles = 0
)

var DefaultOptions = Options{
	Width:    DefWidth,
	Cycles:   DefCycles,
	Boundary: true,
}

//Universe is a finite two dimensional grid of cells together with the
//simulation parameters. It is not safe for concurrent use.
type Universe struct {
	width    int
	height   int
	cycles   int
	boundary bool
	quiet    bool
	out      io.Writer
	grid     [][]Cell
	views    []Observer
}

//New creates a Universe from the given options, nil means DefaultOptions.
//A zero Height produces a square universe. The dimensions are fixed for
//the whole lifetime of the instance.
func New(o *Options) (*Universe, error) {
	if o == nil {
		o = &DefaultOptions
	}
	width, height := o.Width, o.Height
	if height == 0 {
		height = width
	}
	if width <= 0 || height <= 0 {
		return nil, ErrBadDimensions
	}
	u := Universe{
		width:    width,
		height:   height,
		boundary: o.Boundary,
		quiet:    o.Quiet,
		out:      o.Output,
		grid:     newGrid(width, height),
	}
	if u.out == nil {
		u.out = os.Stdout
	}
	u.SetCycles(o.Cycles)
	return &u, nil
}

//Get returns the state of the cell at x, y.
//The lookup never wraps around the edges: an index outside the grid is a
//BoundsError regardless of the boundary mode.
func (u *Universe) Get(x int, y int) (Cell, error) {
	if err := u.checkBounds(x, y); err != nil {
		return Dead, err
	}
	return u.grid[x][y], nil
}

//Set stores the state of the cell at x, y.
//Any state other than Dead is stored as Alive. Like Get it never wraps
//around the edges.
func (u *Universe) Set(x int, y int, state Cell) error {
	if err := u.checkBounds(x, y); err != nil {
		return err
	}
	if state != Dead {
		state = Alive
	}
	u.grid[x][y] = state
	return nil
}

//Width returns the fixed horizontal dimension of the universe
func (u *Universe) Width() int {
	return u.width
}

//Height returns the fixed vertical dimension of the universe
func (u *Universe) Height() int {
	return u.height
}

//Cycles returns the number of generations the next Run will simulate
func (u *Universe) Cycles() int {
	return u.cycles
}

//Boundary reports whether coordinates wrap around the edges
func (u *Universe) Boundary() bool {
	return u.boundary
}

//Quiet reports whether the per-cycle narration is suppressed
func (u *Universe) Quiet() bool {
	return u.quiet
}

//SetCycles sets the number of generations the next Run simulates.
//Negative values are stored as zero.
func (u *Universe) SetCycles(cycles int) {
	if cycles < 0 {
		cycles = 0
	}
	u.cycles = cycles
}

//SetBoundary switches the boundary mode: true folds the universe into a
//torus, false leaves hard edges
func (u *Universe) SetBoundary(boundary bool) {
	u.boundary = boundary
}

//SetQuiet switches the per-cycle narration off or back on
func (u *Universe) SetQuiet(quiet bool) {
	u.quiet = quiet
}

//Configure applies o to the universe the way New does, except that the
//dimensions cannot change anymore: a Width or Height differing from the
//current ones returns ErrDimensionsFixed and leaves the universe
//untouched. Zero Width and Height keep the current dimensions, a zero
//Height with a non-zero Width stands for a square as in New.
func (u *Universe) Configure(o Options) error {
	width, height := o.Width, o.Height
	if width == 0 {
		width = u.width
	}
	if height == 0 {
		if o.Width == 0 {
			height = u.height
		} else {
			height = o.Width
		}
	}
	if width != u.width || height != u.height {
		return ErrDimensionsFixed
	}
	u.SetCycles(o.Cycles)
	u.boundary = o.Boundary
	u.quiet = o.Quiet
	if o.Output != nil {
		u.out = o.Output
	}
	return nil
}

//Options returns the current universe configuration
func (u *Universe) Options() Options {
	return Options{
		Width:    u.width,
		Height:   u.height,
		Cycles:   u.cycles,
		Boundary: u.boundary,
		Quiet:    u.quiet,
		Output:   u.out,
	}
}

//Population returns the number of alive cells in the whole universe
func (u *Universe) Population() int {
	count := 0
	for x := range u.grid {
		for y := range u.grid[x] {
			if u.grid[x][y] == Alive {
				count++
			}
		}
	}
	return count
}

//Clear kills every cell in the universe
func (u *Universe) Clear() {
	u.grid = newGrid(u.width, u.height)
}

//String implements fmt.Stringer
func (u *Universe) String() string {
	return fmt.Sprintf("Universe size is %d x %d cells.", u.width, u.height)
}

//checkBounds validates a grid coordinate, the width axis first
func (u *Universe) checkBounds(x int, y int) error {
	if x < 0 || x >= u.width {
		return &BoundsError{Axis: AxisWidth, Index: x}
	}
	if y < 0 || y >= u.height {
		return &BoundsError{Axis: AxisHeight, Index: y}
	}
	return nil
}

//aliveCells returns the coordinates of every alive cell, column by column
func (u *Universe) aliveCells() [][2]int {
	var alive [][2]int
	for x := range u.grid {
		for y := range u.grid[x] {
			if u.grid[x][y] == Alive {
				alive = append(alive, [2]int{x, y})
			}
		}
	}
	return alive
}

//narrate writes progress text unless the universe is quiet
func (u *Universe) narrate(format string, args ...interface{}) {
	if u.quiet {
		return
	}
	fmt.Fprintf(u.out, format, args...)
}

//newGrid allocates a width x height all-dead grid
//a single backing slice keeps the columns contiguous
func newGrid(width int, height int) [][]Cell {
	grid := make([][]Cell, width)
	b := make([]Cell, width*height)
	for x := range grid {
		start := height * x
		grid[x] = b[start : start+height : start+height]
	}
	return grid
}
