package universe

import (
	"time"
)

//RunState classifies a Status update
type RunState int

const (
	//StateRunning marks statuses delivered while generations remain
	StateRunning RunState = iota
	//StateFinished marks a run that completed every configured cycle
	StateFinished
	//StateExtinct marks a run abandoned because no cell was left alive
	StateExtinct
)

func (s RunState) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateFinished:
		return "finished"
	case StateExtinct:
		return "extinct"
	}
	return "unknown"
}

//Status represents the status of the Universe at a concrete moment
type Status struct {
	Cycle     int //generations completed so far in this run
	LiveCells int
	State     RunState
	Elapsed   time.Duration //last cycle for running statuses, whole run for terminal ones
}

//Observer receives the universe status after every completed cycle and
//once more when a run terminates
type Observer interface {
	Observe(st Status)
}

//RegisterObserver subscribes o to status updates. Observers are called
//synchronously from Run and Step, in registration order.
func (u *Universe) RegisterObserver(o Observer) {
	u.views = append(u.views, o)
}

//Run simulates the configured number of cycles, or less when the universe
//dies out first. It blocks until the run terminates and returns the
//terminal status.
func (u *Universe) Run() Status {
	return u.simulate(u.cycles)
}

//Step advances the universe by exactly one generation regardless of the
//configured cycle count
func (u *Universe) Step() Status {
	return u.simulate(1)
}

func (u *Universe) simulate(cycles int) Status {
	start := time.Now()
	final := Status{State: StateFinished}
	for cycle := 1; cycle <= cycles; cycle++ {
		u.narrate("Cycle #%d.\n", cycle)

		alive := u.aliveCells()
		if len(alive) == 0 {
			u.narrate("Universe is dead! Aborting simulation.\n")
			final.State = StateExtinct
			break
		}

		cycleStart := time.Now()
		u.nextGeneration(alive)
		final.Cycle = cycle

		if len(u.views) != 0 {
			u.notify(Status{
				Cycle:     cycle,
				LiveCells: u.Population(),
				State:     StateRunning,
				Elapsed:   time.Since(cycleStart),
			})
		}
	}
	final.LiveCells = u.Population()
	final.Elapsed = time.Since(start)
	u.notify(final)
	return final
}

//nextGeneration computes the next generation into a fresh grid and swaps
//it in. The calculation never writes into the current grid, so every cell
//evaluation observes the previous generation only.
//
//Only alive cells and their dead neighbors can change state, everything
//else stays dead. Walking the alive cells therefore covers the whole
//universe without scanning it.
func (u *Universe) nextGeneration(alive [][2]int) {
	next := newGrid(u.width, u.height)
	for _, cell := range alive {
		x, y := cell[0], cell[1]

		nh := u.window(x, y, 1)
		nalive := u.CountLive(nh)
		u.narrate("(%d, %d): %d \n", x, y, nalive)

		//an alive cell lives on with two or three alive neighbors
		if nalive == 2 || nalive == 3 {
			next[x][y] = Alive
		}

		//a dead neighbor comes to life when its own neighborhood holds
		//exactly three alive cells
		mid := middle(len(nh))
		for xd := range nh {
			for yd := range nh[xd] {
				if nh[xd][yd] != Dead {
					continue
				}
				actualX := u.translate(x-mid+xd, u.width)
				actualY := u.translate(y-mid+yd, u.height)
				if !inRange(actualX, u.width) || !inRange(actualY, u.height) {
					continue
				}
				if u.CountLive(u.window(actualX, actualY, 1)) == 3 {
					next[actualX][actualY] = Alive
				}
			}
		}
	}
	u.grid = next
}

//notify calls every registered observer with st
func (u *Universe) notify(st Status) {
	for _, v := range u.views {
		v.Observe(st)
	}
}
