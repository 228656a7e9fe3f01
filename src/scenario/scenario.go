package scenario

import (
	"io"
	"math/rand"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"conwaylife/src/seed"
	"conwaylife/src/universe"
)

//Seeding describes how a scenario populates the universe before running.
//Every field that is set is applied, in order: Pattern, Cells, Density,
//Noise.
type Seeding struct {
	Pattern  string             `json:"pattern,omitempty"` //builtin pattern name
	OffsetX  int                `json:"offset_x,omitempty"`
	OffsetY  int                `json:"offset_y,omitempty"`
	Cells    [][2]int           `json:"cells,omitempty"`     //explicit alive cells
	Density  float64            `json:"density,omitempty"`   //random seeding probability
	RandSeed int64              `json:"rand_seed,omitempty"` //source seed for Density
	Noise    *seed.NoiseOptions `json:"noise,omitempty"`
}

//Scenario describes one self-contained simulation run
type Scenario struct {
	Name     string  `json:"name"`
	Descr    string  `json:"descr,omitempty"`
	Width    int     `json:"width"`
	Height   int     `json:"height,omitempty"`    //0 means square
	Cycles   int     `json:"cycles"`              //generations to simulate
	HardEdge bool    `json:"hard_edge,omitempty"` //disables the toroidal wrapping
	Quiet    bool    `json:"quiet,omitempty"`
	Seed     Seeding `json:"seed"`
}

//Result pairs a scenario with its terminal status
type Result struct {
	Scenario Scenario
	Status   universe.Status
}

//Builtins returns the ready to run scenario set
func Builtins() []Scenario {
	return []Scenario{
		{
			Name:   "classic",
			Descr:  "six scattered cells on a torus",
			Width:  50,
			Cycles: 100,
			Seed:   Seeding{Pattern: "classic"},
		},
		{
			Name:     "hardedge",
			Descr:    "six scattered cells against hard edges",
			Width:    50,
			Cycles:   100,
			HardEdge: true,
			Seed:     Seeding{Pattern: "classic"},
		},
		{
			Name:   "stable",
			Descr:  "a block with a decaying tail settles down",
			Width:  20,
			Cycles: 40,
			Seed:   Seeding{Pattern: "sample"},
		},
		{
			Name:   "glider",
			Descr:  "a glider crawling over the torus",
			Width:  25,
			Cycles: 200,
			Seed:   Seeding{Pattern: "glider", OffsetX: 1, OffsetY: 1},
		},
		{
			Name:   "soup",
			Descr:  "random soup at 15% density",
			Width:  60,
			Height: 30,
			Cycles: 150,
			Quiet:  true,
			Seed:   Seeding{Density: 0.15, RandSeed: 1},
		},
		{
			Name:   "islands",
			Descr:  "perlin noise islands",
			Width:  60,
			Height: 30,
			Cycles: 150,
			Quiet:  true,
			Seed:   Seeding{Noise: &seed.DefaultNoise},
		},
	}
}

//Find returns the scenario with the given name
func Find(scenarios []Scenario, name string) (Scenario, bool) {
	for _, sc := range scenarios {
		if sc.Name == name {
			return sc, true
		}
	}
	return Scenario{}, false
}

//Build constructs and seeds the scenario's universe. Narration goes to
//output unless the scenario is quiet.
func Build(sc Scenario, output io.Writer) (*universe.Universe, error) {
	o := universe.Options{
		Width:    sc.Width,
		Height:   sc.Height,
		Cycles:   sc.Cycles,
		Boundary: !sc.HardEdge,
		Quiet:    sc.Quiet,
		Output:   output,
	}
	u, err := universe.New(&o)
	if err != nil {
		return nil, errors.Wrapf(err, "[Build] scenario %q", sc.Name)
	}
	if err = applySeed(u, sc.Seed); err != nil {
		return nil, errors.Wrapf(err, "[Build] scenario %q", sc.Name)
	}
	return u, nil
}

//Run builds the scenario's universe and simulates it to completion
func Run(sc Scenario, output io.Writer) (universe.Status, error) {
	u, err := Build(sc, output)
	if err != nil {
		return universe.Status{}, err
	}
	return u.Run(), nil
}

//RunAll simulates every scenario concurrently, one universe per
//goroutine, and returns the results in scenario order. Narration is
//forced off so the outputs do not interleave.
func RunAll(scenarios []Scenario) ([]Result, error) {
	results := make([]Result, len(scenarios))
	var eg errgroup.Group
	for i := range scenarios {
		sc := scenarios[i]
		sc.Quiet = true
		eg.Go(func() error {
			st, err := Run(sc, io.Discard)
			if err != nil {
				return err
			}
			results[i] = Result{Scenario: scenarios[i], Status: st}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func applySeed(u *universe.Universe, s Seeding) error {
	if s.Pattern != "" {
		p, ok := seed.Patterns[s.Pattern]
		if !ok {
			return errors.Errorf("[applySeed] unknown pattern: %s", s.Pattern)
		}
		if err := seed.Apply(u, p, s.OffsetX, s.OffsetY); err != nil {
			return err
		}
	}
	if len(s.Cells) > 0 {
		if err := seed.Cells(u, s.Cells); err != nil {
			return err
		}
	}
	if s.Density > 0 {
		rng := rand.New(rand.NewSource(s.RandSeed))
		if err := seed.Random(u, s.Density, rng); err != nil {
			return err
		}
	}
	if s.Noise != nil {
		if err := seed.Noise(u, *s.Noise); err != nil {
			return err
		}
	}
	return nil
}
