package seed

import (
	"math/rand"

	"github.com/aquilax/go-perlin"
	"github.com/pkg/errors"

	"conwaylife/src/universe"
)

//Pattern represents a seeding template which can be used to settle the
//universe with predefined data
type Pattern struct {
	Name        string
	Descr       string
	Coordinates [][2]int //[x, y] pairs of alive cells
}

//builtin patterns
var (
	//Block is a 2x2 still life, it never changes
	Block = Pattern{
		Name:        "block",
		Descr:       "2x2 still life",
		Coordinates: [][2]int{{1, 1}, {1, 2}, {2, 1}, {2, 2}},
	}
	//Blinker flips between a column and a row of three with period 2
	Blinker = Pattern{
		Name:        "blinker",
		Descr:       "period 2 oscillator",
		Coordinates: [][2]int{{1, 0}, {1, 1}, {1, 2}},
	}
	//Glider crawls one cell diagonally every four generations
	Glider = Pattern{
		Name:        "glider",
		Descr:       "diagonally moving spaceship",
		Coordinates: [][2]int{{1, 0}, {2, 1}, {0, 2}, {1, 2}, {2, 2}},
	}
	//Sample mixes a block with a short-lived tail
	Sample = Pattern{
		Name:        "sample",
		Descr:       "block with a decaying tail",
		Coordinates: [][2]int{{1, 1}, {1, 2}, {2, 1}, {2, 2}, {3, 3}, {4, 2}, {4, 3}, {5, 3}},
	}
	//Classic is the six-cell seeding of the first simulation driver
	Classic = Pattern{
		Name:        "classic",
		Descr:       "six scattered cells",
		Coordinates: [][2]int{{13, 17}, {12, 16}, {1, 2}, {1, 1}, {1, 0}, {0, 0}},
	}
)

//Patterns indexes every builtin pattern by name
var Patterns = map[string]Pattern{
	Block.Name:   Block,
	Blinker.Name: Blinker,
	Glider.Name:  Glider,
	Sample.Name:  Sample,
	Classic.Name: Classic,
}

//Apply settles the pattern's cells into u, shifted by ox, oy.
//A pattern cell landing outside the grid is an error, the cells settled
//before it stay.
func Apply(u *universe.Universe, p Pattern, ox int, oy int) error {
	for _, c := range p.Coordinates {
		if err := u.Set(ox+c[0], oy+c[1], universe.Alive); err != nil {
			return errors.Wrapf(err, "[Apply] pattern %q cell (%d, %d)", p.Name, ox+c[0], oy+c[1])
		}
	}
	return nil
}

//Cells settles an explicit list of alive cells into u
func Cells(u *universe.Universe, coordinates [][2]int) error {
	for _, c := range coordinates {
		if err := u.Set(c[0], c[1], universe.Alive); err != nil {
			return errors.Wrapf(err, "[Cells] cell (%d, %d)", c[0], c[1])
		}
	}
	return nil
}

//Random settles each grid position alive with the given probability.
//Positions missing the probability are left as they are, so Random can
//top up an already seeded universe. A nil rng falls back to the shared
//global source.
func Random(u *universe.Universe, density float64, rng *rand.Rand) error {
	roll := rand.Float64
	if rng != nil {
		roll = rng.Float64
	}
	for x := 0; x < u.Width(); x++ {
		for y := 0; y < u.Height(); y++ {
			if roll() >= density {
				continue
			}
			if err := u.Set(x, y, universe.Alive); err != nil {
				return errors.Wrapf(err, "[Random] cell (%d, %d)", x, y)
			}
		}
	}
	return nil
}

//NoiseOptions configures Perlin noise seeding
type NoiseOptions struct {
	Alpha     float64 `json:"alpha"`     //smoothness, 2 is a reasonable default
	Beta      float64 `json:"beta"`      //harmonic scaling
	N         int32   `json:"n"`         //number of octaves
	Seed      int64   `json:"seed"`      //noise source seed
	Threshold float64 `json:"threshold"` //positions with noise above this come alive
}

//DefaultNoise produces a few organic looking islands
var DefaultNoise = NoiseOptions{
	Alpha:     2,
	Beta:      2,
	N:         3,
	Threshold: 0.1,
}

//Noise settles cells from a Perlin noise field: every position whose
//noise value exceeds o.Threshold comes alive. The same options always
//produce the same field.
func Noise(u *universe.Universe, o NoiseOptions) error {
	p := perlin.NewPerlin(o.Alpha, o.Beta, o.N, o.Seed)
	width, height := float64(u.Width()), float64(u.Height())
	for x := 0; x < u.Width(); x++ {
		for y := 0; y < u.Height(); y++ {
			if p.Noise2D(float64(x)/width, float64(y)/height) <= o.Threshold {
				continue
			}
			if err := u.Set(x, y, universe.Alive); err != nil {
				return errors.Wrapf(err, "[Noise] cell (%d, %d)", x, y)
			}
		}
	}
	return nil
}
