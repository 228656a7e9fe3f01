package universe

import (
	"errors"
	"reflect"
	"testing"
)

func settle(t *testing.T, u *Universe, cells [][2]int) {
	t.Helper()
	for _, c := range cells {
		if err := u.Set(c[0], c[1], Alive); err != nil {
			t.Fatalf("Set(%d, %d) returned error: %v", c[0], c[1], err)
		}
	}
}

func TestTranslateToroidal(t *testing.T) {
	u := newTestUniverse(t, &Options{Width: 5, Boundary: true})

	tcs := []struct {
		coord, dimension, want int
	}{
		{0, 5, 0},
		{3, 5, 3},
		{4, 5, 4},
		{-1, 5, 4},
		{-5, 5, 0},
		{5, 5, 0},
		{9, 5, 4},
	}

	for _, tc := range tcs {
		if got := u.translate(tc.coord, tc.dimension); got != tc.want {
			t.Fatalf("translate(%d, %d) = %d, want %d", tc.coord, tc.dimension, got, tc.want)
		}
	}
}

func TestTranslateHardEdge(t *testing.T) {
	u := newTestUniverse(t, &Options{Width: 5, Boundary: false})

	for _, coord := range []int{-3, -1, 0, 2, 4, 5, 8} {
		if got := u.translate(coord, 5); got != coord {
			t.Fatalf("translate(%d, 5) = %d, want the coordinate unchanged", coord, got)
		}
	}
}

func TestNeighborhoodToroidalWraps(t *testing.T) {
	u := newTestUniverse(t, &Options{Width: 5, Boundary: true})
	settle(t, u, [][2]int{{4, 4}, {4, 0}, {0, 4}})

	nh, err := u.Neighborhood(0, 0, 1, Moore)
	if err != nil {
		t.Fatalf("Neighborhood returned error: %v", err)
	}

	want := Window{
		{Alive, Alive, Dead},
		{Alive, Dead, Dead},
		{Dead, Dead, Dead},
	}
	if !reflect.DeepEqual(nh, want) {
		t.Fatalf("corner window = %v, want %v", nh, want)
	}
	if n := u.CountLive(nh); n != 3 {
		t.Fatalf("expected 3 alive neighbors, got %d", n)
	}
}

func TestNeighborhoodHardEdges(t *testing.T) {
	u := newTestUniverse(t, &Options{Width: 5, Boundary: false})
	settle(t, u, [][2]int{{1, 0}, {0, 1}})

	nh, err := u.Neighborhood(0, 0, 1, Moore)
	if err != nil {
		t.Fatalf("Neighborhood returned error: %v", err)
	}

	want := Window{
		{OutOfBounds, OutOfBounds, OutOfBounds},
		{OutOfBounds, Dead, Alive},
		{OutOfBounds, Alive, Dead},
	}
	if !reflect.DeepEqual(nh, want) {
		t.Fatalf("corner window = %v, want %v", nh, want)
	}
	if n := u.CountLive(nh); n != 2 {
		t.Fatalf("expected 2 alive neighbors, got %d", n)
	}
}

func TestNeighborhoodInteriorEqualBothModes(t *testing.T) {
	//away from the edges the boundary mode must not matter
	cells := [][2]int{{2, 1}, {3, 2}, {1, 3}}

	tor := newTestUniverse(t, &Options{Width: 5, Boundary: true})
	settle(t, tor, cells)
	hard := newTestUniverse(t, &Options{Width: 5, Boundary: false})
	settle(t, hard, cells)

	torNh, err := tor.Neighborhood(2, 2, 1, Moore)
	if err != nil {
		t.Fatalf("Neighborhood returned error: %v", err)
	}
	hardNh, err := hard.Neighborhood(2, 2, 1, Moore)
	if err != nil {
		t.Fatalf("Neighborhood returned error: %v", err)
	}
	if !reflect.DeepEqual(torNh, hardNh) {
		t.Fatalf("interior windows differ: %v vs %v", torNh, hardNh)
	}
}

func TestNeighborhoodValidatesCenter(t *testing.T) {
	u := newTestUniverse(t, &Options{Width: 5, Boundary: true})

	_, err := u.Neighborhood(5, 0, 1, Moore)
	var be *BoundsError
	if !errors.As(err, &be) {
		t.Fatalf("Neighborhood(5, 0) error = %v, want a BoundsError", err)
	}
	if be.Axis != AxisWidth {
		t.Fatalf("expected the width axis, got %v", be.Axis)
	}

	if _, err = u.Neighborhood(0, -1, 1, Moore); !errors.As(err, &be) {
		t.Fatalf("Neighborhood(0, -1) error = %v, want a BoundsError", err)
	}
	if be.Axis != AxisHeight {
		t.Fatalf("expected the height axis, got %v", be.Axis)
	}
}

func TestNeighborhoodDepthCoercion(t *testing.T) {
	u := newTestUniverse(t, &Options{Width: 5})
	settle(t, u, [][2]int{{2, 2}})

	own, err := u.Neighborhood(2, 2, 0, Moore)
	if err != nil {
		t.Fatalf("Neighborhood returned error: %v", err)
	}
	if len(own) != 1 || own[0][0] != Alive {
		t.Fatalf("depth 0 window = %v, want the cell's own state only", own)
	}

	neg, err := u.Neighborhood(2, 2, -3, Moore)
	if err != nil {
		t.Fatalf("Neighborhood returned error: %v", err)
	}
	if !reflect.DeepEqual(neg, own) {
		t.Fatalf("negative depth window = %v, want %v", neg, own)
	}
}

func TestNeighborhoodIsReadOnly(t *testing.T) {
	u := newTestUniverse(t, &Options{Width: 5, Boundary: true})
	settle(t, u, [][2]int{{1, 1}, {3, 3}})

	first, err := u.Neighborhood(2, 2, 2, Moore)
	if err != nil {
		t.Fatalf("Neighborhood returned error: %v", err)
	}
	second, err := u.Neighborhood(2, 2, 2, Moore)
	if err != nil {
		t.Fatalf("Neighborhood returned error: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("repeated queries differ: %v vs %v", first, second)
	}
	if u.Population() != 2 {
		t.Fatalf("the query changed the universe, %d alive cells left", u.Population())
	}
}

func TestVonNeumannMask(t *testing.T) {
	u := newTestUniverse(t, &Options{Width: 5, Boundary: true})
	//surround the center completely to see the mask shape alone
	settle(t, u, [][2]int{
		{1, 1}, {1, 2}, {1, 3},
		{2, 1}, {2, 2}, {2, 3},
		{3, 1}, {3, 2}, {3, 3},
	})

	nh, err := u.Neighborhood(2, 2, 1, VonNeumann)
	if err != nil {
		t.Fatalf("Neighborhood returned error: %v", err)
	}

	want := Window{
		{OutOfBounds, Alive, OutOfBounds},
		{Alive, Alive, Alive},
		{OutOfBounds, Alive, OutOfBounds},
	}
	if !reflect.DeepEqual(nh, want) {
		t.Fatalf("von Neumann window = %v, want %v", nh, want)
	}
	if n := u.CountLive(nh); n != 4 {
		t.Fatalf("expected 4 alive neighbors, got %d", n)
	}
}

func TestVonNeumannMaskDeeper(t *testing.T) {
	u := newTestUniverse(t, &Options{Width: 7, Boundary: true})

	nh, err := u.Neighborhood(3, 3, 2, VonNeumann)
	if err != nil {
		t.Fatalf("Neighborhood returned error: %v", err)
	}

	mid := len(nh) / 2
	for i := range nh {
		for j := range nh[i] {
			onCross := i == mid || j == mid
			if onCross && nh[i][j] == OutOfBounds {
				t.Fatalf("position (%d, %d) on the cross must keep its state", i, j)
			}
			if !onCross && nh[i][j] != OutOfBounds {
				t.Fatalf("position (%d, %d) off the cross must be masked", i, j)
			}
		}
	}
}

func TestCountLiveCenterCorrection(t *testing.T) {
	u := newTestUniverse(t, &Options{Width: 3, Boundary: false})
	settle(t, u, [][2]int{
		{0, 0}, {0, 1}, {0, 2},
		{1, 0}, {1, 1}, {1, 2},
		{2, 0}, {2, 1}, {2, 2},
	})

	//the whole grid as a window: the center does not count itself
	nh, err := u.Neighborhood(1, 1, 1, Moore)
	if err != nil {
		t.Fatalf("Neighborhood returned error: %v", err)
	}
	if n := u.CountLive(nh); n != 8 {
		t.Fatalf("expected 8 alive neighbors, got %d", n)
	}

	//the nil window counts the whole universe with no correction
	if n := u.CountLive(nil); n != 9 {
		t.Fatalf("expected 9 alive cells, got %d", n)
	}
}

func TestCountLiveIgnoresMarkers(t *testing.T) {
	u := newTestUniverse(t, &Options{Width: 4, Boundary: false})
	settle(t, u, [][2]int{{0, 1}, {1, 0}, {1, 1}})

	nh, err := u.Neighborhood(0, 0, 1, Moore)
	if err != nil {
		t.Fatalf("Neighborhood returned error: %v", err)
	}
	if n := u.CountLive(nh); n != 3 {
		t.Fatalf("expected 3 alive neighbors, got %d", n)
	}
}
