package mapview

import (
	"math"
	"testing"

	"github.com/paulmach/orb"
)

func TestProjectOrigin(t *testing.T) {
	p := project(orb.Point{0, 0}, 0)
	if !near(p[0], 128) || !near(p[1], 128) {
		t.Errorf("project(0,0) at zoom 0 = %v, want (128,128)", p)
	}
	p = project(orb.Point{-180, 0}, 2)
	if !near(p[0], 0) || !near(p[1], 512) {
		t.Errorf("project(-180,0) at zoom 2 = %v, want (0,512)", p)
	}
}

func TestWorldSize(t *testing.T) {
	tests := []struct {
		z    float64
		want float64
	}{
		{0, 256},
		{1, 512},
		{10, 262144},
		{0.5, 256 * math.Sqrt2},
	}
	for _, tt := range tests {
		if got := worldSize(tt.z); !near(got, tt.want) {
			t.Errorf("worldSize(%v) = %v, want %v", tt.z, got, tt.want)
		}
	}
}

func TestProjectRoundTrip(t *testing.T) {
	points := []orb.Point{
		{0, 0},
		{2.3522, 48.8566},
		{-122.4194, 37.7749},
		{151.2093, -33.8688},
		{179.9, 85},
		{-179.9, -85},
	}
	for _, z := range []float64{0, 4.5, 12, 18} {
		for _, ll := range points {
			got := unproject(project(ll, z), z)
			if math.Abs(got[0]-ll[0]) > 1e-7 || math.Abs(got[1]-ll[1]) > 1e-7 {
				t.Errorf("zoom %v: %v -> %v", z, ll, got)
			}
		}
	}
}

func TestProjectNorthIsUp(t *testing.T) {
	north := project(orb.Point{0, 45}, 3)
	south := project(orb.Point{0, -45}, 3)
	if north[1] >= south[1] {
		t.Errorf("north y %v should be above south y %v", north[1], south[1])
	}
}
