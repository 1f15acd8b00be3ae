package geom

import "testing"

const eps = 1e-3

func near(a, b float32) bool {
	return Abs(a-b) <= eps
}

func TestSDRoundedBox(t *testing.T) {
	half := V(10, 5)
	tests := []struct {
		name  string
		p     Vec2
		radii Radii
		want  float32
	}{
		{"center", V(0, 0), Radii{}, -5},
		{"on right edge", V(10, 0), Radii{}, 0},
		{"outside right", V(13, 0), Radii{}, 3},
		{"outside square corner", V(13, 9), Radii{}, 5},
		{"rounded corner pulls boundary in", V(10, 5), UniformRadii(4), 4*1.41421356 - 4},
		{"only bottom-right rounded", V(-10, -5), Radii{BottomRight: 4}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SDRoundedBox(tt.p, half, tt.radii); !near(got, tt.want) {
				t.Errorf("SDRoundedBox(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestRadiiForPointQuadrants(t *testing.T) {
	r := Radii{TopLeft: 1, TopRight: 2, BottomLeft: 3, BottomRight: 4}
	cases := map[Vec2]float32{
		V(-1, -1): 1,
		V(1, -1):  2,
		V(-1, 1):  3,
		V(1, 1):   4,
	}
	for p, want := range cases {
		if got := r.ForPoint(p); got != want {
			t.Errorf("ForPoint(%v) = %v, want %v", p, got, want)
		}
	}
}

func TestSDSegmentExtendsByHalfThickness(t *testing.T) {
	a, b := V(0, 0), V(10, 0)
	if d := SDSegment(V(12, 0), a, b, 4); !near(d, 0) {
		t.Errorf("end cap distance = %v, want 0", d)
	}
	if d := SDSegment(V(5, 2), a, b, 4); !near(d, 0) {
		t.Errorf("side distance = %v, want 0", d)
	}
	// Rotated segment keeps the same shape.
	if d := SDSegment(V(0, 5), V(0, 0), V(0, 10), 2); !near(d, -1) {
		t.Errorf("vertical center distance = %v, want -1", d)
	}
}

func TestFillCoverage(t *testing.T) {
	if c := FillCoverage(-1, 0); c != 1 {
		t.Errorf("deep inside coverage = %v, want 1", c)
	}
	if c := FillCoverage(0, 0); !near(c, 0.5) {
		t.Errorf("boundary coverage = %v, want 0.5", c)
	}
	if c := FillCoverage(0.5, 0); c != 0 {
		t.Errorf("half pixel outside coverage = %v, want 0", c)
	}
	// Softness widens the band.
	if c := FillCoverage(1, 2); c <= 0 {
		t.Errorf("soft edge coverage = %v, want > 0", c)
	}
	// Negative softness is treated as zero.
	if FillCoverage(0.25, -3) != FillCoverage(0.25, 0) {
		t.Error("negative softness should clamp to zero")
	}
}

func TestStrokeStaysInsideBoundary(t *testing.T) {
	half := V(10, 10)
	for x := float32(10.5); x < 20; x += 0.5 {
		d := SDRoundedBox(V(x, 0), half, Radii{})
		if c := StrokeCoverage(d, 4, 0); c != 0 {
			t.Fatalf("stroke coverage %v at x=%v beyond the outer boundary", c, x)
		}
	}
	// Deep inside the hollow band is transparent.
	if c := StrokeCoverage(SDRoundedBox(V(0, 0), half, Radii{}), 4, 0); c != 0 {
		t.Errorf("stroke coverage at center = %v, want 0", c)
	}
	// Middle of the band is opaque.
	if c := StrokeCoverage(SDRoundedBox(V(8, 0), half, Radii{}), 4, 0); !near(c, 1) {
		t.Errorf("stroke coverage inside band = %v, want 1", c)
	}
}

func TestGradientT(t *testing.T) {
	tests := []struct {
		y, half, want float32
	}{
		{-10, 10, 0},
		{0, 10, 0.5},
		{10, 10, 1},
		{40, 10, 1},
		{3, 0, 0},
	}
	for _, tt := range tests {
		if got := GradientT(tt.y, tt.half); !near(got, tt.want) {
			t.Errorf("GradientT(%v, %v) = %v, want %v", tt.y, tt.half, got, tt.want)
		}
	}
}

func TestRectOps(t *testing.T) {
	r := R(0, 0, 100, 50)
	if !r.Contains(V(0, 0)) || r.Contains(V(100, 10)) {
		t.Error("Contains should include the top-left edge and exclude the right edge")
	}
	in := r.Inset(UniformInsets(10))
	if in != R(10, 10, 80, 30) {
		t.Errorf("Inset = %+v", in)
	}
	if got := R(0, 0, 10, 10).Inset(UniformInsets(8)); got.W != 0 || got.H != 0 {
		t.Errorf("over-inset should clamp to zero, got %+v", got)
	}
	if !r.Intersects(R(90, 40, 20, 20)) || r.Intersects(R(100, 0, 5, 5)) {
		t.Error("Intersects mismatch")
	}
	if got := r.Intersect(R(90, 40, 20, 20)); got != R(90, 40, 10, 10) {
		t.Errorf("Intersect = %+v", got)
	}
}
