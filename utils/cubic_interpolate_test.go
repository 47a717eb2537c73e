// SPDX-License-Identifier: EPL-2.0

package utils

import (
	"math"
	"testing"
)

func TestCubicInterpolate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		y0, y1, y2, y3 float32
		x              float32
		want           float32
		tolerance      float32
	}{
		{"at start returns y1", 0, 1, 2, 3, 0.0, 1.0, 0.001},
		{"at end returns y2", 0, 1, 2, 3, 1.0, 2.0, 0.001},
		{"midpoint of linear ramp", 0, 1, 2, 3, 0.5, 1.5, 0.001},
		{"quarter of linear ramp", 1, 2, 3, 4, 0.25, 2.25, 0.01},
		{"constant stays constant", 0.5, 0.5, 0.5, 0.5, 0.3, 0.5, 0.001},
		{"zero crossing", -1, -0.5, 0.5, 1, 0.5, 0.0, 0.1},
		{"all zeros", 0, 0, 0, 0, 0.5, 0.0, 0.001},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := CubicInterpolate(tt.y0, tt.y1, tt.y2, tt.y3, tt.x)
			if diff := float32(math.Abs(float64(got - tt.want))); diff > tt.tolerance {
				t.Errorf("CubicInterpolate() = %v, want %v (tolerance %v)", got, tt.want, tt.tolerance)
			}
		})
	}
}

func TestCubicInterpolate_Endpoints(t *testing.T) {
	t.Parallel()

	// The spline passes through y1 at x=0 and y2 at x=1 regardless of
	// the neighbor values.
	for i := 0; i < 100; i++ {
		y0, y1, y2, y3 := float32(i), float32(i+1), float32(i+2), float32(i+3)
		if got := CubicInterpolate(y0, y1, y2, y3, 0); got != y1 {
			t.Fatalf("x=0: got %v, want y1=%v", got, y1)
		}
		if got := CubicInterpolate(y0, y1, y2, y3, 1); got != y2 {
			t.Fatalf("x=1: got %v, want y2=%v", got, y2)
		}
	}
}

func TestCubicInterpolate_StaysNearSegment(t *testing.T) {
	t.Parallel()

	// For a smooth monotonic ramp the interpolant stays close to the
	// [y1, y2] segment.
	y0, y1, y2, y3 := float32(1), float32(2), float32(3), float32(4)
	for x := float32(0); x <= 1.0; x += 0.1 {
		got := CubicInterpolate(y0, y1, y2, y3, x)
		if got < y1-0.5 || got > y2+0.5 {
			t.Errorf("x=%v: %v outside [%v, %v]", x, got, y1-0.5, y2+0.5)
		}
	}
}

func BenchmarkCubicInterpolate(b *testing.B) {
	var result float32

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		result = CubicInterpolate(0.5, 1.0, 0.8, 0.3, 0.5)
	}
	_ = result
}
