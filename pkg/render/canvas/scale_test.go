package canvas

import (
	"math"
	"testing"
)

func TestFitWithin(t *testing.T) {
	tests := []struct {
		name         string
		w, h         float64
		maxW, maxH   float64
		wantW, wantH float64
	}{
		{"wide logo", 600, 100, 120, 40, 120, 20},
		{"tall logo", 100, 400, 120, 40, 10, 40},
		{"exact ratio", 300, 100, 120, 40, 120, 40},
		{"upscale", 30, 10, 120, 40, 120, 40},
		{"signature", 900, 300, 180, 60, 180, 60},
		{"zero width", 0, 100, 120, 40, 0, 0},
		{"zero box", 100, 100, 0, 40, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotW, gotH := FitWithin(tt.w, tt.h, tt.maxW, tt.maxH)
			if math.Abs(gotW-tt.wantW) > 1e-9 || math.Abs(gotH-tt.wantH) > 1e-9 {
				t.Errorf("FitWithin() = (%v, %v), want (%v, %v)", gotW, gotH, tt.wantW, tt.wantH)
			}
		})
	}
}
