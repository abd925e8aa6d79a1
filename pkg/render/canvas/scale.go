package canvas

// FitWithin scales (w, h) uniformly so that it fits the (maxW, maxH) box,
// keeping the aspect ratio. Images smaller than the box are scaled up.
// Degenerate inputs return (0, 0).
func FitWithin(w, h, maxW, maxH float64) (float64, float64) {
	if w <= 0 || h <= 0 || maxW <= 0 || maxH <= 0 {
		return 0, 0
	}
	scale := min(maxW/w, maxH/h)
	return w * scale, h * scale
}
