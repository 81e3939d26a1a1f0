package vmath

// Smooth moves current toward target by a fixed fraction of the remaining gap
// For 0 < factor < 1 the approach is asymptotic and never overshoots
func Smooth(current, target, factor float64) float64 {
	return current + (target-current)*factor
}

// NDC maps a viewport point to normalized device coordinates in [-1, 1] with y flipped
// ok is false for a degenerate viewport
func NDC(clientX, clientY, width, height float64) (x, y float64, ok bool) {
	if width <= 0 || height <= 0 {
		return 0, 0, false
	}
	x = clientX/width*2 - 1
	y = -(clientY/height*2 - 1)
	return x, y, true
}

// Clamp limits v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
