package render

import "math"

// PixelBuffer is an RGB raster used as the sample grid behind cell output
type PixelBuffer struct {
	pix    []RGB
	width  int
	height int
}

// NewPixelBuffer creates a cleared buffer with the specified dimensions
func NewPixelBuffer(width, height int) *PixelBuffer {
	width, height = max(width, 0), max(height, 0)
	return &PixelBuffer{
		pix:    make([]RGB, width*height),
		width:  width,
		height: height,
	}
}

// Resize adjusts buffer dimensions, reallocates only if capacity insufficient
func (p *PixelBuffer) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	size := width * height
	if cap(p.pix) < size {
		p.pix = make([]RGB, size)
	} else {
		p.pix = p.pix[:size]
	}
	p.width = width
	p.height = height
	p.Clear()
}

// Clear resets all pixels to black using exponential copy
func (p *PixelBuffer) Clear() {
	if len(p.pix) == 0 {
		return
	}
	p.pix[0] = RGBBlack
	for filled := 1; filled < len(p.pix); filled *= 2 {
		copy(p.pix[filled:], p.pix[:filled])
	}
}

func (p *PixelBuffer) Bounds() (int, int) {
	return p.width, p.height
}

// At returns the pixel at (x, y), black when out of bounds
func (p *PixelBuffer) At(x, y int) RGB {
	if !p.inBounds(x, y) {
		return RGBBlack
	}
	return p.pix[y*p.width+x]
}

func (p *PixelBuffer) inBounds(x, y int) bool {
	return x >= 0 && x < p.width && y >= 0 && y < p.height
}

func (p *PixelBuffer) set(x, y int, c RGB, alpha float64, mode BlendMode) {
	if !p.inBounds(x, y) {
		return
	}
	idx := y*p.width + x
	p.pix[idx] = mode.Apply(p.pix[idx], c, alpha)
}

func (p *PixelBuffer) Point(x, y, radius float64, c RGB, alpha float64, mode BlendMode) {
	Disk(x, y, radius, func(px, py int) {
		p.set(px, py, c, alpha, mode)
	})
}

// Disk calls plot for every pixel whose center lies within radius of (x, y)
// Radius below one pixel plots the single pixel containing the center
func Disk(x, y, radius float64, plot func(px, py int)) {
	if radius < 1 {
		plot(int(math.Floor(x)), int(math.Floor(y)))
		return
	}
	r2 := radius * radius
	minX, maxX := int(math.Floor(x-radius)), int(math.Ceil(x+radius))
	minY, maxY := int(math.Floor(y-radius)), int(math.Ceil(y+radius))
	for py := minY; py <= maxY; py++ {
		for px := minX; px <= maxX; px++ {
			dx := float64(px) + 0.5 - x
			dy := float64(py) + 0.5 - y
			if dx*dx+dy*dy <= r2 {
				plot(px, py)
			}
		}
	}
}

// Line rasterizes with Bresenham, endpoints far outside the buffer are walked but not written
func (p *PixelBuffer) Line(x0, y0, x1, y1 float64, c RGB) {
	ix0, iy0 := int(math.Floor(x0)), int(math.Floor(y0))
	ix1, iy1 := int(math.Floor(x1)), int(math.Floor(y1))

	// Reject segments entirely on one side of the buffer
	if (ix0 < 0 && ix1 < 0) || (iy0 < 0 && iy1 < 0) ||
		(ix0 >= p.width && ix1 >= p.width) || (iy0 >= p.height && iy1 >= p.height) {
		return
	}

	dx := abs(ix1 - ix0)
	dy := -abs(iy1 - iy0)
	sx, sy := 1, 1
	if ix0 > ix1 {
		sx = -1
	}
	if iy0 > iy1 {
		sy = -1
	}
	e := dx + dy
	for {
		p.set(ix0, iy0, c, 1, BlendMax)
		if ix0 == ix1 && iy0 == iy1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			ix0 += sx
		}
		if e2 <= dx {
			e += dx
			iy0 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// ResolveHalfBlocks downsamples into cells, each cell covering samples px wide and 2*samples px tall
// Max filtering keeps single-pixel points visible after downsampling
func (p *PixelBuffer) ResolveHalfBlocks(dst *RenderBuffer, samples int, opacity float64) {
	if samples < 1 {
		samples = 1
	}
	cols, rows := dst.Bounds()
	for cy := 0; cy < rows; cy++ {
		for cx := 0; cx < cols; cx++ {
			top := p.blockMax(cx*samples, cy*2*samples, samples)
			bottom := p.blockMax(cx*samples, cy*2*samples+samples, samples)
			dst.SetHalf(cx, cy, Scale(top, opacity), Scale(bottom, opacity))
		}
	}
}

func (p *PixelBuffer) blockMax(x0, y0, n int) RGB {
	var out RGB
	for y := y0; y < y0+n; y++ {
		for x := x0; x < x0+n; x++ {
			out = Max(out, p.At(x, y), 1)
		}
	}
	return out
}
