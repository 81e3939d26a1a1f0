package render

// Canvas is a raster target in device pixels, origin top left
type Canvas interface {
	// Bounds returns the drawable size in device pixels
	Bounds() (width, height int)

	// Clear resets every pixel to transparent black
	Clear()

	// Point plots a dot centered at (x, y), radius below one pixel plots a single pixel
	Point(x, y, radius float64, c RGB, alpha float64, mode BlendMode)

	// Line draws an opaque segment, overlapping segments keep the brighter channel
	Line(x0, y0, x1, y1 float64, c RGB)
}
