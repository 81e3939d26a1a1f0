package surface

import (
	"fmt"
	"image"
	"image/color"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"github.com/lixenwraith/backdrop/constant"
	"github.com/lixenwraith/backdrop/host"
	"github.com/lixenwraith/backdrop/render"
	"github.com/lixenwraith/backdrop/render/raster"
	"github.com/lixenwraith/backdrop/scene"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
)

// Offscreen renders into an RGBA image with a transparent background
// Strokes go through gg, points are composited directly into the pixels
type Offscreen struct {
	geometry
	img     *image.RGBA
	dc      *gg.Context
	raster  *raster.Rasterizer
	stats   raster.Stats
	caption string
	face    font.Face

	disposed bool
}

// OffscreenOptions configures an offscreen surface
type OffscreenOptions struct {
	// Caption is drawn in the lower left corner when set
	Caption string
}

// NewOffscreen creates an image surface sized to the viewport
func NewOffscreen(vp host.Viewport, opts OffscreenOptions) (*Offscreen, error) {
	o := &Offscreen{
		raster:  raster.New(),
		caption: opts.Caption,
	}
	if o.caption != "" {
		ttf, err := truetype.Parse(gomono.TTF)
		if err != nil {
			return nil, fmt.Errorf("caption font: %w", err)
		}
		o.face = truetype.NewFace(ttf, &truetype.Options{
			Size:    constant.CaptionFontSize,
			DPI:     72,
			Hinting: font.HintingFull,
		})
	}
	o.SetSize(vp.Width, vp.Height)
	o.SetPixelRatio(vp.DevicePixelRatio)
	return o, nil
}

// OffscreenFactory returns a Factory creating offscreen surfaces with opts
func OffscreenFactory(opts OffscreenOptions) Factory {
	return func(vp host.Viewport) (Renderer, error) {
		return NewOffscreen(vp, opts)
	}
}

func (o *Offscreen) NodeName() string {
	return "offscreen-surface"
}

// ensure reallocates the image when the device resolution changed
func (o *Offscreen) ensure() {
	w, h := o.device()
	if o.img != nil && o.img.Rect.Dx() == w && o.img.Rect.Dy() == h {
		return
	}
	o.img = image.NewRGBA(image.Rect(0, 0, w, h))
	o.dc = gg.NewContextForRGBA(o.img)
	o.dc.SetLineWidth(o.ratio)
	if o.face != nil {
		o.dc.SetFontFace(o.face)
	}
}

func (o *Offscreen) Bounds() (int, int) {
	if o.img == nil {
		return 0, 0
	}
	return o.img.Rect.Dx(), o.img.Rect.Dy()
}

// Clear resets every pixel to transparent black
func (o *Offscreen) Clear() {
	clear(o.img.Pix)
}

// Point blends in premultiplied space; coverage grows with the brightest channel so
// additive points over transparency match additive points over black
func (o *Offscreen) Point(x, y, radius float64, c render.RGB, alpha float64, mode render.BlendMode) {
	b := o.img.Rect
	render.Disk(x, y, radius, func(px, py int) {
		if px < b.Min.X || px >= b.Max.X || py < b.Min.Y || py >= b.Max.Y {
			return
		}
		i := o.img.PixOffset(px, py)
		p := o.img.Pix[i : i+4 : i+4]
		out := mode.Apply(render.RGB{R: p[0], G: p[1], B: p[2]}, c, alpha)
		p[0], p[1], p[2] = out.R, out.G, out.B
		p[3] = max(p[3], out.R, out.G, out.B)
	})
}

func (o *Offscreen) Line(x0, y0, x1, y1 float64, c render.RGB) {
	o.dc.SetRGB255(int(c.R), int(c.G), int(c.B))
	o.dc.DrawLine(x0, y0, x1, y1)
	o.dc.Stroke()
}

func (o *Offscreen) Render(g *scene.Graph) {
	if o.disposed {
		return
	}
	o.ensure()
	o.stats = o.raster.Draw(g, o)

	// Layer opacity on premultiplied pixels scales every channel
	for i := range o.img.Pix {
		o.img.Pix[i] = uint8(float64(o.img.Pix[i]) * constant.LayerOpacity)
	}

	if o.caption != "" {
		_, h := o.Bounds()
		o.dc.SetColor(color.White)
		o.dc.DrawStringAnchored(o.caption, 8*o.ratio, float64(h)-8*o.ratio, 0, 0)
	}
}

func (o *Offscreen) Stats() raster.Stats {
	return o.stats
}

// Image returns the last rendered frame, nil before the first Render
func (o *Offscreen) Image() *image.RGBA {
	return o.img
}

// SavePNG writes the last rendered frame
func (o *Offscreen) SavePNG(path string) error {
	if o.dc == nil {
		return fmt.Errorf("save %s: nothing rendered", path)
	}
	if err := o.dc.SavePNG(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

func (o *Offscreen) Dispose() {
	if o.disposed {
		return
	}
	o.disposed = true
	o.img = nil
	o.dc = nil
	if o.face != nil {
		o.face.Close()
	}
}

func (o *Offscreen) Disposed() bool {
	return o.disposed
}
