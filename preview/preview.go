// Package preview renders wireframe geometry on the CPU.
//
// It is host-side tooling layered on the public wireframe API, not part
// of the core contract: the core hands the same flat buffers to preview
// that it hands to a GPU host. preview projects the vertex buffer with a
// simple perspective camera and strokes each index pair as an
// anti-aliased line segment into an *image.RGBA, which is enough to
// inspect frames, write demo animations, and debug grid connectivity
// without a device.
package preview

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"
	"os"

	"golang.org/x/image/vector"

	"github.com/gogpu/wireframe"
)

// Option configures a Renderer during creation.
type Option func(*options)

type options struct {
	lineWidth float64
	cameraZ   float64
	scale     float64
	fg        color.Color
	bg        color.Color
}

func defaultOptions() options {
	return options{
		lineWidth: 1.0,
		cameraZ:   3.0,
		scale:     2.5,
		fg:        color.RGBA{R: 0xe6, G: 0xe6, B: 0xe6, A: 0xff},
		bg:        color.RGBA{R: 0x10, G: 0x10, B: 0x18, A: 0xff},
	}
}

// WithLineWidth sets the stroked segment width in pixels.
func WithLineWidth(w float64) Option {
	return func(o *options) {
		o.lineWidth = w
	}
}

// WithCamera sets the camera's distance from the origin along +z.
// The surface spans z in roughly [-2, 0], so the distance must stay
// above the surface's maximum z or segments project behind the eye.
func WithCamera(distance float64) Option {
	return func(o *options) {
		o.cameraZ = distance
	}
}

// WithScale sets the projection scale factor. Larger values fill more of
// the frame.
func WithScale(scale float64) Option {
	return func(o *options) {
		o.scale = scale
	}
}

// WithColors sets the line and background colors.
func WithColors(fg, bg color.Color) Option {
	return func(o *options) {
		o.fg = fg
		o.bg = bg
	}
}

// Renderer draws wireframe frames into a reusable image.
// It is not safe for concurrent use; each goroutine needs its own.
type Renderer struct {
	width  int
	height int
	img    *image.RGBA
	ras    *vector.Rasterizer
	opts   options

	// focal is the precomputed projection factor in pixels.
	focal float64
}

// New creates a renderer producing width x height frames.
func New(width, height int, opts ...Option) (*Renderer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("preview: invalid frame size %dx%d", width, height)
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Renderer{
		width:  width,
		height: height,
		img:    image.NewRGBA(image.Rect(0, 0, width, height)),
		ras:    vector.NewRasterizer(width, height),
		opts:   o,
		focal:  0.5 * o.scale * math.Min(float64(width), float64(height)),
	}, nil
}

// Image returns the frame image. The same image is reused across Render
// calls.
func (r *Renderer) Image() *image.RGBA {
	return r.img
}

// Render draws one frame from the given vertex and index buffers and
// returns the frame image.
//
// vertices holds float32 (x, y, z) triples; indices holds uint32 vertex
// id pairs, of which the first segments pairs are drawn. Pairs that name
// a vertex beyond the populated region of the buffer are skipped rather
// than trusted: the buffers cross a host boundary and the index values
// are cross-checked against the vertex count before use.
func (r *Renderer) Render(vertices []float32, indices []uint32, segments uint32) *image.RGBA {
	draw.Draw(r.img, r.img.Bounds(), image.NewUniform(r.opts.bg), image.Point{}, draw.Src)

	nPts := uint32(len(vertices) / 3)
	half := r.opts.lineWidth / 2
	drawn := 0

	r.ras.Reset(r.width, r.height)
	for k := uint32(0); k < segments; k++ {
		if int(2*k+1) >= len(indices) {
			break
		}
		a := indices[2*k]
		b := indices[2*k+1]
		if a >= nPts || b >= nPts {
			continue
		}

		ax, ay, aok := r.project(vertices[3*a], vertices[3*a+1], vertices[3*a+2])
		bx, by, bok := r.project(vertices[3*b], vertices[3*b+1], vertices[3*b+2])
		if !aok || !bok {
			continue
		}

		r.strokeSegment(ax, ay, bx, by, half)
		drawn++
	}
	r.ras.Draw(r.img, r.img.Bounds(), image.NewUniform(r.opts.fg), image.Point{})

	wireframe.Logger().Debug("preview: frame rendered",
		"segments", drawn, "requested", segments, "width", r.width, "height", r.height)
	return r.img
}

// project maps a world-space vertex to screen coordinates with a
// perspective divide by the distance to the camera. Vertices at or
// behind the camera plane are rejected.
func (r *Renderer) project(x, y, z float32) (sx, sy float64, ok bool) {
	d := r.opts.cameraZ - float64(z)
	if d <= 0 {
		return 0, 0, false
	}
	sx = float64(r.width)/2 + r.focal*float64(x)/d
	sy = float64(r.height)/2 - r.focal*float64(y)/d
	return sx, sy, true
}

// strokeSegment appends one segment to the rasterizer as a closed quad
// of width 2*half, perpendicular to the segment direction.
func (r *Renderer) strokeSegment(ax, ay, bx, by, half float64) {
	dx := bx - ax
	dy := by - ay
	length := math.Hypot(dx, dy)
	if length == 0 {
		return
	}

	// Unit normal scaled to the half width.
	nx := -dy / length * half
	ny := dx / length * half

	r.ras.MoveTo(float32(ax+nx), float32(ay+ny))
	r.ras.LineTo(float32(bx+nx), float32(by+ny))
	r.ras.LineTo(float32(bx-nx), float32(by-ny))
	r.ras.LineTo(float32(ax-nx), float32(ay-ny))
	r.ras.ClosePath()
}

// SavePNG saves the current frame to a PNG file.
func (r *Renderer) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	return png.Encode(f, r.img)
}
