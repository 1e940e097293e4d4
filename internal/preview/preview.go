// Package preview draws an isometric wireframe of a converted dimension
// group.
package preview

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
	"strconv"
	"strings"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/riverfjs/metricify-go/internal/metric"
	"github.com/riverfjs/metricify-go/internal/util"
)

var (
	// ErrUnsupportedDimensions is returned for text that does not split
	// into two or three parts.
	ErrUnsupportedDimensions = errors.New("unsupported number of dimensions")
	// ErrInvalidValue is returned when a part has no leading number.
	ErrInvalidValue = errors.New("invalid dimension value")
)

// DefaultDepth is used for two-part (flat) groups.
const DefaultDepth = 1

// Box holds edge lengths in centimeters.
type Box struct {
	Width  float64
	Height float64
	Depth  float64
}

// ParseBox reads a converted metric string such as "79.06x12.70x5.08 cm".
// Each "x"-separated part contributes its leading number; trailing text
// like the unit is ignored.
func ParseBox(text string) (Box, error) {
	parts := strings.Split(text, "x")
	if len(parts) != 2 && len(parts) != 3 {
		return Box{}, fmt.Errorf("%w: %q", ErrUnsupportedDimensions, text)
	}
	values := make([]float64, len(parts))
	for i, p := range parts {
		v, ok := leadingNumber(p)
		if !ok {
			return Box{}, fmt.Errorf("%w: %q", ErrInvalidValue, p)
		}
		values[i] = v
	}
	box := Box{Width: values[0], Height: values[1], Depth: DefaultDepth}
	if len(values) == 3 {
		box.Depth = values[2]
	}
	return box, nil
}

// leadingNumber parses the longest `\d+(\.\d*)?|\.\d+` prefix after
// leading whitespace.
func leadingNumber(s string) (float64, bool) {
	s = strings.TrimLeftFunc(s, util.IsSpace)
	end := 0
	for end < len(s) && isDigit(s[end]) {
		end++
	}
	intDigits := end
	if end < len(s) && s[end] == '.' {
		frac := end + 1
		for frac < len(s) && isDigit(s[frac]) {
			frac++
		}
		if intDigits > 0 || frac > end+1 {
			end = frac
		}
	}
	if end == 0 {
		return 0, false
	}
	v, err := strconv.ParseFloat(s[:end], 64)
	if err != nil || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// Options controls the rendered image.
type Options struct {
	Width      int
	Height     int
	Margin     int
	Background color.Color
	Edge       color.Color
	Label      color.Color
	// LineWidth is the stroke width in pixels.
	LineWidth float32
}

// DefaultOptions returns a 320x240 canvas with the converter's blue edges.
func DefaultOptions() *Options {
	return &Options{
		Width:      320,
		Height:     240,
		Margin:     36,
		Background: color.White,
		Edge:       color.RGBA{R: 0x00, G: 0x7b, B: 0xff, A: 0xff},
		Label:      color.Black,
		LineWidth:  2,
	}
}

type point struct {
	x, y float64
}

// cos30 and sin30 define the isometric projection.
var (
	cos30 = math.Sqrt(3) / 2
	sin30 = 0.5
)

func project(x, y, z float64) point {
	return point{
		x: (x - z) * cos30,
		y: (x+z)*sin30 - y,
	}
}

// corners returns the 8 projected box corners, indexed by bit pattern
// (x bit 0, y bit 1, z bit 2).
func corners(b Box) [8]point {
	var pts [8]point
	for i := 0; i < 8; i++ {
		var x, y, z float64
		if i&1 != 0 {
			x = b.Width
		}
		if i&2 != 0 {
			y = b.Height
		}
		if i&4 != 0 {
			z = b.Depth
		}
		pts[i] = project(x, y, z)
	}
	return pts
}

// edges connects corners differing in exactly one bit.
var edges = [12][2]int{
	{0, 1}, {2, 3}, {4, 5}, {6, 7}, // width
	{0, 2}, {1, 3}, {4, 6}, {5, 7}, // height
	{0, 4}, {1, 5}, {2, 6}, {3, 7}, // depth
}

// Render draws b onto a new image.
func Render(b Box, opts *Options) (*image.RGBA, error) {
	if opts == nil {
		opts = DefaultOptions()
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("invalid canvas size %dx%d", opts.Width, opts.Height)
	}
	if b.Width < 0 || b.Height < 0 || b.Depth < 0 ||
		math.IsNaN(b.Width+b.Height+b.Depth) || math.IsInf(b.Width+b.Height+b.Depth, 0) {
		return nil, fmt.Errorf("%w: %+v", ErrInvalidValue, b)
	}

	img := image.NewRGBA(image.Rect(0, 0, opts.Width, opts.Height))
	draw.Draw(img, img.Bounds(), image.NewUniform(opts.Background), image.Point{}, draw.Src)

	pts := corners(b)
	toCanvas := fit(pts, opts)

	r := vector.NewRasterizer(opts.Width, opts.Height)
	for _, e := range edges {
		strokeLine(r, toCanvas(pts[e[0]]), toCanvas(pts[e[1]]), opts.LineWidth)
	}
	r.Draw(img, img.Bounds(), image.NewUniform(opts.Edge), image.Point{})

	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(opts.Label),
		Face: basicfont.Face7x13,
	}
	label(d, toCanvas(mid(pts[0], pts[1])), b.Width, 0, 14)
	label(d, toCanvas(mid(pts[0], pts[2])), b.Height, -1, 4)
	label(d, toCanvas(mid(pts[0], pts[4])), b.Depth, -1, 14)
	return img, nil
}

// fit scales and centers the projected corners inside the margins.
func fit(pts [8]point, opts *Options) func(point) point {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range pts {
		minX = math.Min(minX, p.x)
		minY = math.Min(minY, p.y)
		maxX = math.Max(maxX, p.x)
		maxY = math.Max(maxY, p.y)
	}
	availW := float64(opts.Width - 2*opts.Margin)
	availH := float64(opts.Height - 2*opts.Margin)
	scale := 1.0
	spanX, spanY := maxX-minX, maxY-minY
	if spanX > 0 || spanY > 0 {
		scale = math.Inf(1)
		if spanX > 0 {
			scale = availW / spanX
		}
		if spanY > 0 {
			scale = math.Min(scale, availH/spanY)
		}
	}
	offX := (float64(opts.Width) - spanX*scale) / 2
	offY := (float64(opts.Height) - spanY*scale) / 2
	return func(p point) point {
		return point{
			x: offX + (p.x-minX)*scale,
			y: offY + (p.y-minY)*scale,
		}
	}
}

func mid(a, b point) point {
	return point{x: (a.x + b.x) / 2, y: (a.y + b.y) / 2}
}

// strokeLine adds a filled quad of the given width around a-b.
func strokeLine(r *vector.Rasterizer, a, b point, width float32) {
	dx, dy := b.x-a.x, b.y-a.y
	length := math.Hypot(dx, dy)
	if length == 0 {
		return
	}
	nx := -dy / length * float64(width) / 2
	ny := dx / length * float64(width) / 2
	r.MoveTo(float32(a.x+nx), float32(a.y+ny))
	r.LineTo(float32(b.x+nx), float32(b.y+ny))
	r.LineTo(float32(b.x-nx), float32(b.y-ny))
	r.LineTo(float32(a.x-nx), float32(a.y-ny))
	r.ClosePath()
}

// label writes "<v> cm" near p. align -1 ends the text at p, 0 centers it.
func label(d *font.Drawer, p point, v float64, align int, dy int) {
	text := metric.FormatFixed(v, metric.Places) + " cm"
	adv := font.MeasureString(d.Face, text).Ceil()
	x := int(p.x)
	switch align {
	case 0:
		x -= adv / 2
	case -1:
		x -= adv + 4
	}
	d.Dot = fixed.P(x, int(p.y)+dy)
	d.DrawString(text)
}

// EncodePNG renders b and writes it as PNG.
func EncodePNG(w io.Writer, b Box, opts *Options) error {
	img, err := Render(b, opts)
	if err != nil {
		return err
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("encoding preview: %w", err)
	}
	return nil
}
