package warp

import (
	"fmt"
	"image"
	"image/png"
	"os"

	xdraw "golang.org/x/image/draw"
)

// pixmapChannels is the number of samples per Pixmap pixel (RGB, no alpha).
const pixmapChannels = 3

// Pixmap represents a three-channel RGB pixel buffer, no alpha.
// Samples are stored row-major with no padding, three bytes per pixel.
// Color brushes pair a Pixmap with a Mask carrying the coverage.
type Pixmap struct {
	width  int
	height int
	data   []uint8
}

// NewPixmap creates a new pixmap with the given dimensions.
// All pixels are initialized to black.
func NewPixmap(width, height int) *Pixmap {
	return &Pixmap{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*pixmapChannels),
	}
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int {
	return p.width
}

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int {
	return p.height
}

// Bounds returns the pixmap dimensions as an image.Rectangle.
func (p *Pixmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// Data returns the raw pixel data (RGB format, 3 bytes per pixel).
func (p *Pixmap) Data() []uint8 {
	return p.data
}

// At returns the color of a single pixel.
// Returns black for coordinates outside the pixmap bounds.
func (p *Pixmap) At(x, y int) (r, g, b uint8) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return 0, 0, 0
	}
	i := (y*p.width + x) * pixmapChannels
	return p.data[i], p.data[i+1], p.data[i+2]
}

// Set sets the color of a single pixel.
// Coordinates outside the pixmap bounds are ignored.
func (p *Pixmap) Set(x, y int, r, g, b uint8) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	i := (y*p.width + x) * pixmapChannels
	p.data[i] = r
	p.data[i+1] = g
	p.data[i+2] = b
}

// Fill fills the entire pixmap with a color.
func (p *Pixmap) Fill(r, g, b uint8) {
	for i := 0; i < len(p.data); i += pixmapChannels {
		p.data[i] = r
		p.data[i+1] = g
		p.data[i+2] = b
	}
}

// Clone creates a copy of the pixmap.
func (p *Pixmap) Clone() *Pixmap {
	clone := NewPixmap(p.width, p.height)
	copy(clone.data, p.data)
	return clone
}

// Channel extracts a single channel (0=R, 1=G, 2=B) as a Mask.
func (p *Pixmap) Channel(c int) *Mask {
	if c < 0 || c >= pixmapChannels {
		return NewMask(p.width, p.height)
	}
	m := NewMask(p.width, p.height)
	for i := range m.data {
		m.data[i] = p.data[i*pixmapChannels+c]
	}
	return m
}

// ToImage converts the pixmap to an image.NRGBA with full opacity.
func (p *Pixmap) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, p.width, p.height))
	for i := 0; i < p.width*p.height; i++ {
		img.Pix[i*4] = p.data[i*pixmapChannels]
		img.Pix[i*4+1] = p.data[i*pixmapChannels+1]
		img.Pix[i*4+2] = p.data[i*pixmapChannels+2]
		img.Pix[i*4+3] = 255
	}
	return img
}

// FromImage creates a pixmap from an image, discarding the alpha channel.
// Arbitrary image types are flattened to NRGBA first so subimages and
// non-zero-origin bounds are handled uniformly.
func FromImage(img image.Image) *Pixmap {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	// The direct path needs a zero origin and a tight stride; a subimage
	// anchored at (0,0) of a wider image keeps the parent's stride.
	nrgba, ok := img.(*image.NRGBA)
	if !ok || bounds.Min != (image.Point{}) || nrgba.Stride != w*4 {
		nrgba = image.NewNRGBA(image.Rect(0, 0, w, h))
		xdraw.Draw(nrgba, nrgba.Bounds(), img, bounds.Min, xdraw.Src)
	}

	pm := NewPixmap(w, h)
	for i := 0; i < w*h; i++ {
		pm.data[i*pixmapChannels] = nrgba.Pix[i*4]
		pm.data[i*pixmapChannels+1] = nrgba.Pix[i*4+1]
		pm.data[i*pixmapChannels+2] = nrgba.Pix[i*4+2]
	}
	return pm
}

// SavePNG saves the pixmap to a PNG file.
func (p *Pixmap) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return fmt.Errorf("warp: create file: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	return png.Encode(f, p.ToImage())
}
