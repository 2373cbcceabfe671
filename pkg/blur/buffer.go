package blur

import (
	"image"

	"golang.org/x/image/draw"
)

// Channels is the number of 8-bit samples stored per pixel (R, G, B).
const Channels = 3

// Pixel is one RGB triplet.
type Pixel [Channels]uint8

// Buffer is an in-memory RGB image stored row-major, Channels bytes per
// pixel, with no padding between rows.
type Buffer struct {
	Width  int
	Height int
	Pix    []uint8
}

// NewBuffer allocates a zeroed (black) buffer. Negative dimensions are
// treated as zero.
func NewBuffer(width, height int) *Buffer {
	width = max(width, 0)
	height = max(height, 0)
	return &Buffer{
		Width:  width,
		Height: height,
		Pix:    make([]uint8, width*height*Channels),
	}
}

// Stride returns the number of bytes per row.
func (b *Buffer) Stride() int {
	return b.Width * Channels
}

// Empty reports whether the buffer has no pixels.
func (b *Buffer) Empty() bool {
	return b == nil || b.Width == 0 || b.Height == 0
}

// At returns the pixel in column x of row y.
func (b *Buffer) At(x, y int) Pixel {
	i := y*b.Stride() + x*Channels
	return Pixel{b.Pix[i], b.Pix[i+1], b.Pix[i+2]}
}

// Set stores p in column x of row y.
func (b *Buffer) Set(x, y int, p Pixel) {
	i := y*b.Stride() + x*Channels
	copy(b.Pix[i:i+Channels], p[:])
}

// Clone returns a deep copy of b.
func (b *Buffer) Clone() *Buffer {
	c := &Buffer{Width: b.Width, Height: b.Height, Pix: make([]uint8, len(b.Pix))}
	copy(c.Pix, b.Pix)
	return c
}

// Equal reports whether both buffers have the same dimensions and samples.
func (b *Buffer) Equal(o *Buffer) bool {
	if b.Width != o.Width || b.Height != o.Height || len(b.Pix) != len(o.Pix) {
		return false
	}
	for i := range b.Pix {
		if b.Pix[i] != o.Pix[i] {
			return false
		}
	}
	return true
}

// FromImage copies the color channels of img into a new Buffer. Alpha is
// discarded after converting to non-premultiplied color.
func FromImage(img image.Image) *Buffer {
	bounds := img.Bounds()

	nrgba, ok := img.(*image.NRGBA)
	if !ok || nrgba.Rect.Min != (image.Point{}) {
		nrgba = image.NewNRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
		draw.Draw(nrgba, nrgba.Bounds(), img, bounds.Min, draw.Src)
	}

	buf := NewBuffer(bounds.Dx(), bounds.Dy())
	for y := 0; y < buf.Height; y++ {
		src := nrgba.Pix[y*nrgba.Stride : y*nrgba.Stride+buf.Width*4]
		dst := buf.Pix[y*buf.Stride() : (y+1)*buf.Stride()]
		for x := 0; x < buf.Width; x++ {
			dst[x*3+0] = src[x*4+0]
			dst[x*3+1] = src[x*4+1]
			dst[x*3+2] = src[x*4+2]
		}
	}
	return buf
}

// Image returns an opaque NRGBA copy of b.
func (b *Buffer) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, b.Width, b.Height))
	for y := 0; y < b.Height; y++ {
		src := b.Pix[y*b.Stride() : (y+1)*b.Stride()]
		dst := img.Pix[y*img.Stride : y*img.Stride+b.Width*4]
		for x := 0; x < b.Width; x++ {
			dst[x*4+0] = src[x*3+0]
			dst[x*4+1] = src[x*3+1]
			dst[x*4+2] = src[x*3+2]
			dst[x*4+3] = 0xff
		}
	}
	return img
}
