// Package blur applies a fixed 3x3 Gaussian approximation to RGB images.
//
// Three variants share one contract: Sequential and Parallel run the manual
// integer convolution over interior pixels and produce bit-identical
// results, while Library delegates to an imaging library's Gaussian blur,
// which also smooths the border by replicating edge pixels.
package blur

import (
	"time"
)

// Sequential blurs every interior pixel of src in a single loop and returns
// a new buffer of the same size. Border pixels follow the configured
// BorderPolicy. src is not modified.
func Sequential(src *Buffer, opts ...Option) *Buffer {
	o := newOptions(opts)
	start := time.Now()

	dst := prepareOutput(src, o.border)
	for y := 1; y < src.Height-1; y++ {
		for x := 1; x < src.Width-1; x++ {
			convolvePixel(src, dst, x, y)
		}
	}

	Logger().Debug("sequential blur",
		"width", src.Width, "height", src.Height,
		"border", o.border, "elapsed", time.Since(start))
	return dst
}

// prepareOutput allocates the output buffer and fills the pixels the
// convolution will not write. When src is smaller than 3x3 there is no
// interior and every pixel counts as border.
func prepareOutput(src *Buffer, border BorderPolicy) *Buffer {
	dst := NewBuffer(src.Width, src.Height)
	if border != BorderCopy || src.Empty() {
		return dst
	}

	if src.Width < 3 || src.Height < 3 {
		copy(dst.Pix, src.Pix)
		return dst
	}

	stride := src.Stride()
	last := (src.Height - 1) * stride
	copy(dst.Pix[:stride], src.Pix[:stride])
	copy(dst.Pix[last:], src.Pix[last:])

	right := (src.Width - 1) * Channels
	for y := 1; y < src.Height-1; y++ {
		row := y * stride
		copy(dst.Pix[row:row+Channels], src.Pix[row:row+Channels])
		copy(dst.Pix[row+right:row+stride], src.Pix[row+right:row+stride])
	}
	return dst
}
