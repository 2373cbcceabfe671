package blur

import (
	"errors"
	"fmt"
	"image"
	"time"

	"github.com/anthonynsimon/bild/convolution"
	"github.com/disintegration/imaging"
)

// ErrUnknownBackend is returned by Library for a Backend it does not know.
var ErrUnknownBackend = errors.New("blur: unknown library backend")

// libraryKernel returns Kernel's weights in row-major order, divided by
// KernelDivisor when normalize is set.
func libraryKernel(normalize bool) [9]float64 {
	var k [9]float64
	for i, tap := range Kernel {
		k[i] = float64(tap.Weight)
		if normalize {
			k[i] /= KernelDivisor
		}
	}
	return k
}

// Library blurs src with an imaging library's 3x3 convolution using the same
// weights as the manual kernel. Results are rounded to nearest rather than
// truncated, and every pixel is defined: pixels past the image bounds repeat
// the nearest edge pixel.
func Library(src *Buffer, opts ...Option) (*Buffer, error) {
	o := newOptions(opts)
	if src.Empty() {
		return NewBuffer(src.Width, src.Height), nil
	}
	start := time.Now()

	var out image.Image
	switch o.backend {
	case BackendImaging, "":
		out = imaging.Convolve3x3(src.Image(), libraryKernel(false), &imaging.ConvolveOptions{Normalize: true})
	case BackendBild:
		k := libraryKernel(true)
		kernel := &convolution.Kernel{Matrix: k[:], Width: 3, Height: 3}
		// bild truncates, so the bias turns it into rounding.
		out = convolution.Convolve(src.Image(), kernel, &convolution.Options{Bias: 0.5, KeepAlpha: true})
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, o.backend)
	}

	dst := FromImage(out)
	Logger().Debug("library blur",
		"width", src.Width, "height", src.Height,
		"backend", o.backend, "elapsed", time.Since(start))
	return dst, nil
}
