// Package imageio decodes image files into blur buffers and encodes them
// back, choosing the format from the file contents on load and from the
// file extension on save.
package imageio

import (
	"errors"
	"fmt"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp" // registers the WebP decoder with image.Decode

	"github.com/rklaeser/go-blur3x3/pkg/blur"
)

var (
	// ErrDecode reports that a source image could not be loaded: the file is
	// missing or unreadable, the format is unsupported, the data is corrupt
	// or the image has no pixels.
	ErrDecode = errors.New("imageio: decode failed")

	// ErrEncode reports that an output image could not be written.
	ErrEncode = errors.New("imageio: encode failed")
)

// DefaultJPEGQuality is used by Save unless WithJPEGQuality overrides it.
const DefaultJPEGQuality = 95

// Load decodes the image at path.
func Load(path string) (*blur.Buffer, error) {
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrDecode, path, err)
	}

	buf := blur.FromImage(img)
	if buf.Empty() {
		return nil, fmt.Errorf("%w: %s: image has no pixels", ErrDecode, path)
	}

	blur.Logger().Debug("image loaded", "path", path, "width", buf.Width, "height", buf.Height)
	return buf, nil
}

// SaveOption configures Save.
type SaveOption func(*saveOptions)

type saveOptions struct {
	jpegQuality int
}

// WithJPEGQuality sets the JPEG quality (1-100) used when path names a JPEG
// file. Values outside the range fall back to DefaultJPEGQuality.
func WithJPEGQuality(q int) SaveOption {
	return func(o *saveOptions) {
		if q >= 1 && q <= 100 {
			o.jpegQuality = q
		}
	}
}

// Save encodes buf to path in the format named by the path's extension
// (jpg, jpeg, png, gif, tif, tiff, bmp).
func Save(path string, buf *blur.Buffer, opts ...SaveOption) error {
	o := saveOptions{jpegQuality: DefaultJPEGQuality}
	for _, opt := range opts {
		opt(&o)
	}

	if buf.Empty() {
		return fmt.Errorf("%w: %s: image has no pixels", ErrEncode, path)
	}

	if err := imaging.Save(buf.Image(), path, imaging.JPEGQuality(o.jpegQuality)); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrEncode, path, err)
	}

	blur.Logger().Debug("image saved", "path", path, "width", buf.Width, "height", buf.Height)
	return nil
}
