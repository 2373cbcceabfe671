package blur

// Tap is one weighted neighbor of the blur kernel, relative to the pixel
// being computed.
type Tap struct {
	DY, DX int
	Weight int
}

// Kernel is the fixed 3x3 Gaussian approximation
//
//	1 2 1
//	2 4 2
//	1 2 1
//
// listed in row-major neighborhood order.
var Kernel = [9]Tap{
	{-1, -1, 1}, {-1, 0, 2}, {-1, 1, 1},
	{0, -1, 2}, {0, 0, 4}, {0, 1, 2},
	{1, -1, 1}, {1, 0, 2}, {1, 1, 1},
}

// KernelDivisor is the sum of the Kernel weights.
const KernelDivisor = 16

// convolvePixel writes the blurred value of the interior pixel (x, y) of src
// into dst. Each channel is the weighted neighborhood sum truncated by
// integer division; the weights are non-negative and sum to KernelDivisor, so
// the result always fits a uint8.
func convolvePixel(src, dst *Buffer, x, y int) {
	stride := src.Stride()
	var r, g, b int
	for _, t := range Kernel {
		i := (y+t.DY)*stride + (x+t.DX)*Channels
		r += int(src.Pix[i+0]) * t.Weight
		g += int(src.Pix[i+1]) * t.Weight
		b += int(src.Pix[i+2]) * t.Weight
	}

	o := y*stride + x*Channels
	dst.Pix[o+0] = uint8(r / KernelDivisor)
	dst.Pix[o+1] = uint8(g / KernelDivisor)
	dst.Pix[o+2] = uint8(b / KernelDivisor)
}
