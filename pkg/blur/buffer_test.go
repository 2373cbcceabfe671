package blur

import (
	"image"
	"image/color"
	"testing"
)

func TestNewBuffer(t *testing.T) {
	b := NewBuffer(4, 3)
	if b.Width != 4 || b.Height != 3 {
		t.Errorf("size = %dx%d, want 4x3", b.Width, b.Height)
	}
	if len(b.Pix) != 4*3*Channels {
		t.Errorf("len(Pix) = %d, want %d", len(b.Pix), 4*3*Channels)
	}
	if b.Stride() != 12 {
		t.Errorf("Stride() = %d, want 12", b.Stride())
	}

	if n := NewBuffer(-1, 5); !n.Empty() || len(n.Pix) != 0 {
		t.Errorf("NewBuffer(-1, 5) = %dx%d with %d bytes, want empty", n.Width, n.Height, len(n.Pix))
	}
}

func TestBufferAtSet(t *testing.T) {
	b := NewBuffer(3, 2)
	b.Set(2, 1, Pixel{10, 20, 30})

	if got := b.At(2, 1); got != (Pixel{10, 20, 30}) {
		t.Errorf("At(2,1) = %v, want {10 20 30}", got)
	}
	if got := b.Pix[len(b.Pix)-3:]; got[0] != 10 || got[1] != 20 || got[2] != 30 {
		t.Errorf("last pixel bytes = %v, want [10 20 30]", got)
	}
	if got := b.At(0, 0); got != (Pixel{}) {
		t.Errorf("At(0,0) = %v, want zero", got)
	}
}

func TestBufferCloneIsDeep(t *testing.T) {
	b := randomBuffer(4, 4, 1)
	c := b.Clone()
	if !c.Equal(b) {
		t.Fatal("Clone() not equal to original")
	}
	c.Pix[0]++
	if c.Equal(b) {
		t.Error("Clone() shares pixel storage with original")
	}
}

func TestBufferEqual(t *testing.T) {
	a := NewBuffer(2, 3)
	if a.Equal(NewBuffer(3, 2)) {
		t.Error("2x3 buffer equals 3x2 buffer")
	}
	if !a.Equal(NewBuffer(2, 3)) {
		t.Error("two zero 2x3 buffers not equal")
	}
}

func TestImageRoundTrip(t *testing.T) {
	b := randomBuffer(7, 5, 2)
	img := b.Image()

	if img.Bounds() != image.Rect(0, 0, 7, 5) {
		t.Errorf("Image().Bounds() = %v, want (0,0)-(7,5)", img.Bounds())
	}
	for y := 0; y < 5; y++ {
		for x := 0; x < 7; x++ {
			if a := img.NRGBAAt(x, y).A; a != 0xff {
				t.Fatalf("alpha at (%d,%d) = %d, want 255", x, y, a)
			}
		}
	}

	if back := FromImage(img); !back.Equal(b) {
		t.Error("FromImage(b.Image()) != b")
	}
}

func TestFromImageConvertsAndRebases(t *testing.T) {
	rgba := image.NewRGBA(image.Rect(0, 0, 6, 6))
	for y := 0; y < 6; y++ {
		for x := 0; x < 6; x++ {
			rgba.SetRGBA(x, y, color.RGBA{uint8(x * 10), uint8(y * 10), 7, 0xff})
		}
	}
	sub := rgba.SubImage(image.Rect(2, 3, 5, 6))

	b := FromImage(sub)
	if b.Width != 3 || b.Height != 3 {
		t.Fatalf("size = %dx%d, want 3x3", b.Width, b.Height)
	}
	if got, want := b.At(0, 0), (Pixel{20, 30, 7}); got != want {
		t.Errorf("At(0,0) = %v, want %v", got, want)
	}
	if got, want := b.At(2, 2), (Pixel{40, 50, 7}); got != want {
		t.Errorf("At(2,2) = %v, want %v", got, want)
	}
}

func TestFromImageGray(t *testing.T) {
	g := image.NewGray(image.Rect(0, 0, 2, 2))
	g.SetGray(1, 1, color.Gray{Y: 200})

	b := FromImage(g)
	if got := b.At(1, 1); got != (Pixel{200, 200, 200}) {
		t.Errorf("At(1,1) = %v, want {200 200 200}", got)
	}
}
