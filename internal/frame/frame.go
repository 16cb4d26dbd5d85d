// Package frame provides the single-channel pixel matrix used throughout the
// extraction pipeline, plus the loader used to bring a captured photo in
// from disk.
package frame

import (
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// Frame is an 8-bit single-channel image. After binarization, per §3 of the
// spec, every pixel is either 0 (background) or 255 (foreground/ink).
//
// Frame owns its Pix slice outright; callers that need to keep a copy after
// handing a Frame off must Clone it first. There is no reference counting or
// manual Release: Go's GC reclaims the backing array once the last Frame
// referencing it is dropped, which is the Go-idiomatic substitute for the
// scoped-acquisition/guaranteed-release discipline the spec asks for when
// the underlying image library is native-allocated (ours is not).
type Frame struct {
	Width, Height int
	Pix           []uint8 // row-major, stride == Width
}

// New allocates a zeroed Frame of the given size.
func New(w, h int) *Frame {
	return &Frame{Width: w, Height: h, Pix: make([]uint8, w*h)}
}

// At returns the pixel value at (x, y). Out-of-bounds reads return 0
// (background) rather than panicking, since warps and margins routinely
// probe just past an edge.
func (f *Frame) At(x, y int) uint8 {
	if x < 0 || y < 0 || x >= f.Width || y >= f.Height {
		return 0
	}
	return f.Pix[y*f.Width+x]
}

// Set writes the pixel value at (x, y). Out-of-bounds writes are ignored.
func (f *Frame) Set(x, y int, v uint8) {
	if x < 0 || y < 0 || x >= f.Width || y >= f.Height {
		return
	}
	f.Pix[y*f.Width+x] = v
}

// Clone returns a deep copy.
func (f *Frame) Clone() *Frame {
	out := New(f.Width, f.Height)
	copy(out.Pix, f.Pix)
	return out
}

// Crop returns a new Frame holding the sub-rectangle [x, x+w) x [y, y+h).
// The result is always w x h: any part of the rectangle that falls outside
// the source reads as background (0). No error is raised since every
// caller in this pipeline derives its rectangle from the source's own
// dimensions.
func (f *Frame) Crop(x, y, w, h int) *Frame {
	out := New(w, h)
	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			out.Set(col, row, f.At(x+col, y+row))
		}
	}
	return out
}

// ToGray renders the Frame as a standard library image.Gray, for interop
// with packages that expect image.Image (gozxing, imaging, x/image/draw).
func (f *Frame) ToGray() *image.Gray {
	g := image.NewGray(image.Rect(0, 0, f.Width, f.Height))
	for y := 0; y < f.Height; y++ {
		copy(g.Pix[y*g.Stride:y*g.Stride+f.Width], f.Pix[y*f.Width:(y+1)*f.Width])
	}
	return g
}

// FromImage converts an arbitrary image.Image to a Frame by taking the
// luminance channel. It does not binarize; callers run Binarizer afterward.
func FromImage(img image.Image) *Frame {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	out := New(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := color.GrayModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.Gray)
			out.Pix[y*w+x] = c.Y
		}
	}
	return out
}

// Load decodes an image file from disk into a Frame, auto-orienting it
// according to EXIF data the way a phone-captured ticket photo requires.
// Loading is delegated to disintegration/imaging, which already handles the
// JPEG/PNG/TIFF decode plus EXIF transpose the teacher's own PNG export path
// (image/png, stdlib only) has no need for.
func Load(path string) (*Frame, error) {
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("frame: failed to load %q: %w", path, err)
	}
	return FromImage(img), nil
}
