package render

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
)

func gradient(w, h int) *Framebuffer {
	fb := NewFramebuffer(w, h)
	for y := range h {
		for x := range w {
			fb.SetPixel(x, y, color.RGBA{uint8(x * 40), uint8(y * 60), 128, 255})
		}
	}
	return fb
}

func TestNewFramebuffer(t *testing.T) {
	fb := NewFramebuffer(3, 2)
	assert.Equal(t, 3, fb.Width)
	assert.Equal(t, 2, fb.Height)
	assert.Len(t, fb.Pix, 24)

	fb = NewFramebuffer(-1, 2)
	assert.Equal(t, 0, fb.Width)
	assert.Empty(t, fb.Pix)
}

func TestFramebufferFromPixels(t *testing.T) {
	pix := make([]byte, 2*3*4)
	fb, err := FramebufferFromPixels(2, 3, pix)
	require.NoError(t, err)
	fb.SetPixel(1, 2, color.RGBA{1, 2, 3, 4})
	assert.Equal(t, []byte{1, 2, 3, 4}, pix[20:24], "buffer is shared")

	tests := []struct {
		name string
		w, h int
		n    int
	}{
		{"short", 2, 3, 23},
		{"long", 2, 3, 25},
		{"rgb", 2, 3, 18},
		{"negative", -2, -3, 24},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FramebufferFromPixels(tt.w, tt.h, make([]byte, tt.n))
			assert.ErrorIs(t, err, ErrSizeMismatch)
		})
	}
}

func TestFramebuffer_Pixels(t *testing.T) {
	fb := NewFramebuffer(4, 4)
	c := color.RGBA{10, 20, 30, 255}
	fb.SetPixel(2, 1, c)
	assert.Equal(t, c, fb.GetPixel(2, 1))
	assert.Equal(t, color.RGBA{}, fb.GetPixel(1, 2))

	// Out of bounds writes are dropped, reads are transparent.
	fb.SetPixel(-1, 0, c)
	fb.SetPixel(4, 0, c)
	fb.SetPixel(0, 4, c)
	assert.Equal(t, color.RGBA{}, fb.GetPixel(-1, 0))
	assert.Equal(t, color.RGBA{}, fb.GetPixel(0, 4))

	assert.Equal(t, []byte{0, 0, 0, 0}, fb.Pix[12:16], "row 0 ends untouched")
	assert.Equal(t, 4, countNonZero(fb.Pix), "only the in-bounds write landed")
}

func countNonZero(b []byte) int {
	n := 0
	for _, v := range b {
		if v != 0 {
			n++
		}
	}
	return n
}

func TestFramebuffer_ToImage(t *testing.T) {
	fb := gradient(5, 3)
	img := fb.ToImage()
	require.Equal(t, image.Rect(0, 0, 5, 3), img.Bounds())
	for y := range 3 {
		for x := range 5 {
			assert.Equal(t, fb.GetPixel(x, y), img.RGBAAt(x, y))
		}
	}

	clear(fb.Pix)
	assert.NotEqual(t, color.RGBA{}, img.RGBAAt(1, 1), "image is a copy")
}

func TestFramebuffer_SaveImage(t *testing.T) {
	fb := gradient(6, 4)

	for _, name := range []string{"frame.png", "frame.bmp", "frame.tiff", "FRAME.TIF"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)
			require.NoError(t, fb.SaveImage(path))

			f, err := os.Open(path)
			require.NoError(t, err)
			defer f.Close()

			img, _, err := image.Decode(f)
			require.NoError(t, err)
			require.Equal(t, image.Rect(0, 0, 6, 4), img.Bounds())
			for y := range 4 {
				for x := range 6 {
					got := color.RGBAModel.Convert(img.At(x, y)).(color.RGBA)
					assert.Equal(t, fb.GetPixel(x, y), got, "pixel (%d, %d)", x, y)
				}
			}
		})
	}
}

func TestFramebuffer_SaveImageUnsupported(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frame.jpg")
	err := gradient(2, 2).SaveImage(path)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
	assert.NoFileExists(t, path)
}

func TestFramebuffer_SaveImageBadPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "frame.png")
	assert.Error(t, gradient(2, 2).SaveImage(path))
}
