// Package imageio converts image files to and from the RGBA buffers the
// circuit engine ingests.
package imageio

import (
	"image"
	"image/draw"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"io"
	"os"

	"github.com/pkg/errors"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// Decode reads an image and returns its pixels as a tightly packed RGBA
// buffer together with its dimensions.
func Decode(r io.Reader) (pix []byte, w, h int, err error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, 0, 0, errors.Wrap(err, "decode image")
	}
	pix, w, h = ToRGBA(img)
	if w == 0 || h == 0 {
		return nil, 0, 0, errors.Errorf("%s image is empty", format)
	}
	return pix, w, h, nil
}

// DecodeFile opens and decodes the image at path.
func DecodeFile(path string) ([]byte, int, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, 0, errors.Wrap(err, "open image")
	}
	defer f.Close()
	pix, w, h, err := Decode(f)
	if err != nil {
		return nil, 0, 0, errors.Wrapf(err, "read %s", path)
	}
	return pix, w, h, nil
}

// ToRGBA copies img into a non-premultiplied RGBA buffer with no row padding.
func ToRGBA(img image.Image) ([]byte, int, int) {
	b := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	return dst.Pix, b.Dx(), b.Dy()
}

// EncodePNG writes a w×h RGBA buffer as a PNG image.
func EncodePNG(wr io.Writer, pix []byte, w, h int) error {
	if len(pix) != w*h*4 {
		return errors.Errorf("buffer holds %d bytes, %dx%d RGBA needs %d", len(pix), w, h, w*h*4)
	}
	img := &image.NRGBA{Pix: pix, Stride: w * 4, Rect: image.Rect(0, 0, w, h)}
	return errors.Wrap(png.Encode(wr, img), "encode png")
}

// WritePNGFile writes a w×h RGBA buffer to path.
func WritePNGFile(path string, pix []byte, w, h int) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create snapshot")
	}
	if err := EncodePNG(f, pix, w, h); err != nil {
		f.Close()
		return err
	}
	return errors.Wrap(f.Close(), "close snapshot")
}
