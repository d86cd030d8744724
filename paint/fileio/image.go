// Package fileio moves canvas contents between memory and disk: single
// PNG export/import and folder-based project save/load.
package fileio

import (
	"image"
	_ "image/jpeg"
	"image/png"
	"os"

	xdraw "golang.org/x/image/draw"

	"pixed/paint/pixbuf"
)

// ExportPNG encodes the buffer as an RGBA8 PNG at path.
func ExportPNG(path string, b *pixbuf.Buffer) error {
	f, err := os.Create(path)
	if err != nil {
		return &IOError{Op: "create", Path: path, Err: err}
	}
	// Wrapping the raw bytes as NRGBA keeps the encode byte-exact.
	img := &image.NRGBA{
		Pix:    b.Bytes(),
		Stride: b.Width() * 4,
		Rect:   image.Rect(0, 0, b.Width(), b.Height()),
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return &IOError{Op: "encode", Path: path, Err: err}
	}
	if err := f.Close(); err != nil {
		return &IOError{Op: "write", Path: path, Err: err}
	}
	return nil
}

func decodeFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &IOError{Op: "open", Path: path, Err: err}
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	return img, nil
}

// ImportImage decodes the PNG or JPEG at path. The decoded dimensions
// must be exactly wantWidth x wantHeight; anything else returns a
// SizeMismatchError and no pixels.
func ImportImage(path string, wantWidth, wantHeight int) (*pixbuf.Buffer, error) {
	img, err := decodeFile(path)
	if err != nil {
		return nil, err
	}
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	if w != wantWidth || h != wantHeight {
		return nil, &SizeMismatchError{
			ImageWidth:   w,
			ImageHeight:  h,
			CanvasWidth:  wantWidth,
			CanvasHeight: wantHeight,
		}
	}
	return pixbuf.FromImage(img), nil
}

// ImportImageScaled decodes the PNG or JPEG at path, resizing it to
// wantWidth x wantHeight with nearest-neighbour sampling when the
// dimensions differ. Matching images are taken as-is.
func ImportImageScaled(path string, wantWidth, wantHeight int) (*pixbuf.Buffer, error) {
	img, err := decodeFile(path)
	if err != nil {
		return nil, err
	}
	if img.Bounds().Dx() == wantWidth && img.Bounds().Dy() == wantHeight {
		return pixbuf.FromImage(img), nil
	}
	dst := image.NewNRGBA(image.Rect(0, 0, wantWidth, wantHeight))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), img, img.Bounds(), xdraw.Src, nil)
	return pixbuf.FromImage(dst), nil
}
