// Package rearrange splits an image into a grid of equally sized tiles
// and reassembles it with the tiles in a different order.
package rearrange

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"io"
	"os"

	"github.com/disintegration/imaging"

	"github.com/PhantomInTheWire/tile-rearrange/pkg/grid"
)

// InvalidArrangementError reports that a tile size does not evenly
// divide the image, or that an ordering is not a permutation of the
// tile index range. The message text is a compatibility contract;
// callers match on it.
type InvalidArrangementError struct{}

func (*InvalidArrangementError) Error() string {
	return "The tile size or ordering are not valid for the given image"
}

// Decode reads and decodes an image, sniffing its on-disk format so
// the result can later be re-encoded the same way.
func Decode(r io.Reader) (image.Image, imaging.Format, error) {
	img, name, err := image.Decode(r)
	if err != nil {
		return nil, 0, fmt.Errorf("decode image: %w", err)
	}
	format, err := imaging.FormatFromExtension(name)
	if err != nil {
		return nil, 0, fmt.Errorf("source format %q: %w", name, err)
	}
	return img, format, nil
}

// Image rearranges the tiles of src per ordering and returns the
// reassembled image. The i-th output tile takes its pixels from source
// tile ordering[i], with tiles enumerated in row-major order. Returns
// an InvalidArrangementError if the tile size or ordering do not fit
// the image.
func Image(src image.Image, tile grid.Size, ordering []int) (*image.NRGBA, error) {
	bounds := src.Bounds()
	size := grid.Size{W: bounds.Dx(), H: bounds.Dy()}
	if !grid.Valid(size, tile, ordering) {
		return nil, &InvalidArrangementError{}
	}

	boxes := grid.Boxes(size, tile)
	dst := imaging.New(size.W, size.H, color.NRGBA{})
	for i, srcIdx := range ordering {
		t := imaging.Crop(src, boxes[srcIdx].Add(bounds.Min))
		draw.Draw(dst, boxes[i], t, image.Point{}, draw.Src)
	}
	return dst, nil
}

// File rearranges the tiles of the image at imagePath per ordering and
// writes the result to outPath, encoded in the source's original
// format regardless of outPath's extension. Validation happens before
// the output file is created, so a failed call leaves no partial
// output behind.
func File(imagePath string, tile grid.Size, ordering []int, outPath string) error {
	f, err := os.Open(imagePath)
	if err != nil {
		return fmt.Errorf("open source image: %w", err)
	}
	defer f.Close()

	src, format, err := Decode(f)
	if err != nil {
		return err
	}

	out, err := Image(src, tile, ordering)
	if err != nil {
		return err
	}

	w, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer w.Close()
	if err := imaging.Encode(w, out, format); err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	return nil
}
