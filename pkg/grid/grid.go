// Package grid computes the tile geometry of an image and validates
// tile orderings against it.
package grid

import "image"

// Size is a width/height pair in pixels.
type Size struct {
	W int
	H int
}

// Dims returns the number of tile columns and rows a tile size produces
// on an image. Both sizes must already be known to divide evenly.
func Dims(img, tile Size) (cols, rows int) {
	return img.W / tile.W, img.H / tile.H
}

// Boxes enumerates the tile rectangles of an image in row-major order
// (x varies fastest, then y). The rectangles cover the image exactly,
// with no gaps or overlaps. This order defines the index space that an
// ordering indexes into.
func Boxes(img, tile Size) []image.Rectangle {
	cols, rows := Dims(img, tile)
	boxes := make([]image.Rectangle, 0, cols*rows)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			boxes = append(boxes, image.Rect(c*tile.W, r*tile.H, (c+1)*tile.W, (r+1)*tile.H))
		}
	}
	return boxes
}

// Valid reports whether ordering is a usable rearrangement of the tile
// grid that tile produces on img: the tile dimensions must be positive
// and divide the image dimensions exactly, and ordering must be a true
// permutation of the tile index range [0, cols*rows) with nothing
// missing, duplicated, or out of range.
func Valid(img, tile Size, ordering []int) bool {
	if tile.W <= 0 || tile.H <= 0 {
		return false
	}
	if img.W%tile.W != 0 || img.H%tile.H != 0 {
		return false
	}

	cols, rows := Dims(img, tile)
	expected := cols * rows
	if len(ordering) != expected {
		return false
	}
	seen := make([]bool, expected)
	for _, idx := range ordering {
		if idx < 0 || idx >= expected || seen[idx] {
			return false
		}
		seen[idx] = true
	}
	return true
}

// Identity returns the permutation that leaves every tile in place.
func Identity(n int) []int {
	ordering := make([]int, n)
	for i := range ordering {
		ordering[i] = i
	}
	return ordering
}

// Inverse returns the permutation that undoes ordering. Applying an
// ordering and then its inverse restores the original arrangement.
// The ordering must be a valid permutation.
func Inverse(ordering []int) []int {
	inv := make([]int, len(ordering))
	for i, idx := range ordering {
		inv[idx] = i
	}
	return inv
}
