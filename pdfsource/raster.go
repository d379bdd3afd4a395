package pdfsource

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"
)

// Rasterize produces a schematic render of the page at the given
// scale: a white canvas with each text fragment's box sketched in
// light gray. It exists to give overlay images their geometric
// context; a full PDF rasterizer is intentionally out of scope and can
// be substituted through the source.Document interface.
func (r *Reader) Rasterize(pageIndex int, scale float64) (image.Image, error) {
	if scale <= 0 {
		return nil, fmt.Errorf("rasterize page %d: non-positive scale %g", pageIndex, scale)
	}
	width, height, err := r.PageSize(pageIndex)
	if err != nil {
		return nil, err
	}
	fragments, err := r.Fragments(pageIndex)
	if err != nil {
		return nil, err
	}

	w := int(math.Ceil(width * scale))
	h := int(math.Ceil(height * scale))
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	boxFill := image.NewUniform(color.NRGBA{R: 0xE6, G: 0xE6, B: 0xE6, A: 0xFF})
	for _, frag := range fragments {
		sr := frag.Rect.Scaled(scale)
		box := image.Rect(int(sr.X0), int(sr.Y0), int(math.Ceil(sr.X1)), int(math.Ceil(sr.Y1)))
		draw.Draw(img, box.Intersect(img.Bounds()), boxFill, image.Point{}, draw.Src)
	}

	return img, nil
}
