package view

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/mwhitfield/regionmark/model"
)

// Style controls how region overlays are drawn
type Style struct {
	Stroke   color.NRGBA // border color
	Fill     color.NRGBA // interior fill (alpha-blended over the page)
	LabelIDs bool        // draw the region id at the rect's top-left corner
}

// DefaultStyle returns the diagnostic overlay style: black border,
// translucent black fill, ids labeled.
func DefaultStyle() Style {
	return Style{
		Stroke:   color.NRGBA{A: 0xFF},
		Fill:     color.NRGBA{A: 40},
		LabelIDs: true,
	}
}

// RenderOverlay draws each region whose PageIndex matches over a copy
// of the rasterized page. Regions must already be in draw order; the
// base image is not modified. The scale must be the one the base was
// rasterized at, so document rects land on their pixels.
func RenderOverlay(base image.Image, regions []model.Region, pageIndex int, scale float64, style Style) *image.RGBA {
	bounds := base.Bounds()
	img := image.NewRGBA(bounds)
	draw.Draw(img, bounds, base, bounds.Min, draw.Src)

	strokeWidth := int(2 * scale)
	if strokeWidth < 1 {
		strokeWidth = 1
	}

	fill := image.NewUniform(style.Fill)
	stroke := image.NewUniform(style.Stroke)

	for _, region := range regions {
		if region.PageIndex != pageIndex {
			continue
		}
		r := region.Rect.Scaled(scale)
		box := image.Rect(int(r.X0), int(r.Y0), int(r.X1), int(r.Y1))

		draw.Draw(img, box.Intersect(bounds), fill, image.Point{}, draw.Over)
		strokeRect(img, box, strokeWidth, stroke, bounds)

		if style.LabelIDs {
			drawLabel(img, region.ID(), box.Min.X+strokeWidth+2, box.Min.Y+strokeWidth+2, style.Stroke)
		}
	}

	return img
}

// strokeRect draws the four border bands of box, clipped to clip
func strokeRect(img *image.RGBA, box image.Rectangle, width int, src image.Image, clip image.Rectangle) {
	edges := []image.Rectangle{
		{Min: box.Min, Max: image.Point{box.Max.X, box.Min.Y + width}},             // top
		{Min: image.Point{box.Min.X, box.Max.Y - width}, Max: box.Max},             // bottom
		{Min: box.Min, Max: image.Point{box.Min.X + width, box.Max.Y}},             // left
		{Min: image.Point{box.Max.X - width, box.Min.Y}, Max: box.Max},             // right
	}
	for _, e := range edges {
		draw.Draw(img, e.Intersect(clip), src, image.Point{}, draw.Over)
	}
}

// drawLabel renders small id text with the built-in bitmap face
func drawLabel(img *image.RGBA, text string, x, y int, c color.NRGBA) {
	face := basicfont.Face7x13
	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.P(x, y+face.Ascent),
	}
	d.DrawString(text)
}
