package scan

import (
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"
)

// Overlay colours match the original diagnostic output: red lines,
// magenta points.
var (
	overlayLine  = color.NRGBA{R: 255, A: 255}
	overlayPoint = color.NRGBA{R: 255, B: 255, A: 255}
)

// drawLines returns a copy of img with each line drawn edge to edge,
// 2 pixels thick.
func drawLines(img image.Image, lines []Line) image.Image {
	out := imaging.Clone(img)
	// Long enough to cross the frame from any base point.
	reach := out.Bounds().Dx() + out.Bounds().Dy()

	for _, l := range lines {
		cos := math.Cos(l.Theta)
		sin := math.Sin(l.Theta)
		// Point on the line closest to the origin; the line runs
		// perpendicular to the normal from there.
		x0 := cos * l.Rho
		y0 := sin * l.Rho
		for t := -reach; t <= reach; t++ {
			x := int(math.Round(x0 - float64(t)*sin))
			y := int(math.Round(y0 + float64(t)*cos))
			setThick(out, x, y, overlayLine)
		}
	}
	return out
}

// drawPoints returns a copy of img with a filled dot at each point.
func drawPoints(img image.Image, points []GridPoint) image.Image {
	out := imaging.Clone(img)
	const radius = 3
	for _, p := range points {
		cx := int(math.Round(p.X))
		cy := int(math.Round(p.Y))
		for dy := -radius; dy <= radius; dy++ {
			for dx := -radius; dx <= radius; dx++ {
				if dx*dx+dy*dy > radius*radius {
					continue
				}
				setPixel(out, cx+dx, cy+dy, overlayPoint)
			}
		}
	}
	return out
}

// setThick paints a 2x2 block so drawn lines stay visible on large
// images.
func setThick(out *image.NRGBA, x, y int, c color.NRGBA) {
	setPixel(out, x, y, c)
	setPixel(out, x+1, y, c)
	setPixel(out, x, y+1, c)
	setPixel(out, x+1, y+1, c)
}

func setPixel(out *image.NRGBA, x, y int, c color.NRGBA) {
	if !image.Pt(x, y).In(out.Bounds()) {
		return
	}
	out.SetNRGBA(x, y, c)
}
