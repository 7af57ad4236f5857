package scan

import (
	"image"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Colour is one of the six canonical cube face colours. The zero value
// is White; the declaration order is the tie-break order for
// classification (lowest value wins on equal distance).
type Colour int

const (
	White Colour = iota
	Red
	Orange
	Yellow
	Green
	Blue
)

var colourNames = [...]string{"white", "red", "orange", "yellow", "green", "blue"}

// String returns the lower-case colour name.
func (c Colour) String() string {
	if c < 0 || int(c) >= len(colourNames) {
		return "unknown"
	}
	return colourNames[c]
}

// references holds the target sticker colour for each Colour, indexed by
// its enum value. The values are typical cube sticker colours as they
// photograph, not pure primaries: a photographed red sticker is a much
// darker red than #FF0000.
var references = [...]colorful.Color{
	White:  {R: 255.0 / 255, G: 255.0 / 255, B: 255.0 / 255},
	Red:    {R: 183.0 / 255, G: 18.0 / 255, B: 52.0 / 255},
	Orange: {R: 255.0 / 255, G: 88.0 / 255, B: 0},
	Yellow: {R: 255.0 / 255, G: 213.0 / 255, B: 0},
	Green:  {R: 0, G: 155.0 / 255, B: 72.0 / 255},
	Blue:   {R: 0, G: 70.0 / 255, B: 173.0 / 255},
}

// Reference returns the reference sticker colour used as the
// classification target for c.
func (c Colour) Reference() colorful.Color {
	return references[c]
}

// classifyColour returns the canonical colour whose reference is nearest
// to c in the CIE-Lab space, together with the distance. There is no
// ambiguity error path: the nearest reference always wins, and exact ties
// resolve to the lowest Colour value because only a strictly smaller
// distance replaces the current best.
func classifyColour(c colorful.Color) (Colour, float64) {
	best := White
	bestDist := math.Inf(1)
	for i, ref := range references {
		if d := c.DistanceLab(ref); d < bestDist {
			best = Colour(i)
			bestDist = d
		}
	}
	return best, bestDist
}

// sampleAverage returns the average colour of the square patch of
// half-width radius centred on p. Averaging is root-mean-square per
// channel, which weights bright pixels the way light combines and damps
// sensor noise better than a plain mean. Patch coordinates outside the
// image are clamped to the nearest edge pixel.
func sampleAverage(img image.Image, p GridPoint, radius int) colorful.Color {
	bounds := img.Bounds()
	cx := int(p.X)
	cy := int(p.Y)

	var sr, sg, sb float64
	n := 0
	for y := cy - radius; y <= cy+radius; y++ {
		for x := cx - radius; x <= cx+radius; x++ {
			px := clamp(x, bounds.Min.X, bounds.Max.X-1)
			py := clamp(y, bounds.Min.Y, bounds.Max.Y-1)
			r, g, b, _ := img.At(px, py).RGBA()
			rf := float64(r>>8) / 255
			gf := float64(g>>8) / 255
			bf := float64(b>>8) / 255
			sr += rf * rf
			sg += gf * gf
			sb += bf * bf
			n++
		}
	}

	return colorful.Color{
		R: math.Sqrt(sr / float64(n)),
		G: math.Sqrt(sg / float64(n)),
		B: math.Sqrt(sb / float64(n)),
	}
}

// clamp constrains an integer value to the range [min, max].
func clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
