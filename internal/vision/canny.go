package vision

import (
	"image"
	"math"

	"github.com/anthonynsimon/bild/blur"
	"github.com/anthonynsimon/bild/effect"

	"cubescan/internal/scan"
)

// CannyDetector extracts a binary edge map using Canny edge detection.
//
// The stages are the classic ones: grayscale conversion, Gaussian blur,
// Sobel gradients, non-maximum suppression to thin edges to one pixel,
// and hysteresis thresholding. Grayscale and blur use bild; the gradient
// stages operate on the raw luminance values.
//
// Threshold selection: lower thresholds detect more edges but pick up
// noise, higher thresholds produce cleaner maps but can miss faint grid
// lines. The defaults suit photographs of a cube face filling most of
// the frame.
type CannyDetector struct {
	// ThresholdLow is the gradient magnitude (0-255 scale) below which
	// candidate edges are discarded.
	ThresholdLow int

	// ThresholdHigh is the gradient magnitude (0-255 scale) above which
	// edges are always kept. Pixels between the thresholds are kept only
	// when adjacent to a strong edge.
	ThresholdHigh int

	// BlurRadius is the radius of the Gaussian pre-blur that suppresses
	// sensor noise before gradient computation.
	BlurRadius float64
}

// NewCannyDetector returns a detector with default thresholds.
func NewCannyDetector() *CannyDetector {
	return &CannyDetector{
		ThresholdLow:  50,
		ThresholdHigh: 150,
		BlurRadius:    1.4,
	}
}

// DetectEdges implements scan.EdgeDetector.
func (d *CannyDetector) DetectEdges(img image.Image) *scan.EdgeMap {
	blurred := blur.Gaussian(effect.Grayscale(img), d.BlurRadius)
	bounds := blurred.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	gray := make([][]float64, height)
	for y := 0; y < height; y++ {
		gray[y] = make([]float64, width)
		for x := 0; x < width; x++ {
			// Grayscale output has equal channels; red carries the
			// luminance.
			gray[y][x] = float64(blurred.RGBAAt(x+bounds.Min.X, y+bounds.Min.Y).R) / 255.0
		}
	}

	// Sobel gradients.
	sobelX := [3][3]float64{
		{-1, 0, 1},
		{-2, 0, 2},
		{-1, 0, 1},
	}
	sobelY := [3][3]float64{
		{-1, -2, -1},
		{0, 0, 0},
		{1, 2, 1},
	}

	magnitude := make([][]float64, height)
	direction := make([][]float64, height)
	for y := 0; y < height; y++ {
		magnitude[y] = make([]float64, width)
		direction[y] = make([]float64, width)
		for x := 0; x < width; x++ {
			var gx, gy float64
			for ky := -1; ky <= 1; ky++ {
				for kx := -1; kx <= 1; kx++ {
					py := clamp(y+ky, 0, height-1)
					px := clamp(x+kx, 0, width-1)
					gx += gray[py][px] * sobelX[ky+1][kx+1]
					gy += gray[py][px] * sobelY[ky+1][kx+1]
				}
			}
			magnitude[y][x] = math.Sqrt(gx*gx + gy*gy)
			direction[y][x] = math.Atan2(gy, gx)
		}
	}

	// Non-maximum suppression: keep only local maxima along the gradient
	// direction so edges thin to one pixel.
	suppressed := make([][]float64, height)
	for y := 0; y < height; y++ {
		suppressed[y] = make([]float64, width)
		for x := 0; x < width; x++ {
			if y == 0 || y == height-1 || x == 0 || x == width-1 {
				continue
			}

			angle := direction[y][x]
			mag := magnitude[y][x]

			var n1, n2 float64
			if (angle >= -math.Pi/8 && angle < math.Pi/8) || (angle >= 7*math.Pi/8 || angle < -7*math.Pi/8) {
				n1 = magnitude[y][x-1]
				n2 = magnitude[y][x+1]
			} else if (angle >= math.Pi/8 && angle < 3*math.Pi/8) || (angle >= -7*math.Pi/8 && angle < -5*math.Pi/8) {
				n1 = magnitude[y-1][x+1]
				n2 = magnitude[y+1][x-1]
			} else if (angle >= 3*math.Pi/8 && angle < 5*math.Pi/8) || (angle >= -5*math.Pi/8 && angle < -3*math.Pi/8) {
				n1 = magnitude[y-1][x]
				n2 = magnitude[y+1][x]
			} else {
				n1 = magnitude[y-1][x-1]
				n2 = magnitude[y+1][x+1]
			}

			if mag >= n1 && mag >= n2 {
				suppressed[y][x] = mag
			}
		}
	}

	// Double threshold with hysteresis: strong edges always survive, weak
	// edges survive only next to a strong edge.
	edges := scan.NewEdgeMap(width, height)
	lowThresh := float64(d.ThresholdLow) / 255.0
	highThresh := float64(d.ThresholdHigh) / 255.0

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			val := suppressed[y][x]
			switch {
			case val >= highThresh:
				edges.Bits[y][x] = true
			case val >= lowThresh:
				for ky := -1; ky <= 1 && !edges.Bits[y][x]; ky++ {
					for kx := -1; kx <= 1; kx++ {
						py := clamp(y+ky, 0, height-1)
						px := clamp(x+kx, 0, width-1)
						if suppressed[py][px] >= highThresh {
							edges.Bits[y][x] = true
							break
						}
					}
				}
			}
		}
	}

	return edges
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
