package scan

import (
	"image"
	"math"
)

const (
	// gridBoundaries is the number of boundary lines per family: 2 outer
	// edges plus 2 inner cell divisions.
	gridBoundaries = 4

	// gridSize is the number of cells along each side of the face.
	gridSize = 3

	// faceletCount is the total number of stickers on one face.
	faceletCount = gridSize * gridSize
)

// degenerateEps is the smallest intersection determinant treated as
// solvable. Below this the two lines are effectively parallel.
const degenerateEps = 1e-9

// GridPoint is the pixel coordinate of one facelet centre.
type GridPoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// centreLines derives the lines passing through the middle of each cell
// band from the 4 ordered boundary lines: the midline of boundaries 0-1,
// 1-2 and 2-3.
func centreLines(boundaries []Line) []Line {
	centres := make([]Line, 0, len(boundaries)-1)
	for i := 1; i < len(boundaries); i++ {
		centres = append(centres, averageLine(boundaries[i-1:i+1]))
	}
	return centres
}

// intersect solves the pair of line equations
//
//	x*cos(t1) + y*sin(t1) = r1
//	x*cos(t2) + y*sin(t2) = r2
//
// for (x, y). Returns false when the determinant vanishes, meaning the
// lines are near-parallel and have no usable intersection.
func intersect(a, b Line) (GridPoint, bool) {
	det := math.Cos(a.Theta)*math.Sin(b.Theta) - math.Sin(a.Theta)*math.Cos(b.Theta)
	if math.Abs(det) < degenerateEps {
		return GridPoint{}, false
	}
	x := (math.Sin(b.Theta)*a.Rho - math.Sin(a.Theta)*b.Rho) / det
	y := (math.Cos(a.Theta)*b.Rho - math.Cos(b.Theta)*a.Rho) / det
	return GridPoint{X: x, Y: y}, true
}

// solveGrid intersects the 3 horizontal centre lines with the 3 vertical
// centre lines to produce the 9 facelet centres in row-major order:
// horizontal lines (top to bottom) in the outer loop, vertical lines
// (left to right) in the inner loop, matching the visual reading order
// of the face.
//
// Fails with FailureDegenerateGeometry when any pair of centre lines is
// near-parallel, and with FailureOutOfBounds when a computed centre lies
// outside the image. The points computed before the failure are returned
// so the centre-point overlay can still be drawn.
func solveGrid(centreH, centreV []Line, bounds image.Rectangle) ([]GridPoint, error) {
	points := make([]GridPoint, 0, faceletCount)
	for _, h := range centreH {
		for _, v := range centreV {
			p, ok := intersect(h, v)
			if !ok {
				return points, failf(FailureDegenerateGeometry,
					"centre lines (rho=%.1f theta=%.3f) and (rho=%.1f theta=%.3f) are near-parallel",
					h.Rho, h.Theta, v.Rho, v.Theta)
			}
			points = append(points, p)
		}
	}

	for i, p := range points {
		if p.X < float64(bounds.Min.X) || p.X >= float64(bounds.Max.X) ||
			p.Y < float64(bounds.Min.Y) || p.Y >= float64(bounds.Max.Y) {
			return points, failf(FailureOutOfBounds,
				"facelet centre %d at (%.1f, %.1f) is outside the image %v", i, p.X, p.Y, bounds)
		}
	}
	return points, nil
}
