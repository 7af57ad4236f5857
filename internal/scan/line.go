package scan

import "math"

// Line is a straight line in Hough normal form: the set of points (x, y)
// satisfying x*cos(Theta) + y*sin(Theta) = Rho.
type Line struct {
	Rho   float64 `json:"rho"`   // perpendicular distance from the image origin, pixels
	Theta float64 `json:"theta"` // angle of the normal from the positive X axis, radians
}

// NewLine builds a Line from raw detector output, normalising the
// representation so Rho is never negative. Without this the same physical
// line can appear as either (rho, theta) or (-rho, theta+pi) and
// near-identical detections stop comparing as similar.
func NewLine(rho, theta float64) Line {
	if rho < 0 {
		return Line{Rho: -rho, Theta: theta - math.Pi}
	}
	return Line{Rho: rho, Theta: theta}
}

// orientation returns the line's angle folded into [0, pi). Lines have no
// direction, so angles that differ by pi describe the same orientation.
func (l Line) orientation() float64 {
	t := math.Mod(l.Theta, math.Pi)
	if t < 0 {
		t += math.Pi
	}
	return t
}

// angleDistance returns the smallest separation between two orientations,
// accounting for the wrap at pi. The result is in [0, pi/2].
func angleDistance(a, b float64) float64 {
	d := math.Mod(math.Abs(a-b), math.Pi)
	if d > math.Pi/2 {
		d = math.Pi - d
	}
	return d
}

// averageLine combines a group of mutually similar lines into their mean.
// Callers must ensure the group is angularly aligned; the plain arithmetic
// mean of Theta is only meaningful when the angles do not straddle a wrap.
func averageLine(lines []Line) Line {
	var rho, theta float64
	for _, l := range lines {
		rho += l.Rho
		theta += l.Theta
	}
	n := float64(len(lines))
	return Line{Rho: rho / n, Theta: theta / n}
}

// meanOrientation returns the circular mean of the lines' orientations.
// Angles are doubled before averaging so that orientations near 0 and
// near pi (the same direction) reinforce rather than cancel.
func meanOrientation(lines []Line) float64 {
	var sx, sy float64
	for _, l := range lines {
		t := 2 * l.orientation()
		sx += math.Cos(t)
		sy += math.Sin(t)
	}
	m := math.Atan2(sy, sx) / 2
	if m < 0 {
		m += math.Pi
	}
	return m
}
