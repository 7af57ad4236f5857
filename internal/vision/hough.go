package vision

import (
	"math"
	"sort"

	"cubescan/internal/scan"
)

// houghAngles is the angular resolution of the accumulator: one bin per
// degree over [0, 180).
const houghAngles = 180

// HoughDetector finds straight lines in an edge map with the standard
// Hough transform. Every edge pixel votes for all (rho, theta) pairs it
// could lie on; accumulator cells that are local maxima above the vote
// threshold become lines.
type HoughDetector struct {
	// Threshold is the minimum number of accumulator votes for a cell to
	// count as a line. Roughly the minimum line length in pixels.
	Threshold int

	// MaxLines caps how many lines are returned, strongest first, as a
	// defence against pathological edge maps.
	MaxLines int
}

// NewHoughDetector returns a detector with default parameters.
func NewHoughDetector() *HoughDetector {
	return &HoughDetector{
		Threshold: 125,
		MaxLines:  200,
	}
}

// DetectLines implements scan.LineDetector. Returned lines are in
// normalised Hough form (rho >= 0), ordered by decreasing vote count.
func (d *HoughDetector) DetectLines(edges *scan.EdgeMap) []scan.Line {
	width := edges.Width
	height := edges.Height
	maxDist := int(math.Ceil(math.Sqrt(float64(width*width + height*height))))

	accumulator := make([][]int, maxDist*2)
	for i := range accumulator {
		accumulator[i] = make([]int, houghAngles)
	}

	sinTable := make([]float64, houghAngles)
	cosTable := make([]float64, houghAngles)
	for theta := 0; theta < houghAngles; theta++ {
		angle := float64(theta) * math.Pi / 180.0
		sinTable[theta] = math.Sin(angle)
		cosTable[theta] = math.Cos(angle)
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if !edges.Bits[y][x] {
				continue
			}
			for theta := 0; theta < houghAngles; theta++ {
				rho := float64(x)*cosTable[theta] + float64(y)*sinTable[theta]
				// Floor keeps every accumulator cell a unit interval;
				// truncating toward zero would give rho 0 a double-width
				// cell straddling the sign change.
				rhoIdx := int(math.Floor(rho)) + maxDist
				if rhoIdx >= 0 && rhoIdx < maxDist*2 {
					accumulator[rhoIdx][theta]++
				}
			}
		}
	}

	type peak struct {
		rho   int
		theta int
		votes int
	}
	var peaks []peak

	for rhoIdx := 0; rhoIdx < maxDist*2; rhoIdx++ {
		for theta := 0; theta < houghAngles; theta++ {
			votes := accumulator[rhoIdx][theta]
			if votes < d.Threshold {
				continue
			}
			// Keep only local maxima so one physical line does not
			// produce a cloud of near-identical detections.
			isMax := true
			for dr := -2; dr <= 2 && isMax; dr++ {
				for dt := -2; dt <= 2 && isMax; dt++ {
					if dr == 0 && dt == 0 {
						continue
					}
					nr := rhoIdx + dr
					nt := (theta + dt + houghAngles) % houghAngles
					if nr >= 0 && nr < maxDist*2 && accumulator[nr][nt] > votes {
						isMax = false
					}
				}
			}
			if isMax {
				peaks = append(peaks, peak{rho: rhoIdx - maxDist, theta: theta, votes: votes})
			}
		}
	}

	sort.Slice(peaks, func(i, j int) bool { return peaks[i].votes > peaks[j].votes })

	lines := make([]scan.Line, 0, len(peaks))
	for _, p := range peaks {
		if len(lines) >= d.MaxLines {
			break
		}
		theta := float64(p.theta) * math.Pi / 180.0
		lines = append(lines, scan.NewLine(float64(p.rho), theta))
	}
	return lines
}
