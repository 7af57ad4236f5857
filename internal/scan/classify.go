package scan

import "math"

// angleBins is the resolution of the orientation histogram used to find
// the two dominant directions: 36 bins over [0, pi) is 5 degrees per bin.
const angleBins = 36

// LineFamily groups lines sharing one of the two dominant orientations
// of the grid. The face may be rotated in frame, so "horizontal" and
// "vertical" are relative to the discovered orientation, not the image
// axes.
type LineFamily struct {
	Centre float64 // dominant orientation in [0, pi), radians
	Lines  []Line
}

// classifyOrthogonal partitions raw detections into the two grid
// orientation families and discards the rest.
//
// The dominant orientation is found with a coarse histogram over [0, pi).
// The second family is the strongest orientation roughly a right angle
// away. Each line is then assigned to the angularly nearest family if it
// is within Config.AngleTolerance of it; lines outside tolerance of both
// are dropped.
//
// Fails with FailureInsufficientLines when no lines were detected or
// either family ends up with fewer than 4 members, and with
// FailureNotOrthogonal when the two dominant orientations are not within
// Config.OrthogonalTolerance of perpendicular.
func classifyOrthogonal(lines []Line, cfg Config) (horizontal, vertical LineFamily, err error) {
	if len(lines) == 0 {
		return horizontal, vertical, failf(FailureInsufficientLines, "no lines detected")
	}

	const binWidth = math.Pi / angleBins
	votes := make([]int, angleBins)
	for _, l := range lines {
		bin := int(l.orientation() / binWidth)
		if bin >= angleBins {
			bin = angleBins - 1
		}
		votes[bin]++
	}

	first := 0
	for b := 1; b < angleBins; b++ {
		if votes[b] > votes[first] {
			first = b
		}
	}
	firstCentre := (float64(first) + 0.5) * binWidth

	// Strongest orientation roughly a right angle away from the first.
	// The bin-level search allows an extra bin of slack for histogram
	// quantisation; the exact orthogonality check below uses the refined
	// cluster centres.
	second := -1
	for b := 0; b < angleBins; b++ {
		if b == first || votes[b] == 0 {
			continue
		}
		centre := (float64(b) + 0.5) * binWidth
		if math.Pi/2-angleDistance(centre, firstCentre) > cfg.OrthogonalTolerance+binWidth {
			continue
		}
		if second < 0 || votes[b] > votes[second] {
			second = b
		}
	}
	if second < 0 {
		return horizontal, vertical, failf(FailureNotOrthogonal,
			"no dominant orientation near 90 degrees from %.1f degrees", firstCentre*180/math.Pi)
	}
	secondCentre := (float64(second) + 0.5) * binWidth

	c1 := refineCentre(lines, firstCentre, cfg.AngleTolerance)
	c2 := refineCentre(lines, secondCentre, cfg.AngleTolerance)
	if sep := angleDistance(c1, c2); math.Pi/2-sep > cfg.OrthogonalTolerance {
		return horizontal, vertical, failf(FailureNotOrthogonal,
			"dominant orientations are %.1f degrees apart", sep*180/math.Pi)
	}

	f1 := LineFamily{Centre: c1}
	f2 := LineFamily{Centre: c2}
	for _, l := range lines {
		d1 := angleDistance(l.orientation(), c1)
		d2 := angleDistance(l.orientation(), c2)
		switch {
		case d1 <= cfg.AngleTolerance && d1 <= d2:
			f1.Lines = append(f1.Lines, l)
		case d2 <= cfg.AngleTolerance:
			f2.Lines = append(f2.Lines, l)
		}
	}

	// A horizontal line's normal points vertically, so the family whose
	// centre is closer to pi/2 holds the horizontal lines.
	horizontal, vertical = f1, f2
	if angleDistance(c2, math.Pi/2) < angleDistance(c1, math.Pi/2) {
		horizontal, vertical = f2, f1
	}

	if len(horizontal.Lines) < gridBoundaries || len(vertical.Lines) < gridBoundaries {
		return horizontal, vertical, failf(FailureInsufficientLines,
			"%d horizontal and %d vertical lines, need at least %d of each",
			len(horizontal.Lines), len(vertical.Lines), gridBoundaries)
	}
	return horizontal, vertical, nil
}

// refineCentre replaces a histogram bin centre with the circular mean of
// the lines within tolerance of it, removing the quantisation error of
// the coarse bins.
func refineCentre(lines []Line, centre, tolerance float64) float64 {
	var members []Line
	for _, l := range lines {
		if angleDistance(l.orientation(), centre) <= tolerance {
			members = append(members, l)
		}
	}
	if len(members) == 0 {
		return centre
	}
	return meanOrientation(members)
}
