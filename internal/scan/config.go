package scan

import "math"

// Config collects the tuning thresholds of the pipeline. All stages read
// their parameters from here so that runs are reproducible and tests can
// tighten or relax individual stages.
type Config struct {
	// AngleTolerance is the maximum angular deviation, in radians, a line
	// may have from a family's dominant orientation and still join that
	// family. Lines outside tolerance of both families are discarded.
	AngleTolerance float64 `json:"angle_tolerance"`

	// OrthogonalTolerance is the allowed deviation, in radians, of the
	// separation between the two dominant orientations from a right
	// angle. Wider values accept more perspective distortion.
	OrthogonalTolerance float64 `json:"orthogonal_tolerance"`

	// MergeDistance is the maximum gap, in pixels, between the
	// perpendicular offsets of two lines in the same family for them to
	// be merged into one grid boundary. It must be comfortably smaller
	// than the expected cell size.
	MergeDistance float64 `json:"merge_distance"`

	// SampleRadius is the half-width, in pixels, of the square patch
	// averaged around each facelet centre before colour classification.
	SampleRadius int `json:"sample_radius"`

	// MaxLines bounds the number of raw detections fed to the classifier,
	// guarding against pathological inputs with thousands of spurious
	// lines. Detectors return lines strongest first, so truncation keeps
	// the best candidates.
	MaxLines int `json:"max_lines"`
}

// DefaultConfig returns thresholds tuned for photographs where the cube
// face fills most of the frame.
func DefaultConfig() Config {
	return Config{
		AngleTolerance:      math.Pi / 18, // 10 degrees
		OrthogonalTolerance: math.Pi / 36, // 5 degrees
		MergeDistance:       50,
		SampleRadius:        20,
		MaxLines:            200,
	}
}
