package scan

import (
	"math"
	"testing"
)

// linesAt builds one line per rho, all sharing the same theta.
func linesAt(theta float64, rhos ...float64) []Line {
	lines := make([]Line, 0, len(rhos))
	for _, rho := range rhos {
		lines = append(lines, NewLine(rho, theta))
	}
	return lines
}

func TestClassifyOrthogonal_AxisAligned(t *testing.T) {
	lines := append(
		linesAt(0, 15, 105, 195, 285),         // vertical lines
		linesAt(math.Pi/2, 15, 105, 195, 285)..., // horizontal lines
	)

	horizontal, vertical, err := classifyOrthogonal(lines, DefaultConfig())
	if err != nil {
		t.Fatalf("classifyOrthogonal failed: %v", err)
	}

	if len(horizontal.Lines) != 4 {
		t.Errorf("Expected 4 horizontal lines, got %d", len(horizontal.Lines))
	}
	if len(vertical.Lines) != 4 {
		t.Errorf("Expected 4 vertical lines, got %d", len(vertical.Lines))
	}
	if d := angleDistance(horizontal.Centre, math.Pi/2); d > 0.01 {
		t.Errorf("Horizontal family centre %.3f not near pi/2", horizontal.Centre)
	}
	if d := angleDistance(vertical.Centre, 0); d > 0.01 {
		t.Errorf("Vertical family centre %.3f not near 0", vertical.Centre)
	}
}

func TestClassifyOrthogonal_RotatedFace(t *testing.T) {
	// Face rotated ~17 degrees in frame; the classifier must discover the
	// dominant orientations instead of assuming the image axes.
	rot := 0.3
	lines := append(
		linesAt(rot, 20, 110, 200, 290),
		linesAt(rot+math.Pi/2, 20, 110, 200, 290)...,
	)

	horizontal, vertical, err := classifyOrthogonal(lines, DefaultConfig())
	if err != nil {
		t.Fatalf("classifyOrthogonal failed: %v", err)
	}

	if len(horizontal.Lines) != 4 || len(vertical.Lines) != 4 {
		t.Fatalf("Expected 4+4 lines, got %d+%d", len(horizontal.Lines), len(vertical.Lines))
	}

	// Orthogonality invariant: the two discovered orientations are a
	// right angle apart within tolerance.
	sep := angleDistance(horizontal.Centre, vertical.Centre)
	if math.Pi/2-sep > DefaultConfig().OrthogonalTolerance {
		t.Errorf("Family centres %.3f apart, expected ~pi/2", sep)
	}
}

func TestClassifyOrthogonal_NoLines(t *testing.T) {
	_, _, err := classifyOrthogonal(nil, DefaultConfig())
	if !IsKind(err, FailureInsufficientLines) {
		t.Errorf("Expected insufficient_lines, got %v", err)
	}
}

func TestClassifyOrthogonal_TooFewInFamily(t *testing.T) {
	lines := append(
		linesAt(0, 15, 105, 195, 285),
		linesAt(math.Pi/2, 15, 105, 195)..., // only 3 horizontal lines
	)

	_, _, err := classifyOrthogonal(lines, DefaultConfig())
	if !IsKind(err, FailureInsufficientLines) {
		t.Errorf("Expected insufficient_lines, got %v", err)
	}
}

func TestClassifyOrthogonal_NotOrthogonal(t *testing.T) {
	// Orientations at 0, 30 and 60 degrees: no dominant pair is close to
	// a right angle apart.
	lines := append(
		linesAt(0, 10, 50, 90, 130, 170),
		append(
			linesAt(math.Pi/6, 10, 50, 90, 130),
			linesAt(math.Pi/3, 10, 50, 90, 130)...,
		)...,
	)

	_, _, err := classifyOrthogonal(lines, DefaultConfig())
	if !IsKind(err, FailureNotOrthogonal) {
		t.Errorf("Expected not_orthogonal, got %v", err)
	}
}

func TestClassifyOrthogonal_SingleOrientation(t *testing.T) {
	// Plenty of lines, but all parallel: there is no second family near
	// a right angle away, so the failure is about orientation structure
	// rather than line count.
	lines := linesAt(0, 10, 40, 70, 100, 130, 160, 190, 220, 250, 280)

	_, _, err := classifyOrthogonal(lines, DefaultConfig())
	if !IsKind(err, FailureNotOrthogonal) {
		t.Errorf("Expected not_orthogonal, got %v", err)
	}
}

func TestClassifyOrthogonal_DiscardsOutliers(t *testing.T) {
	outlier := NewLine(80, math.Pi/4)
	lines := append(
		linesAt(0, 15, 105, 195, 285),
		append(linesAt(math.Pi/2, 15, 105, 195, 285), outlier)...,
	)

	horizontal, vertical, err := classifyOrthogonal(lines, DefaultConfig())
	if err != nil {
		t.Fatalf("classifyOrthogonal failed: %v", err)
	}

	if got := len(horizontal.Lines) + len(vertical.Lines); got != 8 {
		t.Errorf("Expected the 45-degree outlier to be discarded, kept %d lines", got)
	}
}

func TestClassifyOrthogonal_NormalisedWrap(t *testing.T) {
	// A near-vertical line reported as (-rho, theta close to pi) must
	// land in the same family as its (rho, theta close to 0) siblings.
	wrapped := NewLine(-40, math.Pi-0.01)
	lines := append(
		append(linesAt(0.01, 15, 105, 195), wrapped),
		linesAt(math.Pi/2, 15, 105, 195, 285)...,
	)

	_, vertical, err := classifyOrthogonal(lines, DefaultConfig())
	if err != nil {
		t.Fatalf("classifyOrthogonal failed: %v", err)
	}
	if len(vertical.Lines) != 4 {
		t.Errorf("Expected wrapped line in the vertical family, got %d members", len(vertical.Lines))
	}
}
