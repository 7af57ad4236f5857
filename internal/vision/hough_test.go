package vision

import (
	"math"
	"testing"

	"cubescan/internal/scan"
)

func edgeMapWithRow(width, height, y int) *scan.EdgeMap {
	edges := scan.NewEdgeMap(width, height)
	for x := 0; x < width; x++ {
		edges.Bits[y][x] = true
	}
	return edges
}

func edgeMapWithColumn(width, height, x int) *scan.EdgeMap {
	edges := scan.NewEdgeMap(width, height)
	for y := 0; y < height; y++ {
		edges.Bits[y][x] = true
	}
	return edges
}

func TestDetectLines_HorizontalLine(t *testing.T) {
	edges := edgeMapWithRow(100, 100, 30)

	detector := &HoughDetector{Threshold: 50, MaxLines: 10}
	lines := detector.DetectLines(edges)

	if len(lines) == 0 {
		t.Fatal("Expected at least one line")
	}

	// A horizontal line's normal points straight down: theta ~ pi/2,
	// rho ~ the row coordinate.
	best := lines[0]
	if math.Abs(best.Theta-math.Pi/2) > 0.02 {
		t.Errorf("Line theta %.3f, expected ~pi/2", best.Theta)
	}
	if math.Abs(best.Rho-30) > 1.5 {
		t.Errorf("Line rho %.1f, expected ~30", best.Rho)
	}
}

func TestDetectLines_VerticalLine(t *testing.T) {
	edges := edgeMapWithColumn(100, 100, 40)

	detector := &HoughDetector{Threshold: 50, MaxLines: 10}
	lines := detector.DetectLines(edges)

	if len(lines) == 0 {
		t.Fatal("Expected at least one line")
	}

	best := lines[0]
	if math.Abs(best.Theta) > 0.02 {
		t.Errorf("Line theta %.3f, expected ~0", best.Theta)
	}
	if math.Abs(best.Rho-40) > 1.5 {
		t.Errorf("Line rho %.1f, expected ~40", best.Rho)
	}
}

func TestDetectLines_EmptyEdgeMap(t *testing.T) {
	edges := scan.NewEdgeMap(100, 100)

	lines := NewHoughDetector().DetectLines(edges)

	if len(lines) != 0 {
		t.Errorf("Expected no lines in an empty edge map, got %d", len(lines))
	}
}

func TestDetectLines_MaxLines(t *testing.T) {
	edges := scan.NewEdgeMap(200, 200)
	for i := 0; i < 20; i++ {
		y := i * 10
		for x := 0; x < 200; x++ {
			edges.Bits[y][x] = true
		}
	}

	detector := &HoughDetector{Threshold: 50, MaxLines: 5}
	lines := detector.DetectLines(edges)

	if len(lines) > 5 {
		t.Errorf("Expected at most 5 lines, got %d", len(lines))
	}
}

func TestDetectLines_StrongestFirst(t *testing.T) {
	edges := scan.NewEdgeMap(200, 100)
	// Full-width line at y=20, half-width line at y=70.
	for x := 0; x < 200; x++ {
		edges.Bits[20][x] = true
	}
	for x := 0; x < 100; x++ {
		edges.Bits[70][x] = true
	}

	detector := &HoughDetector{Threshold: 50, MaxLines: 10}
	lines := detector.DetectLines(edges)

	if len(lines) < 2 {
		t.Fatalf("Expected both lines, got %d", len(lines))
	}
	if math.Abs(lines[0].Rho-20) > 1.5 {
		t.Errorf("Strongest line rho %.1f, expected the full-width line at ~20", lines[0].Rho)
	}
}

func TestDetectLines_NegativeRhoBinning(t *testing.T) {
	// The diagonal y = x - 30 has a negative raw rho at theta = 135
	// degrees: every point gives rho = -30/sqrt(2) ~ -21.21, which lies
	// in the accumulator cell [-22, -21). Normalisation then flips the
	// sign, so the detected line reports rho 22.
	edges := scan.NewEdgeMap(100, 100)
	for x := 30; x < 100; x++ {
		edges.Bits[x-30][x] = true
	}

	detector := &HoughDetector{Threshold: 50, MaxLines: 10}
	lines := detector.DetectLines(edges)

	if len(lines) == 0 {
		t.Fatal("Expected at least one line")
	}

	best := lines[0]
	if math.Abs(best.Theta+math.Pi/4) > 0.02 {
		t.Errorf("Line theta %.3f, expected ~-pi/4", best.Theta)
	}
	if best.Rho != 22 {
		t.Errorf("Line rho %.1f, expected 22", best.Rho)
	}
}

func TestDetectLines_NormalisedRho(t *testing.T) {
	edges := edgeMapWithColumn(100, 100, 40)

	lines := (&HoughDetector{Threshold: 50, MaxLines: 20}).DetectLines(edges)

	for i, l := range lines {
		if l.Rho < 0 {
			t.Errorf("Line %d has negative rho %.1f after normalisation", i, l.Rho)
		}
	}
}
