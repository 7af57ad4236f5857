package scan

import (
	"image"
	"image/color"
)

// EdgeMap is a binary edge image produced by an EdgeDetector.
type EdgeMap struct {
	Width  int
	Height int
	Bits   [][]bool // Bits[y][x] is true where an edge pixel was found
}

// NewEdgeMap allocates an empty edge map of the given size.
func NewEdgeMap(width, height int) *EdgeMap {
	bits := make([][]bool, height)
	for y := range bits {
		bits[y] = make([]bool, width)
	}
	return &EdgeMap{Width: width, Height: height, Bits: bits}
}

// Image renders the edge map as a grayscale image with edges in white,
// for diagnostic output.
func (m *EdgeMap) Image() *image.Gray {
	out := image.NewGray(image.Rect(0, 0, m.Width, m.Height))
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			if m.Bits[y][x] {
				out.SetGray(x, y, color.Gray{Y: 255})
			}
		}
	}
	return out
}

// EdgeDetector extracts a binary edge map from an image. Implementations
// live outside the pipeline so the geometric stages stay testable with
// synthetic inputs.
type EdgeDetector interface {
	DetectEdges(img image.Image) *EdgeMap
}

// LineDetector finds straight lines in an edge map, strongest first.
type LineDetector interface {
	DetectLines(edges *EdgeMap) []Line
}

// Diagnostics bundles the intermediate images of one scan. Fields for
// stages after a failure point are nil; everything computed before the
// failure is always present.
type Diagnostics struct {
	Edges           image.Image // binary edge map
	RawLines        image.Image // all raw detections overlaid
	OrthogonalLines image.Image // lines surviving orthogonal classification
	MergedLines     image.Image // merged grid boundary lines
	CentreLines     image.Image // the 3+3 cell centre lines
	CentrePoints    image.Image // the 9 facelet centres
}

// Result is the outcome of one scan. Facelets is only meaningful when
// Scan returned a nil error; Diagnostics is populated up to the failure
// point in either case.
type Result struct {
	// Facelets holds the classified sticker colours in row-major order,
	// top-left to bottom-right.
	Facelets [faceletCount]Colour

	Diagnostics Diagnostics
}

// Scanner runs the face-scanning pipeline. It holds no per-scan state:
// each Scan call is a pure function of its input image and the fixed
// configuration, so a Scanner may be reused across images.
type Scanner struct {
	edges EdgeDetector
	lines LineDetector
	cfg   Config
}

// NewScanner builds a Scanner from detector implementations and a
// configuration. Use vision.NewCannyDetector and vision.NewHoughDetector
// for photographs; tests may inject stubs returning synthetic line sets.
func NewScanner(edges EdgeDetector, lines LineDetector, cfg Config) *Scanner {
	return &Scanner{edges: edges, lines: lines, cfg: cfg}
}

// Scan infers the nine facelet colours of the cube face in img.
//
// The returned Result is never nil: on failure it carries the diagnostic
// images computed before the failing stage, and the error is a *ScanError
// identifying the failure kind. There is no partial colour result.
func (s *Scanner) Scan(img image.Image) (*Result, error) {
	res := &Result{}

	edges := s.edges.DetectEdges(img)
	res.Diagnostics.Edges = edges.Image()

	raw := s.lines.DetectLines(edges)
	if len(raw) > s.cfg.MaxLines {
		raw = raw[:s.cfg.MaxLines]
	}
	res.Diagnostics.RawLines = drawLines(img, raw)

	horizontal, vertical, err := classifyOrthogonal(raw, s.cfg)
	if err != nil {
		return res, err
	}
	res.Diagnostics.OrthogonalLines = drawLines(img, concatLines(horizontal.Lines, vertical.Lines))

	mergedH, errH := mergeFamily(horizontal, s.cfg)
	mergedV, errV := mergeFamily(vertical, s.cfg)
	res.Diagnostics.MergedLines = drawLines(img, concatLines(mergedH, mergedV))
	if errH != nil {
		return res, errH
	}
	if errV != nil {
		return res, errV
	}

	centreH := centreLines(mergedH)
	centreV := centreLines(mergedV)
	res.Diagnostics.CentreLines = drawLines(img, concatLines(centreH, centreV))

	points, err := solveGrid(centreH, centreV, img.Bounds())
	res.Diagnostics.CentrePoints = drawPoints(img, points)
	if err != nil {
		return res, err
	}

	for i, p := range points {
		colour, _ := classifyColour(sampleAverage(img, p, s.cfg.SampleRadius))
		res.Facelets[i] = colour
	}
	return res, nil
}

func concatLines(groups ...[]Line) []Line {
	var all []Line
	for _, g := range groups {
		all = append(all, g...)
	}
	return all
}
