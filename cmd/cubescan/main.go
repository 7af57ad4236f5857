package main

import (
	"flag"
	"fmt"
	"image"
	"log"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"

	"cubescan/internal/scan"
	"cubescan/internal/vision"
)

func main() {
	var debugDir string
	flag.StringVar(&debugDir, "debug", "", "directory to write the diagnostic images into")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [-debug dir] image\n\n", filepath.Base(os.Args[0]))
		fmt.Fprintln(os.Stderr, "Scans a photograph of one Rubik's cube face and prints the 3x3 colour grid.")
		fmt.Fprintln(os.Stderr)
		flag.PrintDefaults()
	}
	flag.Parse()

	log.SetOutput(os.Stderr)
	log.SetFlags(0)

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	img, err := imaging.Open(flag.Arg(0))
	if err != nil {
		log.Fatalf("load image: %v", err)
	}

	scanner := scan.NewScanner(vision.NewCannyDetector(), vision.NewHoughDetector(), scan.DefaultConfig())
	result, err := scanner.Scan(img)

	if debugDir != "" {
		if werr := writeDiagnostics(debugDir, &result.Diagnostics); werr != nil {
			log.Printf("write diagnostics: %v", werr)
		}
	}
	if err != nil {
		log.Fatalf("scan failed: %v", err)
	}

	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			if col > 0 {
				fmt.Print(" ")
			}
			fmt.Printf("%-6s", result.Facelets[row*3+col])
		}
		fmt.Println()
	}
}

// writeDiagnostics saves whichever intermediate images the scan produced.
// Stages after a failure point have no image and are skipped.
func writeDiagnostics(dir string, d *scan.Diagnostics) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	outputs := []struct {
		name string
		img  image.Image
	}{
		{"edges.png", d.Edges},
		{"lines.png", d.RawLines},
		{"orthogonal_lines.png", d.OrthogonalLines},
		{"combined_lines.png", d.MergedLines},
		{"centre_lines.png", d.CentreLines},
		{"centre_points.png", d.CentrePoints},
	}
	for _, out := range outputs {
		if out.img == nil {
			continue
		}
		if err := imaging.Save(out.img, filepath.Join(dir, out.name)); err != nil {
			return fmt.Errorf("save %s: %w", out.name, err)
		}
	}
	return nil
}
