// Package scan reconstructs the 3x3 sticker grid of a single Rubik's cube
// face from one photograph and classifies the colour of each facelet.
//
// The pipeline runs strictly forward through six stages:
//
//  1. Edge extraction: the image becomes a binary edge map (EdgeDetector).
//  2. Line detection: the edge map becomes raw Hough lines (LineDetector).
//  3. Orthogonal classification: raw lines split into the two dominant,
//     roughly perpendicular orientation families; everything else is
//     discarded. The face may be rotated in frame, so the dominant
//     orientations are discovered rather than assumed axis-aligned.
//  4. Line merging: each family collapses to exactly 4 grid boundary
//     lines by clustering near-coincident detections.
//  5. Grid solving: the 4+4 boundaries yield 3+3 centre lines whose 9
//     intersections are the facelet centres, ordered row-major.
//  6. Colour classification: the average colour of a small patch around
//     each centre is matched to the nearest canonical cube colour in the
//     CIE-Lab space.
//
// # Failure Model
//
// A photograph either contains a detectable grid or it does not. Any
// stage failure aborts the scan and is reported as a *ScanError carrying
// a FailureKind; no partial colour result is ever returned. Diagnostic
// overlay images computed before the failing stage are still available
// on the returned Result for inspection.
//
// # Coordinate System
//
// Pixel coordinates are 0-based with the origin at the top-left corner,
// X increasing rightward and Y increasing downward. Lines use the Hough
// normal form (rho, theta): rho is the perpendicular distance from the
// origin and theta the angle of the normal from the positive X axis.
//
// # Determinism
//
// For a fixed input image and a fixed Config, repeated scans produce
// identical grid points and colour labels. The canonical colour table is
// read-only and shared process-wide.
package scan
