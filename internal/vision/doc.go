// Package vision implements the external-collaborator side of the scan
// pipeline: Canny edge extraction and a Hough-transform line detector.
//
// Both detectors satisfy the narrow interfaces declared in the scan
// package (scan.EdgeDetector, scan.LineDetector), keeping the geometric
// pipeline independent of any particular detector implementation or
// tuning. Swapping in a different vision backend only requires
// implementing those two interfaces.
//
// # Performance Considerations
//
// The Hough transform iterates every edge pixel over 180 angle steps, so
// cost grows with edge density. Raising the vote threshold or lowering
// the Canny thresholds' sensitivity reduces work on noisy photographs.
package vision
