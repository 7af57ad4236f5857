package scan

import "sort"

// mergeFamily collapses near-duplicate lines in one family into grid
// boundary lines, returned in increasing perpendicular-offset order.
//
// Family members are already angularly aligned, so this is a 1-D
// agglomerative merge along rho: after sorting, adjacent lines whose
// offsets are within Config.MergeDistance of each other join the same
// cluster, and each cluster is replaced by its average line.
//
// Exactly 4 clusters must result. Fewer means distinct grid boundaries
// were not separable, more means spurious lines survived; both fail with
// FailureWrongLineCount rather than guessing. The merged lines found so
// far are still returned alongside the error so diagnostic overlays can
// show what the merge produced.
func mergeFamily(family LineFamily, cfg Config) ([]Line, error) {
	lines := append([]Line(nil), family.Lines...)
	sort.Slice(lines, func(i, j int) bool { return lines[i].Rho < lines[j].Rho })

	var merged []Line
	start := 0
	for i := 1; i <= len(lines); i++ {
		if i == len(lines) || lines[i].Rho-lines[i-1].Rho > cfg.MergeDistance {
			merged = append(merged, averageLine(lines[start:i]))
			start = i
		}
	}

	if len(merged) != gridBoundaries {
		return merged, failf(FailureWrongLineCount,
			"merged %d lines into %d grid boundaries, need exactly %d",
			len(lines), len(merged), gridBoundaries)
	}
	return merged, nil
}
