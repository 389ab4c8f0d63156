// Package hashdups finds duplicate values in a newline-delimited list of
// pre-computed hashes.
//
// Each line of the input is an opaque key. Lines are tagged with their
// zero-based position, stably sorted by key and split into runs of equal
// keys. Runs with more than one member are duplicate groups, reported as the
// ascending list of their line indices, in ascending key order.
//
// # Basic Usage
//
//	in, err := hashdups.Load("hashes")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, g := range hashdups.FindDuplicateGroups(in.Lines) {
//	    fmt.Println(hashdups.FormatIndices(g))
//	}
//
// Report combines both steps and also returns a Stats summary:
//
//	stats, err := hashdups.Report(os.Stdout, in)
//
// # Package Structure
//
//   - Grouping: group.go (GroupAll, DuplicateGroups, FindDuplicateGroups)
//   - Input: input.go (Load, LoadFile, LoadReader, LoadBytes, SplitLines)
//   - Output: report.go (FormatIndices, WriteGroups, Report, Stats)
//   - Platform: fadvise_*.go (OS-specific read hints)
//   - Errors: errors/ (sentinels shared with the command)
package hashdups
