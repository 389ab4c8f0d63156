package hashdups

import (
	"bufio"
	"encoding/hex"
	"fmt"
	"io"
	"strconv"

	"github.com/cespare/xxhash/v2"
)

// FormatIndices renders indices as a bracketed, comma-separated list,
// e.g. "[0, 2]".
func FormatIndices(indices []int) string {
	buf := make([]byte, 0, 2+len(indices)*4)
	buf = appendIndices(buf, indices)
	return string(buf)
}

func appendIndices(buf []byte, indices []int) []byte {
	buf = append(buf, '[')
	for i, idx := range indices {
		if i > 0 {
			buf = append(buf, ',', ' ')
		}
		buf = strconv.AppendInt(buf, int64(idx), 10)
	}
	return append(buf, ']')
}

// WriteGroups writes one line per group, in the given order.
// Nothing is written for an empty slice.
func WriteGroups(w io.Writer, groups [][]int) error {
	bw := bufio.NewWriter(w)
	var line []byte
	for _, g := range groups {
		line = appendIndices(line[:0], g)
		line = append(line, '\n')
		if _, err := bw.Write(line); err != nil {
			return fmt.Errorf("write group: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write group: %w", err)
	}
	return nil
}

// Report writes the duplicate groups of in to w and returns a summary of the
// run. The summary's ReportDigest covers exactly the bytes written to w.
func Report(w io.Writer, in *Input) (Stats, error) {
	all := GroupAll(in.Lines)
	dups := indicesOf(duplicatesOf(all))

	digest := xxhash.New()
	if err := WriteGroups(io.MultiWriter(w, digest), dups); err != nil {
		return Stats{}, err
	}

	stats := ComputeStats(in, all)
	stats.ReportDigest = digest.Sum64()
	return stats, nil
}

// Stats summarizes one run.
type Stats struct {
	Lines           int // keys after dropping the trailing newline artifact
	DistinctKeys    int
	DuplicateGroups int
	DuplicateLines  int // lines that belong to a duplicate group
	InputSize       int64
	InputChecksum   [16]byte
	ReportDigest    uint64
}

// ComputeStats derives counts from the full grouping of in, as returned by
// GroupAll. ReportDigest is left zero; Report fills it in.
func ComputeStats(in *Input, all []Group) Stats {
	s := Stats{
		DistinctKeys:  len(all),
		InputSize:     in.Size,
		InputChecksum: in.Checksum,
	}
	for _, g := range all {
		s.Lines += len(g.Indices)
		if len(g.Indices) > 1 {
			s.DuplicateGroups++
			s.DuplicateLines += len(g.Indices)
		}
	}
	return s
}

// WriteTo writes a human-readable summary to w.
func (s Stats) WriteTo(w io.Writer) (int64, error) {
	n, err := fmt.Fprintf(w,
		"lines:            %d\n"+
			"distinct keys:    %d\n"+
			"duplicate groups: %d\n"+
			"duplicate lines:  %d\n"+
			"input bytes:      %d\n"+
			"input xxh3-128:   %s\n"+
			"report xxh64:     %016x\n",
		s.Lines, s.DistinctKeys, s.DuplicateGroups, s.DuplicateLines,
		s.InputSize, hex.EncodeToString(s.InputChecksum[:]), s.ReportDigest)
	return int64(n), err
}
