//go:build !linux

package hashdups

import "os"

// adviseSequential is a no-op where posix_fadvise is unavailable; the mapping
// is still read front to back, just with the default readahead.
func adviseSequential(f *os.File, size int64) {}
