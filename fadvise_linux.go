//go:build linux

package hashdups

import (
	"os"

	"golang.org/x/sys/unix"
)

// adviseSequential tells the kernel the first size bytes of f are about to be
// scanned once, front to back, through the read-only mapping. SplitLines walks
// the mapping linearly and never revisits a page, so larger readahead cuts the
// page faults on big hash lists and the cached pages can be dropped early.
// Best-effort: errors are ignored.
func adviseSequential(f *os.File, size int64) {
	_ = unix.Fadvise(int(f.Fd()), 0, size, unix.FADV_SEQUENTIAL)
}
