//go:build linux

package hashdups

import (
	"os"
	"path/filepath"
	"slices"
	"testing"

	"golang.org/x/sys/unix"
)

// TestLoadFIFO covers inputs that stat as size 0 but still carry data, such
// as named pipes and the /dev/fd/N paths of shell process substitution.
func TestLoadFIFO(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultInputName)
	if err := unix.Mkfifo(path, 0o600); err != nil {
		t.Skipf("mkfifo unsupported: %v", err)
	}

	errc := make(chan error, 1)
	go func() {
		errc <- os.WriteFile(path, []byte("a\nb\na\n"), 0o600)
	}()

	in, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if err := <-errc; err != nil {
		t.Fatalf("write fifo: %v", err)
	}

	if want := []string{"a", "b", "a", ""}; !slices.Equal(in.Lines, want) {
		t.Errorf("Lines = %q, want %q", in.Lines, want)
	}
	if in.Size != 6 {
		t.Errorf("Size = %d, want 6", in.Size)
	}
	got := FindDuplicateGroups(in.Lines)
	if want := [][]int{{0, 2}}; !slices.EqualFunc(got, want, slices.Equal[[]int]) {
		t.Errorf("groups = %v, want %v", got, want)
	}
}

// TestLoadProcFile reads a procfs file, which is not mapped
// because stat reports size 0 even though it has content.
func TestLoadProcFile(t *testing.T) {
	const path = "/proc/self/status"
	st, err := os.Stat(path)
	if err != nil {
		t.Skipf("procfs unavailable: %v", err)
	}
	if st.Size() != 0 {
		t.Skipf("%s reports size %d", path, st.Size())
	}

	in, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if in.Size == 0 || len(in.Hashes()) == 0 {
		t.Errorf("Load(%s) read nothing: %+v", path, in)
	}
}
