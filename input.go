package hashdups

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/edsrzf/mmap-go"
	"github.com/zeebo/xxh3"

	duperrors "github.com/tamirms/hashdups/errors"
)

// DefaultInputName is the file read when no path is given.
const DefaultInputName = "hashes"

// Input is a hash list that has been read completely into memory.
// The underlying resource is already released when an Input is returned.
type Input struct {
	// Lines holds the raw '\n'-separated lines. A trailing newline leaves a
	// final "" element, which the grouping functions drop.
	Lines []string

	// Size is the number of bytes read.
	Size int64

	// Checksum is the xxHash3-128 of the raw bytes, little-endian Lo then Hi.
	Checksum [16]byte
}

// Load reads the hash list at path.
// It opens the file, memory-maps it, copies the lines out, then unmaps and
// closes it.
func Load(path string) (*Input, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, unavailable(err)
	}
	defer file.Close()
	return LoadFile(file)
}

// LoadFile reads the hash list from an open file. Non-empty regular files are
// memory-mapped; anything else (FIFOs, /dev/fd/N from process substitution,
// /proc files reporting size 0) is read as a stream.
// The caller is responsible for closing f.
func LoadFile(f *os.File) (*Input, error) {
	stat, err := f.Stat()
	if err != nil {
		return nil, unavailable(err)
	}
	if stat.IsDir() {
		return nil, unavailable(fmt.Errorf("%s: is a directory", f.Name()))
	}
	size := stat.Size()

	// mmap(2) rejects zero-length mappings, and a size of 0 does not mean
	// there is nothing to read.
	if !stat.Mode().IsRegular() || size == 0 {
		return LoadReader(f)
	}

	adviseSequential(f, size)

	mm, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return nil, unavailable(fmt.Errorf("mmap %s: %w", f.Name(), err))
	}
	in := LoadBytes(mm)
	if err := mm.Unmap(); err != nil {
		return nil, unavailable(fmt.Errorf("unmap %s: %w", f.Name(), err))
	}
	return in, nil
}

// LoadReader reads the hash list from r until EOF. Use it for streams that
// cannot be mapped, such as standard input.
func LoadReader(r io.Reader) (*Input, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, unavailable(err)
	}
	return LoadBytes(data), nil
}

// LoadBytes builds an Input from an in-memory buffer. data is not retained.
func LoadBytes(data []byte) *Input {
	return &Input{
		Lines:    SplitLines(data),
		Size:     int64(len(data)),
		Checksum: checksum(data),
	}
}

// SplitLines splits data on '\n'. The result always has one more element than
// there are newlines, so "a\n" gives ["a", ""] and an empty buffer gives [""].
// No other bytes are treated specially; "\r" stays part of the key.
func SplitLines(data []byte) []string {
	lines := make([]string, 0, bytes.Count(data, []byte{'\n'})+1)
	for {
		i := bytes.IndexByte(data, '\n')
		if i < 0 {
			break
		}
		lines = append(lines, string(data[:i]))
		data = data[i+1:]
	}
	return append(lines, string(data))
}

// Hashes returns the lines that are keys, i.e. without the trailing newline
// artifact.
func (in *Input) Hashes() []string {
	return TrimTrailingEmpty(in.Lines)
}

func checksum(data []byte) [16]byte {
	h := xxh3.Hash128(data)
	var sum [16]byte
	binary.LittleEndian.PutUint64(sum[0:8], h.Lo)
	binary.LittleEndian.PutUint64(sum[8:16], h.Hi)
	return sum
}

func unavailable(err error) error {
	return fmt.Errorf("%w: %w", duperrors.ErrInputUnavailable, err)
}
