package generate

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
)

// checkpointMagic opens every checkpoint stream.
var checkpointMagic = [4]byte{'L', 'V', 'B', 'C'}

// maxCheckpointLen bounds the vector length accepted by ReadCheckpoint.
const maxCheckpointLen = 1 << 24

// WriteCheckpoint encodes vector as the magic, a little-endian uint32 length
// and one little-endian int32 per element.
func WriteCheckpoint(w io.Writer, vector []int) error {
	if len(vector) > maxCheckpointLen {
		return fmt.Errorf("%w: %d elements", ErrCheckpointFormat, len(vector))
	}
	buf := make([]byte, 0, 8+4*len(vector))
	buf = append(buf, checkpointMagic[:]...)
	buf = binary.LittleEndian.AppendUint32(buf, uint32(len(vector)))
	for i, x := range vector {
		if x < math.MinInt32 || x > math.MaxInt32 {
			return fmt.Errorf("%w: element %d out of int32 range", ErrCheckpointFormat, i)
		}
		buf = binary.LittleEndian.AppendUint32(buf, uint32(int32(x)))
	}
	_, err := w.Write(buf)

	return err
}

// ReadCheckpoint decodes a vector written by WriteCheckpoint.
func ReadCheckpoint(r io.Reader) ([]int, error) {
	br := bufio.NewReader(r)
	var head [8]byte
	if _, err := io.ReadFull(br, head[:]); err != nil {
		return nil, fmt.Errorf("%w: header: %w", ErrCheckpointFormat, err)
	}
	if [4]byte(head[:4]) != checkpointMagic {
		return nil, fmt.Errorf("%w: bad magic %q", ErrCheckpointFormat, head[:4])
	}
	n := binary.LittleEndian.Uint32(head[4:])
	if n > maxCheckpointLen {
		return nil, fmt.Errorf("%w: %d elements", ErrCheckpointFormat, n)
	}
	vector := make([]int, n)
	var word [4]byte
	for i := range vector {
		if _, err := io.ReadFull(br, word[:]); err != nil {
			return nil, fmt.Errorf("%w: element %d: %w", ErrCheckpointFormat, i, err)
		}
		vector[i] = int(int32(binary.LittleEndian.Uint32(word[:])))
	}

	return vector, nil
}

// FileCheckpoint returns a CheckpointFunc that replaces the file at path
// atomically on every call.
func FileCheckpoint(path string) CheckpointFunc {
	return func(vector []int) (err error) {
		tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*")
		if err != nil {
			return err
		}
		defer func() {
			if err != nil {
				_ = os.Remove(tmp.Name())
			}
		}()
		if err = WriteCheckpoint(tmp, vector); err != nil {
			_ = tmp.Close()
			return err
		}
		if err = tmp.Close(); err != nil {
			return err
		}

		return os.Rename(tmp.Name(), path)
	}
}

// LoadCheckpoint reads the checkpoint file at path.
func LoadCheckpoint(path string) ([]int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	v, err := ReadCheckpoint(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return v, nil
}
