package pairlist

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"unsafe"

	"go.uber.org/zap"
)

func yoloString(b []byte) string {
	return *((*string)(unsafe.Pointer(&b)))
}

var (
	// ErrMalformedLine wraps every reason a line is skipped.
	ErrMalformedLine = errors.New("malformed line")
	ErrTokenCount    = fmt.Errorf("%w: want 2 tokens", ErrMalformedLine)
)

// Columns holds the left and right values of every record, in file order.
type Columns struct {
	Left  []uint64
	Right []uint64
}

// Sorted returns ascending copies of both columns. The receiver is untouched.
func (c Columns) Sorted() (left, right []uint64) {
	left = append([]uint64(nil), c.Left...)
	right = append([]uint64(nil), c.Right...)

	sort.Slice(left, func(i, j int) bool { return left[i] < left[j] })
	sort.Slice(right, func(i, j int) bool { return right[i] < right[j] })

	return left, right
}

// Frequencies counts the right column.
func (c Columns) Frequencies() FreqMap {
	return NewFreqMap(c.Right)
}

// Open reads the file at path until EOF.
func Open(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	buf, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	return buf, nil
}

// Parse turns raw file contents into columns. Lines that are not exactly two
// unsigned integers are skipped and reported to log.
func Parse(raw []byte, log *zap.Logger) Columns {
	if log == nil {
		log = zap.NewNop()
	}

	var c Columns
	for n := 1; len(raw) > 0; n++ {
		var line []byte
		idx := bytes.IndexByte(raw, '\n')
		if idx == -1 {
			line, raw = raw, nil
		} else {
			line, raw = raw[:idx], raw[idx+1:]
		}
		line = bytes.TrimSuffix(line, []byte{'\r'})

		l, r, err := parseLine(line)
		if err != nil {
			log.Warn("skipping malformed line",
				zap.Int("line", n),
				zap.String("text", string(line)),
				zap.Error(err),
			)
			continue
		}

		c.Left = append(c.Left, l)
		c.Right = append(c.Right, r)
	}

	return c
}

func parseLine(raw []byte) (left, right uint64, err error) {
	fields := bytes.Fields(raw)
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("%w, got %d", ErrTokenCount, len(fields))
	}

	left, err = strconv.ParseUint(yoloString(fields[0]), 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: parse left: %w", ErrMalformedLine, err)
	}

	right, err = strconv.ParseUint(yoloString(fields[1]), 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: parse right: %w", ErrMalformedLine, err)
	}

	return left, right, nil
}

// Read loads and parses the file at path.
func Read(path string, log *zap.Logger) (Columns, error) {
	raw, err := Open(path)
	if err != nil {
		return Columns{}, err
	}

	return Parse(raw, log), nil
}

// ReadSorted returns both columns of the file at path, each sorted ascending,
// ready for Distance.
func ReadSorted(path string, log *zap.Logger) (left, right []uint64, err error) {
	c, err := Read(path, log)
	if err != nil {
		return nil, nil, err
	}

	left, right = c.Sorted()
	return left, right, nil
}

// ReadFrequencies returns the left column in file order and the frequency
// table of the right column, ready for Similarity.
func ReadFrequencies(path string, log *zap.Logger) ([]uint64, FreqMap, error) {
	c, err := Read(path, log)
	if err != nil {
		return nil, nil, err
	}

	return c.Left, c.Frequencies(), nil
}
