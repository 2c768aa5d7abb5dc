package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/jbeda/geom"
)

// ErrMalformedInput reports a point file that does not match the
// "N" then N × "x y" layout. The wrapped message carries the line number.
var ErrMalformedInput = errors.New("malformed input")

// maxPrealloc caps the capacity reserved from an untrusted point count.
const maxPrealloc = 1 << 16

// readPoints parses the point format:
//
//	line 1:        N
//	lines 2..N+1:  x y
//
// Fields may be separated by any run of spaces or tabs. Trailing blank lines
// are allowed; anything else after the N-th point is an error. Parsing stops
// at the first problem so no partially read instance is ever returned.
func readPoints(r io.Reader) ([]geom.Coord, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), 1<<20)
	line := 0

	malformed := func(format string, args ...interface{}) error {
		return fmt.Errorf("%w: line %d: %s", ErrMalformedInput, line, fmt.Sprintf(format, args...))
	}
	scanErr := func() error {
		if err := sc.Err(); err != nil {
			return fmt.Errorf("read input: %w", err)
		}
		return nil
	}

	if !sc.Scan() {
		if err := scanErr(); err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("%w: missing point count", ErrMalformedInput)
	}
	line++
	header := strings.Fields(sc.Text())
	if len(header) != 1 {
		return nil, malformed("want a single point count, got %d fields", len(header))
	}
	n, err := strconv.Atoi(header[0])
	if err != nil {
		return nil, malformed("invalid point count %q", header[0])
	}
	if n < 0 {
		return nil, malformed("negative point count %d", n)
	}

	pts := make([]geom.Coord, 0, min(n, maxPrealloc))
	for len(pts) < n {
		if !sc.Scan() {
			if err = scanErr(); err != nil {
				return nil, err
			}
			return nil, fmt.Errorf("%w: want %d points, got %d", ErrMalformedInput, n, len(pts))
		}
		line++
		f := strings.Fields(sc.Text())
		if len(f) != 2 {
			return nil, malformed("want \"x y\", got %d fields", len(f))
		}
		var p geom.Coord
		if p.X, err = parseCoord(f[0]); err != nil {
			return nil, malformed("x: %v", err)
		}
		if p.Y, err = parseCoord(f[1]); err != nil {
			return nil, malformed("y: %v", err)
		}
		pts = append(pts, p)
	}

	for sc.Scan() {
		line++
		if strings.TrimSpace(sc.Text()) != "" {
			return nil, malformed("unexpected data after %d points", n)
		}
	}
	if err = scanErr(); err != nil {
		return nil, err
	}

	return pts, nil
}

// parseCoord parses one finite coordinate.
func parseCoord(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q", s)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("non-finite number %q", s)
	}
	return v, nil
}
