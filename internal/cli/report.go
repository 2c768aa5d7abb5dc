package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/lvlath-euclid/tsp"
)

// ErrUnknownMode is returned for a positional argument other than "benchmark".
var ErrUnknownMode = errors.New("unknown mode")

// Mode selects what the report contains.
type Mode int

const (
	// ModeRoute prints the route, one vertex index per line.
	ModeRoute Mode = iota

	// ModeBenchmark prints only the total tour length.
	ModeBenchmark
)

const benchmarkArg = "benchmark"

func (m Mode) String() string {
	if m == ModeBenchmark {
		return benchmarkArg
	}
	return "route"
}

// parseMode maps the optional positional argument to a Mode.
func parseMode(args []string) (Mode, error) {
	switch {
	case len(args) == 0:
		return ModeRoute, nil
	case len(args) == 1 && args[0] == benchmarkArg:
		return ModeBenchmark, nil
	default:
		return ModeRoute, fmt.Errorf("%w: %q (only %q is accepted)", ErrUnknownMode, args[0], benchmarkArg)
	}
}

// writeReport renders res to w in the requested mode.
func writeReport(w io.Writer, mode Mode, res tsp.Result) error {
	bw := bufio.NewWriter(w)
	buf := make([]byte, 0, 24)

	switch mode {
	case ModeBenchmark:
		buf = strconv.AppendInt(buf[:0], int64(res.Length), 10)
		buf = append(buf, '\n')
		if _, err := bw.Write(buf); err != nil {
			return err
		}
	default:
		for _, v := range res.Route {
			buf = strconv.AppendInt(buf[:0], int64(v), 10)
			buf = append(buf, '\n')
			if _, err := bw.Write(buf); err != nil {
				return err
			}
		}
	}

	return bw.Flush()
}
