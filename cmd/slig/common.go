package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/rectgraph/slig/interval"
	"github.com/rectgraph/slig/region"
)

const (
	kindRegions = "regions"
	kindRIGraph = "rigraph"
)

// errBadKind indicates a srckind/outkind/kind flag held something other
// than "regions" or "rigraph".
var errBadKind = errors.New("slig: kind must be \"regions\" or \"rigraph\"")

func validateKind(kind string) error {
	if kind != kindRegions && kind != kindRIGraph {
		return errBadKind
	}
	return nil
}

// parseBounds parses a "--bounds" value of the form "lo1,hi1;lo2,hi2;..."
// into a bounding Region, one "lo,hi" pair per axis.
func parseBounds(spec string) (region.Region, error) {
	axes := strings.Split(spec, ";")
	factors := make([]interval.Interval, len(axes))
	for i, axis := range axes {
		parts := strings.Split(axis, ",")
		if len(parts) != 2 {
			return region.Region{}, fmt.Errorf("slig: malformed --bounds axis %q", axis)
		}
		lo, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
		if err != nil {
			return region.Region{}, fmt.Errorf("slig: malformed --bounds axis %q: %w", axis, err)
		}
		hi, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
		if err != nil {
			return region.Region{}, fmt.Errorf("slig: malformed --bounds axis %q: %w", axis, err)
		}
		factors[i] = interval.New(lo, hi)
	}
	return region.FromIntervals("bounds", factors, nil)
}

// readAll reads path, or stdin when path is "-".
func readAll(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

// writeAll writes data to path, or stdout when path is "-".
func writeAll(path string, data []byte) error {
	if path == "-" {
		_, err := os.Stdout.Write(append(data, '\n'))
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
