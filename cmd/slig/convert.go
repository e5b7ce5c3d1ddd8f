package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/rectgraph/slig/region"
	"github.com/rectgraph/slig/regionio"
	"github.com/rectgraph/slig/rig"
)

func runConvert(args []string) int {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)
	src := fs.String("src", "-", "input path (\"-\" for stdin)")
	out := fs.String("out", "-", "output path (\"-\" for stdout)")
	srckind := fs.String("srckind", kindRegions, "input object type: regions|rigraph")
	outkind := fs.String("outkind", kindRIGraph, "output object type: regions|rigraph")
	shape := fs.String("shape", "node_link", "RIG wire shape when outkind=rigraph: node_link|adjacency")
	if err := fs.Parse(args); err != nil {
		return exitIOFailure
	}

	if err := validateKind(*srckind); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return exitIOFailure
	}
	if err := validateKind(*outkind); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return exitIOFailure
	}

	raw, err := readAll(*src)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return exitIOFailure
	}

	set, graph, err := decodeInput(*srckind, raw)
	if err != nil {
		return classifyDecodeError(err)
	}

	outRaw, err := encodeOutput(*outkind, *shape, set, graph)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return exitDimensionError
	}

	if err := writeAll(*out, outRaw); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return exitIOFailure
	}
	return exitOK
}

// decodeInput parses raw as the named kind, returning whichever of
// (set, graph) resulted; the other is nil.
func decodeInput(kind string, raw []byte) (*region.Set, *rig.Graph, error) {
	switch kind {
	case kindRegions:
		set, err := regionio.UnmarshalRegionSet(raw)
		return set, nil, err
	case kindRIGraph:
		g, err := regionio.UnmarshalRIG(raw)
		return nil, g, err
	default:
		return nil, nil, errBadKind
	}
}

// encodeOutput produces outkind's JSON form from whichever of (set, graph)
// decodeInput populated, building the missing representation on demand
// (Build for regions->rigraph, node extraction for rigraph->regions).
func encodeOutput(kind, shape string, set *region.Set, graph *rig.Graph) ([]byte, error) {
	switch kind {
	case kindRegions:
		if set == nil {
			set = regionsFromGraph(graph)
		}
		return regionio.MarshalRegionSet(set)
	case kindRIGraph:
		if graph == nil {
			g, err := rig.Build(set)
			if err != nil {
				return nil, err
			}
			graph = g
		}
		return regionio.MarshalRIG(graph, shape)
	default:
		return nil, errBadKind
	}
}

func regionsFromGraph(g *rig.Graph) *region.Set {
	set, _ := region.NewSet(g.ID, g.Dimension, nil)
	for _, r := range g.Regions() {
		_ = set.Add(r)
	}
	return set
}

func classifyDecodeError(err error) int {
	if errors.Is(err, region.ErrDimensionMismatch) || errors.Is(err, region.ErrOutOfBounds) {
		return exitDimensionError
	}
	if errors.Is(err, regionio.ErrLengthMismatch) || errors.Is(err, regionio.ErrUnknownGraphShape) || errors.Is(err, regionio.ErrMissingFactors) {
		return exitMalformedJSON
	}
	fmt.Fprintln(os.Stderr, err)
	return exitMalformedJSON
}
