package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/rectgraph/slig/generator"
	"github.com/rectgraph/slig/regionio"
)

func runGenerate(args []string) int {
	fs := flag.NewFlagSet("generate", flag.ContinueOnError)
	out := fs.String("out", "-", "output path for the generated region set (\"-\" for stdout)")
	count := fs.Int("count", 10, "number of regions to generate")
	bounds := fs.String("bounds", "0,100;0,100", "bounding region, \"lo,hi;lo,hi;...\" one pair per axis")
	sizepc := fs.Float64("sizepc", 0.1, "per-axis region size as a fraction of the bounds length")
	seed := fs.Int64("seed", 1, "RNG seed for reproducible generation")
	square := fs.Bool("square", false, "force every generated region to be a hypercube")
	if err := fs.Parse(args); err != nil {
		return exitIOFailure
	}

	boundsRegion, err := parseBounds(*bounds)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return exitDimensionError
	}

	opts := []generator.Option{generator.WithSeed(*seed), generator.WithSizePct(*sizepc)}
	if *square {
		opts = append(opts, generator.WithSquare())
	}
	gen, err := generator.New(boundsRegion, opts...)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return exitDimensionError
	}

	set, err := gen.Generate(*count)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return exitIOFailure
	}

	raw, err := regionio.MarshalRegionSet(set)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return exitMalformedJSON
	}
	if err := writeAll(*out, raw); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return exitIOFailure
	}
	return exitOK
}
