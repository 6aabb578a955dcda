package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/scanline-geo/ytess/point"
	"github.com/scanline-geo/ytess/region"
	"github.com/scanline-geo/ytess/tessellate"
	"github.com/urfave/cli/v3"
)

func main() {
	cmd := &cli.Command{
		Name:      "ytess",
		Usage:     "Decomposes polygon rings into y-monotone regions and reports self-intersections",
		UsageText: "ytess --input <file>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "input",
				Usage:    "Path to a JSON file of rings (an array of arrays of [x,y] pairs); reads stdin if omitted",
				Aliases:  []string{"i"},
				OnlyOnce: true,
			},
		},
		HideVersion: true,
		Action:      run,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

type ringCoords [][][2]float64

type outputVertex struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	IsLeft bool    `json:"isLeft"`
}

type outputRegion struct {
	Vertices []outputVertex `json:"vertices"`
}

type output struct {
	MonotoneRegions    []outputRegion `json:"monotoneRegions"`
	IntersectionPoints []point.Point  `json:"intersectionPoints"`
}

func run(_ context.Context, cmd *cli.Command) error {
	var r io.Reader = os.Stdin
	if path := cmd.String("input"); path != "" {
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	}

	var raw ringCoords
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return fmt.Errorf("decoding rings: %w", err)
	}

	rings := make([][]point.Point, len(raw))
	for i, ring := range raw {
		pts := make([]point.Point, len(ring))
		for j, xy := range ring {
			pts[j] = point.New(xy[0], xy[1])
		}
		rings[i] = pts
	}

	t := tessellate.New(rings)
	for t.Step() {
	}

	out := output{IntersectionPoints: t.IntersectionPoints()}
	for _, rgn := range t.MonotoneRegions() {
		out.MonotoneRegions = append(out.MonotoneRegions, toOutputRegion(rgn))
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func toOutputRegion(r *region.Region) outputRegion {
	vs := make([]outputVertex, len(r.Vertices))
	for i, v := range r.Vertices {
		vs[i] = outputVertex{X: v.X, Y: v.Y, IsLeft: v.IsLeft}
	}
	return outputRegion{Vertices: vs}
}
