// SPDX-License-Identifier: MIT
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jjax07/sk-railway-network/artifacts"
	"github.com/jjax07/sk-railway-network/builder"
	"github.com/jjax07/sk-railway-network/internal/config"
	"github.com/jjax07/sk-railway-network/internal/geo"
	"github.com/jjax07/sk-railway-network/ingest"
)

type buildNetworkOpts struct {
	input       string
	networkOut  string
	tracksOut   string
	junctionGrid float64
	snapTolerance float64
	minLon, minLat, maxLon, maxLat float64
}

func (c *CLI) buildNetworkCommand() *cobra.Command {
	opts := buildNetworkOpts{
		networkOut:    "railway_network.json",
		tracksOut:     "railway_tracks.json",
		junctionGrid:  10,
		snapTolerance: 500,
		minLon:        -180, maxLon: 180, minLat: -90, maxLat: 90,
	}

	cmd := &cobra.Command{
		Use:   "build-network",
		Short: "Assemble a railway network graph from source polylines",
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runBuildNetwork(cmd, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.input, "input", "", "path to the inbound polyline JSON (required)")
	flags.StringVar(&opts.networkOut, "network-out", opts.networkOut, "path to write the railway_network artifact")
	flags.StringVar(&opts.tracksOut, "tracks-out", opts.tracksOut, "path to write the railway_tracks artifact")
	flags.Float64Var(&opts.junctionGrid, "junction-grid", opts.junctionGrid, "Pass-1 junction-detection grid cell size, in meters")
	flags.Float64Var(&opts.snapTolerance, "snap-tolerance", opts.snapTolerance, "node-reuse distance, in meters")
	flags.Float64Var(&opts.minLon, "min-lon", opts.minLon, "accept-region minimum longitude")
	flags.Float64Var(&opts.minLat, "min-lat", opts.minLat, "accept-region minimum latitude")
	flags.Float64Var(&opts.maxLon, "max-lon", opts.maxLon, "accept-region maximum longitude")
	flags.Float64Var(&opts.maxLat, "max-lat", opts.maxLat, "accept-region maximum latitude")
	cmd.MarkFlagRequired("input")

	return cmd
}

func (c *CLI) runBuildNetwork(cmd *cobra.Command, opts buildNetworkOpts) error {
	logger := loggerFromContext(cmd.Context())
	prog := newProgress(logger)

	f, err := os.Open(opts.input)
	if err != nil {
		return fmt.Errorf("build-network: %w", err)
	}
	defer f.Close()

	records, err := ingest.DecodePolylineRecords(f)
	if err != nil {
		return fmt.Errorf("build-network: %w", err)
	}

	region := geo.Rect{MinLon: opts.minLon, MinLat: opts.minLat, MaxLon: opts.maxLon, MaxLat: opts.maxLat}
	cfg := config.New(append(baseConfigOptions(),
		config.WithAcceptRegion(region),
		config.WithJunctionGridSize(opts.junctionGrid),
		config.WithSnapTolerance(opts.snapTolerance),
	)...)

	g, stats, err := builder.Build(cfg, ingest.NewSlicePolylineIterator(records))
	if err != nil {
		return fmt.Errorf("build-network: %w", err)
	}
	logger.Infof("built network: %d nodes, %d edges (skipped %d degenerate, %d out-of-region)",
		g.NodeCount(), g.EdgeCount(), stats.SkippedDegenerate, stats.SkippedOutOfRegion)

	meta := artifacts.NetworkMetadata{
		Description:    "Saskatchewan historical railway network",
		Source:         opts.input,
		Projection:     "Lambert Conformal Conic (spherical, SK)",
		Units:          "meters",
		SnapToleranceM: opts.snapTolerance,
	}

	if err := artifacts.WriteJSON(opts.networkOut, artifacts.BuildRailwayNetwork(meta, g)); err != nil {
		return fmt.Errorf("build-network: %w", err)
	}
	if err := artifacts.WriteJSON(opts.tracksOut, artifacts.BuildRailwayTracks(meta, g, cfg.Projection.Inverse)); err != nil {
		return fmt.Errorf("build-network: %w", err)
	}

	prog.done("build-network complete")
	return nil
}
