// SPDX-License-Identifier: MIT
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jjax07/sk-railway-network/artifacts"
	"github.com/jjax07/sk-railway-network/internal/config"
	"github.com/jjax07/sk-railway-network/ingest"
	"github.com/jjax07/sk-railway-network/merger"
)

type mergeOpts struct {
	networkIn  string
	tracksIn   string
	input      string
	networkOut string
	tracksOut  string
	mergeTolerance    float64
	junctionTolerance float64
}

func (c *CLI) mergeCommand() *cobra.Command {
	opts := mergeOpts{
		networkIn:  "railway_network.json",
		tracksIn:   "railway_tracks.json",
		networkOut: "railway_network.json",
		tracksOut:  "railway_tracks.json",
		mergeTolerance:    100,
		junctionTolerance: 500,
	}

	cmd := &cobra.Command{
		Use:   "merge",
		Short: "Stitch an additional operator's polylines into an existing network",
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runMerge(cmd, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.networkIn, "network-in", opts.networkIn, "path to the existing railway_network artifact")
	flags.StringVar(&opts.tracksIn, "tracks-in", opts.tracksIn, "path to the existing railway_tracks artifact")
	flags.StringVar(&opts.input, "input", "", "path to the inbound merger polyline JSON (required)")
	flags.StringVar(&opts.networkOut, "network-out", opts.networkOut, "path to write the updated railway_network artifact")
	flags.StringVar(&opts.tracksOut, "tracks-out", opts.tracksOut, "path to write the updated railway_tracks artifact")
	flags.Float64Var(&opts.mergeTolerance, "merge-tolerance", opts.mergeTolerance, "chain-stitching distance, in great-circle meters")
	flags.Float64Var(&opts.junctionTolerance, "junction-tolerance", opts.junctionTolerance, "cross-dataset node-reuse distance, in great-circle meters")
	cmd.MarkFlagRequired("input")

	return cmd
}

func (c *CLI) runMerge(cmd *cobra.Command, opts mergeOpts) error {
	logger := loggerFromContext(cmd.Context())
	prog := newProgress(logger)

	cfg := config.New(append(baseConfigOptions(),
		config.WithMergeTolerance(opts.mergeTolerance),
		config.WithJunctionTolerance(opts.junctionTolerance),
	)...)

	var nw artifacts.RailwayNetwork
	if err := artifacts.ReadJSON(opts.networkIn, &nw); err != nil {
		return fmt.Errorf("merge: %w", err)
	}
	var tracks artifacts.RailwayTracks
	if err := artifacts.ReadJSON(opts.tracksIn, &tracks); err != nil {
		return fmt.Errorf("merge: %w", err)
	}
	g, err := artifacts.LoadGraph(nw, tracks, cfg.Projection.Forward)
	if err != nil {
		return fmt.Errorf("merge: %w", err)
	}

	f, err := os.Open(opts.input)
	if err != nil {
		return fmt.Errorf("merge: %w", err)
	}
	defer f.Close()

	records, err := ingest.DecodeMergerPolylineRecords(f)
	if err != nil {
		return fmt.Errorf("merge: %w", err)
	}

	stats, err := merger.Merge(cfg, g, ingest.NewSliceMergerPolylineIterator(records))
	if err != nil {
		return fmt.Errorf("merge: %w", err)
	}
	logger.Infof("merged: %d chains, %d edges created, %d kept existing",
		stats.ChainsAssembled, stats.EdgesCreated, stats.EdgesSkippedExisting)

	meta := nw.Metadata
	if err := artifacts.WriteJSON(opts.networkOut, artifacts.BuildRailwayNetwork(meta, g)); err != nil {
		return fmt.Errorf("merge: %w", err)
	}
	if err := artifacts.WriteJSON(opts.tracksOut, artifacts.BuildRailwayTracks(meta, g, cfg.Projection.Inverse)); err != nil {
		return fmt.Errorf("merge: %w", err)
	}

	prog.done("merge complete")
	return nil
}
