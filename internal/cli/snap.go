// SPDX-License-Identifier: MIT
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jjax07/sk-railway-network/artifacts"
	"github.com/jjax07/sk-railway-network/internal/config"
	"github.com/jjax07/sk-railway-network/ingest"
	"github.com/jjax07/sk-railway-network/snapper"
)

type snapOpts struct {
	networkIn    string
	tracksIn     string
	settlements  string
	mappingOut   string
	onNetworkKm  float64
	nearNetworkKm float64
	distantKm    float64
}

func (c *CLI) snapCommand() *cobra.Command {
	opts := snapOpts{
		networkIn:     "railway_network.json",
		tracksIn:      "railway_tracks.json",
		mappingOut:    "settlement_network_mapping.json",
		onNetworkKm:   5,
		nearNetworkKm: 15,
		distantKm:     50,
	}

	cmd := &cobra.Command{
		Use:   "snap",
		Short: "Snap a table of settlements onto the network graph",
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runSnap(cmd, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.networkIn, "network-in", opts.networkIn, "path to the railway_network artifact")
	flags.StringVar(&opts.tracksIn, "tracks-in", opts.tracksIn, "path to the railway_tracks artifact")
	flags.StringVar(&opts.settlements, "settlements", "", "path to the settlement table JSON (required)")
	flags.StringVar(&opts.mappingOut, "mapping-out", opts.mappingOut, "path to write the settlement_network_mapping artifact")
	flags.Float64Var(&opts.onNetworkKm, "on-network-km", opts.onNetworkKm, "on-network snap quality threshold, in km")
	flags.Float64Var(&opts.nearNetworkKm, "near-network-km", opts.nearNetworkKm, "near-network snap quality threshold, in km")
	flags.Float64Var(&opts.distantKm, "distant-km", opts.distantKm, "distant snap quality threshold, in km")
	cmd.MarkFlagRequired("settlements")

	return cmd
}

func (c *CLI) runSnap(cmd *cobra.Command, opts snapOpts) error {
	logger := loggerFromContext(cmd.Context())
	prog := newProgress(logger)

	cfg := config.New(append(baseConfigOptions(),
		config.WithSnapQualityThresholds(opts.onNetworkKm, opts.nearNetworkKm, opts.distantKm),
	)...)

	var nw artifacts.RailwayNetwork
	if err := artifacts.ReadJSON(opts.networkIn, &nw); err != nil {
		return fmt.Errorf("snap: %w", err)
	}
	var tracks artifacts.RailwayTracks
	if err := artifacts.ReadJSON(opts.tracksIn, &tracks); err != nil {
		return fmt.Errorf("snap: %w", err)
	}
	g, err := artifacts.LoadGraph(nw, tracks, cfg.Projection.Forward)
	if err != nil {
		return fmt.Errorf("snap: %w", err)
	}

	f, err := os.Open(opts.settlements)
	if err != nil {
		return fmt.Errorf("snap: %w", err)
	}
	defer f.Close()

	settlements, err := ingest.DecodeSettlementRecords(f)
	if err != nil {
		return fmt.Errorf("snap: %w", err)
	}

	records, err := snapper.Snap(cfg, g, settlements)
	if err != nil {
		return fmt.Errorf("snap: %w", err)
	}
	logger.Infof("snapped %d settlements", len(records))

	meta := artifacts.MappingMetadata{
		OnNetworkKm:   opts.onNetworkKm,
		NearNetworkKm: opts.nearNetworkKm,
		DistantKm:     opts.distantKm,
	}
	if err := artifacts.WriteJSON(opts.mappingOut, artifacts.BuildSettlementNetworkMapping(meta, records)); err != nil {
		return fmt.Errorf("snap: %w", err)
	}

	prog.done("snap complete")
	return nil
}
