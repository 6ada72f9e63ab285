// SPDX-License-Identifier: MIT
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jjax07/sk-railway-network/artifacts"
	"github.com/jjax07/sk-railway-network/internal/config"
	"github.com/jjax07/sk-railway-network/router"
	"github.com/jjax07/sk-railway-network/snapper"
)

type routeOpts struct {
	networkIn     string
	tracksIn      string
	mappingIn     string
	connectionsIn string
	connectionsOut string
}

func (c *CLI) routeCommand() *cobra.Command {
	opts := routeOpts{
		networkIn:      "railway_network.json",
		tracksIn:       "railway_tracks.json",
		mappingIn:      "settlement_network_mapping.json",
		connectionsIn:  "settlement_connections.json",
		connectionsOut: "settlement_connections.json",
	}

	cmd := &cobra.Command{
		Use:   "route",
		Short: "Compute railway-distance and geometry for every settlement pair already connected by great-circle distance",
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRoute(cmd, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.networkIn, "network-in", opts.networkIn, "path to the railway_network artifact")
	flags.StringVar(&opts.tracksIn, "tracks-in", opts.tracksIn, "path to the railway_tracks artifact")
	flags.StringVar(&opts.mappingIn, "mapping-in", opts.mappingIn, "path to the settlement_network_mapping artifact")
	flags.StringVar(&opts.connectionsIn, "connections-in", opts.connectionsIn, "path to the inbound settlement_connections artifact")
	flags.StringVar(&opts.connectionsOut, "connections-out", opts.connectionsOut, "path to write the updated settlement_connections artifact")

	return cmd
}

func (c *CLI) runRoute(cmd *cobra.Command, opts routeOpts) error {
	logger := loggerFromContext(cmd.Context())
	prog := newProgress(logger)

	cfg := config.New(baseConfigOptions()...)

	var nw artifacts.RailwayNetwork
	if err := artifacts.ReadJSON(opts.networkIn, &nw); err != nil {
		return fmt.Errorf("route: %w", err)
	}
	var tracks artifacts.RailwayTracks
	if err := artifacts.ReadJSON(opts.tracksIn, &tracks); err != nil {
		return fmt.Errorf("route: %w", err)
	}
	g, err := artifacts.LoadGraph(nw, tracks, cfg.Projection.Forward)
	if err != nil {
		return fmt.Errorf("route: %w", err)
	}

	var mapping artifacts.SettlementNetworkMapping
	if err := artifacts.ReadJSON(opts.mappingIn, &mapping); err != nil {
		return fmt.Errorf("route: %w", err)
	}
	snaps := make(map[string]snapper.SnapRecord, len(mapping.Mappings))
	for _, m := range mapping.Mappings {
		record, err := m.ToSnapRecord(g)
		if err != nil {
			return fmt.Errorf("route: %w", err)
		}
		snaps[m.Settlement] = record
	}

	var sc artifacts.SettlementConnections
	if err := artifacts.ReadJSON(opts.connectionsIn, &sc); err != nil {
		return fmt.Errorf("route: %w", err)
	}

	pairs := collectPairs(sc)
	logger.Infof("routing %d settlement pairs", len(pairs))

	results := router.RouteAll(cfg, g, snaps, pairs)
	for _, res := range results {
		if res.DistanceKm != nil {
			artifacts.ApplyRouteDistances(&sc, res.Source, res.Target, *res.DistanceKm)
		}
	}

	if err := artifacts.WriteJSON(opts.connectionsOut, sc); err != nil {
		return fmt.Errorf("route: %w", err)
	}

	prog.done("route complete")
	return nil
}

// collectPairs flattens settlement_connections' symmetric connections
// map into a deduplicated pair list, keyed by unordered settlement
// pair, so each pair is routed once rather than twice.
func collectPairs(sc artifacts.SettlementConnections) []router.Pair {
	seen := make(map[[2]string]struct{})
	var pairs []router.Pair

	for source, conns := range sc.Connections {
		for _, conn := range conns {
			key := [2]string{source, conn.To}
			if key[0] > key[1] {
				key[0], key[1] = key[1], key[0]
			}
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}

			distance := conn.DistanceKm
			pairs = append(pairs, router.Pair{
				Source:             source,
				Target:             conn.To,
				ExistingDistanceKm: &distance,
			})
		}
	}

	return pairs
}
