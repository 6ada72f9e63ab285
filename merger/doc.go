// SPDX-License-Identifier: MIT
// Package: railnet/merger
//
// The Multi-source Merger stage: integrates a second polyline dataset
// into an existing network.Graph without producing parallel
// duplicates or floating subgraphs.
//
// Design contract (strict):
//   - One orchestrator: Merge(cfg, g, polylines). Mutates g in place and
//     returns Stats; g must already have at least one node.
//   - Determinism: same g, same polyline order, same cfg => identical result.
//   - Safety: never panic; Merge returns ErrNoMainComponent and leaves g
//     unchanged if g started empty.
package merger
