// SPDX-License-Identifier: MIT
//
// Package ingest defines the external-collaborator record shapes each
// pipeline stage consumes — the Network Builder's polyline iterator,
// the Merger's polyline iterator, and the settlement table — plus
// JSON decoders for each. Decoding a malformed input file is an input
// error (the whole stage fails); a well-formed but degenerate record
// (too few points, an unknown classification) is the consuming
// stage's concern to skip and count, not ingest's.
package ingest
