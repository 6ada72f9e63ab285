// SPDX-License-Identifier: MIT
package artifacts

import (
	"fmt"
	"strconv"
	"strings"
)

// nodeIDString renders a network.Graph node's dense internal integer
// index as the stable "n<integer>" string spec.md §3 and §9 require at
// every artifact boundary — the external id the out-of-scope
// visualization layer consumes, ported from
// original_source/scripts/build_railway_network.py's
// `new_id = f"n{node_index}"`.
func nodeIDString(id int) string {
	return fmt.Sprintf("n%d", id)
}

// parseNodeID recovers the dense integer index LoadGraph needs from a
// persisted "n<integer>" id string.
func parseNodeID(s string) (int, error) {
	n, ok := strings.CutPrefix(s, "n")
	if !ok {
		return 0, fmt.Errorf("artifacts: node id %q does not have the n<integer> form", s)
	}
	id, err := strconv.Atoi(n)
	if err != nil {
		return 0, fmt.Errorf("artifacts: node id %q: %w", s, err)
	}
	return id, nil
}
