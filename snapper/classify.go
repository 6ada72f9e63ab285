// SPDX-License-Identifier: MIT
package snapper

import "github.com/jjax07/sk-railway-network/internal/config"

// classify maps a snap distance in meters to a SnapQuality using the
// configured on/near/distant kilometer thresholds.
func classify(cfg *config.Config, distanceM float64) SnapQuality {
	km := distanceM / 1000
	switch {
	case km <= cfg.OnNetworkKm:
		return OnNetwork
	case km <= cfg.NearNetworkKm:
		return NearNetwork
	case km <= cfg.DistantKm:
		return Distant
	default:
		return OffNetwork
	}
}
