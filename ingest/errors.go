// SPDX-License-Identifier: MIT
package ingest

import "errors"

// ErrDuplicateSettlementName indicates the settlement table violates
// its primary-key contract: two rows share the same Name.
var ErrDuplicateSettlementName = errors.New("ingest: duplicate settlement name")
