// SPDX-License-Identifier: MIT
package artifacts

import (
	"errors"
	"fmt"
)

// ErrSettlementNotFound indicates a connection referenced a settlement
// name absent from the mapping's settlements table.
var ErrSettlementNotFound = errors.New("artifacts: settlement not found")

// wrapf attaches method context to err while preserving it for errors.Is.
func wrapf(method string, err error) error {
	return fmt.Errorf("artifacts.%s: %w", method, err)
}
