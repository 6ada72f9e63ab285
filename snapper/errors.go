// SPDX-License-Identifier: MIT
package snapper

import (
	"errors"
	"fmt"
)

// ErrEmptyGraph is returned by Snap when the graph has no nodes to
// snap against.
var ErrEmptyGraph = errors.New("snapper: graph has no nodes")

func wrapf(method string, err error) error {
	return fmt.Errorf("%s: %w", method, err)
}
