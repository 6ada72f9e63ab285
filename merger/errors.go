// SPDX-License-Identifier: MIT
package merger

import (
	"errors"
	"fmt"
)

// ErrNoMainComponent is returned when Merge is asked to integrate a
// polyline set into an empty graph: there is no pre-existing node to
// anchor a "main component" against, so the merge is refused outright
// and g is left untouched.
var ErrNoMainComponent = errors.New("merger: no main component (graph was empty before merge)")

func wrapf(method string, err error) error {
	return fmt.Errorf("%s: %w", method, err)
}
