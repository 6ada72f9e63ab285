// SPDX-License-Identifier: MIT
//
// errors.go — error wrapping for the builder package.
//
// Error policy (explicit and strict):
//   - Per-record failures (degenerate polylines, out-of-region bboxes) are
//     never returned as errors: they are skipped and counted in Stats.
//   - The only condition that aborts Build outright is an incomplete
//     config.Config (no projection); that sentinel lives in internal/config,
//     so callers already use errors.Is(err, config.ErrProjectionRequired)
//     without builder needing to expose a duplicate.
package builder

import "fmt"

// wrapf attaches method context to err while preserving it for
// errors.Is via %w.
func wrapf(method string, err error) error {
	return fmt.Errorf("%s: %w", method, err)
}
