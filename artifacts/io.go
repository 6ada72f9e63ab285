// SPDX-License-Identifier: MIT
package artifacts

import (
	"encoding/json"
	"os"
)

// WriteJSON marshals v as pretty-printed (2-space indent) JSON and
// writes it to path, creating or truncating the file.
func WriteJSON(path string, v interface{}) error {
	f, err := os.Create(path)
	if err != nil {
		return wrapf("WriteJSON", err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return wrapf("WriteJSON", err)
	}
	return nil
}

// ReadJSON reads path and unmarshals it into v.
func ReadJSON(path string, v interface{}) error {
	f, err := os.Open(path)
	if err != nil {
		return wrapf("ReadJSON", err)
	}
	defer f.Close()

	if err := json.NewDecoder(f).Decode(v); err != nil {
		return wrapf("ReadJSON", err)
	}
	return nil
}
