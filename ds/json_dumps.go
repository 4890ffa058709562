package ds

import (
	"encoding/json"
	"fmt"
)

// DumpJSON renders t for error messages and debug output; it never fails.
func DumpJSON[T any](t T) string {
	tBytes, err := json.Marshal(t)
	if err != nil {
		return fmt.Errorf("DumpJSON error %w", err).Error()
	}

	return string(tBytes)
}
