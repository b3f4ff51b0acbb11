package ds

import (
	"fmt"

	"github.com/goccy/go-json"
)

// DumpJSON renders t as compact JSON for log lines. Marshalling failures are
// returned as text instead of an error.
func DumpJSON[T any](t T) string {
	tBytes, err := json.Marshal(t)
	if err != nil {
		return fmt.Errorf("DumpJSON error %w", err).Error()
	}

	return string(tBytes)
}
