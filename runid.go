package globaltables

import (
	"crypto/rand"
	"fmt"

	"github.com/mr-tron/base58"
)

// newRunID returns a short opaque identifier used to correlate the log lines
// of a single orchestrator run.
func newRunID() (string, error) {
	buf := make([]byte, 8)

	_, err := rand.Read(buf)
	if err != nil {
		return "", fmt.Errorf("failed to generate run id: %w", err)
	}

	return base58.Encode(buf), nil
}
