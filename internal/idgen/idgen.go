// Package idgen generates the identifiers handed out by the service:
// display identifiers for saved configurations and short correlation IDs
// for HTTP requests.
package idgen

import (
	"fmt"
	"sync"
	"time"

	nanoid "github.com/matoous/go-nanoid/v2"
)

// ConfigurationPrefix is prepended to every configuration identifier.
const ConfigurationPrefix = "LOCAL-"

var (
	mu     sync.Mutex
	lastMS int64
)

// Configuration returns a configuration identifier of the form
// LOCAL-<epoch-milliseconds>. Two calls within the same millisecond would
// collide on the raw timestamp, so a process-wide monotonic guard bumps the
// value until it exceeds the previous one. The identifier is a display and
// export handle, not a security boundary.
func Configuration(now time.Time) string {
	ms := now.UnixMilli()

	mu.Lock()
	if ms <= lastMS {
		ms = lastMS + 1
	}
	lastMS = ms
	mu.Unlock()

	return fmt.Sprintf("%s%d", ConfigurationPrefix, ms)
}

// requestAlphabet is the character set for request correlation IDs.
const requestAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// requestLength is the number of random characters in a request ID.
const requestLength = 10

// Request returns a short random ID used to correlate log lines for one
// HTTP request.
func Request() (string, error) {
	id, err := nanoid.Generate(requestAlphabet, requestLength)
	if err != nil {
		return "", fmt.Errorf("idgen: %w", err)
	}
	return id, nil
}
