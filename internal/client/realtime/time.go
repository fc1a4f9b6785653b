package realtime

import "time"

// parseEventTime parses the timestamp format the backend puts into
// push payloads (RFC 3339, sometimes without a fractional part)
func parseEventTime(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339Nano, raw); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, raw)
}
