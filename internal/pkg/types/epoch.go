package types

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// jsonNull is the literal JSON null value.
var jsonNull = []byte("null")

// EpochTime is a point in time that is encoded in JSON as an integer count of
// milliseconds since 1970-01-01T00:00:00Z (e.g., 1700000000123) rather than an
// RFC 3339 string. The zero value is encoded as null.
type EpochTime struct {
	time.Time
}

// NewEpochTime wraps t, truncated to millisecond precision and converted to UTC.
func NewEpochTime(t time.Time) EpochTime {
	return EpochTime{Time: t.UTC().Truncate(time.Millisecond)}
}

// MarshalJSON encodes the time as milliseconds since the Unix epoch.
func (e EpochTime) MarshalJSON() ([]byte, error) {
	if e.IsZero() {
		return jsonNull, nil
	}

	return strconv.AppendInt(nil, e.UnixMilli(), 10), nil
}

// UnmarshalJSON decodes a millisecond epoch integer. JSON null leaves the zero value.
func (e *EpochTime) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, jsonNull) {
		*e = EpochTime{}
		return nil
	}

	var ms int64
	if err := json.Unmarshal(data, &ms); err != nil {
		return fmt.Errorf("invalid millisecond epoch: %w", err)
	}

	*e = EpochTime{Time: time.UnixMilli(ms).UTC()}
	return nil
}
