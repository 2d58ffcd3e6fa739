package models

import (
	"encoding/json"
	"time"
)

// Timestamp is a time.Time that round-trips through JSON as an RFC 3339
// string. The zero value is written as "" and "" reads back as zero, which
// matches the records written by earlier versions of the service.
type Timestamp struct {
	time.Time
}

// Now returns the current time as a UTC Timestamp.
func Now() Timestamp {
	return Timestamp{Time: time.Now().UTC()}
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte(`""`), nil
	}
	return json.Marshal(t.UTC().Format(time.RFC3339Nano))
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == "" {
		t.Time = time.Time{}
		return nil
	}
	parsed, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return err
	}
	t.Time = parsed
	return nil
}
