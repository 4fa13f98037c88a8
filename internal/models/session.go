package models

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

// TimestampLayout is the session timestamp format, local time at creation.
const TimestampLayout = "2006-01-02 15:04"

// Session is a logged study event. Sessions are append-only and immutable
// once created.
type Session struct {
	Timestamp string  `json:"data"`
	Skill     string  `json:"habilidade"`
	Minutes   Minutes `json:"minutos"`
	Notes     string  `json:"notas"`
}

// Now returns the current local time formatted for session timestamps.
func Now() string {
	return time.Now().Format(TimestampLayout)
}

// Minutes is an integer minute count that tolerates malformed persisted
// values: numbers are truncated to integers, numeric strings are parsed, and
// anything else decodes as zero. Aggregation must never fail because one
// session carries a bad minute field.
type Minutes int

func (m *Minutes) UnmarshalJSON(data []byte) error {
	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		*m = Minutes(n)
		return nil
	}

	var f float64
	if err := json.Unmarshal(data, &f); err == nil {
		*m = Minutes(int(f))
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if n, err := strconv.Atoi(strings.TrimSpace(s)); err == nil {
			*m = Minutes(n)
			return nil
		}
	}

	*m = 0
	return nil
}

func (m Minutes) MarshalJSON() ([]byte, error) {
	return json.Marshal(int(m))
}
