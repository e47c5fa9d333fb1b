package timeutil

import (
	"bytes"
	"encoding/json"
	"strconv"
	"time"
)

// Timestamp is a point in time in epoch milliseconds.
// It encodes as a JSON number and decodes from a number or any string Parse accepts,
// so collections written with string dates still load.
type Timestamp int64

// Time returns the local time.
func (t Timestamp) Time() time.Time {
	return ToTime(int64(t))
}

// MarshalJSON encodes the timestamp as a number.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatInt(int64(t), 10)), nil
}

// UnmarshalJSON accepts numbers and date strings. Unreadable strings fall back to now.
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*t = Timestamp(ParseToTimestamp(nil))
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*t = Timestamp(ParseToTimestamp(s))
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*t = Timestamp(ParseToTimestamp(n))
	return nil
}
