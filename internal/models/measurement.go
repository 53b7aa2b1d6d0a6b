package models

import (
	"fmt"
	"strconv"
)

// Measurement is a daily retrieval record as sent by the stats API.
type Measurement struct {
	Day        string `json:"day"`
	Total      Count  `json:"total"`
	Successful Count  `json:"successful"`
}

// Count is a decimal count which the API encodes as a JSON string.
// A JSON number is also accepted and kept as its decimal text.
type Count string

func (c *Count) UnmarshalJSON(b []byte) error {
	s := string(b)
	switch {
	case s == "null":
		*c = ""
	case len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"':
		unquoted, err := strconv.Unquote(s)
		if err != nil {
			return fmt.Errorf("unquoting count: %w", err)
		}
		*c = Count(unquoted)
	default:
		*c = Count(s)
	}
	return nil
}
