package schema

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// FirestationMapping assigns an address to the station covering it
type FirestationMapping struct {
	Address string `json:"address"`
	Station int    `json:"station"`
}

// UnmarshalJSON accepts the station as either a number or a numeric string.
// The public seed data ships stations as strings.
func (f *FirestationMapping) UnmarshalJSON(data []byte) error {
	var raw struct {
		Address string          `json:"address"`
		Station json.RawMessage `json:"station"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	f.Address = raw.Address
	f.Station = 0

	s := strings.TrimSpace(string(raw.Station))
	if s == "" || s == "null" {
		return nil
	}

	if strings.HasPrefix(s, `"`) {
		var text string
		if err := json.Unmarshal(raw.Station, &text); err != nil {
			return err
		}
		s = strings.TrimSpace(text)
		if s == "" {
			return nil
		}
	}

	n, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("invalid station %q for address %q", s, raw.Address)
	}
	f.Station = n
	return nil
}
