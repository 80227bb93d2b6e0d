// Package feed implements the client for the flood-monitoring authority's
// dashboard API. One run performs exactly one request; transport failures
// are fatal to the run and are never retried.
package feed

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Payload is the decoded API response: the reporting timestamp plus one
// record per station known to the authority.
type Payload struct {
	LatestReadingTime string    `json:"latest_reading_time"`
	Stations          []Station `json:"data"`
}

// Station is one per-station record of the payload. Discharge fields have
// been observed both as JSON strings and as bare numbers, so they decode
// through FlexString.
type Station struct {
	Name             string     `json:"name"`
	Status           string     `json:"status"`
	OutflowDischarge FlexString `json:"outflow_discharge"`
	InflowDischarge  FlexString `json:"inflow_discharge"`
	OutflowTrend     string     `json:"outflow_trend"`
	InflowTrend      string     `json:"inflow_trend"`
}

// FlexString is a string that also accepts JSON numbers.
type FlexString string

// UnmarshalJSON implements json.Unmarshaler.
func (f *FlexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		*f = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = FlexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("discharge value %s: %w", data, err)
	}
	*f = FlexString(n.String())
	return nil
}
