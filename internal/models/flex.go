// Package models defines the data shapes exchanged with the tracker backend
package models

import (
	"encoding/json"
	"strconv"
)

// FlexFloat is a float64 that tolerates the looser JSON the disclosure
// backend emits: plain numbers, numeric strings, "N/A", null and absent
// fields all decode without error. Anything unparseable reads as 0, so
// numeric defaulting happens once at the model boundary instead of being
// scattered through display logic.
type FlexFloat float64

func (f *FlexFloat) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*f = 0
		return nil
	}
	var num float64
	if err := json.Unmarshal(data, &num); err == nil {
		*f = FlexFloat(num)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if s == "" || s == "N/A" {
			*f = 0
			return nil
		}
		num, err := strconv.ParseFloat(s, 64)
		if err != nil {
			*f = 0
			return nil
		}
		*f = FlexFloat(num)
		return nil
	}
	*f = 0
	return nil
}

// Float64 returns the plain float64 value
func (f FlexFloat) Float64() float64 {
	return float64(f)
}
