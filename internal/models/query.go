package models

import (
	"fmt"
	"strings"
)

// Period is the lookback window for an insider-trade lookup
type Period string

const (
	Period3M  Period = "3m"
	Period6M  Period = "6m"
	Period12M Period = "12m"
)

// ParsePeriod validates a period string, case-insensitively
func ParsePeriod(s string) (Period, error) {
	switch Period(strings.ToLower(strings.TrimSpace(s))) {
	case Period3M:
		return Period3M, nil
	case Period6M:
		return Period6M, nil
	case Period12M:
		return Period12M, nil
	}
	return "", fmt.Errorf("invalid period %q: must be 3m, 6m or 12m", s)
}

// FilterMode selects which transaction codes a lookup keeps
type FilterMode string

const (
	// FilterPSOnly keeps only open-market buys and sells (codes P and S)
	FilterPSOnly FilterMode = "PS_ONLY"
	// FilterAll keeps every transaction code
	FilterAll FilterMode = "ALL"
)

// ParseFilterMode validates a filter string, case-insensitively
func ParseFilterMode(s string) (FilterMode, error) {
	switch FilterMode(strings.ToUpper(strings.TrimSpace(s))) {
	case FilterPSOnly:
		return FilterPSOnly, nil
	case FilterAll:
		return FilterAll, nil
	}
	return "", fmt.Errorf("invalid filter %q: must be PS_ONLY or ALL", s)
}

// Query is the confirmed, submitted search configuration. It is distinct
// from the live input text still being typed in the search box.
type Query struct {
	Ticker string
	Period Period
	Filter FilterMode
}

// NewQuery builds a query with upper-cased ticker and defaulted period/filter
func NewQuery(ticker string, period Period, filter FilterMode) Query {
	if period == "" {
		period = Period12M
	}
	if filter == "" {
		filter = FilterPSOnly
	}
	return Query{
		Ticker: strings.ToUpper(strings.TrimSpace(ticker)),
		Period: period,
		Filter: filter,
	}
}
