package models

// QuoteSnapshot is the Finnhub-style price quote attached to a lookup
// response. The single-letter keys are the upstream wire format.
type QuoteSnapshot struct {
	CurrentPrice  FlexFloat `json:"c"`
	Change        FlexFloat `json:"d"`
	ChangePercent FlexFloat `json:"dp"`
	DayHigh       FlexFloat `json:"h"`
	DayLow        FlexFloat `json:"l"`
	Error         string    `json:"error,omitempty"`
}

// HasError reports whether the quote sub-fetch failed backend-side
func (q *QuoteSnapshot) HasError() bool {
	return q != nil && q.Error != ""
}
