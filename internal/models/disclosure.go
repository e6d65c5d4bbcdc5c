package models

// DisclosureDocument is a single insider filing as returned by the backend.
// Documents are immutable once fetched; a fresh set replaces the previous
// one wholesale on every lookup or feed refresh.
type DisclosureDocument struct {
	ID                 string              `json:"id"`
	Issuer             Issuer              `json:"issuer"`
	ReportingOwner     ReportingOwner      `json:"reportingOwner"`
	NonDerivativeTable *NonDerivativeTable `json:"nonDerivativeTable,omitempty"`
}

// Issuer identifies the company the filing concerns
type Issuer struct {
	TradingSymbol string `json:"tradingSymbol"`
	Name          string `json:"name,omitempty"`
}

// ReportingOwner identifies the insider who filed
type ReportingOwner struct {
	Name string `json:"name"`
}

// NonDerivativeTable holds the ordered open-market transaction line items.
// A document without one simply contributes zero rows.
type NonDerivativeTable struct {
	Transactions []TransactionEntry `json:"transactions"`
}

// TransactionEntry is one line item of a filing's non-derivative table
type TransactionEntry struct {
	TransactionDate string              `json:"transactionDate"`
	Coding          TransactionCoding   `json:"coding"`
	Amounts         *TransactionAmounts `json:"amounts,omitempty"`
}

// TransactionCoding carries the one-letter transaction code (P, S, M, G, F, ...)
type TransactionCoding struct {
	Code string `json:"code"`
}

// TransactionAmounts holds share count and per-share price. Missing or
// malformed values read as zero, never as an error.
type TransactionAmounts struct {
	Shares        FlexFloat `json:"shares"`
	PricePerShare FlexFloat `json:"pricePerShare"`
}

// SharesValue returns the share count for an entry, zero when amounts are absent
func (e *TransactionEntry) SharesValue() float64 {
	if e.Amounts == nil {
		return 0
	}
	return e.Amounts.Shares.Float64()
}

// PriceValue returns the per-share price for an entry, zero when amounts are absent
func (e *TransactionEntry) PriceValue() float64 {
	if e.Amounts == nil {
		return 0
	}
	return e.Amounts.PricePerShare.Float64()
}
