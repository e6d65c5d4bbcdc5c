package trades

import (
	"strconv"

	"github.com/insiderwatch/tracker/internal/models"
)

// ClassifiedTrade is one display-ready row derived from a disclosure
// document. Rows are created fresh on every extraction and never mutated.
// ID is unique within one rendered list, not globally.
type ClassifiedTrade struct {
	ID              string
	IssuerSymbol    string
	ReporterName    string
	TransactionDate string
	TypeLabel       string
	Polarity        Polarity
	Shares          float64
	PricePerShare   float64
}

// ExtractFeed flattens feed documents into rows for the sidebar feed,
// keeping only open-market buys and sells. Order is preserved: document
// order, then entry order within each document. Rows carry the issuer
// symbol; the ID discriminator is the transaction date.
func ExtractFeed(docs []models.DisclosureDocument) []ClassifiedTrade {
	rows := []ClassifiedTrade{}
	for _, doc := range docs {
		if doc.NonDerivativeTable == nil {
			continue
		}
		for _, entry := range doc.NonDerivativeTable.Transactions {
			if !isRealTrade(entry.Coding.Code) {
				continue
			}
			c := Classify(entry.Coding.Code)
			rows = append(rows, ClassifiedTrade{
				ID:              doc.ID + "-" + entry.TransactionDate,
				IssuerSymbol:    doc.Issuer.TradingSymbol,
				TransactionDate: entry.TransactionDate,
				TypeLabel:       c.Label,
				Polarity:        c.Polarity,
				Shares:          entry.SharesValue(),
				PricePerShare:   entry.PriceValue(),
			})
		}
	}
	return rows
}

// ExtractMain flattens lookup documents into rows for the main table,
// honouring the result filter. Rows carry the reporter name; the ID
// discriminator is the entry's positional index within its document.
func ExtractMain(docs []models.DisclosureDocument, filter models.FilterMode) []ClassifiedTrade {
	rows := []ClassifiedTrade{}
	for _, doc := range docs {
		if doc.NonDerivativeTable == nil {
			continue
		}
		for i, entry := range doc.NonDerivativeTable.Transactions {
			if filter == models.FilterPSOnly && !isRealTrade(entry.Coding.Code) {
				continue
			}
			c := Classify(entry.Coding.Code)
			rows = append(rows, ClassifiedTrade{
				ID:              doc.ID + "-" + strconv.Itoa(i),
				ReporterName:    doc.ReportingOwner.Name,
				TransactionDate: entry.TransactionDate,
				TypeLabel:       c.Label,
				Polarity:        c.Polarity,
				Shares:          entry.SharesValue(),
				PricePerShare:   entry.PriceValue(),
			})
		}
	}
	return rows
}
