package trades

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/insiderwatch/tracker/internal/models"
)

func entry(code, date string, shares, price float64) models.TransactionEntry {
	return models.TransactionEntry{
		TransactionDate: date,
		Coding:          models.TransactionCoding{Code: code},
		Amounts: &models.TransactionAmounts{
			Shares:        models.FlexFloat(shares),
			PricePerShare: models.FlexFloat(price),
		},
	}
}

func doc(id, symbol, reporter string, entries ...models.TransactionEntry) models.DisclosureDocument {
	d := models.DisclosureDocument{
		ID:             id,
		Issuer:         models.Issuer{TradingSymbol: symbol},
		ReportingOwner: models.ReportingOwner{Name: reporter},
	}
	if entries != nil {
		d.NonDerivativeTable = &models.NonDerivativeTable{Transactions: entries}
	}
	return d
}

func TestExtractFeed_KeepsOnlyRealTrades(t *testing.T) {
	docs := []models.DisclosureDocument{
		doc("d1", "AAPL", "COOK",
			entry("P", "2026-08-01", 100, 150.25),
			entry("M", "2026-08-02", 500, 0),
		),
		doc("d2", "TSLA", "MUSK",
			entry("S", "2026-08-03", 2000, 240.10),
		),
	}

	rows := ExtractFeed(docs)
	require.Len(t, rows, 2)

	assert.Equal(t, "d1-2026-08-01", rows[0].ID)
	assert.Equal(t, "AAPL", rows[0].IssuerSymbol)
	assert.Equal(t, "Buy", rows[0].TypeLabel)
	assert.Equal(t, PolarityPositive, rows[0].Polarity)
	assert.Empty(t, rows[0].ReporterName, "feed rows carry the issuer, not the reporter")

	assert.Equal(t, "d2-2026-08-03", rows[1].ID)
	assert.Equal(t, "TSLA", rows[1].IssuerSymbol)
	assert.Equal(t, "Sell", rows[1].TypeLabel)
}

func TestExtractFeed_MOnlyAndSDocuments(t *testing.T) {
	// Feed refresh returning one M-only document and one S document must
	// surface exactly one row: the S entry.
	docs := []models.DisclosureDocument{
		doc("d1", "NVDA", "HUANG", entry("M", "2026-08-10", 1000, 0)),
		doc("d2", "AMD", "SU", entry("S", "2026-08-11", 300, 160.00)),
	}

	rows := ExtractFeed(docs)
	require.Len(t, rows, 1)
	assert.Equal(t, "AMD", rows[0].IssuerSymbol)
	assert.Equal(t, "Sell", rows[0].TypeLabel)
}

func TestExtractMain_FilterAll(t *testing.T) {
	docs := []models.DisclosureDocument{
		doc("d1", "AAPL", "COOK",
			entry("P", "2026-08-01", 100, 150.25),
			entry("G", "2026-08-02", 50, 0),
			entry("S", "2026-08-03", 75, 151.00),
		),
	}

	rows := ExtractMain(docs, models.FilterAll)
	require.Len(t, rows, 3)

	assert.Equal(t, "d1-0", rows[0].ID)
	assert.Equal(t, "d1-1", rows[1].ID)
	assert.Equal(t, "d1-2", rows[2].ID)
	assert.Equal(t, "COOK", rows[0].ReporterName)
	assert.Empty(t, rows[0].IssuerSymbol, "main rows carry the reporter, not the issuer")
	assert.Equal(t, "Gift", rows[1].TypeLabel)
}

func TestExtractMain_PSOnlyIsOrderedSubsetOfAll(t *testing.T) {
	docs := []models.DisclosureDocument{
		doc("d1", "AAPL", "COOK",
			entry("P", "2026-08-01", 100, 150.25),
			entry("F", "2026-08-02", 10, 149.00),
		),
		doc("d2", "AAPL", "MAESTRI",
			entry("M", "2026-08-03", 500, 0),
			entry("S", "2026-08-04", 75, 151.00),
		),
	}

	all := ExtractMain(docs, models.FilterAll)
	ps := ExtractMain(docs, models.FilterPSOnly)

	var expected []ClassifiedTrade
	for _, row := range all {
		if row.TypeLabel == "Buy" || row.TypeLabel == "Sell" {
			expected = append(expected, row)
		}
	}
	assert.Equal(t, expected, ps, "PS_ONLY must be the P/S subset of ALL in the same order")

	for _, row := range ps {
		assert.Contains(t, []Polarity{PolarityPositive, PolarityNegative}, row.Polarity)
	}
}

func TestExtractFeed_MatchesMainPSOnlyRows(t *testing.T) {
	docs := []models.DisclosureDocument{
		doc("d1", "AAPL", "COOK",
			entry("P", "2026-08-01", 100, 150.25),
			entry("M", "2026-08-02", 500, 0),
			entry("S", "2026-08-03", 75, 151.00),
		),
	}

	feed := ExtractFeed(docs)
	main := ExtractMain(docs, models.FilterPSOnly)

	require.Equal(t, len(main), len(feed))
	for i := range feed {
		assert.Equal(t, main[i].TypeLabel, feed[i].TypeLabel)
		assert.Equal(t, main[i].TransactionDate, feed[i].TransactionDate)
		assert.Equal(t, main[i].Shares, feed[i].Shares)
		assert.Equal(t, main[i].PricePerShare, feed[i].PricePerShare)
	}
}

func TestExtract_EmptyAndNilInput(t *testing.T) {
	assert.Empty(t, ExtractFeed(nil))
	assert.Empty(t, ExtractFeed([]models.DisclosureDocument{}))
	assert.Empty(t, ExtractMain(nil, models.FilterAll))
	assert.Empty(t, ExtractMain([]models.DisclosureDocument{}, models.FilterPSOnly))
}

func TestExtract_DocumentWithoutTable(t *testing.T) {
	docs := []models.DisclosureDocument{
		doc("d1", "AAPL", "COOK"), // no non-derivative table
		doc("d2", "TSLA", "MUSK", entry("P", "2026-08-01", 10, 5)),
	}

	assert.Len(t, ExtractFeed(docs), 1)
	assert.Len(t, ExtractMain(docs, models.FilterAll), 1)
}

func TestExtract_MissingAmountsDefaultToZero(t *testing.T) {
	docs := []models.DisclosureDocument{
		{
			ID:             "d1",
			Issuer:         models.Issuer{TradingSymbol: "AAPL"},
			ReportingOwner: models.ReportingOwner{Name: "COOK"},
			NonDerivativeTable: &models.NonDerivativeTable{
				Transactions: []models.TransactionEntry{
					{TransactionDate: "2026-08-01", Coding: models.TransactionCoding{Code: "P"}},
				},
			},
		},
	}

	rows := ExtractMain(docs, models.FilterPSOnly)
	require.Len(t, rows, 1)
	assert.Equal(t, 0.0, rows[0].Shares)
	assert.Equal(t, 0.0, rows[0].PricePerShare)
}
