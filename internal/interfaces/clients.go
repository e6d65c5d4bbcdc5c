// Package interfaces defines service contracts for the tracker
package interfaces

import (
	"context"

	"github.com/insiderwatch/tracker/internal/models"
)

// TrackerAPI provides access to the tracker backend endpoints.
// All three calls are independent and may be in flight concurrently.
type TrackerAPI interface {
	// SearchTickers returns autocomplete suggestions for a partial ticker.
	// A response without a result payload decodes as an empty list.
	SearchTickers(ctx context.Context, query string) ([]models.SuggestionItem, error)

	// GetInsiderTrades returns the disclosure documents and quote snapshot
	// for a confirmed query.
	GetInsiderTrades(ctx context.Context, query models.Query) (*models.InsiderTradesResult, error)

	// GetDailyFeed returns the latest open-market insider trades across
	// all issuers.
	GetDailyFeed(ctx context.Context) ([]models.DisclosureDocument, error)
}
