// Package session owns the asynchronous lookup and feed flows and their
// request/response/error state.
package session

import (
	"context"
	"sync"

	"github.com/insiderwatch/tracker/internal/common"
	"github.com/insiderwatch/tracker/internal/interfaces"
	"github.com/insiderwatch/tracker/internal/models"
)

// LookupState is the trade-lookup flow's state triple. Result and error
// are mutually exclusive: a fresh start clears both before the new
// outcome lands.
type LookupState struct {
	Query     models.Query
	Documents []models.DisclosureDocument
	Quote     *models.QuoteSnapshot
	Err       string
	Loading   bool
}

// FeedState is the daily-feed flow's state pair
type FeedState struct {
	Documents []models.DisclosureDocument
	Err       string
	Loading   bool
}

// Coordinator orchestrates the lookup and feed flows. The flows are
// causally independent: a feed refresh and a trade lookup may be in
// flight concurrently and complete in any order without disturbing each
// other's state. The suggestion flow lives in the search controller.
type Coordinator struct {
	api    interfaces.TrackerAPI
	logger *common.Logger

	mu     sync.Mutex
	lookup LookupState
	feed   FeedState
}

// NewCoordinator creates a session coordinator
func NewCoordinator(api interfaces.TrackerAPI, logger *common.Logger) *Coordinator {
	return &Coordinator{
		api:    api,
		logger: logger,
	}
}

// Submit runs the trade-lookup flow for a confirmed query. Previous
// result, quote and error are cleared before the request goes out; on
// failure the error message is stored and result/quote stay empty.
func (c *Coordinator) Submit(ctx context.Context, query models.Query) {
	c.mu.Lock()
	c.lookup = LookupState{Query: query, Loading: true}
	c.mu.Unlock()

	c.logger.Info().
		Str("ticker", query.Ticker).
		Str("period", string(query.Period)).
		Str("filter", string(query.Filter)).
		Msg("Insider-trade lookup")

	result, err := c.api.GetInsiderTrades(ctx, query)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.lookup.Loading = false
	if err != nil {
		c.lookup.Err = err.Error()
		c.logger.Warn().Err(err).Str("ticker", query.Ticker).Msg("Lookup failed")
		return
	}
	c.lookup.Documents = result.Documents
	c.lookup.Quote = result.Quote
}

// RefreshFeed runs the daily-feed flow. Fired only on explicit request
// (or once at startup when the auto-load toggle is on). Previous feed
// and feed error are cleared first so the view shows a loading state.
func (c *Coordinator) RefreshFeed(ctx context.Context) {
	c.mu.Lock()
	c.feed = FeedState{Loading: true}
	c.mu.Unlock()

	c.logger.Info().Msg("Refreshing daily feed")

	docs, err := c.api.GetDailyFeed(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.feed.Loading = false
	if err != nil {
		c.feed.Err = err.Error()
		c.logger.Warn().Err(err).Msg("Feed refresh failed")
		return
	}
	c.feed.Documents = docs
}

// Lookup returns a snapshot of the lookup flow state
func (c *Coordinator) Lookup() LookupState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lookup
}

// Feed returns a snapshot of the feed flow state
func (c *Coordinator) Feed() FeedState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.feed
}
