// Package search coordinates live ticker input with debounced
// autocomplete suggestions.
package search

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/insiderwatch/tracker/internal/common"
	"github.com/insiderwatch/tracker/internal/interfaces"
	"github.com/insiderwatch/tracker/internal/models"
)

// DefaultDebounce is the quiet window after the last keystroke before a
// suggestion request fires. Earlier iterations used 500ms; 300ms is the
// released value.
const DefaultDebounce = 300 * time.Millisecond

// Controller reconciles a fast-changing input stream with asynchronous
// suggestion results. The raw input text doubles as the confirmed ticker:
// submitting without picking a suggestion searches whatever was typed.
//
// At most one debounce timer is pending at a time; starting a new one
// cancels its predecessor. Each suggestion request is stamped with a
// monotonically increasing sequence number and completions older than the
// latest issued request are dropped, so a slow response can never
// overwrite fresher state.
type Controller struct {
	api      interfaces.TrackerAPI
	logger   *common.Logger
	debounce time.Duration

	// Notify, when set, is invoked after every suggestions change.
	Notify func()

	mu          sync.Mutex
	liveInput   string
	confirmed   string
	suggestions []models.SuggestionItem
	timer       *time.Timer
	seq         uint64
}

// NewController creates a controller. A non-positive debounce falls back
// to DefaultDebounce.
func NewController(api interfaces.TrackerAPI, logger *common.Logger, debounce time.Duration) *Controller {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &Controller{
		api:      api,
		logger:   logger,
		debounce: debounce,
	}
}

// Input records a keystroke. The text is upper-cased and becomes both the
// live input and the confirmed ticker immediately; the debounce window
// restarts. An input that is empty after trimming clears the suggestion
// list at once and issues no request.
func (c *Controller) Input(text string) {
	upper := strings.ToUpper(text)

	c.mu.Lock()
	c.liveInput = upper
	c.confirmed = upper
	c.stopTimerLocked()

	if strings.TrimSpace(upper) == "" {
		// Invalidate any in-flight request so its response cannot
		// resurrect suggestions for a query the user abandoned.
		c.seq++
		changed := len(c.suggestions) > 0
		c.suggestions = nil
		c.mu.Unlock()
		if changed {
			c.notify()
		}
		return
	}

	c.timer = time.AfterFunc(c.debounce, c.fire)
	c.mu.Unlock()
}

// Select confirms a suggestion: both the confirmed ticker and the live
// input become the chosen symbol and the suggestion list is cleared.
func (c *Controller) Select(item models.SuggestionItem) {
	c.mu.Lock()
	c.confirmed = item.Symbol
	c.liveInput = item.Symbol
	c.suggestions = nil
	c.stopTimerLocked()
	c.seq++
	c.mu.Unlock()
	c.notify()
}

// Submit freezes the input for a search: the suggestion list is cleared
// and the live input resynchronizes to the confirmed ticker. A pending
// suggestion request is not cancelled, only its display is.
func (c *Controller) Submit() string {
	c.mu.Lock()
	c.suggestions = nil
	c.liveInput = c.confirmed
	ticker := c.confirmed
	c.mu.Unlock()
	c.notify()
	return ticker
}

// Suggestions returns a copy of the current suggestion list
func (c *Controller) Suggestions() []models.SuggestionItem {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]models.SuggestionItem, len(c.suggestions))
	copy(out, c.suggestions)
	return out
}

// LiveInput returns the text currently in the search box
func (c *Controller) LiveInput() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.liveInput
}

// ConfirmedTicker returns the ticker a submit would search for
func (c *Controller) ConfirmedTicker() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.confirmed
}

// Close cancels any pending debounce timer
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stopTimerLocked()
}

// fire runs on debounce expiry: it issues the suggestion request for the
// input as it stands now, stamped with a fresh sequence number.
func (c *Controller) fire() {
	c.mu.Lock()
	query := strings.TrimSpace(c.liveInput)
	if query == "" {
		c.suggestions = nil
		c.mu.Unlock()
		c.notify()
		return
	}
	c.seq++
	seq := c.seq
	c.mu.Unlock()

	items, err := c.api.SearchTickers(context.Background(), query)
	if err != nil {
		// Autocomplete is best-effort: failures collapse to an empty
		// list and are never surfaced to the user.
		c.logger.Warn().Err(err).Str("query", query).Msg("Suggestion fetch failed")
		items = nil
	}

	c.mu.Lock()
	if seq != c.seq {
		c.mu.Unlock()
		c.logger.Debug().Str("query", query).Msg("Dropping stale suggestion response")
		return
	}
	c.suggestions = items
	c.mu.Unlock()
	c.notify()
}

// stopTimerLocked cancels the pending debounce timer. Callers hold c.mu.
func (c *Controller) stopTimerLocked() {
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}

func (c *Controller) notify() {
	if c.Notify != nil {
		c.Notify()
	}
}
