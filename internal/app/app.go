// Package app wires configuration, logging, the backend client and the
// interactive session together.
package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"

	"github.com/insiderwatch/tracker/internal/clients/trackapi"
	"github.com/insiderwatch/tracker/internal/common"
	"github.com/insiderwatch/tracker/internal/display"
	"github.com/insiderwatch/tracker/internal/interfaces"
	"github.com/insiderwatch/tracker/internal/models"
	"github.com/insiderwatch/tracker/internal/search"
	"github.com/insiderwatch/tracker/internal/session"
	"github.com/insiderwatch/tracker/internal/trades"
)

const (
	actionLookup  = "Look up a ticker"
	actionFeed    = "Refresh the daily feed"
	actionQuit    = "Quit"
	useTypedLabel = "Use as typed"
)

var tickerPattern = regexp.MustCompile(`^[A-Za-z0-9.\-]{1,10}$`)

// App holds the initialized client, controllers and session state.
type App struct {
	Config  *common.Config
	Logger  *common.Logger
	Client  interfaces.TrackerAPI
	Search  *search.Controller
	Session *session.Coordinator

	StartupTime time.Time

	suggestionReady chan struct{}
}

// getBinaryDir returns the directory containing the executable.
func getBinaryDir() string {
	exe, err := os.Executable()
	if err != nil {
		return "."
	}
	return filepath.Dir(exe)
}

// NewApp loads configuration and builds the client, search controller and
// session coordinator. configPath may be empty, in which case TRACKER_CONFIG,
// the binary directory and the development config path are tried in order.
func NewApp(configPath string) (*App, error) {
	binDir := getBinaryDir()

	if configPath == "" {
		configPath = os.Getenv("TRACKER_CONFIG")
	}
	if configPath == "" {
		configPath = filepath.Join(binDir, "tracker.toml")
		if _, err := os.Stat(configPath); os.IsNotExist(err) {
			configPath = "config/tracker.toml"
		}
	}

	config, err := common.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger := common.NewLoggerFromConfig(config.Logging)

	client := trackapi.NewClient(
		trackapi.WithBaseURL(config.Backend.BaseURL),
		trackapi.WithLogger(logger),
		trackapi.WithRateLimit(config.Backend.RateLimit),
		trackapi.WithTimeout(config.Backend.GetTimeout()),
	)

	a := &App{
		Config:          config,
		Logger:          logger,
		Client:          client,
		Session:         session.NewCoordinator(client, logger),
		StartupTime:     time.Now(),
		suggestionReady: make(chan struct{}, 1),
	}

	a.Search = search.NewController(client, logger, config.Search.GetDebounce())
	a.Search.Notify = func() {
		select {
		case a.suggestionReady <- struct{}{}:
		default:
		}
	}

	logger.Info().
		Str("backend", config.Backend.BaseURL).
		Str("version", common.GetVersion()).
		Msg("Tracker initialized")

	return a, nil
}

// Run drives the interactive loop until the user quits or ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	fmt.Println(display.RenderTitle("Insider Trading Tracker " + common.GetVersion()))

	if a.Config.Feed.AutoLoad {
		a.refreshFeed(ctx)
	}

	for {
		if err := ctx.Err(); err != nil {
			return nil
		}

		var action string
		prompt := &survey.Select{
			Message: "What next?",
			Options: []string{actionLookup, actionFeed, actionQuit},
		}
		if err := survey.AskOne(prompt, &action); err != nil {
			if errors.Is(err, terminal.InterruptErr) {
				return nil
			}
			return fmt.Errorf("prompt failed: %w", err)
		}

		switch action {
		case actionLookup:
			if err := a.runLookup(ctx); err != nil {
				a.Logger.Warn().Err(err).Msg("Lookup aborted")
			}
		case actionFeed:
			a.refreshFeed(ctx)
		case actionQuit:
			return nil
		}
	}
}

// runLookup walks one ticker lookup: typed input drives the autocomplete
// controller, a suggestion may be picked, then period and filter are chosen
// and the result rendered.
func (a *App) runLookup(ctx context.Context) error {
	input := &survey.Input{
		Message: "Ticker:",
		Default: a.defaultTicker(),
	}

	var typed string
	err := survey.AskOne(input, &typed, survey.WithValidator(validateTicker))
	if err != nil {
		return err
	}

	a.Search.Input(typed)

	if item, ok := a.pickSuggestion(); ok {
		a.Search.Select(item)
	}
	ticker := a.Search.Submit()
	if ticker == "" {
		return nil
	}

	period, filter, err := a.pickQueryOptions()
	if err != nil {
		return err
	}

	query := models.NewQuery(ticker, period, filter)
	a.Session.Submit(ctx, query)
	a.renderLookup(query)
	return nil
}

// pickSuggestion waits for the debounced suggestion request to settle and, if
// any suggestions arrived, offers them alongside keeping the typed input.
func (a *App) pickSuggestion() (models.SuggestionItem, bool) {
	wait := a.Config.Search.GetDebounce() + 2*time.Second
	select {
	case <-a.suggestionReady:
	case <-time.After(wait):
	}

	suggestions := a.Search.Suggestions()
	if len(suggestions) == 0 {
		return models.SuggestionItem{}, false
	}

	options := make([]string, 0, len(suggestions)+1)
	for _, s := range suggestions {
		options = append(options, fmt.Sprintf("%s  %s", s.Symbol, s.Description))
	}
	options = append(options, useTypedLabel)

	var choice string
	prompt := &survey.Select{
		Message: "Matches:",
		Options: options,
	}
	if err := survey.AskOne(prompt, &choice); err != nil || choice == useTypedLabel {
		return models.SuggestionItem{}, false
	}

	for i, opt := range options {
		if opt == choice && i < len(suggestions) {
			return suggestions[i], true
		}
	}
	return models.SuggestionItem{}, false
}

// pickQueryOptions prompts for the lookback period and transaction filter.
func (a *App) pickQueryOptions() (models.Period, models.FilterMode, error) {
	var periodChoice string
	periodPrompt := &survey.Select{
		Message: "Period:",
		Options: []string{"3m", "6m", "12m"},
		Default: string(a.defaultPeriod()),
	}
	if err := survey.AskOne(periodPrompt, &periodChoice); err != nil {
		return "", "", err
	}

	var filterChoice string
	filterPrompt := &survey.Select{
		Message: "Transactions:",
		Options: []string{"Open-market only (P/S)", "All transactions"},
	}
	if err := survey.AskOne(filterPrompt, &filterChoice); err != nil {
		return "", "", err
	}

	filter := models.FilterPSOnly
	if filterChoice == "All transactions" {
		filter = models.FilterAll
	}

	period, _ := models.ParsePeriod(periodChoice)
	return period, filter, nil
}

// renderLookup prints the quote panel and main transaction table for the
// current lookup state.
func (a *App) renderLookup(query models.Query) {
	state := a.Session.Lookup()

	if state.Err != "" {
		fmt.Println(display.RenderError("Lookup failed", state.Err))
		return
	}

	if panel := display.RenderQuote(state.Quote); panel != "" {
		fmt.Println(panel)
	}

	rows := trades.ExtractMain(state.Documents, query.Filter)
	fmt.Println(display.RenderMainTable(rows))
}

// refreshFeed reloads and prints the daily open-market feed.
func (a *App) refreshFeed(ctx context.Context) {
	fmt.Println(display.RenderLoading("daily feed"))
	a.Session.RefreshFeed(ctx)

	state := a.Session.Feed()
	if state.Err != "" {
		fmt.Println(display.RenderError("Feed unavailable", state.Err))
		return
	}
	fmt.Println(display.RenderFeedTable(trades.ExtractFeed(state.Documents)))
}

// defaultTicker prefers the last confirmed ticker over the configured one.
func (a *App) defaultTicker() string {
	if t := a.Search.ConfirmedTicker(); t != "" {
		return t
	}
	return a.Config.Query.Ticker
}

func (a *App) defaultPeriod() models.Period {
	if p, err := models.ParsePeriod(a.Config.Query.Period); err == nil {
		return p
	}
	return models.Period12M
}

// Close releases the search controller's pending timer.
func (a *App) Close() {
	a.Search.Close()
}

// validateTicker accepts short exchange-style symbols only.
func validateTicker(ans interface{}) error {
	s, ok := ans.(string)
	if !ok {
		return fmt.Errorf("expected a string")
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if !tickerPattern.MatchString(s) {
		return fmt.Errorf("ticker must be 1-10 letters, digits, dots or hyphens")
	}
	return nil
}
