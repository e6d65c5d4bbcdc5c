// Package display renders lookup results, quotes and the daily feed as
// styled terminal tables.
package display

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/insiderwatch/tracker/internal/models"
	"github.com/insiderwatch/tracker/internal/trades"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#3B82F6"))

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#9CA3AF"))

	positiveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#10B981"))

	negativeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#EF4444"))

	errorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#EF4444"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6B7280"))

	panelStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#374151")).
			Padding(0, 1)
)

// styleFor maps a polarity to its display style
func styleFor(p trades.Polarity) lipgloss.Style {
	switch p {
	case trades.PolarityPositive:
		return positiveStyle
	case trades.PolarityNegative:
		return negativeStyle
	default:
		return lipgloss.NewStyle()
	}
}

// RenderQuote renders the price-quote panel. A nil quote returns the
// empty string: the panel is simply not shown. A quote carrying a
// backend error renders the error line instead of prices.
func RenderQuote(q *models.QuoteSnapshot) string {
	if q == nil {
		return ""
	}
	if q.HasError() {
		return errorStyle.Render("Quote unavailable: " + q.Error)
	}

	change := q.Change.Float64()
	changeStyle := styleFor(trades.ChangePolarity(change))

	lines := []string{
		fmt.Sprintf("%s  %s",
			headerStyle.Render("Current"),
			changeStyle.Render(formatPrice(q.CurrentPrice.Float64()))),
		fmt.Sprintf("%s   %s",
			headerStyle.Render("Change"),
			changeStyle.Render(fmt.Sprintf("%+.2f (%.2f%%)", change, q.ChangePercent.Float64()))),
		fmt.Sprintf("%s     %s", headerStyle.Render("High"), formatPrice(q.DayHigh.Float64())),
		fmt.Sprintf("%s      %s", headerStyle.Render("Low"), formatPrice(q.DayLow.Float64())),
	}

	return panelStyle.Render(strings.Join(lines, "\n"))
}

// RenderMainTable renders lookup rows: reporter, date, type, shares, price
func RenderMainTable(rows []trades.ClassifiedTrade) string {
	if len(rows) == 0 {
		return dimStyle.Render("No transactions match the selected criteria.")
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("%-28s %-12s %-16s %12s %12s",
		"Reporter", "Date", "Type", "Shares", "Price")))
	b.WriteString("\n")

	for _, row := range rows {
		line := fmt.Sprintf("%-28s %-12s %-16s %12s %12s",
			truncate(row.ReporterName, 28),
			row.TransactionDate,
			row.TypeLabel,
			formatShares(row.Shares),
			formatPrice(row.PricePerShare),
		)
		b.WriteString(styleFor(row.Polarity).Render(line))
		b.WriteString("\n")
	}

	return b.String()
}

// RenderFeedTable renders feed rows: company, type, shares, price
func RenderFeedTable(rows []trades.ClassifiedTrade) string {
	if len(rows) == 0 {
		return dimStyle.Render("No recent open-market trades.")
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Latest P/S trades"))
	b.WriteString("\n")
	b.WriteString(headerStyle.Render(fmt.Sprintf("%-10s %-8s %12s %12s",
		"Company", "Type", "Shares", "Price")))
	b.WriteString("\n")

	for _, row := range rows {
		line := fmt.Sprintf("%-10s %-8s %12s %12s",
			truncate(row.IssuerSymbol, 10),
			row.TypeLabel,
			formatShares(row.Shares),
			formatPrice(row.PricePerShare),
		)
		b.WriteString(styleFor(row.Polarity).Render(line))
		b.WriteString("\n")
	}

	return b.String()
}

// RenderError renders an inline flow error next to its panel
func RenderError(prefix, msg string) string {
	return errorStyle.Render(fmt.Sprintf("%s: %s", prefix, msg))
}

// RenderLoading renders a flow's loading placeholder
func RenderLoading(what string) string {
	return dimStyle.Render("Loading " + what + "...")
}

// formatPrice renders a dollar amount with two decimals
func formatPrice(v float64) string {
	return fmt.Sprintf("$%.2f", v)
}

// formatShares renders a share count with thousands separators. Whole
// counts drop the fraction; fractional counts keep two decimals.
func formatShares(v float64) string {
	whole := int64(v)
	frac := v - float64(whole)

	s := strconv.FormatInt(whole, 10)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	parts = append([]string{s}, parts...)
	out := strings.Join(parts, ",")
	if neg {
		out = "-" + out
	}
	if frac > 0.000001 {
		out += strings.TrimPrefix(fmt.Sprintf("%.2f", frac), "0")
	}
	return out
}

// truncate shortens a string to fit a column
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}

// RenderTitle renders the session header line
func RenderTitle(text string) string {
	return titleStyle.Render(text)
}
