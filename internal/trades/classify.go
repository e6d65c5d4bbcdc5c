// Package trades turns raw disclosure documents into classified,
// display-ready trade rows.
package trades

// Polarity drives filtering and styling of a classified value
type Polarity int

const (
	PolarityNeutral Polarity = iota
	PolarityPositive
	PolarityNegative
)

// String returns the lowercase polarity name
func (p Polarity) String() string {
	switch p {
	case PolarityPositive:
		return "positive"
	case PolarityNegative:
		return "negative"
	default:
		return "neutral"
	}
}

// Classification is the human-facing category for a transaction code
type Classification struct {
	Label    string
	Polarity Polarity
}

// Classify maps a one-letter transaction code to its display category.
// Unknown codes pass through unchanged with neutral polarity. Pure and
// total: there is no error case.
func Classify(code string) Classification {
	switch code {
	case "P":
		return Classification{Label: "Buy", Polarity: PolarityPositive}
	case "S":
		return Classification{Label: "Sell", Polarity: PolarityNegative}
	case "M":
		return Classification{Label: "Option exercise", Polarity: PolarityNeutral}
	case "G":
		return Classification{Label: "Gift", Polarity: PolarityNeutral}
	case "F":
		return Classification{Label: "Tax payment", Polarity: PolarityNeutral}
	default:
		return Classification{Label: code, Polarity: PolarityNeutral}
	}
}

// ChangePolarity classifies a day-change value for quote colouring.
// Zero classifies as negative; downstream styling depends on this exact
// boundary.
func ChangePolarity(change float64) Polarity {
	if change > 0 {
		return PolarityPositive
	}
	return PolarityNegative
}

// isRealTrade reports whether a code is an open-market buy or sell
func isRealTrade(code string) bool {
	return code == "P" || code == "S"
}
