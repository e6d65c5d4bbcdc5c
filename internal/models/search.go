package models

// SuggestionItem is one ticker autocomplete suggestion. The list is
// transient and replaced wholesale on every successful search response.
type SuggestionItem struct {
	Symbol      string `json:"symbol"`
	Description string `json:"description"`
}

// InsiderTradesResult is the decoded outcome of one lookup: the disclosure
// documents plus the quote snapshot fetched alongside them. Quote may be
// nil when the backend omitted it.
type InsiderTradesResult struct {
	Documents []DisclosureDocument
	Quote     *QuoteSnapshot
}
